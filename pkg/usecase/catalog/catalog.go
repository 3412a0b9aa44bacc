package catalog

import (
	"github.com/y-ohta/magpie/pkg/adapter"
	"github.com/y-ohta/magpie/pkg/repository"
)

// UseCase provides catalog-related operations
type UseCase struct {
	repo   repository.Repository
	gemini adapter.Gemini
}

// New creates a new catalog UseCase instance. The gemini adapter may be nil
// for operations that never analyze images.
func New(repo repository.Repository, gemini adapter.Gemini) *UseCase {
	return &UseCase{
		repo:   repo,
		gemini: gemini,
	}
}
