package catalog

import (
	"context"

	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/view"
)

// ListOptions contains filter options for listing items
type ListOptions struct {
	Search   string
	Category string
}

// List retrieves the catalog filtered by search term and category
func (u *UseCase) List(ctx context.Context, opts ListOptions) []*model.InventoryItem {
	if opts.Category == "" {
		opts.Category = view.AllCategories
	}
	return view.Filter(u.repo.Items(ctx), opts.Search, opts.Category)
}

// Categories returns the distinct category vocabulary of the catalog
func (u *UseCase) Categories(ctx context.Context) []string {
	return view.Categories(u.repo.Items(ctx))
}
