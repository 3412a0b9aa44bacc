package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/adapter"
	"github.com/y-ohta/magpie/pkg/repository"
	"github.com/y-ohta/magpie/pkg/utils/logging"
)

// config holds configuration values
type config struct {
	// Catalog
	catalogPath string
	logLevel    string

	// Analysis service
	geminiAPIKey string
	geminiModel  string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Aliases:     []string{"c"},
			Usage:       "Path to the catalog snapshot file",
			Sources:     cli.EnvVars("MAGPIE_CATALOG"),
			Destination: &cfg.catalogPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("MAGPIE_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// geminiFlags returns flags for the analysis service with destination config
func geminiFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "API key for the Gemini analysis service",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini model used for image analysis",
			Value:       "gemini-2.5-flash",
			Sources:     cli.EnvVars("MAGPIE_GEMINI_MODEL"),
			Destination: &cfg.geminiModel,
		},
	}
}

// loggerContext builds a logger from the configured level and attaches it
// to the context
func (cfg *config) loggerContext(ctx context.Context) context.Context {
	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// resolveCatalogPath returns the configured snapshot path, defaulting to
// the per-user config directory
func (cfg *config) resolveCatalogPath() (string, error) {
	if cfg.catalogPath != "" {
		return cfg.catalogPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve user config directory")
	}
	return filepath.Join(dir, "magpie", "catalog.json"), nil
}

// newRepository creates a new repository instance
func (cfg *config) newRepository(ctx context.Context) (repository.Repository, error) {
	path, err := cfg.resolveCatalogPath()
	if err != nil {
		return nil, err
	}

	repo, err := repository.NewLocal(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open catalog", goerr.V("path", path))
	}
	return repo, nil
}

// newGemini creates a new Gemini adapter instance. A missing API key is a
// fatal configuration error for commands that analyze images.
func (cfg *config) newGemini(ctx context.Context) (adapter.Gemini, error) {
	if cfg.geminiAPIKey == "" {
		return nil, goerr.New("gemini-api-key is required (set GEMINI_API_KEY)")
	}
	return adapter.NewGemini(ctx, cfg.geminiAPIKey, adapter.WithGenerativeModel(cfg.geminiModel))
}
