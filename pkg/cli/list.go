package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
	"github.com/y-ohta/magpie/pkg/view"
)

func listCommand() *cli.Command {
	var (
		cfg      config
		search   string
		category string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "search",
			Aliases:     []string{"s"},
			Usage:       "Case-insensitive name substring filter",
			Sources:     cli.EnvVars("MAGPIE_LIST_SEARCH"),
			Destination: &search,
		},
		&cli.StringFlag{
			Name:        "category",
			Aliases:     []string{"C"},
			Usage:       "Category filter",
			Value:       view.AllCategories,
			Sources:     cli.EnvVars("MAGPIE_LIST_CATEGORY"),
			Destination: &category,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "List catalog items",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			uc := catalog.New(repo, nil)

			items := uc.List(ctx, catalog.ListOptions{
				Search:   search,
				Category: category,
			})

			for _, item := range items {
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%s\t%s\n",
					item.ID, item.Name, item.Category, item.EstimatedPrice)
			}

			return nil
		},
	}
}

func categoriesCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "categories",
		Usage: "List the distinct category vocabulary",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			uc := catalog.New(repo, nil)

			for _, category := range uc.Categories(ctx) {
				fmt.Fprintln(c.Root().Writer, category)
			}

			return nil
		},
	}
}
