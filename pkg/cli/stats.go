package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func statsCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "stats",
		Usage: "Show catalog summary statistics",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			uc := catalog.New(repo, nil)
			stats := uc.Stats(ctx)

			w := c.Root().Writer
			fmt.Fprintf(w, "Items:         %d\n", stats.TotalItems)
			fmt.Fprintf(w, "Total value:   $%.2f\n", stats.TotalValue)
			fmt.Fprintf(w, "Average value: $%.2f\n", stats.AverageValue)

			categories := make([]string, 0, len(stats.CategoryCounts))
			for category := range stats.CategoryCounts {
				categories = append(categories, category)
			}
			sort.Strings(categories)

			for _, category := range categories {
				fmt.Fprintf(w, "  %s: %d\n", category, stats.CategoryCounts[category])
			}

			return nil
		},
	}
}
