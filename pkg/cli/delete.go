package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func deleteCommand() *cli.Command {
	var (
		cfg   config
		force bool
	)

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Delete without confirmation",
			Destination: &force,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an item from the catalog",
		ArgsUsage: "<item-id>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			if c.Args().Len() == 0 {
				return goerr.New("item-id is required")
			}
			itemID := model.ItemID(c.Args().Get(0))

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			uc := catalog.New(repo, nil)
			ctrl := catalog.NewController(uc)

			item := uc.Get(ctx, itemID)
			if item == nil {
				return goerr.New("item not found", goerr.V("id", itemID))
			}

			// Deletion is two-phase: mark pending, then confirm or cancel
			ctrl.RequestDelete(itemID)

			if !force {
				ok, err := promptYesNo(fmt.Sprintf("Delete %q (%s)?", item.Name, itemID))
				if err != nil {
					ctrl.CancelDelete()
					return err
				}
				if !ok {
					ctrl.CancelDelete()
					fmt.Fprintln(c.Root().Writer, "Cancelled")
					return nil
				}
			}

			if err := ctrl.ConfirmDelete(ctx); err != nil {
				return goerr.Wrap(err, "failed to delete item")
			}

			fmt.Fprintf(c.Root().Writer, "Item deleted: %s\n", itemID)
			return nil
		},
	}
}
