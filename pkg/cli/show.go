package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func showCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "show",
		Usage:     "Show detailed information of a specific item",
		ArgsUsage: "<item-id>",
		Flags:     globalFlags(&cfg),
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

			item := uc.Get(ctx, itemID)
			if item == nil {
				return goerr.New("item not found", goerr.V("id", itemID))
			}

			data, err := json.MarshalIndent(item, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal item")
			}

			fmt.Fprintf(c.Root().Writer, "%s\n", string(data))
			return nil
		},
	}
}
