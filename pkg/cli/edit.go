package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func editCommand() *cli.Command {
	var (
		cfg         config
		name        string
		description string
		price       string
		category    string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "New item name",
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "description",
			Aliases:     []string{"d"},
			Usage:       "New item description",
			Destination: &description,
		},
		&cli.StringFlag{
			Name:        "price",
			Aliases:     []string{"p"},
			Usage:       "New estimated price",
			Destination: &price,
		},
		&cli.StringFlag{
			Name:        "category",
			Aliases:     []string{"C"},
			Usage:       "New item category",
			Destination: &category,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit an existing item",
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

			form := ctrl.BeginEdit(item)

			flagged := c.IsSet("name") || c.IsSet("description") ||
				c.IsSet("price") || c.IsSet("category")

			if flagged {
				if c.IsSet("name") {
					form.Name = name
				}
				if c.IsSet("description") {
					form.Description = description
				}
				if c.IsSet("price") {
					form.EstimatedPrice = price
				}
				if c.IsSet("category") {
					form.Category = category
				}
			} else {
				form, err = promptForm(form)
				if err != nil {
					ctrl.CloseForm()
					return err
				}
			}

			if _, err := ctrl.SaveForm(ctx, form); err != nil {
				return goerr.Wrap(err, "failed to save item")
			}

			fmt.Fprintf(c.Root().Writer, "Item updated: %s\n", itemID)
			return nil
		},
	}
}
