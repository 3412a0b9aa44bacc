package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func newCommand() *cli.Command {
	var (
		cfg         config
		name        string
		description string
		price       string
		category    string
		images      []string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "Item name",
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "description",
			Aliases:     []string{"d"},
			Usage:       "Item description",
			Destination: &description,
		},
		&cli.StringFlag{
			Name:        "price",
			Aliases:     []string{"p"},
			Usage:       `Estimated price (e.g. "$123.45")`,
			Destination: &price,
		},
		&cli.StringFlag{
			Name:        "category",
			Aliases:     []string{"C"},
			Usage:       "Item category",
			Destination: &category,
		},
		&cli.StringSliceFlag{
			Name:        "image",
			Aliases:     []string{"i"},
			Usage:       "Image reference (repeatable, up to 4)",
			Destination: &images,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "new",
		Usage: "Add an item manually without image analysis",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			if len(images) > model.MaxImageRefs {
				return goerr.New("too many image references",
					goerr.V("count", len(images)),
					goerr.V("max", model.MaxImageRefs))
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			ctrl := catalog.NewController(catalog.New(repo, nil))

			form := ctrl.BeginAdd()
			form.Name = name
			form.Description = description
			form.EstimatedPrice = price
			form.Category = category
			form.ImageRefs = images

			// Without a name flag, walk through the form interactively
			if name == "" {
				form, err = promptForm(form)
				if err != nil {
					ctrl.CloseForm()
					return err
				}
			}

			item, err := ctrl.SaveForm(ctx, form)
			if err != nil {
				return goerr.Wrap(err, "failed to save item")
			}

			fmt.Fprintf(c.Root().Writer, "Item created: %s\n", item.ID)
			return nil
		},
	}
}
