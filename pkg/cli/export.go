package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func exportCommand() *cli.Command {
	var (
		cfg    config
		output string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output filename stem (date and .csv suffix are appended)",
			Value:       "inventory",
			Sources:     cli.EnvVars("MAGPIE_EXPORT_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export the full catalog as CSV",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			uc := catalog.New(repo, nil)

			path, err := uc.ExportCSV(ctx, output)
			if err != nil {
				return goerr.Wrap(err, "failed to export catalog")
			}

			fmt.Fprintf(c.Root().Writer, "Exported %d items to %s\n",
				len(repo.Items(ctx)), path)
			return nil
		},
	}
}
