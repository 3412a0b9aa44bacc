package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/y-ohta/magpie/pkg/model"
	"github.com/y-ohta/magpie/pkg/usecase/catalog"
)

func addCommand() *cli.Command {
	var cfg config

	flags := globalFlags(&cfg)
	flags = append(flags, geminiFlags(&cfg)...)

	return &cli.Command{
		Name:      "add",
		Usage:     "Analyze item photos and add the item to the catalog",
		ArgsUsage: "<image-file> [image-file...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.loggerContext(ctx)

			if c.Args().Len() == 0 {
				return goerr.New("at least one image file is required")
			}
			if c.Args().Len() > model.MaxImageRefs {
				return goerr.New("too many image files",
					goerr.V("count", c.Args().Len()),
					goerr.V("max", model.MaxImageRefs))
			}

			payloads, err := readImages(c.Args().Slice())
			if err != nil {
				return err
			}

			// Initialize dependencies
			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			ctrl := catalog.NewController(catalog.New(repo, gemini))

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
				spinner.WithWriter(os.Stderr))
			sp.Suffix = " Analyzing your item..."
			sp.Start()
			item, err := ctrl.SubmitImages(ctx, payloads)
			sp.Stop()

			if err != nil {
				fmt.Fprintln(c.Root().Writer, ctrl.ErrMessage())
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Item created: %s\n", item.ID)
			fmt.Fprintf(c.Root().Writer, "  Name:     %s\n", item.Name)
			fmt.Fprintf(c.Root().Writer, "  Category: %s\n", item.Category)
			fmt.Fprintf(c.Root().Writer, "  Price:    %s\n", item.EstimatedPrice)
			return nil
		},
	}
}

// readImages loads each file and sniffs its media type
func readImages(paths []string) ([]catalog.ImagePayload, error) {
	payloads := make([]catalog.ImagePayload, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read image file", goerr.V("path", path))
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}

		payloads = append(payloads, catalog.ImagePayload{
			Data:     data,
			MIMEType: http.DetectContentType(data),
			Ref:      "file://" + abs,
		})
	}
	return payloads, nil
}
