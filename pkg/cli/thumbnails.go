package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/cli/config"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
)

func cmdThumbnails() *cli.Command {
	var (
		printerCfg config.Printer
		outputCfg  config.Output
	)

	flags := append(printerCfg.Flags(), outputCfg.Flags()...)

	return &cli.Command{
		Name:      "thumbnails",
		Usage:     "Decode the embedded thumbnail images of one archive",
		ArgsUsage: "<remote-path>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			remotePath := c.Args().First()
			if remotePath == "" {
				return goerr.New("remote archive path argument is required")
			}

			uc := newInspector(&outputCfg)
			return withConnection(ctx, &printerCfg, func(ctx context.Context, conn interfaces.PrinterConnection) error {
				thumbs, err := uc.Thumbnails(ctx, conn, remotePath)
				if err != nil {
					return err
				}

				logger := ctxlog.From(ctx)
				logger.Info("Decoded thumbnails", slog.Int("count", len(thumbs)))
				for _, thumb := range thumbs {
					bounds := thumb.Image.Bounds()
					logger.Info("Thumbnail",
						slog.String("entry", thumb.Name),
						slog.String("format", thumb.Format),
						slog.Int("width", bounds.Dx()),
						slog.Int("height", bounds.Dy()),
					)
				}
				return nil
			})
		},
	}
}
