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

func cmdExtract() *cli.Command {
	var (
		printerCfg config.Printer
		outputCfg  config.Output
	)

	flags := append(printerCfg.Flags(), outputCfg.Flags()...)

	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract the preview images and slicer settings from one archive",
		ArgsUsage: "<remote-path>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			remotePath := c.Args().First()
			if remotePath == "" {
				return goerr.New("remote archive path argument is required")
			}

			uc := newInspector(&outputCfg)
			return withConnection(ctx, &printerCfg, func(ctx context.Context, conn interfaces.PrinterConnection) error {
				result, err := uc.ExtractRequired(ctx, conn, remotePath)
				if err != nil {
					return err
				}

				ctxlog.From(ctx).Info("Extracted archive assets",
					slog.String("dir", result.OutputDir),
					slog.Int("files", len(result.Files)),
					slog.Int64("size_bytes", result.Size),
				)
				return nil
			})
		},
	}
}
