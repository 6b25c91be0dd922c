package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/cli/config"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
)

func cmdExamine() *cli.Command {
	var (
		printerCfg config.Printer
		outputCfg  config.Output
	)

	flags := append(printerCfg.Flags(), outputCfg.Flags()...)

	return &cli.Command{
		Name:      "examine",
		Usage:     "Print every entry of one archive and dump its Metadata PNGs",
		ArgsUsage: "<remote-path>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			remotePath := c.Args().First()
			if remotePath == "" {
				return goerr.New("remote archive path argument is required")
			}

			uc := newInspector(&outputCfg)
			return withConnection(ctx, &printerCfg, func(ctx context.Context, conn interfaces.PrinterConnection) error {
				return uc.Examine(ctx, conn, remotePath)
			})
		},
	}
}
