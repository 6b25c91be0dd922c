package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/cli/config"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
)

func cmdScan() *cli.Command {
	var (
		printerCfg config.Printer
		outputCfg  config.Output
	)

	flags := append(printerCfg.Flags(), outputCfg.Flags()...)

	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"ls"},
		Usage:   "List 3MF archives on the printer and extract their preview assets",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := newInspector(&outputCfg)
			return withConnection(ctx, &printerCfg, func(ctx context.Context, conn interfaces.PrinterConnection) error {
				return uc.Scan(ctx, conn)
			})
		},
	}
}
