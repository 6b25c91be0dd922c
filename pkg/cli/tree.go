package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/cli/config"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
)

func cmdTree() *cli.Command {
	var (
		printerCfg config.Printer
		outputCfg  config.Output
	)

	flags := append(printerCfg.Flags(), outputCfg.Flags()...)

	return &cli.Command{
		Name:      "tree",
		Usage:     "Render the printer's directory tree",
		ArgsUsage: "[path]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			root := c.Args().First()

			uc := newInspector(&outputCfg)
			err := withConnection(ctx, &printerCfg, func(ctx context.Context, conn interfaces.PrinterConnection) error {
				return uc.Tree(ctx, conn, root)
			})
			if err != nil {
				printConnectionChecklist(os.Stdout)
				return err
			}
			return nil
		},
	}
}

// printConnectionChecklist lists the usual suspects when the printer is not
// reachable
func printConnectionChecklist(w io.Writer) {
	fmt.Fprintln(w, "\nPlease verify:")
	fmt.Fprintln(w, "1. The printer is powered on")
	fmt.Fprintln(w, "2. The IP address is correct")
	fmt.Fprintln(w, "3. The access code is correct")
	fmt.Fprintln(w, "4. You're on the same network as the printer")
}
