package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/cli/config"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/infra/ftps"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/usecase"
)

// newInspector wires a use case instance against the real filesystem
func newInspector(outputCfg *config.Output) interfaces.Inspector {
	return usecase.NewInspector(afero.NewOsFs(), outputCfg.Dir, os.Stdout)
}

// withConnection validates the printer configuration, opens one FTPS
// session and runs fn against it. The session is closed on every path.
func withConnection(ctx context.Context, printerCfg *config.Printer, fn func(ctx context.Context, conn interfaces.PrinterConnection) error) error {
	logger := ctxlog.From(ctx)

	if err := printerCfg.Load(); err != nil {
		return err
	}
	if err := printerCfg.Validate(); err != nil {
		return err
	}

	logger.Info("Connecting to printer",
		slog.String("host", printerCfg.Host),
		slog.Int("port", printerCfg.Port),
	)

	client := ftps.New(printerCfg.Host, printerCfg.AccessCode, ftps.WithPort(printerCfg.Port))
	conn, err := client.Connect(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to connect to printer")
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn("Failed to close printer connection", "error", err)
		}
	}()

	return fn(ctx, conn)
}
