package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
)

// Scan lists every .3mf archive at the storage root and runs the required
// file extraction for each one. A failing archive is logged and skipped;
// only the listing itself is fatal.
func (uc *inspector) Scan(ctx context.Context, conn interfaces.PrinterConnection) error {
	logger := ctxlog.From(ctx)
	totalStart := time.Now()

	listStart := time.Now()
	files, err := conn.ListFiles(ctx, "/", ".3mf")
	if err != nil {
		return goerr.Wrap(err, "failed to list archives")
	}
	logger.Info("Found 3MF archives",
		"count", len(files),
		"duration_sec", time.Since(listStart).Seconds(),
	)

	for _, file := range files {
		logger.Info("Processing archive", "name", file.Name)
		if _, err := uc.ExtractRequired(ctx, conn, file.Path); err != nil {
			logger.Error("Failed to process archive", "name", file.Name, "error", err)
			continue
		}
	}

	logger.Info("Scan completed", "duration_sec", time.Since(totalStart).Seconds())
	return nil
}
