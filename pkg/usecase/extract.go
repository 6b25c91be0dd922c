package usecase

import (
	"archive/zip"
	"context"
	"path"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/model"
)

// requiredEntries is the fixed set of assets extracted from every sliced
// 3MF: the plate preview, the top-down preview, and the slicer settings.
var requiredEntries = []string{
	"Metadata/plate_1.png",
	"Metadata/top_1.png",
	"Metadata/model_settings.config",
}

// ExtractRequired downloads the archive at remotePath and copies the
// required entries into a directory named after the archive. Entries
// missing from the archive are skipped; re-extraction overwrites, last
// write wins.
func (uc *inspector) ExtractRequired(ctx context.Context, conn interfaces.PrinterConnection, remotePath string) (*model.ExtractResult, error) {
	logger := ctxlog.From(ctx)

	outputDir := filepath.Join(uc.outputDir, archiveBaseName(remotePath))
	if err := uc.fs.MkdirAll(outputDir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outputDir))
	}

	result := &model.ExtractResult{OutputDir: outputDir}

	err := uc.withArchive(ctx, conn, remotePath, func(zr *zip.Reader) error {
		extractStart := time.Now()

		entries := make(map[string]*zip.File, len(zr.File))
		for _, f := range zr.File {
			entries[f.Name] = f
		}

		var payload uint64
		for _, name := range requiredEntries {
			if f, ok := entries[name]; ok {
				payload += f.UncompressedSize64
			}
		}
		logger.Info("Extracting required entries",
			"count", len(requiredEntries),
			"payload_kb", float64(payload)/1024,
		)

		for _, name := range requiredEntries {
			f, ok := entries[name]
			if !ok {
				logger.Debug("Entry not present in archive", "entry", name)
				continue
			}

			destPath := filepath.Join(outputDir, path.Base(name))
			n, err := uc.writeEntry(f, destPath)
			if err != nil {
				return goerr.Wrap(err, "failed to extract entry", goerr.V("entry", name))
			}

			result.Files = append(result.Files, path.Base(name))
			result.Size += n
		}

		logger.Info("Extraction completed",
			"dir", outputDir,
			"files", len(result.Files),
			"duration_sec", time.Since(extractStart).Seconds(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
