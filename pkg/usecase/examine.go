package usecase

import (
	"archive/zip"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
)

// thumbnailsDirName is the fixed label for the examine output directory
const thumbnailsDirName = "thumbnails"

// Examine downloads one archive, prints every entry with its size, and
// copies each Metadata PNG into the thumbnails directory. A single entry
// failing to extract does not stop the walk over its siblings.
func (uc *inspector) Examine(ctx context.Context, conn interfaces.PrinterConnection, remotePath string) error {
	logger := ctxlog.From(ctx)

	thumbsDir := filepath.Join(uc.outputDir, thumbnailsDirName)
	if err := uc.fs.MkdirAll(thumbsDir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create thumbnails directory", goerr.V("dir", thumbsDir))
	}

	return uc.withArchive(ctx, conn, remotePath, func(zr *zip.Reader) error {
		fmt.Fprintf(uc.out, "Contents of %s:\n", remotePath)
		fmt.Fprintln(uc.out, strings.Repeat("-", 60))

		for _, f := range zr.File {
			fmt.Fprintf(uc.out, "File: %s\n", f.Name)
			fmt.Fprintf(uc.out, "  Size: %d bytes\n", f.UncompressedSize64)

			if strings.HasPrefix(f.Name, "Metadata/") && strings.HasSuffix(f.Name, ".png") {
				destPath := filepath.Join(thumbsDir, path.Base(f.Name))
				if _, err := uc.writeEntry(f, destPath); err != nil {
					logger.Error("Failed to extract entry", "entry", f.Name, "error", err)
					continue
				}
				fmt.Fprintf(uc.out, "  └── extracted to %s\n", destPath)
			}
		}

		return nil
	})
}
