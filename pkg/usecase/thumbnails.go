package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"image"
	"io"
	"strings"

	// Thumbnails are PNG in practice, but the slicer format allows JPEG
	_ "image/jpeg"
	_ "image/png"

	"github.com/m-mizutani/ctxlog"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/model"
)

var thumbnailExts = []string{".png", ".jpg", ".jpeg"}

// Thumbnails downloads one archive and decodes every embedded thumbnail
// image in memory. Entries that fail to open or decode are logged and
// skipped.
func (uc *inspector) Thumbnails(ctx context.Context, conn interfaces.PrinterConnection, remotePath string) ([]model.Thumbnail, error) {
	logger := ctxlog.From(ctx)

	var thumbs []model.Thumbnail
	err := uc.withArchive(ctx, conn, remotePath, func(zr *zip.Reader) error {
		for _, f := range zr.File {
			if !isThumbnailEntry(f.Name) {
				continue
			}

			rc, err := f.Open()
			if err != nil {
				logger.Error("Failed to open archive entry", "entry", f.Name, "error", err)
				continue
			}
			data, err := io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				logger.Error("Failed to read archive entry", "entry", f.Name, "error", err)
				continue
			}

			img, format, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				logger.Error("Failed to decode thumbnail", "entry", f.Name, "error", err)
				continue
			}

			thumbs = append(thumbs, model.Thumbnail{
				Name:   f.Name,
				Format: format,
				Image:  img,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return thumbs, nil
}

func isThumbnailEntry(name string) bool {
	lower := strings.ToLower(name)
	if !strings.Contains(lower, "thumbnail") {
		return false
	}
	for _, ext := range thumbnailExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
