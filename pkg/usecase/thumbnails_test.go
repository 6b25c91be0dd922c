package usecase_test

import (
	"context"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/spf13/afero"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/usecase"
)

func TestThumbnails_DecodesMatchingEntries(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	zipData := buildZip(t, map[string][]byte{
		"Metadata/plate_1_thumbnail.png": pngBytes(t),
		"Metadata/plate_1.png":           pngBytes(t), // no "thumbnail" in the name
		"Metadata/thumbnail_notes.txt":   []byte("wrong extension"),
	})

	conn := &mockConnection{downloadFunc: serveArchive(zipData)}
	uc := usecase.NewInspector(fs, "out", io.Discard)

	thumbs, err := uc.Thumbnails(ctx, conn, "/benchy.3mf")
	gt.NoError(t, err)
	gt.Number(t, len(thumbs)).Equal(1)

	gt.Value(t, thumbs[0].Name).Equal("Metadata/plate_1_thumbnail.png")
	gt.Value(t, thumbs[0].Format).Equal("png")
	gt.Number(t, thumbs[0].Image.Bounds().Dx()).Equal(1)
	gt.Number(t, thumbs[0].Image.Bounds().Dy()).Equal(1)

	assertNoTempFiles(t, fs)
}

func TestThumbnails_SkipsUndecodableEntries(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	zipData := buildZip(t, map[string][]byte{
		"Metadata/thumbnail_bad.png":  []byte("not a real image"),
		"Metadata/thumbnail_good.png": pngBytes(t),
	})

	conn := &mockConnection{downloadFunc: serveArchive(zipData)}
	uc := usecase.NewInspector(fs, "out", io.Discard)

	thumbs, err := uc.Thumbnails(ctx, conn, "/benchy.3mf")
	gt.NoError(t, err)
	gt.Number(t, len(thumbs)).Equal(1)
	gt.Value(t, thumbs[0].Name).Equal("Metadata/thumbnail_good.png")
}

func TestThumbnails_NoMatches(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	zipData := buildZip(t, map[string][]byte{
		"3D/3dmodel.model": []byte("<model/>"),
	})

	conn := &mockConnection{downloadFunc: serveArchive(zipData)}
	uc := usecase.NewInspector(fs, "out", io.Discard)

	thumbs, err := uc.Thumbnails(ctx, conn, "/benchy.3mf")
	gt.NoError(t, err)
	gt.Number(t, len(thumbs)).Equal(0)
}
