package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/spf13/afero"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/model"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/usecase"
)

func TestScan_ProcessesAllArchives(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	zipData := buildZip(t, requiredSet)

	conn := &mockConnection{
		listFilesFunc: func(ctx context.Context, folder, ext string) ([]model.RemoteFile, error) {
			gt.Value(t, folder).Equal("/")
			gt.Value(t, ext).Equal(".3mf")
			return []model.RemoteFile{
				{Name: "benchy.3mf", Path: "/benchy.3mf"},
				{Name: "calicat.3mf", Path: "/calicat.3mf"},
			}, nil
		},
		downloadFunc: serveArchive(zipData),
	}

	uc := usecase.NewInspector(fs, "out", io.Discard)
	gt.NoError(t, uc.Scan(ctx, conn))

	gt.Number(t, len(conn.downloadCalls)).Equal(2)
	for _, dir := range []string{"out/benchy", "out/calicat"} {
		written, err := afero.ReadDir(fs, dir)
		gt.NoError(t, err)
		gt.Number(t, len(written)).Equal(3)
	}

	assertNoTempFiles(t, fs)
}

func TestScan_ContinuesAfterArchiveFailure(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	zipData := buildZip(t, requiredSet)

	conn := &mockConnection{
		listFilesFunc: func(ctx context.Context, folder, ext string) ([]model.RemoteFile, error) {
			return []model.RemoteFile{
				{Name: "broken.3mf", Path: "/broken.3mf"},
				{Name: "benchy.3mf", Path: "/benchy.3mf"},
			}, nil
		},
		downloadFunc: func(ctx context.Context, remotePath string, w io.Writer) error {
			if remotePath == "/broken.3mf" {
				return errors.New("transfer aborted")
			}
			_, err := w.Write(zipData)
			return err
		},
	}

	uc := usecase.NewInspector(fs, "out", io.Discard)

	// One archive failing does not fail the scan
	gt.NoError(t, uc.Scan(ctx, conn))

	written, err := afero.ReadDir(fs, "out/benchy")
	gt.NoError(t, err)
	gt.Number(t, len(written)).Equal(3)
}

func TestScan_ListError(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	conn := &mockConnection{
		listFilesFunc: func(ctx context.Context, folder, ext string) ([]model.RemoteFile, error) {
			return nil, errors.New("connection reset")
		},
	}

	uc := usecase.NewInspector(fs, "out", io.Discard)

	err := uc.Scan(ctx, conn)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to list archives")
}
