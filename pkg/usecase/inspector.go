package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"path"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/afero"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
)

type inspector struct {
	fs        afero.Fs
	outputDir string
	out       io.Writer // human-readable listings (examine, tree)
}

// NewInspector creates a new instance of Inspector. Extracted assets are
// written under outputDir; listings meant for humans go to out.
func NewInspector(fs afero.Fs, outputDir string, out io.Writer) interfaces.Inspector {
	return &inspector{
		fs:        fs,
		outputDir: outputDir,
		out:       out,
	}
}

// withArchive downloads remotePath into a scoped temporary file, opens the
// bytes as a ZIP archive and hands the reader to fn. The temporary file is
// removed on every return path, including failures inside fn.
func (uc *inspector) withArchive(ctx context.Context, conn interfaces.PrinterConnection, remotePath string, fn func(zr *zip.Reader) error) error {
	logger := ctxlog.From(ctx)

	tmp, err := afero.TempFile(uc.fs, "", "bambuspect-*.3mf")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file")
	}
	tmpName := tmp.Name()
	defer func() {
		if err := uc.fs.Remove(tmpName); err != nil {
			logger.Warn("Failed to remove temporary file", "path", tmpName, "error", err)
		}
	}()

	downloadStart := time.Now()
	if err := conn.Download(ctx, remotePath, tmp); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to download archive", goerr.V("path", remotePath))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to flush temporary file", goerr.V("path", tmpName))
	}
	downloadTime := time.Since(downloadStart)

	data, err := afero.ReadFile(uc.fs, tmpName)
	if err != nil {
		return goerr.Wrap(err, "failed to read temporary file", goerr.V("path", tmpName))
	}

	logger.Info("Downloaded archive",
		"path", remotePath,
		"size_mb", float64(len(data))/1024/1024,
		"duration_sec", downloadTime.Seconds(),
	)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return goerr.Wrap(err, "failed to open archive", goerr.V("path", remotePath))
	}

	return fn(zr)
}

// writeEntry copies one archive entry verbatim to destPath, overwriting any
// previous extraction
func (uc *inspector) writeEntry(entry *zip.File, destPath string) (int64, error) {
	rc, err := entry.Open()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open archive entry", goerr.V("entry", entry.Name))
	}
	defer rc.Close()

	dest, err := uc.fs.Create(destPath)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create destination file", goerr.V("path", destPath))
	}
	defer dest.Close()

	n, err := io.Copy(dest, rc)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to copy entry content", goerr.V("path", destPath))
	}

	return n, nil
}

// archiveBaseName strips the directory and extension from a remote path:
// "/cache/benchy.3mf" becomes "benchy"
func archiveBaseName(remotePath string) string {
	base := path.Base(remotePath)
	return strings.TrimSuffix(base, path.Ext(base))
}
