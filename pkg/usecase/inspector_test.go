package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/spf13/afero"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/model"
)

// mockConnection is a func-field mock of interfaces.PrinterConnection
type mockConnection struct {
	listFilesFunc func(ctx context.Context, folder, ext string) ([]model.RemoteFile, error)
	downloadFunc  func(ctx context.Context, remotePath string, w io.Writer) error
	fileSizeFunc  func(ctx context.Context, path string) (int64, error)
	fileDateFunc  func(ctx context.Context, path string) (time.Time, error)

	downloadCalls []string
}

func (m *mockConnection) ListFiles(ctx context.Context, folder, ext string) ([]model.RemoteFile, error) {
	if m.listFilesFunc != nil {
		return m.listFilesFunc(ctx, folder, ext)
	}
	return nil, errors.New("mock not configured")
}

func (m *mockConnection) Download(ctx context.Context, remotePath string, w io.Writer) error {
	m.downloadCalls = append(m.downloadCalls, remotePath)
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, remotePath, w)
	}
	return errors.New("mock not configured")
}

func (m *mockConnection) FileSize(ctx context.Context, path string) (int64, error) {
	if m.fileSizeFunc != nil {
		return m.fileSizeFunc(ctx, path)
	}
	return 0, errors.New("mock not configured")
}

func (m *mockConnection) FileDate(ctx context.Context, path string) (time.Time, error) {
	if m.fileDateFunc != nil {
		return m.fileDateFunc(ctx, path)
	}
	return time.Time{}, errors.New("mock not configured")
}

func (m *mockConnection) Close() error { return nil }

// serveArchive returns a download func that writes data for every path
func serveArchive(data []byte) func(ctx context.Context, remotePath string, w io.Writer) error {
	return func(ctx context.Context, remotePath string, w io.Writer) error {
		_, err := w.Write(data)
		return err
	}
}

// buildZip builds an in-memory ZIP archive with the given entries
func buildZip(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for name, content := range entries {
		w, err := zw.Create(name)
		gt.NoError(t, err)

		_, err = w.Write(content)
		gt.NoError(t, err)
	}

	gt.NoError(t, zw.Close())
	return buf.Bytes()
}

// pngBytes encodes a 1x1 PNG image
func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	gt.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// assertNoTempFiles verifies no downloaded archive outlived its processing
// block
func assertNoTempFiles(t *testing.T, fs afero.Fs) {
	t.Helper()

	err := afero.Walk(fs, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil {
			return nil
		}
		if !info.IsDir() && strings.Contains(path, "bambuspect-") {
			t.Errorf("temporary file left behind: %s", path)
		}
		return nil
	})
	gt.NoError(t, err)
}
