package interfaces

import (
	"context"
	"io"
	"time"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/model"
)

// PrinterClient opens sessions against a printer's storage
type PrinterClient interface {
	// Connect establishes a session. The caller owns the returned
	// connection and must close it.
	Connect(ctx context.Context) (PrinterConnection, error)
}

// PrinterConnection is one open session against the printer's file storage.
// The contract deliberately stays minimal: listings yield plain descriptors
// with no file/directory flag, and size/date are separate point queries.
type PrinterConnection interface {
	// ListFiles lists the immediate children of folder. A non-empty ext
	// keeps only names carrying that suffix (case-insensitive).
	ListFiles(ctx context.Context, folder, ext string) ([]model.RemoteFile, error)

	// Download streams the remote file at remotePath into w.
	Download(ctx context.Context, remotePath string, w io.Writer) error

	// FileSize returns the size of the file at path. Directories fail.
	FileSize(ctx context.Context, path string) (int64, error)

	// FileDate returns the modification time of the file at path.
	FileDate(ctx context.Context, path string) (time.Time, error)

	// Close terminates the session
	Close() error
}
