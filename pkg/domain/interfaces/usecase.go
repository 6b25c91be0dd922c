package interfaces

import (
	"context"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/model"
)

// Inspector defines the diagnostic operations against a printer's storage
type Inspector interface {
	// Scan lists every 3MF archive at the storage root and extracts the
	// required entries from each one
	Scan(ctx context.Context, conn PrinterConnection) error

	// ExtractRequired pulls the preview images and slicer settings out of
	// one archive into a directory named after the archive
	ExtractRequired(ctx context.Context, conn PrinterConnection, remotePath string) (*model.ExtractResult, error)

	// Examine prints every entry of one archive and dumps its Metadata
	// PNGs into the thumbnails directory
	Examine(ctx context.Context, conn PrinterConnection, remotePath string) error

	// Tree renders the remote directory tree rooted at root
	Tree(ctx context.Context, conn PrinterConnection, root string) error

	// Thumbnails decodes every embedded thumbnail image of one archive in
	// memory
	Thumbnails(ctx context.Context, conn PrinterConnection, remotePath string) ([]model.Thumbnail, error)
}
