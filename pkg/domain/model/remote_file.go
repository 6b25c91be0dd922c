package model

import "time"

// RemoteFile describes one entry returned by the printer's file listing.
// Descriptors are ephemeral: they are only valid for the listing call that
// produced them, and carry whatever the server reported at that moment.
type RemoteFile struct {
	Name    string    // Base name of the entry
	Path    string    // Full remote path, always forward-slash separated
	Size    int64     // Size reported by the listing, 0 when unknown
	ModTime time.Time // Modification time reported by the listing
}
