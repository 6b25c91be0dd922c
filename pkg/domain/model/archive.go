package model

import "image"

// ExtractResult represents the outcome of a required-file extraction
type ExtractResult struct {
	OutputDir string   // Directory the entries were written to
	Files     []string // Base names written, in extraction order
	Size      int64    // Total bytes written
}

// Thumbnail is a preview image decoded straight out of a 3MF archive
type Thumbnail struct {
	Name   string      // Entry name inside the archive
	Format string      // Decoder that matched, e.g. "png"
	Image  image.Image // Decoded pixels, held in memory only
}
