// Package storage lists directories of the public tree, from local disk or a Cloud Storage bucket.
//
// Paths handed to a Store are slash-separated and absolute with respect to the store: they always
// start with Root().
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned when a directory does not exist in the store
var ErrNotExist = errors.New("directory does not exist")

// Entry is one child of a listed directory
type Entry struct {
	Name  string
	IsDir bool
}

// Store is a read-only view of the public tree
type Store interface {
	// Root is the path every resolved folder must stay under.
	Root() string
	// Backend names the implementation for diagnostics.
	Backend() string
	// IsDir reports whether name exists and is a directory.
	IsDir(ctx context.Context, name string) (bool, error)
	// ReadDir lists the direct children of name, or returns ErrNotExist.
	ReadDir(ctx context.Context, name string) ([]Entry, error)
}
