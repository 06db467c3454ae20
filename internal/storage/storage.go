// Package storage defines the file persistence boundary used by the
// upload endpoint.
package storage

import (
	"context"
	"io"
)

// FileStore persists uploaded files under opaque keys.
type FileStore interface {
	// Save stores size bytes from r under key.
	Save(ctx context.Context, key string, r io.Reader, size int64) error
	// Exists reports whether key is already stored.
	Exists(ctx context.Context, key string) (bool, error)
}
