// Package disk implements file storage on the local filesystem.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/VistorGiese/accounts-service/internal/storage"
)

var _ storage.FileStore = (*Store)(nil)

// Store writes uploaded files into a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the file under dir. Keys are opaque names generated by the
// caller; path separators are rejected so a key cannot escape the directory.
func (s *Store) Save(ctx context.Context, key string, r io.Reader, size int64) error {
	if key == "" || filepath.Base(key) != key {
		return fmt.Errorf("invalid storage key %q", key)
	}

	f, err := os.OpenFile(filepath.Join(s.dir, key), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Exists reports whether a file with the given key was stored.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.dir, key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}
