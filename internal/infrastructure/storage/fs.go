package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FS stores uploaded document bodies on the local file system.
type FS struct {
	root string // absolute path to the upload directory
}

// NewFS creates an FS store rooted at the given directory, creating it when
// missing.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &FS{root: abs}, nil
}

// Save writes the body under a timestamp-prefixed name and returns the stored
// path. Only the base of fileName is used, so a crafted name cannot escape
// the upload directory.
func (f *FS) Save(fileName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fileName))
	path := filepath.Join(f.root, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("storage: close file: %w", err)
	}
	return path, nil
}
