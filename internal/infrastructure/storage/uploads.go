// Package storage persists uploaded post images on the local filesystem.
// Files are written under a single uploads directory with a timestamp prefix
// to avoid collisions, and referenced by relative path in the post record so
// the HTTP layer can serve them back under the /uploads static prefix.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UploadStore writes multipart file uploads to a base directory.
type UploadStore struct {
	dir string
}

// NewUploadStore creates the base directory if needed and returns the store.
func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Save writes the uploaded file and returns the relative path to store on the
// post record, e.g. "uploads/1693238400123-cover.png".
func (s *UploadStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name)), nil
}

// Dir returns the base directory, for static file serving.
func (s *UploadStore) Dir() string {
	return s.dir
}

// sanitize strips path separators and whitespace from a client-supplied
// filename. The stored name must never escape the uploads directory.
func sanitize(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "upload"
	}
	return name
}
