package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fileHeader builds a real *multipart.FileHeader by round-tripping a multipart
// body through the stdlib parser, the same way an HTTP handler receives it.
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("featuredImage", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["featuredImage"][0]
}

func TestUploadStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewUploadStore(dir)
	if err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}

	path, err := store.Save(fileHeader(t, "cover.png", "png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasPrefix(path, "uploads/") {
		t.Fatalf("expected uploads/ prefix, got %q", path)
	}
	if !strings.HasSuffix(path, "-cover.png") {
		t.Fatalf("expected timestamped filename, got %q", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("content mismatch: %q", data)
	}
}

func TestUploadStore_SanitizesFilename(t *testing.T) {
	store, err := NewUploadStore(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}

	path, err := store.Save(fileHeader(t, "my cover image.png", "x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(path, " ") {
		t.Fatalf("spaces must be replaced, got %q", path)
	}

	// A traversal attempt stays inside the uploads directory.
	path, err = store.Save(fileHeader(t, "../../etc/passwd", "x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(path, "..") {
		t.Fatalf("path must not contain traversal, got %q", path)
	}
}

func TestUploadStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewUploadStore(dir); err != nil {
		t.Fatalf("NewUploadStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s, err=%v", dir, err)
	}
}
