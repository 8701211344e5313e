// Package storage persists uploaded images on disk and hands back the URL
// path they will be served under. Failures here are the caller's problem,
// not the recognition pipeline's: a photo that cannot be saved surfaces as
// an error response.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the path uploaded images are served under.
const URLPrefix = "/uploads/images/"

// ImageStore saves uploaded images under a root directory.
type ImageStore struct {
	dir string
}

// NewImageStore creates an image store rooted at dir.
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Save writes image bytes to disk under a fresh UUID filename, preserving
// the original file extension, and returns the public URL path.
func (s *ImageStore) Save(data []byte, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return URLPrefix + name, nil
}

// FilePath resolves a URL path produced by Save back to the on-disk path.
// Paths outside the store's directory are rejected.
func (s *ImageStore) FilePath(urlPath string) (string, error) {
	name := strings.TrimPrefix(urlPath, URLPrefix)
	if name == urlPath || name == "" {
		return "", fmt.Errorf("not an uploads path: %s", urlPath)
	}
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid image name: %s", name)
	}
	return filepath.Join(s.dir, name), nil
}

// Dir returns the root directory images are stored in.
func (s *ImageStore) Dir() string {
	return s.dir
}
