package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImageStore_Save(t *testing.T) {
	s := NewImageStore(t.TempDir())

	url, err := s.Save([]byte("image-bytes"), "reef shot.PNG")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix) {
		t.Errorf("url %q missing prefix %q", url, URLPrefix)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("url %q should keep a lowercased extension", url)
	}
	if strings.Contains(url, "reef") {
		t.Errorf("url %q leaks the original filename", url)
	}

	path, err := s.FilePath(url)
	if err != nil {
		t.Fatalf("FilePath failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved image: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("saved bytes = %q", data)
	}
}

func TestImageStore_SaveDefaultsExtension(t *testing.T) {
	s := NewImageStore(t.TempDir())

	url, err := s.Save([]byte("x"), "noextension")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url %q should default to .jpg", url)
	}
}

func TestImageStore_UniqueNames(t *testing.T) {
	s := NewImageStore(t.TempDir())

	a, _ := s.Save([]byte("x"), "same.jpg")
	b, _ := s.Save([]byte("x"), "same.jpg")
	if a == b {
		t.Errorf("two saves of the same name produced the same url %q", a)
	}
}

func TestImageStore_FilePathRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	s := NewImageStore(dir)

	bad := []string{
		URLPrefix + "../../etc/passwd",
		URLPrefix,
		"/other/path/x.jpg",
		URLPrefix + "sub/dir.jpg",
	}
	for _, p := range bad {
		if got, err := s.FilePath(p); err == nil {
			t.Errorf("FilePath(%q) = %q, want error", p, got)
		}
	}
}

func TestImageStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s := NewImageStore(dir)

	if _, err := s.Save([]byte("x"), "a.jpg"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("uploads directory not created: %v", err)
	}
}
