package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/things/1" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"name":"coral"}`))
	}))
	defer srv.Close()

	var result struct {
		Name string `json:"name"`
	}
	c := NewClient(srv.URL)
	if err := c.Get(context.Background(), "/things/1", &result); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if result.Name != "coral" {
		t.Errorf("name = %q", result.Name)
	}
}

func TestClient_GetServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no such record"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Get(context.Background(), "/missing", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no such record") {
		t.Errorf("error should carry the server message, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error should carry the status code, got %v", err)
	}
}

func TestClient_PostFiles(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "fish.jpg")
	if err := os.WriteFile(imgPath, []byte("fake-jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing form: %v", err)
		}
		if got := r.FormValue("user_id"); got != "7" {
			t.Errorf("user_id = %q", got)
		}
		files := r.MultipartForm.File["image"]
		if len(files) != 1 || files[0].Filename != "fish.jpg" {
			t.Errorf("files = %+v", files)
		}
		f, _ := files[0].Open()
		data, _ := io.ReadAll(f)
		f.Close()
		if string(data) != "fake-jpeg" {
			t.Errorf("uploaded bytes = %q", data)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var result map[string]any
	c := NewClient(srv.URL)
	err := c.PostFiles(context.Background(), "/upload", "image",
		[]string{imgPath}, map[string]string{"user_id": "7"}, &result)
	if err != nil {
		t.Fatalf("PostFiles failed: %v", err)
	}
	if result["ok"] != true {
		t.Errorf("result = %v", result)
	}
}

func TestClient_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q", r.Method)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if body["user_id"] != float64(1) {
			t.Errorf("body = %v", body)
		}
		w.Write([]byte(`{"deleted":2}`))
	}))
	defer srv.Close()

	var result struct {
		Deleted int `json:"deleted"`
	}
	c := NewClient(srv.URL)
	err := c.Delete(context.Background(), "/records", map[string]any{"user_id": 1}, &result)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if result.Deleted != 2 {
		t.Errorf("deleted = %d", result.Deleted)
	}
}

func TestClient_GetRaw(t *testing.T) {
	payload := []byte{0xEF, 0xBB, 0xBF, 'I', 'D'}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	data, err := c.GetRaw(context.Background(), "/export")
	if err != nil {
		t.Fatalf("GetRaw failed: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("data = %v", data)
	}
}
