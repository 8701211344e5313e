package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
)

type fakeEndpoint struct {
	method       string
	path         string
	requiresInit bool
	hasCommand   bool
}

func (f *fakeEndpoint) Route() (string, string, http.HandlerFunc) {
	return f.method, f.path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

func (f *fakeEndpoint) RequiresInit() bool { return f.requiresInit }

func (f *fakeEndpoint) Command(getServerURL func() string) *cobra.Command {
	if !f.hasCommand {
		return nil
	}
	return &cobra.Command{Use: f.path}
}

func TestRegistry_RegisterRoutes(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeEndpoint{method: "GET", path: "/open"})
	r.Register(&fakeEndpoint{method: "GET", path: "/guarded", requiresInit: true})

	var wrapped []string
	middleware := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			wrapped = append(wrapped, req.URL.Path)
			h(w, req)
		}
	}

	mux := http.NewServeMux()
	r.RegisterRoutes(mux, middleware)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/open", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("open status = %d", rec.Code)
	}
	if len(wrapped) != 0 {
		t.Error("middleware should not wrap endpoints that skip init")
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/guarded", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("guarded status = %d", rec.Code)
	}
	if len(wrapped) != 1 {
		t.Error("middleware should wrap init-requiring endpoints")
	}

	// Method is part of the pattern.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/open", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("wrong-method status = %d", rec.Code)
	}
}

func TestRegistry_BuildCommands(t *testing.T) {
	r := NewRegistry()
	r.Register(&fakeEndpoint{method: "GET", path: "list", hasCommand: true})
	r.Register(&fakeEndpoint{method: "GET", path: "/no-cli"})

	cmd := r.BuildCommands(func() string { return "http://localhost:8080" })
	if len(cmd.Commands()) != 1 {
		t.Errorf("commands = %d, want 1 (nil commands skipped)", len(cmd.Commands()))
	}
}
