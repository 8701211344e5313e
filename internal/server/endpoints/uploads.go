package endpoints

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/storage"
	"github.com/seadex/seadex/internal/svcctx"
)

// UploadsEndpoint serves stored images under /uploads/images/.
type UploadsEndpoint struct{}

var _ api.Endpoint = (*UploadsEndpoint)(nil)

func (e *UploadsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/uploads/images/{name}", e.handler
}

func (e *UploadsEndpoint) RequiresInit() bool { return true }

func (e *UploadsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	images := svcctx.ImagesFrom(r.Context())

	path, err := images.FilePath(storage.URLPrefix + r.PathValue("name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image path")
		return
	}

	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}

	http.ServeFile(w, r, path)
}

// Command returns nil: stored images are fetched with a browser or curl, not
// through the CLI.
func (e *UploadsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return nil
}
