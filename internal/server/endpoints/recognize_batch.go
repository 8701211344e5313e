package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
)

// BatchItem is the per-file outcome of a batch recognition.
type BatchItem struct {
	Filename string               `json:"filename"`
	Result   *RecognitionResponse `json:"result,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// BatchResponse is the response for batch recognition.
type BatchResponse struct {
	Items []BatchItem `json:"items"`
}

// BatchRecognizeEndpoint handles POST /api/recognitions/batch. Each file runs
// through its own independent pipeline; the pipelines share nothing but the
// result store.
type BatchRecognizeEndpoint struct{}

var _ api.Endpoint = (*BatchRecognizeEndpoint)(nil)

func (e *BatchRecognizeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/recognitions/batch", e.handler
}

func (e *BatchRecognizeEndpoint) RequiresInit() bool { return true }

func (e *BatchRecognizeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no images uploaded")
		return
	}

	items := make([]BatchItem, len(files))
	var wg sync.WaitGroup
	for i, fh := range files {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := BatchItem{Filename: fh.Filename}
			resp, _, errMsg := recognizeOne(r, fh, userID)
			if errMsg != "" {
				item.Error = errMsg
			} else {
				item.Result = &resp
			}
			items[i] = item
		}()
	}
	wg.Wait()

	writeJSON(w, http.StatusOK, BatchResponse{Items: items})
}

func (e *BatchRecognizeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var userID int64
	cmd := &cobra.Command{
		Use:   "batch <image>...",
		Short: "Upload multiple images and recognize each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp BatchResponse
			fields := map[string]string{"user_id": strconv.FormatInt(userID, 10)}
			if err := client.PostFiles(cmd.Context(), "/api/recognitions/batch", "images", args, fields, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 1, "User id to record the recognitions under")
	return cmd
}
