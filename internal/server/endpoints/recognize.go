package endpoints

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/recognition"
	"github.com/seadex/seadex/internal/records"
	"github.com/seadex/seadex/internal/stats"
	"github.com/seadex/seadex/internal/svcctx"
)

// maxUploadMemory bounds how much of a multipart form is held in memory.
const maxUploadMemory = 32 << 20 // 32MB

// RecognitionResponse is the recognition result returned to the caller.
type RecognitionResponse struct {
	ID        int64              `json:"id"`
	Record    recognition.Record `json:"record"`
	ImageURL  string             `json:"imageUrl"`
	CreatedAt time.Time          `json:"createdAt"`
}

// RecognizeEndpoint handles POST /api/recognitions with a multipart image upload.
type RecognizeEndpoint struct{}

var _ api.Endpoint = (*RecognizeEndpoint)(nil)

func (e *RecognizeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/recognitions", e.handler
}

func (e *RecognizeEndpoint) RequiresInit() bool { return true }

func (e *RecognizeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "no image uploaded")
		return
	}

	resp, status, errMsg := recognizeOne(r, files[0], userID)
	if errMsg != "" {
		writeError(w, status, errMsg)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// recognizeOne validates, stores, and recognizes a single uploaded image.
// Model-side failure still yields a complete (default) record; only file and
// storage problems surface as errors.
func recognizeOne(r *http.Request, fh *multipart.FileHeader, userID int64) (RecognitionResponse, int, string) {
	cfgMgr := svcctx.ConfigMgrFrom(r.Context())
	maxSize := int64(10 << 20)
	if cfgMgr != nil && cfgMgr.Get().Upload.MaxSizeBytes > 0 {
		maxSize = cfgMgr.Get().Upload.MaxSizeBytes
	}
	if fh.Size > maxSize {
		return RecognitionResponse{}, http.StatusBadRequest,
			fmt.Sprintf("image exceeds maximum size of %d bytes", maxSize)
	}

	src, err := fh.Open()
	if err != nil {
		return RecognitionResponse{}, http.StatusInternalServerError,
			fmt.Sprintf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return RecognitionResponse{}, http.StatusInternalServerError,
			fmt.Sprintf("failed to read uploaded file: %v", err)
	}
	if len(data) == 0 {
		return RecognitionResponse{}, http.StatusBadRequest, "uploaded file is empty"
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return RecognitionResponse{}, http.StatusBadRequest, "uploaded file is not an image"
	}

	images := svcctx.ImagesFrom(r.Context())
	imageURL, err := images.Save(data, fh.Filename)
	if err != nil {
		return RecognitionResponse{}, http.StatusInternalServerError,
			fmt.Sprintf("failed to store image: %v", err)
	}

	pipeline := svcctx.PipelineFrom(r.Context())
	started := time.Now()
	record := pipeline.Recognize(r.Context(), data, contentType)
	if recorder := svcctx.StatsFrom(r.Context()); recorder != nil {
		outcome := stats.OutcomeRecognized
		if record == recognition.DefaultRecord() {
			outcome = stats.OutcomeFallback
		}
		recorder.Record(outcome, time.Since(started))
	}

	resultStore := svcctx.ResultStoreFrom(r.Context())
	cacheID := resultStore.Put(record, imageURL)

	resp := RecognitionResponse{
		ID:        cacheID,
		Record:    record,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}

	// The durable id wins when persistence succeeds; the cache id is only a
	// fallback so the result stays retrievable if the database is down.
	store := svcctx.RecordsFrom(r.Context())
	saved, err := store.Save(r.Context(), records.FromRecognition(record, userID, imageURL))
	if err != nil {
		if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
			logger.Error("failed to persist recognition record", "error", err)
		}
	} else {
		resp.ID = saved.ID
		resp.CreatedAt = saved.CreatedAt
	}

	return resp, http.StatusOK, ""
}

func (e *RecognizeEndpoint) Command(getServerURL func() string) *cobra.Command {
	var userID int64
	cmd := &cobra.Command{
		Use:   "recognize <image>",
		Short: "Upload an image and recognize the species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp RecognitionResponse
			fields := map[string]string{"user_id": strconv.FormatInt(userID, 10)}
			if err := client.PostFiles(cmd.Context(), "/api/recognitions", "image", args[:1], fields, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 1, "User id to record the recognition under")
	return cmd
}
