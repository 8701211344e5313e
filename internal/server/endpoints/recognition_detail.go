package endpoints

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/recognition"
	"github.com/seadex/seadex/internal/records"
	"github.com/seadex/seadex/internal/svcctx"
)

// GetRecognitionEndpoint handles GET /api/recognitions/{id}. The durable
// store is consulted first, then the process-local cache; an id neither knows
// is a 404, never a synthesized default record.
type GetRecognitionEndpoint struct{}

var _ api.Endpoint = (*GetRecognitionEndpoint)(nil)

func (e *GetRecognitionEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/recognitions/{id}", e.handler
}

func (e *GetRecognitionEndpoint) RequiresInit() bool { return true }

func (e *GetRecognitionEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	store := svcctx.RecordsFrom(r.Context())
	rec, err := store.GetByID(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, responseFromDurable(rec))
		return
	case !errors.Is(err, sql.ErrNoRows):
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load record: %v", err))
		return
	}

	if cached, ok := svcctx.ResultStoreFrom(r.Context()).Get(id); ok {
		writeJSON(w, http.StatusOK, RecognitionResponse{
			ID:        cached.ID,
			Record:    cached.Record,
			ImageURL:  cached.ImageURL,
			CreatedAt: cached.CreatedAt,
		})
		return
	}

	writeError(w, http.StatusNotFound, fmt.Sprintf("no recognition result with id %d", id))
}

// responseFromDurable rebuilds the API response from a durable record row.
func responseFromDurable(rec records.Record) RecognitionResponse {
	var classification recognition.Classification
	// A malformed classification column degrades to empty ranks.
	_ = json.Unmarshal([]byte(rec.Classification), &classification)

	return RecognitionResponse{
		ID: rec.ID,
		Record: recognition.Record{
			ScientificName:     rec.ScientificName,
			CommonName:         rec.CommonName,
			ChineseName:        rec.RecognitionResult,
			Classification:     classification,
			Habitat:            rec.Habitat,
			Distribution:       rec.Distribution,
			Characteristics:    rec.Characteristics,
			SizeRange:          rec.SizeRange,
			Diet:               rec.Diet,
			ConservationStatus: rec.ConservationStatus,
			Description:        rec.Description,
			Confidence:         rec.Confidence,
		},
		ImageURL:  rec.ImageURL,
		CreatedAt: rec.CreatedAt,
	}
}

func (e *GetRecognitionEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a recognition result by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp RecognitionResponse
			if err := client.Get(cmd.Context(), "/api/recognitions/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
