package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/svcctx"
)

// DeleteRecordsRequest is the body for batch record deletion.
type DeleteRecordsRequest struct {
	UserID int64   `json:"user_id"`
	IDs    []int64 `json:"ids"`
}

// DeleteRecordsResponse reports how many records were removed.
type DeleteRecordsResponse struct {
	Deleted int64 `json:"deleted"`
}

// DeleteRecordsEndpoint handles DELETE /api/records. Only records owned by
// the requesting user are removed.
type DeleteRecordsEndpoint struct{}

var _ api.Endpoint = (*DeleteRecordsEndpoint)(nil)

func (e *DeleteRecordsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/records", e.handler
}

func (e *DeleteRecordsEndpoint) RequiresInit() bool { return true }

func (e *DeleteRecordsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req DeleteRecordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.UserID <= 0 {
		writeError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "no record ids given")
		return
	}

	store := svcctx.RecordsFrom(r.Context())
	deleted, err := store.DeleteBatch(r.Context(), req.UserID, req.IDs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to delete records: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, DeleteRecordsResponse{Deleted: deleted})
}

func (e *DeleteRecordsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var userID int64
	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete recognition records by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid id %q", arg)
				}
				ids = append(ids, id)
			}

			client := api.NewClient(getServerURL())
			var resp DeleteRecordsResponse
			req := DeleteRecordsRequest{UserID: userID, IDs: ids}
			if err := client.Delete(cmd.Context(), "/api/records", req, &resp); err != nil {
				return err
			}
			fmt.Printf("Deleted %d record(s): %s\n", resp.Deleted, strings.Join(args, ", "))
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 1, "User id owning the records")
	return cmd
}
