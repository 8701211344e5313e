package endpoints

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/records"
	"github.com/seadex/seadex/internal/svcctx"
)

// ListRecordsEndpoint handles GET /api/records with paging and keyword
// filtering, scoped to one user.
type ListRecordsEndpoint struct{}

var _ api.Endpoint = (*ListRecordsEndpoint)(nil)

func (e *ListRecordsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/records", e.handler
}

func (e *ListRecordsEndpoint) RequiresInit() bool { return true }

func (e *ListRecordsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID, err := strconv.ParseInt(q.Get("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	current := intQuery(q.Get("current"), 1)
	size := intQuery(q.Get("size"), 10)
	keyword := q.Get("keyword")

	store := svcctx.RecordsFrom(r.Context())
	page, err := store.List(r.Context(), userID, current, size, keyword)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list records: %v", err))
		return
	}
	if page.Records == nil {
		page.Records = []records.Record{}
	}

	writeJSON(w, http.StatusOK, page)
}

func intQuery(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func (e *ListRecordsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		userID  int64
		current int
		size    int
		keyword string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recognition records for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			params := url.Values{}
			params.Set("user_id", strconv.FormatInt(userID, 10))
			params.Set("current", strconv.Itoa(current))
			params.Set("size", strconv.Itoa(size))
			if keyword != "" {
				params.Set("keyword", keyword)
			}
			var page records.Page
			if err := client.Get(cmd.Context(), "/api/records?"+params.Encode(), &page); err != nil {
				return err
			}
			return api.Output(page)
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 1, "User id to list records for")
	cmd.Flags().IntVar(&current, "page", 1, "Page number")
	cmd.Flags().IntVar(&size, "size", 10, "Page size")
	cmd.Flags().StringVar(&keyword, "keyword", "", "Filter by recognized or scientific name")
	return cmd
}
