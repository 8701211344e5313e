package endpoints

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/export"
	"github.com/seadex/seadex/internal/svcctx"
)

// ExportRecordsEndpoint handles GET /api/records/export, streaming a CSV or
// XLSX file of a user's recognition records.
type ExportRecordsEndpoint struct{}

var _ api.Endpoint = (*ExportRecordsEndpoint)(nil)

func (e *ExportRecordsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/records/export", e.handler
}

func (e *ExportRecordsEndpoint) RequiresInit() bool { return true }

func (e *ExportRecordsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID, err := strconv.ParseInt(q.Get("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "missing or invalid user_id")
		return
	}

	format := export.Format(q.Get("format"))
	if format == "" {
		format = export.FormatCSV
	}
	if format != export.FormatCSV && format != export.FormatXLSX {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown export format %q", format))
		return
	}

	store := svcctx.RecordsFrom(r.Context())
	recs, err := store.ListAll(r.Context(), userID, q.Get("keyword"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load records: %v", err))
		return
	}

	data, err := export.Render(format, recs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render export: %v", err))
		return
	}

	filename := export.Filename(format, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (e *ExportRecordsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		userID  int64
		format  string
		keyword string
		outFile string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recognition records to CSV or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			params := url.Values{}
			params.Set("user_id", strconv.FormatInt(userID, 10))
			params.Set("format", format)
			if keyword != "" {
				params.Set("keyword", keyword)
			}

			data, err := client.GetRaw(cmd.Context(), "/api/records/export?"+params.Encode())
			if err != nil {
				return err
			}

			path := outFile
			if path == "" {
				path = export.Filename(export.Format(format), time.Now().Format("20060102_150405"))
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			fmt.Printf("Wrote %d bytes to %s\n", len(data), path)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 1, "User id to export records for")
	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or xlsx")
	cmd.Flags().StringVar(&keyword, "keyword", "", "Filter by recognized or scientific name")
	cmd.Flags().StringVar(&outFile, "out", "", "Output file path (default: generated name)")
	return cmd
}
