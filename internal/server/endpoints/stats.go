package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/stats"
	"github.com/seadex/seadex/internal/svcctx"
)

// StatsEndpoint handles GET /api/stats: recognition call counts and timing
// since the server started.
type StatsEndpoint struct{}

var _ api.Endpoint = (*StatsEndpoint)(nil)

func (e *StatsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/stats", e.handler
}

func (e *StatsEndpoint) RequiresInit() bool { return true }

func (e *StatsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	recorder := svcctx.StatsFrom(r.Context())
	if recorder == nil {
		writeJSON(w, http.StatusOK, stats.Summary{})
		return
	}
	writeJSON(w, http.StatusOK, recorder.Summary())
}

func (e *StatsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show recognition call statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var summary stats.Summary
			if err := client.Get(cmd.Context(), "/api/stats", &summary); err != nil {
				return err
			}
			return api.Output(summary)
		},
	}
}
