package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/config"
	"github.com/seadex/seadex/internal/home"
	"github.com/seadex/seadex/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the seadex HTTP server",
	Long: `Start the seadex HTTP server.

The server accepts image uploads, runs them through the vision-language
model, and keeps recognition history in a local SQLite database under the
seadex home directory. Configuration changes are picked up without a
restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := resolveHome()
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return fmt.Errorf("creating home directory: %w", err)
		}

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cm.WatchConfig()

		cfg := cm.Get()
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.LogLevel(),
		}))
		host := serveHost
		if host == "" {
			host = cfg.Server.Host
		}
		port := servePort
		if port == "" {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			Home:          h,
			ConfigManager: cm,
			Logger:        logger,
		})
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		logger.Info("starting server", "addr", srv.Addr(), "home", h.Path())
		return srv.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "address to bind to (overrides config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

// resolveHome builds the home directory from the --home flag, falling back
// to ~/.seadex.
func resolveHome() (*home.Dir, error) {
	return home.New(homeDir)
}
