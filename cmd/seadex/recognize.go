package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/internal/config"
	"github.com/seadex/seadex/internal/recognition"
	"github.com/seadex/seadex/internal/vision"
)

// recognizeCmd runs the recognition pipeline against a local image without a
// server: read, send to the model, normalize, print. Nothing is stored.
var recognizeCmd = &cobra.Command{
	Use:   "recognize <image>",
	Short: "Recognize a marine species from a local image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}
		contentType := http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "image/") {
			return fmt.Errorf("%s does not look like an image (%s)", args[0], contentType)
		}

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		pipeline := recognition.NewPipeline(vision.NewClient(cm.Get().ToVisionConfig()), logger)

		record := pipeline.Recognize(cmd.Context(), data, contentType)
		return api.Output(record)
	},
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
}
