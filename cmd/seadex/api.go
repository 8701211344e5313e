package main

import (
	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Interact with a running seadex server",
	Long: `Interact with a running seadex server over HTTP.

Commands mirror the server's REST endpoints: upload images for
recognition, look up past results, and manage the recognition history.`,
}

var recognitionsCmd = &cobra.Command{
	Use:   "recognitions",
	Short: "Upload images and look up recognition results",
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse, export, and delete recognition history",
}

func getServerURL() string {
	return serverURL
}

func init() {
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "seadex server URL",
	)

	for _, ep := range endpoints.ServerCommands() {
		if c := ep.Command(getServerURL); c != nil {
			apiCmd.AddCommand(c)
		}
	}
	for _, ep := range endpoints.RecognitionCommands() {
		if c := ep.Command(getServerURL); c != nil {
			recognitionsCmd.AddCommand(c)
		}
	}
	for _, ep := range endpoints.RecordCommands() {
		if c := ep.Command(getServerURL); c != nil {
			recordsCmd.AddCommand(c)
		}
	}

	apiCmd.AddCommand(recognitionsCmd)
	apiCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(apiCmd)
}
