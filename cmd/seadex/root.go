package main

import (
	"github.com/spf13/cobra"

	"github.com/seadex/seadex/internal/api"
	"github.com/seadex/seadex/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "seadex",
	Short: "Marine species recognition powered by a vision-language model",
	Long: `Seadex identifies marine species from photographs.

An uploaded image is sent to a vision-language model together with a strict
JSON instruction; the model's free-form reply is normalized into a complete
recognition record with taxonomy, habitat, and confidence. Recognition
history is kept in a local database with keyword search and export.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.seadex/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "seadex home directory (default: ~/.seadex)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
