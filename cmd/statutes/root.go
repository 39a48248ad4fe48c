package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/state-statutes-project/statutes/internal/logging"
)

var rootFlags struct {
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:           "statutes",
	Short:         "Batch pipelines for the statute browsing app",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(prepareTagsCmd, prepareEffectsCmd, checkCmd, matchEffectCmd)
}

// newLogger builds the logger for one command invocation.
func newLogger() (*zap.Logger, error) {
	return logging.New(rootFlags.verbose)
}
