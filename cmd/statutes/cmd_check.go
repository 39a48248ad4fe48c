package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/state-statutes-project/statutes/pkg/statutes/validate"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a statutes JSON export for structural consistency",
	Long: `Check a statutes_data.json export for structural abnormalities:
missing required fields, malformed tag mappings, unexpected fields, and
content-shape problems. Exits 0 when every entry is clean, 1 otherwise.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "statutes_data.json"
		if len(args) == 1 {
			path = args[0]
		}
		os.Exit(validate.Run(path, os.Stdout))
	},
}
