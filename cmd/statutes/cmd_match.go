package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/state-statutes-project/statutes/pkg/statutes/config"
	"github.com/state-statutes-project/statutes/pkg/statutes/effects"
)

var matchFlags struct {
	configPath string
}

var matchEffectCmd = &cobra.Command{
	Use:   "match-effect <label>",
	Short: "Map a generated effect label to its nearest vocabulary term",
	Long: `Score a generated effect label against every controlled-vocabulary term
using partial-ratio string similarity and print the best match. This is
an offline inspection tool for out-of-vocabulary labels; the pipeline
itself never fuzzy-corrects effects.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatchEffect,
}

func init() {
	matchEffectCmd.Flags().StringVarP(&matchFlags.configPath, "config", "c", "", "Pipeline configuration file (for a custom vocabulary)")
}

func runMatchEffect(cmd *cobra.Command, args []string) error {
	vocab := effects.Vocabulary(config.DefaultVocabulary)
	if matchFlags.configPath != "" {
		cfg, err := config.Load(matchFlags.configPath)
		if err != nil {
			return err
		}
		vocab = effects.Vocabulary(cfg.Vocabulary)
	}

	match, score := effects.ClosestEffect(args[0], vocab)
	fmt.Printf("Best match for %q is %q with score %d\n", args[0], match, score)
	return nil
}
