package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/state-statutes-project/statutes/pkg/statutes"
	"github.com/state-statutes-project/statutes/pkg/statutes/config"
)

var prepareFlags struct {
	configPath string
	output     string
}

var prepareTagsCmd = &cobra.Command{
	Use:   "prepare-tags",
	Short: "Merge code units with boolean tag annotations into the artifact",
	Long: `Run the boolean tag pipeline: load the code unit snapshot, join each
unit against every configured yes/no tag file, and write the merged
table as a gzip-compressed parquet artifact.`,
	RunE: runPrepareTags,
}

var prepareEffectsCmd = &cobra.Command{
	Use:   "prepare-effects",
	Short: "Merge code units with legal-effect annotations into the artifact",
	Long: `Run the legal-effects pipeline: load the code unit snapshot, repair and
decode each unit's LLM-generated effect string, filter effects against
the controlled vocabulary, and write the merged table as a
gzip-compressed parquet artifact. Units whose effect strings cannot be
repaired are dropped and tallied.`,
	RunE: runPrepareEffects,
}

func init() {
	for _, cmd := range []*cobra.Command{prepareTagsCmd, prepareEffectsCmd} {
		f := cmd.Flags()
		f.StringVarP(&prepareFlags.configPath, "config", "c", "pipeline.yaml", "Pipeline configuration file")
		f.StringVarP(&prepareFlags.output, "output", "o", "", "Artifact output path (overrides config)")
	}
}

func loadPipelineConfig() (*config.Pipeline, error) {
	cfg, err := config.Load(prepareFlags.configPath)
	if err != nil {
		return nil, err
	}
	if prepareFlags.output != "" {
		cfg.Output = prepareFlags.output
	}
	return cfg, nil
}

func runPrepareTags(cmd *cobra.Command, args []string) error {
	cfg, err := loadPipelineConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	report, err := statutes.PrepareTags(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %d records to %s (run %s)\n", report.Records, report.Output, report.RunID)
	return nil
}

func runPrepareEffects(cmd *cobra.Command, args []string) error {
	cfg, err := loadPipelineConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	report, err := statutes.PrepareEffects(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %d records to %s (run %s)\n", report.Records, report.Output, report.RunID)
	fmt.Printf("Number of errors: %d\n", report.Errors)
	for _, skip := range report.Skips {
		fmt.Printf("  skipped %s: %s\n", skip.UniqueID, skip.Reason)
	}
	return nil
}
