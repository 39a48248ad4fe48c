// Package statutes runs the batch pipelines that merge machine-extracted
// minimal code units with LLM-generated annotations into the single
// parquet artifact the statute browser reads. Two variants exist: the
// boolean tag pipeline (yes/no annotation files per tag) and the
// legal-effects pipeline (free-form JSON-in-text annotations filtered
// against a controlled vocabulary).
package statutes

import (
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/state-statutes-project/statutes/pkg/statutes/artifact"
	"github.com/state-statutes-project/statutes/pkg/statutes/assemble"
	"github.com/state-statutes-project/statutes/pkg/statutes/config"
	"github.com/state-statutes-project/statutes/pkg/statutes/effects"
	"github.com/state-statutes-project/statutes/pkg/statutes/mcu"
	"github.com/state-statutes-project/statutes/pkg/statutes/tags"
)

// Report summarizes one pipeline run. Errors counts units dropped for
// unrepairable effect strings; it is always zero for the tag pipeline.
type Report struct {
	RunID   string
	Units   int
	Records int
	Errors  int
	Skips   []assemble.Skip
	Output  string
}

// PrepareTags runs the boolean tag pipeline end to end: load the code
// unit snapshot and every configured tag file, reconcile, assemble, and
// write the artifact.
func PrepareTags(cfg *config.Pipeline, logger *zap.Logger) (*Report, error) {
	if err := cfg.ValidateTags(); err != nil {
		return nil, err
	}

	runID := ulid.Make().String()
	log := logger.With(zap.String("run_id", runID))

	units, err := mcu.LoadJSONL(cfg.MCUPath)
	if err != nil {
		return nil, err
	}
	log.Info("loaded code units", zap.Int("units", len(units)), zap.String("source", cfg.MCUPath))

	files, err := tags.LoadAll(cfg.TagRoot, cfg.Tags)
	if err != nil {
		return nil, err
	}
	for _, name := range cfg.Tags {
		log.Info("loaded tag annotations", zap.String("tag", name), zap.Int("annotations", len(files[name])))
	}

	pipeline := assemble.TagPipeline{Tags: cfg.Tags, Files: files, Logger: log}
	records := pipeline.Run(units)

	if err := artifact.WriteTagTable(cfg.Output, records); err != nil {
		return nil, err
	}
	log.Info("wrote artifact", zap.Int("records", len(records)), zap.String("output", cfg.Output))

	return &Report{
		RunID:   runID,
		Units:   len(units),
		Records: len(records),
		Output:  cfg.Output,
	}, nil
}

// PrepareEffects runs the legal-effects pipeline end to end. Units whose
// effect strings cannot be repaired are dropped and tallied; the final
// error count is reported at the end of the run, never fatal.
func PrepareEffects(cfg *config.Pipeline, logger *zap.Logger) (*Report, error) {
	if err := cfg.ValidateEffects(); err != nil {
		return nil, err
	}

	runID := ulid.Make().String()
	log := logger.With(zap.String("run_id", runID))

	units, err := mcu.LoadJSONL(cfg.MCUPath)
	if err != nil {
		return nil, err
	}
	log.Info("loaded code units", zap.Int("units", len(units)), zap.String("source", cfg.MCUPath))

	annotations, err := effects.LoadAnnotations(cfg.EffectsPath)
	if err != nil {
		return nil, err
	}
	log.Info("loaded effect annotations", zap.Int("annotations", len(annotations)), zap.String("source", cfg.EffectsPath))

	pipeline := assemble.EffectPipeline{
		Annotations: annotations,
		Vocab:       effects.Vocabulary(cfg.Vocabulary),
		Logger:      log,
	}
	records, skips := pipeline.Run(units)

	if err := artifact.WriteEffectTable(cfg.Output, records); err != nil {
		return nil, err
	}
	log.Info("wrote artifact",
		zap.Int("records", len(records)),
		zap.Int("errors", len(skips)),
		zap.String("output", cfg.Output))

	return &Report{
		RunID:   runID,
		Units:   len(units),
		Records: len(records),
		Errors:  len(skips),
		Skips:   skips,
		Output:  cfg.Output,
	}, nil
}
