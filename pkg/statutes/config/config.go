// Package config loads the YAML run configuration shared by both
// pipeline variants: source locations, the ordered tag list, the
// controlled vocabulary, and the artifact output path.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/state-statutes-project/statutes/pkg/statutes/internalerr"
)

// DefaultOutput is the artifact location the display layer reads.
const DefaultOutput = "data/mcu_list.parquet.gz"

// DefaultTags is the boolean tag set the annotators currently produce,
// in the order records list them.
var DefaultTags = []string{
	"local_preemption",
	"private_right_of_action",
	"public_meeting_requirement",
	"attorneys_fees",
}

// DefaultVocabulary is the controlled vocabulary of legal-effect types
// the generative annotator is prompted with. Retained effects must match
// one of these exactly.
var DefaultVocabulary = []string{
	"Creates a private right of action",
	"Imposes criminal penalties",
	"Imposes civil penalties",
	"Preempts local regulation",
	"Requires a public meeting",
	"Requires reporting or disclosure",
	"Establishes a licensing requirement",
	"Authorizes rulemaking",
	"Creates a government body",
	"Imposes a tax or fee",
	"Appropriates funds",
	"Awards attorneys' fees",
}

// Pipeline is one run's configuration. Tags order is the order tag_list
// values appear in records; DisplayTags designates the subset the UI
// renders with excerpts.
type Pipeline struct {
	Jurisdiction string   `yaml:"jurisdiction"`
	Year         int      `yaml:"year"`
	MCUPath      string   `yaml:"mcu_path"`
	TagRoot      string   `yaml:"tag_root"`
	Tags         []string `yaml:"tags"`
	DisplayTags  []string `yaml:"display_tags"`
	EffectsPath  string   `yaml:"effects_path"`
	Vocabulary   []string `yaml:"vocabulary"`
	Output       string   `yaml:"output"`
}

// Load reads a pipeline configuration from a YAML file, filling in
// defaults for the tag list, vocabulary, and output path.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	p.ApplyDefaults()
	return &p, nil
}

// ApplyDefaults fills the fields a minimal config may omit.
func (p *Pipeline) ApplyDefaults() {
	if len(p.Tags) == 0 {
		p.Tags = DefaultTags
	}
	if len(p.Vocabulary) == 0 {
		p.Vocabulary = DefaultVocabulary
	}
	if p.Output == "" {
		p.Output = DefaultOutput
	}
}

// ValidateTags checks the fields the boolean tag pipeline needs.
func (p *Pipeline) ValidateTags() error {
	if p.MCUPath == "" {
		return fmt.Errorf("%w: mcu_path is required", internalerr.ErrInvalidConfig)
	}
	if p.TagRoot == "" {
		return fmt.Errorf("%w: tag_root is required", internalerr.ErrInvalidConfig)
	}
	if len(p.Tags) == 0 {
		return fmt.Errorf("%w: tags must not be empty", internalerr.ErrInvalidConfig)
	}
	for _, d := range p.DisplayTags {
		if !contains(p.Tags, d) {
			return fmt.Errorf("%w: display tag %q is not in tags", internalerr.ErrInvalidConfig, d)
		}
	}
	return nil
}

// ValidateEffects checks the fields the legal-effects pipeline needs.
func (p *Pipeline) ValidateEffects() error {
	if p.MCUPath == "" {
		return fmt.Errorf("%w: mcu_path is required", internalerr.ErrInvalidConfig)
	}
	if p.EffectsPath == "" {
		return fmt.Errorf("%w: effects_path is required", internalerr.ErrInvalidConfig)
	}
	if len(p.Vocabulary) == 0 {
		return fmt.Errorf("%w: vocabulary must not be empty", internalerr.ErrInvalidConfig)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
