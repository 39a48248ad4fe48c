package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/state-statutes-project/statutes/pkg/statutes/internalerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
jurisdiction: Alabama
year: 2023
mcu_path: ../justia-scraped/mcu_json/Alabama_2023.jsonl
tag_root: ../justia-scraped/tags
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff(DefaultTags, cfg.Tags); diff != "" {
		t.Errorf("default tags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultVocabulary, cfg.Vocabulary); diff != "" {
		t.Errorf("default vocabulary mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
}

func TestLoadExplicitValuesWin(t *testing.T) {
	path := writeConfig(t, `
mcu_path: units.jsonl
tags: [local_preemption]
display_tags: [local_preemption]
vocabulary: ["Imposes criminal penalties"]
output: out.parquet.gz
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"local_preemption"}, cfg.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output != "out.parquet.gz" {
		t.Errorf("Output = %q", cfg.Output)
	}
}

func TestValidateTags(t *testing.T) {
	cfg := &Pipeline{MCUPath: "units.jsonl", TagRoot: "tags"}
	cfg.ApplyDefaults()
	if err := cfg.ValidateTags(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg = &Pipeline{TagRoot: "tags"}
	cfg.ApplyDefaults()
	if err := cfg.ValidateTags(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("missing mcu_path: got %v", err)
	}

	cfg = &Pipeline{MCUPath: "units.jsonl", TagRoot: "tags", DisplayTags: []string{"unconfigured_tag"}}
	cfg.ApplyDefaults()
	if err := cfg.ValidateTags(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("display tag outside tags: got %v", err)
	}
}

func TestValidateEffects(t *testing.T) {
	cfg := &Pipeline{MCUPath: "units.jsonl", EffectsPath: "effects.json"}
	cfg.ApplyDefaults()
	if err := cfg.ValidateEffects(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg = &Pipeline{MCUPath: "units.jsonl"}
	cfg.ApplyDefaults()
	if err := cfg.ValidateEffects(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("missing effects_path: got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing config should fail")
	}
}
