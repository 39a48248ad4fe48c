// Package mcu models minimal code units (MCUs), the smallest addressable
// units of a legal code as extracted upstream, and loads them from the
// line-delimited JSON snapshot produced by the extractor.
package mcu

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/state-statutes-project/statutes/pkg/statutes/internalerr"
)

// Division is one level of a code unit's hierarchical location.
// Order within a path encodes nesting from outermost to innermost.
type Division struct {
	Type   string  `json:"type"`
	Number string  `json:"number,omitempty"`
	Name   *string `json:"name"`
}

// Divisions is an ordered hierarchical location, outermost first.
type Divisions []Division

// CodeUnit is one legal provision as extracted upstream. Immutable input
// to the pipeline; the extractor guarantees UniqueID is stable across runs.
type CodeUnit struct {
	UniqueID     string    `json:"unique_id"`
	Jurisdiction string    `json:"jurisdiction"`
	Year         int       `json:"year"`
	FullName     string    `json:"full_name"`
	FullText     string    `json:"full_text"`
	Path         Divisions `json:"path"`
}

// Validate checks if the unit has required fields
func (u *CodeUnit) Validate() error {
	if strings.TrimSpace(u.UniqueID) == "" {
		return errors.New("code unit unique_id is required")
	}
	if strings.TrimSpace(u.FullName) == "" {
		return errors.New("code unit full_name is required")
	}
	return nil
}

// LoadJSONL loads code units from a JSONL file, one unit per line.
// A malformed line is a structural problem in the snapshot and aborts
// the load; the pipeline never runs on a partially read source.
func LoadJSONL(path string) ([]CodeUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrSourceRead, path, err)
	}

	var units []CodeUnit
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var u CodeUnit
		if err := json.Unmarshal([]byte(line), &u); err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, i+1, err)
		}
		units = append(units, u)
	}

	if len(units) == 0 {
		return nil, fmt.Errorf("no code units found in %s", path)
	}

	return units, nil
}
