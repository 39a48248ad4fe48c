// Package effects decodes LLM-generated legal-effect annotations. The
// annotator emits, per code unit, a string that should contain a JSON
// array of effect objects, but real model output arrives wrapped in
// markdown code fences and trailed by commentary. The decoder repairs
// those artifacts before unmarshalling and filters the result against the
// controlled vocabulary of allowed effect types.
package effects

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/state-statutes-project/statutes/pkg/statutes/internalerr"
)

// Effect is one structured legal-effect claim: an effect type from the
// controlled vocabulary, the model's explanation, and the code sections
// cited in support.
type Effect struct {
	Effect      string   `json:"effect" parquet:"effect"`
	Explanation string   `json:"explanation" parquet:"explanation"`
	Sections    []string `json:"sections" parquet:"sections,list"`
}

// Vocabulary is the fixed, externally defined list of allowed effect
// types. Order matters: it breaks ties in ClosestEffect.
type Vocabulary []string

// Contains reports whether name is exactly a vocabulary term.
func (v Vocabulary) Contains(name string) bool {
	for _, term := range v {
		if term == name {
			return true
		}
	}
	return false
}

// repair normalizes a raw model response down to the JSON array it should
// contain: code-fence markers removed (with or without a language tag),
// surrounding whitespace trimmed, and everything after the last closing
// bracket discarded. Models often append prose after the array.
func repair(raw string) (string, error) {
	s := strings.ReplaceAll(raw, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	last := strings.LastIndex(s, "]")
	if last < 0 {
		return "", fmt.Errorf("no closing bracket")
	}
	return s[:last+1], nil
}

// Decode repairs raw and unmarshals it as an effect array, keeping only
// entries whose effect type is exactly in the vocabulary. Out-of-vocabulary
// entries are dropped silently; no fuzzy correction happens here (see
// ClosestEffect for the offline mapper). Any repair or unmarshal failure
// returns internalerr.ErrEffectDecode: the caller drops the unit and
// counts the error, it never emits a partial record.
func Decode(raw string, vocab Vocabulary) ([]Effect, error) {
	cleaned, err := repair(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrEffectDecode, err)
	}

	var all []Effect
	if err := json.Unmarshal([]byte(cleaned), &all); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrEffectDecode, err)
	}

	kept := make([]Effect, 0, len(all))
	for _, e := range all {
		if vocab.Contains(e.Effect) {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

// LoadAnnotations reads the effect annotation file: a JSON object mapping
// unique_id to the raw effect string for that unit.
func LoadAnnotations(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrSourceRead, path, err)
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}
