// Package tags loads per-tag boolean annotation files and reconciles them
// against code units. Each tag file maps unique_id to an annotation object
// produced by an automated yes/no/unknown annotator.
package tags

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/state-statutes-project/statutes/pkg/statutes/internalerr"
)

// Answer values stored by the annotator.
const (
	AnswerYes     = "yes"
	AnswerNo      = "no"
	AnswerUnknown = "unknown"
)

// Annotation is one tag annotation for one code unit. Besides "answer" the
// annotator stores free-form supporting fields (the excerpt, reasoning,
// and so on), all of which should be strings.
type Annotation map[string]any

// Answer returns the stored answer, or "" when absent or not a string.
func (a Annotation) Answer() string {
	s, _ := a["answer"].(string)
	return s
}

// Strings returns the annotation with every value coerced to a string.
// A non-string value is a data-quality defect in the annotation file: it
// is logged with enough context to locate the input, then stringified so
// the artifact column stays uniformly typed. Never fatal.
func (a Annotation) Strings(logger *zap.Logger, tag, uniqueID string) map[string]string {
	out := make(map[string]string, len(a))
	for key, value := range a {
		s, ok := value.(string)
		if !ok {
			logger.Warn("annotation value is not a string",
				zap.String("tag", tag),
				zap.String("unique_id", uniqueID),
				zap.String("field", key))
			s = fmt.Sprint(value)
		}
		out[key] = s
	}
	return out
}

// File is the parsed annotation file for one tag name, keyed by unique_id.
type File map[string]Annotation

// Load reads the annotation file for one tag under root, following the
// fixed layout {root}/{tag}/{tag}_results.json.
func Load(root, tag string) (File, error) {
	path := filepath.Join(root, tag, tag+"_results.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrSourceRead, path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// LoadAll loads the annotation file for every configured tag name.
func LoadAll(root string, names []string) (map[string]File, error) {
	files := make(map[string]File, len(names))
	for _, name := range names {
		f, err := Load(root, name)
		if err != nil {
			return nil, err
		}
		files[name] = f
	}
	return files, nil
}

// Reconcile joins one code unit against the loaded tag files. A tag is
// included iff an annotation exists for the unit and its answer is exactly
// "yes". The returned slices are positionally aligned: tagList[i] names
// the tag whose annotation is tagDicts[i]. Iteration follows the
// configured tag-name order, so output is deterministic across runs.
func Reconcile(uniqueID string, names []string, files map[string]File, logger *zap.Logger) (tagList []string, tagDicts []map[string]string) {
	tagList = []string{}
	tagDicts = []map[string]string{}
	for _, name := range names {
		ann, ok := files[name][uniqueID]
		if !ok || ann.Answer() != AnswerYes {
			continue
		}
		tagList = append(tagList, name)
		tagDicts = append(tagDicts, ann.Strings(logger, name, uniqueID))
	}
	return tagList, tagDicts
}
