// Package assemble merges code units with their annotations into the flat
// records written to the artifact. The two pipeline variants share the
// exclusion policy and the record core but diverge in how annotation
// fields are populated; they stay separate types rather than one
// shape-shifting record.
package assemble

import (
	"go.uber.org/zap"

	"github.com/state-statutes-project/statutes/pkg/statutes/effects"
	"github.com/state-statutes-project/statutes/pkg/statutes/mcu"
	"github.com/state-statutes-project/statutes/pkg/statutes/tags"
)

// TagRecord is one assembled row of the boolean-tag artifact. TagList and
// TagDicts are positionally aligned: index i of one corresponds to index
// i of the other.
type TagRecord struct {
	UniqueID     string              `parquet:"unique_id" json:"unique_id"`
	FullName     string              `parquet:"full_name" json:"full_name"`
	Path         string              `parquet:"path" json:"path"`
	Jurisdiction string              `parquet:"jurisdiction" json:"jurisdiction"`
	Year         int32               `parquet:"year" json:"year"`
	Text         string              `parquet:"text" json:"text"`
	TagList      []string            `parquet:"tag_list,list" json:"tag_list"`
	TagDicts     []map[string]string `parquet:"tag_dict_list" json:"tag_dict_list"`
}

// EffectRecord is one assembled row of the legal-effects artifact.
type EffectRecord struct {
	UniqueID     string           `parquet:"unique_id" json:"unique_id"`
	FullName     string           `parquet:"full_name" json:"full_name"`
	Path         string           `parquet:"path" json:"path"`
	Jurisdiction string           `parquet:"jurisdiction" json:"jurisdiction"`
	Year         int32            `parquet:"year" json:"year"`
	Text         string           `parquet:"text" json:"text"`
	LegalEffects []effects.Effect `parquet:"legal_effects,list" json:"legal_effects"`
}

// localLaws is the Alabama compilation of county-level local acts. Local
// laws are out of scope for the browser, so units under this title never
// reach the artifact.
var localLaws = mcu.Division{Type: "Title", Number: "45", Name: ptr("Local Laws.")}

func ptr(s string) *string { return &s }

// Excluded reports whether the policy carve-out drops this unit: its path
// contains an exact match of the Title 45 "Local Laws." division.
func Excluded(path mcu.Divisions) bool {
	for _, d := range path {
		if d.Type == localLaws.Type && d.Number == localLaws.Number &&
			d.Name != nil && *d.Name == *localLaws.Name {
			return true
		}
	}
	return false
}

// Skip records one unit dropped from the effects pipeline output, with
// enough context to locate the offending annotation.
type Skip struct {
	UniqueID string
	Reason   string
}

// TagPipeline assembles boolean-tag records. Every non-excluded unit
// yields exactly one record, with an empty tag list when no annotator
// said yes.
type TagPipeline struct {
	Tags   []string
	Files  map[string]tags.File
	Logger *zap.Logger
}

// Run assembles records in input order, after exclusions.
func (p *TagPipeline) Run(units []mcu.CodeUnit) []TagRecord {
	records := make([]TagRecord, 0, len(units))
	for _, u := range units {
		if Excluded(u.Path) {
			continue
		}

		tagList, tagDicts := tags.Reconcile(u.UniqueID, p.Tags, p.Files, p.Logger)

		// The tag pipeline keeps the path's trailing separator.
		path := u.Path.TrailingPath()
		records = append(records, TagRecord{
			UniqueID:     u.UniqueID,
			FullName:     path + mcu.Separator + u.FullName,
			Path:         path,
			Jurisdiction: u.Jurisdiction,
			Year:         int32(u.Year),
			Text:         u.FullText,
			TagList:      tagList,
			TagDicts:     tagDicts,
		})
	}
	return records
}

// EffectPipeline assembles legal-effect records. A unit whose annotation
// is missing or cannot be repaired into valid JSON contributes no record;
// the skip is returned as a value for the caller's error tally.
type EffectPipeline struct {
	Annotations map[string]string
	Vocab       effects.Vocabulary
	Logger      *zap.Logger
}

// Run assembles records in input order, after exclusions. The returned
// skips carry one entry per dropped unit.
func (p *EffectPipeline) Run(units []mcu.CodeUnit) ([]EffectRecord, []Skip) {
	records := make([]EffectRecord, 0, len(units))
	var skips []Skip
	for _, u := range units {
		if Excluded(u.Path) {
			continue
		}

		raw, ok := p.Annotations[u.UniqueID]
		if !ok {
			skips = append(skips, Skip{UniqueID: u.UniqueID, Reason: "no effect annotation"})
			p.Logger.Warn("unit has no effect annotation", zap.String("unique_id", u.UniqueID))
			continue
		}

		decoded, err := effects.Decode(raw, p.Vocab)
		if err != nil {
			skips = append(skips, Skip{UniqueID: u.UniqueID, Reason: err.Error()})
			p.Logger.Warn("dropping unit with unrepairable effect string",
				zap.String("unique_id", u.UniqueID),
				zap.Error(err))
			continue
		}

		// The effects pipeline strips the path's trailing separator.
		path := u.Path.CleanPath()
		records = append(records, EffectRecord{
			UniqueID:     u.UniqueID,
			FullName:     path + mcu.Separator + u.FullName,
			Path:         path,
			Jurisdiction: u.Jurisdiction,
			Year:         int32(u.Year),
			Text:         u.FullText,
			LegalEffects: decoded,
		})
	}
	return records, skips
}
