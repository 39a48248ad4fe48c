// Package artifact serializes assembled record tables to the compressed
// columnar file the display layer consumes, and reloads them together
// with the derived lookup indices. The artifact is always regenerated
// whole; an interrupted write is simply overwritten on the next run.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/state-statutes-project/statutes/pkg/statutes/assemble"
	"github.com/state-statutes-project/statutes/pkg/statutes/internalerr"
)

// WriteTagTable writes the boolean-tag table as a single gzip-compressed
// parquet file, preserving row order and the nested tag columns.
func WriteTagTable(path string, records []assemble.TagRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	if err := parquet.WriteFile(path, records, parquet.Compression(&parquet.Gzip)); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}

// WriteEffectTable writes the legal-effects table as a single
// gzip-compressed parquet file.
func WriteEffectTable(path string, records []assemble.EffectRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	if err := parquet.WriteFile(path, records, parquet.Compression(&parquet.Gzip)); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}

// TagTable is a loaded boolean-tag artifact with its runtime indices.
// Indices are rebuilt fresh on every load, never persisted: TagToIDs maps
// a tag name to the unique ids of every row carrying it, in row order,
// and IDToRow maps a unique id to its row index.
type TagTable struct {
	Records  []assemble.TagRecord
	TagToIDs map[string][]string
	IDToRow  map[string]int
}

// LoadTagTable reads the artifact and builds both indices in one linear
// pass over the rows in file order.
func LoadTagTable(path string) (*TagTable, error) {
	records, err := parquet.ReadFile[assemble.TagRecord](path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	t := &TagTable{
		Records:  records,
		TagToIDs: make(map[string][]string),
		IDToRow:  make(map[string]int, len(records)),
	}
	for i, r := range records {
		t.IDToRow[r.UniqueID] = i
		for _, tag := range r.TagList {
			t.TagToIDs[tag] = append(t.TagToIDs[tag], r.UniqueID)
		}
	}
	return t, nil
}

// Row resolves a unique id to its record. A miss is a value the display
// layer turns into a "not found" page, not a crash.
func (t *TagTable) Row(uniqueID string) (assemble.TagRecord, error) {
	i, ok := t.IDToRow[uniqueID]
	if !ok {
		return assemble.TagRecord{}, fmt.Errorf("%w: record %s", internalerr.ErrNotFound, uniqueID)
	}
	return t.Records[i], nil
}

// EffectRef points an effect type back at one row that claims it,
// carrying the explanation the listing page shows next to the link.
type EffectRef struct {
	UniqueID    string
	Explanation string
}

// EffectTable is a loaded legal-effects artifact with its runtime indices.
type EffectTable struct {
	Records     []assemble.EffectRecord
	EffectToIDs map[string][]EffectRef
	IDToRow     map[string]int
}

// LoadEffectTable reads the artifact and builds both indices in one
// linear pass over the rows in file order.
func LoadEffectTable(path string) (*EffectTable, error) {
	records, err := parquet.ReadFile[assemble.EffectRecord](path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	t := &EffectTable{
		Records:     records,
		EffectToIDs: make(map[string][]EffectRef),
		IDToRow:     make(map[string]int, len(records)),
	}
	for i, r := range records {
		t.IDToRow[r.UniqueID] = i
		for _, e := range r.LegalEffects {
			t.EffectToIDs[e.Effect] = append(t.EffectToIDs[e.Effect], EffectRef{
				UniqueID:    r.UniqueID,
				Explanation: e.Explanation,
			})
		}
	}
	return t, nil
}

// Row resolves a unique id to its record.
func (t *EffectTable) Row(uniqueID string) (assemble.EffectRecord, error) {
	i, ok := t.IDToRow[uniqueID]
	if !ok {
		return assemble.EffectRecord{}, fmt.Errorf("%w: record %s", internalerr.ErrNotFound, uniqueID)
	}
	return t.Records[i], nil
}
