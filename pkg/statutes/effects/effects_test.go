package effects

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/state-statutes-project/statutes/pkg/statutes/internalerr"
)

var vocab = Vocabulary{
	"Creates a private right of action",
	"Imposes criminal penalties",
	"Preempts local regulation",
}

func TestDecodeBareArray(t *testing.T) {
	raw := `[{"effect":"Imposes criminal penalties","explanation":"Class C felony.","sections":["13A-6-20"]}]`

	got, err := Decode(raw, vocab)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := []Effect{{
		Effect:      "Imposes criminal penalties",
		Explanation: "Class C felony.",
		Sections:    []string{"13A-6-20"},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeCodeFenceAndTrailingCommentary(t *testing.T) {
	raw := "```json\n" +
		`[{"effect":"Imposes criminal penalties","explanation":"e1","sections":[]},` +
		`{"effect":"Preempts local regulation","explanation":"e2","sections":["11-80-1"]}]` +
		"\n```\nNote: I identified two effects in this section."

	got, err := Decode(raw, vocab)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d effects, want 2", len(got))
	}
	if got[0].Effect != "Imposes criminal penalties" || got[1].Effect != "Preempts local regulation" {
		t.Errorf("effects out of order: %+v", got)
	}
}

func TestDecodeFenceWithoutLanguageTag(t *testing.T) {
	raw := "```\n[{\"effect\":\"Preempts local regulation\",\"explanation\":\"e\",\"sections\":[]}]\n```"

	got, err := Decode(raw, vocab)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("decoded %d effects, want 1", len(got))
	}
}

func TestDecodeFiltersOutOfVocabulary(t *testing.T) {
	raw := `[{"effect":"Imposes criminal penalties","explanation":"kept","sections":[]},` +
		`{"effect":"Makes stuff illegal","explanation":"dropped","sections":[]},` +
		`{"effect":"Preempts local regulation","explanation":"kept","sections":[]}]`

	got, err := Decode(raw, vocab)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := []string{"Imposes criminal penalties", "Preempts local regulation"}
	var names []string
	for _, e := range got {
		names = append(names, e.Effect)
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("vocabulary filter mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeNoClosingBracket(t *testing.T) {
	_, err := Decode("the section has no legal effects", vocab)
	if !errors.Is(err, internalerr.ErrEffectDecode) {
		t.Errorf("want ErrEffectDecode, got %v", err)
	}
}

func TestDecodeInvalidJSONAfterTruncation(t *testing.T) {
	_, err := Decode(`[{"effect": broken]`, vocab)
	if !errors.Is(err, internalerr.ErrEffectDecode) {
		t.Errorf("want ErrEffectDecode, got %v", err)
	}
}

func TestDecodeEmptyArray(t *testing.T) {
	got, err := Decode("[]", vocab)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("decoded %d effects, want 0", len(got))
	}
}

func TestVocabularyContains(t *testing.T) {
	if !vocab.Contains("Preempts local regulation") {
		t.Error("exact term should be in vocabulary")
	}
	if vocab.Contains("preempts local regulation") {
		t.Error("matching is case-sensitive")
	}
}
