package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func conformant() map[string]any {
	return map[string]any{
		"title": "Section 13A-6-20 - Assault in the first degree",
		"url":   "https://law.example.com/al/13A-6-20",
		"content": "# Section 13A-6-20\n\n## Offense\nA person commits assault...\n\n" +
			"Citation: Ala. Code § 13A-6-20 (2023).",
		"tags": map[string]any{
			"highly_specific": []any{"assault first degree"},
			"general":         []any{"criminal law", "offenses"},
		},
	}
}

func hasIssue(issues []string, substr string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, substr) {
			return true
		}
	}
	return false
}

func TestConformantEntryHasNoIssues(t *testing.T) {
	if issues := CheckStatute(conformant()); len(issues) != 0 {
		t.Errorf("conformant entry produced issues: %v", issues)
	}
}

func TestMissingRequiredFields(t *testing.T) {
	entry := conformant()
	delete(entry, "content")

	issues := CheckStatute(entry)
	if !hasIssue(issues, `"content"`) {
		t.Errorf("missing content not reported: %v", issues)
	}
}

func TestTagsNotAMapping(t *testing.T) {
	entry := conformant()
	entry["tags"] = []any{"general"}

	issues := CheckStatute(entry)
	if !hasIssue(issues, "not a mapping") {
		t.Errorf("non-mapping tags not reported: %v", issues)
	}
}

func TestUnexpectedTagLevel(t *testing.T) {
	entry := conformant()
	entry["tags"] = map[string]any{"super_specific": []any{"x"}}

	issues := CheckStatute(entry)
	if !hasIssue(issues, `unexpected tag level: "super_specific"`) {
		t.Errorf("unexpected level not reported: %v", issues)
	}
}

func TestTagLevelNotAList(t *testing.T) {
	entry := conformant()
	entry["tags"] = map[string]any{"general": "criminal law"}

	issues := CheckStatute(entry)
	if !hasIssue(issues, `tag level "general" is not a list`) {
		t.Errorf("non-list level not reported: %v", issues)
	}
}

func TestNonStringTag(t *testing.T) {
	entry := conformant()
	entry["tags"] = map[string]any{"general": []any{"ok", 5.0}}

	issues := CheckStatute(entry)
	if !hasIssue(issues, `non-string tag found at level "general", index 1`) {
		t.Errorf("non-string tag not reported: %v", issues)
	}
}

func TestNestedMappingInsideLevel(t *testing.T) {
	entry := conformant()
	entry["tags"] = map[string]any{"general": map[string]any{"nested": []any{"x"}}}

	issues := CheckStatute(entry)
	if !hasIssue(issues, "nested mapping") {
		t.Errorf("nested mapping not reported: %v", issues)
	}
}

func TestUnexpectedTopLevelField(t *testing.T) {
	entry := conformant()
	entry["summary"] = "extra"

	issues := CheckStatute(entry)
	if !hasIssue(issues, `unexpected field: "summary"`) {
		t.Errorf("unexpected field not reported: %v", issues)
	}
}

func TestContentShapeChecks(t *testing.T) {
	entry := conformant()
	entry["content"] = "plain text with no headings and no citation"

	issues := CheckStatute(entry)
	for _, want := range []string{"main title", "sections", "citations"} {
		if !hasIssue(issues, want) {
			t.Errorf("missing %q issue: %v", want, issues)
		}
	}
}

func TestMissingURLReported(t *testing.T) {
	entry := conformant()
	delete(entry, "url")

	issues := CheckStatute(entry)
	if !hasIssue(issues, `"url"`) {
		t.Errorf("missing url not reported: %v", issues)
	}
}

func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statutes_data.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCleanFile(t *testing.T) {
	path := writeJSON(t, `[{"title":"T","url":"u","content":"# T\n## S\nCitation: x","tags":{"general":["a"]}}]`)

	var out strings.Builder
	if code := Run(path, &out); code != 0 {
		t.Errorf("exit code = %d, want 0\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "No issues found") {
		t.Errorf("report: %s", out.String())
	}
}

func TestRunReportsIssues(t *testing.T) {
	path := writeJSON(t, `[{"title":"T"}]`)

	var out strings.Builder
	if code := Run(path, &out); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), `"content"`) {
		t.Errorf("report: %s", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var out strings.Builder
	if code := Run(filepath.Join(t.TempDir(), "absent.json"), &out); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunInvalidJSON(t *testing.T) {
	path := writeJSON(t, `{not json`)

	var out strings.Builder
	if code := Run(path, &out); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
