// Package validate checks a persisted statutes JSON export for structural
// consistency. It is a sibling tool to the ingestion pipeline, not a
// stage of it: the export has its own shape (title/content/tags/url) and
// the checker never mutates anything, it only accumulates issue strings.
package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
)

// Levels are the recognized tag specificity levels.
var Levels = []string{"highly_specific", "specific", "moderately_specific", "general"}

var (
	requiredFields = []string{"title", "content"}
	expectedFields = map[string]bool{"title": true, "url": true, "content": true, "tags": true}

	mainHeading    = regexp.MustCompile(`# .+`)
	sectionHeading = regexp.MustCompile(`## .+`)
	citation       = regexp.MustCompile(`Citation:`)
)

func recognizedLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

// CheckStatute validates the structure of a single statute entry and
// returns one human-readable issue string per nonconformity. A fully
// conformant entry returns nil.
func CheckStatute(entry map[string]any) []string {
	var issues []string

	for _, field := range requiredFields {
		if _, ok := entry[field]; !ok {
			issues = append(issues, fmt.Sprintf("missing required field: %q", field))
		}
	}

	if raw, ok := entry["tags"]; ok {
		levels, ok := raw.(map[string]any)
		if !ok {
			issues = append(issues, `"tags" field is not a mapping`)
		} else {
			names := make([]string, 0, len(levels))
			for level := range levels {
				names = append(names, level)
			}
			sort.Strings(names)

			for _, level := range names {
				if !recognizedLevel(level) {
					issues = append(issues, fmt.Sprintf("unexpected tag level: %q", level))
				}
			}
			for _, level := range names {
				switch tags := levels[level].(type) {
				case []any:
					for i, tag := range tags {
						if _, ok := tag.(string); !ok {
							issues = append(issues, fmt.Sprintf("non-string tag found at level %q, index %d", level, i))
						}
					}
				case map[string]any:
					issues = append(issues, fmt.Sprintf("tag level %q is not a list", level))
					issues = append(issues, fmt.Sprintf("nested mapping found in tags at level %q (should be a list)", level))
				default:
					issues = append(issues, fmt.Sprintf("tag level %q is not a list", level))
				}
			}
		}
	}

	if _, ok := entry["url"]; !ok {
		issues = append(issues, `missing "url" field (optional but recommended)`)
	}

	if raw, ok := entry["content"]; ok {
		content, ok := raw.(string)
		if !ok {
			issues = append(issues, `"content" field is not a string`)
		} else {
			if !mainHeading.MatchString(content) {
				issues = append(issues, `"content" does not have a main title (# heading)`)
			}
			if !sectionHeading.MatchString(content) {
				issues = append(issues, `"content" does not have any sections (## headings)`)
			}
			if !citation.MatchString(content) {
				issues = append(issues, `"content" appears to be missing citations`)
			}
		}
	}

	fields := make([]string, 0, len(entry))
	for field := range entry {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if !expectedFields[field] {
			issues = append(issues, fmt.Sprintf("unexpected field: %q", field))
		}
	}

	return issues
}

// Run validates the export at path and writes an itemized report to out.
// It returns the process exit code: 0 when every entry is clean, 1 on any
// structural issue or read/parse failure.
func Run(path string, out io.Writer) int {
	fmt.Fprintf(out, "Validating %s...\n", path)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "Error: cannot read %s: %v\n", path, err)
		return 1
	}

	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		fmt.Fprintf(out, "Error: invalid JSON in %s: %v\n", path, err)
		return 1
	}

	fmt.Fprintf(out, "Found %d statute entries.\n", len(entries))

	total := 0
	for i, entry := range entries {
		issues := CheckStatute(entry)
		if len(issues) == 0 {
			continue
		}

		title, _ := entry["title"].(string)
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(out, "Issues found in statute %d (%q):\n", i, title)
		for _, issue := range issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		fmt.Fprintln(out)
		total += len(issues)
	}

	if total == 0 {
		fmt.Fprintln(out, "Validation successful! No issues found.")
		return 0
	}
	fmt.Fprintf(out, "Validation complete. Found %d issues across %d statutes.\n", total, len(entries))
	return 1
}
