// Package render holds the text-shape helpers the display layer uses to
// turn a record's raw statute text into markdown. Extracted statute text
// is funky: a line starting with a section marker carries only the
// section number, and the section's title sits on the following non-empty
// line.
package render

import "strings"

// Sections splits text into display blocks, joining each section-marker
// line with its following title line as "marker: title". Blank lines are
// dropped.
func Sections(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	blocks := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "#") && i+1 < len(lines) {
			blocks = append(blocks, lines[i]+": "+lines[i+1])
			i++
			continue
		}
		blocks = append(blocks, lines[i])
	}
	return blocks
}

// Markdown renders statute text for the display layer: section markers
// joined with their titles, headings demoted one level so the page title
// stays top-level, and dollar signs escaped so they are not read as a
// formatting directive.
func Markdown(text string) string {
	s := strings.Join(Sections(text), "\n\n")
	s = strings.ReplaceAll(s, "#", "##")
	s = strings.ReplaceAll(s, "$", `\$`)
	return s
}
