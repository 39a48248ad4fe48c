package mcu

import (
	"fmt"
	"strings"
)

// Separator joins rendered divisions in a path string.
const Separator = " > "

// segment renders one division as "{type} {number} - {name}", with one
// trailing period stripped from the name. A nil name renders empty.
func segment(d Division) string {
	name := ""
	if d.Name != nil {
		name = *d.Name
	}
	name = strings.TrimSuffix(name, ".")
	return fmt.Sprintf("%s %s - %s", d.Type, d.Number, name)
}

// TrailingPath renders the divisions with the separator kept after the
// final division. The boolean tag pipeline writes this form; it predates
// CleanPath and the two are kept distinct on purpose.
func (ds Divisions) TrailingPath() string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(segment(d))
		b.WriteString(Separator)
	}
	return b.String()
}

// CleanPath renders the divisions with the trailing separator removed.
// The legal-effects pipeline writes this form.
func (ds Divisions) CleanPath() string {
	return strings.TrimSuffix(ds.TrailingPath(), Separator)
}
