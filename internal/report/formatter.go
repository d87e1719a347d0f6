// Package report turns labelled values into printable lines and renders them
// onto a single PDF page.
package report

import "fmt"

// Field is one labelled entry of a report. Value is rendered with fmt.Sprint.
type Field struct {
	Label string
	Value any
}

// FormatReport returns a "Candidate: <name>" header followed by one
// "<label>: <value>" line per field, in the order given.
func FormatReport(candidateName string, fields []Field) []string {
	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, "Candidate: "+candidateName)
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s: %v", f.Label, f.Value))
	}
	return lines
}
