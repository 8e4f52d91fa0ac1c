package output

import (
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text, one row per type.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text. Rows are emitted in the report's
// entry order, which is ascending by type label.
func (f *TextFormatter) Format(report *Report, w io.Writer) error {
	for _, entry := range report.Entries {
		_, err := fmt.Fprintf(w, "Type %q: Number of Objects: %d; Total Bytes: %d\n",
			entry.Label, entry.Stats.Count, entry.Stats.Bytes)
		if err != nil {
			return err
		}
	}
	return nil
}
