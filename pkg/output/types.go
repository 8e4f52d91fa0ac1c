// Package output renders aggregated statistics as a report.
package output

import (
	"typestat/pkg/stats"
)

// Report is the complete aggregation output.
type Report struct {
	// Entries holds one row per distinct type label, sorted ascending
	// by label.
	Entries []stats.Entry

	// Summary provides aggregate totals across all types.
	Summary Summary
}

// Summary provides aggregate totals.
type Summary struct {
	// Types is the number of distinct type labels.
	Types int

	// Entries is the number of log entries processed.
	Entries uint64

	// Bytes is the byte size of all log entries, terminators excluded.
	Bytes uint64
}

// NewReport creates a Report from a completed statistics table.
func NewReport(table *stats.Table) *Report {
	return &Report{
		Entries: table.Entries(),
		Summary: Summary{
			Types:   table.Len(),
			Entries: table.TotalCount(),
			Bytes:   table.TotalBytes(),
		},
	}
}
