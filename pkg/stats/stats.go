// Package stats accumulates per-type statistics for log entries.
package stats

import (
	"fmt"
	"math"
	"sort"
)

// TypeStats holds the accumulated statistics for one type label.
type TypeStats struct {
	// Count is the number of entries with this type.
	Count uint64

	// Bytes is the byte size of all entries with this type,
	// line terminators excluded.
	Bytes uint64
}

// Entry pairs a type label with its statistics.
type Entry struct {
	Label string
	Stats TypeStats
}

// OverflowError reports that a byte accumulator would exceed uint64 range.
type OverflowError struct {
	// Label is the type whose accumulator overflowed.
	Label string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("total bytes for type %q exceeded 2^64", e.Label)
}

// Table maps type labels to their accumulated statistics.
// It is not safe for concurrent use.
type Table struct {
	types map[string]*TypeStats
}

// NewTable creates an empty statistics table.
func NewTable() *Table {
	return &Table{types: make(map[string]*TypeStats)}
}

// Record accumulates one entry of the given type and byte size.
// Returns an OverflowError if the byte accumulator would wrap; the table
// entry is left unmodified in that case.
func (t *Table) Record(label string, size uint64) error {
	ts, ok := t.types[label]
	if !ok {
		ts = &TypeStats{}
		t.types[label] = ts
	}

	if size > math.MaxUint64-ts.Bytes {
		return &OverflowError{Label: label}
	}

	ts.Count++
	ts.Bytes += size
	return nil
}

// Len returns the number of distinct type labels recorded.
func (t *Table) Len() int {
	return len(t.types)
}

// Entries returns all recorded types sorted by label in ascending byte
// order, so repeated runs over the same input produce identical output.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.types))
	for label, ts := range t.types {
		entries = append(entries, Entry{Label: label, Stats: *ts})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label < entries[j].Label
	})

	return entries
}

// TotalCount returns the number of entries recorded across all types.
func (t *Table) TotalCount() uint64 {
	var total uint64
	for _, ts := range t.types {
		total += ts.Count
	}
	return total
}

// TotalBytes returns the byte size recorded across all types.
func (t *Table) TotalBytes() uint64 {
	var total uint64
	for _, ts := range t.types {
		total += ts.Bytes
	}
	return total
}
