// Package analyzer drives per-line decoding and accumulation over a log
// source.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"typestat/pkg/parser"
	"typestat/pkg/record"
	"typestat/pkg/stats"
)

// LineError annotates a failure with the 1-based line number where it
// occurred.
type LineError struct {
	// LineNum is the 1-based line number of the failure.
	LineNum int

	// Err is the underlying failure.
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("could not process line %d: %v", e.LineNum, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Analyzer aggregates log entries by their type label.
type Analyzer struct{}

// NewAnalyzer creates an analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze consumes the source to exhaustion and returns the completed
// statistics table.
//
// Processing stops at the first failure: the returned table is either
// complete or nil. Decode and accumulation failures are wrapped in a
// LineError carrying the line number at which they occurred.
func (a *Analyzer) Analyze(ctx context.Context, source parser.Source) (*stats.Table, error) {
	table := stats.NewTable()

	for {
		line, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		if err != nil {
			return nil, err
		}

		label, err := record.Decode(line.Raw)
		if err != nil {
			return nil, &LineError{LineNum: line.LineNum, Err: err}
		}

		if err := table.Record(label, line.Size()); err != nil {
			return nil, &LineError{LineNum: line.LineNum, Err: err}
		}
	}
}
