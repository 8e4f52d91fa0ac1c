package output

import (
	"io"
)

// Formatter renders a report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(report *Report, w io.Writer) error

	// Name returns the format name.
	Name() string
}
