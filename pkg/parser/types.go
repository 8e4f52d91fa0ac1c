// Package parser provides line-oriented reading of log files.
package parser

// Line is a single line read from a log file.
type Line struct {
	// Raw is the line content with the terminator stripped.
	Raw string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// Size returns the byte length of the line, excluding the terminator.
func (l *Line) Size() uint64 {
	return uint64(len(l.Raw))
}
