package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// DecodeError reports a line whose bytes are not valid UTF-8 text.
type DecodeError struct {
	// Source is the file path the line came from.
	Source string

	// LineNum is the 1-based line number of the offending line.
	LineNum int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d of %s is not valid UTF-8 text", e.LineNum, e.Source)
}

// FileSource implements Source for reading a single log file.
type FileSource struct {
	path string

	file    *os.File
	scanner *bufio.Scanner
	lineNum int
	opened  bool
}

// NewFileSource creates a Source that reads lines from the given file.
// The file is opened lazily on the first call to Next.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Next returns the next line of the file, with its 1-based line number.
// Returns io.EOF once the file is exhausted.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !s.opened {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	if s.scanner == nil {
		return nil, io.EOF
	}

	if s.scanner.Scan() {
		s.lineNum++

		// Reject lines that are not valid text before they reach the
		// decoder: encoding/json would silently substitute U+FFFD for
		// invalid bytes and mangle the type label.
		raw := s.scanner.Bytes()
		if !utf8.Valid(raw) {
			return nil, &DecodeError{Source: s.path, LineNum: s.lineNum}
		}

		return &Line{
			Raw:     string(raw),
			Source:  s.path,
			LineNum: s.lineNum,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		// The failed read would have produced the next line.
		return nil, fmt.Errorf("reading %s at line %d: %w", s.path, s.lineNum+1, err)
	}

	if err := s.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", s.path, err)
	}

	return nil, io.EOF
}

// Close releases the underlying file. Safe to call more than once.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.scanner = nil
	return err
}

func (s *FileSource) open() error {
	s.opened = true

	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	s.lineNum = 0

	return nil
}
