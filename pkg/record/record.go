// Package record decodes individual log entries.
//
// Each entry is a JSON object carrying a string "type" field. Any other
// fields are ignored.
package record

import (
	"encoding/json"
	"fmt"
)

// ParseReason classifies why a line failed to decode.
type ParseReason string

const (
	// ReasonInvalidJSON means the line is not a valid JSON object.
	ReasonInvalidJSON ParseReason = "invalid_json"

	// ReasonMissingType means the object has no "type" field.
	ReasonMissingType ParseReason = "missing_type"

	// ReasonTypeNotString means the "type" field is not a JSON string.
	ReasonTypeNotString ParseReason = "type_not_string"
)

// ParseError reports a line that could not be decoded as a log entry.
type ParseError struct {
	// Raw is the offending line text.
	Raw string

	// Reason classifies the failure.
	Reason ParseReason

	// Err is the underlying JSON error, if any.
	Err error
}

func (e *ParseError) Error() string {
	switch e.Reason {
	case ReasonMissingType:
		return fmt.Sprintf("parsing %q: no \"type\" field", e.Raw)
	case ReasonTypeNotString:
		return fmt.Sprintf("parsing %q: \"type\" field is not a string", e.Raw)
	default:
		return fmt.Sprintf("parsing %q: %v", e.Raw, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// entry is the decoded shape of one line. Unknown fields are dropped by
// encoding/json. Type stays raw so non-string values can be rejected
// instead of coerced.
type entry struct {
	Type json.RawMessage `json:"type"`
}

// Decode parses one line as a JSON object and extracts its type label.
func Decode(line string) (string, error) {
	var e entry
	if err := json.Unmarshal([]byte(line), &e); err != nil {
		return "", &ParseError{Raw: line, Reason: ReasonInvalidJSON, Err: err}
	}

	if len(e.Type) == 0 {
		return "", &ParseError{Raw: line, Reason: ReasonMissingType}
	}

	if e.Type[0] != '"' {
		return "", &ParseError{Raw: line, Reason: ReasonTypeNotString}
	}

	var label string
	if err := json.Unmarshal(e.Type, &label); err != nil {
		return "", &ParseError{Raw: line, Reason: ReasonInvalidJSON, Err: err}
	}

	return label, nil
}
