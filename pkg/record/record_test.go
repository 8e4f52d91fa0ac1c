package record

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode_Valid(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"simple", `{"type":"start"}`, "start"},
		{"extra fields ignored", `{"type":"stop","user":"alice","count":3}`, "stop"},
		{"type not first", `{"id":17,"type":"heartbeat"}`, "heartbeat"},
		{"empty label", `{"type":""}`, ""},
		{"unicode label", `{"type":"über"}`, "über"},
		{"escaped label", `{"type":"a\nb"}`, "a\nb"},
		{"surrounding whitespace", ` {"type":"start"} `, "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.line)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason ParseReason
	}{
		{"not json", `not json`, ReasonInvalidJSON},
		{"empty line", ``, ReasonInvalidJSON},
		{"truncated object", `{"type":"a"`, ReasonInvalidJSON},
		{"trailing garbage", `{"type":"a"} extra`, ReasonInvalidJSON},
		{"array document", `[{"type":"a"}]`, ReasonInvalidJSON},
		{"string document", `"type"`, ReasonInvalidJSON},
		{"number document", `42`, ReasonInvalidJSON},
		{"missing type", `{"x":1}`, ReasonMissingType},
		{"empty object", `{}`, ReasonMissingType},
		{"null document", `null`, ReasonMissingType},
		{"null type", `{"type":null}`, ReasonTypeNotString},
		{"number type", `{"type":7}`, ReasonTypeNotString},
		{"bool type", `{"type":true}`, ReasonTypeNotString},
		{"array type", `{"type":["a"]}`, ReasonTypeNotString},
		{"object type", `{"type":{"name":"a"}}`, ReasonTypeNotString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.line)
			if err == nil {
				t.Fatalf("Decode(%q) error = nil, want ParseError", tt.line)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Decode(%q) error = %T, want *ParseError", tt.line, err)
			}
			if parseErr.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", parseErr.Reason, tt.reason)
			}
			if parseErr.Raw != tt.line {
				t.Errorf("Raw = %q, want %q", parseErr.Raw, tt.line)
			}
		})
	}
}

func TestParseError_MessageIncludesRawLine(t *testing.T) {
	_, err := Decode(`not json`)
	if err == nil {
		t.Fatal("Decode() error = nil, want ParseError")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}

	msg := parseErr.Error()
	if want := `"not json"`; !strings.Contains(msg, want) {
		t.Errorf("Error() = %q, want it to contain %q", msg, want)
	}
}

func TestParseError_UnwrapsJSONError(t *testing.T) {
	_, err := Decode(`{`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}
	if parseErr.Unwrap() == nil {
		t.Error("Unwrap() = nil, want underlying JSON error")
	}
}
