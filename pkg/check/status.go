package check

import (
	"fmt"
	"strings"
)

// =============================================================================
// Status
// =============================================================================

// Status is the verdict of a single conformance finding.
type Status int

// Verdicts for findings.
const (
	// StatusPass indicates the requirement is satisfied.
	StatusPass Status = iota
	// StatusWarn indicates a soft gap; it never fails the run.
	StatusWarn
	// StatusFail indicates a hard gap that fails the run.
	StatusFail
)

// String returns the report token for the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	parsed, ok := ParseStatus(string(b))
	if !ok {
		return fmt.Errorf("invalid status %q", b)
	}
	*s = parsed
	return nil
}

// ParseStatus converts a string to a Status value.
// Returns the status and true if valid, or StatusWarn and false if invalid.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToUpper(s) {
	case "PASS":
		return StatusPass, true
	case "WARN":
		return StatusWarn, true
	case "FAIL":
		return StatusFail, true
	default:
		return StatusWarn, false
	}
}
