package diag

import (
	"fmt"
	"strings"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Label is the lowercase word printed in the diagnostic header.
func (s Severity) Label() string {
	switch s {
	case SevInfo:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "error"
}

// ParseSeverity accepts the header words ("error", "warning", "note") and
// the upper-case String forms.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return SevError, nil
	case "warning", "warn":
		return SevWarning, nil
	case "note", "info":
		return SevInfo, nil
	default:
		return SevError, fmt.Errorf("invalid severity %q (expected error|warning|note)", s)
	}
}
