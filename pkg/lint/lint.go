package lint

import "strings"

// Severity is the configured disposition for an error kind.
type Severity int

// Severity actions, in classification order.
const (
	// SeverityError counts the finding as an error.
	SeverityError Severity = iota
	// SeverityWarning counts the finding as a warning.
	SeverityWarning
	// SeveritySilent logs the finding at debug level without counting it.
	SeveritySilent
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeveritySilent:
		return "silent"
	default:
		return "unknown"
	}
}

// HandlerName returns the name of the handler a kind with this severity is
// dispatched to, as shown by the error-kind listing.
func (s Severity) HandlerName() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warn"
	default:
		return "debug"
	}
}

// ParseSeverity maps a configured action string to a Severity. Matching is
// deliberately loose: anything containing "warn" is a warning, anything
// containing "err" is an error, everything else is silent.
func ParseSeverity(action string) Severity {
	action = strings.ToLower(action)
	switch {
	case strings.Contains(action, "warn"):
		return SeverityWarning
	case strings.Contains(action, "err"):
		return SeverityError
	default:
		return SeveritySilent
	}
}
