package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		action string
		want   Severity
	}{
		{"error", SeverityError},
		{"ERROR", SeverityError},
		{"err", SeverityError},
		{"fatal error", SeverityError},
		{"warning", SeverityWarning},
		{"warn", SeverityWarning},
		{"Warnings", SeverityWarning},
		{"silent", SeveritySilent},
		{"off", SeveritySilent},
		{"", SeveritySilent},
		{"anything else", SeveritySilent},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSeverity(tt.action))
		})
	}
}

func TestParseSeverityWarnBeatsErr(t *testing.T) {
	// A string matching both patterns classifies as a warning.
	assert.Equal(t, SeverityWarning, ParseSeverity("warn-on-error"))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "silent", SeveritySilent.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func TestSeverityHandlerName(t *testing.T) {
	assert.Equal(t, "error", SeverityError.HandlerName())
	assert.Equal(t, "warn", SeverityWarning.HandlerName())
	assert.Equal(t, "debug", SeveritySilent.HandlerName())
}
