package lint

import "log/slog"

// Sink receives the rendered output lines of a lint run. The Handler is
// constructed with an explicit sink instead of reaching for a process-wide
// logger; the CLI installs a console sink, tests install a recording one.
type Sink interface {
	// Error emits a line for an error-classified finding.
	Error(line string)
	// Warn emits a line for a warning-classified finding or a diagnostic.
	Warn(line string)
	// Debug emits a line for a silent finding or a kind trailer.
	Debug(line string)
}

type slogSink struct {
	logger *slog.Logger
}

// NewSlogSink adapts a slog.Logger into a Sink.
func NewSlogSink(logger *slog.Logger) Sink {
	return &slogSink{logger: logger}
}

func (s *slogSink) Error(line string) { s.logger.Error(line) }
func (s *slogSink) Warn(line string)  { s.logger.Warn(line) }
func (s *slogSink) Debug(line string) { s.logger.Debug(line) }
