package output

// ConsoleSink routes lint findings to the renderer's error output. Error and
// warning lines always print; debug lines (silent findings, kind trailers)
// print only in verbose mode.
type ConsoleSink struct {
	r       *Renderer
	verbose bool
}

// NewConsoleSink creates a sink over the given renderer.
func NewConsoleSink(r *Renderer, verbose bool) *ConsoleSink {
	return &ConsoleSink{r: r, verbose: verbose}
}

// Error emits an error-classified line.
func (s *ConsoleSink) Error(line string) {
	s.r.Errorln(s.r.Render(s.r.Styles().Error, line))
}

// Warn emits a warning-classified line.
func (s *ConsoleSink) Warn(line string) {
	s.r.Errorln(s.r.Render(s.r.Styles().Warning, line))
}

// Debug emits a debug line when verbose output was requested.
func (s *ConsoleSink) Debug(line string) {
	if !s.verbose {
		return
	}
	s.r.Errorln(s.r.Render(s.r.Styles().Muted, line))
}
