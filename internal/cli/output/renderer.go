// Package output provides terminal-aware rendering for the cfglint CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer writes CLI output, applying styles only when the destination is a
// color-capable terminal.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	styles *Styles
	styled bool
}

// NewRenderer creates a renderer for the given writers. Styling is enabled
// only when out is a terminal with a color profile.
func NewRenderer(out, errOut io.Writer) *Renderer {
	styled := false
	if f, ok := out.(*os.File); ok {
		styled = termenv.NewOutput(f).ColorProfile() != termenv.Ascii
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		styles: DefaultStyles(),
		styled: styled,
	}
}

// Styles returns the renderer's style set.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the primary output writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the error output writer.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Render applies style to s when styling is enabled.
func (r *Renderer) Render(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line of output.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}

// Errorln writes a line to the error output.
func (r *Renderer) Errorln(s string) {
	fmt.Fprintln(r.errOut, s)
}

// Success writes a success line.
func (r *Renderer) Success(s string) {
	r.Println(r.Render(r.styles.Success, s))
}
