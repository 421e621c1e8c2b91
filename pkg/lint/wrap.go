package lint

import (
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

// wrapIndent is the indent applied to wrapped output lines.
const wrapIndent = "  "

// TerminalWidth returns the column width of the terminal behind f, or 0 when
// f is not an interactive terminal. When the terminal size cannot be read
// from the device, the COLUMNS/LINES environment pair is consulted; if either
// is missing the output is treated as non-interactive.
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	cols, colsErr := strconv.Atoi(os.Getenv("COLUMNS"))
	if _, linesErr := strconv.Atoi(os.Getenv("LINES")); colsErr == nil && linesErr == nil && cols > 0 {
		return cols
	}
	return 0
}

// Wrapper renders free-text messages as a sequence of output lines, wrapped
// and indented to a fixed width. A width of 0 or less disables wrapping and
// messages pass through verbatim, one output line per input line.
type Wrapper struct {
	width int
}

// NewWrapper creates a wrapper for the given column width.
func NewWrapper(width int) *Wrapper {
	return &Wrapper{width: width}
}

// NewTerminalWrapper creates a wrapper sized to the terminal behind f.
func NewTerminalWrapper(f *os.File) *Wrapper {
	return NewWrapper(TerminalWidth(f))
}

// Wrap renders msg into output lines. The message is split on its own line
// boundaries first so caller-intended paragraphs survive, then each paragraph
// is word-wrapped independently; a single wrap pass over the whole message
// would merge distinct paragraphs into one. The very first rendered line gets
// prefix instead of the indent, all continuation lines get the indent only.
func (w *Wrapper) Wrap(prefix, msg string) []string {
	var out []string
	first := true
	for _, raw := range strings.Split(msg, "\n") {
		for _, line := range w.wrapLine(raw) {
			if first {
				out = append(out, prefix+strings.TrimLeft(line, " "))
				first = false
				continue
			}
			out = append(out, line)
		}
	}
	return out
}

func (w *Wrapper) wrapLine(s string) []string {
	if w.width <= 0 {
		return []string{s}
	}
	if strings.TrimSpace(s) == "" {
		// Blank separator lines carry no content once wrapped.
		return nil
	}
	inner := w.width - len(wrapIndent)
	if inner < 1 {
		inner = 1
	}
	lines := strings.Split(wordwrap.WrapString(s, uint(inner)), "\n")
	for i := range lines {
		lines[i] = wrapIndent + lines[i]
	}
	return lines
}
