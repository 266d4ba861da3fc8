// Package output provides mode-aware rendering for CLI commands.
//
// A Renderer adapts to its environment: on a terminal it renders styled
// text, when piped it renders markdown, and --format json switches to
// machine-readable output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles Styles
}

// NewRenderer creates a renderer. An empty or unknown mode behaves as
// ModeAuto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		styles: newStyles(out),
	}
}

// EffectiveMode resolves ModeAuto: text on a terminal, markdown when
// piped or redirected.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return ModeText
		}
	}
	return ModeMarkdown
}

// Styles returns the lipgloss styles for text rendering.
func (r *Renderer) Styles() Styles { return r.styles }

// Println writes a line to the output stream.
func (r *Renderer) Println(s string) {
	fmt.Fprintln(r.out, s)
}

// Printf writes formatted text to the output stream.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Warning writes a styled warning line to the error stream.
func (r *Renderer) Warning(s string) {
	fmt.Fprintln(r.errOut, r.styles.Warning.Render("Warning: "+s))
}

// Error writes a styled error line to the error stream.
func (r *Renderer) Error(s string) {
	fmt.Fprintln(r.errOut, r.styles.Error.Render("Error: "+s))
}

// JSON writes v as indented JSON to the output stream.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
