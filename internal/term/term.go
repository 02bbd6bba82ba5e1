// Package term resolves the color mode and builds the lipgloss styles used
// for diagnostics. Styles are bound to one writer (normally stderr) so that
// listing output on stdout stays plain even when diagnostics are colored.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/lsseq/internal/config"
)

// Styles holds one style per diagnostic level.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Debug   lipgloss.Style

	enabled bool
}

// NewStyles returns styles rendering to w under the given color mode.
func NewStyles(w io.Writer, mode config.ColorMode) Styles {
	r := lipgloss.NewRenderer(w)
	enabled := Resolve(w, mode)
	switch {
	case !enabled:
		r.SetColorProfile(termenv.Ascii)
	case mode == config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}

	return Styles{
		Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		Warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFE66D")),
		Debug:   r.NewStyle().Foreground(lipgloss.Color("#A8DADC")),
		enabled: enabled,
	}
}

// Enabled reports whether the styles emit ANSI sequences.
func (s Styles) Enabled() bool { return s.enabled }

// Resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func Resolve(w io.Writer, mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(w) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether w is a file attached to a TTY (character device).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
