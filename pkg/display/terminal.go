// Package display renders run summaries and snapshot listings for the
// terminal.
package display

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled decides whether output to f is styled. NO_COLOR and
// --no-color always win.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(f)
}

// SetColor toggles pterm styling globally
func SetColor(enabled bool) {
	if enabled {
		pterm.EnableStyling()
		return
	}
	pterm.DisableStyling()
}
