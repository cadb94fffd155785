package smbsnap

import (
	"strings"
	"text/template"

	"github.com/pterm/pterm"
)

// templateFuncs are the helpers available to the usage template.
// Emphasis is dropped when color is off.
func templateFuncs(color bool) template.FuncMap {
	bold := func(s string) string {
		if !color {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	return template.FuncMap{
		"bold":      bold,
		"upper":     strings.ToUpper,
		"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
	}
}
