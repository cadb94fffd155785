package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Renderer formats topic content for the terminal
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats are
// returned unchanged.
type GlamourRenderer struct {
	// Color selects a dark or light style from the terminal background.
	// Without it the "notty" style is used.
	Color bool
	// Width wraps the output. Zero keeps glamour's default.
	Width int
}

func (r GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	style := "notty"
	if r.Color {
		style = "light"
		if termenv.HasDarkBackground() {
			style = "dark"
		}
	}

	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
