package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour; any other format is
// handed to PlainRenderer
type GlamourRenderer struct {
	Style string // "dark", "light", "notty", a style file, or "auto"
	Width int    // 0 keeps glamour's default wrap
}

// NewGlamourRenderer detects the style from the terminal, or uses the
// colorless one when NO_COLOR is set
func NewGlamourRenderer() *GlamourRenderer {
	style := "auto"
	if os.Getenv("NO_COLOR") != "" {
		style = "notty"
	}
	return &GlamourRenderer{Style: style}
}

// Render converts markdown to styled terminal output, falling back to the
// raw text if glamour fails
func (r *GlamourRenderer) Render(content string, format string) string {
	plain := &PlainRenderer{}
	if format != ".md" {
		return plain.Render(content, format)
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		options = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return plain.Render(content, format)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return plain.Render(content, format)
	}
	return rendered
}
