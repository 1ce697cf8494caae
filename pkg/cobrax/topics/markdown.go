package topics

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders .md topics with glamour. Other formats pass
// through untouched.
type MarkdownRenderer struct {
	Style string // glamour style name or path, "auto" picks per terminal
	Width int    // wrap width, 0 lets glamour decide
}

// NewMarkdownRenderer creates a markdown renderer with terminal
// auto-detection.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output, falling back to
// the raw content on any rendering error.
func (r *MarkdownRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
