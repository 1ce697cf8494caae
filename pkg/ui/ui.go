// Package ui provides a unified interface for rendering command results
// in different output formats. Three renderers are available: terminal
// (rich output with colors), text (plain output for pipes and dumb
// terminals), and json (machine-readable output).
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/arthur-debert/outfit/pkg/ui/json"
	"github.com/arthur-debert/outfit/pkg/ui/terminal"
	"github.com/arthur-debert/outfit/pkg/ui/text"
)

// Renderer is the common interface implemented by all output renderers.
type Renderer interface {
	// RenderResult renders one of outfit's result types.
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting.
	RenderError(err error) error

	// RenderMessage renders a simple informational message.
	RenderMessage(msg string) error
}

// ResolveFormat pins FormatAuto to a concrete format for the given
// writer. Writers that are not files always resolve to plain text.
func ResolveFormat(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// NewRenderer creates a renderer for the given format. FormatAuto
// inspects the output destination and picks terminal or text output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch ResolveFormat(format, output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format: %s", format)
	}
}
