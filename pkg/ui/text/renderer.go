// Package text provides plain text output without any styling, suitable
// for pipes, redirects, and terminals without color support.
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/outfit/pkg/install"
	"github.com/arthur-debert/outfit/pkg/secrets"
	"github.com/arthur-debert/outfit/pkg/style"
	"github.com/arthur-debert/outfit/pkg/types"
)

// Renderer renders results as unstyled text.
type Renderer struct {
	output io.Writer
	styles *style.PlainRenderer
}

// New creates a new text renderer writing to output.
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{
		output: output,
		styles: style.NewPlainRenderer(),
	}, nil
}

// RenderResult renders any of outfit's result types as plain text.
// Unknown types fall back to a %+v dump.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.LinkResult:
		return r.println(r.styles.RenderLinkResult(v))
	case *types.StatusReport:
		return r.println(r.styles.RenderStatusReport(v))
	case *secrets.PushResult:
		return r.println(r.styles.RenderPushResult(v))
	case *install.Result:
		return r.println(r.styles.RenderInstallResult(v))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as plain text.
func (r *Renderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	return r.println(r.styles.RenderError(err))
}

// RenderMessage renders a simple informational message.
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}
