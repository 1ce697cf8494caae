// Package json provides machine-readable JSON output for scripting and
// integration with other tools.
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/outfit/pkg/errors"
)

// Renderer encodes results as indented JSON documents.
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer writing to output.
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes any result type as JSON.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes an error as JSON, including the error code when
// the error carries one.
func (r *Renderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	obj := map[string]string{"error": err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		obj["code"] = string(code)
	}
	return r.encoder.Encode(obj)
}

// RenderMessage encodes a simple message as JSON.
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
