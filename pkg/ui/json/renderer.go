// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/types"
)

// Renderer writes one JSON object per line
type Renderer struct {
	encoder    *json.Encoder
	errEncoder *json.Encoder
}

// errorObject is the shape of a rendered error
type errorObject struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// New creates a new JSON renderer
func New(output, errOutput io.Writer) *Renderer {
	return &Renderer{
		encoder:    json.NewEncoder(output),
		errEncoder: json.NewEncoder(errOutput),
	}
}

// RenderMove writes {"from":..,"to":..,"dry_run":..}
func (r *Renderer) RenderMove(result types.MoveResult) error {
	return r.encoder.Encode(result)
}

// RenderError writes the error as a single JSON object
func (r *Renderer) RenderError(err error) error {
	return r.errEncoder.Encode(errorObject{
		Error:   errors.UserMessage(err),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}
