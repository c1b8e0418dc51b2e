// Package ui renders the moves of a run and its final error in one of
// three formats: terminal (styled), text (plain) and JSON.
package ui

import (
	"io"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/arthur-debert/mmv/pkg/ui/json"
	"github.com/arthur-debert/mmv/pkg/ui/terminal"
	"github.com/arthur-debert/mmv/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderMove writes one performed (or simulated) move to the output stream
	RenderMove(result types.MoveResult) error

	// RenderError writes the single diagnostic line to the error stream
	RenderError(err error) error
}

// NewRenderer creates a new renderer based on the specified format.
// Moves go to out and errors to errOut. Auto is resolved against out.
func NewRenderer(format Format, out, errOut io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(out), out, errOut)
	case FormatTerminal:
		return terminal.New(out, errOut), nil
	case FormatText:
		return text.New(out, errOut), nil
	case FormatJSON:
		return json.New(out, errOut), nil
	default:
		return nil, errors.Newf(errors.ErrInternal, "unknown format: %v", format)
	}
}
