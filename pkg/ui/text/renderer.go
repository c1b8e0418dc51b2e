// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/types"
)

// ErrorPrefix starts every diagnostic line
const ErrorPrefix = "mmv: "

// DryRunSuffix marks moves that were not performed
const DryRunSuffix = " (dry run)"

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output    io.Writer
	errOutput io.Writer
}

// New creates a new text renderer
func New(output, errOutput io.Writer) *Renderer {
	return &Renderer{output: output, errOutput: errOutput}
}

// RenderMove writes "from -> to"
func (r *Renderer) RenderMove(result types.MoveResult) error {
	line := result.Line()
	if result.DryRun {
		line += DryRunSuffix
	}
	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderError writes "mmv: <message>"
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.errOutput, ErrorPrefix+errors.UserMessage(err))
	return werr
}
