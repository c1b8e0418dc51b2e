// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/types"
	"github.com/arthur-debert/mmv/pkg/ui/lipbalm"
	"github.com/arthur-debert/mmv/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
)

const (
	moveTemplate  = "<Source>%s</Source> <Arrow>-></Arrow> <Target>%s</Target>"
	dryRunTag     = " <Muted>(dry run)</Muted>"
	errorTemplate = "<ErrorPrefix>mmv:</ErrorPrefix> <Error>%s</Error>"
)

// Renderer provides rich terminal output using lipbalm tags
type Renderer struct {
	output    io.Writer
	errOutput io.Writer
	styles    lipbalm.StyleMap
}

// New creates a new terminal renderer
func New(output, errOutput io.Writer) *Renderer {
	lipbalm.SetDefaultRenderer(lipgloss.NewRenderer(output))
	return &Renderer{
		output:    output,
		errOutput: errOutput,
		styles:    styles.All(),
	}
}

// RenderMove writes a styled "from -> to"
func (r *Renderer) RenderMove(result types.MoveResult) error {
	markup := fmt.Sprintf(moveTemplate, lipbalm.Escape(result.From), lipbalm.Escape(result.To))
	if result.DryRun {
		markup += dryRunTag
	}

	line, err := lipbalm.ExpandTags(markup, r.styles)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, line)
	return err
}

// RenderError writes a styled "mmv: <message>"
func (r *Renderer) RenderError(err error) error {
	markup := fmt.Sprintf(errorTemplate, lipbalm.Escape(errors.UserMessage(err)))

	line, xerr := lipbalm.ExpandTags(markup, r.styles)
	if xerr != nil {
		return xerr
	}
	_, werr := fmt.Fprintln(r.errOutput, line)
	return werr
}
