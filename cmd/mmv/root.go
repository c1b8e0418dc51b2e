package mmv

import (
	"io"

	"github.com/arthur-debert/mmv/pkg/filesystem"
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/ui"
	"github.com/arthur-debert/mmv/pkg/ui/text"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// Run executes mmv with args (without the program name) and returns the
// process exit code. Moves are written to stdout, the error line to stderr.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, fs: filesystem.NewOS()}

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	logger := logging.GetLogger("cmd.mmv")
	logger.Debug().Err(err).Msg("command failed")

	// Errors raised before the config was read fall back to plain text
	var renderer ui.Renderer = text.New(stdout, stderr)
	if a.renderer != nil {
		renderer = a.renderer
	}
	_ = renderer.RenderError(err)
	return ExitError
}
