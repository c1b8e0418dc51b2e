package operations

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/paths"
	"github.com/arthur-debert/mmv/pkg/types"
)

// Options control how a batch is carried out
type Options struct {
	// Force allows replacing targets that already exist
	Force bool

	// DryRun validates and reports every move without renaming
	DryRun bool

	// Preflight validates the whole batch before the first rename
	Preflight bool
}

// Reporter receives every move right after it is made
type Reporter interface {
	ReportMove(result types.MoveResult) error
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(result types.MoveResult) error

// ReportMove calls f(result)
func (f ReporterFunc) ReportMove(result types.MoveResult) error {
	return f(result)
}

// Executor performs a batch of moves
type Executor struct {
	fs       types.FS
	opts     Options
	reporter Reporter
}

// NewExecutor creates a new move executor. A nil reporter discards reports.
func NewExecutor(fs types.FS, opts Options, reporter Reporter) *Executor {
	if reporter == nil {
		reporter = ReporterFunc(func(types.MoveResult) error { return nil })
	}
	return &Executor{fs: fs, opts: opts, reporter: reporter}
}

// ValidateTarget checks that to can be renamed onto: it must name a file,
// its directory must exist, and unless forcing nothing may be there yet.
// An empty directory is the current one and always exists.
func (e *Executor) ValidateTarget(to string) error {
	dir, _, ok := paths.Split(to)
	if !ok {
		return errors.InvalidTargetPath(to)
	}

	if dir != "" {
		if _, err := e.fs.Stat(dir); err != nil {
			return errors.DirectoryNotFound(dir, err)
		}
	}

	if !e.opts.Force {
		if _, err := e.fs.Lstat(to); err == nil {
			return errors.FileAlreadyExists(to)
		}
	}
	return nil
}

// Preflight validates every pair against the filesystem and against the
// other pairs. Two pairs with the same target are a conflict even when
// forcing, since the second would replace a file the batch itself moved.
func (e *Executor) Preflight(pairs []types.MovePair) error {
	logger := logging.GetLogger("operations.preflight")
	processedTargets := make(map[string]bool, len(pairs))

	for _, pair := range pairs {
		target := filepath.Clean(pair.To)
		if processedTargets[target] {
			logger.Debug().
				Str("target", pair.To).
				Msg("target used twice in batch")
			return errors.FileAlreadyExists(pair.To).WithDetail("from", pair.From)
		}
		processedTargets[target] = true

		if err := e.ValidateTarget(pair.To); err != nil {
			return err
		}
	}

	logger.Debug().Int("pairs", len(pairs)).Msg("preflight passed")
	return nil
}

// Execute performs pairs in order and returns the moves made, stopping at
// the first error.
func (e *Executor) Execute(pairs []types.MovePair) ([]types.MoveResult, error) {
	logger := logging.GetLogger("operations.executor").With().
		Int("pair_count", len(pairs)).
		Bool("dry_run", e.opts.DryRun).
		Bool("force", e.opts.Force).
		Logger()
	defer logging.LogOperationStart(logger, "execute")()

	if e.opts.Preflight {
		if err := e.Preflight(pairs); err != nil {
			return nil, err
		}
	}

	results := make([]types.MoveResult, 0, len(pairs))
	for _, pair := range pairs {
		result, err := e.executeOne(pair)
		if err != nil {
			logger.Debug().
				Err(err).
				Str("from", pair.From).
				Str("to", pair.To).
				Int("completed", len(results)).
				Msg("batch stopped")
			return results, err
		}
		results = append(results, result)

		if err := e.reporter.ReportMove(result); err != nil {
			return results, errors.FromIO(err)
		}
	}

	logger.Info().Int("moved", len(results)).Msg("batch complete")
	return results, nil
}

func (e *Executor) executeOne(pair types.MovePair) (types.MoveResult, error) {
	result := types.MoveResult{From: pair.From, To: pair.To, DryRun: e.opts.DryRun}

	if err := e.ValidateTarget(pair.To); err != nil {
		return result, err
	}

	if e.opts.DryRun {
		return result, nil
	}

	if err := e.fs.Rename(pair.From, pair.To); err != nil {
		if stderrors.Is(err, fs.ErrPermission) {
			return result, errors.PermissionDenied(err)
		}
		return result, errors.MoveFailed(pair.From, err)
	}
	return result, nil
}
