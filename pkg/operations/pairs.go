package operations

import (
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/pattern"
	"github.com/arthur-debert/mmv/pkg/types"
)

// BuildPairs resolves template against the captures of every file. The
// first template that cannot be resolved aborts with its error.
func BuildPairs(files []types.FileWithMatches, template string) ([]types.MovePair, error) {
	logger := logging.GetLogger("operations.pairs")

	pairs := make([]types.MovePair, 0, len(files))
	for _, file := range files {
		to, err := pattern.ResolveTarget(file.Captures, template)
		if err != nil {
			return nil, err
		}

		logger.Trace().
			Str("from", file.Path).
			Str("to", to).
			Msg("resolved target")
		pairs = append(pairs, types.MovePair{From: file.Path, To: to})
	}
	return pairs, nil
}
