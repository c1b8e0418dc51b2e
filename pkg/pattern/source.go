package pattern

import (
	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/paths"
)

// SourcePattern is a source argument split into the directory to scan and
// the wildcard pattern for the names in it.
type SourcePattern struct {
	// Directory as typed by the user; empty means the current directory
	Directory string

	// Pattern is the final path segment, containing the wildcards
	Pattern string
}

// ParseSourcePath splits path into its directory and filename pattern.
// It fails with ErrInvalidSourcePath when no filename segment can be taken
// from path.
func ParseSourcePath(path string) (*SourcePattern, error) {
	dir, name, ok := paths.Split(path)
	if !ok {
		return nil, errors.InvalidSourcePath(path)
	}
	return &SourcePattern{Directory: dir, Pattern: name}, nil
}
