// Package matcher scans the source directory of a rename and pairs every
// file whose name matches the source pattern with its wildcard captures.
package matcher

import (
	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/paths"
	"github.com/arthur-debert/mmv/pkg/pattern"
	"github.com/arthur-debert/mmv/pkg/types"
)

// FileMatcher finds the files a source argument refers to
type FileMatcher struct {
	fs      types.FS
	source  *pattern.SourcePattern
	matcher *pattern.Matcher
}

// New parses sourcePath and compiles its pattern
func New(fs types.FS, sourcePath string) (*FileMatcher, error) {
	source, err := pattern.ParseSourcePath(sourcePath)
	if err != nil {
		return nil, err
	}

	m, err := pattern.Compile(source.Pattern)
	if err != nil {
		return nil, err
	}

	return &FileMatcher{fs: fs, source: source, matcher: m}, nil
}

// Source returns the parsed source argument
func (f *FileMatcher) Source() *pattern.SourcePattern {
	return f.source
}

// FilesWithMatches lists the regular files of the source directory whose
// names match, in directory order. Paths keep the directory as the user
// typed it. No match at all is an ErrNoFilesForPattern error.
func (f *FileMatcher) FilesWithMatches() ([]types.FileWithMatches, error) {
	logger := logging.GetLogger("matcher")

	dir := f.source.Directory
	readDir := dir
	if readDir == "" {
		readDir = "."
	}

	entries, err := f.fs.ReadDir(readDir)
	if err != nil {
		return nil, errors.DirectoryNotFound(dir, err)
	}

	var files []types.FileWithMatches
	for _, entry := range entries {
		// directories, symlinks and devices are never renamed
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		if !f.matcher.IsMatch(name) {
			continue
		}

		file := types.FileWithMatches{
			Path:     paths.Join(dir, name),
			Captures: f.matcher.Captures(name),
		}
		logger.Debug().
			Str("file", file.Path).
			Strs("captures", file.Captures).
			Msg("file matched pattern")
		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, errors.NoFilesForPattern(f.source.Pattern)
	}

	logger.Info().
		Str("directory", readDir).
		Str("pattern", f.source.Pattern).
		Int("count", len(files)).
		Msg("source scan complete")
	return files, nil
}
