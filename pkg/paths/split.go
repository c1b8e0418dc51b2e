package paths

import (
	"strings"
)

const separator = "/"

// Split breaks path into its parent directory and final name segment.
//
// The directory is returned as the user spelled it, minus trailing
// separators: "./a/b.txt" gives "./a", "/b.txt" gives "/", and a bare
// "b.txt" gives an empty directory (the current directory). Trailing
// separators on the whole path are ignored, so "a/b/" names "b" in "a".
//
// A trailing "/." is dropped like a trailing separator, so "a/." names "a".
//
// ok is false when there is no name to take: an empty path, a path made
// only of separators, or one whose last segment is "." or "..".
func Split(path string) (dir, name string, ok bool) {
	trimmed := strings.TrimRight(path, separator)
	for strings.HasSuffix(trimmed, separator+".") {
		trimmed = strings.TrimRight(strings.TrimSuffix(trimmed, separator+"."), separator)
	}
	if trimmed == "" {
		return "", "", false
	}

	idx := strings.LastIndex(trimmed, separator)
	name = trimmed[idx+1:]
	if name == "." || name == ".." {
		return "", "", false
	}
	if idx < 0 {
		return "", name, true
	}

	dir = strings.TrimRight(trimmed[:idx], separator)
	if dir == "" {
		// the only separators before the name were leading ones
		dir = separator
	}
	return dir, name, true
}

// Join appends name to dir without cleaning dir, so "./photos" stays
// "./photos/name" in user facing output. An empty dir yields name.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, separator) {
		return dir + name
	}
	return dir + separator + name
}
