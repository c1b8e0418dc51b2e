package types

// FileWithMatches is a directory entry whose name matched the source pattern,
// together with the non-empty substrings captured by its wildcards.
type FileWithMatches struct {
	// Path is the scanned directory, as the user spelled it, joined with the
	// file name; a bare name when the current directory was scanned
	Path string `json:"path"`

	// Captures are the wildcard captures in left-to-right order
	Captures []string `json:"captures"`
}

// MovePair is one planned rename. From keeps the directory spelling the
// user typed; To is the interpolated target.
type MovePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MoveResult records a move that was performed, or that would have been
// performed when DryRun is set.
type MoveResult struct {
	From   string `json:"from"`
	To     string `json:"to"`
	DryRun bool   `json:"dry_run"`
}

// Line renders the move as shown on standard output.
func (m MoveResult) Line() string {
	return m.From + " -> " + m.To
}
