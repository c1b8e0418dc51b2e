package pattern

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/mmv/pkg/errors"
)

const (
	// Wildcard is the source pattern token for a captured run of characters
	Wildcard = "*"

	// wildcardGroup never crosses a '.', so a wildcard cannot eat an extension
	wildcardGroup = `([^.]*)`
)

var wildcardReplacer = strings.NewReplacer(regexp.QuoteMeta(Wildcard), wildcardGroup)

// Matcher tests file names against a compiled source pattern
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// PatternToRegex translates a wildcard pattern into an anchored regular
// expression. Every regex metacharacter is escaped first, so only the
// wildcard keeps a special meaning.
func PatternToRegex(pattern string) string {
	return "^" + wildcardReplacer.Replace(regexp.QuoteMeta(pattern)) + "$"
}

// Compile builds a Matcher for pattern
func Compile(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(PatternToRegex(pattern))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot compile pattern '%s'", pattern)
	}
	return &Matcher{pattern: pattern, re: re}, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Pattern returns the wildcard pattern m was compiled from
func (m *Matcher) Pattern() string {
	return m.pattern
}

// String returns the compiled regular expression
func (m *Matcher) String() string {
	return m.re.String()
}

// IsMatch reports whether the whole of filename matches the pattern
func (m *Matcher) IsMatch(filename string) bool {
	return m.re.MatchString(filename)
}

// Captures returns what each wildcard matched in filename, left to right.
// Wildcards that matched the empty string are left out. A filename that
// does not match yields an empty slice.
func (m *Matcher) Captures(filename string) []string {
	captures := []string{}

	loc := m.re.FindStringSubmatchIndex(filename)
	if loc == nil {
		return captures
	}

	// pairs after the first describe the groups
	for i := 2; i+1 < len(loc); i += 2 {
		start, end := loc[i], loc[i+1]
		if start < 0 || start == end {
			continue
		}
		captures = append(captures, filename[start:end])
	}
	return captures
}
