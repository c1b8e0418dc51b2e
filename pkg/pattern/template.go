package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/mmv/pkg/errors"
)

// Placeholder starts a positional reference in a target template
const Placeholder = '#'

// ResolveTarget substitutes every #n in template with captures[n-1].
//
// A '#' opens a placeholder and the digits right after it form its index.
// The placeholder ends at the first non-digit, at another '#', or at the end
// of the template; "#1#2" is two placeholders and "#x" is an index of zero.
// Any index outside 1..len(captures) fails with ErrInvalidTargetPath.
func ResolveTarget(captures []string, template string) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	inPlaceholder := false
	var digits strings.Builder

	resolve := func() error {
		value, err := captureAt(captures, digits.String())
		if err != nil {
			return err
		}
		out.WriteString(value)
		digits.Reset()
		return nil
	}

	for _, r := range template {
		switch {
		case r == Placeholder:
			if inPlaceholder {
				if err := resolve(); err != nil {
					return "", err
				}
			}
			inPlaceholder = true
			digits.Reset()
		case inPlaceholder && r >= '0' && r <= '9':
			digits.WriteRune(r)
		case inPlaceholder:
			if err := resolve(); err != nil {
				return "", err
			}
			inPlaceholder = false
			out.WriteRune(r)
		default:
			out.WriteRune(r)
		}
	}

	if inPlaceholder {
		if err := resolve(); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// captureAt looks up the 1-based position spelled by digits. An empty digit
// run is position 0; a run too large for an int is out of range and is
// reported as typed.
func captureAt(captures []string, digits string) (string, error) {
	if digits == "" {
		return "", invalidPosition("0")
	}

	position, err := strconv.Atoi(digits)
	if err != nil {
		return "", invalidPosition(digits)
	}
	if position < 1 || position > len(captures) {
		return "", invalidPosition(strconv.Itoa(position))
	}
	return captures[position-1], nil
}

func invalidPosition(position string) error {
	return errors.InvalidTargetPath(fmt.Sprintf("position #%s does not exist in source path", position))
}
