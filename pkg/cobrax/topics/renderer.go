package topics

import "strings"

// Renderer turns the raw content of a topic file into terminal output.
// format is the file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written, making sure the output ends the line
type PlainRenderer struct{}

// Render returns content with exactly one trailing newline
func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
