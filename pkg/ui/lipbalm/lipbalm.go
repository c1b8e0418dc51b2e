package lipbalm

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap maps tag names to the styles they apply
type StyleMap map[string]lipgloss.Style

const (
	noFormatTag = "no-format"
	rootTag     = "lipbalm-root"
)

var defaultRenderer = lipgloss.DefaultRenderer()

// SetDefaultRenderer sets the renderer whose color profile decides whether
// styles are applied
func SetDefaultRenderer(r *lipgloss.Renderer) {
	defaultRenderer = r
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape makes s safe to place between tags
func Escape(s string) string {
	return escaper.Replace(s)
}

// Render executes tmpl as a Go template with data, then expands its tags
func Render(tmpl string, data interface{}, styles StyleMap) (string, error) {
	t, err := template.New("lipbalm").Funcs(template.FuncMap{"escape": Escape}).Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces every known tag with its style. Unknown tags keep
// their content unstyled; without color support no style is applied and
// <no-format> content is shown instead.
func ExpandTags(input string, styles StyleMap) (string, error) {
	root := parse(input)
	if root == nil {
		return input, nil
	}

	color := defaultRenderer.ColorProfile() != termenv.Ascii
	return expand(root, styles, color), nil
}

// StripTags removes every tag and keeps all text, <no-format> included
func StripTags(input string) string {
	root := parse(input)
	if root == nil {
		return input
	}
	return expand(root, nil, false)
}

// parse wraps input in a root element; nil means input is not valid markup
func parse(input string) *etree.Element {
	if input == "" {
		return nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil
	}
	return doc.Root()
}

func expand(el *etree.Element, styles StyleMap, color bool) string {
	var sb strings.Builder
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			if t.Tag == noFormatTag {
				if !color {
					sb.WriteString(expand(t, styles, color))
				}
				continue
			}

			inner := expand(t, styles, color)
			if style, ok := styles[t.Tag]; ok && color {
				inner = style.Render(inner)
			}
			sb.WriteString(inner)
		}
	}
	return sb.String()
}
