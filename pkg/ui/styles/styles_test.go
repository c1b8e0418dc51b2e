package styles_test

import (
	"testing"

	"github.com/arthur-debert/mmv/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesDefineEveryName(t *testing.T) {
	for _, name := range styles.Names {
		_, ok := styles.StyleRegistry[name]
		assert.True(t, ok, "style %s missing from styles.yaml", name)
	}
}

func TestStyleAttributes(t *testing.T) {
	assert.True(t, styles.GetStyle("Target").GetBold())
	assert.True(t, styles.GetStyle("Muted").GetItalic())
	assert.False(t, styles.GetStyle("Source").GetBold())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("DoesNotExist")
	assert.Equal(t, "x", style.Render("x"))
}

func TestLoadStylesFromData(t *testing.T) {
	original := styles.All()
	t.Cleanup(func() { styles.StyleRegistry = original })

	err := styles.LoadStylesFromData([]byte(`
colors:
  red: {light: "#f00", dark: "#f00"}
styles:
  Custom:
    foreground: red
    underline: true
`))
	require.NoError(t, err)
	assert.True(t, styles.GetStyle("Custom").GetUnderline())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [unclosed")))
}

func TestAllReturnsCopy(t *testing.T) {
	all := styles.All()
	delete(all, "Bold")
	_, ok := styles.StyleRegistry["Bold"]
	assert.True(t, ok)
}
