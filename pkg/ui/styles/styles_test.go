package styles_test

import (
	"testing"

	"github.com/arthur-debert/smbsnap/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	require.NoError(t, styles.LoadStylesFromData(embedded(t)))

	for _, name := range []string{"Header", "Share", "Snapshot", "FilePath", "Success", "Error", "Warning", "Muted", "Bold", "DryRunBanner"} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "style %s should exist", name)
		})
	}

	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}, styles.GetStyle("Error").GetForeground())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.False(t, style.GetBold())
	assert.Equal(t, "plain", styles.Render("NoSuchStyle", "plain"))
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	err := styles.LoadStylesFromData([]byte("colors: [not, a, map"))
	assert.Error(t, err)

	// restore for other tests
	require.NoError(t, styles.LoadStylesFromData(embedded(t)))
}

func TestLoadStyles_MissingFile(t *testing.T) {
	assert.Error(t, styles.LoadStyles("/nonexistent/styles.yaml"))
}

func embedded(t *testing.T) []byte {
	t.Helper()
	return []byte(`
colors:
  error:
    light: "#D70000"
    dark: "#FF5F5F"
styles:
  Header: {bold: true}
  Share: {bold: true}
  Snapshot: {}
  FilePath: {}
  Success: {}
  Error: {bold: true, foreground: error}
  Warning: {}
  Muted: {}
  Bold: {bold: true}
  DryRunBanner: {bold: true}
`)
}
