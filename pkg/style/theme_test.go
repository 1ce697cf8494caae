package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeRegistry(t *testing.T) {
	expectedStyles := []string{
		// Headers
		"Title", "Subtitle",
		// Text
		"Normal", "Muted", "Path",
		// Status
		"Success", "Error", "Warning", "Info",
		// Domain
		"Symlink", "Backup", "Secrets", "Install",
	}

	for _, name := range expectedStyles {
		t.Run(name, func(t *testing.T) {
			_, exists := registry[name]
			assert.True(t, exists, "style %s should exist in the theme", name)
		})
	}

	assert.GreaterOrEqual(t, len(registry), len(expectedStyles))
}

func TestThemeAppliesAttributes(t *testing.T) {
	assert.True(t, TitleStyle.GetBold())
	assert.True(t, PathStyle.GetItalic())
	assert.False(t, MutedStyle.GetBold())
}

func TestGetStyleUnknownFallsBack(t *testing.T) {
	s := GetStyle("NoSuchStyle")
	assert.False(t, s.GetBold())
	assert.False(t, s.GetItalic())
}

func TestThemeBindsIndicators(t *testing.T) {
	assert.Contains(t, SuccessIndicator, "✓")
	assert.Contains(t, ErrorIndicator, "✗")
	assert.Contains(t, WarningIndicator, "!")
	assert.Contains(t, PendingIndicator, "○")
}

func TestLoadThemeOverride(t *testing.T) {
	defer func() {
		require.NoError(t, LoadTheme(embeddedTheme))
	}()

	custom := []byte(`
styles:
  Title:
    italic: true
`)
	require.NoError(t, LoadTheme(custom))

	assert.True(t, TitleStyle.GetItalic())
	assert.False(t, TitleStyle.GetBold())
}

func TestLoadThemeBadYAML(t *testing.T) {
	err := LoadTheme([]byte("styles: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing theme")
}
