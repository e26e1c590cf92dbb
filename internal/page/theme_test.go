package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeToggleAlternates(t *testing.T) {
	theme := DefaultTheme
	assert.Equal(t, Dark, theme)

	want := []Theme{Light, Dark, Light, Dark, Light}
	for i, w := range want {
		theme = theme.Toggle()
		assert.Equal(t, w, theme, "toggle %d", i+1)
	}
}

func TestThemeRootClass(t *testing.T) {
	assert.Equal(t, "dark", Dark.RootClass())
	assert.Equal(t, "", Light.RootClass())
	assert.True(t, Dark.IsDark())
	assert.False(t, Light.IsDark())
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
}
