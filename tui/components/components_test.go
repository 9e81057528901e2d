package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/masonry/tui/theme"
	"github.com/stretchr/testify/assert"
)

func TestRenderTabs(t *testing.T) {
	th := theme.DefaultTheme
	assert.Empty(t, RenderTabs(th, []string{"Only"}, 0))

	out := RenderTabs(th, []string{"Home", "Garden"}, 1)
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "Garden")
}

func TestRenderStatusBar(t *testing.T) {
	th := theme.DefaultTheme
	out := RenderStatusBar(th, "left", "right", 20)
	assert.Equal(t, 20, lipgloss.Width(out))

	narrow := RenderStatusBar(th, "left", "right", 5)
	assert.Contains(t, narrow, "left")
	assert.NotContains(t, narrow, "right")
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(theme.DefaultTheme, "Home", "3 columns")
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "3 columns")
	assert.Empty(t, RenderDivider(theme.DefaultTheme, 0))
}
