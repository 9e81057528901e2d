package scrollbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/masonry/tui/theme"
	"github.com/stretchr/testify/assert"
)

func TestGenerateFits(t *testing.T) {
	vp := viewport.New(10, 5)
	vp.SetContent("a\nb")
	assert.Equal(t, []string{" ", " ", " "}, Generate(theme.DefaultTheme, &vp, 3))
	assert.Empty(t, Generate(theme.DefaultTheme, &vp, 0))
}

func TestGenerateThumb(t *testing.T) {
	vp := viewport.New(10, 4)
	vp.SetContent(strings.Repeat("line\n", 15) + "line")

	bar := Generate(theme.DefaultTheme, &vp, 4)
	assert.Len(t, bar, 4)
	assert.Contains(t, bar[0], "█")
	assert.Contains(t, bar[3], "░")

	vp.GotoBottom()
	bar = Generate(theme.DefaultTheme, &vp, 4)
	assert.Contains(t, bar[3], "█")
}
