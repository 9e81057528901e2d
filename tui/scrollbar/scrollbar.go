// Package scrollbar draws a vertical scrollbar next to a viewport.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/masonry/tui/theme"
)

// Generate returns one scrollbar cell per line of height.
func Generate(t *theme.Theme, vp *viewport.Model, height int) []string {
	if height <= 0 {
		return []string{}
	}

	bar := make([]string, height)
	total := vp.TotalLineCount()

	// Content fits: no bar.
	if total <= vp.Height {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	thumbSize := height * vp.Height / total
	if thumbSize < 1 {
		thumbSize = 1
	}

	percent := vp.ScrollPercent()
	if percent < 0 {
		percent = 0
	} else if percent > 1 {
		percent = 1
	}
	maxStart := height - thumbSize
	start := int(float64(maxStart)*percent + 0.5)

	for i := range bar {
		if i >= start && i < start+thumbSize {
			bar[i] = t.Muted.Render("█")
		} else {
			bar[i] = t.Muted.Render("░")
		}
	}
	return bar
}

// Overlay returns the viewport content with a scrollbar on the right.
func Overlay(t *theme.Theme, vp *viewport.Model) string {
	lines := strings.Split(vp.View(), "\n")
	bar := Generate(t, vp, len(lines))
	for i := range lines {
		lines[i] += bar[i]
	}
	return strings.Join(lines, "\n")
}
