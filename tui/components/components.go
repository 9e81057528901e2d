// Package components renders the chrome around a dashboard: header, view
// tabs and status bar.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/masonry/tui/theme"
)

// RenderHeader creates the dashboard header. The subtitle is optional.
func RenderHeader(t *theme.Theme, title string, subtitle ...string) string {
	header := t.Header.Render(title)

	if len(subtitle) > 0 && subtitle[0] != "" {
		sub := t.Muted.Render(subtitle[0])
		return lipgloss.JoinVertical(lipgloss.Left, header, sub)
	}

	return header
}

// RenderTabs renders one tab per view name with the active one highlighted.
func RenderTabs(t *theme.Theme, names []string, active int) string {
	if len(names) < 2 {
		return ""
	}
	tabs := make([]string, len(names))
	for i, name := range names {
		if i == active {
			tabs[i] = t.ActiveTab.Render(name)
		} else {
			tabs[i] = t.Tab.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderStatusBar lays out left and right aligned content across width.
func RenderStatusBar(t *theme.Theme, left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return t.Hint.Render(left)
	}
	return t.Hint.Render(left + strings.Repeat(" ", gap) + right)
}

// RenderDivider creates a horizontal divider.
func RenderDivider(t *theme.Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(t.Colors.Border).
		Render(strings.Repeat("─", width))
}
