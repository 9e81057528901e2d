// Package render draws a laid out view in the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/masonry/pkg/view"
	"github.com/grovetools/masonry/tui/cards"
	"github.com/grovetools/masonry/tui/theme"
	"github.com/sirupsen/logrus"
)

const (
	defaultColumnWidth = 40
	defaultGap         = 1
)

// TerminalHost is a view.RenderHost that keeps mounted cards per column and
// renders the columns side by side.
type TerminalHost struct {
	registry *cards.Registry
	theme    *theme.Theme
	columns  [][]cards.Card
	logger   *logrus.Entry

	// ColumnWidth is the outer width of every column in cells.
	ColumnWidth int
	// Gap is the number of blank cells between columns.
	Gap int
}

// NewTerminalHost returns a host creating cards from registry.
func NewTerminalHost(registry *cards.Registry, logger *logrus.Entry) *TerminalHost {
	if registry == nil {
		registry = cards.NewRegistry()
	}
	return &TerminalHost{
		registry:    registry,
		theme:       theme.DefaultTheme,
		logger:      logger,
		ColumnWidth: defaultColumnWidth,
		Gap:         defaultGap,
	}
}

// Clear drops every mounted card.
func (h *TerminalHost) Clear() {
	h.columns = nil
}

// CreateElement creates a card for the renderer id.
func (h *TerminalHost) CreateElement(rendererID string) view.Element {
	return h.registry.New(rendererID)
}

// Mount appends el to the column with the given index. Elements that were
// not created by this host are ignored.
func (h *TerminalHost) Mount(el view.Element, column int) {
	card, ok := el.(cards.Card)
	if !ok || column < 0 {
		if h.logger != nil {
			h.logger.WithField("column", column).Warn("Ignoring element that cannot be drawn")
		}
		return
	}
	for len(h.columns) <= column {
		h.columns = append(h.columns, nil)
	}
	h.columns[column] = append(h.columns[column], card)
}

// ApplyTheme restyles every subsequent render.
func (h *TerminalHost) ApplyTheme(th *theme.Theme) {
	if th != nil {
		h.theme = th
	}
}

// Theme returns the theme in effect.
func (h *TerminalHost) Theme() *theme.Theme {
	return h.theme
}

// Columns returns the mounted cards per column.
func (h *TerminalHost) Columns() [][]cards.Card {
	return h.columns
}

// Render draws the mounted columns side by side.
func (h *TerminalHost) Render() string {
	if len(h.columns) == 0 {
		return ""
	}

	width := h.ColumnWidth
	if width <= 0 {
		width = defaultColumnWidth
	}

	blocks := make([]string, 0, len(h.columns)*2)
	for i, column := range h.columns {
		if i > 0 && h.Gap > 0 {
			blocks = append(blocks, strings.Repeat(" ", h.Gap))
		}
		rendered := make([]string, 0, len(column))
		for _, card := range column {
			rendered = append(rendered, card.View(h.theme, width))
		}
		col := lipgloss.JoinVertical(lipgloss.Left, rendered...)
		blocks = append(blocks, lipgloss.NewStyle().Width(width).Render(col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// FitColumns sets ColumnWidth so that columns fill totalWidth.
func (h *TerminalHost) FitColumns(totalWidth, columns int) {
	if columns <= 0 {
		return
	}
	gap := h.Gap
	if gap < 0 {
		gap = 0
	}
	width := (totalWidth - gap*(columns-1)) / columns
	if width < 1 {
		width = 1
	}
	h.ColumnWidth = width
}
