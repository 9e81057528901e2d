// Package dashboard is the interactive terminal dashboard: one tab per view,
// columns derived from the terminal width, live state and config reloads.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/pkg/view"
	"github.com/grovetools/masonry/tui/components"
	"github.com/grovetools/masonry/tui/keymap"
	"github.com/grovetools/masonry/tui/render"
	"github.com/grovetools/masonry/tui/scrollbar"
	"github.com/grovetools/masonry/tui/theme"
)

// ConfigMsg delivers a reloaded dashboard file, or the error that stopped it
// from loading.
type ConfigMsg struct {
	Config *config.Config
	Err    error
}

// StateMsg delivers a new state snapshot.
type StateMsg struct {
	State *appstate.State
}

// FeedErrMsg reports that a state feed stopped.
type FeedErrMsg struct {
	Err error
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	cfg    *config.Config
	active int

	host *render.TerminalHost
	ctrl *view.Controller

	keys     keymap.KeyMap
	help     help.Model
	viewport viewport.Model

	width, height int
	// columnDelta shifts the width-derived column count.
	columnDelta int
	ready       bool
	err         error
}

// New returns a dashboard for cfg drawing into host through ctrl. The
// initial view is the one at index active.
func New(cfg *config.Config, host *render.TerminalHost, ctrl *view.Controller, active int) *Model {
	m := &Model{
		cfg:  cfg,
		host: host,
		ctrl: ctrl,
		keys: keymap.Load(cfg),
		help: help.New(),
	}
	if cfg.View(active) == nil {
		active = 0
	}
	m.active = active
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Active returns the index of the view on screen.
func (m *Model) Active() int {
	return m.active
}

// Err returns the last config or feed error, if any.
func (m *Model) Err() error {
	return m.err
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width-1, m.bodyHeight())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 1
			m.viewport.Height = m.bodyHeight()
		}
		m.showView()

	case StateMsg:
		m.ctrl.SetState(msg.State)
		m.refresh()

	case ConfigMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.cfg = msg.Config
		m.keys = keymap.Load(msg.Config)
		if m.cfg.View(m.active) == nil {
			m.active = 0
		}
		m.showView()

	case FeedErrMsg:
		m.err = msg.Err

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
		case key.Matches(msg, m.keys.MoreColumns):
			m.columnDelta++
			m.showView()
		case key.Matches(msg, m.keys.FewerColumns):
			if m.columns() > 1 {
				m.columnDelta--
				m.showView()
			}
		case key.Matches(msg, m.keys.Relayout):
			m.ctrl.Relayout()
			m.refresh()
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
		case key.Matches(msg, m.keys.Up):
			m.viewport.LineUp(1)
		case key.Matches(msg, m.keys.Down):
			m.viewport.LineDown(1)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.HalfViewUp()
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.HalfViewDown()
		}
		return m, nil
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchView(step int) {
	n := len(m.cfg.Views)
	if n < 2 {
		return
	}
	m.active = (m.active + step + n) % n
	m.showView()
	m.viewport.GotoTop()
}

// columns is the column count for the current width.
func (m *Model) columns() int {
	n := m.cfg.Settings.ColumnCount(m.width) + m.columnDelta
	if n < 1 {
		n = 1
	}
	return n
}

// showView pushes the active view and column count into the controller. The
// view theme, if any, is applied by the controller; views without one get
// the state's default theme.
func (m *Model) showView() {
	if m.width == 0 {
		return
	}
	cols := m.columns()
	m.host.FitColumns(m.width-1, cols)

	v := m.cfg.View(m.active)
	if !v.HasTheme() {
		m.host.ApplyTheme(m.defaultTheme())
	}
	m.ctrl.SetLayout(v, cols)
	m.refresh()
}

func (m *Model) defaultTheme() *theme.Theme {
	if st := m.ctrl.State(); st != nil && st.Themes != nil {
		return st.Themes.DefaultTheme()
	}
	return theme.DefaultTheme
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.resize()
	content := m.host.Render()
	if content == "" {
		content = m.host.Theme().Muted.Render("No cards to show")
	}
	m.viewport.SetContent(content)
}

func (m *Model) resize() {
	if m.ready {
		m.viewport.Height = m.bodyHeight()
	}
}

func (m *Model) headerView() string {
	th := m.host.Theme()
	title := m.cfg.Title
	if title == "" {
		title = "masonry"
	}

	names := make([]string, len(m.cfg.Views))
	for i := range m.cfg.Views {
		names[i] = m.cfg.Views[i].Name(i)
	}

	subtitle := ""
	if v := m.cfg.View(m.active); v != nil {
		subtitle = fmt.Sprintf("%s · %d columns", v.Name(m.active), m.columns())
	}

	parts := []string{components.RenderHeader(th, title, subtitle)}
	if tabs := components.RenderTabs(th, names, m.active); tabs != "" {
		parts = append(parts, tabs)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) footerView() string {
	th := m.host.Theme()
	var lines []string
	if m.err != nil {
		lines = append(lines, th.Error.Render("Error: "+m.err.Error()))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m *Model) bodyHeight() int {
	h := m.height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView()) - 1
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading dashboard..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		scrollbar.Overlay(m.host.Theme(), &m.viewport),
		m.footerView(),
	)
}
