// Package keymap defines the dashboard key bindings and how masonry.yml can
// override them.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/masonry/config"
)

// Config is the "tui" extension section of masonry.yml.
//
//	tui:
//	  preset: emacs
//	  keybindings:
//	    next_view: ["l", "tab"]
type Config struct {
	Preset      string              `yaml:"preset"`
	Keybindings map[string][]string `yaml:"keybindings"`
}

// KeyMap holds every binding the dashboard reacts to.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	NextView     key.Binding
	PrevView     key.Binding
	MoreColumns  key.Binding
	FewerColumns key.Binding
	Relayout     key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultVim returns the default vim-style keymap.
func DefaultVim() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("C-d", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),

		NextView: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("S-tab", "prev view"),
		),
		MoreColumns: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more columns"),
		),
		FewerColumns: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer columns"),
		),
		Relayout: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "relayout"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultEmacs returns an emacs-style keymap.
func DefaultEmacs() KeyMap {
	k := DefaultVim()
	k.Up = key.NewBinding(
		key.WithKeys("ctrl+p", "up"),
		key.WithHelp("C-p", "up"),
	)
	k.Down = key.NewBinding(
		key.WithKeys("ctrl+n", "down"),
		key.WithHelp("C-n", "down"),
	)
	k.PageUp = key.NewBinding(
		key.WithKeys("alt+v", "pgup"),
		key.WithHelp("M-v", "page up"),
	)
	k.PageDown = key.NewBinding(
		key.WithKeys("ctrl+v", "pgdown"),
		key.WithHelp("C-v", "page down"),
	)
	k.Top = key.NewBinding(
		key.WithKeys("alt+<", "home"),
		key.WithHelp("M-<", "top"),
	)
	k.Bottom = key.NewBinding(
		key.WithKeys("alt+>", "end"),
		key.WithHelp("M->", "bottom"),
	)
	return k
}

// DefaultArrows returns a keymap using arrow and page keys only.
func DefaultArrows() KeyMap {
	k := DefaultVim()
	k.Up = key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("up", "up"),
	)
	k.Down = key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("down", "down"),
	)
	k.PageUp = key.NewBinding(
		key.WithKeys("pgup", "shift+up"),
		key.WithHelp("PgUp", "page up"),
	)
	k.PageDown = key.NewBinding(
		key.WithKeys("pgdown", "shift+down"),
		key.WithHelp("PgDn", "page down"),
	)
	k.Top = key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("Home", "top"),
	)
	k.Bottom = key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("End", "bottom"),
	)
	return k
}

// Load builds the keymap from the "tui" extension of cfg: the preset first,
// then per-action overrides.
func Load(cfg *config.Config) KeyMap {
	var tuiCfg Config
	if cfg != nil {
		// A malformed section falls back to the defaults.
		_ = cfg.UnmarshalExtension("tui", &tuiCfg)
	}

	var k KeyMap
	switch tuiCfg.Preset {
	case "emacs":
		k = DefaultEmacs()
	case "arrows":
		k = DefaultArrows()
	default:
		k = DefaultVim()
	}

	for action, keys := range tuiCfg.Keybindings {
		if binding := k.binding(action); binding != nil {
			updateBinding(binding, keys)
		}
	}
	return k
}

func (k *KeyMap) binding(action string) *key.Binding {
	switch action {
	case "up":
		return &k.Up
	case "down":
		return &k.Down
	case "page_up":
		return &k.PageUp
	case "page_down":
		return &k.PageDown
	case "top":
		return &k.Top
	case "bottom":
		return &k.Bottom
	case "next_view":
		return &k.NextView
	case "prev_view":
		return &k.PrevView
	case "more_columns":
		return &k.MoreColumns
	case "fewer_columns":
		return &k.FewerColumns
	case "relayout":
		return &k.Relayout
	case "help":
		return &k.Help
	case "quit":
		return &k.Quit
	}
	return nil
}

// Helper to update a binding with new keys while preserving the help description
func updateBinding(binding *key.Binding, keys []string) {
	if len(keys) > 0 {
		helpDesc := binding.Help().Desc
		*binding = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], helpDesc),
		)
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Help, k.Quit}
}

// FullHelp returns every binding grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextView, k.PrevView, k.MoreColumns, k.FewerColumns, k.Relayout},
		{k.Help, k.Quit},
	}
}
