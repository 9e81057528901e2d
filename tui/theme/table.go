package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/masonry/errors"
)

// Spec describes a user-defined theme: a built-in base palette plus color
// overrides keyed by palette slot (green, yellow, red, orange, cyan, blue,
// violet, text, muted, border, selected, subtle).
type Spec struct {
	Base   string            `yaml:"base,omitempty" json:"base,omitempty"`
	Colors map[string]string `yaml:"colors,omitempty" json:"colors,omitempty"`
}

// Build resolves the spec into a full Theme.
func (s Spec) Build(name string) *Theme {
	colors := resolveThemeColors(s.Base)
	for slot, value := range s.Colors {
		c := lipgloss.Color(value)
		switch strings.ToLower(slot) {
		case "green":
			colors.Green = c
		case "yellow":
			colors.Yellow = c
		case "red":
			colors.Red = c
		case "orange":
			colors.Orange = c
		case "cyan":
			colors.Cyan = c
		case "blue":
			colors.Blue = c
		case "violet", "accent":
			colors.Violet = c
		case "text":
			colors.LightText = c
		case "muted":
			colors.MutedText = c
		case "border":
			colors.Border = c
		case "selected":
			colors.SelectedBackground = c
		case "subtle":
			colors.SubtleBackground = c
		}
	}
	return NewThemeFromColors(colors, NormalizeName(name))
}

// Table is the set of themes a dashboard can switch between, plus the name
// used when a view asks for a theme the table does not know.
type Table struct {
	Default string
	Themes  map[string]*Theme
}

// NewTable returns a table holding every built-in palette and the given
// user-defined specs. Specs override built-ins of the same name.
func NewTable(defaultName string, specs map[string]Spec) *Table {
	t := &Table{
		Default: NormalizeName(defaultName),
		Themes:  make(map[string]*Theme, len(themeRegistry)+len(specs)),
	}
	for _, name := range BuiltinNames() {
		t.Themes[name] = NewThemeWithName(name)
	}
	for name, spec := range specs {
		t.Themes[NormalizeName(name)] = spec.Build(name)
	}
	if t.Default == "" {
		t.Default = defaultThemeName
	}
	return t
}

// Lookup finds a theme by id, following the built-in aliases. A nil table
// behaves like a table of built-ins.
func (t *Table) Lookup(id string) (*Theme, bool) {
	if t == nil {
		return NewTable("", nil).Lookup(id)
	}
	key := NormalizeName(id)
	if th, ok := t.Themes[key]; ok {
		return th, true
	}
	if alias, ok := themeAliases[key]; ok {
		if th, ok := t.Themes[alias]; ok {
			return th, true
		}
	}
	return nil, false
}

// DefaultTheme returns the table's fallback theme.
func (t *Table) DefaultTheme() *Theme {
	if th, ok := t.Lookup(t.defaultName()); ok {
		return th
	}
	return DefaultTheme
}

func (t *Table) defaultName() string {
	if t == nil || t.Default == "" {
		return defaultThemeName
	}
	return t.Default
}

// Target is anything whose presentation can be restyled by a theme.
type Target interface {
	ApplyTheme(th *Theme)
}

// Resolve looks up id in themes and reports an UNKNOWN_THEME error alongside
// the table default when it is missing.
func Resolve(themes *Table, id string) (*Theme, error) {
	if th, ok := themes.Lookup(id); ok {
		return th, nil
	}
	return themes.DefaultTheme(), errors.UnknownTheme(id)
}

// Apply restyles target with the theme named id. Unknown ids apply the
// table default.
func Apply(target Target, themes *Table, id string) {
	if target == nil {
		return
	}
	th, _ := Resolve(themes, id)
	target.ApplyTheme(th)
}
