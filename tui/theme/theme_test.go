package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/masonry/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	applied []*Theme
}

func (r *recordingTarget) ApplyTheme(th *Theme) {
	r.applied = append(r.applied, th)
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"Gruvbox":        "gruvbox",
		" kanagawa_wave ": "kanagawa-wave",
		"My Theme":       "my-theme",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeName(in), "input %q", in)
	}
}

func TestNewTableContainsBuiltins(t *testing.T) {
	table := NewTable("", nil)
	for _, name := range BuiltinNames() {
		th, ok := table.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, th.Name)
	}
	assert.Equal(t, "kanagawa", table.Default)
}

func TestLookupFollowsAliases(t *testing.T) {
	table := NewTable("", nil)
	th, ok := table.Lookup("gruvbox-dark")
	require.True(t, ok)
	assert.Equal(t, "gruvbox", th.Name)

	_, ok = table.Lookup("solarized")
	assert.False(t, ok)
}

func TestSpecOverridesColors(t *testing.T) {
	table := NewTable("ocean", map[string]Spec{
		"Ocean": {Base: "terminal", Colors: map[string]string{"border": "4", "Accent": "#00AAFF"}},
	})

	th, ok := table.Lookup("ocean")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("4"), th.Colors.Border)
	assert.Equal(t, lipgloss.Color("#00AAFF"), th.Colors.Violet)
	assert.Equal(t, lipgloss.Color(terminalRed), th.Colors.Red)
	assert.Same(t, th, table.DefaultTheme())
}

func TestApplyFallsBackToDefault(t *testing.T) {
	table := NewTable("gruvbox", nil)
	target := &recordingTarget{}

	Apply(target, table, "kanagawa")
	Apply(target, table, "does-not-exist")

	require.Len(t, target.applied, 2)
	assert.Equal(t, "kanagawa", target.applied[0].Name)
	assert.Equal(t, "gruvbox", target.applied[1].Name)
}

func TestApplyWithNilTable(t *testing.T) {
	target := &recordingTarget{}
	Apply(target, nil, "terminal")
	require.Len(t, target.applied, 1)
	assert.Equal(t, "terminal", target.applied[0].Name)

	Apply(nil, nil, "terminal")
}

func TestResolveReportsUnknownTheme(t *testing.T) {
	th, err := Resolve(nil, "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownTheme))
	assert.NotNil(t, th)
}
