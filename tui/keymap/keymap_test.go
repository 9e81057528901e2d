package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/masonry/config"
	"github.com/stretchr/testify/assert"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadDefaults(t *testing.T) {
	k := Load(nil)
	assert.True(t, key.Matches(keyMsg("j"), k.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, k.NextView))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftTab}, k.PrevView))
}

func TestLoadPresetAndOverrides(t *testing.T) {
	cfg := &config.Config{Extensions: map[string]interface{}{
		"tui": map[string]interface{}{
			"preset": "emacs",
			"keybindings": map[string]interface{}{
				"next_view": []interface{}{"n"},
				"bogus":     []interface{}{"x"},
			},
		},
	}}

	k := Load(cfg)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlN}, k.Down))
	assert.False(t, key.Matches(keyMsg("j"), k.Down))
	assert.True(t, key.Matches(keyMsg("n"), k.NextView))
	assert.Equal(t, "next view", k.NextView.Help().Desc)
	assert.Equal(t, "n", k.NextView.Help().Key)
}

func TestHelpGroups(t *testing.T) {
	k := DefaultArrows()
	assert.Len(t, k.ShortHelp(), 3)
	assert.Len(t, k.FullHelp(), 3)
}
