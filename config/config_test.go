package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/masonry/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
version: "1.0"
title: Home
settings:
  column_width: 30
views:
  - title: Living room
    path: living
    theme: gruvbox
    cards:
      - type: entities
        title: Lights
        entities:
          - light.kitchen
          - light.hall
      - type: custom:clock-card
        format: "15:04"
  - title: Empty
logging:
  level: debug
`

func TestLoadFromBytesYAML(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "Home", cfg.Title)
	assert.Equal(t, 30, cfg.Settings.ColumnWidth)
	assert.Equal(t, defaultMaxColumns, cfg.Settings.MaxColumns)
	require.Len(t, cfg.Views, 2)

	view := cfg.Views[0]
	assert.Equal(t, "gruvbox", view.Theme)
	require.Len(t, view.Cards, 2)
	assert.Equal(t, "entities", view.Cards[0].Type)
	assert.Equal(t, "Lights", view.Cards[0].Options["title"])
	assert.Equal(t, []interface{}{"light.kitchen", "light.hall"}, view.Cards[0].Options["entities"])
	assert.Equal(t, "custom:clock-card", view.Cards[1].Type)
	assert.Equal(t, "15:04", view.Cards[1].Options["format"])
	assert.NotContains(t, view.Cards[1].Options, "type")

	assert.Empty(t, cfg.Views[1].Cards)
	assert.Contains(t, cfg.Extensions, "logging")
}

func TestLoadFromBytesTOML(t *testing.T) {
	doc := `
version = "1.0"

[settings]
columns = 3

[[views]]
title = "Main"

[[views.cards]]
type = "entity-filter"
entities = ["sensor.*"]
state_filter = ["on"]
`
	cfg, err := LoadFromBytes([]byte(doc), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Settings.Columns)
	require.Len(t, cfg.Views, 1)
	require.Len(t, cfg.Views[0].Cards, 1)
	card := cfg.Views[0].Cards[0]
	assert.Equal(t, "entity-filter", card.Type)
	assert.Equal(t, []interface{}{"sensor.*"}, card.Options["entities"])
}

func TestCardWithoutTypeDecodesToEmptyType(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("views:\n  - cards:\n      - title: orphan\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, cfg.Views[0].Cards, 1)
	assert.Equal(t, "", cfg.Views[0].Cards[0].Type)
	assert.Equal(t, "orphan", cfg.Views[0].Cards[0].Options["title"])
}

func TestLoadFromBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.ErrorCode
	}{
		{"malformed yaml", "views: [", errors.ErrCodeConfigInvalid},
		{"schema violation", "settings:\n  columns: -2\n", errors.ErrCodeConfigValidation},
		{"duplicate view path", "views:\n  - path: a\n  - path: a\n", errors.ErrCodeConfigValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.doc), FormatYAML)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestEnvVarExpansion(t *testing.T) {
	t.Setenv("MASONRY_TEST_THEME", "terminal")
	cfg, err := LoadFromBytes([]byte(`
views:
  - theme: ${MASONRY_TEST_THEME}
    title: ${MASONRY_TEST_UNSET:-fallback}
`), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Views[0].Theme)
	assert.Equal(t, "fallback", cfg.Views[0].Title)
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	t.Setenv("MASONRY_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "xdg"))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	path := filepath.Join(root, "masonry.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	cfg, err := LoadFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, "Home", cfg.Title)
}

func TestFindConfigFileFallsBackToXDG(t *testing.T) {
	root := t.TempDir()
	xdg := filepath.Join(root, "xdg")
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "masonry"), 0755))
	path := filepath.Join(xdg, "masonry", "masonry.toml")
	require.NoError(t, os.WriteFile(path, []byte(`title = "global"`), 0644))
	t.Setenv("MASONRY_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	project := filepath.Join(root, "project")
	require.NoError(t, os.MkdirAll(project, 0755))

	found, err := FindConfigFile(project)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	cfg, err := Load(found)
	require.NoError(t, err)
	assert.Equal(t, "global", cfg.Title)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "masonry.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}
