package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/masonry/cli"
	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDashboard = `
title: Home
views:
  - title: Lights
    path: lights
    cards:
      - type: entities
        title: Downstairs
        entities: [light.a, light.b, light.c, light.d]
      - type: entities
        entities: [light.e]
      - type: bogus
      - type: custom:clock-card
  - title: Empty
`

func writeDashboard(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "masonry.yml")
	require.NoError(t, os.WriteFile(path, []byte(testDashboard), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewStandardCommand("masonry", "test")
	root.AddCommand(NewRenderCmd(), NewLayoutCmd(), NewSchemaCmd(), NewConfigCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBuildLayoutReport(t *testing.T) {
	cfg, err := config.Load(writeDashboard(t))
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	report := BuildLayoutReport(cfg, 0, 2, appstate.New(), logrus.NewEntry(logger))

	assert.Equal(t, "Lights", report.View)
	assert.Equal(t, []string{"bogus"}, report.Skipped)
	require.Len(t, report.Layout, 2)
	require.Len(t, report.Layout[0], 1)
	require.Len(t, report.Layout[1], 2)
	assert.Equal(t, 5, report.Layout[0][0].Weight)
	assert.Equal(t, "hui-entities-card", report.Layout[0][0].Renderer)
	assert.Equal(t, 1, report.Layout[1][0].Weight)
	assert.Equal(t, "clock-card", report.Layout[1][1].Renderer)
}

func TestLayoutCommand(t *testing.T) {
	out, err := run(t, "layout", "--config", writeDashboard(t), "--columns", "1", "--view", "lights")
	require.NoError(t, err)

	var report LayoutReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 1, report.Columns)
	require.Len(t, report.Layout, 1)
	assert.Len(t, report.Layout[0], 3)
}

func TestRenderCommand(t *testing.T) {
	out, err := run(t, "render", "--config", writeDashboard(t), "--width", "80", "--columns", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "Downstairs")
	assert.Contains(t, out, "clock-card")
}

func TestRenderUnknownView(t *testing.T) {
	_, err := run(t, "render", "--config", writeDashboard(t), "--view", "garage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "garage")
}

func TestSchemaCommand(t *testing.T) {
	out, err := run(t, "schema")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "properties")
}

func TestConfigCommand(t *testing.T) {
	path := writeDashboard(t)
	out, err := run(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# Source: "+path)
	assert.Contains(t, out, "type: custom:clock-card")
}

func TestSelectView(t *testing.T) {
	cfg, err := config.Load(writeDashboard(t))
	require.NoError(t, err)

	for name, want := range map[string]int{"": 0, "lights": 0, "Empty": 1, "2": 1} {
		got, err := selectView(cfg, name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err = selectView(cfg, "3")
	assert.Error(t, err)
	_, err = selectView(&config.Config{}, "")
	assert.Error(t, err)
}
