package cards

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState(t *testing.T) *appstate.State {
	t.Helper()
	st, err := appstate.Parse([]byte(`
entities:
  - entity_id: light.kitchen
    state: "on"
    attributes: {friendly_name: Kitchen}
  - entity_id: light.hall
    state: "off"
  - entity_id: sensor.outside
    state: "12.5"
  - entity_id: sensor.inside
    state: "21"
`))
	require.NoError(t, err)
	return st
}

func newCard(c Card, typ string, options map[string]interface{}, st *appstate.State) Card {
	c.SetConfig(config.CardConfig{Type: typ, Options: options})
	c.SetState(st)
	return c
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	assert.IsType(t, &EntitiesCard{}, r.New("hui-entities-card"))
	assert.IsType(t, &EntityFilterCard{}, r.New("hui-entity-filter-card"))

	missing := r.New("my-bar")
	require.IsType(t, &Placeholder{}, missing)
	assert.Equal(t, 1, missing.Weight())
	assert.Contains(t, missing.View(theme.DefaultTheme, 40), "my-bar")

	r.Register("my-bar", func() Card { return &EntitiesCard{} })
	assert.True(t, r.Has("my-bar"))
	assert.IsType(t, &EntitiesCard{}, r.New("my-bar"))
}

func TestEntitiesCard(t *testing.T) {
	st := testState(t)

	c := newCard(&EntitiesCard{}, "entities", map[string]interface{}{
		"title": "Lights",
		"entities": []interface{}{
			"light.kitchen",
			map[string]interface{}{"entity": "light.hall", "name": "Hallway"},
			"light.garage",
		},
	}, st)

	assert.Equal(t, 4, c.Weight())

	out := c.View(theme.DefaultTheme, 40)
	assert.Contains(t, out, "Lights")
	assert.Contains(t, out, "Kitchen")
	assert.Contains(t, out, "Hallway")
	assert.Contains(t, out, "Entity not available: light.garage")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestEntitiesCardWeightWithoutTitle(t *testing.T) {
	c := newCard(&EntitiesCard{}, "entities", map[string]interface{}{
		"entities": []interface{}{"light.kitchen", "light.hall"},
	}, nil)
	assert.Equal(t, 2, c.Weight())
}

func TestEntitiesCardInvalidConfig(t *testing.T) {
	c := newCard(&EntitiesCard{}, "entities", map[string]interface{}{"title": "Empty"}, nil)
	assert.Equal(t, 1, c.Weight())
	out := c.View(theme.DefaultTheme, 80)
	assert.Contains(t, out, "entities card needs at least one entity")
}

func TestEntityFilterCard(t *testing.T) {
	st := testState(t)

	tests := []struct {
		name    string
		options map[string]interface{}
		want    []string
		weight  int
	}{
		{
			name:    "glob",
			options: map[string]interface{}{"entities": []interface{}{"sensor.*"}},
			want:    []string{"sensor.inside", "sensor.outside"},
			weight:  2,
		},
		{
			name:    "exclusion",
			options: map[string]interface{}{"entities": []interface{}{"sensor.*", "!sensor.inside"}},
			want:    []string{"sensor.outside"},
			weight:  1,
		},
		{
			name: "state filter and title",
			options: map[string]interface{}{
				"title":        "On",
				"entities":     []interface{}{"light.*"},
				"state_filter": []interface{}{"on"},
			},
			want:   []string{"light.kitchen"},
			weight: 2,
		},
		{
			name:    "no matches still weighs one",
			options: map[string]interface{}{"entities": []interface{}{"switch.*"}},
			weight:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCard(&EntityFilterCard{}, "entity-filter", tt.options, st).(*EntityFilterCard)

			var ids []string
			for _, e := range c.Matches() {
				ids = append(ids, e.EntityID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, tt.weight, c.Weight())
		})
	}
}

func TestEntityFilterCardFollowsState(t *testing.T) {
	st := testState(t)
	c := newCard(&EntityFilterCard{}, "entity-filter", map[string]interface{}{
		"entities": []interface{}{"switch.*"},
	}, st).(*EntityFilterCard)
	assert.Contains(t, c.View(theme.DefaultTheme, 40), "No matching entities")

	c.SetState(st.Apply(appstate.Event{EntityID: "switch.fan", NewState: &appstate.Entity{State: "on"}}))
	assert.Contains(t, c.View(theme.DefaultTheme, 40), "switch.fan")
}
