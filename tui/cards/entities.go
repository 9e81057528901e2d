package cards

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/tui/theme"
)

// EntityRow is one row of an entities card. In the file a row is either an
// entity id or a mapping with entity and name.
type EntityRow struct {
	Entity string `yaml:"entity"`
	Name   string `yaml:"name,omitempty"`
}

type entitiesOptions struct {
	Title    string      `yaml:"title"`
	Entities []EntityRow `yaml:"entities"`
}

var entityRowType = reflect.TypeOf(EntityRow{})

// entityRowHook turns a bare entity id into an EntityRow.
func entityRowHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != entityRowType || from.Kind() != reflect.String {
		return data, nil
	}
	return map[string]interface{}{"entity": data}, nil
}

// EntitiesCard lists entities with their current state.
type EntitiesCard struct {
	opts  entitiesOptions
	err   error
	state *appstate.State
}

func (c *EntitiesCard) SetConfig(cfg config.CardConfig) {
	c.opts = entitiesOptions{}
	c.err = cfg.Decode(&c.opts, entityRowHook)
	if c.err == nil && len(c.opts.Entities) == 0 {
		c.err = fmt.Errorf("entities card needs at least one entity")
	}
}

func (c *EntitiesCard) SetState(st *appstate.State) { c.state = st }

// Weight is one line for the title plus one per row.
func (c *EntitiesCard) Weight() int {
	if c.err != nil {
		return 1
	}
	w := len(c.opts.Entities)
	if c.opts.Title != "" {
		w++
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (c *EntitiesCard) View(th *theme.Theme, width int) string {
	box, inner := boxWidth(th, width), contentWidth(th, width)
	if c.err != nil {
		return th.CardError.Width(box).Render(c.err.Error())
	}

	var lines []string
	if c.opts.Title != "" {
		lines = append(lines, th.CardTitle.Render(c.opts.Title))
	}
	for _, row := range c.opts.Entities {
		entity, ok := c.state.Entity(row.Entity)
		if !ok {
			lines = append(lines, th.Warning.Render("Entity not available: "+row.Entity))
			continue
		}
		name := row.Name
		if name == "" {
			name = entity.Name()
		}
		lines = append(lines, entityLine(th, name, entity.State, inner))
	}
	return th.Card.Width(box).Render(strings.Join(lines, "\n"))
}

// entityLine renders name left aligned and state right aligned in width cells.
func entityLine(th *theme.Theme, name, state string, width int) string {
	styled := stateStyle(th, state).Render(state)
	room := width - lipgloss.Width(styled) - 1
	if room < 1 {
		room = 1
	}
	left := th.EntityName.MaxWidth(room).Render(name)
	gap := width - lipgloss.Width(left) - lipgloss.Width(styled)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + styled
}

func stateStyle(th *theme.Theme, state string) lipgloss.Style {
	switch strings.ToLower(state) {
	case "on", "open", "home", "playing":
		return th.StateOn
	case "off", "closed", "not_home", "unavailable", "unknown":
		return th.StateOff
	default:
		return th.StateOther
	}
}
