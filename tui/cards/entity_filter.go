package cards

import (
	"fmt"
	"strings"

	"github.com/grovetools/masonry/config"
	"github.com/grovetools/masonry/pkg/appstate"
	"github.com/grovetools/masonry/tui/theme"
	"github.com/moby/patternmatcher"
)

type entityFilterOptions struct {
	Title       string   `yaml:"title"`
	Entities    []string `yaml:"entities"`
	StateFilter []string `yaml:"state_filter"`
}

// EntityFilterCard shows every entity whose id matches one of the glob
// patterns and, when a state filter is set, whose state is listed in it.
// Patterns starting with ! exclude.
type EntityFilterCard struct {
	opts    entityFilterOptions
	matcher *patternmatcher.PatternMatcher
	err     error
	state   *appstate.State
}

func (c *EntityFilterCard) SetConfig(cfg config.CardConfig) {
	c.opts = entityFilterOptions{}
	c.matcher = nil
	if c.err = cfg.Decode(&c.opts); c.err != nil {
		return
	}
	if len(c.opts.Entities) == 0 {
		c.err = fmt.Errorf("entity-filter card needs at least one entity pattern")
		return
	}
	c.matcher, c.err = patternmatcher.New(c.opts.Entities)
}

func (c *EntityFilterCard) SetState(st *appstate.State) { c.state = st }

// Matches returns the matching entities in id order.
func (c *EntityFilterCard) Matches() []appstate.Entity {
	if c.matcher == nil || c.state == nil {
		return nil
	}
	var out []appstate.Entity
	for _, id := range c.state.EntityIDs() {
		ok, err := c.matcher.MatchesOrParentMatches(id)
		if err != nil || !ok {
			continue
		}
		entity := c.state.Entities[id]
		if !c.stateAllowed(entity.State) {
			continue
		}
		out = append(out, entity)
	}
	return out
}

func (c *EntityFilterCard) stateAllowed(state string) bool {
	if len(c.opts.StateFilter) == 0 {
		return true
	}
	for _, s := range c.opts.StateFilter {
		if s == state {
			return true
		}
	}
	return false
}

// Weight is the number of matching entities at the time it is asked, plus
// the title line.
func (c *EntityFilterCard) Weight() int {
	if c.err != nil {
		return 1
	}
	w := len(c.Matches())
	if c.opts.Title != "" {
		w++
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (c *EntityFilterCard) View(th *theme.Theme, width int) string {
	box, inner := boxWidth(th, width), contentWidth(th, width)
	if c.err != nil {
		return th.CardError.Width(box).Render(c.err.Error())
	}

	var lines []string
	if c.opts.Title != "" {
		lines = append(lines, th.CardTitle.Render(c.opts.Title))
	}
	matches := c.Matches()
	if len(matches) == 0 {
		lines = append(lines, th.Muted.Render("No matching entities"))
	}
	for _, entity := range matches {
		lines = append(lines, entityLine(th, entity.Name(), entity.State, inner))
	}
	return th.Card.Width(box).Render(strings.Join(lines, "\n"))
}
