// Package appstate holds the application state snapshot shared by every
// mounted card: the entity table and the theme table.
package appstate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/grovetools/masonry/errors"
	"github.com/grovetools/masonry/tui/theme"
	"gopkg.in/yaml.v3"
)

// Entity is the current state of one tracked entity.
type Entity struct {
	EntityID    string                 `yaml:"entity_id" json:"entity_id"`
	State       string                 `yaml:"state" json:"state"`
	Attributes  map[string]interface{} `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	LastChanged time.Time              `yaml:"-" json:"last_changed,omitempty"`
}

// Domain returns the part of the entity id before the first dot.
func (e Entity) Domain() string {
	if i := strings.Index(e.EntityID, "."); i >= 0 {
		return e.EntityID[:i]
	}
	return ""
}

// Name returns the friendly_name attribute, falling back to the entity id.
func (e Entity) Name() string {
	if name, ok := e.Attributes["friendly_name"].(string); ok && name != "" {
		return name
	}
	return e.EntityID
}

// State is an immutable snapshot. Updates produce a new *State so holders can
// detect a change by comparing pointers.
type State struct {
	Entities     map[string]Entity
	Themes       *theme.Table
	DefaultTheme string
}

// New returns an empty snapshot with the built-in themes.
func New() *State {
	return &State{
		Entities: make(map[string]Entity),
		Themes:   theme.NewTable("", nil),
	}
}

// Entity returns the entity with the given id.
func (s *State) Entity(id string) (Entity, bool) {
	if s == nil {
		return Entity{}, false
	}
	e, ok := s.Entities[id]
	return e, ok
}

// EntityIDs returns every entity id in sorted order.
func (s *State) EntityIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.Entities))
	for id := range s.Entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Event reports that an entity changed. A nil NewState removes the entity.
type Event struct {
	EntityID string  `json:"entity_id"`
	NewState *Entity `json:"new_state"`
}

// Apply returns a new snapshot with the event folded in. The receiver is left
// untouched.
func (s *State) Apply(ev Event) *State {
	if s == nil {
		s = New()
	}
	next := &State{
		Entities:     make(map[string]Entity, len(s.Entities)+1),
		Themes:       s.Themes,
		DefaultTheme: s.DefaultTheme,
	}
	for id, e := range s.Entities {
		next.Entities[id] = e
	}

	id := ev.EntityID
	if id == "" && ev.NewState != nil {
		id = ev.NewState.EntityID
	}
	if id == "" {
		return next
	}

	if ev.NewState == nil {
		delete(next.Entities, id)
		return next
	}

	e := *ev.NewState
	e.EntityID = id
	if e.LastChanged.IsZero() {
		e.LastChanged = time.Now()
	}
	next.Entities[id] = e
	return next
}

// document is the on-disk form of a state file. YAML and JSON share it.
type document struct {
	DefaultTheme string                `yaml:"default_theme"`
	Themes       map[string]theme.Spec `yaml:"themes"`
	Entities     []entityDocument      `yaml:"entities"`
}

type entityDocument struct {
	EntityID    string                 `yaml:"entity_id"`
	State       string                 `yaml:"state"`
	Attributes  map[string]interface{} `yaml:"attributes"`
	LastChanged string                 `yaml:"last_changed"`
}

// Load reads a state snapshot from a YAML or JSON file.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.StateInvalid(path, err)
	}
	st, err := Parse(data)
	if err != nil {
		return nil, errors.StateInvalid(filepath.Clean(path), err)
	}
	return st, nil
}

// Parse decodes a state document. JSON is accepted as a subset of YAML.
func Parse(data []byte) (*State, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	st := &State{
		Entities:     make(map[string]Entity, len(doc.Entities)),
		Themes:       theme.NewTable(doc.DefaultTheme, doc.Themes),
		DefaultTheme: doc.DefaultTheme,
	}
	for _, ed := range doc.Entities {
		if ed.EntityID == "" {
			return nil, errors.New(errors.ErrCodeStateInvalid, "entity without entity_id")
		}
		e := Entity{
			EntityID:   ed.EntityID,
			State:      ed.State,
			Attributes: ed.Attributes,
		}
		if ed.LastChanged != "" {
			ts, err := time.Parse(time.RFC3339, ed.LastChanged)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrCodeStateInvalid, "invalid last_changed").
					WithDetail("entity_id", ed.EntityID)
			}
			e.LastChanged = ts
		}
		st.Entities[e.EntityID] = e
	}
	return st, nil
}
