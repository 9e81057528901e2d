// Package cards holds the terminal renderers for dashboard cards.
package cards

import (
	"sync"

	"github.com/grovetools/masonry/pkg/view"
	"github.com/grovetools/masonry/tui/theme"
)

// Card is a view.Element that can draw itself in a terminal.
type Card interface {
	view.Element

	// View renders the card at the given outer width.
	View(th *theme.Theme, width int) string
}

// Factory creates a fresh card.
type Factory func() Card

// Registry maps renderer identifiers to card factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in renderers.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(view.BuiltinRendererID("entities"), func() Card { return &EntitiesCard{} })
	r.Register(view.BuiltinRendererID("entity-filter"), func() Card { return &EntityFilterCard{} })
	return r
}

// Register adds or replaces the factory for id.
func (r *Registry) Register(id string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = factory
}

// Has reports whether id has a renderer.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]
	return ok
}

// New creates a card for id. Unregistered ids get a placeholder that
// renders an error box.
func (r *Registry) New(id string) Card {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return &Placeholder{RendererID: id}
	}
	return factory()
}

// boxWidth is the lipgloss width of a card box drawn at an outer width.
// lipgloss draws the border outside it.
func boxWidth(th *theme.Theme, width int) int {
	return atLeastOne(width - th.Card.GetHorizontalBorderSize())
}

// contentWidth is the room left for text inside a card's border and padding.
func contentWidth(th *theme.Theme, width int) int {
	return atLeastOne(width - th.Card.GetHorizontalFrameSize())
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
