package feed

import (
	"sync"

	"github.com/grovetools/masonry/pkg/appstate"
)

// Store folds events into successive state snapshots. It is safe for
// concurrent use so several feeds can share one store. Snapshots reach
// onChange in the order they were committed; onChange must not call Apply or
// Replace.
type Store struct {
	// notifyMu is held from commit through onChange.
	notifyMu sync.Mutex
	mu       sync.Mutex
	current  *appstate.State
	onChange func(*appstate.State)
}

// NewStore returns a store starting at initial. onChange, if set, receives
// every new snapshot.
func NewStore(initial *appstate.State, onChange func(*appstate.State)) *Store {
	if initial == nil {
		initial = appstate.New()
	}
	return &Store{current: initial, onChange: onChange}
}

// Current returns the latest snapshot.
func (s *Store) Current() *appstate.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Apply folds ev into a new snapshot and returns it.
func (s *Store) Apply(ev appstate.Event) *appstate.State {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	next := s.current.Apply(ev)
	s.current = next
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(next)
	}
	return next
}

// Replace swaps in a snapshot loaded from elsewhere, such as a re-read
// state file, and notifies like Apply.
func (s *Store) Replace(st *appstate.State) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.current = st
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange(st)
	}
}

// Handler returns a feed Handler that applies events to the store.
func (s *Store) Handler() Handler {
	return func(ev appstate.Event) { s.Apply(ev) }
}
