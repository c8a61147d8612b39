package store

import "sync"

// Subscriber observes applied transitions. Subscribers run synchronously on
// the dispatching goroutine and must not dispatch themselves.
type Subscriber func(prev, next State)

// Store owns the application state. Construct it with New and hand the
// pointer to every consumer; there is no ambient global instance.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []Subscriber
}

// New returns a store holding the given initial state.
func New(initial State) *Store {
	return &Store{state: initial}
}

// Dispatch applies an action through Reduce and notifies subscribers.
// Dispatches are serialized; the last one wins on conflicting writes.
// Calling Dispatch on a nil store is a programming error and panics.
func (s *Store) Dispatch(a Action) {
	if s == nil {
		panic("store: Dispatch called on uninitialized store")
	}
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(prev, next)
	}
}

// State returns a snapshot of the current state. Collections in the snapshot
// are never mutated by later dispatches.
func (s *Store) State() State {
	if s == nil {
		panic("store: State called on uninitialized store")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch.
func (s *Store) Subscribe(fn Subscriber) {
	if s == nil {
		panic("store: Subscribe called on uninitialized store")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
