package store

import "sync"

// Store holds the current State for concurrent readers and writers.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New creates a Store starting from initial.
func New(initial State) *Store {
	return &Store{state: initial}
}

// Snapshot returns the current State. Reducers never mutate shared slices, so
// the snapshot stays valid after later updates.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies fn to the current State atomically. When fn returns an error
// the State is left as it was.
func (s *Store) Update(fn func(State) (State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}
