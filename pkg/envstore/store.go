// Package envstore reads and writes machine-scoped environment variables. The
// variable store is modeled as an explicit capability so tests can substitute
// an in-memory fake instead of mutating real host state.
package envstore

import "sync"

// Store is the capability used to read and write environment variables of the
// machine scope.
type Store interface {
	// Get returns the current value of the variable, or "" when unset.
	Get(name string) (string, error)

	// Set writes the variable.
	Set(name, value string) error
}

// MemoryStore is an in-memory Store used in tests and dry runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for name, or "" when unset.
func (s *MemoryStore) Get(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name], nil
}

// Set stores the value for name.
func (s *MemoryStore) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
	s.writes++
	return nil
}

// Writes returns the number of Set calls, letting tests assert idempotence.
func (s *MemoryStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
