// Package memstore provides the in-memory collection backing every
// repository. Each Store exclusively owns its slice; all operations are
// whole-operation atomic under a per-collection mutex. Reads hand out
// shallow copies of the backing slice: top-level fields are safe to
// overwrite, but reference fields (nested slices, pointers) still alias
// stored data and must not be mutated in place.
package memstore

import "sync"

// Store is an ordered in-memory collection of records keyed by unique id.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

// New creates an empty store. id extracts the unique key of a record.
func New[T any](id func(T) string) *Store[T] {
	return &Store[T]{id: id}
}

// Seed replaces the collection contents. Meant for construction-time mock
// data; later writes go through Insert/Replace/Update/Delete.
func (s *Store[T]) Seed(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]T(nil), items...)
}

// All returns a clone of the collection in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

// Find returns a clone of all records matching pred, in insertion order.
func (s *Store[T]) Find(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []T
	for _, it := range s.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

// Get returns the record with the given id. Absence is a normal outcome,
// reported through ok, never an error.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if s.id(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Insert appends a record to the collection.
func (s *Store[T]) Insert(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Replace swaps the record with the given id for item, keeping its
// position. Returns false if the id is absent.
func (s *Store[T]) Replace(id string, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if s.id(it) == id {
			s.items[i] = item
			return true
		}
	}
	return false
}

// Update applies fn to the record with the given id under the write lock.
// Returns the updated record and false if the id is absent.
func (s *Store[T]) Update(id string, fn func(*T)) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			fn(&s.items[i])
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Mutate runs fn over the whole collection under one write lock, so a
// read-modify-write sequence spanning multiple records is a single atomic
// step. fn may edit records in place; the slice it returns becomes the new
// collection contents.
func (s *Store[T]) Mutate(fn func(items []T) []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = fn(s.items)
}

// Delete removes the record with the given id. A second delete of the same
// id returns false, not a fault.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if s.id(it) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the current number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
