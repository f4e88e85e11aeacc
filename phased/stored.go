// SPDX-License-Identifier: MIT

package phased

import "fmt"

// Stored is a directly owned phase → value map.
// The zero value is not usable; construct with NewStored or StoredFrom.
type Stored[T any] struct {
	values map[Phase]T
}

// NewStored returns an empty Stored map.
func NewStored[T any]() *Stored[T] {
	return &Stored[T]{values: make(map[Phase]T)}
}

// StoredFrom returns a Stored map holding a copy of m.
// A nil m yields an empty map.
func StoredFrom[T any](m map[Phase]T) *Stored[T] {
	s := &Stored[T]{values: make(map[Phase]T, len(m))}
	for p, v := range m {
		s.values[p] = v
	}

	return s
}

// Uniform returns a Stored map holding v on each of phases.
func Uniform[T any](v T, phases ...Phase) *Stored[T] {
	s := &Stored[T]{values: make(map[Phase]T, len(phases))}
	for _, p := range phases {
		s.values[p] = v
	}

	return s
}

// Get returns the value for phase p, or ErrMissingPhase.
func (s *Stored[T]) Get(p Phase) (T, error) {
	v, ok := s.values[p]
	if !ok {
		var zero T
		return zero, fmt.Errorf("phased: Get(%d): %w", p, ErrMissingPhase)
	}

	return v, nil
}

// Lookup returns the value for phase p and whether it was present.
func (s *Stored[T]) Lookup(p Phase) (T, bool) {
	v, ok := s.values[p]
	return v, ok
}

// Set stores v for phase p. It never fails on a Stored map.
func (s *Stored[T]) Set(p Phase, v T) error {
	s.values[p] = v
	return nil
}

// Add stores v for phase p unless p is already present.
func (s *Stored[T]) Add(p Phase, v T) error {
	if _, ok := s.values[p]; ok {
		return fmt.Errorf("phased: Add(%d): %w", p, ErrPhaseExists)
	}
	s.values[p] = v

	return nil
}

// Remove deletes phase p and reports whether it was present.
func (s *Stored[T]) Remove(p Phase) (bool, error) {
	_, ok := s.values[p]
	delete(s.values, p)

	return ok, nil
}

// Clear removes every phase.
func (s *Stored[T]) Clear() error {
	clear(s.values)
	return nil
}

// Has reports whether phase p holds a value.
func (s *Stored[T]) Has(p Phase) bool {
	_, ok := s.values[p]
	return ok
}

// Keys returns the populated phases in ascending order.
func (s *Stored[T]) Keys() []Phase { return sortedKeys(s.values) }

// Values returns the values in ascending phase order.
func (s *Stored[T]) Values() []T {
	out := make([]T, 0, len(s.values))
	for _, p := range sortedKeys(s.values) {
		out = append(out, s.values[p])
	}

	return out
}

// Len returns the number of populated phases.
func (s *Stored[T]) Len() int { return len(s.values) }

// Range calls fn for each phase in ascending order until fn returns false.
func (s *Stored[T]) Range(fn func(p Phase, v T) bool) {
	for _, p := range sortedKeys(s.values) {
		if !fn(p, s.values[p]) {
			return
		}
	}
}

// ReadOnly is always false for a Stored map.
func (s *Stored[T]) ReadOnly() bool { return false }

// Variant returns VariantStored.
func (s *Stored[T]) Variant() Variant { return VariantStored }

// Map returns a copy of the underlying map.
func (s *Stored[T]) Map() map[Phase]T {
	out := make(map[Phase]T, len(s.values))
	for p, v := range s.values {
		out[p] = v
	}

	return out
}

func (s *Stored[T]) sealed() {}
