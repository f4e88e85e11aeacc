// SPDX-License-Identifier: MIT

package phased

import "fmt"

// Evaluated is a bidirectional view over a backing Phased[F].
//
// Reads apply forward to the backing value; writes apply inverse and store
// the result in the backing map. forward and inverse must be mutual
// inverses for the stored values, see the package documentation.
type Evaluated[F, T any] struct {
	base    Phased[F]
	forward func(F) T
	inverse func(T) F
}

// NewEvaluated returns a bidirectional view of base.
// It panics if any argument is nil, since such a view could never be used.
func NewEvaluated[F, T any](forward func(F) T, inverse func(T) F, base Phased[F]) *Evaluated[F, T] {
	if forward == nil || inverse == nil || base == nil {
		panic("phased: NewEvaluated with nil argument")
	}

	return &Evaluated[F, T]{base: base, forward: forward, inverse: inverse}
}

// Get returns forward(base[p]) or ErrMissingPhase.
func (e *Evaluated[F, T]) Get(p Phase) (T, error) {
	v, ok := e.base.Lookup(p)
	if !ok {
		var zero T
		return zero, fmt.Errorf("phased: Get(%d): %w", p, ErrMissingPhase)
	}

	return e.forward(v), nil
}

// Lookup returns forward(base[p]) and whether p was present.
func (e *Evaluated[F, T]) Lookup(p Phase) (T, bool) {
	v, ok := e.base.Lookup(p)
	if !ok {
		var zero T
		return zero, false
	}

	return e.forward(v), true
}

// Set writes inverse(v) through to the backing map.
func (e *Evaluated[F, T]) Set(p Phase, v T) error {
	return e.base.Set(p, e.inverse(v))
}

// Add writes inverse(v) through to the backing map unless p is present.
func (e *Evaluated[F, T]) Add(p Phase, v T) error {
	return e.base.Add(p, e.inverse(v))
}

// Remove deletes phase p from the backing map.
func (e *Evaluated[F, T]) Remove(p Phase) (bool, error) { return e.base.Remove(p) }

// Clear clears the backing map.
func (e *Evaluated[F, T]) Clear() error { return e.base.Clear() }

// Has reports whether the backing map holds phase p.
func (e *Evaluated[F, T]) Has(p Phase) bool { return e.base.Has(p) }

// Keys returns the backing map's phases.
func (e *Evaluated[F, T]) Keys() []Phase { return e.base.Keys() }

// Values returns the transformed values in ascending phase order.
func (e *Evaluated[F, T]) Values() []T { return mapValues(e.base, e.forward) }

// Len returns the backing map's length.
func (e *Evaluated[F, T]) Len() int { return e.base.Len() }

// Range iterates the backing map, transforming each value.
func (e *Evaluated[F, T]) Range(fn func(p Phase, v T) bool) {
	e.base.Range(func(p Phase, v F) bool { return fn(p, e.forward(v)) })
}

// ReadOnly reports whether the backing map is read-only.
func (e *Evaluated[F, T]) ReadOnly() bool { return e.base.ReadOnly() }

// Variant returns VariantEvaluated.
func (e *Evaluated[F, T]) Variant() Variant { return VariantEvaluated }

func (e *Evaluated[F, T]) sealed() {}

// mapValues collects fn(v) over base in ascending phase order.
func mapValues[F, T any](base Phased[F], fn func(F) T) []T {
	out := make([]T, 0, base.Len())
	base.Range(func(_ Phase, v F) bool {
		out = append(out, fn(v))
		return true
	})

	return out
}
