// SPDX-License-Identifier: MIT

package phased

import "fmt"

// ReadOnlyEvaluated is a forward-only view over a backing Phased[F].
// Every mutation fails with ErrReadOnly.
type ReadOnlyEvaluated[F, T any] struct {
	base    Phased[F]
	forward func(F) T
	variant Variant
}

// NewReadOnly returns a read-only view of base that applies forward on read.
// It panics if forward or base is nil.
func NewReadOnly[F, T any](forward func(F) T, base Phased[F]) *ReadOnlyEvaluated[F, T] {
	if forward == nil || base == nil {
		panic("phased: NewReadOnly with nil argument")
	}

	return &ReadOnlyEvaluated[F, T]{base: base, forward: forward, variant: VariantReadOnly}
}

// NewCachedReadOnly returns a read-only view of base that memoises forward
// per distinct backing value. Repeated reads of an unchanged phase return
// the identical transformed value, which matters when T is a pointer to a
// view whose identity callers compare.
//
// The memo table is never invalidated; see the package documentation.
func NewCachedReadOnly[F comparable, T any](forward func(F) T, base Phased[F]) *ReadOnlyEvaluated[F, T] {
	if forward == nil || base == nil {
		panic("phased: NewCachedReadOnly with nil argument")
	}
	memo := make(map[F]T)
	cached := func(v F) T {
		if out, ok := memo[v]; ok {
			return out
		}
		out := forward(v)
		memo[v] = out

		return out
	}

	return &ReadOnlyEvaluated[F, T]{base: base, forward: cached, variant: VariantCachedReadOnly}
}

// Get returns forward(base[p]) or ErrMissingPhase.
func (r *ReadOnlyEvaluated[F, T]) Get(p Phase) (T, error) {
	v, ok := r.base.Lookup(p)
	if !ok {
		var zero T
		return zero, fmt.Errorf("phased: Get(%d): %w", p, ErrMissingPhase)
	}

	return r.forward(v), nil
}

// Lookup returns forward(base[p]) and whether p was present.
func (r *ReadOnlyEvaluated[F, T]) Lookup(p Phase) (T, bool) {
	v, ok := r.base.Lookup(p)
	if !ok {
		var zero T
		return zero, false
	}

	return r.forward(v), true
}

// Set always fails with ErrReadOnly.
func (r *ReadOnlyEvaluated[F, T]) Set(p Phase, _ T) error {
	return fmt.Errorf("phased: Set(%d): %w", p, ErrReadOnly)
}

// Add always fails with ErrReadOnly.
func (r *ReadOnlyEvaluated[F, T]) Add(p Phase, _ T) error {
	return fmt.Errorf("phased: Add(%d): %w", p, ErrReadOnly)
}

// Remove always fails with ErrReadOnly.
func (r *ReadOnlyEvaluated[F, T]) Remove(p Phase) (bool, error) {
	return false, fmt.Errorf("phased: Remove(%d): %w", p, ErrReadOnly)
}

// Clear always fails with ErrReadOnly.
func (r *ReadOnlyEvaluated[F, T]) Clear() error {
	return fmt.Errorf("phased: Clear: %w", ErrReadOnly)
}

// Has reports whether the backing map holds phase p.
func (r *ReadOnlyEvaluated[F, T]) Has(p Phase) bool { return r.base.Has(p) }

// Keys returns the backing map's phases.
func (r *ReadOnlyEvaluated[F, T]) Keys() []Phase { return r.base.Keys() }

// Values returns the transformed values in ascending phase order.
func (r *ReadOnlyEvaluated[F, T]) Values() []T { return mapValues(r.base, r.forward) }

// Len returns the backing map's length.
func (r *ReadOnlyEvaluated[F, T]) Len() int { return r.base.Len() }

// Range iterates the backing map, transforming each value.
func (r *ReadOnlyEvaluated[F, T]) Range(fn func(p Phase, v T) bool) {
	r.base.Range(func(p Phase, v F) bool { return fn(p, r.forward(v)) })
}

// ReadOnly is always true.
func (r *ReadOnlyEvaluated[F, T]) ReadOnly() bool { return true }

// Variant returns VariantReadOnly or VariantCachedReadOnly.
func (r *ReadOnlyEvaluated[F, T]) Variant() Variant { return r.variant }

func (r *ReadOnlyEvaluated[F, T]) sealed() {}
