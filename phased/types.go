// SPDX-License-Identifier: MIT

package phased

import (
	"errors"
	"sort"
)

// Sentinel errors for phased map operations.
var (
	// ErrMissingPhase indicates a read of a phase that holds no value.
	ErrMissingPhase = errors.New("phased: phase not present")

	// ErrPhaseExists indicates Add was called for a phase that already holds a value.
	ErrPhaseExists = errors.New("phased: phase already present")

	// ErrReadOnly indicates a mutation was attempted on a read-only view.
	ErrReadOnly = errors.New("phased: read-only view")
)

// Phase identifies one conductor of a connection.
type Phase = int

// Conventional phase identifiers. Other values are accepted everywhere.
const (
	Neutral Phase = 0
	PhaseA  Phase = 1
	PhaseB  Phase = 2
	PhaseC  Phase = 3
)

// ThreePhase returns the conventional active phases 1, 2, 3.
func ThreePhase() []Phase { return []Phase{PhaseA, PhaseB, PhaseC} }

// Variant tags the concrete realization behind a Phased value.
type Variant uint8

const (
	VariantStored Variant = iota
	VariantEvaluated
	VariantReadOnly
	VariantCachedReadOnly
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case VariantStored:
		return "stored"
	case VariantEvaluated:
		return "evaluated"
	case VariantReadOnly:
		return "read-only"
	case VariantCachedReadOnly:
		return "cached-read-only"
	default:
		return "unknown"
	}
}

// Phased maps phase identifiers to values of type T.
//
// Keys and Values are returned in ascending phase order so that callers
// iterating a Phased get a deterministic sequence.
type Phased[T any] interface {
	// Get returns the value for phase p, or ErrMissingPhase.
	Get(p Phase) (T, error)

	// Lookup returns the value for phase p and whether it was present.
	Lookup(p Phase) (T, bool)

	// Set stores v for phase p, replacing any existing value.
	Set(p Phase, v T) error

	// Add stores v for phase p; ErrPhaseExists if p is already present.
	Add(p Phase, v T) error

	// Remove deletes phase p and reports whether it was present.
	Remove(p Phase) (bool, error)

	// Clear removes every phase.
	Clear() error

	// Has reports whether phase p holds a value.
	Has(p Phase) bool

	// Keys returns the populated phases in ascending order.
	Keys() []Phase

	// Values returns the values in ascending phase order.
	Values() []T

	// Len returns the number of populated phases.
	Len() int

	// Range calls fn for each phase in ascending order until fn returns false.
	Range(fn func(p Phase, v T) bool)

	// ReadOnly reports whether every mutation fails with ErrReadOnly.
	ReadOnly() bool

	// Variant reports the concrete realization.
	Variant() Variant

	sealed()
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[T any](m map[Phase]T) []Phase {
	keys := make([]Phase, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
