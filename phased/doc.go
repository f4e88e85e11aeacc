// SPDX-License-Identifier: MIT

// Package phased provides per-phase value maps for multi-conductor
// electrical quantities.
//
// A Phased[T] maps a phase identifier (0 = neutral, 1..3 = active phases by
// convention) to a value of type T. Four realizations share the interface:
//
//	Stored          – directly owned map (NewStored, StoredFrom)
//	Evaluated       – bidirectional view over another Phased (NewEvaluated)
//	ReadOnly        – forward-only view; every mutation fails (NewReadOnly)
//	CachedReadOnly  – ReadOnly that memoises each distinct backing value
//	                  (NewCachedReadOnly)
//
// The set of variants is closed: Phased carries an unexported method, so
// only this package can implement it, and Variant() reports which one a
// value is.
//
// Views never copy their backing map. Keys, Len and Range always reflect the
// backing map at the time of the call, so a per-unit voltage view over a bus
// voltage map sees every later write to the voltages.
//
// Evaluated requires forward and inverse to be mutual inverses on the values
// actually stored (inverse(forward(x)) == x). This is not checked; violating
// it makes write-then-read round trips silently diverge.
//
// CachedReadOnly never invalidates its memo table. When the backing map
// replaces the value for a phase, the next read transforms (and caches) the
// new value, but objects handed out for the old value stay alive and are
// returned again should the old value reappear. Callers that key on the
// transformed object identity must account for this.
//
// Errors:
//
//	ErrMissingPhase – Get on a phase that holds no value.
//	ErrPhaseExists  – Add on a phase that already holds a value.
//	ErrReadOnly     – any mutation of a ReadOnly or CachedReadOnly view.
//
// None of the types are safe for concurrent mutation.
package phased
