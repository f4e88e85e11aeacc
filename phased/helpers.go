// SPDX-License-Identifier: MIT

package phased

// Sum adds the values of a complex-valued Phased, e.g. the per-phase kVA of
// a load. An empty map sums to zero.
func Sum(p Phased[complex128]) complex128 {
	var total complex128
	p.Range(func(_ Phase, v complex128) bool {
		total += v
		return true
	})

	return total
}

// Equal reports whether a and b hold the same phases with equal values.
func Equal[T comparable](a, b Phased[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	equal := true
	a.Range(func(p Phase, v T) bool {
		w, ok := b.Lookup(p)
		equal = ok && v == w
		return equal
	})

	return equal
}
