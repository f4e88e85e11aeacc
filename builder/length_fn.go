// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// LengthFn produces a line length in metres from an optional RNG. It must
// be deterministic for a given RNG state.
type LengthFn func(rng *rand.Rand) float64

// ConstantLength always yields metres. Panics if metres <= 0.
func ConstantLength(metres float64) LengthFn {
	if metres <= 0 {
		panic(fmt.Sprintf("ConstantLength: metres must be > 0, got %g", metres))
	}

	return func(_ *rand.Rand) float64 { return metres }
}

// UniformLength samples uniformly from [min, max). Without an RNG it yields
// the midpoint. Panics unless 0 < min <= max.
func UniformLength(min, max float64) LengthFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformLength: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return (min + max) / 2
		}
		return min + rng.Float64()*(max-min)
	}
}

// SequenceLength cycles through metres, one value per line. Panics when
// empty or when a value is not positive.
func SequenceLength(metres ...float64) LengthFn {
	if len(metres) == 0 {
		panic("SequenceLength: no lengths")
	}
	for _, m := range metres {
		if m <= 0 {
			panic(fmt.Sprintf("SequenceLength: lengths must be > 0, got %g", m))
		}
	}
	i := 0

	return func(_ *rand.Rand) float64 {
		m := metres[i%len(metres)]
		i++
		return m
	}
}
