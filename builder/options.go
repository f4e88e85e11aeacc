// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/elecnet/network"
)

// Option customizes a build. Option constructors panic on meaningless
// values; constructors themselves never panic.
type Option func(*config)

// WithIDScheme sets the bus ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithLineLength sets the length generator for synthetic lines. Panics on nil.
func WithLineLength(fn LengthFn) Option {
	if fn == nil {
		panic("builder: WithLineLength(nil)")
	}
	return func(c *config) {
		c.lengthFn = fn
	}
}

// WithRand provides the RNG handed to the LengthFn. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a new RNG for the LengthFn.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPhases sets the phases synthetic lines are wired on. Panics when
// empty. Neutral may be included.
func WithPhases(ps ...network.Phase) Option {
	if len(ps) == 0 {
		panic("builder: WithPhases()")
	}
	cp := append([]network.Phase(nil), ps...)
	return func(c *config) {
		c.phases = cp
	}
}

// WithBaseVoltage sets the base voltage of new buses, in volts. Panics if v <= 0.
func WithBaseVoltage(v float64) Option {
	if v <= 0 {
		panic("builder: WithBaseVoltage(v<=0)")
	}
	return func(c *config) {
		c.baseVoltage = v
	}
}

// WithSource names the source bus of the built model.
func WithSource(id string) Option {
	return func(c *config) {
		c.source = id
	}
}

// WithLosses records aggregate losses, in kVA, on the built model.
func WithLosses(kva complex128) Option {
	return func(c *config) {
		c.losses = kva
	}
}
