// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

// Constructor adds a topology to net using the resolved configuration.
// Constructors validate parameters before touching net and reuse buses
// that already exist under the same ID.
type Constructor func(net *network.Network, cfg config) error

// BuildNetwork creates a network, applies cons in order and wraps the result
// in a Model. The source bus is the one named by WithSource, or the first
// bus created. Constructor errors are wrapped and returned immediately.
func BuildNetwork(opts []Option, cons ...Constructor) (*network.Model, error) {
	net := network.New()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return nil, fmt.Errorf("builder: BuildNetwork: %w", err)
		}
	}

	source := cfg.source
	if source == "" {
		for _, e := range net.Elements() {
			if e.Kind() == network.KindBus {
				source = e.ID()
				break
			}
		}
	}
	if source == "" {
		return nil, fmt.Errorf("builder: BuildNetwork: %w", ErrNoBuses)
	}

	m, err := network.NewModel(net, source, cfg.losses)
	if err != nil {
		return nil, fmt.Errorf("builder: BuildNetwork: %w", err)
	}

	return m, nil
}

// MustBuild is BuildNetwork for fixtures known to be valid; it panics on error.
func MustBuild(opts []Option, cons ...Constructor) *network.Model {
	m, err := BuildNetwork(opts, cons...)
	if err != nil {
		panic(err)
	}

	return m
}
