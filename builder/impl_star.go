// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

const (
	methodStar   = "Star"
	minStarBuses = 2

	// CenterBusID is the fixed ID of the Star hub.
	CenterBusID = "Center"
)

// Star returns a Constructor for a hub bus "Center" feeding n-1 buses
// id(1)..id(n-1), one line each, in increasing order.
func Star(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minStarBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarBuses, ErrTooFewBuses)
		}

		hub, err := cfg.bus(net, CenterBusID)
		if err != nil {
			return fmt.Errorf("%s: %w", methodStar, err)
		}
		for i := 1; i < n; i++ {
			leaf, err := cfg.bus(net, cfg.idFn(i))
			if err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
			if _, err := cfg.line(net, hub, leaf, 0); err != nil {
				return fmt.Errorf("%s: line %s-%s: %w", methodStar, hub.ID(), leaf.ID(), err)
			}
		}

		return nil
	}
}
