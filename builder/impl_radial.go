// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

const (
	methodRadial   = "Radial"
	minRadialBuses = 2
)

// Radial returns a Constructor for a chain feeder of n buses,
// id(0)-id(1)-...-id(n-1), with lines emitted in increasing order.
func Radial(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minRadialBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRadial, n, minRadialBuses, ErrTooFewBuses)
		}

		prev, err := cfg.bus(net, cfg.idFn(0))
		if err != nil {
			return fmt.Errorf("%s: %w", methodRadial, err)
		}
		for i := 1; i < n; i++ {
			cur, err := cfg.bus(net, cfg.idFn(i))
			if err != nil {
				return fmt.Errorf("%s: %w", methodRadial, err)
			}
			if _, err := cfg.line(net, prev, cur, 0); err != nil {
				return fmt.Errorf("%s: line %s-%s: %w", methodRadial, prev.ID(), cur.ID(), err)
			}
			prev = cur
		}

		return nil
	}
}
