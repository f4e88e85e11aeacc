// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

const (
	methodRing   = "Ring"
	minRingBuses = 3
)

// Ring returns a Constructor for a closed loop of n buses: the Radial chain
// plus a closing line id(n-1)-id(0).
func Ring(n int) Constructor {
	return func(net *network.Network, cfg config) error {
		if n < minRingBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingBuses, ErrTooFewBuses)
		}
		if err := Radial(n)(net, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRing, err)
		}

		last, _ := net.Bus(cfg.idFn(n - 1))
		first, _ := net.Bus(cfg.idFn(0))
		if _, err := cfg.line(net, last, first, 0); err != nil {
			return fmt.Errorf("%s: closing line: %w", methodRing, err)
		}

		return nil
	}
}
