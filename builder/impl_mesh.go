// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

const methodMesh = "Mesh"

// Edge is one line of a Mesh: the two bus IDs and the length in metres.
// A non-positive Length takes the configured LengthFn.
type Edge struct {
	From, To string
	Length   float64
}

// Mesh returns a Constructor that adds one line per edge, in order, creating
// buses on first mention. The line ID is "From-To"; repeating a pair fails
// with network.ErrDuplicateID.
func Mesh(edges ...Edge) Constructor {
	return func(net *network.Network, cfg config) error {
		for i, e := range edges {
			if e.From == "" || e.To == "" || e.From == e.To {
				return fmt.Errorf("%s: edge %d (%q-%q): %w", methodMesh, i, e.From, e.To, ErrConstructFailed)
			}
		}
		for _, e := range edges {
			u, err := cfg.bus(net, e.From)
			if err != nil {
				return fmt.Errorf("%s: %w", methodMesh, err)
			}
			v, err := cfg.bus(net, e.To)
			if err != nil {
				return fmt.Errorf("%s: %w", methodMesh, err)
			}
			if _, err := cfg.line(net, u, v, e.Length); err != nil {
				return fmt.Errorf("%s: line %s-%s: %w", methodMesh, e.From, e.To, err)
			}
		}

		return nil
	}
}
