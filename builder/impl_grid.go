// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c", independent of the ID scheme
)

// Grid returns a Constructor for a rows×cols meshed grid. Buses are added in
// row-major order with IDs "r,c"; for each bus the line to the right
// neighbour is emitted before the line to the one below. A 1×1 grid is a
// single bus.
func Grid(rows, cols int) Constructor {
	return func(net *network.Network, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewBuses)
		}

		cells := make([][]*network.Bus, rows)
		for r := range cells {
			cells[r] = make([]*network.Bus, cols)
			for c := range cells[r] {
				b, err := cfg.bus(net, fmt.Sprintf(gridIDFmt, r, c))
				if err != nil {
					return fmt.Errorf("%s: %w", methodGrid, err)
				}
				cells[r][c] = b
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r][c]
				if c+1 < cols {
					if _, err := cfg.line(net, u, cells[r][c+1], 0); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
				if r+1 < rows {
					if _, err := cfg.line(net, u, cells[r+1][c], 0); err != nil {
						return fmt.Errorf("%s: %w", methodGrid, err)
					}
				}
			}
		}

		return nil
	}
}
