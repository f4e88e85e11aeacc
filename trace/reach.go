// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

// TraceWithoutCrossingBuses returns every bus reachable from from through
// lines without entering a bus of exclude, sorted by ID. from is always
// part of the result, even when listed in exclude.
//
// Excluded buses are dropped from a bus's neighbours before the dead-end
// test, so a branch that can only continue into excluded buses ends there
// and its buses are kept.
func TraceWithoutCrossingBuses(from *network.Bus, exclude []*network.Bus, opts ...Option) ([]*network.Bus, error) {
	if err := check(from, exclude...); err != nil {
		return nil, fmt.Errorf("trace: TraceWithoutCrossingBuses: %w", err)
	}

	w := newWalker(opts)
	excluded := NewBusSet(exclude...)
	reached := NewBusSet()
	keep := func(b *network.Bus) bool { return !excluded.Has(b) }

	var walk func(cur *network.Bus, branch BusSet, depth int) error
	walk = func(cur *network.Bus, branch BusSet, depth int) error {
		// 1) Enforce depth and cancellation limits.
		if err := w.enter(cur, depth); err != nil {
			return err
		}
		// 2) Collect neighbours off the branch and outside exclude.
		next, err := w.onward(cur, branch, keep)
		if err != nil {
			return err
		}
		// 3) Dead end: merge the finished branch into the result.
		if len(next) == 0 {
			reached.Union(branch)
			return nil
		}
		// 4) Fork per neighbour and descend.
		for _, nb := range next {
			child := fork(branch, len(next))
			child.Add(nb)
			if err := walk(nb, child, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(from, NewBusSet(from), 0); err != nil {
		return nil, fmt.Errorf("trace: TraceWithoutCrossingBuses(%s): %w", from.ID(), err)
	}
	reached.Add(from)

	w.opts.Logger.Debug("trace: reach",
		"from", from.ID(), "excluded", len(excluded), "buses", len(reached))

	return reached.Sorted(), nil
}
