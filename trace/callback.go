// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

// TraceFromWithCallback walks depth-first from from, entering only buses in
// allowed, and calls visit for every line crossed, in discovery order and
// before descending. Parallel lines to the same bus are each crossed.
// from itself need not be in allowed.
func TraceFromWithCallback(from *network.Bus, allowed []*network.Bus, visit Visit, opts ...Option) error {
	if err := check(from, allowed...); err != nil {
		return fmt.Errorf("trace: TraceFromWithCallback: %w", err)
	}
	if visit == nil {
		return fmt.Errorf("trace: TraceFromWithCallback: %w", ErrNilVisit)
	}

	w := newWalker(opts)
	ok := NewBusSet(allowed...)
	crossed := 0

	var walk func(cur *network.Bus, branch BusSet, depth int) error
	walk = func(cur *network.Bus, branch BusSet, depth int) error {
		// 1) Enforce depth and cancellation limits.
		if err := w.enter(cur, depth); err != nil {
			return err
		}
		// 2) Keep line hops into allowed buses not yet on this branch.
		hs, err := w.lines(cur)
		if err != nil {
			return err
		}
		next := make([]hop, 0, len(hs))
		for _, h := range hs {
			if !branch.Has(h.bus) && ok.Has(h.bus) {
				next = append(next, h)
			}
		}
		// 3) Report each crossing before descending through it.
		for _, h := range next {
			crossed++
			if err := visit(cur, h.line, h.bus); err != nil {
				return fmt.Errorf("trace: visit %s -> %s via %s: %w", cur.ID(), h.bus.ID(), h.line.ID(), err)
			}
			child := fork(branch, len(next))
			child.Add(h.bus)
			if err := walk(h.bus, child, depth+1); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(from, NewBusSet(from), 0); err != nil {
		return fmt.Errorf("trace: TraceFromWithCallback(%s): %w", from.ID(), err)
	}
	w.opts.Logger.Debug("trace: callback", "from", from.ID(), "allowed", len(ok), "lines", crossed)

	return nil
}

// DirectLengthBetweenBuses returns the line length in metres between from
// and to along the route found by BusesOnRouteToTarget. Lengths accumulate
// outward from to; in a mesh the last branch to reach from wins.
// from == to yields 0.
func DirectLengthBetweenBuses(from, to *network.Bus, opts ...Option) (float64, error) {
	if err := check(from, to); err != nil {
		return 0, fmt.Errorf("trace: DirectLengthBetweenBuses: %w", err)
	}
	if from == to {
		return 0, nil
	}

	// 1) Restrict the walk to the route buses.
	route, err := BusesOnRouteToTarget(from, to, opts...)
	if err != nil {
		return 0, err
	}

	// 2) Accumulate lengths outward from to.
	lengths := map[network.Handle]float64{to.Handle(): 0}
	accumulate := func(cur *network.Bus, line *network.Line, next *network.Bus) error {
		lengths[next.Handle()] = lengths[cur.Handle()] + line.Length
		return nil
	}
	if err := TraceFromWithCallback(to, route, accumulate, opts...); err != nil {
		return 0, err
	}

	// 3) Read back the length recorded for from.
	d, ok := lengths[from.Handle()]
	if !ok {
		return 0, fmt.Errorf("trace: DirectLengthBetweenBuses(%s, %s): %w", from.ID(), to.ID(), ErrNoRoute)
	}

	return d, nil
}
