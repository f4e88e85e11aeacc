// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

// BusesOnRouteToTarget returns the buses on the routes between from and
// to, both included, sorted by ID.
//
// The route set starts as {to}. Each branch from from is followed until it
// steps onto a bus already in the route set, at which point every bus of
// the branch except from joins the set; branches that dead-end contribute
// nothing. In a meshed network the outcome depends on branch order.
//
// from == to yields {from} without walking. ErrNoRoute is returned when no
// branch reaches the route set.
func BusesOnRouteToTarget(from, to *network.Bus, opts ...Option) ([]*network.Bus, error) {
	if err := check(from, to); err != nil {
		return nil, fmt.Errorf("trace: BusesOnRouteToTarget: %w", err)
	}
	if from == to {
		return []*network.Bus{from}, nil
	}

	w := newWalker(opts)
	r := &router{walker: w, start: from, route: NewBusSet(to)}
	if err := r.walk(from, NewBusSet(from), 0); err != nil {
		return nil, fmt.Errorf("trace: BusesOnRouteToTarget(%s, %s): %w", from.ID(), to.ID(), err)
	}
	if !r.reached {
		return nil, fmt.Errorf("trace: BusesOnRouteToTarget(%s, %s): %w", from.ID(), to.ID(), ErrNoRoute)
	}
	r.route.Add(from)

	w.opts.Logger.Debug("trace: route",
		"from", from.ID(), "to", to.ID(), "buses", len(r.route))

	return r.route.Sorted(), nil
}

// router accumulates the route set across branches.
type router struct {
	*walker
	start   *network.Bus
	route   BusSet
	reached bool
}

func (r *router) walk(cur *network.Bus, branch BusSet, depth int) error {
	// 1) Enforce depth and cancellation limits.
	if err := r.enter(cur, depth); err != nil {
		return err
	}
	// 2) Collect line neighbours not yet on this branch.
	next, err := r.onward(cur, branch, nil)
	if err != nil {
		return err
	}
	for _, nb := range next {
		// 3) Touching the route set: the whole branch joins it.
		if r.route.Has(nb) {
			r.absorb(branch)
			continue
		}
		// 4) Otherwise fork the branch and descend.
		child := fork(branch, len(next))
		child.Add(nb)
		if err := r.walk(nb, child, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// absorb adds the branch, less the start bus, to the route.
func (r *router) absorb(branch BusSet) {
	r.reached = true
	// The start bus joins once the walk ends.
	for h, b := range branch {
		if b != r.start {
			r.route[h] = b
		}
	}
}
