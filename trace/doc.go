// SPDX-License-Identifier: MIT

// Package trace implements topology queries over the bus-to-bus graph of a
// network.Network.
//
// Two buses are adjacent when a Line joins them. Loads and generators never
// carry a trace. For each bus the neighbours are found by walking the lines
// attached on any phase (ascending phase, then wiring order) and taking the
// single other bus on each; a line with zero or several other buses aborts
// the trace with ErrLineEndpoints.
//
// Operations:
//
//   - BusesOnRouteToTarget(from, to)        buses lying on routes from→to.
//   - TraceWithoutCrossingBuses(from, ex)   buses reachable without entering ex.
//   - TraceFromWithCallback(from, ok, fn)   restricted DFS, fn per line crossed.
//   - DirectLengthBetweenBuses(from, to)    cumulative line length from→to.
//
// All four walk branch by branch. Each branch carries its own set of buses
// already visited on that branch; a bus with exactly one onward neighbour
// hands its set to the child, otherwise every child gets a copy. Cycles are
// broken by that per-branch set only, so the same bus can be reached along
// several independent branches and the work is exponential in the number of
// independent loops. Use WithMaxDepth or WithContext to bound it.
//
// In meshed networks BusesOnRouteToTarget is order dependent: a branch is
// absorbed once it touches a bus already known to be on the route, and that
// set grows as branches complete. The result is not "all buses on any simple
// path"; on a radial feeder the two coincide.
//
// Results are returned sorted by bus ID.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked at every bus.
//   - WithLogger(l)        slog logger for per-call debug records.
//   - WithMaxDepth(n)      fail with ErrDepthExceeded beyond n hops.
//
// The network must not be mutated during a trace.
package trace
