// SPDX-License-Identifier: MIT

// Package builder assembles network.Model fixtures from composable
// topology constructors.
//
// One orchestrator, BuildNetwork(opts, cons...), creates a network, resolves
// the options and runs the constructors in order against it. Constructors
// share buses by ID, so Radial(4) followed by Mesh(Edge{From: "3", To: "0"})
// closes the chain into a loop.
//
// Constructors:
//
//   - Radial(n)        chain 0-1-...-(n-1), n ≥ 2.
//   - Ring(n)          closed loop of n buses, n ≥ 3.
//   - Star(n)          hub "Center" feeding n-1 buses, n ≥ 2.
//   - Grid(rows, cols) 4-neighbour grid with bus IDs "r,c".
//   - Mesh(edges...)   explicit bus pairs with optional lengths.
//   - IEEE13()         the IEEE 13-bus test feeder with solved voltages,
//     line lengths and spot loads.
//
// Options:
//
//   - WithIDScheme(fn)       bus IDs from index (DefaultIDFn, SymbolIDFn, ...).
//   - WithLineLength(fn)     line length in metres per line (LengthFn).
//   - WithSeed / WithRand    RNG for random LengthFns.
//   - WithPhases(ps...)      phases each synthetic line is wired on.
//   - WithBaseVoltage(v)     base voltage of new buses in volts.
//   - WithSource(id)         source bus of the model (default: first bus).
//   - WithLosses(kva)        aggregate losses recorded on the model.
//
// Options panic on meaningless input; constructors return errors wrapping
// the sentinels in errors.go. Builds are deterministic for fixed options.
package builder
