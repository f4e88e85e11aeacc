// Package elecnet is an in-memory model of electrical distribution
// networks: phase-indexed values, a phase-level connectivity graph of
// buses, lines, loads and generators, and topology traces over it.
//
// The module is organised bottom-up:
//
//	phased/       phase → value maps: stored, evaluated (two-way views) and
//	               read-only views, optionally cached
//	network/      elements, phase-level Connect/Disconnect, connectivity
//	               queries and the per-run Model
//	trace/        route, reach and distance traces restricted to lines
//	builder/      topology fixtures (radial, ring, star, grid, mesh, IEEE 13)
//	description/  YAML feeder descriptions: decode, validate, build, describe
//	simulator/    Simulator boundary, experiments, results transforms and
//	               the Controller that drives a run
//	cmd/gridtrace  command-line front end
//
// Quick ASCII example:
//
//	RG60 ──2000m── 632 ──667m── 670 ──1333m── 671
//	                │                          │
//	               633                        684 ── 652
//
//	trace.BusesOnRouteToTarget(652, RG60) visits 684, 671, 670, 632.
//
// The core stores whatever values a simulator writes; it never solves
// power flow.
package elecnet
