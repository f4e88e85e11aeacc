// SPDX-License-Identifier: MIT

// Package network models a distribution network as a phase-aware
// connectivity graph.
//
// Every element (Bus, Line, Load, Generator) lives in the arena of the
// Network that created it and is addressed by a stable Handle. An element
// holds, per phase, a bucket of Connections; a Connection names a target
// element by Handle plus the target phase. Because connections refer to
// handles rather than pointers, the graph carries no ownership cycles and
// can be rebuilt, described and discarded as a unit.
//
// Wiring primitives:
//
//	Connect(a, pa, b, pb)            – symmetric and idempotent
//	ConnectBetween(e, p, b1, p1, b2, p2)
//	Disconnect(a, b)                 – severs every phase pair both ways
//	DisconnectPhase(a, pa, b, pb)    – severs one pair both ways
//	ConnectionExists(a, pa, b, pb)
//
// Higher-level helpers are methods on the concrete kinds: loads and
// generators expose ConnectTo, ConnectWye and ConnectDelta; lines expose
// Connect, Connect3Phase, Connect3PhaseN, ConnectPhases and ConnectBetween.
// Helpers taking two phase lists reject lists of different length with
// ErrPhaseCountMismatch before wiring anything.
//
// Queries:
//
//	ConnectedToAnyPhase(e)        – distinct elements on any phase
//	ConnectedOnAllActivePhases(e) – elements present in every phase bucket
//	ConnectedTo(e)                – elements on phase 1
//
// Query results are deterministic: buckets are visited in ascending phase
// order and connections in the order they were made.
//
// Phase identifiers are not range-checked, self-connections are allowed and
// a line is not forced to have exactly two bus endpoints while it is being
// wired. Model.Validate checks the finished topology at the construction
// boundary; tracing code relies on it.
//
// The graph is not safe for concurrent use. Build a Model completely, then
// treat it as read-only while it is shared.
package network
