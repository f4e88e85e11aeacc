// SPDX-License-Identifier: MIT

// Package description reads and writes YAML descriptions of a feeder and
// turns them into network models.
//
// A Description lists buses with their solved phase voltages, lines with
// their bus-phase wiring, loads and generators with per-phase kVA and a
// wiring style, the source bus and the aggregate losses:
//
//	name: ieee13
//	source: RG60
//	losses_kva: {p: 110.544, q: 322.316}
//	buses:
//	  - id: "684"
//	    base_kv: 4.16
//	    voltages: [{phase: 1, kv: 2.3716, deg: -5.3}, {phase: 3, kv: 2.3464, deg: 116}]
//	lines:
//	  - {id: "684611", length: 300, bus1: "684", bus2: "611", phases: [3]}
//	loads:
//	  - id: "611"
//	    bus: "611"
//	    phases: [{phase: 3, p: 170, q: 80}]
//
// Decode validates struct tags with go-playground/validator and then checks
// references (ErrUnknownBus, ErrDuplicateID). Build wires a fresh network
// on every call; Describe goes the other way.
package description
