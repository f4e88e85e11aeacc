// SPDX-License-Identifier: MIT

// Package simulator is the boundary between the network core and whatever
// produces solved networks.
//
// A Simulator loads a network description, accepts text commands that
// modify it, and hands out a fresh network.Model each time it is asked.
// The core never solves power flow; Static serves the values stored in a
// description and applies edits to them, which is enough to drive tracing
// and experiments without an external solver.
//
// A Controller runs one pass: prepare the network (optionally cached),
// record a baseline through a ResultsTransform, issue the commands of an
// Experimentor, fetch the modified model, and let the transform finish the
// results:
//
//	ctrl, err := simulator.NewController(simulator.NewStatic(),
//		simulator.WithNetworkPath("feeder.yaml"),
//		simulator.WithExperimentor(simulator.LoadScaling(1.1)),
//		simulator.WithTransform(&simulator.DifferenceTransform{}),
//	)
//	if err != nil { ... }
//	if err := ctrl.Execute(ctx); err != nil { ... }
//	m := ctrl.Network()
//
// Commands understood by Static:
//
//	scale-load <id|*> <factor>
//	set-load <id> <kW> <kvar>
//	set-voltage <bus> <phase> <kV> <deg>
package simulator
