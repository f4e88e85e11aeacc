// SPDX-License-Identifier: MIT

package network

import "github.com/katalvlaran/elecnet/phased"

// Bus is a node where elements electrically meet.
type Bus struct {
	element

	// Voltage holds the per-phase complex voltage in volts, as written by
	// the simulator.
	Voltage *phased.Stored[complex128]

	// BaseVoltage is the nominal voltage in volts used for per-unit values.
	BaseVoltage float64

	// Location is the drawing position, if known.
	Location *Point

	// VoltagePU is a view of Voltage divided by BaseVoltage. Writing a
	// per-unit value stores value*BaseVoltage in Voltage. BaseVoltage is
	// read at access time.
	VoltagePU phased.Phased[complex128]
}

func newBus(baseVoltage float64) *Bus {
	b := &Bus{Voltage: phased.NewStored[complex128](), BaseVoltage: baseVoltage}
	b.VoltagePU = phased.NewEvaluated(
		func(v complex128) complex128 { return v / complex(b.BaseVoltage, 0) },
		func(pu complex128) complex128 { return pu * complex(b.BaseVoltage, 0) },
		b.Voltage,
	)

	return b
}

func (b *Bus) base() *element {
	if b == nil {
		return nil
	}

	return &b.element
}

// Lines returns the lines attached to b on any phase.
func (b *Bus) Lines() []*Line {
	var out []*Line
	for _, e := range ConnectedOfKind(b, KindLine) {
		out = append(out, e.(*Line))
	}

	return out
}
