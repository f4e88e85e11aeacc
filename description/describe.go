// SPDX-License-Identifier: MIT

package description

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/phased"
)

// Describe returns the description of m. Buses, lines, loads and
// generators keep creation order. Wiring that is neither direct, wye nor
// delta fails with ErrUnrepresentable.
func Describe(m *network.Model) (*Description, error) {
	if m == nil || m.Network == nil || m.Source == nil {
		return nil, fmt.Errorf("description: Describe: %w", network.ErrNilElement)
	}

	d := &Description{
		Source: m.Source.ID(),
		Losses: KVA{P: real(m.LossesKVA), Q: imag(m.LossesKVA)},
	}
	for _, e := range m.Network.Elements() {
		if b, ok := e.(*network.Bus); ok {
			d.Buses = append(d.Buses, describeBus(b))
		}
	}

	for _, l := range m.Lines {
		ld, err := describeLine(l)
		if err != nil {
			return nil, fmt.Errorf("description: Describe: %w", err)
		}
		d.Lines = append(d.Lines, ld)
	}
	for _, l := range m.Loads {
		c, err := describeConversion(l, l.KVA)
		if err != nil {
			return nil, fmt.Errorf("description: Describe: %w", err)
		}
		d.Loads = append(d.Loads, c)
	}
	for _, g := range m.Generators {
		c, err := describeConversion(g, g.Generation)
		if err != nil {
			return nil, fmt.Errorf("description: Describe: %w", err)
		}
		d.Generators = append(d.Generators, c)
	}

	return d, nil
}

func describeBus(b *network.Bus) Bus {
	out := Bus{ID: b.ID(), BaseKV: b.BaseVoltage / 1000}
	b.Voltage.Range(func(p network.Phase, v complex128) bool {
		out.Voltages = append(out.Voltages, Voltage{
			Phase: p,
			KV:    cmplx.Abs(v) / 1000,
			Deg:   cmplx.Phase(v) * 180 / math.Pi,
		})
		return true
	})
	if b.Location != nil {
		loc := *b.Location
		out.Location = &loc
	}

	return out
}

// describeLine requires every line phase p to land on phase p of the first
// bus and on exactly one phase of the second.
func describeLine(l *network.Line) (Line, error) {
	b1, b2, err := l.Ends()
	if err != nil {
		return Line{}, err
	}
	out := Line{ID: l.ID(), Length: l.Length, Bus1: b1.ID(), Bus2: b2.ID()}
	mapped := false
	var bad error
	l.Connections().Range(func(p network.Phase, cs *network.ConnectionSet) bool {
		if cs.Len() == 0 {
			return true
		}
		on1, on2 := phasesOn(cs, b1), phasesOn(cs, b2)
		if len(on1) != 1 || on1[0] != p || len(on2) != 1 {
			bad = fmt.Errorf("line %s phase %d: %w", l.ID(), p, ErrUnrepresentable)
			return false
		}
		out.Phases = append(out.Phases, p)
		out.Phases2 = append(out.Phases2, on2[0])
		if on2[0] != p {
			mapped = true
		}
		return true
	})
	if bad != nil {
		return Line{}, bad
	}
	if !mapped {
		out.Phases2 = nil
	}

	return out, nil
}

type convertor interface {
	network.Element
	Bus() (*network.Bus, error)
}

func describeConversion(c convertor, kva *phased.Stored[complex128]) (Conversion, error) {
	bus, err := c.Bus()
	if err != nil {
		return Conversion{}, err
	}
	out := Conversion{ID: c.ID(), Bus: bus.ID()}
	phases := kva.Keys()
	kva.Range(func(p network.Phase, v complex128) bool {
		out.Phases = append(out.Phases, PhaseKVA{Phase: p, P: real(v), Q: imag(v)})
		return true
	})

	// bus phases each element phase lands on
	landed := make(map[network.Phase][]network.Phase)
	c.Connections().Range(func(p network.Phase, cs *network.ConnectionSet) bool {
		if on := phasesOn(cs, bus); len(on) > 0 {
			landed[p] = on
		}
		return true
	})
	if len(landed) != len(phases) {
		return Conversion{}, fmt.Errorf("%s %s: %d wired vs %d powered phases: %w",
			c.Kind(), c.ID(), len(landed), len(phases), ErrUnrepresentable)
	}

	switch {
	case matches(phases, landed, func(i int) []network.Phase { return []network.Phase{phases[i]} }):
		out.Wiring = WiringDirect
	case matches(phases, landed, func(i int) []network.Phase {
		if phases[i] == phased.Neutral {
			return []network.Phase{phased.Neutral}
		}
		return []network.Phase{phased.Neutral, phases[i]}
	}):
		out.Wiring = WiringWye
	case len(phases) >= 2 && matches(phases, landed, func(i int) []network.Phase {
		pair := []network.Phase{phases[i], phases[(i+1)%len(phases)]}
		slices.Sort(pair)
		return pair
	}):
		out.Wiring = WiringDelta
	default:
		return Conversion{}, fmt.Errorf("%s %s: %w", c.Kind(), c.ID(), ErrUnrepresentable)
	}
	if out.Wiring == WiringDirect {
		out.Wiring = ""
	}

	return out, nil
}

// phasesOn returns the sorted distinct phases of bus that cs lands on.
func phasesOn(cs *network.ConnectionSet, bus *network.Bus) []network.Phase {
	var out []network.Phase
	for _, c := range cs.All() {
		if c.Target == bus.Handle() && !slices.Contains(out, c.Phase) {
			out = append(out, c.Phase)
		}
	}
	slices.Sort(out)

	return out
}

func matches(phases []network.Phase, landed map[network.Phase][]network.Phase, want func(i int) []network.Phase) bool {
	for i, p := range phases {
		if !slices.Equal(landed[p], want(i)) {
			return false
		}
	}

	return true
}
