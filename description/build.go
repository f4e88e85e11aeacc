// SPDX-License-Identifier: MIT

package description

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/phased"
)

// Build validates d and wires a new network model from it.
func Build(d *Description) (*network.Model, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	net := network.New()
	for _, bd := range d.Buses {
		b, err := net.AddBus(bd.ID, bd.BaseKV*1000)
		if err != nil {
			return nil, fmt.Errorf("description: Build: %w", err)
		}
		for _, v := range bd.Voltages {
			_ = b.Voltage.Set(v.Phase, cmplx.Rect(v.KV*1000, v.Deg*math.Pi/180))
		}
		if bd.Location != nil {
			loc := *bd.Location
			b.Location = &loc
		}
	}

	for _, ld := range d.Lines {
		l, err := net.AddLine(ld.ID, ld.Length)
		if err != nil {
			return nil, fmt.Errorf("description: Build: %w", err)
		}
		b1, _ := net.Bus(ld.Bus1)
		b2, _ := net.Bus(ld.Bus2)
		phases2 := ld.Phases2
		if len(phases2) == 0 {
			phases2 = ld.Phases
		}
		if err := l.ConnectPhases(b1, ld.Phases, b2, phases2); err != nil {
			return nil, fmt.Errorf("description: Build: %w", err)
		}
	}

	for _, cd := range d.Loads {
		ld, err := net.AddLoadPhased(cd.ID, phaseKVA(cd.Phases))
		if err != nil {
			return nil, fmt.Errorf("description: Build: %w", err)
		}
		if err := wire(ld, net, cd); err != nil {
			return nil, fmt.Errorf("description: Build: load %s: %w", cd.ID, err)
		}
	}
	for _, cd := range d.Generators {
		g, err := net.AddGeneratorPhased(cd.ID, phaseKVA(cd.Phases))
		if err != nil {
			return nil, fmt.Errorf("description: Build: %w", err)
		}
		if err := wire(g, net, cd); err != nil {
			return nil, fmt.Errorf("description: Build: generator %s: %w", cd.ID, err)
		}
	}

	m, err := network.NewModel(net, d.Source, d.Losses.Complex())
	if err != nil {
		return nil, fmt.Errorf("description: Build: %w", err)
	}

	return m, nil
}

func phaseKVA(ps []PhaseKVA) *phased.Stored[complex128] {
	s := phased.NewStored[complex128]()
	for _, p := range ps {
		_ = s.Set(p.Phase, complex(p.P, p.Q))
	}

	return s
}

func phasesOf(ps []PhaseKVA) []network.Phase {
	out := make([]network.Phase, len(ps))
	for i, p := range ps {
		out[i] = p.Phase
	}

	return out
}

// wirer is the wiring surface shared by loads and generators.
type wirer interface {
	ConnectTo(p network.Phase, bus *network.Bus, busPhase network.Phase) error
	ConnectWye(bus *network.Bus, phases ...network.Phase) error
	ConnectDelta(bus *network.Bus, phases ...network.Phase) error
}

// wire attaches a load or generator to its bus in the described style.
func wire(w wirer, net *network.Network, cd Conversion) error {
	bus, _ := net.Bus(cd.Bus)
	phases := phasesOf(cd.Phases)
	switch cd.wiring() {
	case WiringWye:
		return w.ConnectWye(bus, phases...)
	case WiringDelta:
		return w.ConnectDelta(bus, phases...)
	default:
		for _, p := range phases {
			if err := w.ConnectTo(p, bus, p); err != nil {
				return err
			}
		}
		return nil
	}
}
