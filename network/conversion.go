// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/elecnet/phased"
)

// conversion carries the wiring helpers shared by loads and generators,
// the elements that convert power at a single bus.
type conversion struct {
	element
}

// ConnectTo ties element phase p to phase busPhase of bus.
func (c *conversion) ConnectTo(p Phase, bus *Bus, busPhase Phase) error {
	ee := &c.element
	eb, err := resolve(bus)
	if err != nil {
		return fmt.Errorf("network: %s.ConnectTo: %w", ee, err)
	}
	if ee.net != eb.net {
		return fmt.Errorf("network: %s.ConnectTo(%s): %w", ee, eb, ErrForeignElement)
	}
	connect(ee, p, eb, busPhase)

	return nil
}

// ConnectWye wires the element in wye (star) to bus: each phase p is tied
// to bus phase p and to bus neutral. With no phases it wires 1, 2, 3.
func (c *conversion) ConnectWye(bus *Bus, phases ...Phase) error {
	if len(phases) == 0 {
		phases = phased.ThreePhase()
	}

	return c.ConnectWyeMapped(bus, phases, phases)
}

// ConnectWyeMapped wires element phase elemPhases[i] to bus phase
// busPhases[i] and to bus neutral. Lists of different length fail with
// ErrPhaseCountMismatch before anything is wired.
func (c *conversion) ConnectWyeMapped(bus *Bus, elemPhases, busPhases []Phase) error {
	if len(elemPhases) != len(busPhases) {
		return fmt.Errorf("network: %s.ConnectWye: %d element vs %d bus phases: %w",
			&c.element, len(elemPhases), len(busPhases), ErrPhaseCountMismatch)
	}
	for i, p := range elemPhases {
		if err := c.ConnectTo(p, bus, busPhases[i]); err != nil {
			return err
		}
		if busPhases[i] == phased.Neutral {
			continue
		}
		if err := c.ConnectTo(p, bus, phased.Neutral); err != nil {
			return err
		}
	}

	return nil
}

// ConnectDelta wires the element in delta to bus: element phase phases[i]
// is tied between bus phases phases[i] and phases[(i+1) % n]. With no
// phases it wires 1, 2, 3. A single phase fails with ErrPhaseCountMismatch.
func (c *conversion) ConnectDelta(bus *Bus, phases ...Phase) error {
	if len(phases) == 0 {
		phases = phased.ThreePhase()
	}

	return c.ConnectDeltaMapped(bus, phases, phases)
}

// ConnectDeltaMapped ties element phase elemPhases[i] between bus phases
// busPhases[i] and busPhases[(i+1) % n]. The lists must have equal length
// of at least two.
func (c *conversion) ConnectDeltaMapped(bus *Bus, elemPhases, busPhases []Phase) error {
	if len(elemPhases) != len(busPhases) || len(busPhases) < 2 {
		return fmt.Errorf("network: %s.ConnectDelta: %d element vs %d bus phases: %w",
			&c.element, len(elemPhases), len(busPhases), ErrPhaseCountMismatch)
	}
	n := len(busPhases)
	for i, p := range elemPhases {
		if err := c.ConnectTo(p, bus, busPhases[i]); err != nil {
			return err
		}
		if err := c.ConnectTo(p, bus, busPhases[(i+1)%n]); err != nil {
			return err
		}
	}

	return nil
}

// Bus returns the single bus the element is attached to, or
// ErrConversionBus if it is attached to none or several.
func (c *conversion) Bus() (*Bus, error) {
	buses := ConnectedOfKind(c.self(), KindBus)
	if len(buses) != 1 {
		return nil, fmt.Errorf("network: %s attached to %d buses: %w", &c.element, len(buses), ErrConversionBus)
	}

	return buses[0].(*Bus), nil
}

func (c *conversion) self() Element { return c.net.elements[c.handle] }

// Load absorbs power at one bus.
type Load struct {
	conversion

	// KVA holds the per-phase complex power drawn, in kVA.
	KVA *phased.Stored[complex128]
}

func (l *Load) base() *element {
	if l == nil {
		return nil
	}

	return &l.element
}

// TotalKVA returns the sum of the per-phase kVA.
func (l *Load) TotalKVA() complex128 { return phased.Sum(l.KVA) }

// SetTotalKVA sets the demand of a single-phase load. Multi-phase loads
// fail with ErrMultiPhase; set their phases through KVA instead.
func (l *Load) SetTotalKVA(v complex128) error {
	keys := l.KVA.Keys()
	if len(keys) != 1 {
		return fmt.Errorf("network: Load(%s).SetTotalKVA on %d phases: %w", l.ID(), len(keys), ErrMultiPhase)
	}

	return l.KVA.Set(keys[0], v)
}

// Generator injects power at one bus.
type Generator struct {
	conversion

	// Generation holds the per-phase complex power injected, in kVA.
	Generation *phased.Stored[complex128]
}

func (g *Generator) base() *element {
	if g == nil {
		return nil
	}

	return &g.element
}

// TotalGeneration returns the sum of the per-phase generation.
func (g *Generator) TotalGeneration() complex128 { return phased.Sum(g.Generation) }
