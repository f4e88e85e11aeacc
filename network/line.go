// SPDX-License-Identifier: MIT

package network

import "fmt"

// Line delivers power between two buses.
type Line struct {
	element

	// Length in metres.
	Length float64
}

func (l *Line) base() *element {
	if l == nil {
		return nil
	}

	return &l.element
}

// ConnectBetween ties line phase p to phase p1 of bus1 and phase p2 of bus2.
func (l *Line) ConnectBetween(p Phase, bus1 *Bus, p1 Phase, bus2 *Bus, p2 Phase) error {
	return ConnectBetween(l, p, bus1, p1, bus2, p2)
}

// ConnectPhases wires the line between bus1 and bus2 pairwise: line phase
// phases1[i] is tied to phases1[i] of bus1 and phases2[i] of bus2.
// Lists of different length fail with ErrPhaseCountMismatch and nothing
// is wired.
func (l *Line) ConnectPhases(bus1 *Bus, phases1 []Phase, bus2 *Bus, phases2 []Phase) error {
	if len(phases1) != len(phases2) {
		return fmt.Errorf("network: Line(%s).ConnectPhases: %d vs %d phases: %w",
			l.ID(), len(phases1), len(phases2), ErrPhaseCountMismatch)
	}
	for i, p := range phases1 {
		if err := ConnectBetween(l, p, bus1, p, bus2, phases2[i]); err != nil {
			return err
		}
	}

	return nil
}

// Connect wires the line between bus1 and bus2 on the same phases at both
// ends. With no phases it wires 0, 1, 2, 3 (three phases plus neutral).
func (l *Line) Connect(bus1, bus2 *Bus, phases ...Phase) error {
	if len(phases) == 0 {
		return l.Connect3PhaseN(bus1, bus2)
	}
	for _, p := range phases {
		if err := ConnectBetween(l, p, bus1, p, bus2, p); err != nil {
			return err
		}
	}

	return nil
}

// Connect3Phase wires phases 1, 2, 3.
func (l *Line) Connect3Phase(bus1, bus2 *Bus) error { return l.Connect(bus1, bus2, 1, 2, 3) }

// Connect3PhaseN wires phases 1, 2, 3 and neutral.
func (l *Line) Connect3PhaseN(bus1, bus2 *Bus) error { return l.Connect(bus1, bus2, 0, 1, 2, 3) }

// Buses returns the distinct buses attached to the line on any phase.
func (l *Line) Buses() []*Bus {
	var out []*Bus
	for _, e := range ConnectedOfKind(l, KindBus) {
		out = append(out, e.(*Bus))
	}

	return out
}

// Ends returns the two bus endpoints of the line, or ErrLineEndpoints if
// the line does not attach to exactly two distinct buses.
func (l *Line) Ends() (*Bus, *Bus, error) {
	buses := l.Buses()
	if len(buses) != 2 {
		return nil, nil, fmt.Errorf("network: Line(%s) has %d buses: %w", l.ID(), len(buses), ErrLineEndpoints)
	}

	return buses[0], buses[1], nil
}

// Opposite returns the single bus on the line other than from.
// A line with zero or several other buses fails with ErrLineEndpoints.
func (l *Line) Opposite(from *Bus) (*Bus, error) {
	var other *Bus
	count := 0
	for _, b := range l.Buses() {
		if b == from {
			continue
		}
		other = b
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("network: Line(%s) has %d buses besides %s: %w",
			l.ID(), count, from.ID(), ErrLineEndpoints)
	}

	return other, nil
}
