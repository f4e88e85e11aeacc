// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"sort"
)

// Model is one solved snapshot of a network as handed to consumers: the
// element arena plus typed collections, the source bus and total losses.
// A simulator produces a fresh Model on every run.
type Model struct {
	// Network is the arena that owns every element below.
	Network *Network

	// Buses indexes every bus by ID.
	Buses map[string]*Bus

	// Lines, Loads and Generators are in creation order.
	Lines      []*Line
	Loads      []*Load
	Generators []*Generator

	// Source is the bus feeding the network.
	Source *Bus

	// LossesKVA is the aggregate network loss.
	LossesKVA complex128

	bounds    Rect
	hasBounds bool
}

// NewModel collects the elements of net into a Model whose source is the
// bus sourceID.
func NewModel(net *Network, sourceID string, losses complex128) (*Model, error) {
	if net == nil {
		return nil, fmt.Errorf("network: NewModel: %w", ErrNilElement)
	}
	m := &Model{Network: net, Buses: make(map[string]*Bus), LossesKVA: losses}
	for _, e := range net.elements {
		switch x := e.(type) {
		case *Bus:
			m.Buses[x.ID()] = x
		case *Line:
			m.Lines = append(m.Lines, x)
		case *Load:
			m.Loads = append(m.Loads, x)
		case *Generator:
			m.Generators = append(m.Generators, x)
		}
	}
	src, ok := m.Buses[sourceID]
	if !ok {
		return nil, fmt.Errorf("network: NewModel: source %q: %w", sourceID, ErrUnknownBus)
	}
	m.Source = src
	m.UpdateBounds()

	return m, nil
}

// Bus returns the bus with the given ID or ErrUnknownBus.
func (m *Model) Bus(id string) (*Bus, error) {
	b, ok := m.Buses[id]
	if !ok {
		return nil, fmt.Errorf("network: bus %q: %w", id, ErrUnknownBus)
	}

	return b, nil
}

// BusIDs returns every bus ID in ascending order.
func (m *Model) BusIDs() []string {
	ids := make([]string, 0, len(m.Buses))
	for id := range m.Buses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Bounds returns the rectangle enclosing every located bus, as computed by
// the last UpdateBounds. ok is false when no bus has a location.
func (m *Model) Bounds() (r Rect, ok bool) { return m.bounds, m.hasBounds }

// UpdateBounds recomputes Bounds after bus locations change.
func (m *Model) UpdateBounds() {
	xs, ys := NewLimits(), NewLimits()
	for _, b := range m.Buses {
		if b.Location == nil {
			continue
		}
		xs.Observe(b.Location.X)
		ys.Observe(b.Location.Y)
	}
	if xs.Count == 0 {
		m.bounds, m.hasBounds = Rect{}, false
		return
	}
	m.bounds = Rect{X: xs.AutoMin, Y: ys.AutoMin, Width: xs.AutoMax - xs.AutoMin, Height: ys.AutoMax - ys.AutoMin}
	m.hasBounds = true
}

// Validate checks the topology invariants tracing relies on: every line
// joins exactly two distinct buses and every load or generator hangs off
// exactly one bus. All violations are reported together.
func (m *Model) Validate() error {
	var errs []error
	for _, l := range m.Lines {
		if _, _, err := l.Ends(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, l := range m.Loads {
		if _, err := l.Bus(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, g := range m.Generators {
		if _, err := g.Bus(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
