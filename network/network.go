// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/elecnet/phased"
)

// Network is the arena that owns every element of one network build.
// A new Network is produced for each simulator run; elements are never
// deleted individually.
type Network struct {
	id       uuid.UUID
	elements []Element
	byID     map[Kind]map[string]Handle
}

// New returns an empty network tagged with a fresh build ID.
func New() *Network {
	return &Network{
		id:   uuid.New(),
		byID: make(map[Kind]map[string]Handle),
	}
}

// ID returns the build identifier of this network.
func (n *Network) ID() uuid.UUID { return n.id }

// Len returns the number of elements in the arena.
func (n *Network) Len() int { return len(n.elements) }

// Element returns the element at handle h.
func (n *Network) Element(h Handle) (Element, error) {
	if h < 0 || int(h) >= len(n.elements) {
		return nil, fmt.Errorf("network: Element(%d): %w", h, ErrUnknownHandle)
	}

	return n.elements[h], nil
}

// Elements returns every element in handle order.
func (n *Network) Elements() []Element {
	out := make([]Element, len(n.elements))
	copy(out, n.elements)

	return out
}

// Lookup returns the element of kind k with identifier id.
func (n *Network) Lookup(k Kind, id string) (Element, bool) {
	h, ok := n.byID[k][id]
	if !ok {
		return nil, false
	}

	return n.elements[h], true
}

// Bus returns the bus with identifier id.
func (n *Network) Bus(id string) (*Bus, bool) {
	e, ok := n.Lookup(KindBus, id)
	if !ok {
		return nil, false
	}

	return e.(*Bus), true
}

// Resolve returns the element a connection points at.
func (n *Network) Resolve(c Connection) (Element, error) { return n.Element(c.Target) }

// reserve validates id for kind k and returns the next handle.
func (n *Network) reserve(k Kind, id string) (Handle, error) {
	if id == "" {
		return 0, fmt.Errorf("network: add %s: %w", k, ErrEmptyID)
	}
	if _, dup := n.byID[k][id]; dup {
		return 0, fmt.Errorf("network: add %s %q: %w", k, id, ErrDuplicateID)
	}

	return Handle(len(n.elements)), nil
}

func (n *Network) register(e Element) {
	k := e.Kind()
	if n.byID[k] == nil {
		n.byID[k] = make(map[string]Handle)
	}
	n.byID[k][e.ID()] = e.Handle()
	n.elements = append(n.elements, e)
}

// AddBus creates a bus with the given base (nominal) voltage in volts.
// Phase voltages start empty.
func (n *Network) AddBus(id string, baseVoltage float64) (*Bus, error) {
	h, err := n.reserve(KindBus, id)
	if err != nil {
		return nil, err
	}
	b := newBus(baseVoltage)
	b.init(n, h, id, KindBus)
	n.register(b)

	return b, nil
}

// AddLine creates a line of the given length in metres.
func (n *Network) AddLine(id string, length float64) (*Line, error) {
	h, err := n.reserve(KindLine, id)
	if err != nil {
		return nil, err
	}
	l := &Line{Length: length}
	l.init(n, h, id, KindLine)
	n.register(l)

	return l, nil
}

// AddLoad creates a load drawing totalKVA split evenly over phases
// 1..numPhases. numPhases below 1 is treated as 3.
func (n *Network) AddLoad(id string, totalKVA complex128, numPhases int) (*Load, error) {
	return n.AddLoadPhased(id, splitEvenly(totalKVA, numPhases))
}

// AddLoadPhased creates a load with explicit per-phase kVA.
func (n *Network) AddLoadPhased(id string, kva *phased.Stored[complex128]) (*Load, error) {
	h, err := n.reserve(KindLoad, id)
	if err != nil {
		return nil, err
	}
	if kva == nil {
		kva = phased.NewStored[complex128]()
	}
	l := &Load{KVA: kva}
	l.init(n, h, id, KindLoad)
	n.register(l)

	return l, nil
}

// AddGenerator creates a generator injecting totalKVA split evenly over
// phases 1..numPhases. numPhases below 1 is treated as 3.
func (n *Network) AddGenerator(id string, totalKVA complex128, numPhases int) (*Generator, error) {
	return n.AddGeneratorPhased(id, splitEvenly(totalKVA, numPhases))
}

// AddGeneratorPhased creates a generator with explicit per-phase kVA.
func (n *Network) AddGeneratorPhased(id string, kva *phased.Stored[complex128]) (*Generator, error) {
	h, err := n.reserve(KindGenerator, id)
	if err != nil {
		return nil, err
	}
	if kva == nil {
		kva = phased.NewStored[complex128]()
	}
	g := &Generator{Generation: kva}
	g.init(n, h, id, KindGenerator)
	n.register(g)

	return g, nil
}

func splitEvenly(total complex128, numPhases int) *phased.Stored[complex128] {
	if numPhases < 1 {
		numPhases = 3
	}
	per := total / complex(float64(numPhases), 0)
	s := phased.NewStored[complex128]()
	for p := 1; p <= numPhases; p++ {
		_ = s.Set(p, per)
	}

	return s
}
