// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/elecnet/phased"
)

// Element is a participant in the network graph.
// Only *Bus, *Line, *Load and *Generator implement it.
type Element interface {
	// Handle returns the element's stable address in its Network.
	Handle() Handle

	// ID returns the identifier, unique among elements of the same Kind.
	ID() string

	// Kind reports the element kind.
	Kind() Kind

	// Network returns the owning network.
	Network() *Network

	// Connections exposes the per-phase connection buckets as a read-only
	// phased view. Reads of an unchanged bucket return the same
	// *ConnectionSet instance.
	Connections() phased.Phased[*ConnectionSet]

	// Phases returns the phases that have a connection bucket, ascending.
	Phases() []Phase

	base() *element
}

// bucket is the mutable list of connections on one phase. Buckets are
// stored by pointer so the cached read-only view can key on identity.
type bucket struct {
	conns []Connection
}

func (b *bucket) index(c Connection) int {
	for i, x := range b.conns {
		if x == c {
			return i
		}
	}

	return -1
}

func (b *bucket) remove(keep func(Connection) bool) int {
	kept := b.conns[:0]
	for _, c := range b.conns {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	removed := len(b.conns) - len(kept)
	clear(b.conns[len(kept):])
	b.conns = kept

	return removed
}

// ConnectionSet is a read-only view of one phase bucket. It tracks the
// live bucket, so it reflects later Connect and Disconnect calls.
type ConnectionSet struct {
	b *bucket
}

// Len returns the number of connections on the phase.
func (s *ConnectionSet) Len() int { return len(s.b.conns) }

// At returns the i-th connection in insertion order.
func (s *ConnectionSet) At(i int) Connection { return s.b.conns[i] }

// All returns a copy of the connections in insertion order.
func (s *ConnectionSet) All() []Connection {
	out := make([]Connection, len(s.b.conns))
	copy(out, s.b.conns)

	return out
}

// Contains reports whether c is on the phase.
func (s *ConnectionSet) Contains(c Connection) bool { return s.b.index(c) >= 0 }

// element carries the state shared by every kind.
type element struct {
	id     string
	kind   Kind
	handle Handle
	net    *Network
	conns  *phased.Stored[*bucket]
	view   phased.Phased[*ConnectionSet]
}

func (e *element) init(net *Network, h Handle, id string, kind Kind) {
	e.id, e.kind, e.handle, e.net = id, kind, h, net
	e.conns = phased.NewStored[*bucket]()
	e.view = phased.NewCachedReadOnly(func(b *bucket) *ConnectionSet { return &ConnectionSet{b: b} }, e.conns)
}

// Handle returns the element's address in its network.
func (e *element) Handle() Handle { return e.handle }

// ID returns the element identifier.
func (e *element) ID() string { return e.id }

// Kind returns the element kind.
func (e *element) Kind() Kind { return e.kind }

// Network returns the owning network.
func (e *element) Network() *Network { return e.net }

// Connections returns the cached read-only view of the phase buckets.
func (e *element) Connections() phased.Phased[*ConnectionSet] { return e.view }

// Phases returns the phases that have a bucket, ascending.
func (e *element) Phases() []Phase { return e.conns.Keys() }

// String returns "Kind:ID".
func (e *element) String() string { return fmt.Sprintf("%s:%s", e.kind, e.id) }

// bucket returns the bucket for phase p, creating it when create is set.
func (e *element) bucket(p Phase, create bool) *bucket {
	if b, ok := e.conns.Lookup(p); ok {
		return b
	}
	if !create {
		return nil
	}
	b := &bucket{}
	_ = e.conns.Set(p, b)

	return b
}

// resolve extracts the shared state of a and checks it is usable.
func resolve(a Element) (*element, error) {
	if a == nil {
		return nil, ErrNilElement
	}
	e := a.base()
	if e == nil {
		return nil, ErrNilElement
	}

	return e, nil
}

// resolvePair resolves a and b and checks they share a network.
func resolvePair(a, b Element) (*element, *element, error) {
	ea, err := resolve(a)
	if err != nil {
		return nil, nil, err
	}
	eb, err := resolve(b)
	if err != nil {
		return nil, nil, err
	}
	if ea.net != eb.net {
		return nil, nil, fmt.Errorf("%s and %s: %w", ea, eb, ErrForeignElement)
	}

	return ea, eb, nil
}
