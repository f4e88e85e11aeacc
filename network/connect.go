// SPDX-License-Identifier: MIT

package network

import "fmt"

// Connect links phase pa of a with phase pb of b in both directions.
// If the link already exists this is a no-op, so a given (element, phase)
// pair appears in another element's bucket at most once.
// Complexity: O(d) where d is the size of the two buckets involved.
func Connect(a Element, pa Phase, b Element, pb Phase) error {
	ea, eb, err := resolvePair(a, b)
	if err != nil {
		return fmt.Errorf("network: Connect: %w", err)
	}
	connect(ea, pa, eb, pb)

	return nil
}

func connect(ea *element, pa Phase, eb *element, pb Phase) {
	// 1) forward side: ea[pa] gets (eb, pb)
	fwd := Connection{Target: eb.handle, Phase: pb}
	if ba := ea.bucket(pa, true); ba.index(fwd) < 0 {
		ba.conns = append(ba.conns, fwd)
	}
	// 2) reverse side: eb[pb] gets (ea, pa); for a self-link on one phase
	//    this is the same entry and the index check keeps it single.
	rev := Connection{Target: ea.handle, Phase: pa}
	if bb := eb.bucket(pb, true); bb.index(rev) < 0 {
		bb.conns = append(bb.conns, rev)
	}
}

// ConnectBetween ties phase p of e to phase p1 of b1 and phase p2 of b2.
// This is how a line sits between two buses.
func ConnectBetween(e Element, p Phase, b1 Element, p1 Phase, b2 Element, p2 Phase) error {
	ee, e1, err := resolvePair(e, b1)
	if err != nil {
		return fmt.Errorf("network: ConnectBetween: %w", err)
	}
	_, e2, err := resolvePair(e, b2)
	if err != nil {
		return fmt.Errorf("network: ConnectBetween: %w", err)
	}
	connect(ee, p, e1, p1)
	connect(ee, p, e2, p2)

	return nil
}

// ConnectionExists reports whether phase pa of a lists (b, pb).
// Nil or foreign elements are never connected.
func ConnectionExists(a Element, pa Phase, b Element, pb Phase) bool {
	ea, eb, err := resolvePair(a, b)
	if err != nil {
		return false
	}
	bucket := ea.bucket(pa, false)

	return bucket != nil && bucket.index(Connection{Target: eb.handle, Phase: pb}) >= 0
}

// Disconnect removes every connection between a and b on every phase, in
// both directions. Emptied buckets are kept.
func Disconnect(a, b Element) error {
	ea, eb, err := resolvePair(a, b)
	if err != nil {
		return fmt.Errorf("network: Disconnect: %w", err)
	}
	severAll(ea, eb.handle)
	severAll(eb, ea.handle)

	return nil
}

func severAll(e *element, target Handle) {
	e.conns.Range(func(_ Phase, b *bucket) bool {
		b.remove(func(c Connection) bool { return c.Target != target })
		return true
	})
}

// DisconnectPhase removes the single link between phase pa of a and phase
// pb of b, in both directions. Removing a link that does not exist is a no-op.
func DisconnectPhase(a Element, pa Phase, b Element, pb Phase) error {
	ea, eb, err := resolvePair(a, b)
	if err != nil {
		return fmt.Errorf("network: DisconnectPhase: %w", err)
	}
	if ba := ea.bucket(pa, false); ba != nil {
		fwd := Connection{Target: eb.handle, Phase: pb}
		ba.remove(func(c Connection) bool { return c != fwd })
	}
	if bb := eb.bucket(pb, false); bb != nil {
		rev := Connection{Target: ea.handle, Phase: pa}
		bb.remove(func(c Connection) bool { return c != rev })
	}

	return nil
}

// ConnectedToAnyPhase returns the distinct elements e is connected to on
// any phase, in ascending phase then insertion order.
func ConnectedToAnyPhase(e Element) []Element {
	ee, err := resolve(e)
	if err != nil {
		return nil
	}
	seen := make(map[Handle]struct{})
	var out []Element
	ee.conns.Range(func(_ Phase, b *bucket) bool {
		for _, c := range b.conns {
			if _, dup := seen[c.Target]; dup {
				continue
			}
			seen[c.Target] = struct{}{}
			out = append(out, ee.net.elements[c.Target])
		}
		return true
	})

	return out
}

// ConnectedOnAllActivePhases returns the elements that appear in every
// phase bucket of e: the intersection across buckets. An element with no
// buckets, or with an empty bucket, has no such elements.
// Order follows the lowest phase bucket.
func ConnectedOnAllActivePhases(e Element) []Element {
	ee, err := resolve(e)
	if err != nil {
		return nil
	}
	phases := ee.conns.Keys()
	if len(phases) == 0 {
		return nil
	}

	// count, per target, the number of buckets it appears in
	counts := make(map[Handle]int)
	for _, p := range phases {
		b, _ := ee.conns.Lookup(p)
		inBucket := make(map[Handle]struct{}, len(b.conns))
		for _, c := range b.conns {
			inBucket[c.Target] = struct{}{}
		}
		for h := range inBucket {
			counts[h]++
		}
	}

	first, _ := ee.conns.Lookup(phases[0])
	var out []Element
	emitted := make(map[Handle]struct{})
	for _, c := range first.conns {
		if _, dup := emitted[c.Target]; dup || counts[c.Target] != len(phases) {
			continue
		}
		emitted[c.Target] = struct{}{}
		out = append(out, ee.net.elements[c.Target])
	}

	return out
}

// ConnectedTo returns the distinct elements connected on phase 1, the
// single-phase view used by balanced call sites. If e has no phase-1
// bucket an empty one is created.
func ConnectedTo(e Element) []Element {
	ee, err := resolve(e)
	if err != nil {
		return nil
	}
	b := ee.bucket(1, true)
	seen := make(map[Handle]struct{}, len(b.conns))
	out := make([]Element, 0, len(b.conns))
	for _, c := range b.conns {
		if _, dup := seen[c.Target]; dup {
			continue
		}
		seen[c.Target] = struct{}{}
		out = append(out, ee.net.elements[c.Target])
	}

	return out
}

// ConnectedOfKind returns the elements of kind k in ConnectedToAnyPhase(e).
func ConnectedOfKind(e Element, k Kind) []Element {
	var out []Element
	for _, x := range ConnectedToAnyPhase(e) {
		if x.Kind() == k {
			out = append(out, x)
		}
	}

	return out
}
