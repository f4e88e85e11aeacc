// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/elecnet/network"
)

// hop is one line leaving a bus and the bus at its far end.
type hop struct {
	line *network.Line
	bus  *network.Bus
}

// walker carries the state of one trace call.
type walker struct {
	opts Options
	hops map[network.Handle][]hop // per-bus neighbour cache
}

func newWalker(opts []Option) *walker {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker{opts: o, hops: make(map[network.Handle][]hop)}
}

// check rejects nil buses and buses from another network than from.
func check(from *network.Bus, others ...*network.Bus) error {
	if from == nil {
		return ErrNilBus
	}
	for _, b := range others {
		if b == nil {
			return ErrNilBus
		}
		if b.Network() != from.Network() {
			return fmt.Errorf("trace: %s and %s: %w", from, b, network.ErrForeignElement)
		}
	}

	return nil
}

// enter guards every bus visit with cancellation and the depth limit.
func (w *walker) enter(b *network.Bus, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return fmt.Errorf("trace: bus %s at depth %d > %d: %w", b.ID(), depth, w.opts.MaxDepth, ErrDepthExceeded)
	}

	return nil
}

// lines returns every (line, far bus) pair leaving b, in wiring order.
func (w *walker) lines(b *network.Bus) ([]hop, error) {
	if hs, ok := w.hops[b.Handle()]; ok {
		return hs, nil
	}
	ls := b.Lines()
	hs := make([]hop, 0, len(ls))
	for _, l := range ls {
		far, err := l.Opposite(b)
		if err != nil {
			return nil, fmt.Errorf("trace: from bus %s: %w", b.ID(), err)
		}
		hs = append(hs, hop{line: l, bus: far})
	}
	w.hops[b.Handle()] = hs

	return hs, nil
}

// onward returns the distinct neighbours of b not yet on the branch and
// accepted by keep (nil keeps all).
func (w *walker) onward(b *network.Bus, branch BusSet, keep func(*network.Bus) bool) ([]*network.Bus, error) {
	hs, err := w.lines(b)
	if err != nil {
		return nil, err
	}
	seen := make(map[network.Handle]struct{}, len(hs))
	out := make([]*network.Bus, 0, len(hs))
	for _, h := range hs {
		if _, dup := seen[h.bus.Handle()]; dup || branch.Has(h.bus) {
			continue
		}
		seen[h.bus.Handle()] = struct{}{}
		if keep != nil && !keep(h.bus) {
			continue
		}
		out = append(out, h.bus)
	}

	return out, nil
}

// fork returns the branch set for the next step: shared when there is a
// single way forward, copied otherwise.
func fork(branch BusSet, ways int) BusSet {
	if ways == 1 {
		return branch
	}

	return branch.Clone()
}
