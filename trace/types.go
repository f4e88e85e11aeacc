// SPDX-License-Identifier: MIT

package trace

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/katalvlaran/elecnet/network"
)

var (
	// ErrNilBus is returned when a nil bus is passed to a trace.
	ErrNilBus = errors.New("trace: bus is nil")

	// ErrNilVisit is returned when TraceFromWithCallback gets a nil callback.
	ErrNilVisit = errors.New("trace: visit callback is nil")

	// ErrDepthExceeded is returned when a branch grows beyond the MaxDepth option.
	ErrDepthExceeded = errors.New("trace: maximum depth exceeded")

	// ErrNoRoute indicates the start bus cannot reach the target.
	ErrNoRoute = errors.New("trace: no route between buses")

	// ErrLineEndpoints is network.ErrLineEndpoints: a line crossed by the trace
	// does not have exactly one bus opposite the current one.
	ErrLineEndpoints = network.ErrLineEndpoints
)

// Visit is called by TraceFromWithCallback for every line crossed, before
// the trace descends into next. A non-nil error aborts the trace.
type Visit func(cur *network.Bus, line *network.Line, next *network.Bus) error

// Option configures a trace.
type Option func(*Options)

// Options holds the trace configuration.
type Options struct {
	// Ctx cancels the trace; defaults to context.Background().
	Ctx context.Context

	// Logger receives debug records; defaults to a discarding logger.
	Logger *slog.Logger

	// MaxDepth, if non-negative, is the maximum number of hops from the start
	// bus a branch may take. Default -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns Background context, a discarding logger and no
// depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth limits branch length to limit hops. Negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// BusSet is a set of buses of one network keyed by handle.
type BusSet map[network.Handle]*network.Bus

// NewBusSet returns a set holding bs. Nil buses are skipped.
func NewBusSet(bs ...*network.Bus) BusSet {
	s := make(BusSet, len(bs))
	for _, b := range bs {
		s.Add(b)
	}

	return s
}

// Add inserts b. A nil b is ignored.
func (s BusSet) Add(b *network.Bus) {
	if b != nil {
		s[b.Handle()] = b
	}
}

// Has reports whether b is in the set.
func (s BusSet) Has(b *network.Bus) bool {
	if b == nil {
		return false
	}
	_, ok := s[b.Handle()]

	return ok
}

// Clone returns a shallow copy.
func (s BusSet) Clone() BusSet {
	out := make(BusSet, len(s))
	for h, b := range s {
		out[h] = b
	}

	return out
}

// Union adds every bus of o.
func (s BusSet) Union(o BusSet) {
	for h, b := range o {
		s[h] = b
	}
}

// Sorted returns the buses ordered by ID.
func (s BusSet) Sorted() []*network.Bus {
	out := make([]*network.Bus, 0, len(s))
	for _, b := range s {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// IDs returns the sorted bus IDs.
func (s BusSet) IDs() []string {
	sorted := s.Sorted()
	ids := make([]string, len(sorted))
	for i, b := range sorted {
		ids[i] = b.ID()
	}

	return ids
}
