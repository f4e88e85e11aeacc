// SPDX-License-Identifier: MIT

package simulator

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/elecnet/network"
)

// Option configures a Controller.
type Option func(*Options)

// Options holds the Controller configuration.
type Options struct {
	// NetworkPath is passed to Simulator.PrepareNetwork.
	NetworkPath string

	// Experimentor, if set, supplies the commands run after the baseline.
	Experimentor Experimentor

	// Transform, if set, sees the baseline and rewrites the final model.
	Transform ResultsTransform

	// Cache keeps the baseline model across Execute calls.
	Cache bool

	// Logger receives one record per stage; defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns no experiment, no transform, no caching and a
// discarding logger.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithNetworkPath sets the description the simulator loads.
func WithNetworkPath(path string) Option {
	return func(o *Options) { o.NetworkPath = path }
}

// WithExperimentor sets the experiment. Panics if e is nil.
func WithExperimentor(e Experimentor) Option {
	if e == nil {
		panic("simulator: WithExperimentor(nil)")
	}

	return func(o *Options) { o.Experimentor = e }
}

// WithTransform sets the results transform. Panics if t is nil.
func WithTransform(t ResultsTransform) Option {
	if t == nil {
		panic("simulator: WithTransform(nil)")
	}

	return func(o *Options) { o.Transform = t }
}

// WithCache enables or disables baseline caching.
func WithCache(on bool) Option {
	return func(o *Options) { o.Cache = on }
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("simulator: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// Controller drives a Simulator through one experiment pass per Execute.
// It is not safe for concurrent use.
type Controller struct {
	sim  Simulator
	opts Options

	baseline *network.Model
	current  *network.Model
	runID    uuid.UUID
}

// NewController returns a Controller for sim.
func NewController(sim Simulator, opts ...Option) (*Controller, error) {
	if sim == nil {
		return nil, ErrNilSimulator
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller{sim: sim, opts: o}, nil
}

// Execute prepares the network unless a cached baseline exists, then, when
// an Experimentor is set, hands the baseline to the transform, runs the
// experiment commands and fetches the modified model. The transform's
// PostExperiment sees the final model whether or not an experiment ran.
func (c *Controller) Execute(ctx context.Context) error {
	c.runID = uuid.New()
	log := c.opts.Logger.With(slog.String("run", c.runID.String()))

	if !c.opts.Cache || c.baseline == nil {
		log.DebugContext(ctx, "preparing network", slog.String("path", c.opts.NetworkPath))
		if err := c.sim.PrepareNetwork(ctx, c.opts.NetworkPath); err != nil {
			return fmt.Errorf("simulator: Execute: prepare %q: %w", c.opts.NetworkPath, err)
		}
		m, err := c.sim.NetworkModel(ctx)
		if err != nil {
			return fmt.Errorf("simulator: Execute: baseline: %w", err)
		}
		c.baseline, c.current = m, m
		log.InfoContext(ctx, "baseline ready",
			slog.String("network", m.Network.ID().String()),
			slog.Int("buses", len(m.Buses)),
			slog.Int("lines", len(m.Lines)))
	} else {
		log.DebugContext(ctx, "using cached baseline", slog.String("network", c.baseline.Network.ID().String()))
	}

	if c.opts.Experimentor != nil {
		if c.opts.Transform != nil {
			if err := c.opts.Transform.PreExperiment(c.baseline); err != nil {
				return fmt.Errorf("simulator: Execute: pre-experiment: %w", err)
			}
		}
		cmds, err := c.opts.Experimentor.Experiment(c.baseline)
		if err != nil {
			return fmt.Errorf("simulator: Execute: experiment: %w", err)
		}
		for i, cmd := range cmds {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.sim.RunCommand(ctx, cmd); err != nil {
				return fmt.Errorf("simulator: Execute: command %d %q: %w", i, cmd, err)
			}
		}
		log.DebugContext(ctx, "experiment commands applied", slog.Int("commands", len(cmds)))

		m, err := c.sim.NetworkModel(ctx)
		if err != nil {
			return fmt.Errorf("simulator: Execute: post-experiment model: %w", err)
		}
		c.current = m
	}

	if c.opts.Transform != nil {
		if err := c.opts.Transform.PostExperiment(c.current); err != nil {
			return fmt.Errorf("simulator: Execute: post-experiment: %w", err)
		}
	}
	log.InfoContext(ctx, "run complete", slog.String("network", c.current.Network.ID().String()))

	return nil
}

// Network returns the model of the last Execute, or nil before the first.
func (c *Controller) Network() *network.Model { return c.current }

// Baseline returns the pre-experiment model of the last Execute.
func (c *Controller) Baseline() *network.Model { return c.baseline }

// RunID identifies the last Execute; it is uuid.Nil before the first.
func (c *Controller) RunID() uuid.UUID { return c.runID }

// ClearCache drops the cached baseline so the next Execute prepares the
// network again.
func (c *Controller) ClearCache() { c.baseline = nil }
