// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/cmplx"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/elecnet/builder"
	"github.com/katalvlaran/elecnet/description"
	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/simulator"
	"github.com/katalvlaran/elecnet/trace"
)

// app carries the resolved configuration into every subcommand.
type app struct {
	cfg        Config
	configPath string
	out        io.Writer
	errOut     io.Writer
	log        *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	flags := defaultConfig()

	root := &cobra.Command{
		Use:          "gridtrace",
		Short:        "Trace the topology of a distribution feeder",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd, flags)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&flags.Network, "network", "", `feeder description path, or "ieee13"`)
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "debug, info, warn or error")
	pf.IntVar(&flags.MaxDepth, "max-depth", flags.MaxDepth, "maximum hops per trace branch, -1 for none")
	pf.Bool("json", false, "write JSON instead of text")

	root.AddCommand(
		a.infoCmd(),
		a.routeCmd(),
		a.reachCmd(),
		a.lengthCmd(),
		a.validateCmd(),
		a.experimentCmd(),
	)

	return root
}

// configure layers explicitly set flags over the config file and installs
// the logger.
func (a *app) configure(cmd *cobra.Command, flags Config) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("network") {
		cfg.Network = flags.Network
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if fs.Changed("max-depth") {
		cfg.MaxDepth = flags.MaxDepth
	}
	if fs.Changed("json") {
		if on, _ := fs.GetBool("json"); on {
			cfg.Output = "json"
		} else {
			cfg.Output = "text"
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: cfg.Level()}))
	a.log.Debug("configuration resolved",
		slog.String("network", cfg.Network),
		slog.Int("max_depth", cfg.MaxDepth),
		slog.String("output", cfg.Output))

	return nil
}

// newSimulator returns a simulator serving the configured network and the
// path to prepare it from.
func (a *app) newSimulator() (simulator.Simulator, string, error) {
	if a.cfg.Network != builtinIEEE13 {
		return simulator.NewStatic(), a.cfg.Network, nil
	}
	m, err := builder.IEEE13Model()
	if err != nil {
		return nil, "", err
	}
	d, err := description.Describe(m)
	if err != nil {
		return nil, "", err
	}
	d.Name = builtinIEEE13

	return preloaded{simulator.NewStaticFrom(d)}, builtinIEEE13, nil
}

// preloaded is a Static whose network is already in place.
type preloaded struct{ *simulator.Static }

func (preloaded) PrepareNetwork(context.Context, string) error { return nil }

// controller returns a Controller for the configured network.
func (a *app) controller(opts ...simulator.Option) (*simulator.Controller, error) {
	sim, path, err := a.newSimulator()
	if err != nil {
		return nil, err
	}
	opts = append([]simulator.Option{
		simulator.WithNetworkPath(path),
		simulator.WithLogger(a.log),
	}, opts...)

	return simulator.NewController(sim, opts...)
}

// model runs the simulator once and returns the baseline.
func (a *app) model(ctx context.Context) (*network.Model, error) {
	ctrl, err := a.controller()
	if err != nil {
		return nil, err
	}
	if err := ctrl.Execute(ctx); err != nil {
		return nil, err
	}

	return ctrl.Network(), nil
}

func (a *app) traceOpts(ctx context.Context) []trace.Option {
	return []trace.Option{
		trace.WithContext(ctx),
		trace.WithLogger(a.log),
		trace.WithMaxDepth(a.cfg.MaxDepth),
	}
}

func (a *app) emit(v any, text string) error {
	if a.cfg.Output == "json" {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := io.WriteString(a.out, text)

	return err
}

func busIDs(bs []*network.Bus) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.ID()
	}

	return out
}

func buses(m *network.Model, ids ...string) ([]*network.Bus, error) {
	out := make([]*network.Bus, 0, len(ids))
	for _, id := range ids {
		b, err := m.Bus(id)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}

	return out, nil
}

type infoReport struct {
	Network    string        `json:"network"`
	Source     string        `json:"source"`
	Buses      int           `json:"buses"`
	Lines      int           `json:"lines"`
	Loads      int           `json:"loads"`
	Generators int           `json:"generators"`
	LoadKW     float64       `json:"load_kw"`
	LoadKVAr   float64       `json:"load_kvar"`
	LossesKW   float64       `json:"losses_kw"`
	LossesKVAr float64       `json:"losses_kvar"`
	Bounds     *network.Rect `json:"bounds,omitempty"`
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarise the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.model(cmd.Context())
			if err != nil {
				return err
			}
			var load complex128
			for _, l := range m.Loads {
				load += l.TotalKVA()
			}
			r := infoReport{
				Network:    m.Network.ID().String(),
				Source:     m.Source.ID(),
				Buses:      len(m.Buses),
				Lines:      len(m.Lines),
				Loads:      len(m.Loads),
				Generators: len(m.Generators),
				LoadKW:     real(load),
				LoadKVAr:   imag(load),
				LossesKW:   real(m.LossesKVA),
				LossesKVAr: imag(m.LossesKVA),
			}
			if b, ok := m.Bounds(); ok {
				r.Bounds = &b
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "source: %s\n", r.Source)
			fmt.Fprintf(&sb, "buses: %d\nlines: %d\nloads: %d\ngenerators: %d\n", r.Buses, r.Lines, r.Loads, r.Generators)
			fmt.Fprintf(&sb, "load: %s kW %s kvar\n", num(r.LoadKW), num(r.LoadKVAr))
			fmt.Fprintf(&sb, "losses: %s kW %s kvar\n", num(r.LossesKW), num(r.LossesKVAr))
			if r.Bounds != nil {
				fmt.Fprintf(&sb, "bounds: %g,%g %gx%g\n", r.Bounds.X, r.Bounds.Y, r.Bounds.Width, r.Bounds.Height)
			}

			return a.emit(r, sb.String())
		},
	}
}

func (a *app) routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "List the buses on routes between two buses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.model(cmd.Context())
			if err != nil {
				return err
			}
			ends, err := buses(m, args...)
			if err != nil {
				return err
			}
			route, err := trace.BusesOnRouteToTarget(ends[0], ends[1], a.traceOpts(cmd.Context())...)
			if err != nil {
				return err
			}
			ids := busIDs(route)

			return a.emit(ids, strings.Join(ids, "\n")+"\n")
		},
	}
}

func (a *app) reachCmd() *cobra.Command {
	var exclude []string
	cmd := &cobra.Command{
		Use:   "reach FROM",
		Short: "List the buses reachable without crossing excluded buses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.model(cmd.Context())
			if err != nil {
				return err
			}
			from, err := m.Bus(args[0])
			if err != nil {
				return err
			}
			ex, err := buses(m, exclude...)
			if err != nil {
				return err
			}
			reached, err := trace.TraceWithoutCrossingBuses(from, ex, a.traceOpts(cmd.Context())...)
			if err != nil {
				return err
			}
			ids := busIDs(reached)

			return a.emit(ids, strings.Join(ids, "\n")+"\n")
		},
	}
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "buses the trace may not cross")

	return cmd
}

func (a *app) lengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "length FROM TO",
		Short: "Sum line lengths along the route between two buses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.model(cmd.Context())
			if err != nil {
				return err
			}
			ends, err := buses(m, args...)
			if err != nil {
				return err
			}
			d, err := trace.DirectLengthBetweenBuses(ends[0], ends[1], a.traceOpts(cmd.Context())...)
			if err != nil {
				return err
			}

			return a.emit(map[string]float64{"metres": d}, num(d)+" m\n")
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the description and the built topology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.model(cmd.Context())
			if err != nil {
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}

			return a.emit(map[string]bool{"valid": true}, "ok\n")
		},
	}
}

type voltageChange struct {
	Bus   string  `json:"bus"`
	Phase int     `json:"phase"`
	Volts float64 `json:"volts"`
	Deg   float64 `json:"deg"`
}

func (a *app) experimentCmd() *cobra.Command {
	var (
		scale float64
		cmds  []string
	)
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Scale loads, apply commands and report voltage changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := a.controller(
				simulator.WithExperimentor(simulator.ChainExperimentor{
					simulator.LoadScaling(scale),
					simulator.Commands(cmds...),
				}),
			)
			if err != nil {
				return err
			}
			if err := ctrl.Execute(cmd.Context()); err != nil {
				return err
			}
			changes := voltageChanges(ctrl.Baseline(), ctrl.Network())

			var sb strings.Builder
			for _, c := range changes {
				fmt.Fprintf(&sb, "%s.%d %s V %s deg\n", c.Bus, c.Phase, num(c.Volts), num(c.Deg))
			}
			if len(changes) == 0 {
				sb.WriteString("no voltage change\n")
			}

			return a.emit(changes, sb.String())
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 1, "factor applied to every load")
	cmd.Flags().StringArrayVar(&cmds, "cmd", nil, "extra simulator command, repeatable")

	return cmd
}

// voltageChanges compares every phase voltage present in both models.
// Volts is the signed change in magnitude and Deg the change in angle,
// wrapped to (-180, 180]. Largest absolute changes come first.
func voltageChanges(before, after *network.Model) []voltageChange {
	var out []voltageChange
	for _, id := range after.BusIDs() {
		old, ok := before.Buses[id]
		if !ok {
			continue
		}
		after.Buses[id].Voltage.Range(func(p network.Phase, now complex128) bool {
			was, ok := old.Voltage.Lookup(p)
			if !ok || now == was {
				return true
			}
			deg := (cmplx.Phase(now) - cmplx.Phase(was)) * 180 / math.Pi
			if deg <= -180 {
				deg += 360
			} else if deg > 180 {
				deg -= 360
			}
			out = append(out, voltageChange{Bus: id, Phase: p, Volts: cmplx.Abs(now) - cmplx.Abs(was), Deg: deg})
			return true
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return math.Abs(out[i].Volts) > math.Abs(out[j].Volts) })

	return out
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
