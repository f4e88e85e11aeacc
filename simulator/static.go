// SPDX-License-Identifier: MIT

package simulator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/elecnet/description"
	"github.com/katalvlaran/elecnet/network"
)

// Static is a Simulator that serves the values of a network description
// and applies commands to them. It never solves: voltages change only
// through set-voltage. Static is safe for concurrent use.
type Static struct {
	mu   sync.Mutex
	desc *description.Description
}

// NewStatic returns a Static with nothing loaded.
func NewStatic() *Static { return &Static{} }

// NewStaticFrom returns a Static already holding a copy of d.
// PrepareNetwork replaces it.
func NewStaticFrom(d *description.Description) *Static {
	return &Static{desc: d.Clone()}
}

// PrepareNetwork loads the description at path, discarding earlier edits.
func (s *Static) PrepareNetwork(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d, err := description.Load(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.desc = d
	s.mu.Unlock()

	return nil
}

// Description returns a copy of the current description.
func (s *Static) Description() (*description.Description, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.desc == nil {
		return nil, ErrNotPrepared
	}

	return s.desc.Clone(), nil
}

// NetworkModel builds a new model from the current description.
func (s *Static) NetworkModel(ctx context.Context) (*network.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.desc == nil {
		return nil, ErrNotPrepared
	}

	return description.Build(s.desc)
}

// RunCommand applies one command; see the package documentation for the
// command set. A failed command leaves the description unchanged.
func (s *Static) RunCommand(ctx context.Context, cmd string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return fmt.Errorf("simulator: empty command: %w", ErrBadCommand)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.desc == nil {
		return ErrNotPrepared
	}

	verb, args := fields[0], fields[1:]
	switch verb {
	case "scale-load":
		return s.scaleLoad(args)
	case "set-load":
		return s.setLoad(args)
	case "set-voltage":
		return s.setVoltage(args)
	default:
		return fmt.Errorf("simulator: %q: %w", verb, ErrUnknownCommand)
	}
}

func (s *Static) scaleLoad(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("simulator: scale-load <id|*> <factor>: %w", ErrBadCommand)
	}
	f, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	hit := false
	for i := range s.desc.Loads {
		l := &s.desc.Loads[i]
		if args[0] != "*" && l.ID != args[0] {
			continue
		}
		hit = true
		for j := range l.Phases {
			l.Phases[j].P *= f[0]
			l.Phases[j].Q *= f[0]
		}
	}
	if !hit && args[0] != "*" {
		return fmt.Errorf("simulator: load %q: %w", args[0], ErrUnknownElement)
	}

	return nil
}

// setLoad sets the total kVA of a load. Phases keep their share of the
// previous total; a load that drew nothing is split evenly.
func (s *Static) setLoad(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("simulator: set-load <id> <kW> <kvar>: %w", ErrBadCommand)
	}
	f, err := parseFloats(args[1:])
	if err != nil {
		return err
	}
	for i := range s.desc.Loads {
		l := &s.desc.Loads[i]
		if l.ID != args[0] {
			continue
		}
		want := complex(f[0], f[1])
		var total complex128
		for _, p := range l.Phases {
			total += complex(p.P, p.Q)
		}
		for j, p := range l.Phases {
			v := want / complex(float64(len(l.Phases)), 0)
			if total != 0 {
				v = complex(p.P, p.Q) * want / total
			}
			l.Phases[j].P, l.Phases[j].Q = real(v), imag(v)
		}

		return nil
	}

	return fmt.Errorf("simulator: load %q: %w", args[0], ErrUnknownElement)
}

func (s *Static) setVoltage(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("simulator: set-voltage <bus> <phase> <kV> <deg>: %w", ErrBadCommand)
	}
	phase, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("simulator: phase %q: %w", args[1], ErrBadCommand)
	}
	f, err := parseFloats(args[2:])
	if err != nil {
		return err
	}
	for i := range s.desc.Buses {
		b := &s.desc.Buses[i]
		if b.ID != args[0] {
			continue
		}
		v := description.Voltage{Phase: phase, KV: f[0], Deg: f[1]}
		for j := range b.Voltages {
			if b.Voltages[j].Phase == phase {
				b.Voltages[j] = v
				return nil
			}
		}
		b.Voltages = append(b.Voltages, v)

		return nil
	}

	return fmt.Errorf("simulator: bus %q: %w", args[0], ErrUnknownElement)
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("simulator: number %q: %w", a, ErrBadCommand)
		}
		out[i] = v
	}

	return out, nil
}
