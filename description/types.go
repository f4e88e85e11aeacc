// SPDX-License-Identifier: MIT

package description

import (
	"errors"
	"slices"

	"github.com/katalvlaran/elecnet/network"
)

var (
	// ErrInvalid wraps struct-tag validation failures.
	ErrInvalid = errors.New("description: invalid description")

	// ErrUnknownBus is network.ErrUnknownBus: a reference to a bus not listed.
	ErrUnknownBus = network.ErrUnknownBus

	// ErrDuplicateID is network.ErrDuplicateID: two elements of one kind share an ID.
	ErrDuplicateID = network.ErrDuplicateID

	// ErrUnrepresentable indicates a model whose wiring has no description form.
	ErrUnrepresentable = errors.New("description: wiring cannot be described")
)

// Wiring styles for loads and generators.
const (
	// WiringDirect ties each element phase to the same bus phase.
	WiringDirect = "direct"
	// WiringWye ties each element phase to the same bus phase and to neutral.
	WiringWye = "wye"
	// WiringDelta ties element phase i between bus phases i and i+1.
	WiringDelta = "delta"
)

// Description is a whole feeder.
type Description struct {
	Name       string       `yaml:"name,omitempty"`
	Source     string       `yaml:"source" validate:"required"`
	Losses     KVA          `yaml:"losses_kva"`
	Buses      []Bus        `yaml:"buses" validate:"required,min=1,dive"`
	Lines      []Line       `yaml:"lines,omitempty" validate:"dive"`
	Loads      []Conversion `yaml:"loads,omitempty" validate:"dive"`
	Generators []Conversion `yaml:"generators,omitempty" validate:"dive"`
}

// KVA is complex power split into real (kW) and reactive (kvar) parts.
type KVA struct {
	P float64 `yaml:"p"`
	Q float64 `yaml:"q"`
}

// Complex returns P + jQ.
func (k KVA) Complex() complex128 { return complex(k.P, k.Q) }

// Voltage is one phase voltage in polar form.
type Voltage struct {
	Phase int     `yaml:"phase" validate:"gte=0"`
	KV    float64 `yaml:"kv" validate:"gte=0"`
	Deg   float64 `yaml:"deg"`
}

// Bus describes a bus.
type Bus struct {
	ID       string         `yaml:"id" validate:"required"`
	BaseKV   float64        `yaml:"base_kv" validate:"gt=0"`
	Voltages []Voltage      `yaml:"voltages,omitempty" validate:"dive"`
	Location *network.Point `yaml:"location,omitempty"`
}

// Line describes a line. Line phase Phases[i] joins phase Phases[i] of Bus1
// to phase Phases2[i] of Bus2; Phases2 defaults to Phases.
type Line struct {
	ID      string  `yaml:"id" validate:"required"`
	Length  float64 `yaml:"length" validate:"gte=0"`
	Bus1    string  `yaml:"bus1" validate:"required"`
	Bus2    string  `yaml:"bus2" validate:"required,nefield=Bus1"`
	Phases  []int   `yaml:"phases" validate:"required,min=1,dive,gte=0"`
	Phases2 []int   `yaml:"phases2,omitempty" validate:"omitempty,eqfield=Phases,dive,gte=0"`
}

// PhaseKVA is the power of one element phase.
type PhaseKVA struct {
	Phase int     `yaml:"phase" validate:"gte=0"`
	P     float64 `yaml:"p"`
	Q     float64 `yaml:"q"`
}

// Conversion describes a load or a generator attached to one bus.
type Conversion struct {
	ID     string     `yaml:"id" validate:"required"`
	Bus    string     `yaml:"bus" validate:"required"`
	Wiring string     `yaml:"wiring,omitempty" validate:"omitempty,oneof=direct wye delta"`
	Phases []PhaseKVA `yaml:"phases" validate:"required,min=1,dive"`
}

// wiring returns the wiring style, defaulting to direct.
func (c Conversion) wiring() string {
	if c.Wiring == "" {
		return WiringDirect
	}

	return c.Wiring
}

// Clone returns a deep copy of d.
func (d *Description) Clone() *Description {
	out := *d
	out.Buses = slices.Clone(d.Buses)
	for i, b := range out.Buses {
		out.Buses[i].Voltages = slices.Clone(b.Voltages)
		if b.Location != nil {
			loc := *b.Location
			out.Buses[i].Location = &loc
		}
	}
	out.Lines = slices.Clone(d.Lines)
	for i, l := range out.Lines {
		out.Lines[i].Phases = slices.Clone(l.Phases)
		out.Lines[i].Phases2 = slices.Clone(l.Phases2)
	}
	out.Loads = cloneConversions(d.Loads)
	out.Generators = cloneConversions(d.Generators)

	return &out
}

func cloneConversions(cs []Conversion) []Conversion {
	out := slices.Clone(cs)
	for i, c := range out {
		out[i].Phases = slices.Clone(c.Phases)
	}

	return out
}
