// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/phased"
)

// config aggregates the knobs read by constructors. It is passed by value.
type config struct {
	idFn        IDFn
	lengthFn    LengthFn
	rng         *rand.Rand
	phases      []network.Phase
	baseVoltage float64
	source      string
	losses      complex128
}

const (
	// DefaultBaseVoltage is the base voltage of new buses, in volts.
	DefaultBaseVoltage = 4160.0

	// DefaultLineLength is the length of synthetic lines, in metres.
	DefaultLineLength = 100.0
)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:        DefaultIDFn,
		lengthFn:    ConstantLength(DefaultLineLength),
		phases:      phased.ThreePhase(),
		baseVoltage: DefaultBaseVoltage,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// bus returns the bus with the given ID, adding it when absent.
func (c config) bus(net *network.Network, id string) (*network.Bus, error) {
	if b, ok := net.Bus(id); ok {
		return b, nil
	}

	return net.AddBus(id, c.baseVoltage)
}

// line adds a line of the given length between u and v, wired on the
// configured phases. A non-positive length draws one from lengthFn.
func (c config) line(net *network.Network, u, v *network.Bus, length float64) (*network.Line, error) {
	if length <= 0 {
		length = c.lengthFn(c.rng)
	}
	l, err := net.AddLine(u.ID()+"-"+v.ID(), length)
	if err != nil {
		return nil, err
	}
	if err := l.Connect(u, v, c.phases...); err != nil {
		return nil, err
	}

	return l, nil
}
