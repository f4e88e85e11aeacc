// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/phased"
)

const methodIEEE13 = "IEEE13"

// IEEE13 source bus and aggregate losses in kVA.
const (
	IEEE13Source                = "RG60"
	IEEE13Losses     complex128 = 110.544 + 322.316i
	ieee13BaseVoltage           = 4160.0
)

// polar is a phase voltage in kV and degrees.
type polar struct {
	phase network.Phase
	kv    float64
	deg   float64
}

type ieee13Bus struct {
	id    string
	volts []polar
}

type ieee13Line struct {
	id     string
	length float64
	bus1   string
	bus2   string
	phases []network.Phase
}

type ieee13Load struct {
	id     string
	kva    complex128
	bus    string
	phases []network.Phase
}

func abc(a, aDeg, b, bDeg, c, cDeg float64) []polar {
	return []polar{{1, a, aDeg}, {2, b, bDeg}, {3, c, cDeg}}
}

// Solved phase voltages of the IEEE 13-bus feeder. Bus 650 is listed but
// no line reaches it; the regulator output RG60 feeds the network.
var ieee13Buses = []ieee13Bus{
	{"RG60", abc(2.5514, 0, 2.5216, -120, 2.5664, 120)},
	{"650", abc(2.4016, 0, 2.4017, -120, 2.4016, 120)},
	{"633", abc(2.4444, -2.6, 2.4977, -121.8, 2.4375, 117.8)},
	{"671", abc(2.3762, -5.3, 2.5297, -122.4, 2.3512, 116.1)},
	{"645", []polar{{2, 2.4802, -121.9}, {3, 2.439, 117.8}}},
	{"646", []polar{{2, 2.476, -122.0}, {3, 2.4341, 117.9}}},
	{"692", abc(2.3762, -5.3, 2.5297, -122.4, 2.3512, 116.1)},
	{"675", abc(2.3606, -5.6, 2.5354, -122.5, 2.3467, 116.1)},
	{"611", []polar{{3, 2.3416, 115.8}}},
	{"652", []polar{{1, 2.3582, -5.3}}},
	{"670", abc(2.427, -3.4, 2.5094, -122.0, 2.4098, 117.2)},
	{"632", abc(2.4517, -2.5, 2.5022, -121.7, 2.4438, 117.8)},
	{"680", abc(2.3762, -5.3, 2.5297, -122.4, 2.3512, 116.1)},
	{"684", []polar{{1, 2.3716, -5.3}, {3, 2.3464, 116.0}}},
}

var ieee13Lines = []ieee13Line{
	{"632633", 500, "632", "633", []network.Phase{1, 2, 3}},
	{"632645", 500, "632", "645", []network.Phase{3, 2}},
	{"632670", 667, "632", "670", []network.Phase{1, 2, 3}},
	{"645646", 300, "645", "646", []network.Phase{3, 2}},
	{"650632", 2000, "RG60", "632", []network.Phase{1, 2, 3}},
	{"670671", 1333, "670", "671", []network.Phase{1, 2, 3}},
	{"671680", 1000, "680", "671", []network.Phase{1, 2, 3}},
	{"671684", 1333, "684", "671", []network.Phase{1, 3}},
	{"671692", 0.001, "692", "671", []network.Phase{1, 2, 3}},
	{"684611", 300, "684", "611", []network.Phase{3}},
	{"684652", 800, "684", "652", []network.Phase{1}},
	{"692675", 500, "692", "675", []network.Phase{1, 2, 3}},
}

var ieee13Loads = []ieee13Load{
	{"611", 170 + 80i, "611", []network.Phase{3}},
	{"645", 170 + 125i, "645", []network.Phase{2}},
	{"646", 230 + 132i, "646", []network.Phase{2, 3}},
	{"652", 128 + 86i, "652", []network.Phase{1}},
	{"670A", 17 + 10i, "670", []network.Phase{1}},
	{"670B", 66 + 38i, "670", []network.Phase{2}},
	{"670C", 117 + 68i, "670", []network.Phase{3}},
	{"671", 1155 + 660i, "671", []network.Phase{1, 2, 3}},
	{"675A", 485 + 190i, "675", []network.Phase{1}},
	{"675B", 68 + 60i, "675", []network.Phase{2}},
	{"675C", 290 + 212i, "675", []network.Phase{3}},
	{"692", 170 + 151i, "692", []network.Phase{3, 1}},
}

// IEEE13 returns a Constructor for the IEEE 13-bus test feeder with its
// solved voltages, line lengths (metres) and spot loads. Bus, line and load
// IDs are fixed; the ID scheme, phases and base voltage options do not
// apply. Each load's kVA is split evenly over the phases it is tied to.
func IEEE13() Constructor {
	return func(net *network.Network, _ config) error {
		for _, row := range ieee13Buses {
			b, err := net.AddBus(row.id, ieee13BaseVoltage)
			if err != nil {
				return fmt.Errorf("%s: %w", methodIEEE13, err)
			}
			for _, v := range row.volts {
				_ = b.Voltage.Set(v.phase, cmplx.Rect(v.kv*1000, v.deg*math.Pi/180))
			}
		}

		for _, row := range ieee13Lines {
			l, err := net.AddLine(row.id, row.length)
			if err != nil {
				return fmt.Errorf("%s: %w", methodIEEE13, err)
			}
			b1, ok1 := net.Bus(row.bus1)
			b2, ok2 := net.Bus(row.bus2)
			if !ok1 || !ok2 {
				return fmt.Errorf("%s: line %s: %w", methodIEEE13, row.id, network.ErrUnknownBus)
			}
			if err := l.Connect(b1, b2, row.phases...); err != nil {
				return fmt.Errorf("%s: %w", methodIEEE13, err)
			}
		}

		for _, row := range ieee13Loads {
			per := row.kva / complex(float64(len(row.phases)), 0)
			ld, err := net.AddLoadPhased(row.id, phased.Uniform(per, row.phases...))
			if err != nil {
				return fmt.Errorf("%s: %w", methodIEEE13, err)
			}
			bus, ok := net.Bus(row.bus)
			if !ok {
				return fmt.Errorf("%s: load %s: %w", methodIEEE13, row.id, network.ErrUnknownBus)
			}
			for _, p := range row.phases {
				if err := ld.ConnectTo(p, bus, p); err != nil {
					return fmt.Errorf("%s: %w", methodIEEE13, err)
				}
			}
		}

		return nil
	}
}

// IEEE13Model builds the IEEE 13-bus feeder with its source and losses.
func IEEE13Model() (*network.Model, error) {
	return BuildNetwork([]Option{WithSource(IEEE13Source), WithLosses(IEEE13Losses)}, IEEE13())
}
