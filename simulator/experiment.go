// SPDX-License-Identifier: MIT

package simulator

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/elecnet/network"
)

// ChainExperimentor concatenates the commands of its members in order.
type ChainExperimentor []Experimentor

// Experiment runs every member against m. The first failure stops the chain.
func (c ChainExperimentor) Experiment(m *network.Model) ([]string, error) {
	var out []string
	for i, e := range c {
		cmds, err := e.Experiment(m)
		if err != nil {
			return nil, fmt.Errorf("simulator: chain member %d: %w", i, err)
		}
		out = append(out, cmds...)
	}

	return out, nil
}

// LoadScaling returns an Experimentor that sets every load to factor times
// its baseline total, as set-load commands.
func LoadScaling(factor float64) Experimentor {
	return ExperimentorFunc(func(m *network.Model) ([]string, error) {
		out := make([]string, 0, len(m.Loads))
		for _, l := range m.Loads {
			kva := l.TotalKVA() * complex(factor, 0)
			out = append(out, fmt.Sprintf("set-load %s %s %s", l.ID(), f6(real(kva)), f6(imag(kva))))
		}

		return out, nil
	})
}

// Commands returns an Experimentor that always issues cmds.
func Commands(cmds ...string) Experimentor {
	return ExperimentorFunc(func(*network.Model) ([]string, error) {
		return append([]string(nil), cmds...), nil
	})
}

func f6(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
