// SPDX-License-Identifier: MIT

package simulator

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/elecnet/network"
)

// DifferenceTransform replaces each bus voltage after an experiment with
// its change from the baseline, in polar form: the magnitude is the change
// in magnitude and the angle is the change in angle. Buses or phases
// missing from the baseline are left as they are.
type DifferenceTransform struct {
	baseline map[string]map[network.Phase]complex128
}

// PreExperiment records the voltages of m.
func (t *DifferenceTransform) PreExperiment(m *network.Model) error {
	t.baseline = make(map[string]map[network.Phase]complex128, len(m.Buses))
	for id, b := range m.Buses {
		t.baseline[id] = b.Voltage.Map()
	}

	return nil
}

// PostExperiment rewrites the voltages of m as differences from the
// recorded baseline.
func (t *DifferenceTransform) PostExperiment(m *network.Model) error {
	if t.baseline == nil {
		return fmt.Errorf("simulator: DifferenceTransform: %w", ErrNoBaseline)
	}
	for id, b := range m.Buses {
		old, ok := t.baseline[id]
		if !ok {
			continue
		}
		for _, p := range b.Voltage.Keys() {
			was, ok := old[p]
			if !ok {
				continue
			}
			now, _ := b.Voltage.Get(p)
			_ = b.Voltage.Set(p, cmplx.Rect(cmplx.Abs(now)-cmplx.Abs(was), cmplx.Phase(now)-cmplx.Phase(was)))
		}
	}

	return nil
}
