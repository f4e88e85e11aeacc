// SPDX-License-Identifier: MIT

package simulator

import (
	"context"
	"errors"

	"github.com/katalvlaran/elecnet/network"
)

var (
	// ErrNilSimulator is returned by NewController without a simulator.
	ErrNilSimulator = errors.New("simulator: simulator is nil")

	// ErrNotPrepared indicates a command or model request before PrepareNetwork.
	ErrNotPrepared = errors.New("simulator: network not prepared")

	// ErrUnknownCommand indicates a command verb the simulator does not know.
	ErrUnknownCommand = errors.New("simulator: unknown command")

	// ErrBadCommand indicates a known command with malformed arguments.
	ErrBadCommand = errors.New("simulator: malformed command")

	// ErrUnknownElement indicates a command naming an element that does not exist.
	ErrUnknownElement = errors.New("simulator: unknown element")

	// ErrNoBaseline indicates PostExperiment ran without a PreExperiment.
	ErrNoBaseline = errors.New("simulator: no pre-experiment baseline")
)

// Simulator produces solved network models.
type Simulator interface {
	// PrepareNetwork loads the network stored at path.
	PrepareNetwork(ctx context.Context, path string) error

	// RunCommand applies one text command to the loaded network.
	RunCommand(ctx context.Context, cmd string) error

	// NetworkModel returns a freshly built model of the current network.
	NetworkModel(ctx context.Context) (*network.Model, error)
}

// Experimentor turns a baseline model into the commands of an experiment.
type Experimentor interface {
	Experiment(m *network.Model) ([]string, error)
}

// ExperimentorFunc adapts a function to Experimentor.
type ExperimentorFunc func(m *network.Model) ([]string, error)

// Experiment calls f(m).
func (f ExperimentorFunc) Experiment(m *network.Model) ([]string, error) { return f(m) }

// ResultsTransform observes the model before an experiment and rewrites
// the model produced after it.
type ResultsTransform interface {
	PreExperiment(m *network.Model) error
	PostExperiment(m *network.Model) error
}
