package simulator_test

import (
	"context"
	"math"
	"math/cmplx"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/simulator"
)

var ieee13Path = filepath.Join("..", "description", "testdata", "ieee13.yaml")

func prepared(t *testing.T) *simulator.Static {
	t.Helper()
	s := simulator.NewStatic()
	require.NoError(t, s.PrepareNetwork(context.Background(), ieee13Path))

	return s
}

func load(t *testing.T, m *network.Model, id string) *network.Load {
	t.Helper()
	for _, l := range m.Loads {
		if l.ID() == id {
			return l
		}
	}
	t.Fatalf("load %s not found", id)

	return nil
}

func TestStatic_NotPrepared(t *testing.T) {
	s := simulator.NewStatic()
	ctx := context.Background()

	_, err := s.NetworkModel(ctx)
	assert.ErrorIs(t, err, simulator.ErrNotPrepared)
	assert.ErrorIs(t, s.RunCommand(ctx, "scale-load * 2"), simulator.ErrNotPrepared)
	_, err = s.Description()
	assert.ErrorIs(t, err, simulator.ErrNotPrepared)
	assert.Error(t, s.PrepareNetwork(ctx, "does-not-exist.yaml"))
}

func TestStatic_FreshModelEachCall(t *testing.T) {
	s := prepared(t)
	a, err := s.NetworkModel(context.Background())
	require.NoError(t, err)
	b, err := s.NetworkModel(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.NotEqual(t, a.Network.ID(), b.Network.ID())
	assert.Equal(t, a.BusIDs(), b.BusIDs())
}

func TestStatic_Commands(t *testing.T) {
	s := prepared(t)
	ctx := context.Background()

	require.NoError(t, s.RunCommand(ctx, "scale-load 671 2"))
	require.NoError(t, s.RunCommand(ctx, "set-load 692 340 302"))
	require.NoError(t, s.RunCommand(ctx, "set-voltage 632 1 2.5 0"))
	require.NoError(t, s.RunCommand(ctx, "set-voltage 652 2 2.4 -120"))

	m, err := s.NetworkModel(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 2310, real(load(t, m, "671").TotalKVA()), 1e-9)
	l692 := load(t, m, "692")
	assert.InDelta(t, 340, real(l692.TotalKVA()), 1e-9)
	assert.InDelta(t, 302, imag(l692.TotalKVA()), 1e-9)
	v1, _ := l692.KVA.Get(1)
	v3, _ := l692.KVA.Get(3)
	assert.InDelta(t, real(v1), real(v3), 1e-9)

	b632, _ := m.Bus("632")
	v, err := b632.Voltage.Get(1)
	require.NoError(t, err)
	assert.InDelta(t, 2500, real(v), 1e-9)
	assert.InDelta(t, 0, imag(v), 1e-9)

	b652, _ := m.Bus("652")
	assert.Equal(t, []network.Phase{1, 2}, b652.Voltage.Keys())

	require.NoError(t, s.RunCommand(ctx, "scale-load * 0"))
	m, err = s.NetworkModel(ctx)
	require.NoError(t, err)
	for _, l := range m.Loads {
		assert.Zero(t, l.TotalKVA(), l.ID())
	}
	require.NoError(t, s.RunCommand(ctx, "set-load 611 30 3"))
	m, err = s.NetworkModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, complex(30, 3), load(t, m, "611").TotalKVA())
}

func TestStatic_CommandErrors(t *testing.T) {
	s := prepared(t)
	ctx := context.Background()

	cases := map[string]error{
		"":                          simulator.ErrBadCommand,
		"trip 671":                  simulator.ErrUnknownCommand,
		"scale-load 671":            simulator.ErrBadCommand,
		"scale-load 671 lots":       simulator.ErrBadCommand,
		"scale-load nowhere 2":      simulator.ErrUnknownElement,
		"set-load 671 1":            simulator.ErrBadCommand,
		"set-load nowhere 1 1":      simulator.ErrUnknownElement,
		"set-voltage 632 a 2.4 0":   simulator.ErrBadCommand,
		"set-voltage 632 1 2.4":     simulator.ErrBadCommand,
		"set-voltage nowhere 1 1 0": simulator.ErrUnknownElement,
	}
	for cmd, want := range cases {
		assert.ErrorIs(t, s.RunCommand(ctx, cmd), want, cmd)
	}

	ctx2, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, s.RunCommand(ctx2, "scale-load * 2"), context.Canceled)
	_, err := s.NetworkModel(ctx2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatic_FromDescriptionIsCopied(t *testing.T) {
	d, err := prepared(t).Description()
	require.NoError(t, err)
	s := simulator.NewStaticFrom(d)
	require.NoError(t, s.RunCommand(context.Background(), "scale-load * 3"))

	assert.Equal(t, 85.0, d.Loads[11].Phases[0].P)
	cur, err := s.Description()
	require.NoError(t, err)
	assert.Equal(t, 255.0, cur.Loads[11].Phases[0].P)
}

func TestRun_LoadScalingWithDifference(t *testing.T) {
	ctrl, err := simulator.NewController(simulator.NewStatic(),
		simulator.WithNetworkPath(ieee13Path),
		simulator.WithExperimentor(simulator.ChainExperimentor{
			simulator.LoadScaling(2),
			simulator.Commands("set-voltage 632 1 2.5 0"),
		}),
		simulator.WithTransform(&simulator.DifferenceTransform{}),
	)
	require.NoError(t, err)
	require.NoError(t, ctrl.Execute(context.Background()))

	m := ctrl.Network()
	var total complex128
	for _, l := range m.Loads {
		total += l.TotalKVA()
	}
	assert.InDelta(t, 6132, real(total), 1e-3)
	assert.InDelta(t, 3624, imag(total), 1e-3)

	// untouched voltages difference to zero
	b671, _ := m.Bus("671")
	v, _ := b671.Voltage.Get(1)
	assert.InDelta(t, 0, cmplx.Abs(v), 1e-9)

	b632, _ := m.Bus("632")
	v, _ = b632.Voltage.Get(1)
	assert.InDelta(t, 2500-2451.7, cmplx.Abs(v), 1e-6)
	assert.InDelta(t, 2.5*math.Pi/180, cmplx.Phase(v), 1e-9)

	base, _ := ctrl.Baseline().Bus("632")
	v, _ = base.Voltage.Get(1)
	assert.InDelta(t, 2451.7, cmplx.Abs(v), 1e-6)
}

func TestDifferenceTransform_NeedsBaseline(t *testing.T) {
	m, err := prepared(t).NetworkModel(context.Background())
	require.NoError(t, err)
	tr := &simulator.DifferenceTransform{}
	assert.ErrorIs(t, tr.PostExperiment(m), simulator.ErrNoBaseline)

	require.NoError(t, tr.PreExperiment(m))
	require.NoError(t, tr.PostExperiment(m))
	b, _ := m.Bus("RG60")
	v, _ := b.Voltage.Get(2)
	assert.InDelta(t, 0, cmplx.Abs(v), 1e-9)
}

func TestChainExperimentor(t *testing.T) {
	m, err := prepared(t).NetworkModel(context.Background())
	require.NoError(t, err)

	cmds, err := simulator.ChainExperimentor{
		simulator.Commands("first"),
		simulator.LoadScaling(0.5),
	}.Experiment(m)
	require.NoError(t, err)
	require.Len(t, cmds, 13)
	assert.Equal(t, "first", cmds[0])
	assert.Equal(t, "set-load 611 85.000000 40.000000", cmds[1])

	_, err = simulator.ChainExperimentor{
		simulator.ExperimentorFunc(func(*network.Model) ([]string, error) { return nil, simulator.ErrBadCommand }),
	}.Experiment(m)
	assert.ErrorIs(t, err, simulator.ErrBadCommand)
}
