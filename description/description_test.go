package description_test

import (
	"bytes"
	"math/cmplx"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elecnet/builder"
	"github.com/katalvlaran/elecnet/description"
	"github.com/katalvlaran/elecnet/network"
	"github.com/katalvlaran/elecnet/trace"
)

const tiny = `
source: a
buses:
  - {id: a, base_kv: 4.16}
  - {id: b, base_kv: 4.16}
lines:
  - {id: ab, length: 10, bus1: a, bus2: b, phases: [1, 2, 3]}
`

func decode(t *testing.T, doc string) (*description.Description, error) {
	t.Helper()

	return description.Decode(strings.NewReader(doc))
}

func TestLoad_IEEE13(t *testing.T) {
	d, err := description.Load(filepath.Join("testdata", "ieee13.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "ieee13", d.Name)

	m, err := description.Build(d)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Len(t, m.Buses, 14)
	assert.Len(t, m.Lines, 12)
	assert.Len(t, m.Loads, 12)
	assert.Equal(t, "RG60", m.Source.ID())
	assert.Equal(t, complex(110.544, 322.316), m.LossesKVA)

	var total complex128
	for _, l := range m.Loads {
		total += l.TotalKVA()
	}
	assert.InDelta(t, 3066, real(total), 1e-9)
	assert.InDelta(t, 1812, imag(total), 1e-9)

	from, _ := m.Bus("675")
	route, err := trace.BusesOnRouteToTarget(from, m.Source)
	require.NoError(t, err)
	var got []string
	for _, b := range route {
		got = append(got, b.ID())
	}
	assert.Equal(t, []string{"632", "670", "671", "675", "692", "RG60"}, got)

	b671, _ := m.Bus("671")
	v, err := b671.Voltage.Get(2)
	require.NoError(t, err)
	assert.InDelta(t, 2529.7, cmplx.Abs(v), 1e-6)
}

func TestDescribe_RoundTripsIEEE13(t *testing.T) {
	orig, err := builder.IEEE13Model()
	require.NoError(t, err)

	d, err := description.Describe(orig)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, description.Encode(&buf, d))
	back, err := description.Decode(&buf)
	require.NoError(t, err)

	m, err := description.Build(back)
	require.NoError(t, err)
	assert.Equal(t, orig.BusIDs(), m.BusIDs())
	assert.Equal(t, orig.Source.ID(), m.Source.ID())
	assert.InDelta(t, real(orig.LossesKVA), real(m.LossesKVA), 1e-9)

	for id, ob := range orig.Buses {
		nb := m.Buses[id]
		require.Equal(t, ob.Voltage.Keys(), nb.Voltage.Keys(), id)
		for _, p := range ob.Voltage.Keys() {
			ov, _ := ob.Voltage.Get(p)
			nv, _ := nb.Voltage.Get(p)
			assert.InDelta(t, real(ov), real(nv), 1e-6, "%s phase %d", id, p)
			assert.InDelta(t, imag(ov), imag(nv), 1e-6, "%s phase %d", id, p)
		}
		assert.InDelta(t, ob.BaseVoltage, nb.BaseVoltage, 1e-9)
	}

	require.Len(t, m.Lines, len(orig.Lines))
	for i, l := range orig.Lines {
		assert.Equal(t, l.ID(), m.Lines[i].ID())
		assert.Equal(t, l.Length, m.Lines[i].Length)
		assert.Equal(t, l.Phases(), m.Lines[i].Phases())
	}
	require.Len(t, m.Loads, len(orig.Loads))
	for i, l := range orig.Loads {
		assert.Equal(t, l.KVA.Map(), m.Loads[i].KVA.Map(), l.ID())
		ob, _ := l.Bus()
		nb, err := m.Loads[i].Bus()
		require.NoError(t, err)
		assert.Equal(t, ob.ID(), nb.ID())
	}
}

func TestBuild_Wiring(t *testing.T) {
	d, err := decode(t, tiny+`
loads:
  - id: w
    bus: b
    wiring: wye
    phases: [{phase: 1, p: 10}, {phase: 2, p: 10}, {phase: 3, p: 10}]
  - id: direct
    bus: b
    phases: [{phase: 2, p: 5, q: 1}]
generators:
  - id: g
    bus: a
    wiring: delta
    phases: [{phase: 1, p: 100}, {phase: 2, p: 100}, {phase: 3, p: 100}]
`)
	require.NoError(t, err)
	m, err := description.Build(d)
	require.NoError(t, err)

	a, _ := m.Bus("a")
	b, _ := m.Bus("b")
	w := m.Loads[0]
	assert.True(t, network.ConnectionExists(w, 1, b, 1))
	assert.True(t, network.ConnectionExists(w, 1, b, 0))
	g := m.Generators[0]
	assert.True(t, network.ConnectionExists(g, 3, a, 3))
	assert.True(t, network.ConnectionExists(g, 3, a, 1))
	assert.Equal(t, complex(300, 0), g.TotalGeneration())

	back, err := description.Describe(m)
	require.NoError(t, err)
	assert.Equal(t, description.WiringWye, back.Loads[0].Wiring)
	assert.Empty(t, back.Loads[1].Wiring)
	assert.Equal(t, []description.PhaseKVA{{Phase: 2, P: 5, Q: 1}}, back.Loads[1].Phases)
	assert.Equal(t, description.WiringDelta, back.Generators[0].Wiring)
	assert.Equal(t, []int{1, 2, 3}, back.Lines[0].Phases)
	assert.Nil(t, back.Lines[0].Phases2)
}

func TestBuild_MappedLinePhases(t *testing.T) {
	d, err := decode(t, `
source: a
buses:
  - {id: a, base_kv: 4.16}
  - {id: b, base_kv: 0.24}
lines:
  - {id: ab, length: 5, bus1: a, bus2: b, phases: [3], phases2: [1]}
`)
	require.NoError(t, err)
	m, err := description.Build(d)
	require.NoError(t, err)

	a, _ := m.Bus("a")
	b, _ := m.Bus("b")
	l := m.Lines[0]
	assert.True(t, network.ConnectionExists(l, 3, a, 3))
	assert.True(t, network.ConnectionExists(l, 3, b, 1))
	assert.InDelta(t, 240.0, b.BaseVoltage, 1e-9)

	back, err := description.Describe(m)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, back.Lines[0].Phases)
	assert.Equal(t, []int{1}, back.Lines[0].Phases2)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"MissingSource", strings.Replace(tiny, "source: a", "", 1), description.ErrInvalid},
		{"UnknownSource", strings.Replace(tiny, "source: a", "source: z", 1), description.ErrUnknownBus},
		{"NoBuses", "source: a\nbuses: []\n", description.ErrInvalid},
		{"ZeroBaseVoltage", strings.Replace(tiny, "{id: b, base_kv: 4.16}", "{id: b, base_kv: 0}", 1), description.ErrInvalid},
		{"DuplicateBus", strings.Replace(tiny, "id: b,", "id: a,", 1), description.ErrDuplicateID},
		{"SelfLine", strings.Replace(tiny, "bus2: b", "bus2: a", 1), description.ErrInvalid},
		{"LineUnknownBus", strings.Replace(tiny, "bus2: b", "bus2: z", 1), description.ErrUnknownBus},
		{"LineNoPhases", strings.Replace(tiny, "[1, 2, 3]", "[]", 1), description.ErrInvalid},
		{"Phases2Length", strings.Replace(tiny, "[1, 2, 3]}", "[1, 2, 3], phases2: [1]}", 1), description.ErrInvalid},
		{"BadWiring", tiny + "loads:\n  - {id: l, bus: b, wiring: star, phases: [{phase: 1, p: 1}]}\n", description.ErrInvalid},
		{"SinglePhaseDelta", tiny + "loads:\n  - {id: l, bus: b, wiring: delta, phases: [{phase: 1, p: 1}]}\n", description.ErrInvalid},
		{"LoadUnknownBus", tiny + "loads:\n  - {id: l, bus: z, phases: [{phase: 1, p: 1}]}\n", description.ErrUnknownBus},
		{"DuplicateLoad", tiny + "loads:\n  - {id: l, bus: a, phases: [{phase: 1}]}\n  - {id: l, bus: b, phases: [{phase: 1}]}\n", description.ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decode(t, tc.doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("UnknownField", func(t *testing.T) {
		_, err := decode(t, tiny+"colour: red\n")
		require.Error(t, err)
	})
}

func TestValidate_ReportsEveryReference(t *testing.T) {
	d, err := decode(t, tiny)
	require.NoError(t, err)
	d.Source = "nowhere"
	d.Lines = append(d.Lines, description.Line{ID: "ab", Length: 1, Bus1: "a", Bus2: "c", Phases: []int{1}})

	err = d.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, description.ErrUnknownBus)
	assert.ErrorIs(t, err, description.ErrDuplicateID)
	assert.Contains(t, err.Error(), `"nowhere"`)
	assert.Contains(t, err.Error(), `"c"`)
}

func TestValidate_UsesYAMLNames(t *testing.T) {
	_, err := decode(t, strings.Replace(tiny, "{id: b, base_kv: 4.16}", "{id: b, base_kv: -1}", 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_kv")
}

func TestDescribe_Unrepresentable(t *testing.T) {
	net := network.New()
	a, err := net.AddBus("a", 4160)
	require.NoError(t, err)
	ld, err := net.AddLoad("crossed", 10, 1)
	require.NoError(t, err)
	require.NoError(t, ld.ConnectTo(1, a, 2))
	m, err := network.NewModel(net, "a", 0)
	require.NoError(t, err)

	_, err = description.Describe(m)
	assert.ErrorIs(t, err, description.ErrUnrepresentable)

	_, err = description.Describe(nil)
	assert.ErrorIs(t, err, network.ErrNilElement)
}

func TestSaveLoad(t *testing.T) {
	d, err := decode(t, tiny)
	require.NoError(t, err)
	d.Buses[0].Location = &network.Point{X: 1, Y: 2}

	path := filepath.Join(t.TempDir(), "net.yaml")
	require.NoError(t, description.Save(path, d))
	back, err := description.Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	m, err := description.Build(back)
	require.NoError(t, err)
	r, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, network.Rect{X: 1, Y: 2}, r)

	_, err = description.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestClone_IsDeep(t *testing.T) {
	d, err := decode(t, tiny+"loads:\n  - {id: l, bus: b, phases: [{phase: 1, p: 1}]}\n")
	require.NoError(t, err)
	d.Buses[0].Location = &network.Point{X: 3}

	c := d.Clone()
	require.Equal(t, d, c)
	c.Buses[0].Location.X = 9
	c.Lines[0].Phases[0] = 7
	c.Loads[0].Phases[0].P = 5
	assert.Equal(t, 3.0, d.Buses[0].Location.X)
	assert.Equal(t, 1, d.Lines[0].Phases[0])
	assert.Equal(t, 1.0, d.Loads[0].Phases[0].P)
}
