package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elecnet/network"
)

// mustBus adds a 4.16 kV bus or fails the test.
func mustBus(t *testing.T, n *network.Network, id string) *network.Bus {
	t.Helper()
	b, err := n.AddBus(id, 4160)
	require.NoError(t, err)

	return b
}

// mustLine adds a line or fails the test.
func mustLine(t *testing.T, n *network.Network, id string, length float64) *network.Line {
	t.Helper()
	l, err := n.AddLine(id, length)
	require.NoError(t, err)

	return l
}

// ids returns the element IDs in order.
func ids(es []network.Element) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.ID())
	}

	return out
}

// assertPair checks both directions of a phase-level connection.
func assertPair(t *testing.T, a network.Element, pa network.Phase, b network.Element, pb network.Phase) {
	t.Helper()
	require.Truef(t, network.ConnectionExists(a, pa, b, pb), "%s[%d] -> %s[%d] missing", a.ID(), pa, b.ID(), pb)
	require.Truef(t, network.ConnectionExists(b, pb, a, pa), "%s[%d] -> %s[%d] missing", b.ID(), pb, a.ID(), pa)
}
