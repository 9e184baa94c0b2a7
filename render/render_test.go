package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drainflow/network"
	"github.com/katalvlaran/drainflow/render"
)

// chainNet builds A→B→C with distinct capacities.
func chainNet(t *testing.T) *network.Network {
	t.Helper()
	ab := network.Edge{From: "A", To: "B"}
	bc := network.Edge{From: "B", To: "C"}
	net, err := network.New([]network.Edge{ab, bc}, network.Attributes{
		NodeCapacity: map[string]float64{"A": 4, "B": 2, "C": 0},
		NodeRisk:     map[string]float64{"A": 0.2, "B": 0.1, "C": 0.4},
		PipeCapacity: map[network.Edge]float64{ab: 4, bc: 2},
		EnergyCost:   map[network.Edge]float64{ab: 1, bc: 1},
	})
	require.NoError(t, err)
	return net
}

// TestConduitUtilization verifies flow/capacity ratios, zero-flow default,
// and clamping.
func TestConduitUtilization(t *testing.T) {
	net := chainNet(t)
	ab := network.Edge{From: "A", To: "B"}
	bc := network.Edge{From: "B", To: "C"}

	util := render.ConduitUtilization(net, map[network.Edge]float64{ab: 1, bc: 5})
	require.InDelta(t, 0.25, util[ab], 1e-9)
	require.Equal(t, 1.0, util[bc], "over-capacity flow clamps to 1")

	util = render.ConduitUtilization(net, nil)
	require.Equal(t, 0.0, util[ab], "absent edges count as zero flow")
}

// TestNodeUtilization verifies inflow-based ratios and the zero-capacity
// guard.
func TestNodeUtilization(t *testing.T) {
	net := chainNet(t)
	ab := network.Edge{From: "A", To: "B"}
	bc := network.Edge{From: "B", To: "C"}

	util := render.NodeUtilization(net, map[network.Edge]float64{ab: 1, bc: 2})
	require.Equal(t, 0.0, util["A"], "no inflow into the source")
	require.InDelta(t, 0.5, util["B"], 1e-9)
	require.Equal(t, 0.0, util["C"], "zero capacity reports zero, not Inf")
}

// TestFlowReport verifies the report carries the objective, every conduit
// row in edge order, and every node row.
func TestFlowReport(t *testing.T) {
	net := chainNet(t)
	ab := network.Edge{From: "A", To: "B"}

	out := render.FlowReport(net, map[network.Edge]float64{ab: 3}, -7.25)
	require.Contains(t, out, "Objective = -7.250")
	require.Contains(t, out, "A->B")
	require.Contains(t, out, "B->C")
	require.Contains(t, out, "Edge")
	require.Contains(t, out, "Node")
	// Edge rows precede node rows; A->B sorts before B->C.
	require.Less(t, strings.Index(out, "A->B"), strings.Index(out, "B->C"))
}
