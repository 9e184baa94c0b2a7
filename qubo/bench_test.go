package qubo_test

import (
	"testing"

	"github.com/katalvlaran/drainflow/network"
	"github.com/katalvlaran/drainflow/qubo"
)

// diamondNet builds a 4-node, 5-conduit diamond: A feeds B and C, both
// feed D, plus a B→C cross link.
func diamondNet(b *testing.B) *network.Network {
	b.Helper()
	edges := []network.Edge{
		{From: "A", To: "B"},
		{From: "A", To: "C"},
		{From: "B", To: "C"},
		{From: "B", To: "D"},
		{From: "C", To: "D"},
	}
	attrs := network.Attributes{
		NodeCapacity: map[string]float64{"A": 6, "B": 4, "C": 4, "D": 6},
		NodeRisk:     map[string]float64{"A": 0.1, "B": 0.3, "C": 0.2, "D": 0.5},
		PipeCapacity: map[network.Edge]float64{},
		EnergyCost:   map[network.Edge]float64{},
	}
	for _, e := range edges {
		attrs.PipeCapacity[e] = 3
		attrs.EnergyCost[e] = 1.2
	}
	net, err := network.New(edges, attrs)
	if err != nil {
		b.Fatal(err)
	}
	return net
}

func BenchmarkBuild(b *testing.B) {
	net := diamondNet(b)
	opts := qubo.DefaultBuildOptions().WithEnergyBudget(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := qubo.Build(net, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlows(b *testing.B) {
	net := diamondNet(b)
	_, vm, err := qubo.Build(net, qubo.DefaultBuildOptions())
	if err != nil {
		b.Fatal(err)
	}
	sol := &qubo.Solution{Assignment: assignFlow(vm, 0b101)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qubo.Flows(sol, vm); err != nil {
			b.Fatal(err)
		}
	}
}
