package qubo_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/drainflow/network"
	"github.com/katalvlaran/drainflow/qubo"
	"github.com/katalvlaran/drainflow/solver"
)

// ExampleBuild runs the full round trip on a two-node network whose pipe
// capacity exactly matches the maximum reconstructable flow: the optimizer
// saturates the conduit.
func ExampleBuild() {
	ab := network.Edge{From: "A", To: "B"}
	net, err := network.New([]network.Edge{ab}, network.Attributes{
		NodeCapacity: map[string]float64{"A": 4, "B": 4},
		NodeRisk:     map[string]float64{"A": 0.2, "B": 0.2},
		PipeCapacity: map[network.Edge]float64{ab: 3},
		EnergyCost:   map[network.Edge]float64{ab: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	opts := qubo.DefaultBuildOptions()
	opts.BitsPerEdge = 2 // weights {1,2}: representable flows 0..3
	prog, vm, err := qubo.Build(net, opts)
	if err != nil {
		fmt.Println(err)
		return
	}

	exact := solver.NewExact(solver.DefaultOptions())
	sol, err := exact.Solve(context.Background(), prog)
	if err != nil {
		fmt.Println(err)
		return
	}
	flows, err := qubo.Flows(sol, vm)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Objective = %.3f\n", sol.Objective)
	fmt.Printf("%s flow %g\n", ab, flows[ab])
	// Output:
	// Objective = 269.300
	// A->B flow 3
}
