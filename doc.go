// Package drainflow models a risk-aware drainage network as a quadratic
// unconstrained binary optimization problem (QUBO), solves it with a
// pluggable binary optimizer, and reconstructs physical edge flows from
// the binary solution.
//
// The pipeline, leaf-first:
//
//	network/  — directed drainage graph: junction capacity & risk,
//	            conduit pipe-capacity & energy-cost, validated on build
//	qubo/     — multi-bit flow discretization, penalty-based objective
//	            assembly, LP export, and flow reconstruction
//	solver/   — the binary-optimizer contract plus an exact exhaustive
//	            minimizer and a simulated annealer
//	problem/  — JSON/YAML problem descriptions (schema with "U,V"
//	            composite conduit keys) and their tuning knobs
//	render/   — terminal utilization report for a solved network
//	cmd/drainflow — CLI: load → build → export/solve → report
//
// A minimal round trip:
//
//	net, _ := network.New(
//	    []network.Edge{{From: "A", To: "B"}},
//	    network.Attributes{
//	        NodeCapacity: map[string]float64{"A": 4, "B": 4},
//	        NodeRisk:     map[string]float64{"A": 0.2, "B": 0.2},
//	        PipeCapacity: map[network.Edge]float64{{From: "A", To: "B"}: 3},
//	        EnergyCost:   map[network.Edge]float64{{From: "A", To: "B"}: 1},
//	    },
//	)
//	prog, vm, _ := qubo.Build(net, qubo.DefaultBuildOptions())
//	s, _ := solver.New(solver.StrategyExact, solver.DefaultOptions())
//	sol, _ := s.Solve(context.Background(), prog)
//	flows, _ := qubo.Flows(sol, vm)
//
// Flows are modeled as non-negative fixed-point quantities: each conduit
// carries bits_per_edge binary digit variables with weights
// flow_quantum·2^k, so directionality lives in the conduit orientation,
// never in a sign bit.
package drainflow
