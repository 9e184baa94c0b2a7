package qubo_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drainflow/network"
	"github.com/katalvlaran/drainflow/qubo"
)

// buildSingleEdge builds the canonical A→B program with the given
// discretization, all other knobs at defaults.
func buildSingleEdge(t *testing.T, bits int, quantum float64) (*qubo.Program, *qubo.VarMap) {
	t.Helper()
	opts := qubo.DefaultBuildOptions()
	opts.BitsPerEdge = bits
	opts.FlowQuantum = quantum
	prog, vm, err := qubo.Build(singleEdgeNet(t), opts)
	require.NoError(t, err)
	return prog, vm
}

// TestDiscretizationProperties verifies, across random discretizations,
// the discretizer's invariants: the all-ones assignment reconstructs
// exactly q·(2^b − 1), and reconstruction is idempotent for any encodable
// flow level.
func TestDiscretizationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	ab := network.Edge{From: "A", To: "B"}

	properties.Property("all digits set reconstruct q*(2^b-1)", prop.ForAll(
		func(bits int, quantum float64) bool {
			_, vm := buildSingleEdge(t, bits, quantum)
			sol := &qubo.Solution{Assignment: assignFlow(vm, (1<<bits)-1)}
			flows, err := qubo.Flows(sol, vm)
			if err != nil {
				return false
			}
			want := quantum * float64((int64(1)<<bits)-1)
			return math.Abs(flows[ab]-want) < 1e-9
		},
		gen.IntRange(1, 6),
		gen.Float64Range(0.25, 8),
	))

	properties.Property("reconstruction is idempotent", prop.ForAll(
		func(bits int, level int) bool {
			_, vm := buildSingleEdge(t, bits, 1.0)
			sol := &qubo.Solution{Assignment: assignFlow(vm, level%(1<<bits))}
			first, err := qubo.Flows(sol, vm)
			if err != nil {
				return false
			}
			second, err := qubo.Flows(sol, vm)
			if err != nil {
				return false
			}
			if len(first) != len(second) {
				return false
			}
			for e, f := range first {
				if second[e] != f {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(0, 1<<16),
	))

	properties.TestingRun(t)
}

// TestPenaltySymmetryProperty verifies the two-sided squared penalty at
// the program level: flows equidistant from the pipe capacity incur equal
// penalty, for every encodable distance.
func TestPenaltySymmetryProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// bits=3 encodes [0,7]; pipe capacity is 3, so distances 0..3 stay
	// encodable on both sides. Reward is −f with λ=0; adding f back leaves
	// the pure penalty.
	opts := qubo.DefaultBuildOptions()
	opts.BitsPerEdge = 3
	opts.Lambda = 0
	opts.PenaltyNode = 0
	prog, vm, err := qubo.Build(singleEdgeNet(t), opts)
	require.NoError(t, err)

	penalty := func(f int) float64 {
		x := make([]float64, vm.Len())
		for i := 0; i < vm.Len(); i++ {
			_, dv := vm.At(i)
			x[i] = float64((f >> dv.Bit) & 1)
		}
		v, evalErr := prog.Evaluate(x)
		require.NoError(t, evalErr)
		return v + float64(f)
	}

	properties.Property("penalty(cap-d) == penalty(cap+d)", prop.ForAll(
		func(d int) bool {
			return math.Abs(penalty(3-d)-penalty(3+d)) < 1e-9
		},
		gen.IntRange(0, 3),
	))

	properties.TestingRun(t)
}
