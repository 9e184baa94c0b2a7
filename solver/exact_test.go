package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/drainflow/network"
	"github.com/katalvlaran/drainflow/qubo"
	"github.com/katalvlaran/drainflow/solver"
)

// scenarioProgram builds the canonical A→B program: capacity 4, risk 0.2,
// pipe 3, bits=2 — the discrete optimum saturates the pipe at flow 3.
func scenarioProgram(t *testing.T) (*qubo.Program, *qubo.VarMap, network.Edge) {
	t.Helper()
	ab := network.Edge{From: "A", To: "B"}
	net, err := network.New([]network.Edge{ab}, network.Attributes{
		NodeCapacity: map[string]float64{"A": 4, "B": 4},
		NodeRisk:     map[string]float64{"A": 0.2, "B": 0.2},
		PipeCapacity: map[network.Edge]float64{ab: 3},
		EnergyCost:   map[network.Edge]float64{ab: 1},
	})
	require.NoError(t, err)

	opts := qubo.DefaultBuildOptions()
	opts.BitsPerEdge = 2
	prog, vm, err := qubo.Build(net, opts)
	require.NoError(t, err)
	return prog, vm, ab
}

// ExactSuite exercises the exhaustive solver.
type ExactSuite struct {
	suite.Suite
}

// TestFindsGlobalOptimum verifies the scenario optimum: flow 3 and the
// hand-computed objective 269.3.
func (s *ExactSuite) TestFindsGlobalOptimum() {
	prog, vm, ab := scenarioProgram(s.T())
	exact := solver.NewExact(solver.DefaultOptions())

	sol, err := exact.Solve(context.Background(), prog)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 269.3, sol.Objective, 1e-6)

	flows, err := qubo.Flows(sol, vm)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, flows[ab])
}

// TestAssignmentKeysAreCanonical verifies solutions are keyed by the
// original variable names, complete over every variable.
func (s *ExactSuite) TestAssignmentKeysAreCanonical() {
	prog, _, _ := scenarioProgram(s.T())
	exact := solver.NewExact(solver.DefaultOptions())

	sol, err := exact.Solve(context.Background(), prog)
	require.NoError(s.T(), err)
	require.Len(s.T(), sol.Assignment, 2)
	require.Contains(s.T(), sol.Assignment, "x_A_B_0")
	require.Contains(s.T(), sol.Assignment, "x_A_B_1")
}

// TestDeterministic verifies two runs agree exactly.
func (s *ExactSuite) TestDeterministic() {
	prog, _, _ := scenarioProgram(s.T())
	exact := solver.NewExact(solver.DefaultOptions())

	a, err := exact.Solve(context.Background(), prog)
	require.NoError(s.T(), err)
	b, err := exact.Solve(context.Background(), prog)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a.Objective, b.Objective)
	require.Equal(s.T(), a.Assignment, b.Assignment)
}

// TestTooManyVariables verifies the variable-count guard fires before any
// enumeration.
func (s *ExactSuite) TestTooManyVariables() {
	prog, _, _ := scenarioProgram(s.T()) // 2 variables
	opts := solver.DefaultOptions()
	opts.MaxExactVars = 1
	exact := solver.NewExact(opts)

	_, err := exact.Solve(context.Background(), prog)
	require.ErrorIs(s.T(), err, solver.ErrTooManyVariables)
}

// TestNilProgram verifies the precondition.
func (s *ExactSuite) TestNilProgram() {
	exact := solver.NewExact(solver.DefaultOptions())
	_, err := exact.Solve(context.Background(), nil)
	require.ErrorIs(s.T(), err, solver.ErrProgramNil)
}

// TestCancellation verifies a canceled context aborts with its error,
// unmodified and with no solution.
func (s *ExactSuite) TestCancellation() {
	prog, _, _ := scenarioProgram(s.T())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exact := solver.NewExact(solver.DefaultOptions())
	sol, err := exact.Solve(ctx, prog)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Nil(s.T(), sol)
}

// TestStrategySelection verifies explicit construction by name and the
// unknown-name failure.
func (s *ExactSuite) TestStrategySelection() {
	sv, err := solver.New(solver.StrategyExact, solver.DefaultOptions())
	require.NoError(s.T(), err)
	require.IsType(s.T(), &solver.Exact{}, sv)

	sv, err = solver.New(solver.StrategyAnneal, solver.DefaultOptions())
	require.NoError(s.T(), err)
	require.IsType(s.T(), &solver.Annealer{}, sv)

	_, err = solver.New("tabu", solver.DefaultOptions())
	require.ErrorIs(s.T(), err, solver.ErrUnknownStrategy)
	require.Contains(s.T(), err.Error(), "tabu")
}

func TestExactSuite(t *testing.T) {
	suite.Run(t, new(ExactSuite))
}
