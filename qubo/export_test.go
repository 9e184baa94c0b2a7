package qubo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/drainflow/qubo"
)

// TestExportLPStructure verifies the LP rendering carries the objective,
// the quadratic bracket and the binary declarations.
func TestExportLPStructure(t *testing.T) {
	opts := qubo.DefaultBuildOptions()
	opts.BitsPerEdge = 2
	prog, _, err := qubo.Build(singleEdgeNet(t), opts)
	require.NoError(t, err)

	lp := prog.ExportLP()
	require.True(t, strings.HasPrefix(lp, "\\ Model: risk_aware_drainage\n"))
	require.Contains(t, lp, "Minimize\n obj:")
	require.Contains(t, lp, "x_A_B_0*x_A_B_1")
	require.Contains(t, lp, "] / 2")
	require.Contains(t, lp, "Binaries\n x_A_B_0 x_A_B_1\n")
	require.True(t, strings.HasSuffix(lp, "End\n"))

	// The doubled-coefficient convention: Pair(0,1)=96 appears as 192.
	require.Contains(t, lp, "[ 192 x_A_B_0*x_A_B_1 ] / 2")
}

// TestExportLPDeterministic verifies repeated export is byte-identical.
func TestExportLPDeterministic(t *testing.T) {
	prog, _, err := qubo.Build(singleEdgeNet(t), qubo.DefaultBuildOptions())
	require.NoError(t, err)
	require.Equal(t, prog.ExportLP(), prog.ExportLP())
}

// TestWriteLP verifies the writer path emits the same bytes.
func TestWriteLP(t *testing.T) {
	prog, _, err := qubo.Build(singleEdgeNet(t), qubo.DefaultBuildOptions())
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, prog.WriteLP(&b))
	require.Equal(t, prog.ExportLP(), b.String())
}

// TestExportLPCustomName verifies the model label follows BuildOptions.Name.
func TestExportLPCustomName(t *testing.T) {
	opts := qubo.DefaultBuildOptions()
	opts.Name = "storm_basin_west"
	prog, _, err := qubo.Build(singleEdgeNet(t), opts)
	require.NoError(t, err)
	require.Contains(t, prog.ExportLP(), "\\ Model: storm_basin_west\n")
}
