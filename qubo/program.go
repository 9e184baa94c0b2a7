package qubo

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Program is the Quadratic Binary Program: an ordered variable set and one
// scalar quadratic objective to minimize. It owns no other state; Build
// produces it once and it is immutable thereafter.
//
// Internal convention: for assignment vector x ∈ {0,1}ⁿ,
//
//	E(x) = offset + linᵀx + xᵀQx
//
// with Q symmetric and zero-diagonal, so a product term a·x_i·x_j (i≠j) is
// stored as Q_ij = Q_ji = a/2, and squared terms fold into lin because
// x² = x for binary x. This keeps evaluation a plain mat.Dot + mat.Inner.
type Program struct {
	name   string
	names  []string
	lin    *mat.VecDense
	quad   *mat.SymDense
	offset float64
}

// newProgram allocates a zeroed program over the given variable names.
func newProgram(name string, varNames []string) *Program {
	p := &Program{name: name, names: varNames}
	if n := len(varNames); n > 0 {
		p.lin = mat.NewVecDense(n, nil)
		p.quad = mat.NewSymDense(n, nil)
	}
	return p
}

// addLinear accumulates a linear coefficient onto variable i.
func (p *Program) addLinear(i int, coeff float64) {
	p.lin.SetVec(i, p.lin.AtVec(i)+coeff)
}

// addPair accumulates a product coefficient onto the unordered pair {i,j},
// i ≠ j. Stored halved per the symmetric-matrix convention.
func (p *Program) addPair(i, j int, coeff float64) {
	p.quad.SetSym(i, j, p.quad.At(i, j)+coeff/2)
}

// addOffset accumulates a constant objective term.
func (p *Program) addOffset(c float64) { p.offset += c }

// Name returns the program label used in LP export.
func (p *Program) Name() string { return p.name }

// NumVars returns the variable count.
func (p *Program) NumVars() int { return len(p.names) }

// VarNames returns the variable names in creation order. The slice is a copy.
func (p *Program) VarNames() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Offset returns the constant objective term.
func (p *Program) Offset() float64 { return p.offset }

// Linear returns the linear coefficient of variable i.
func (p *Program) Linear(i int) float64 { return p.lin.AtVec(i) }

// Pair returns the full product coefficient of x_i·x_j (i ≠ j); the stored
// half-coefficients on both triangle halves sum back to it.
func (p *Program) Pair(i, j int) float64 { return 2 * p.quad.At(i, j) }

// Evaluate computes the objective for a complete assignment in variable
// creation order. Values are used as-is; binary validation belongs to the
// reconstruction layer.
//
// Complexity: Time O(n²) via the dense quadratic form, Space O(1) beyond
// the wrapped input.
func (p *Program) Evaluate(x []float64) (float64, error) {
	n := len(p.names)
	if len(x) != n {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x), n)
	}
	if n == 0 {
		return p.offset, nil
	}
	v := mat.NewVecDense(n, x)
	return p.offset + mat.Dot(p.lin, v) + mat.Inner(v, p.quad, v), nil
}

// FlipDelta returns the objective change from flipping variable i in the
// assignment x, without mutating x. Solvers use it for incremental search:
//
//	E(x with x_i flipped) − E(x) = s·(lin_i + 2·Σ_j Q_ij·x_j),  s = 1−2x_i
//
// The diagonal of Q is zero, so the sum may run over all j.
//
// Complexity: Time O(n), Space O(1).
func (p *Program) FlipDelta(x []float64, i int) float64 {
	s := 1 - 2*x[i]
	delta := p.lin.AtVec(i)
	for j := range x {
		if x[j] != 0 {
			delta += 2 * p.quad.At(i, j) * x[j]
		}
	}
	return s * delta
}
