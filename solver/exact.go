package solver

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/drainflow/qubo"
)

// exactCancelStride is how many assignments are visited between context
// checks during exhaustive enumeration.
const exactCancelStride = 1 << 12

// Exact is the deterministic global minimizer: it visits every assignment
// and keeps the first one achieving the minimum objective. Construct via
// NewExact or solver.New(StrategyExact, ...).
type Exact struct {
	opts Options
}

// NewExact returns an exhaustive solver with normalized options.
func NewExact(opts Options) *Exact {
	opts.normalize()
	return &Exact{opts: opts}
}

// Solve enumerates all 2ⁿ assignments in Gray-code order, so consecutive
// assignments differ in exactly one variable and the objective updates in
// O(n) via FlipDelta instead of O(n²) re-evaluation.
//
// Steps:
//  1. Guard: nil program; n > MaxExactVars ⇒ ErrTooManyVariables (O(1)).
//  2. Start from the all-zeros assignment, objective = constant offset.
//  3. For step = 1..2ⁿ−1: flip variable trailing_zeros(step), fold the
//     delta into the running objective, track the best (checking ctx
//     every exactCancelStride steps).
//  4. Emit the best assignment keyed by canonical variable names.
//
// Deterministic: same program ⇒ same solution; ties keep the assignment
// found first in enumeration order.
//
// Complexity: Time O(2ⁿ·n), Space O(n).
func (e *Exact) Solve(ctx context.Context, prog *qubo.Program) (*qubo.Solution, error) {
	if prog == nil {
		return nil, ErrProgramNil
	}
	n := prog.NumVars()
	if n > e.opts.MaxExactVars {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVariables, n, e.opts.MaxExactVars)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	x := make([]float64, n)
	energy, err := prog.Evaluate(x)
	if err != nil {
		return nil, err
	}
	best := energy
	bestX := make([]float64, n)

	total := uint64(1) << uint(n)
	for step := uint64(1); step < total; step++ {
		if step%exactCancelStride == 0 {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
		}
		i := bits.TrailingZeros64(step)
		energy += prog.FlipDelta(x, i)
		x[i] = 1 - x[i]
		if energy < best {
			best = energy
			copy(bestX, x)
		}
	}

	names := prog.VarNames()
	assignment := make(map[string]float64, n)
	for i, name := range names {
		assignment[name] = bestX[i]
	}
	return &qubo.Solution{Assignment: assignment, Objective: best}, nil
}
