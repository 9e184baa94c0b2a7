package solver

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/drainflow/qubo"
)

// Annealer is the approximate minimizer: Metropolis single-flip simulated
// annealing under a geometric inverse-temperature schedule, restarted from
// independent random assignments. Construct via NewAnnealer or
// solver.New(StrategyAnneal, ...).
type Annealer struct {
	opts Options
}

// NewAnnealer returns an annealing solver with normalized options.
func NewAnnealer(opts Options) *Annealer {
	opts.normalize()
	return &Annealer{opts: opts}
}

// Solve runs Restarts independent annealing passes and returns the best
// assignment seen anywhere, which is not guaranteed optimal.
//
// Steps:
//  1. Guard nil program; short-circuit n == 0 to the constant objective.
//  2. Per restart: draw a uniform random assignment, then for each of
//     Sweeps passes raise β geometrically from BetaMin to BetaMax and
//     offer a flip to every variable in order — accept when the delta is
//     non-positive, otherwise with probability exp(−β·delta).
//  3. Track the best (assignment, objective) across all restarts; check
//     ctx once per sweep and return its error unmodified on cancellation.
//
// Reproducible for a fixed Seed; restarts share one RNG stream.
//
// Complexity: Time O(Restarts·Sweeps·n²) (delta is O(n)), Space O(n).
func (a *Annealer) Solve(ctx context.Context, prog *qubo.Program) (*qubo.Solution, error) {
	if prog == nil {
		return nil, ErrProgramNil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := prog.NumVars()
	names := prog.VarNames()
	if n == 0 {
		return &qubo.Solution{
			Assignment: map[string]float64{},
			Objective:  prog.Offset(),
		}, nil
	}

	rng := rand.New(rand.NewSource(a.opts.Seed))
	betaRatio := a.opts.BetaMax / a.opts.BetaMin

	x := make([]float64, n)
	best := math.Inf(1)
	bestX := make([]float64, n)

	for restart := 0; restart < a.opts.Restarts; restart++ {
		for i := range x {
			x[i] = float64(rng.Intn(2))
		}
		energy, err := prog.Evaluate(x)
		if err != nil {
			return nil, err
		}
		if energy < best {
			best = energy
			copy(bestX, x)
		}

		for sweep := 0; sweep < a.opts.Sweeps; sweep++ {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			frac := 0.0
			if a.opts.Sweeps > 1 {
				frac = float64(sweep) / float64(a.opts.Sweeps-1)
			}
			beta := a.opts.BetaMin * math.Pow(betaRatio, frac)

			for i := 0; i < n; i++ {
				delta := prog.FlipDelta(x, i)
				if delta <= 0 || rng.Float64() < math.Exp(-beta*delta) {
					x[i] = 1 - x[i]
					energy += delta
					if energy < best {
						best = energy
						copy(bestX, x)
					}
				}
			}
		}
		if a.opts.Verbose {
			fmt.Printf("anneal: restart %d/%d, best objective %g\n",
				restart+1, a.opts.Restarts, best)
		}
	}

	assignment := make(map[string]float64, n)
	for i, name := range names {
		assignment[name] = bestX[i]
	}
	return &qubo.Solution{Assignment: assignment, Objective: best}, nil
}
