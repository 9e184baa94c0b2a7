package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/drainflow/qubo"
)

// Sentinel errors for solver construction and execution.
var (
	// ErrUnknownStrategy indicates an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("solver: unknown strategy")

	// ErrProgramNil indicates Solve received a nil program.
	ErrProgramNil = errors.New("solver: program is nil")

	// ErrTooManyVariables indicates the exact solver refused an instance
	// larger than Options.MaxExactVars.
	ErrTooManyVariables = errors.New("solver: too many variables for exhaustive search")
)

// Strategy names a solver implementation for explicit selection via New.
type Strategy string

const (
	// StrategyExact selects deterministic exhaustive minimization.
	StrategyExact Strategy = "exact"

	// StrategyAnneal selects simulated annealing.
	StrategyAnneal Strategy = "anneal"
)

// Solver is the binary-optimizer capability: consume a quadratic binary
// program, return a complete 0/1 assignment plus the achieved objective.
// Implementations must honor ctx and surface its error unmodified.
type Solver interface {
	Solve(ctx context.Context, prog *qubo.Program) (*qubo.Solution, error)
}

// Defaults for Options — single source of truth, mirrored by DefaultOptions.
const (
	// DefaultMaxExactVars caps exhaustive search at 2^24 evaluations.
	DefaultMaxExactVars = 24

	// DefaultSweeps is the number of full-variable sweeps per restart.
	DefaultSweeps = 1000

	// DefaultRestarts is the number of independent annealing runs.
	DefaultRestarts = 8

	// DefaultBetaMin and DefaultBetaMax bound the geometric
	// inverse-temperature schedule (hot → cold).
	DefaultBetaMin = 0.1
	DefaultBetaMax = 10.0
)

// Options configures both strategies; each reads only the fields it needs.
// The zero value is normalized to the documented defaults, so Options{} is
// usable as-is. Seed 0 is a real seed — runs are reproducible by default,
// set a different Seed for a different stream.
type Options struct {
	// Seed feeds the annealer's RNG; the exact solver ignores it.
	Seed int64

	// Sweeps and Restarts size the annealing search.
	Sweeps   int
	Restarts int

	// BetaMin and BetaMax bound the annealing schedule.
	BetaMin float64
	BetaMax float64

	// MaxExactVars caps the exact solver's variable count.
	MaxExactVars int

	// Verbose prints per-restart progress to stdout.
	Verbose bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Sweeps:       DefaultSweeps,
		Restarts:     DefaultRestarts,
		BetaMin:      DefaultBetaMin,
		BetaMax:      DefaultBetaMax,
		MaxExactVars: DefaultMaxExactVars,
	}
}

// normalize fills unset (zero or negative) fields with defaults.
func (o *Options) normalize() {
	if o.Sweeps <= 0 {
		o.Sweeps = DefaultSweeps
	}
	if o.Restarts <= 0 {
		o.Restarts = DefaultRestarts
	}
	if o.BetaMin <= 0 {
		o.BetaMin = DefaultBetaMin
	}
	if o.BetaMax <= 0 {
		o.BetaMax = DefaultBetaMax
	}
	if o.MaxExactVars <= 0 {
		o.MaxExactVars = DefaultMaxExactVars
	}
}

// New constructs the solver named by strategy. Unknown names fail before
// any solving with ErrUnknownStrategy.
func New(strategy Strategy, opts Options) (Solver, error) {
	switch strategy {
	case StrategyExact:
		return NewExact(opts), nil
	case StrategyAnneal:
		return NewAnnealer(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
