// Package solver defines the binary-optimizer contract consumed by the
// drainflow core and ships two interchangeable implementations behind it:
//
//   - Exact    — deterministic exhaustive minimization over all 2ⁿ
//     assignments via Gray-code incremental evaluation; the global
//     optimum, practical for small variable counts only.
//   - Annealer — simulated annealing with a geometric inverse-temperature
//     schedule and restarts; approximate, seedable, scales to larger
//     instances.
//
// Strategy selection is explicit caller configuration:
//
//	s, err := solver.New(solver.StrategyAnneal, solver.DefaultOptions())
//	sol, err := s.Solve(ctx, prog)
//
// The core is strategy-agnostic by contract: callers must not assume the
// returned assignment is globally optimal (the annealer gives no such
// guarantee), must not assume determinism beyond what a fixed Seed buys,
// and must treat "no improvement found" as a valid outcome. Cancellation
// is the caller's context; a solver aborted mid-search returns the
// context's error unmodified with no solution, and never retries or falls
// back to another strategy on its own.
//
// Errors:
//
//	ErrUnknownStrategy  - New was given a strategy name it does not know.
//	ErrProgramNil       - Solve was given a nil program.
//	ErrTooManyVariables - the exact solver refuses instances above
//	                      MaxExactVars (default 24) rather than burn 2ⁿ.
package solver
