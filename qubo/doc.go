// Package qubo encodes a validated drainage network as a quadratic
// unconstrained binary optimization problem and maps binary solutions
// back to physical conduit flows.
//
// # Discretization
//
// Each conduit's continuous flow is represented by BitsPerEdge binary
// digit variables with weights FlowQuantum·2^k for k = 0..BitsPerEdge-1
// (an unsigned fixed-point encoding; the reconstructable range per edge
// is [0, FlowQuantum·(2^BitsPerEdge − 1)]). There is no sign bit: flows
// are non-negative and directionality lives in the conduit orientation.
// A physical flow that should exceed the range is a modeling error the
// caller avoids by raising BitsPerEdge or FlowQuantum.
//
// # Objective (minimization)
//
// Build assembles, over all digit variables x:
//
//	− Σ_e (1 − 0.5·λ·(risk[u]+risk[v])) · flow(e)          reward
//	+ p_node · Σ_n [(inflow(n) − cap[n])² + (outflow(n) − cap[n])²]
//	+ p_pipe · Σ_e (flow(e) − pipe_cap[e])²
//	+ p_energy · (Σ_e cost[e]·flow(e) − budget)²           if budget set
//
// where flow(e) = FlowQuantum·Σ_k 2^k·x[e,k]. All penalties are symmetric
// squared terms: under-shooting a capacity costs exactly as much as
// over-shooting it by the same margin. This two-sided shape is deliberate —
// one-sided inequalities are not expressible in an unconstrained quadratic
// binary objective without slack variables — and must not be replaced by a
// one-sided penalty, or solver outputs will diverge.
//
// # Variable order
//
// Digit variables are created per conduit in network insertion order, bit
// index ascending, and the VarMap records them in exactly that order. The
// order is significant: some optimizer backends erase variable names and
// report solutions positionally ("x0", "x1", …), and reconstruction then
// falls back to VarMap ordinal position.
//
// # Reconstruction
//
// Flows sums the weight of every digit variable assigned 1 into its
// conduit's total. Name-based lookup is authoritative; the positional
// "x<N>" path applies only when no assignment key matches the VarMap.
// Assignment values that do not round to exactly 0 or 1 within tolerance
// are a contract violation of the optimizer and fail loudly with
// *NonBinaryValueError. Conduits with no digit set are absent from the
// returned flow map (not present with value 0).
//
// # Errors
//
//	ErrNetworkNil, ErrBadBits, ErrBadQuantum, ErrBadPenalty — build config
//	ErrSolutionNil, ErrVarMapNil          — reconstruction preconditions
//	ErrUnknownVariable                    — assignment key matches neither
//	                                        the VarMap nor the "x<N>" scheme
//	ErrIncompleteSolution                 — a mapped variable has no value
//	ErrNotBinary (*NonBinaryValueError)   — value not ≈ 0/1 after rounding
//
// All transformations here are pure and synchronous; a Program and VarMap
// are built once, immutable thereafter, and safe for concurrent reads.
package qubo
