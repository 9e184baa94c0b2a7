package qubo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/drainflow/network"
)

// Sentinel errors for building and reconstruction.
var (
	// ErrNetworkNil indicates a nil *network.Network was passed to Build.
	ErrNetworkNil = errors.New("qubo: network is nil")

	// ErrBadBits indicates BitsPerEdge ≤ 0.
	ErrBadBits = errors.New("qubo: bits per edge must be positive")

	// ErrBadQuantum indicates FlowQuantum ≤ 0.
	ErrBadQuantum = errors.New("qubo: flow quantum must be positive")

	// ErrBadPenalty indicates a negative penalty weight.
	ErrBadPenalty = errors.New("qubo: penalty weight must be non-negative")

	// ErrSolutionNil indicates a nil *Solution was passed to Flows.
	ErrSolutionNil = errors.New("qubo: solution is nil")

	// ErrVarMapNil indicates a nil *VarMap was passed to Flows.
	ErrVarMapNil = errors.New("qubo: variable map is nil")

	// ErrUnknownVariable indicates an assignment key that matches neither a
	// mapped variable name nor the positional "x<N>" scheme.
	ErrUnknownVariable = errors.New("qubo: unknown variable in solution")

	// ErrIncompleteSolution indicates the assignment lacks a value for a
	// mapped variable; optimizers must return complete 0/1 assignments.
	ErrIncompleteSolution = errors.New("qubo: incomplete solution")

	// ErrNotBinary indicates an assignment value outside rounding tolerance
	// of 0 or 1. Always carried by a *NonBinaryValueError.
	ErrNotBinary = errors.New("qubo: assignment value is not binary")

	// ErrDimensionMismatch indicates an evaluation vector whose length does
	// not equal the program's variable count.
	ErrDimensionMismatch = errors.New("qubo: assignment length mismatch")
)

// NonBinaryValueError reports the variable whose assigned value violates
// the 0/1 contract. It wraps ErrNotBinary.
type NonBinaryValueError struct {
	Name  string
	Value float64
}

// Error names the variable and its offending value.
func (e *NonBinaryValueError) Error() string {
	return fmt.Sprintf("qubo: variable %q has non-binary value %g", e.Name, e.Value)
}

// Unwrap lets errors.Is(err, ErrNotBinary) match.
func (e *NonBinaryValueError) Unwrap() error { return ErrNotBinary }

// DigitVar ties one binary unknown to its place in the fixed-point flow
// encoding: bit Bit of edge Edge, with physical weight FlowQuantum·2^Bit.
type DigitVar struct {
	Edge   network.Edge
	Bit    int
	Weight float64
}

// VarMap is the ordered bridge from variable names back to domain identity.
// Insertion order matches digit-variable creation order exactly, which is
// what makes the positional reconstruction fallback sound.
type VarMap struct {
	names []string
	vars  map[string]DigitVar
}

// newVarMap pre-sizes an empty map for n variables.
func newVarMap(n int) *VarMap {
	return &VarMap{
		names: make([]string, 0, n),
		vars:  make(map[string]DigitVar, n),
	}
}

// add appends a variable; creation order is preserved.
func (m *VarMap) add(name string, v DigitVar) {
	m.names = append(m.names, name)
	m.vars[name] = v
}

// Len returns the number of mapped variables.
func (m *VarMap) Len() int { return len(m.names) }

// Names returns the variable names in creation order. The slice is a copy.
func (m *VarMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// At returns the i-th variable in creation order.
func (m *VarMap) At(i int) (string, DigitVar) {
	name := m.names[i]
	return name, m.vars[name]
}

// Lookup resolves a variable by name.
func (m *VarMap) Lookup(name string) (DigitVar, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Solution is one assignment returned by a binary optimizer: a 0/1 value
// per variable plus the achieved objective. Ephemeral — produced per solve
// call and consumed immediately by Flows.
type Solution struct {
	// Assignment maps variable name → assigned value. Names are either the
	// canonical "x_<from>_<to>_<bit>" names or a backend's positional
	// "x<N>" scheme; Flows handles both.
	Assignment map[string]float64

	// Objective is the achieved objective value, not guaranteed optimal.
	Objective float64
}
