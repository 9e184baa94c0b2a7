package qubo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/drainflow/network"
)

// binaryTolerance is how far an assignment value may sit from an exact
// integer before it is treated as an optimizer contract violation.
const binaryTolerance = 1e-6

// Flows maps a binary solution back to physical conduit flows: for every
// digit variable assigned 1, its weight is added to its conduit's total.
// Conduits with no digit set are absent from the returned map.
//
// Name resolution rule (deterministic, by design): name-based lookup is
// authoritative. The positional fallback — assignment keys "x<N>" read as
// ordinals into VarMap creation order — applies only when not a single
// assignment key matches the VarMap, which is how backends that erase
// variable names report solutions. Mixing is never attempted.
//
// Anomalies fail loudly: a value that does not round to exactly 0 or 1
// within tolerance returns *NonBinaryValueError (wrapping ErrNotBinary),
// and a mapped variable with no value returns ErrIncompleteSolution. In
// name mode, surplus assignment keys are ignored — converters may add
// slack variables the map knows nothing about. In positional mode a key
// that is not a valid ordinal returns ErrUnknownVariable, since there is
// no way to tell which program the assignment belongs to. No partial flow
// map is returned on any error.
//
// Reconstruction is pure: the same Solution and VarMap always produce the
// same flow map.
//
// Complexity: Time O(n) for n mapped variables, Space O(E).
func Flows(sol *Solution, vm *VarMap) (map[network.Edge]float64, error) {
	if sol == nil {
		return nil, ErrSolutionNil
	}
	if vm == nil {
		return nil, ErrVarMapNil
	}

	if named(sol, vm) {
		return flowsByName(sol, vm)
	}
	return flowsByPosition(sol, vm)
}

// named reports whether any assignment key matches a mapped variable name.
func named(sol *Solution, vm *VarMap) bool {
	for name := range sol.Assignment {
		if _, ok := vm.Lookup(name); ok {
			return true
		}
	}
	return false
}

// flowsByName resolves every mapped variable by its original name,
// iterating in VarMap creation order for deterministic error reporting.
func flowsByName(sol *Solution, vm *VarMap) (map[network.Edge]float64, error) {
	flows := make(map[network.Edge]float64)
	for i := 0; i < vm.Len(); i++ {
		name, dv := vm.At(i)
		value, ok := sol.Assignment[name]
		if !ok {
			return nil, fmt.Errorf("%w: no value for %q", ErrIncompleteSolution, name)
		}
		set, err := binaryValue(name, value)
		if err != nil {
			return nil, err
		}
		if set {
			flows[dv.Edge] += dv.Weight
		}
	}
	return flows, nil
}

// flowsByPosition resolves anonymous "x<N>" keys as ordinals into VarMap
// creation order. Every key must parse and stay in range.
func flowsByPosition(sol *Solution, vm *VarMap) (map[network.Edge]float64, error) {
	flows := make(map[network.Edge]float64)
	seen := 0
	for i := 0; i < vm.Len(); i++ {
		name, dv := vm.At(i)
		value, ok := sol.Assignment["x"+strconv.Itoa(i)]
		if !ok {
			return nil, fmt.Errorf("%w: no value for %q (ordinal %d)",
				ErrIncompleteSolution, name, i)
		}
		seen++
		set, err := binaryValue(name, value)
		if err != nil {
			return nil, err
		}
		if set {
			flows[dv.Edge] += dv.Weight
		}
	}
	// Surplus keys mean the assignment belongs to a different program.
	if len(sol.Assignment) > seen {
		for key := range sol.Assignment {
			if !ordinalKey(key, vm.Len()) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, key)
			}
		}
	}
	return flows, nil
}

// ordinalKey reports whether key has the form "x<N>" with 0 ≤ N < n.
func ordinalKey(key string, n int) bool {
	rest, ok := strings.CutPrefix(key, "x")
	if !ok || rest == "" {
		return false
	}
	idx, err := strconv.Atoi(rest)
	return err == nil && idx >= 0 && idx < n
}

// binaryValue rounds value to the nearest integer and reports whether the
// digit is set. Values outside tolerance of {0,1} violate the optimizer
// contract.
func binaryValue(name string, value float64) (bool, error) {
	rounded := math.Round(value)
	if math.Abs(value-rounded) > binaryTolerance || (rounded != 0 && rounded != 1) {
		return false, &NonBinaryValueError{Name: name, Value: value}
	}
	return rounded == 1, nil
}
