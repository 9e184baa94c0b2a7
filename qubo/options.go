package qubo

import "fmt"

// Defaults for BuildOptions — single source of truth, mirrored by
// DefaultBuildOptions.
const (
	// DefaultBitsPerEdge is the digit count per conduit; 3 bits give a
	// reconstructable range of [0, 7·FlowQuantum].
	DefaultBitsPerEdge = 3

	// DefaultFlowQuantum is the physical value of the least-significant
	// digit variable.
	DefaultFlowQuantum = 1.0

	// DefaultLambda is the risk-weighting coefficient λ in the reward term.
	DefaultLambda = 0.5

	// DefaultPenaltyNode weights the squared node-capacity penalties.
	DefaultPenaltyNode = 8.0

	// DefaultPenaltyPipe weights the squared pipe-capacity penalty.
	DefaultPenaltyPipe = 8.0

	// DefaultPenaltyEnergy weights the squared energy-budget penalty.
	DefaultPenaltyEnergy = 8.0

	// DefaultProgramName labels the exported LP model.
	DefaultProgramName = "risk_aware_drainage"
)

// BuildOptions tunes the QUBO assembly. Use DefaultBuildOptions and adjust;
// the zero value fails validation (bits and quantum must be positive).
//
// Tuning lives in this explicit structure rather than package-level state,
// so repeated or concurrent builds with different weights never interfere.
type BuildOptions struct {
	// BitsPerEdge is the number of digit variables per conduit (> 0).
	BitsPerEdge int

	// FlowQuantum is the flow represented by the least-significant digit (> 0).
	FlowQuantum float64

	// Lambda scales how strongly endpoint risk discounts the flow reward.
	Lambda float64

	// PenaltyNode, PenaltyPipe and PenaltyEnergy weight the three squared
	// penalty families (each ≥ 0).
	PenaltyNode   float64
	PenaltyPipe   float64
	PenaltyEnergy float64

	// EnergyBudget, when non-nil, enables the global energy penalty pulling
	// Σ cost·flow toward the budget.
	EnergyBudget *float64

	// Name labels the program in LP export; empty means DefaultProgramName.
	Name string
}

// DefaultBuildOptions returns the documented defaults with no energy budget.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		BitsPerEdge:   DefaultBitsPerEdge,
		FlowQuantum:   DefaultFlowQuantum,
		Lambda:        DefaultLambda,
		PenaltyNode:   DefaultPenaltyNode,
		PenaltyPipe:   DefaultPenaltyPipe,
		PenaltyEnergy: DefaultPenaltyEnergy,
		Name:          DefaultProgramName,
	}
}

// WithEnergyBudget returns a copy of o with the energy budget set.
func (o BuildOptions) WithEnergyBudget(budget float64) BuildOptions {
	o.EnergyBudget = &budget
	return o
}

// validate rejects configurations the builder cannot honor. Called by Build
// before any variable is created.
func (o *BuildOptions) validate() error {
	if o.BitsPerEdge <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadBits, o.BitsPerEdge)
	}
	if o.FlowQuantum <= 0 {
		return fmt.Errorf("%w: got %g", ErrBadQuantum, o.FlowQuantum)
	}
	if o.PenaltyNode < 0 || o.PenaltyPipe < 0 || o.PenaltyEnergy < 0 {
		return fmt.Errorf("%w: node=%g pipe=%g energy=%g",
			ErrBadPenalty, o.PenaltyNode, o.PenaltyPipe, o.PenaltyEnergy)
	}
	if o.Name == "" {
		o.Name = DefaultProgramName
	}
	return nil
}
