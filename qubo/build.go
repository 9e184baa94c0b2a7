package qubo

import (
	"fmt"

	"github.com/katalvlaran/drainflow/network"
)

// Build assembles the Quadratic Binary Program and its VarMap for a
// validated drainage network.
//
// Steps:
//  1. Validate inputs: nil network, option ranges (O(1)). Build fails here
//     before any variable is created — partial programs are never returned.
//  2. Discretize: for each conduit in insertion order, create BitsPerEdge
//     digit variables named "x_<from>_<to>_<k>" with weight
//     FlowQuantum·2^k, recording each in the VarMap in creation order
//     (O(E·b), b = BitsPerEdge).
//  3. Reward: subtract (1 − 0.5·λ·(risk[u]+risk[v]))·flow(e) per conduit —
//     flow through safer endpoints is rewarded more (O(E·b)).
//  4. Node penalties: per node, add PenaltyNode·(inflow−cap)² and
//     PenaltyNode·(outflow−cap)², nodes iterated in sorted ID order
//     (O(V + Σ deg²·b²)).
//  5. Pipe penalties: per conduit, add PenaltyPipe·(flow−pipe_cap)² (O(E·b²)).
//  6. Energy penalty, only when a budget is set: add
//     PenaltyEnergy·(Σ cost·flow − budget)² over all variables (O((E·b)²)).
//
// All penalties are symmetric squared terms; see the package comment for
// why the two-sided shape is load-bearing.
//
// Complexity: Time O((E·b)²) worst case (energy term), Space O((E·b)²) for
// the dense quadratic form.
func Build(net *network.Network, opts BuildOptions) (*Program, *VarMap, error) {
	// 1) Fail-fast validation, before any variable exists.
	if net == nil {
		return nil, nil, ErrNetworkNil
	}
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	conduits := net.Conduits()
	b := opts.BitsPerEdge

	// 2) Digit variables, conduit insertion order × ascending bit index.
	// The VarMap is filled in lock-step: its iteration order is the only
	// bridge back to domain semantics for positional solver backends.
	vm := newVarMap(len(conduits) * b)
	index := make(map[network.Edge][]int, len(conduits)) // edge → var indices
	names := make([]string, 0, len(conduits)*b)
	for _, c := range conduits {
		idxs := make([]int, b)
		for k := 0; k < b; k++ {
			name := fmt.Sprintf("x_%s_%s_%d", c.From, c.To, k)
			idxs[k] = len(names)
			names = append(names, name)
			vm.add(name, DigitVar{
				Edge:   c.Edge,
				Bit:    k,
				Weight: opts.FlowQuantum * float64(int64(1)<<k),
			})
		}
		index[c.Edge] = idxs
	}
	prog := newProgram(opts.Name, names)

	// unit[k] is the physical weight of bit k, shared by every conduit.
	unit := make([]float64, b)
	for k := 0; k < b; k++ {
		unit[k] = opts.FlowQuantum * float64(int64(1)<<k)
	}

	// 3) Risk-weighted reward.
	for _, c := range conduits {
		u, _ := net.Node(c.From)
		v, _ := net.Node(c.To)
		reward := 1 - 0.5*opts.Lambda*(u.Risk+v.Risk)
		for k, i := range index[c.Edge] {
			prog.addLinear(i, -reward*unit[k])
		}
	}

	// 4) Node capacity penalties: inflow and outflow bounded separately.
	for _, id := range net.NodeIDs() {
		node, _ := net.Node(id)
		addSquaredPenalty(prog, gather(index, net.Incoming(id), unit), node.Capacity, opts.PenaltyNode)
		addSquaredPenalty(prog, gather(index, net.Outgoing(id), unit), node.Capacity, opts.PenaltyNode)
	}

	// 5) Pipe capacity penalties.
	for _, c := range conduits {
		terms := make([]weightedVar, b)
		for k, i := range index[c.Edge] {
			terms[k] = weightedVar{idx: i, w: unit[k]}
		}
		addSquaredPenalty(prog, terms, c.PipeCapacity, opts.PenaltyPipe)
	}

	// 6) Optional global energy budget.
	if opts.EnergyBudget != nil {
		var terms []weightedVar
		for _, c := range conduits {
			for k, i := range index[c.Edge] {
				terms = append(terms, weightedVar{idx: i, w: c.EnergyCost * unit[k]})
			}
		}
		addSquaredPenalty(prog, terms, *opts.EnergyBudget, opts.PenaltyEnergy)
	}

	return prog, vm, nil
}

// weightedVar is one variable with its coefficient inside a penalty sum.
type weightedVar struct {
	idx int
	w   float64
}

// gather flattens the digit variables of several conduits into one weighted
// term list, e.g. all inflow digits of a node.
func gather(index map[network.Edge][]int, conduits []network.Conduit, unit []float64) []weightedVar {
	var terms []weightedVar
	for _, c := range conduits {
		for k, i := range index[c.Edge] {
			terms = append(terms, weightedVar{idx: i, w: unit[k]})
		}
	}
	return terms
}

// addSquaredPenalty expands p·(Σ w_k·x_k − target)² into the program.
//
// For binary x the expansion is
//
//	p·target²                            → offset
//	p·(w_k² − 2·target·w_k)·x_k          → linear (x² = x folds the square)
//	2·p·w_k·w_l·x_k·x_l  (k < l)         → pairwise
//
// An empty term list still contributes the constant p·target², keeping
// reported objectives comparable across configurations; a zero penalty
// weight is a no-op.
func addSquaredPenalty(p *Program, terms []weightedVar, target, penalty float64) {
	if penalty == 0 {
		return
	}
	p.addOffset(penalty * target * target)
	for k, tk := range terms {
		p.addLinear(tk.idx, penalty*(tk.w*tk.w-2*target*tk.w))
		for _, tl := range terms[k+1:] {
			p.addPair(tk.idx, tl.idx, 2*penalty*tk.w*tl.w)
		}
	}
}
