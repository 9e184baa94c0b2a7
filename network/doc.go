// Package network defines the drainage-network graph model consumed by the
// QUBO builder: directed conduits between junction nodes, per-node capacity
// and risk, per-conduit pipe capacity and energy cost.
//
// # Construction
//
// A Network is built in one shot from an ordered edge list plus attribute
// maps, mirroring how problem descriptions arrive on the wire:
//
//	net, err := network.New(edges, network.Attributes{
//	    NodeCapacity: ..., NodeRisk: ...,
//	    PipeCapacity: ..., EnergyCost: ...,
//	})
//
// New validates everything up front: every node implied by an edge endpoint
// must carry a capacity and a risk entry, and every edge must carry a pipe
// capacity and an energy cost. A violation is a construction-time error —
// New returns a *MissingAttributeError naming the offending identifiers and
// no partially populated Network is ever handed out. Value-range violations
// (negative capacities, risk outside [0,1]) are likewise rejected.
//
// # Determinism
//
// Conduit iteration preserves the insertion order of the edge list; this
// order is load-bearing downstream, because digit-variable creation in the
// qubo package follows it. Node iteration (NodeIDs, and the per-node
// penalty loops built on it) is sorted by ID ascending.
//
// # Errors
//
//	ErrMissingAttribute    - an endpoint or edge lacks a required attribute
//	                         (always wrapped by *MissingAttributeError).
//	ErrEmptyNodeID         - an edge endpoint is the empty string.
//	ErrDuplicateEdge       - the edge list repeats a (from,to) pair.
//	ErrNegativeCapacity    - a node or pipe capacity is negative.
//	ErrRiskOutOfRange      - a node risk is outside [0,1].
//	ErrNodeNotFound        - lookup of an unknown node ID.
//	ErrEdgeNotFound        - lookup of an unknown (from,to) pair.
//
// The model is immutable after New returns and safe for concurrent reads.
package network
