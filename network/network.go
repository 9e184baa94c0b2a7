package network

import (
	"fmt"
	"sort"
)

// Network is an immutable directed drainage graph: an ordered conduit list
// plus the resolved attributes of every junction the conduits touch.
//
// The zero value is not usable; construct via New.
type Network struct {
	conduits []Conduit
	nodes    map[string]Node
	index    map[Edge]int // edge → position in conduits
}

// New resolves an ordered edge list against its attribute maps and returns
// a fully validated Network.
//
// Steps:
//  1. Reject empty endpoint IDs and duplicate (from,to) pairs (O(E)).
//  2. Collect the node set implied by edge endpoints (O(E)).
//  3. Verify every node has a capacity and a risk entry, and every edge a
//     pipe capacity and an energy cost; any gap aborts construction with a
//     *MissingAttributeError naming all offending identifiers (O(V+E)).
//  4. Range-check values: capacities ≥ 0, risk ∈ [0,1] (O(V+E)).
//  5. Materialize conduits in input order and the node table (O(V+E)).
//
// No partially populated Network is ever returned.
//
// Complexity: Time O(V+E) amortized, Space O(V+E).
func New(edges []Edge, attrs Attributes) (*Network, error) {
	// 1) Structural checks on the edge list itself.
	index := make(map[Edge]int, len(edges))
	for i, e := range edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d", ErrEmptyNodeID, i)
		}
		if _, dup := index[e]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEdge, e)
		}
		index[e] = i
	}

	// 2) Node set implied by endpoints.
	nodeSet := make(map[string]struct{}, 2*len(edges))
	for _, e := range edges {
		nodeSet[e.From] = struct{}{}
		nodeSet[e.To] = struct{}{}
	}

	// 3) Attribute completeness, all gaps reported at once per attribute.
	var missing []string
	for id := range nodeSet {
		if _, ok := attrs.NodeCapacity[id]; !ok {
			missing = append(missing, id)
		}
	}
	if err := missingAttr("node_capacity", missing); err != nil {
		return nil, err
	}
	missing = nil
	for id := range nodeSet {
		if _, ok := attrs.NodeRisk[id]; !ok {
			missing = append(missing, id)
		}
	}
	if err := missingAttr("node_risk", missing); err != nil {
		return nil, err
	}
	missing = nil
	for _, e := range edges {
		if _, ok := attrs.PipeCapacity[e]; !ok {
			missing = append(missing, e.String())
		}
	}
	if err := missingAttr("pipe_capacity", missing); err != nil {
		return nil, err
	}
	missing = nil
	for _, e := range edges {
		if _, ok := attrs.EnergyCost[e]; !ok {
			missing = append(missing, e.String())
		}
	}
	if err := missingAttr("energy_cost", missing); err != nil {
		return nil, err
	}

	// 4) Value ranges.
	nodes := make(map[string]Node, len(nodeSet))
	for id := range nodeSet {
		c, r := attrs.NodeCapacity[id], attrs.NodeRisk[id]
		if c < 0 {
			return nil, fmt.Errorf("%w: node %q has capacity %g", ErrNegativeCapacity, id, c)
		}
		if r < 0 || r > 1 {
			return nil, fmt.Errorf("%w: node %q has risk %g", ErrRiskOutOfRange, id, r)
		}
		nodes[id] = Node{Capacity: c, Risk: r}
	}
	conduits := make([]Conduit, len(edges))
	for i, e := range edges {
		pc := attrs.PipeCapacity[e]
		if pc < 0 {
			return nil, fmt.Errorf("%w: edge %s has pipe capacity %g", ErrNegativeCapacity, e, pc)
		}
		conduits[i] = Conduit{Edge: e, PipeCapacity: pc, EnergyCost: attrs.EnergyCost[e]}
	}

	// 5) Assemble.
	return &Network{conduits: conduits, nodes: nodes, index: index}, nil
}

// Conduits returns the conduit list in edge-insertion order. The slice is a
// copy; mutating it does not affect the Network.
func (n *Network) Conduits() []Conduit {
	out := make([]Conduit, len(n.conduits))
	copy(out, n.conduits)
	return out
}

// NodeIDs returns every junction ID, sorted ascending for deterministic
// iteration.
func (n *Network) NodeIDs() []string {
	ids := make([]string, 0, len(n.nodes))
	for id := range n.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Node returns the attributes of the given junction, or ErrNodeNotFound.
func (n *Network) Node(id string) (Node, error) {
	node, ok := n.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return node, nil
}

// Conduit returns the conduit for the given directed pair, or ErrEdgeNotFound.
func (n *Network) Conduit(e Edge) (Conduit, error) {
	i, ok := n.index[e]
	if !ok {
		return Conduit{}, fmt.Errorf("%w: %s", ErrEdgeNotFound, e)
	}
	return n.conduits[i], nil
}

// HasNode reports whether the junction exists.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodes[id]
	return ok
}

// Incoming returns the conduits entering node id, in insertion order.
func (n *Network) Incoming(id string) []Conduit {
	var in []Conduit
	for _, c := range n.conduits {
		if c.To == id {
			in = append(in, c)
		}
	}
	return in
}

// Outgoing returns the conduits leaving node id, in insertion order.
func (n *Network) Outgoing(id string) []Conduit {
	var out []Conduit
	for _, c := range n.conduits {
		if c.From == id {
			out = append(out, c)
		}
	}
	return out
}

// NumNodes returns the junction count.
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumConduits returns the conduit count.
func (n *Network) NumConduits() int { return len(n.conduits) }
