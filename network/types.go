package network

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrMissingAttribute indicates a node or edge referenced by the graph
	// lacks a required attribute entry. Always carried by a
	// *MissingAttributeError, so callers can errors.As for detail.
	ErrMissingAttribute = errors.New("network: missing required attribute")

	// ErrEmptyNodeID indicates an edge endpoint is the empty string.
	ErrEmptyNodeID = errors.New("network: node ID is empty")

	// ErrDuplicateEdge indicates the edge list repeats a (from,to) pair.
	ErrDuplicateEdge = errors.New("network: duplicate edge")

	// ErrNegativeCapacity indicates a negative node or pipe capacity.
	ErrNegativeCapacity = errors.New("network: capacity must be non-negative")

	// ErrRiskOutOfRange indicates a node risk outside [0,1].
	ErrRiskOutOfRange = errors.New("network: risk must lie in [0,1]")

	// ErrNodeNotFound indicates a lookup of an unknown node ID.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrEdgeNotFound indicates a lookup of an unknown (from,to) pair.
	ErrEdgeNotFound = errors.New("network: edge not found")
)

// Edge is a directed (source, destination) pair identifying one conduit.
// It is comparable and therefore usable as a map key in Attributes.
type Edge struct {
	From, To string
}

// String renders the edge as "From->To".
func (e Edge) String() string { return e.From + "->" + e.To }

// Node holds the physical attributes of one junction.
type Node struct {
	// Capacity is the upper bound on both total inflow and total outflow.
	Capacity float64

	// Risk lies in [0,1]; lower is safer. The QUBO reward term routes flow
	// toward low-risk endpoints.
	Risk float64
}

// Conduit is one directed pipe with its resolved attributes.
type Conduit struct {
	Edge

	// PipeCapacity is the maximum instantaneous flow through this conduit.
	PipeCapacity float64

	// EnergyCost is the pumping cost per unit flow, used by the optional
	// energy-budget penalty.
	EnergyCost float64
}

// Attributes supplies the per-node and per-edge values required to resolve
// an edge list into a Network. Keys not referenced by any edge are ignored.
type Attributes struct {
	NodeCapacity map[string]float64
	NodeRisk     map[string]float64
	PipeCapacity map[Edge]float64
	EnergyCost   map[Edge]float64
}

// MissingAttributeError reports every identifier that lacks a required
// attribute entry, grouped by attribute name. It wraps ErrMissingAttribute.
type MissingAttributeError struct {
	// Attribute is the schema field the identifiers are missing from:
	// "node_capacity", "node_risk", "pipe_capacity" or "energy_cost".
	Attribute string

	// IDs are the offending node IDs or "From->To" edge labels, sorted.
	IDs []string
}

// Error lists the attribute and every offending identifier.
func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("network: missing %s for %s",
		e.Attribute, strings.Join(e.IDs, ", "))
}

// Unwrap lets errors.Is(err, ErrMissingAttribute) match.
func (e *MissingAttributeError) Unwrap() error { return ErrMissingAttribute }

// missingAttr builds a sorted MissingAttributeError, or nil when ids is empty.
func missingAttr(attribute string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	sort.Strings(ids)
	return &MissingAttributeError{Attribute: attribute, IDs: ids}
}
