package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/drainflow/network"
	"github.com/katalvlaran/drainflow/qubo"
)

// Sentinel errors for problem decoding.
var (
	// ErrBadEdge indicates an entry in "edges" that is not a 2-element
	// [from, to] pair.
	ErrBadEdge = errors.New("problem: edge must be a [from, to] pair")

	// ErrBadEdgeKey indicates a per-edge map key without a "from,to" comma.
	ErrBadEdgeKey = errors.New(`problem: edge key must have the form "from,to"`)

	// ErrUnknownFormat indicates a file extension Load cannot map to a codec.
	ErrUnknownFormat = errors.New("problem: unknown file format")
)

// Document is the on-disk problem description. Field names match the wire
// schema; see the package comment.
type Document struct {
	Edges        [][]string         `json:"edges" yaml:"edges"`
	NodeCapacity map[string]float64 `json:"node_capacity" yaml:"node_capacity"`
	NodeRisk     map[string]float64 `json:"node_risk" yaml:"node_risk"`
	PipeCapacity map[string]float64 `json:"pipe_capacity" yaml:"pipe_capacity"`
	EnergyCost   map[string]float64 `json:"energy_cost" yaml:"energy_cost"`

	// Optional tuning; nil means the qubo package default.
	Bits         *int     `json:"bits,omitempty" yaml:"bits,omitempty"`
	Delta        *float64 `json:"delta,omitempty" yaml:"delta,omitempty"`
	Lambda       *float64 `json:"lambda,omitempty" yaml:"lambda,omitempty"`
	EnergyBudget *float64 `json:"energy_budget,omitempty" yaml:"energy_budget,omitempty"`
}

// Load reads a problem description from path, choosing the codec by
// extension: .json, or .yaml/.yml.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(raw)
	case ".yaml", ".yml":
		return ParseYAML(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// ParseJSON decodes a JSON problem description.
func ParseJSON(raw []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("problem: decode json: %w", err)
	}
	return &d, nil
}

// ParseYAML decodes a YAML problem description.
func ParseYAML(raw []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("problem: decode yaml: %w", err)
	}
	return &d, nil
}

// Network resolves the document into a validated network.Network. Edge
// shape and composite-key errors surface here; attribute completeness and
// value ranges are enforced by network.New.
func (d *Document) Network() (*network.Network, error) {
	edges := make([]network.Edge, len(d.Edges))
	for i, pair := range d.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d elements", ErrBadEdge, i, len(pair))
		}
		edges[i] = network.Edge{From: pair[0], To: pair[1]}
	}

	pipe, err := edgeKeyed(d.PipeCapacity)
	if err != nil {
		return nil, fmt.Errorf("pipe_capacity: %w", err)
	}
	cost, err := edgeKeyed(d.EnergyCost)
	if err != nil {
		return nil, fmt.Errorf("energy_cost: %w", err)
	}

	return network.New(edges, network.Attributes{
		NodeCapacity: d.NodeCapacity,
		NodeRisk:     d.NodeRisk,
		PipeCapacity: pipe,
		EnergyCost:   cost,
	})
}

// BuildOptions overlays the document's tuning fields on the defaults.
func (d *Document) BuildOptions() qubo.BuildOptions {
	opts := qubo.DefaultBuildOptions()
	if d.Bits != nil {
		opts.BitsPerEdge = *d.Bits
	}
	if d.Delta != nil {
		opts.FlowQuantum = *d.Delta
	}
	if d.Lambda != nil {
		opts.Lambda = *d.Lambda
	}
	if d.EnergyBudget != nil {
		budget := *d.EnergyBudget
		opts.EnergyBudget = &budget
	}
	return opts
}

// edgeKeyed splits composite "from,to" keys on the first comma.
func edgeKeyed(m map[string]float64) (map[network.Edge]float64, error) {
	out := make(map[network.Edge]float64, len(m))
	for key, v := range m {
		from, to, ok := strings.Cut(key, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadEdgeKey, key)
		}
		out[network.Edge{From: from, To: to}] = v
	}
	return out, nil
}
