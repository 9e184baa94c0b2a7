package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/drainflow/network"
)

// Utilization color ramp.
var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleLow    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green, < 50%
	styleMid    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow, 50–85%
	styleHigh   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red, ≥ 85%
)

// utilStyle picks the ramp color for a clamped utilization ratio.
func utilStyle(u float64) lipgloss.Style {
	switch {
	case u >= 0.85:
		return styleHigh
	case u >= 0.5:
		return styleMid
	default:
		return styleLow
	}
}

// ConduitUtilization returns flow/pipe-capacity per conduit, clamped to
// [0,1]. Conduits absent from flows count as zero flow; a zero-capacity
// conduit reports zero utilization.
func ConduitUtilization(net *network.Network, flows map[network.Edge]float64) map[network.Edge]float64 {
	util := make(map[network.Edge]float64, net.NumConduits())
	for _, c := range net.Conduits() {
		util[c.Edge] = ratio(flows[c.Edge], c.PipeCapacity)
	}
	return util
}

// NodeUtilization returns total-inflow/capacity per junction, clamped to
// [0,1], the same ratio the original visualization colored nodes by.
func NodeUtilization(net *network.Network, flows map[network.Edge]float64) map[string]float64 {
	util := make(map[string]float64, net.NumNodes())
	for _, id := range net.NodeIDs() {
		inflow := 0.0
		for _, c := range net.Incoming(id) {
			inflow += flows[c.Edge]
		}
		node, _ := net.Node(id)
		util[id] = ratio(inflow, node.Capacity)
	}
	return util
}

// FlowReport renders the full solution report. Conduit rows are sorted by
// edge identity, node rows by ID.
func FlowReport(net *network.Network, flows map[network.Edge]float64, objective float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Objective = %.3f\n\n", objective)

	conduits := net.Conduits()
	sort.Slice(conduits, func(i, j int) bool {
		if conduits[i].From != conduits[j].From {
			return conduits[i].From < conduits[j].From
		}
		return conduits[i].To < conduits[j].To
	})

	b.WriteString(styleHeader.Render(fmt.Sprintf("%-12s %10s %10s %6s", "Edge", "flow", "capacity", "util")))
	b.WriteString("\n")
	for _, c := range conduits {
		u := ratio(flows[c.Edge], c.PipeCapacity)
		row := fmt.Sprintf("%-12s %10.2f %10.2f %5.0f%%",
			c.Edge, flows[c.Edge], c.PipeCapacity, 100*u)
		b.WriteString(utilStyle(u).Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHeader.Render(fmt.Sprintf("%-12s %10s %10s %6s", "Node", "inflow", "capacity", "util")))
	b.WriteString("\n")
	nodeUtil := NodeUtilization(net, flows)
	for _, id := range net.NodeIDs() {
		inflow := 0.0
		for _, c := range net.Incoming(id) {
			inflow += flows[c.Edge]
		}
		node, _ := net.Node(id)
		u := nodeUtil[id]
		row := fmt.Sprintf("%-12s %10.2f %10.2f %5.0f%%", id, inflow, node.Capacity, 100*u)
		b.WriteString(utilStyle(u).Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

// ratio clamps used/capacity to [0,1]; zero capacity reports zero.
func ratio(used, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	u := used / capacity
	if u > 1 {
		u = 1
	}
	if u < 0 {
		u = 0
	}
	return u
}
