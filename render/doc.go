// Package render turns a solved drainage network into a colorized terminal
// report: the achieved objective, per-conduit flow against pipe capacity,
// and per-node inflow against junction capacity, each with a utilization
// ratio tinted green → yellow → red.
//
// Rendering is presentation only — utilization ratios are computed here
// from the flow map and clamped to [0,1], but no solving or reconstruction
// happens in this package. Rows are ordered by edge identity (From, then
// To) and by node ID, matching the solution report contract.
package render
