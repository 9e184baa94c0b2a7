// Package problem loads drainage-network problem descriptions and turns
// them into a validated network plus QUBO build options.
//
// The schema (JSON, with an equivalent YAML rendering — Load picks the
// codec from the file extension):
//
//	{
//	  "edges"         : [["A","B"], ["B","C"]],     // directed, ordered
//	  "node_capacity" : {"A": 4, "B": 4, "C": 4},
//	  "node_risk"     : {"A": 0.2, "B": 0.1, "C": 0.4},
//	  "pipe_capacity" : {"A,B": 3, "B,C": 2},       // "from,to" keys
//	  "energy_cost"   : {"A,B": 1.0, "B,C": 1.5},
//	  // optional tuning
//	  "bits"          : 3,       // digit variables per edge
//	  "delta"         : 1.0,     // flow quantum
//	  "lambda"        : 0.5,     // risk weighting
//	  "energy_budget" : 8        // enables the energy penalty
//	}
//
// Per-edge maps key on the composite "from,to" string, split on the first
// comma; node IDs containing commas are therefore not representable in the
// From position, matching the original wire format.
//
// Attribute completeness (every endpoint has capacity and risk, every edge
// has pipe capacity and energy cost) is enforced by network.New when
// Document.Network is called — not here — so schema errors and attribute
// errors stay distinguishable.
package problem
