package qubo

import (
	"fmt"
	"io"
	"strings"
)

// lpLineWidth is the soft wrap column for exported objective rows.
const lpLineWidth = 72

// WriteLP writes the program in CPLEX LP format, suitable for external
// tooling to inspect or re-solve. The quadratic block follows the LP
// convention of doubled coefficients inside "[ ... ] / 2", and all
// variables are declared in the Binaries section in creation order.
//
// Complexity: Time O(n²) over the dense coefficient matrix.
func (p *Program) WriteLP(w io.Writer) error {
	_, err := io.WriteString(w, p.ExportLP())
	return err
}

// ExportLP renders the LP text; see WriteLP.
func (p *Program) ExportLP() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\ Model: %s\n", p.name)
	b.WriteString("Minimize\n")

	var terms []string
	n := len(p.names)
	for i := 0; i < n; i++ {
		if c := p.Linear(i); c != 0 {
			terms = append(terms, lpTerm(c, p.names[i]))
		}
	}
	var quad []string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if c := p.Pair(i, j); c != 0 {
				// Doubled inside the bracket, halved by the trailing "/ 2".
				quad = append(quad, lpTerm(2*c, p.names[i]+"*"+p.names[j]))
			}
		}
	}
	if len(quad) > 0 {
		terms = append(terms, "+ [ "+strings.TrimPrefix(strings.Join(quad, " "), "+ ")+" ] / 2")
	}
	if c := p.offset; c != 0 {
		terms = append(terms, lpTerm(c, ""))
	}
	if len(terms) == 0 {
		terms = append(terms, "0")
	}

	b.WriteString(" obj:")
	col := 5
	for k, t := range terms {
		if k == 0 {
			t = strings.TrimPrefix(t, "+ ")
		}
		if col+1+len(t) > lpLineWidth {
			b.WriteString("\n     ")
			col = 5
		}
		b.WriteString(" " + t)
		col += 1 + len(t)
	}
	b.WriteString("\nSubject To\nBounds\nBinaries\n")

	col = 0
	for _, name := range p.names {
		if col+1+len(name) > lpLineWidth {
			b.WriteString("\n")
			col = 0
		}
		b.WriteString(" " + name)
		col += 1 + len(name)
	}
	if n > 0 {
		b.WriteString("\n")
	}
	b.WriteString("End\n")
	return b.String()
}

// lpTerm renders one signed term, e.g. "- 0.8 x_A_B_0" or "+ 64" for a
// constant (empty name).
func lpTerm(coeff float64, name string) string {
	sign := "+"
	if coeff < 0 {
		sign = "-"
		coeff = -coeff
	}
	if name == "" {
		return fmt.Sprintf("%s %g", sign, coeff)
	}
	return fmt.Sprintf("%s %g %s", sign, coeff, name)
}
