package groebner

import (
	"fmt"
	"math/big"
)

// A Term pairs a nonzero rational coefficient with a monomial. Terms
// returned by LeadingTerm, Terms, or constructed by hand always carry
// c != 0 by convention; the zero coefficient is represented by a term's
// absence from a Polynomial, never by a stored zero.
type Term struct {
	Coefficient *big.Rat
	Monomial    Monomial
}

// String renders "c*x^α", omitting a coefficient of 1 or -1 on a
// non-constant monomial.
func (t Term) String() string {
	m := t.Monomial.String()
	c := t.Coefficient.RatString()
	switch {
	case m == "":
		return c
	case c == "1":
		return m
	case c == "-1":
		return "-" + m
	default:
		return fmt.Sprintf("%s*%s", c, m)
	}
}
