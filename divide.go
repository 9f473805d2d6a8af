package groebner

import "math/big"

// Divide carries out multivariate division of p by the ordered list of
// divisors, returning the quotient aligned one-to-one with divisors and
// the final remainder. At each step the first divisor whose leading
// monomial divides the current remainder's leading monomial is applied;
// if none divides, the leading term is moved to the remainder and
// division continues on what's left. An empty divisors list returns a
// zero-valued quotient slice and a copy of p unchanged.
func Divide(p *Polynomial, divisors []*Polynomial) ([]*Polynomial, *Polynomial) {
	if len(divisors) == 0 {
		return nil, p.Clone()
	}
	for _, d := range divisors {
		p.checkCompatible(d)
	}

	quotients := make([]*Polynomial, len(divisors))
	for i := range quotients {
		quotients[i] = NewPolynomial(p.arity, p.order)
	}
	remainder := NewPolynomial(p.arity, p.order)
	rest := p.Clone()

	for !rest.IsZero() {
		lt, _ := rest.LeadingTerm()
		divided := false
		for i, d := range divisors {
			dlt, ok := d.LeadingTerm()
			if !ok {
				continue
			}
			if !lt.Monomial.IsDivisibleBy(dlt.Monomial) {
				continue
			}
			factor := Term{
				Coefficient: new(big.Rat).Quo(lt.Coefficient, dlt.Coefficient),
				Monomial:    lt.Monomial.Div(dlt.Monomial),
			}
			quotients[i].AddTerm(1, factor)
			scaled := NewPolynomial(p.arity, p.order).MulTerm(factor, d)
			rest.Sub(rest, scaled)
			divided = true
			break
		}
		if !divided {
			remainder.AddTerm(1, lt)
			rest.SubTerm(lt)
		}
	}
	return quotients, remainder
}
