package groebner

import "math/big"

// SPolynomial computes S(f,g) = (L/LT(f))*f - (L/LT(g))*g, where L is the
// lcm of LM(f) and LM(g), the combination that always cancels the leading
// terms of f and g. It returns false if either f or g is the zero
// polynomial, since neither has a leading term to cancel against.
func SPolynomial(f, g *Polynomial) (*Polynomial, bool) {
	f.checkCompatible(g)
	ltF, ok := f.LeadingTerm()
	if !ok {
		return nil, false
	}
	ltG, ok := g.LeadingTerm()
	if !ok {
		return nil, false
	}

	l := ltF.Monomial.Lcm(ltG.Monomial)
	one := big.NewRat(1, 1)

	cf := Term{Coefficient: new(big.Rat).Quo(one, ltF.Coefficient), Monomial: l.Div(ltF.Monomial)}
	cg := Term{Coefficient: new(big.Rat).Quo(one, ltG.Coefficient), Monomial: l.Div(ltG.Monomial)}

	lhs := NewPolynomial(f.arity, f.order).MulTerm(cf, f)
	rhs := NewPolynomial(f.arity, f.order).MulTerm(cg, g)
	return lhs.Sub(lhs, rhs), true
}
