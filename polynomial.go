package groebner

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/jba/omap"
)

// A Polynomial is a sparse rational polynomial in N variables, represented
// as an ordered map from Monomial to nonzero coefficient, keyed under a
// single fixed Order so that the map's maximum key is always the leading
// monomial. The map is backed by *omap.MapFunc, the same ordered-map
// library, giving LT/LM/LC queries and add-term mutation both O(log n)
// cost.
type Polynomial struct {
	arity int
	order OrderKind
	m     *omap.MapFunc[Monomial, *big.Rat]
}

// NewPolynomial returns a new polynomial of the given arity and order,
// populated with the given terms (each inserted through AddTerm, so
// duplicate monomials accumulate and zero coefficients are dropped).
func NewPolynomial(arity int, order OrderKind, terms ...Term) *Polynomial {
	p := &Polynomial{
		arity: arity,
		order: order,
		m:     omap.NewMapFunc[Monomial, *big.Rat](monomialCmp),
	}
	for _, t := range terms {
		p.AddTerm(1, t)
	}
	return p
}

func monomialCmp(x, y Monomial) int { return x.Compare(y) }

// Arity returns N, the number of variables.
func (p *Polynomial) Arity() int { return p.arity }

// Order returns the monomial order p is keyed under.
func (p *Polynomial) Order() OrderKind { return p.order }

// Len reports the number of nonzero terms.
func (p *Polynomial) Len() int { return p.m.Len() }

// IsZero reports whether p has no terms.
func (p *Polynomial) IsZero() bool { return p.m.Len() == 0 }

// Terms iterates p's terms in descending monomial order, leading term
// first.
func (p *Polynomial) Terms() []Term {
	terms := make([]Term, 0, p.m.Len())
	for w, c := range p.m.Backward() {
		terms = append(terms, Term{Coefficient: c, Monomial: w})
	}
	return terms
}

// LeadingTerm returns the term at the maximal monomial, and false if p is
// the zero polynomial (an absent leading term, not an error).
func (p *Polynomial) LeadingTerm() (Term, bool) {
	w, ok := p.m.Max()
	if !ok {
		return Term{}, false
	}
	c, _ := p.m.Get(w)
	return Term{Coefficient: c, Monomial: w}, true
}

// LeadingMonomial returns LM(p), and false if p is zero.
func (p *Polynomial) LeadingMonomial() (Monomial, bool) {
	t, ok := p.LeadingTerm()
	if !ok {
		return Monomial{}, false
	}
	return t.Monomial, true
}

// LeadingCoefficient returns LC(p), and false if p is zero.
func (p *Polynomial) LeadingCoefficient() (*big.Rat, bool) {
	t, ok := p.LeadingTerm()
	if !ok {
		return nil, false
	}
	return t.Coefficient, true
}

func (p *Polynomial) checkCompatible(other *Polynomial) {
	if p.arity != other.arity {
		panic(fmt.Sprintf("groebner: mismatched arity %d != %d", p.arity, other.arity))
	}
	if p.order != other.order {
		panic(fmt.Sprintf("groebner: mismatched monomial order %v != %v", p.order, other.order))
	}
}

// AddTerm adds sign*c*x^α into p, removing the monomial's entry if the
// resulting coefficient is zero. This, along with SubTerm, is the sole
// mechanism by which p's map is mutated, which is what preserves the
// no-zero-coefficients-stored invariant.
func (p *Polynomial) AddTerm(sign int, t Term) {
	c, ok := p.m.Get(t.Monomial)
	if !ok {
		c = new(big.Rat)
	} else {
		c = new(big.Rat).Set(c)
	}
	if sign < 0 {
		c.Sub(c, t.Coefficient)
	} else {
		c.Add(c, t.Coefficient)
	}
	if c.Sign() == 0 {
		p.m.Delete(t.Monomial)
	} else {
		p.m.Set(t.Monomial, c)
	}
}

// SubTerm subtracts c*x^α from p; equivalent to AddTerm(-1, t).
func (p *Polynomial) SubTerm(t Term) { p.AddTerm(-1, t) }

// Set makes z a copy of x and returns z.
func (z *Polynomial) Set(x *Polynomial) *Polynomial {
	if z == x {
		return z
	}
	z.arity = x.arity
	z.order = x.order
	z.m = omap.NewMapFunc[Monomial, *big.Rat](monomialCmp)
	for w, c := range x.m.All() {
		z.AddTerm(1, Term{Coefficient: c, Monomial: w})
	}
	return z
}

// Clone returns a fresh copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return NewPolynomial(p.arity, p.order).Set(p)
}

// Equal reports whether z and other have identical monomial->coefficient
// maps.
func (z *Polynomial) Equal(other *Polynomial) bool {
	z.checkCompatible(other)
	if z.m.Len() != other.m.Len() {
		return false
	}
	zTerms, oTerms := z.Terms(), other.Terms()
	for i := range zTerms {
		if !zTerms[i].Monomial.Equal(oTerms[i].Monomial) {
			return false
		}
		if zTerms[i].Coefficient.Cmp(oTerms[i].Coefficient) != 0 {
			return false
		}
	}
	return true
}

// Add sets z to x+y and returns z.
func (z *Polynomial) Add(x, y *Polynomial) *Polynomial {
	x.checkCompatible(y)
	if y == z {
		x, y = y, x
	}
	if z != x {
		z.arity = x.arity
		z.order = x.order
		z.m = omap.NewMapFunc[Monomial, *big.Rat](monomialCmp)
		for w, c := range x.m.All() {
			z.AddTerm(1, Term{Coefficient: c, Monomial: w})
		}
	}
	for w, c := range y.m.All() {
		z.AddTerm(1, Term{Coefficient: c, Monomial: w})
	}
	return z
}

// Sub sets z to x-y and returns z.
func (z *Polynomial) Sub(x, y *Polynomial) *Polynomial {
	x.checkCompatible(y)
	if y == z {
		neg := y.Clone().negate()
		return z.Add(x, neg)
	}
	if z != x {
		z.Set(x)
	}
	for w, c := range y.m.All() {
		z.AddTerm(-1, Term{Coefficient: c, Monomial: w})
	}
	return z
}

func (z *Polynomial) negate() *Polynomial {
	for w, c := range z.m.All() {
		z.m.Set(w, new(big.Rat).Neg(c))
	}
	return z
}

// Mul sets z to x*y and returns z. z must be distinct from both x and y.
func (z *Polynomial) Mul(x, y *Polynomial) *Polynomial {
	x.checkCompatible(y)
	if z == x || z == y {
		panic("groebner: Mul destination must not alias an operand")
	}
	z.arity = x.arity
	z.order = x.order
	z.m = omap.NewMapFunc[Monomial, *big.Rat](monomialCmp)
	for xw, xc := range x.m.All() {
		for yw, yc := range y.m.All() {
			c := new(big.Rat).Mul(xc, yc)
			z.AddTerm(1, Term{Coefficient: c, Monomial: xw.Mul(yw)})
		}
	}
	return z
}

// MulTerm sets z to t*x and returns z.
func (z *Polynomial) MulTerm(t Term, x *Polynomial) *Polynomial {
	tp := NewPolynomial(x.arity, x.order, t)
	if z == x {
		return z.Mul(x.Clone(), tp)
	}
	return z.Mul(x, tp)
}

// Pow sets z to x^n and returns z, via repeated squaring.
func (z *Polynomial) Pow(x *Polynomial, n int) *Polynomial {
	if n < 0 {
		panic("groebner: negative exponent")
	}
	result := NewPolynomial(x.arity, x.order, Term{Coefficient: big.NewRat(1, 1), Monomial: NewMonomial(make(Exponent, x.arity), x.order)})
	base := x.Clone()
	for n > 0 {
		if n%2 == 1 {
			result = NewPolynomial(x.arity, x.order).Mul(result, base)
		}
		base = NewPolynomial(x.arity, x.order).Mul(base, base)
		n /= 2
	}
	return z.Set(result)
}

// Normalize divides every coefficient by LC(z), making z monic. On the
// zero polynomial it is the identity.
func (z *Polynomial) Normalize() *Polynomial {
	lc, ok := z.LeadingCoefficient()
	if !ok {
		return z
	}
	inv := new(big.Rat).Inv(lc)
	for w, c := range z.m.All() {
		z.m.Set(w, new(big.Rat).Mul(c, inv))
	}
	return z
}

// IntegerCoeff returns a new polynomial with every coefficient of z scaled
// by the lcm of all denominators, producing integer-valued coefficients
// with the same ideal membership. Used for display and canonical output
// only; it does not mutate z.
func (z *Polynomial) IntegerCoeff() *Polynomial {
	denomLCM := big.NewInt(1)
	for _, c := range z.m.All() {
		denomLCM = lcmInt(denomLCM, c.Denom())
	}
	out := NewPolynomial(z.arity, z.order)
	scale := new(big.Rat)
	for w, c := range z.m.All() {
		scale.Mul(c, new(big.Rat).SetInt(denomLCM))
		out.AddTerm(1, Term{Coefficient: new(big.Rat).Set(scale), Monomial: w})
	}
	return out
}

// String renders z in descending monomial order, suppressing unit
// coefficients on non-constant terms and inlining signs, with the order
// tag appended.
func (z *Polynomial) String() string {
	if z.IsZero() {
		return fmt.Sprintf("0 %v", z.order)
	}
	var b strings.Builder
	for i, t := range z.Terms() {
		s := t.Coefficient.RatString()
		if s[0] != '-' {
			s = "+" + s
		}
		m := t.Monomial.String()
		switch {
		case s == "+1" && m != "":
			s = "+"
		case s == "-1" && m != "":
			s = "-"
		}
		if i == 0 && s[0] == '+' {
			s = s[1:]
		}
		fmt.Fprintf(&b, "%s%s", s, m)
	}
	fmt.Fprintf(&b, " %v", z.order)
	return b.String()
}

func lcmInt(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return big.NewInt(0)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
	out := new(big.Int).Div(new(big.Int).Abs(a), g)
	out.Mul(out, new(big.Int).Abs(b))
	return out
}
