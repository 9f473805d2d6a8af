package groebner

import (
	"fmt"
	"strings"
)

// A Monomial is a product of variables x^α = x₁^α₁⋯xₙ^αₙ, carrying its
// arity and the order under which it compares. Two monomials only interact
// — Mul, Div, Lcm, Compare — when their arities and order tags agree; a
// mismatch is a programmer error and panics, per the precondition-violation
// policy.
type Monomial struct {
	Exponent Exponent
	N        int
	Order    OrderKind
}

// NewMonomial constructs the monomial x^alpha under the given order. len(alpha)
// fixes the arity N.
func NewMonomial(alpha Exponent, order OrderKind) Monomial {
	return Monomial{Exponent: alpha.clone(), N: len(alpha), Order: order}
}

func (m Monomial) checkCompatible(other Monomial) {
	if m.N != other.N {
		panic(fmt.Sprintf("groebner: mismatched arity %d != %d", m.N, other.N))
	}
	if m.Order != other.Order {
		panic(fmt.Sprintf("groebner: mismatched monomial order %v != %v", m.Order, other.Order))
	}
}

// Mul returns x^m * x^other = x^(m.Exponent+other.Exponent).
func (m Monomial) Mul(other Monomial) Monomial {
	m.checkCompatible(other)
	return Monomial{Exponent: m.Exponent.add(other.Exponent), N: m.N, Order: m.Order}
}

// Div returns x^m / x^other = x^(m.Exponent-other.Exponent). The caller
// must have checked IsDivisibleBy(other) first; otherwise the result is
// meaningless.
func (m Monomial) Div(other Monomial) Monomial {
	m.checkCompatible(other)
	return Monomial{Exponent: m.Exponent.sub(other.Exponent), N: m.N, Order: m.Order}
}

// IsDivisibleBy reports whether other divides m, i.e. every component of
// other's exponent is at most the corresponding component of m's.
func (m Monomial) IsDivisibleBy(other Monomial) bool {
	m.checkCompatible(other)
	return m.Exponent.divisibleBy(other.Exponent)
}

// Lcm returns the least common multiple of m and other: the componentwise
// maximum of their exponents.
func (m Monomial) Lcm(other Monomial) Monomial {
	m.checkCompatible(other)
	return Monomial{Exponent: m.Exponent.lcm(other.Exponent), N: m.N, Order: m.Order}
}

// Degree returns the total degree Σαᵢ.
func (m Monomial) Degree() int {
	return m.Exponent.degree()
}

// Compare returns -1, 0, or +1 as m is less than, equal to, or greater than
// other under their shared order. Both orders are total and compatible
// with multiplication (x^0 is the minimum).
func (m Monomial) Compare(other Monomial) int {
	m.checkCompatible(other)
	return compare(m.Order, m.Exponent, other.Exponent)
}

// Equal reports whether m and other name the same monomial.
func (m Monomial) Equal(other Monomial) bool {
	m.checkCompatible(other)
	return m.Exponent.equal(other.Exponent)
}

// IsOne reports whether m is x^0, the multiplicative identity monomial.
func (m Monomial) IsOne() bool {
	return m.Degree() == 0
}

// String renders m using 1-indexed variable names x_1, x_2, ... matching
// the notation the original problem statements use; exponent-1 variables
// print without a caret.
func (m Monomial) String() string {
	var b strings.Builder
	for i, a := range m.Exponent {
		if a == 0 {
			continue
		}
		fmt.Fprintf(&b, "x_%d", i+1)
		if a != 1 {
			fmt.Fprintf(&b, "^%d", a)
		}
	}
	return b.String()
}
