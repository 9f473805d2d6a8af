// Command tokyo2020-problem1 checks, via Rabinowitsch's trick, both
// directions of a 2020 Tokyo Tech geometry-olympiad equivalence for a
// triangle ABC whose vertices are non-collinear (f3=0). One direction
// checks that g1 = AB²-BC² and g2 = BC²-CA² each lie in the radical of
// <f1, f2, f3>; the other checks that f1 and f2 each lie in the radical of
// <g1, g2, f3>. Each print should show the singleton basis {1},
// certifying radical membership.
package main

import (
	"fmt"
	"math/big"

	groebner "github.com/kyawakyawa/groebner-basis"
)

// Variable positions: a1 a2 b1 b2 c1 c2 v y
const arity = 8

const (
	a1 = iota
	a2
	b1
	b2
	c1
	c2
	v
	y
)

func term(coeff int64, exps ...int) groebner.Term {
	alpha := make(groebner.Exponent, arity)
	for _, e := range exps {
		alpha[e]++
	}
	return groebner.Term{Coefficient: big.NewRat(coeff, 1), Monomial: groebner.NewMonomial(alpha, groebner.GrLex)}
}

func poly(terms ...groebner.Term) *groebner.Polynomial {
	return groebner.NewPolynomial(arity, groebner.GrLex, terms...)
}

func main() {
	f3 := poly(
		term(-1),
		term(1, a2, b1, v),
		term(-1, a1, b2, v),
		term(-1, a2, c1, v),
		term(1, b2, c1, v),
		term(1, a1, c2, v),
		term(-1, b1, c2, v),
	)

	f1 := poly(
		term(1, a1, a1),
		term(-1, a2, a2),
		term(-1, a1, b1),
		term(1, b1, b1),
		term(1, a2, b2),
		term(-1, b2, b2),
		term(-1, a1, c1),
		term(-1, b1, c1),
		term(1, c1, c1),
		term(1, a2, c2),
		term(1, b2, c2),
		term(-1, c2, c2),
	)

	f2 := poly(
		term(2, a1, a2),
		term(-1, a2, b1),
		term(-1, a1, b2),
		term(2, b1, b2),
		term(-1, a2, c1),
		term(-1, b2, c1),
		term(-1, a1, c2),
		term(-1, b1, c2),
		term(2, c1, c2),
	)

	g1 := poly(
		term(1, a1, a1),
		term(1, a2, a2),
		term(-2, a1, b1),
		term(-2, a2, b2),
		term(2, b1, c1),
		term(-1, c1, c1),
		term(2, b2, c2),
		term(-1, c2, c2),
	)

	g2 := poly(
		term(-1, a1, a1),
		term(-1, a2, a2),
		term(1, b1, b1),
		term(1, b2, b2),
		term(2, a1, c1),
		term(-2, b1, c1),
		term(2, a2, c2),
		term(-2, b2, c2),
	)

	one := poly(term(1))
	yPoly := poly(term(1, y))

	h := func(g *groebner.Polynomial) *groebner.Polynomial {
		yg := groebner.NewPolynomial(arity, groebner.GrLex).Mul(yPoly, g)
		return groebner.NewPolynomial(arity, groebner.GrLex).Sub(one, yg)
	}

	report := func(label string, fs []*groebner.Polynomial) {
		gs := groebner.ComputeGroebnerBasis(fs)
		fmt.Println(label)
		for i, g := range gs {
			fmt.Printf("  | p_%d = %s\n", i+1, g)
		}
		fmt.Println()
	}

	report("GroebnerBasis[f1, f2, f3, 1 - y*g1]", []*groebner.Polynomial{f1, f2, f3, h(g1)})
	report("GroebnerBasis[f1, f2, f3, 1 - y*g2]", []*groebner.Polynomial{f1, f2, f3, h(g2)})
	report("GroebnerBasis[g1, g2, f3, 1 - y*f1]", []*groebner.Polynomial{g1, g2, f3, h(f1)})
	report("GroebnerBasis[g1, g2, f3, 1 - y*f2]", []*groebner.Polynomial{g1, g2, f3, h(f2)})
}
