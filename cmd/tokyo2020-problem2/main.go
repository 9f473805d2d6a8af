// Command tokyo2020-problem2 uses elimination (reading off the basis
// element(s) in r, d alone) to derive a closed-form relation between the
// circumradius of a triangle and the sum of squared/fourth-power
// distances from a point on the circumcircle to the three vertices.
package main

import (
	"fmt"
	"math/big"

	groebner "github.com/kyawakyawa/groebner-basis"
)

// Variable positions: b1 c1 c2 m1 m2 p1 p2 v r d
const arity = 10

const (
	b1 = iota
	c1
	c2
	m1
	m2
	p1
	p2
	v
	r
	d
)

func order() groebner.OrderKind { return groebner.Lex }

func variable(pos int) *groebner.Polynomial {
	alpha := make(groebner.Exponent, arity)
	alpha[pos] = 1
	return groebner.NewPolynomial(arity, order(), groebner.Term{Coefficient: big.NewRat(1, 1), Monomial: groebner.NewMonomial(alpha, order())})
}

func constant(c int64) *groebner.Polynomial {
	return groebner.NewPolynomial(arity, order(), groebner.Term{Coefficient: big.NewRat(c, 1), Monomial: groebner.NewMonomial(make(groebner.Exponent, arity), order())})
}

func add(x, y *groebner.Polynomial) *groebner.Polynomial {
	return groebner.NewPolynomial(arity, order()).Add(x, y)
}

func sub(x, y *groebner.Polynomial) *groebner.Polynomial {
	return groebner.NewPolynomial(arity, order()).Sub(x, y)
}

func mul(x, y *groebner.Polynomial) *groebner.Polynomial {
	return groebner.NewPolynomial(arity, order()).Mul(x, y)
}

func sq(x *groebner.Polynomial) *groebner.Polynomial { return mul(x, x) }

func main() {
	vb1, vc1, vc2 := variable(b1), variable(c1), variable(c2)
	vm1, vm2 := variable(m1), variable(m2)
	vp1, vp2 := variable(p1), variable(p2)
	vv, vr, vd := variable(v), variable(r), variable(d)
	one := constant(1)

	f1 := sub(add(mul(vc1, vc1), mul(vc2, vc2)), mul(vb1, vb1))
	f2 := sub(add(sq(sub(vc1, vb1)), mul(vc2, vc2)), mul(vb1, vb1))
	f3 := sub(add(mul(vm1, vm1), mul(vm2, vm2)), mul(vr, vr))
	f4 := sub(add(sq(sub(vb1, vm1)), mul(vm2, vm2)), mul(vr, vr))
	f5 := sub(add(sq(sub(vc1, vm1)), sq(sub(vc2, vm2))), mul(vr, vr))
	f6 := sub(add(sq(sub(vp1, vm1)), sq(sub(vp2, vm2))), mul(vr, vr))
	f7 := sub(mul(vb1, vv), one)

	g := sub(add(add(add(add(mul(vp1, vp1), mul(vp2, vp2)), sq(sub(vp1, vb1))), mul(vp2, vp2)), add(sq(sub(vp1, vc1)), sq(sub(vp2, vc2)))), vd)

	h := sub(add(add(
		sq(add(mul(vp1, vp1), mul(vp2, vp2))),
		sq(add(sq(sub(vp1, vb1)), mul(vp2, vp2))),
	), sq(add(sq(sub(vp1, vc1)), sq(sub(vp2, vc2))))), vd)

	report := func(label string, fs []*groebner.Polynomial) {
		ps := groebner.ComputeGroebnerBasis(fs)
		fmt.Println(label)
		for i, p := range ps {
			fmt.Printf("  |  p_%d = %s\n", i+1, p.IntegerCoeff())
		}
		fmt.Println()
	}

	report("GroebnerBasis[f1, f2, f3, f4, f5, f6, f7, g]", []*groebner.Polynomial{f1, f2, f3, f4, f5, f6, f7, g})
	report("GroebnerBasis[f1, f2, f3, f4, f5, f6, f7, h]", []*groebner.Polynomial{f1, f2, f3, f4, f5, f6, f7, h})
}
