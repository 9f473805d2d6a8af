package groebner_test

import (
	"fmt"

	groebner "github.com/kyawakyawa/groebner-basis"
)

// Example demonstrates computing the reduced Gröbner basis of a toy
// ideal under Lex order, reducing a sphere/paraboloid/plane system to its
// triangular form.
func Example() {
	vars := map[string]int{"x": 0, "y": 1, "z": 2}
	f1, _ := groebner.Parse(vars, groebner.Lex, 3, "x^2+y^2+z^2-1")
	f2, _ := groebner.Parse(vars, groebner.Lex, 3, "x^2+z^2-y")
	f3, _ := groebner.Parse(vars, groebner.Lex, 3, "x-z")

	g := groebner.ComputeGroebnerBasis([]*groebner.Polynomial{f1, f2, f3})
	for _, p := range g {
		fmt.Println(p)
	}
	// Output:
	// x_1-x_3 Lex
	// x_2-2x_3^2 Lex
	// x_3^4+1/2x_3^2-1/4 Lex
}

// ExampleDivide runs the multivariate division algorithm against an
// ordered pair of divisors.
func ExampleDivide() {
	vars := map[string]int{"x": 0, "y": 1}
	f, _ := groebner.Parse(vars, groebner.Lex, 2, "x^2y+xy^2+y^2")
	d1, _ := groebner.Parse(vars, groebner.Lex, 2, "y^2-1")
	d2, _ := groebner.Parse(vars, groebner.Lex, 2, "xy-1")

	q, r := groebner.Divide(f, []*groebner.Polynomial{d1, d2})
	for _, a := range q {
		fmt.Println(a)
	}
	fmt.Println(r)
	// Output:
	// x_1+1 Lex
	// x_1 Lex
	// 2x_1+1 Lex
}

// ExampleSPolynomial computes S(f,g) under GrLex.
func ExampleSPolynomial() {
	vars := map[string]int{"x": 0, "y": 1}
	f, _ := groebner.Parse(vars, groebner.GrLex, 2, "x^3y^2-x^2y^3+x")
	g, _ := groebner.Parse(vars, groebner.GrLex, 2, "3x^4y+y^2")

	s, ok := groebner.SPolynomial(f, g)
	fmt.Println(ok)
	fmt.Println(s)
	// Output:
	// true
	// -x_1^3x_2^3-1/3x_2^3+x_1^2 GrLex
}

// ExamplePolynomial_Normalize divides every coefficient by the leading
// coefficient, making the result monic.
func ExamplePolynomial_Normalize() {
	vars := map[string]int{"x": 0, "y": 1}
	f, _ := groebner.Parse(vars, groebner.GrLex, 2, "7x^3y^2-5x^2y^3+3x")
	f.Normalize()
	fmt.Println(f)
	// Output:
	// x_1^3x_2^2-5/7x_1^2x_2^3+3/7x_1 GrLex
}

// ExampleParse parses an expression that mixes explicit signs, implicit
// multiplication by juxtaposition, and a parenthesized subexpression.
func ExampleParse() {
	vars := map[string]int{"x": 0, "y": 1}
	p, err := groebner.Parse(vars, groebner.GrLex, 2, "-x^2y^3 + 5/3(y-x)x")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p)
	// Output:
	// -x_1^2x_2^3-5/3x_1^2+5/3x_1x_2 GrLex
}
