package groebner

import "testing"

func TestSPolynomialZeroOperandAbsent(t *testing.T) {
	zero := NewPolynomial(2, Lex)
	nonzero := NewPolynomial(2, Lex, Term{Coefficient: rat(1, 1), Monomial: mono(1, 0)})
	if _, ok := SPolynomial(zero, nonzero); ok {
		t.Error("expected absent S-polynomial when an operand is zero")
	}
}

// S(f,g) for f = x^3y^2-x^2y^3+x, g = 3x^4y+y^2 under GrLex on (x,y) is
// -x^3y^3+x^2-(1/3)y^3.
func TestSPolynomialFixture(t *testing.T) {
	vars := map[string]int{"x": 0, "y": 1}
	f, _ := Parse(vars, GrLex, 2, "x^3y^2-x^2y^3+x")
	g, _ := Parse(vars, GrLex, 2, "3x^4y+y^2")

	s, ok := SPolynomial(f, g)
	if !ok {
		t.Fatal("expected a valid S-polynomial")
	}
	want, _ := Parse(vars, GrLex, 2, "-x^3y^3+x^2-1/3y^3")
	if !s.Equal(want) {
		t.Errorf("SPolynomial = %v, want %v", s, want)
	}
}

func TestSPolynomialAntisymmetry(t *testing.T) {
	vars := map[string]int{"x": 0, "y": 1}
	f, _ := Parse(vars, GrLex, 2, "x^2y-y^2")
	g, _ := Parse(vars, GrLex, 2, "xy^2-x")

	sfg, _ := SPolynomial(f, g)
	sgf, _ := SPolynomial(g, f)
	neg := NewPolynomial(2, GrLex).Sub(NewPolynomial(2, GrLex), sgf)
	if !sfg.Equal(neg) {
		t.Errorf("S(f,g) = %v, want -S(g,f) = %v", sfg, neg)
	}
}
