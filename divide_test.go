package groebner

import (
	"math/big"
	"testing"
)

func TestDivideEmptyDivisorList(t *testing.T) {
	p := NewPolynomial(2, Lex, Term{Coefficient: big.NewRat(1, 1), Monomial: mono(1, 1)})
	q, r := Divide(p, nil)
	if q != nil {
		t.Errorf("expected nil quotient slice, got %v", q)
	}
	if !r.Equal(p) {
		t.Errorf("expected remainder = copy of dividend, got %v", r)
	}
}

// Textbook fixture: f = x^2y + xy^2 + y^2 divided by (y^2-1, xy-1) under
// Lex on (x,y) yields a1 = x+1, a2 = x, r = 2x+1.
func TestDivideFixture(t *testing.T) {
	vars := map[string]int{"x": 0, "y": 1}
	f, err := Parse(vars, Lex, 2, "x^2y+xy^2+y^2")
	if err != nil {
		t.Fatal(err)
	}
	d1, _ := Parse(vars, Lex, 2, "y^2-1")
	d2, _ := Parse(vars, Lex, 2, "xy-1")

	q, r := Divide(f, []*Polynomial{d1, d2})
	if len(q) != 2 {
		t.Fatalf("got %d quotients, want 2", len(q))
	}
	wantA1, _ := Parse(vars, Lex, 2, "x+1")
	wantA2, _ := Parse(vars, Lex, 2, "x")
	wantR, _ := Parse(vars, Lex, 2, "2x+1")
	if !q[0].Equal(wantA1) {
		t.Errorf("a1 = %v, want %v", q[0], wantA1)
	}
	if !q[1].Equal(wantA2) {
		t.Errorf("a2 = %v, want %v", q[1], wantA2)
	}
	if !r.Equal(wantR) {
		t.Errorf("r = %v, want %v", r, wantR)
	}
}

// Division identity: p = sum(ai*fi) + r, for the divisor ordering (x-y, y^2).
func TestDivideIdentity(t *testing.T) {
	vars := map[string]int{"x": 0, "y": 1}
	f, _ := Parse(vars, GrLex, 2, "x^3+x^2y+y^3")
	d1, _ := Parse(vars, GrLex, 2, "x-y")
	d2, _ := Parse(vars, GrLex, 2, "y^2")

	q, r := Divide(f, []*Polynomial{d1, d2})
	sum := NewPolynomial(2, GrLex)
	for i, a := range q {
		divisor := []*Polynomial{d1, d2}[i]
		term := NewPolynomial(2, GrLex).Mul(a, divisor)
		sum.Add(sum, term)
	}
	sum.Add(sum, r)
	if !sum.Equal(f) {
		t.Errorf("division identity failed: got %v, want %v", sum, f)
	}

	// No term of r is divisible by LM(d1) or LM(d2).
	lmD1, _ := d1.LeadingMonomial()
	lmD2, _ := d2.LeadingMonomial()
	for _, term := range r.Terms() {
		if term.Monomial.IsDivisibleBy(lmD1) || term.Monomial.IsDivisibleBy(lmD2) {
			t.Errorf("remainder term %v still divisible by a divisor's leading monomial", term)
		}
	}
}
