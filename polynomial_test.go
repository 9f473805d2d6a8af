package groebner

import (
	"math/big"
	"testing"
)

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

func mono(exps ...int) Monomial { return NewMonomial(Exponent(exps), Lex) }

func TestPolynomialAddTermZeroRemoval(t *testing.T) {
	p := NewPolynomial(2, Lex)
	p.AddTerm(1, Term{Coefficient: rat(1, 1), Monomial: mono(1, 0)})
	p.AddTerm(1, Term{Coefficient: rat(-1, 1), Monomial: mono(1, 0)})
	if !p.IsZero() {
		t.Errorf("expected zero polynomial after cancelling term, got %v", p)
	}
}

func TestPolynomialLeadingTermAbsentOnZero(t *testing.T) {
	p := NewPolynomial(2, Lex)
	if _, ok := p.LeadingTerm(); ok {
		t.Error("expected absent leading term on zero polynomial")
	}
}

func TestPolynomialAddSubMul(t *testing.T) {
	x := NewPolynomial(2, Lex, Term{Coefficient: rat(1, 1), Monomial: mono(1, 0)})
	y := NewPolynomial(2, Lex, Term{Coefficient: rat(1, 1), Monomial: mono(0, 1)})

	sum := NewPolynomial(2, Lex).Add(x, y)
	if sum.Len() != 2 {
		t.Fatalf("Add: got %d terms, want 2", sum.Len())
	}

	diff := NewPolynomial(2, Lex).Sub(x, y)
	if diff.Len() != 2 {
		t.Fatalf("Sub: got %d terms, want 2", diff.Len())
	}

	prod := NewPolynomial(2, Lex).Mul(x, y)
	want := NewPolynomial(2, Lex, Term{Coefficient: rat(1, 1), Monomial: mono(1, 1)})
	if !prod.Equal(want) {
		t.Errorf("Mul = %v, want %v", prod, want)
	}
}

func TestPolynomialNormalize(t *testing.T) {
	p := NewPolynomial(2, GrLex,
		Term{Coefficient: rat(7, 1), Monomial: mono(3, 2)},
		Term{Coefficient: rat(-5, 1), Monomial: mono(2, 3)},
		Term{Coefficient: rat(3, 1), Monomial: mono(1, 0)},
	)
	p.Normalize()
	lt, _ := p.LeadingTerm()
	if lt.Coefficient.Cmp(rat(1, 1)) != 0 {
		t.Errorf("Normalize: leading coefficient = %v, want 1", lt.Coefficient)
	}
}

func TestPolynomialPow(t *testing.T) {
	x := NewPolynomial(1, Lex, Term{Coefficient: rat(1, 1), Monomial: mono(1)})
	got := NewPolynomial(1, Lex).Pow(x, 3)
	want := NewPolynomial(1, Lex, Term{Coefficient: rat(1, 1), Monomial: mono(3)})
	if !got.Equal(want) {
		t.Errorf("Pow = %v, want %v", got, want)
	}
}

func TestPolynomialIntegerCoeff(t *testing.T) {
	p := NewPolynomial(1, Lex,
		Term{Coefficient: rat(1, 2), Monomial: mono(1)},
		Term{Coefficient: rat(1, 3), Monomial: mono(0)},
	)
	ic := p.IntegerCoeff()
	for _, term := range ic.Terms() {
		if !term.Coefficient.IsInt() {
			t.Errorf("IntegerCoeff produced non-integer coefficient %v", term.Coefficient)
		}
	}
}

func TestPolynomialString(t *testing.T) {
	p := NewPolynomial(2, Lex,
		Term{Coefficient: rat(1, 1), Monomial: mono(1, 0)},
		Term{Coefficient: rat(-1, 1), Monomial: mono(0, 1)},
	)
	want := "x_1-x_2 Lex"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
