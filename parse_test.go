package groebner

import "testing"

// Scenario 7: "-x^2y^3 + 5/3(y-x)x" under GrLex on (x,y) expands to
// -x^2y^3 + 5/3xy - 5/3x^2.
func TestParseRoundTrip(t *testing.T) {
	vars := map[string]int{"x": 0, "y": 1}
	p, err := Parse(vars, GrLex, 2, "-x^2y^3 + 5/3(y-x)x")
	if err != nil {
		t.Fatal(err)
	}

	terms := p.Terms()
	if len(terms) != 3 {
		t.Fatalf("got %d terms, want 3", len(terms))
	}

	check := func(exp Exponent, coeff string) {
		m := NewMonomial(exp, GrLex)
		for _, term := range terms {
			if term.Monomial.Equal(m) {
				if term.Coefficient.RatString() != coeff {
					t.Errorf("coefficient of %v = %s, want %s", exp, term.Coefficient.RatString(), coeff)
				}
				return
			}
		}
		t.Errorf("missing term for exponent %v", exp)
	}
	check(Exponent{2, 3}, "-1")
	check(Exponent{1, 1}, "5/3")
	check(Exponent{2, 0}, "-5/3")
}

func TestParseUnknownVariable(t *testing.T) {
	vars := map[string]int{"x": 0}
	if _, err := Parse(vars, Lex, 1, "x+w"); err == nil {
		t.Error("expected error for unknown variable")
	}
}

func TestParseDivisionByZero(t *testing.T) {
	vars := map[string]int{"x": 0}
	if _, err := Parse(vars, Lex, 1, "x/0"); err == nil {
		t.Error("expected error for division by zero")
	}
}
