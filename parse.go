package groebner

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kyawakyawa/groebner-basis/parse"
	"github.com/kyawakyawa/groebner-basis/parse/scan"
)

// Parse turns a human-typed expression such as "5/3(y-x)x" or
// "x^2 - 2y^2" into a *Polynomial of the given arity and order. variables
// maps each identifier that may appear in input to its position in the
// exponent vector (0-based); an identifier absent from the map is a
// parse error, not a panic, since malformed user input is an expected,
// recoverable condition.
func Parse(variables map[string]int, order OrderKind, arity int, input string) (*Polynomial, error) {
	scanner := scan.NewScanner(strings.NewReader(input))
	root, err := parse.Parse(scanner)
	if err != nil {
		return nil, errors.Wrap(err, "groebner: parse")
	}
	ev := &evaluator{variables: variables, order: order, arity: arity}
	p, err := ev.eval(root)
	if err != nil {
		return nil, errors.Wrap(err, "groebner: evaluate")
	}
	return p, nil
}

type evaluator struct {
	variables map[string]int
	order     OrderKind
	arity     int
}

func (ev *evaluator) constant(v *big.Rat) *Polynomial {
	zero := make(Exponent, ev.arity)
	return NewPolynomial(ev.arity, ev.order, Term{Coefficient: v, Monomial: NewMonomial(zero, ev.order)})
}

func (ev *evaluator) variable(name string) (*Polynomial, error) {
	pos, ok := ev.variables[name]
	if !ok {
		return nil, errors.Errorf("unknown variable %q", name)
	}
	if pos < 0 || pos >= ev.arity {
		return nil, errors.Errorf("variable %q position %d out of range [0,%d)", name, pos, ev.arity)
	}
	alpha := make(Exponent, ev.arity)
	alpha[pos] = 1
	return NewPolynomial(ev.arity, ev.order, Term{Coefficient: big.NewRat(1, 1), Monomial: NewMonomial(alpha, ev.order)}), nil
}

// asConstant reports the scalar value of p if p is a constant polynomial
// (zero, or a single term with the identity monomial).
func asConstant(p *Polynomial) (*big.Rat, bool) {
	if p.IsZero() {
		return big.NewRat(0, 1), true
	}
	if p.Len() != 1 {
		return nil, false
	}
	t, _ := p.LeadingTerm()
	if !t.Monomial.IsOne() {
		return nil, false
	}
	return t.Coefficient, true
}

func (ev *evaluator) eval(n *parse.Node) (*Polynomial, error) {
	switch n.Token.Type {
	case scan.Parenthesis:
		return ev.evalParenthesis(n)
	case scan.Identifier:
		return ev.variable(n.Token.Text)
	case scan.Int:
		v, err := strconv.ParseInt(n.Token.Text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "integer literal %q", n.Token.Text)
		}
		return ev.constant(big.NewRat(v, 1)), nil
	case scan.Operator:
		return ev.evalOperator(n)
	default:
		return nil, errors.Errorf("unexpected token %#v", n.Token)
	}
}

func (ev *evaluator) evalParenthesis(n *parse.Node) (*Polynomial, error) {
	if n.Left == nil {
		return nil, errors.Errorf("empty parenthesis %#v", n)
	}
	return ev.eval(n.Left)
}

func (ev *evaluator) evalOperator(n *parse.Node) (*Polynomial, error) {
	left, err := ev.eval(n.Left)
	if err != nil {
		return nil, err
	}

	switch n.Token.Text {
	case "-":
		if n.Right == nil {
			return NewPolynomial(ev.arity, ev.order).Sub(ev.constant(big.NewRat(0, 1)), left), nil
		}
		right, err := ev.eval(n.Right)
		if err != nil {
			return nil, err
		}
		return NewPolynomial(ev.arity, ev.order).Sub(left, right), nil
	case "+":
		right, err := ev.eval(n.Right)
		if err != nil {
			return nil, err
		}
		return NewPolynomial(ev.arity, ev.order).Add(left, right), nil
	case "*":
		right, err := ev.eval(n.Right)
		if err != nil {
			return nil, err
		}
		return NewPolynomial(ev.arity, ev.order).Mul(left, right), nil
	case "/":
		right, err := ev.eval(n.Right)
		if err != nil {
			return nil, err
		}
		c, ok := asConstant(right)
		if !ok || c.Sign() == 0 {
			return nil, errors.Errorf("division by non-constant or zero divisor")
		}
		factor := Term{Coefficient: new(big.Rat).Inv(c), Monomial: NewMonomial(make(Exponent, ev.arity), ev.order)}
		return NewPolynomial(ev.arity, ev.order).MulTerm(factor, left), nil
	case "^":
		right, err := ev.eval(n.Right)
		if err != nil {
			return nil, err
		}
		c, ok := asConstant(right)
		if !ok || !c.IsInt() || c.Sign() < 0 {
			return nil, errors.Errorf("exponent must be a non-negative integer constant")
		}
		return NewPolynomial(ev.arity, ev.order).Pow(left, int(c.Num().Int64())), nil
	default:
		return nil, errors.Errorf("unknown operator %q", n.Token.Text)
	}
}
