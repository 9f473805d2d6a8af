package groebner

// An Exponent is the vector α of a monomial x^α = x₁^α₁⋯xₙ^αₙ. Components
// are non-negative in every value this package ever produces; callers that
// hand-build one are responsible for that invariant.
type Exponent []int

// add returns the componentwise sum x+y, i.e. the exponent of x^x' * x^y'.
func (x Exponent) add(y Exponent) Exponent {
	z := make(Exponent, len(x))
	for i := range x {
		z[i] = x[i] + y[i]
	}
	return z
}

// sub returns the componentwise difference x-y. The caller must have
// already verified y is divisible into x (see Monomial.IsDivisibleBy);
// otherwise the result contains negative, meaningless components.
func (x Exponent) sub(y Exponent) Exponent {
	z := make(Exponent, len(x))
	for i := range x {
		z[i] = x[i] - y[i]
	}
	return z
}

// divisibleBy reports whether y divides x componentwise, i.e. xᵢ ≥ yᵢ for
// all i.
func (x Exponent) divisibleBy(y Exponent) bool {
	for i := range x {
		if x[i] < y[i] {
			return false
		}
	}
	return true
}

// lcm returns the componentwise maximum of x and y.
func (x Exponent) lcm(y Exponent) Exponent {
	z := make(Exponent, len(x))
	for i := range x {
		z[i] = max(x[i], y[i])
	}
	return z
}

func (x Exponent) degree() int {
	var d int
	for _, xi := range x {
		d += xi
	}
	return d
}

func (x Exponent) equal(y Exponent) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

func (x Exponent) clone() Exponent {
	y := make(Exponent, len(x))
	copy(y, x)
	return y
}
