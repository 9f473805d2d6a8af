package groebner

import (
	"container/heap"
	"sort"
)

// Options tunes ComputeGroebnerBasisWithOptions beyond the defaults used
// by ComputeGroebnerBasis.
type Options struct {
	// EagerTerminationThreshold, when nonzero, makes the engine eagerly
	// test whether the current basis is already a Gröbner basis once the
	// pending pair set grows past this size, terminating early if so.
	// Zero disables the check entirely, which is the correctness-first
	// default: the check itself costs a full round of S-polynomial
	// reductions, so it only pays off on inputs that generate very large
	// pair sets.
	EagerTerminationThreshold int
}

// pair is one entry of the pending S-polynomial queue: the index pair
// (i,j), the cached leading monomials and their lcm, and the sugar degree
// used to order the queue.
type pair struct {
	i, j  int
	lmI   Monomial
	lmJ   Monomial
	lcm   Monomial
	sugar int
}

func (p pair) coprime() bool {
	return p.lcm.Degree() == p.lmI.Degree()+p.lmJ.Degree()
}

// pairQueue is a container/heap priority queue ordered by sugar, then
// lcm, then lexicographic index, paired at the call site with a
// map[[2]int]struct{} pending set for O(1) chain-criterion membership
// tests.
type pairQueue []pair

func (q pairQueue) Len() int { return len(q) }
func (q pairQueue) Less(a, b int) bool {
	x, y := q[a], q[b]
	if x.sugar != y.sugar {
		return x.sugar < y.sugar
	}
	if c := x.lcm.Compare(y.lcm); c != 0 {
		return c < 0
	}
	if x.i != y.i {
		return x.i < y.i
	}
	return x.j < y.j
}
func (q pairQueue) Swap(a, b int) { q[a], q[b] = q[b], q[a] }
func (q *pairQueue) Push(x any)   { *q = append(*q, x.(pair)) }
func (q *pairQueue) Pop() any {
	old := *q
	n := len(old)
	p := old[n-1]
	*q = old[:n-1]
	return p
}

func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

// basisEngine carries the mutable state of one Buchberger run: the
// growing basis, a parallel slice of sugar degrees, and the pending pair
// set (heap + membership map).
type basisEngine struct {
	arity   int
	order   OrderKind
	g       []*Polynomial
	sugars  []int
	queue   pairQueue
	pending map[[2]int]struct{}
}

func newBasisEngine(arity int, order OrderKind) *basisEngine {
	return &basisEngine{
		arity:   arity,
		order:   order,
		pending: make(map[[2]int]struct{}),
	}
}

func degree(p *Polynomial) int {
	max := 0
	for _, t := range p.Terms() {
		if d := t.Monomial.Degree(); d > max {
			max = d
		}
	}
	return max
}

func (e *basisEngine) addPolynomial(f *Polynomial) int {
	idx := len(e.g)
	e.g = append(e.g, f)
	e.sugars = append(e.sugars, degree(f))
	lm, _ := f.LeadingMonomial()
	for k := 0; k < idx; k++ {
		other, ok := e.g[k].LeadingMonomial()
		if !ok {
			continue
		}
		e.pushPair(k, idx, other, lm)
	}
	return idx
}

func (e *basisEngine) pushPair(i, j int, lmI, lmJ Monomial) {
	l := lmI.Lcm(lmJ)
	s := max(l.Degree()-lmI.Degree()+e.sugars[i], l.Degree()-lmJ.Degree()+e.sugars[j])
	p := pair{i: i, j: j, lmI: lmI, lmJ: lmJ, lcm: l, sugar: s}
	e.pending[pairKey(i, j)] = struct{}{}
	heap.Push(&e.queue, p)
}

// chainEliminates implements Gebauer-Möller Criterion 2: a k outside
// {i,j} whose leading monomial divides the pair's lcm, with neither (i,k)
// nor (j,k) still pending, proves S(i,j) is redundant.
func (e *basisEngine) chainEliminates(p pair) bool {
	for k := range e.g {
		if k == p.i || k == p.j {
			continue
		}
		lmK, ok := e.g[k].LeadingMonomial()
		if !ok {
			continue
		}
		if !p.lcm.IsDivisibleBy(lmK) {
			continue
		}
		if _, ok := e.pending[pairKey(p.i, k)]; ok {
			continue
		}
		if _, ok := e.pending[pairKey(p.j, k)]; ok {
			continue
		}
		return true
	}
	return false
}

// isGroebnerBasis tests every ordered pair's S-polynomial for a zero
// remainder, used only by the eager-termination escape hatch.
func (e *basisEngine) isGroebnerBasis() bool {
	for i := range e.g {
		for j := i + 1; j < len(e.g); j++ {
			s, ok := SPolynomial(e.g[i], e.g[j])
			if !ok {
				continue
			}
			_, r := Divide(s, e.g)
			if !r.IsZero() {
				return false
			}
		}
	}
	return true
}

func (e *basisEngine) run(opts Options) {
	for e.queue.Len() > 0 {
		if opts.EagerTerminationThreshold > 0 && e.queue.Len() > opts.EagerTerminationThreshold {
			if e.isGroebnerBasis() {
				e.queue = nil
				e.pending = map[[2]int]struct{}{}
				return
			}
		}
		p := heap.Pop(&e.queue).(pair)
		delete(e.pending, pairKey(p.i, p.j))

		if p.coprime() {
			continue
		}
		if e.chainEliminates(p) {
			continue
		}

		s, ok := SPolynomial(e.g[p.i], e.g[p.j])
		if !ok {
			continue
		}
		_, r := Divide(s, e.g)
		if r.IsZero() {
			continue
		}
		e.addPolynomial(r)
	}
}

// interreduce repeatedly replaces each polynomial by its remainder on
// division by the rest of the set, dropping zero results, until a full
// pass leaves every element unchanged.
func interreduce(fs []*Polynomial) []*Polynomial {
	cur := make([]*Polynomial, 0, len(fs))
	for _, f := range fs {
		if !f.IsZero() {
			cur = append(cur, f)
		}
	}
	for {
		changed := false
		for i := 0; i < len(cur); {
			others := make([]*Polynomial, 0, len(cur)-1)
			for k, g := range cur {
				if k != i {
					others = append(others, g)
				}
			}
			_, r := Divide(cur[i], others)
			if r.IsZero() {
				changed = true
				cur = append(cur[:i], cur[i+1:]...)
				continue
			}
			if !r.Equal(cur[i]) {
				changed = true
			}
			cur[i] = r
			i++
		}
		if !changed {
			return cur
		}
	}
}

// minimalize drops any gᵢ whose leading monomial is divisible by another
// survivor's, then normalizes each remaining element to monic.
func minimalize(fs []*Polynomial) []*Polynomial {
	keep := make([]bool, len(fs))
	for i := range fs {
		keep[i] = true
	}
	lms := make([]Monomial, len(fs))
	for i, f := range fs {
		lms[i], _ = f.LeadingMonomial()
	}
	for i := range fs {
		for j := range fs {
			if i == j || !keep[i] || !keep[j] {
				continue
			}
			// A divisor removes a multiple of its leading monomial;
			// among ties at an equal leading monomial, exactly one
			// survives.
			if lms[j].IsDivisibleBy(lms[i]) && (j < i || !lms[i].Equal(lms[j])) {
				keep[j] = false
			}
		}
	}
	out := make([]*Polynomial, 0, len(fs))
	for i, f := range fs {
		if keep[i] {
			out = append(out, f.Clone().Normalize())
		}
	}
	return out
}

// reduce repeatedly replaces each gᵢ by its remainder on division by the
// rest, until a pass leaves every element fixed, then normalizes.
func reduce(fs []*Polynomial) []*Polynomial {
	cur := fs
	for {
		changed := false
		next := make([]*Polynomial, len(cur))
		for i, f := range cur {
			others := make([]*Polynomial, 0, len(cur)-1)
			for k, g := range cur {
				if k != i {
					others = append(others, g)
				}
			}
			_, r := Divide(f, others)
			if !r.Equal(f) {
				changed = true
			}
			next[i] = r
		}
		cur = next
		if !changed {
			break
		}
	}
	for _, f := range cur {
		f.Normalize()
	}
	return cur
}

func sortDescendingByLM(fs []*Polynomial) {
	sort.Slice(fs, func(i, j int) bool {
		a, _ := fs[i].LeadingMonomial()
		b, _ := fs[j].LeadingMonomial()
		return a.Compare(b) > 0
	})
}

// ComputeGroebnerBasis returns the unique reduced Gröbner basis of the
// ideal generated by fs, under the shared (arity, order) of its
// (non-filtered) elements. Zero polynomials are silently filtered; an
// empty or all-zero input returns an empty basis.
func ComputeGroebnerBasis(fs []*Polynomial) []*Polynomial {
	return ComputeGroebnerBasisWithOptions(fs, Options{})
}

// ComputeGroebnerBasisWithOptions is ComputeGroebnerBasis with the
// eager-termination escape hatch exposed.
func ComputeGroebnerBasisWithOptions(fs []*Polynomial, opts Options) []*Polynomial {
	nonzero := make([]*Polynomial, 0, len(fs))
	for _, f := range fs {
		if !f.IsZero() {
			nonzero = append(nonzero, f)
		}
	}
	if len(nonzero) == 0 {
		return nil
	}
	for _, f := range nonzero[1:] {
		nonzero[0].checkCompatible(f)
	}
	arity, order := nonzero[0].arity, nonzero[0].order

	pre := interreduce(nonzero)
	if len(pre) == 0 {
		return nil
	}
	sort.Slice(pre, func(i, j int) bool {
		if di, dj := degree(pre[i]), degree(pre[j]); di != dj {
			return di < dj
		}
		a, _ := pre[i].LeadingMonomial()
		b, _ := pre[j].LeadingMonomial()
		return a.Compare(b) < 0
	})

	e := newBasisEngine(arity, order)
	for _, f := range pre {
		e.addPolynomial(f)
	}
	e.run(opts)

	out := minimalize(e.g)
	out = reduce(out)
	sortDescendingByLM(out)
	return out
}
