// Package lazy implements component G: promises (delay/force) and lazy
// pairs. Neither *Promise nor *LazyPair implements value.Value's
// (unexported) schemeValue method -- Gauche itself does not treat a
// lazy pair as a distinct Scheme type either (SCM_LAZY_PAIRP is checked
// specially by car/cdr/pair?, ahead of the ordinary SCM_PAIRP dispatch)
// -- so the evaluator that wires this package in is expected to
// special-case *Promise/*LazyPair the same way, forcing to a genuine
// value.Value before continuing its own type switch.
package lazy

// Kind distinguishes a promise still holding a thunk from one already
// carrying its result.
type Kind int

const (
	Lazy Kind = iota
	Eager
)

// Promise is a delay/force cell. A Lazy promise holds a Thunk that,
// when called, produces another *Promise (possibly itself Lazy, in
// which case Force splices rather than recursing); an Eager promise
// already holds its Value.
type Promise struct {
	kind  Kind
	thunk Thunk
	value any
}

// Thunk produces the next promise in a delay/force chain.
type Thunk func() *Promise

// MakeLazy wraps thunk in a not-yet-forced promise.
func MakeLazy(thunk Thunk) *Promise {
	return &Promise{kind: Lazy, thunk: thunk}
}

// MakeEager wraps an already-computed value in a promise, matching
// R7RS's make-promise on a non-promise argument.
func MakeEager(v any) *Promise {
	return &Promise{kind: Eager, value: v}
}

// Forced reports whether p has already been forced (or was constructed
// eager).
func (p *Promise) Forced() bool {
	return p.kind == Eager
}

// Force walks the delay chain iteratively: while p is lazy, call its
// thunk to get p2; if p2 is eager, memoize p2's value into p (in place,
// so every other reference to p sees the forced result) and return; if
// p2 is itself lazy, splice p's thunk to p2's thunk and loop. Each lazy
// p2 spliced through this way is memoized with the same final value, so
// forcing p also forces them. This never recurses, so an arbitrarily
// long chain of chained delays forces in constant Go stack.
func Force(p *Promise) any {
	var spliced []*Promise
	for p.kind == Lazy {
		p2 := p.thunk()
		if p2.kind == Eager {
			p.kind = Eager
			p.value = p2.value
			p.thunk = nil
			break
		}
		p.thunk = p2.thunk
		spliced = append(spliced, p2)
	}
	for _, q := range spliced {
		q.kind, q.value, q.thunk = Eager, p.value, nil
	}
	return p.value
}
