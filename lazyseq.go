package loomrt

import "github.com/loomrt/loomrt/lazy"

// Promise wraps *lazy.Promise in loom's own Value shape. lazy.Promise's
// payload type is already `any`, so no bridging is needed beyond this
// thin wrapper -- unlike the lazy pair below, which lazy.LazyPair
// hardwires to value.Pair, a type distinct from loomrt's own *Pair.
type Promise struct {
	P *lazy.Promise
}

func (*Promise) MarshalSExp() SExpression { return Symbol("<promise>") }

// (delay ⟨expression⟩)
//
// Evaluates to a promise that, when forced, evaluates expression in the
// environment of the delay expression and returns its value.
func evalDelay(e *Pair, scope *scope) Value {
	args := e.ToVector()
	if len(args) != 2 {
		panic("delay must be of the form (delay ⟨expression⟩)")
	}
	expr := args[1]
	return &Promise{P: lazy.MakeLazy(func() *lazy.Promise {
		return lazy.MakeEager(eval(expr, scope, false))
	})}
}

// Force implements force: forcing a non-promise returns it unchanged.
func Force(args Vector) Value {
	if len(args) != 1 {
		panic("force expects 1 argument")
	}
	p, ok := args[0].(*Promise)
	if !ok {
		return args[0]
	}
	v := lazy.Force(p.P)
	if v == nil {
		return nil
	}
	return v.(Value)
}

// MakePromise implements make-promise: wrapping an already-forced
// promise returns it as-is, matching R7RS's idempotence requirement.
func MakePromise(args Vector) Value {
	if len(args) != 1 {
		panic("make-promise expects 1 argument")
	}
	if p, ok := args[0].(*Promise); ok {
		return p
	}
	return &Promise{P: lazy.MakeEager(args[0])}
}

// LazyPair is an unforced cons cell whose car and cdr are produced
// together by a single thunk call on first inspection -- adapted from
// lazy.LazyPair's algorithm and retyped against loomrt's own *Pair,
// since that predates and is distinct from the value package's *Pair
// (component G's generic, tested version lives in lazy; this is its
// retyping for this evaluator's own value representation).
type LazyPair struct {
	thunk  func() *Pair
	pair   *Pair
	forced bool
}

func (*LazyPair) MarshalSExp() SExpression { return Symbol("<lazy-pair>") }

func forcePair(lp *LazyPair) *Pair {
	if !lp.forced {
		lp.pair = lp.thunk()
		lp.forced = true
		lp.thunk = nil
	}
	return lp.pair
}

// GeneratorToLseq implements generator->lseq: gen is called repeatedly,
// one call per forced cell, until it signals end-of-sequence.
func GeneratorToLseq(args Vector) Value {
	if len(args) != 1 {
		panic("generator->lseq expects 1 argument")
	}
	gen, ok := args[0].(Procedure)
	if !ok {
		panic("the argument to generator->lseq must be a procedure")
	}

	var next func() *Pair
	next = func() *Pair {
		v := gen.Apply(nil)
		if v == nil {
			return nil
		}
		return &Pair{car: v, cdr: &LazyPair{thunk: next}}
	}
	return &LazyPair{thunk: next}
}
