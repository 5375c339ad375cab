package loomrt

import (
	"io"

	"github.com/loomrt/loomrt/condition"
)

// condCtx is the single handler stack the demo evaluator tracks,
// matching dynamicWindCtx's single-instance style.
var condCtx = condition.NewContext()

// Condition wraps *condition.Condition in loom's own Value/SExpression
// shape so it can flow through raise/guard and be printed.
type Condition struct {
	C *condition.Condition
}

func (c *Condition) MarshalSExp() SExpression { return c }

func (c *Condition) write(w io.Writer) error {
	_, err := w.Write([]byte(c.C.Error()))
	return err
}

// Raise implements raise: r raises args[0] to the innermost handler
// installed by with-exception-handler or guard; a raise with no handler
// installed panics with *condition.Uncaught, terminating the program the
// way an uncaught condition does in a real REPL.
func Raise(args Vector) Value {
	if len(args) != 1 {
		panic("raise expects 1 argument")
	}
	condition.Raise(condCtx, args[0])
	return nil
}

// RaiseContinuable implements raise-continuable: the installed handler's
// return value becomes raise-continuable's own result, letting the
// computation resume at the raise site instead of escaping it.
func RaiseContinuable(args Vector) Value {
	if len(args) != 1 {
		panic("raise-continuable expects 1 argument")
	}
	return condition.RaiseContinuable(condCtx, args[0]).(Value)
}

// WithExceptionHandler implements with-exception-handler: handler is
// installed for the dynamic extent of thunk's call. A raise-continuable
// inside thunk calls handler directly and resumes with its return value;
// a plain raise expects handler to escape (e.g. via a continuation) --
// if it returns instead, the call panics with a diagnostic.
func WithExceptionHandler(args Vector) Value {
	if len(args) != 2 {
		panic("with-exception-handler expects 2 arguments")
	}
	handler, ok := args[0].(Procedure)
	if !ok {
		panic("the first argument to with-exception-handler must be a procedure")
	}
	thunk, ok := args[1].(Procedure)
	if !ok {
		panic("the second argument to with-exception-handler must be a procedure")
	}

	result := condition.WithExceptionHandler(condCtx,
		func(v any) any { return handler.Apply(Vector{v.(Value)}) },
		func() any { return thunk.Apply(nil) },
	)
	return result.(Value)
}

// Error implements the error procedure: it builds an error condition
// (condition.ErrorType) from a message string and irritants and raises
// it, the primitive
// Scheme code uses to signal application-level failures through the
// same condition machinery raise/guard observe.
func Error(args Vector) Value {
	if len(args) == 0 {
		panic("error expects at least 1 argument")
	}
	msg, ok := args[0].(String)
	if !ok {
		panic("the first argument to error must be a string")
	}
	irritants := make([]any, len(args)-1)
	for i, v := range args[1:] {
		irritants[i] = v
	}
	condition.Raise(condCtx, &Condition{C: condition.New(condition.ErrorType, string(msg), irritants...)})
	return nil
}

// (guard (⟨variable⟩ ⟨cond clause⟩ ...) ⟨body⟩ ...)
//
// Evaluates body with a handler installed: on raise, the clauses are
// tried as in cond with variable bound to the raised value. If a clause
// (including else) matches, its value becomes guard's value; if none
// do, the condition is re-raised to the next outer handler.
func evalGuard(e *Pair, scope *scope, tail bool) Value {
	const invalidGuard = "guard must be of the form (guard (⟨variable⟩ ⟨clause⟩ ...) ⟨body⟩ ...)"

	args := e.ToVector()
	if len(args) < 2 {
		panic(invalidGuard)
	}

	spec, ok := args[1].(*Pair)
	if !ok {
		panic(invalidGuard)
	}
	varSym, ok := spec.car.(Symbol)
	if !ok {
		panic(invalidGuard)
	}
	clauses, _ := spec.cdr.(*Pair)
	body := args[2:]

	result := condition.Guard(condCtx,
		func(v any) (any, bool) {
			gscope := scope.push()
			gscope.set(varSym, v.(Value))
			for c := clauses; c != nil; c, _ = c.cdr.(*Pair) {
				clause, ok := c.car.(*Pair)
				if !ok {
					panic("guard clause must be of the form (⟨test⟩ ⟨expression⟩ ...), (⟨test⟩ => ⟨expression⟩), or (else ⟨expression⟩ ...)")
				}
				if c.cdr == nil && isElse(clause) {
					return evalBegin(clause, gscope, false), true
				}
				t := eval(clause.car, gscope, false)
				if Truthy(t) {
					return evalClause(t, clause, gscope, false), true
				}
			}
			return nil, false
		},
		func() any { return evalBodySeq(body, scope, false) },
	)
	return result.(Value)
}

func evalBodySeq(body []Value, scope *scope, tail bool) Value {
	if len(body) == 0 {
		return nil
	}
	for _, x := range body[:len(body)-1] {
		eval(x, scope, false)
	}
	return eval(body[len(body)-1], scope, tail)
}
