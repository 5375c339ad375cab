package loomrt

import "github.com/loomrt/loomrt/cont"

// dynamicWindCtx is the single dynamic-wind extent the demo evaluator
// tracks -- one Context per running program, matching globalScope's own
// single-instance style.
var dynamicWindCtx = cont.NewContext()

// continuation is a captured escape point. Invoking it rewinds
// dynamicWindCtx to the extent active at capture time (running every
// before/after thunk that crosses), then transfers control back to the
// call/cc call site by panicking. An invocation unwinds the Go stack to
// the capturing call/cc frame, which then returns the invoked values, so
// a continuation takes effect only while that frame is still on the Go
// call stack; it is not re-entered after that frame has returned, and
// the panic of such a late invocation is not recovered by any call/cc.
// Re-entrant continuations need a reifiable control stack, which cont's
// Node/Capture/Invoke protocol supports in general (see cont's own
// reentrancy test) but a tree-walking evaluator built directly on Go's
// call stack does not.
type continuation struct {
	owner *int
	node  *cont.Node
}

func (*continuation) MarshalSExp() SExpression { return Symbol("<continuation>") }

type continuationInvoked struct {
	owner  *int
	values Vector
}

func (k *continuation) Apply(args Vector) Value {
	cont.Reenter(dynamicWindCtx, k.node)
	panic(continuationInvoked{owner: k.owner, values: args})
}

// CallCC implements call-with-current-continuation: proc is called with
// a fresh continuation capturing dynamicWindCtx's current extent. If
// proc returns normally, its value is call/cc's value; if the
// continuation is invoked instead, control resumes here with the
// invoked values (single value verbatim, multiple values as a list).
func CallCC(args Vector) (result Value) {
	if len(args) != 1 {
		panic("call/cc expects 1 argument")
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic("the argument to call/cc must be a procedure")
	}

	owner := new(int)
	k := &continuation{owner: owner, node: dynamicWindCtx.Current()}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		invoked, ok := r.(continuationInvoked)
		if !ok || invoked.owner != owner {
			panic(r)
		}
		if len(invoked.values) == 1 {
			result = invoked.values[0]
			return
		}
		result = invoked.values.ToList()
	}()

	return proc.Apply(Vector{k})
}

// DynamicWind implements dynamic-wind: before and after are zero-argument
// procedures run on entry and exit of thunk's dynamic extent. after runs
// even if thunk escapes via a continuation call or a raised condition,
// per cont.DynamicWind's guarantee. before/after run with the parent
// extent current, not the extent dynamic-wind itself pushes.
func DynamicWind(args Vector) Value {
	if len(args) != 3 {
		panic("dynamic-wind expects 3 arguments")
	}
	before, ok := args[0].(Procedure)
	if !ok {
		panic("the first argument to dynamic-wind must be a procedure")
	}
	thunk, ok := args[1].(Procedure)
	if !ok {
		panic("the second argument to dynamic-wind must be a procedure")
	}
	after, ok := args[2].(Procedure)
	if !ok {
		panic("the third argument to dynamic-wind must be a procedure")
	}

	return cont.DynamicWind(dynamicWindCtx,
		func() { before.Apply(nil) },
		func() Value { return thunk.Apply(nil) },
		func() { after.Apply(nil) },
	)
}
