package condition

// Handler is invoked with the raised value and returns a result value,
// used only by raise-continuable/with-exception-handler; a handler
// installed purely for non-continuable raise (Guard's own handler, for
// instance) is expected to escape via panic rather than return, and its
// return value is discarded.
type Handler func(v any) any

// Context holds the per-VM handler stack as an explicit, threaded
// object, matching cont.Context's discipline of no module-level mutable
// state.
type Context struct {
	handlers      []Handler
	restartFrames []restartFrame
}

// NewContext returns a Context with an empty handler stack.
func NewContext() *Context {
	return &Context{}
}

// PushHandler installs h as the new topmost handler.
func (ctx *Context) PushHandler(h Handler) {
	ctx.handlers = append(ctx.handlers, h)
}

// PopHandler removes the topmost handler. It is a no-op on an empty
// stack.
func (ctx *Context) PopHandler() {
	if len(ctx.handlers) == 0 {
		return
	}
	ctx.handlers = ctx.handlers[:len(ctx.handlers)-1]
}

// Depth reports how many handlers are currently installed.
func (ctx *Context) Depth() int {
	return len(ctx.handlers)
}

// Uncaught is what an unhandled raise panics with: the root handler
// surfacing the condition at the process boundary, per the "if empty,
// the root handler surfaces the condition and terminates the
// computation" rule.
type Uncaught struct {
	Value any
}

func (u *Uncaught) Error() string {
	if err, ok := u.Value.(error); ok {
		return "uncaught condition: " + err.Error()
	}
	return "uncaught condition"
}

// nonContinuable is panicked when a non-continuable raise's handler
// returns normally instead of escaping via Guard or a continuation.
type nonContinuable struct{ Value any }

func (n *nonContinuable) Error() string { return "handler returned from a non-continuable raise" }

// Raise pops the topmost handler and invokes it with v, with the
// handler stack reduced for the duration of the call so a raise inside
// the handler reaches the next outer handler. If no handler is
// installed, it panics with *Uncaught. A non-continuable raise's
// handler is expected to never return normally (Guard's handler always
// either panics to escape or calls Raise again); if it does return,
// Raise panics with a diagnostic rather than silently continuing.
func Raise(ctx *Context, v any) {
	if len(ctx.handlers) == 0 {
		panic(&Uncaught{Value: v})
	}
	h := ctx.handlers[len(ctx.handlers)-1]
	ctx.handlers = ctx.handlers[:len(ctx.handlers)-1]
	h(v)
	panic(&nonContinuable{Value: v})
}

// RaiseContinuable invokes the topmost handler directly (not via
// panic/recover) and returns whatever it returns, restoring the
// handler afterward so a subsequent raise-continuable at the same call
// site sees the same handler stack again. If no handler is installed it
// panics with *Uncaught, matching Raise.
func RaiseContinuable(ctx *Context, v any) any {
	if len(ctx.handlers) == 0 {
		panic(&Uncaught{Value: v})
	}
	h := ctx.handlers[len(ctx.handlers)-1]
	ctx.handlers = ctx.handlers[:len(ctx.handlers)-1]
	result := h(v)
	ctx.handlers = append(ctx.handlers, h)
	return result
}

// WithExceptionHandler installs handler for the duration of thunk and
// returns thunk's result. A raise-continuable inside thunk calls
// handler directly and resumes at the raise site with handler's return
// value; a non-continuable raise still expects the handler to escape
// (e.g. via Guard or a captured continuation) rather than return.
func WithExceptionHandler(ctx *Context, handler func(v any) any, thunk func() any) any {
	ctx.PushHandler(handler)
	defer ctx.PopHandler()
	return thunk()
}

// escape is the sentinel Guard panics with to unwind to its own
// deferred recover once a clause has matched. owner identifies which
// Guard call the escape belongs to: a raise from inside a nested inner
// Guard's body that matches an *outer* clause panics an escape that
// must unwind past the inner Guard's own recover untouched, and without
// an owner check the inner recover would wrongly claim it (recover
// catches any panic value reaching its defer, not just ones it threw).
type escape struct {
	owner  *int
	result any
}

// Guard evaluates body with a handler installed that, on raise, calls
// clauses(condition); clauses returns (value, true) if some cond-style
// clause matched (its value becomes Guard's result) or (nil, false) if
// none did (including no else), in which case Guard re-raises to the
// next outer handler. Guard's own handler is already removed from the
// stack (by Raise, before invoking it) whether or not a clause matches,
// so a re-raise from inside clauses correctly targets the handler that
// was on the stack before this Guard ran.
func Guard(ctx *Context, clauses func(v any) (any, bool), body func() any) (result any) {
	owner := new(int)
	ctx.PushHandler(func(v any) any {
		if val, ok := clauses(v); ok {
			panic(escape{owner: owner, result: val})
		}
		Raise(ctx, v)
		return nil
	})

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(escape); ok && e.owner == owner {
				result = e.result
				return
			}
			panic(r)
		}
	}()

	result = body()
	ctx.PopHandler()
	return
}
