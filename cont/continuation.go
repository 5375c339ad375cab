package cont

// Continuation captures a point in the evaluator's control flow: the
// dynamic-wind node active at capture time, plus an opaque snapshot of
// the evaluator's own control stack (S -- a *frame chain in the
// evaluator that embeds this package, a plain value in tests). Arity
// records how many values the continuation expects when invoked, since
// Scheme continuations can be multi-valued.
type Continuation[S any] struct {
	node     *Node
	Snapshot S
	Arity    int
}

// Capture records ctx's current dynamic-wind node alongside snapshot.
// The evaluator is responsible for snapshot being a persistent (copy-on-
// capture) structure: this package never mutates it, but re-invoking the
// same Continuation twice only behaves identically if the evaluator's
// own resume function treats Snapshot as immutable and copies before
// mutating.
func Capture[S any](ctx *Context, snapshot S, arity int) *Continuation[S] {
	return &Continuation[S]{node: ctx.current, Snapshot: snapshot, Arity: arity}
}

// Invoke transitions ctx to the continuation's captured extent (running
// the after/before thunks of every dynamic-wind frame being exited or
// entered along the way) and then calls resume with the captured
// snapshot. resume is expected to restore the evaluator's control stack
// and transfer control to the capture point; Invoke does not return in
// the conventional sense when called from inside the evaluator's main
// loop -- that loop is itself what resume (re-)enters.
func (c *Continuation[S]) Invoke(ctx *Context, resume func(S)) {
	Reenter(ctx, c.node)
	resume(c.Snapshot)
}
