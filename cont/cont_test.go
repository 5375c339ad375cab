package cont

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDynamicWindOrder(t *testing.T) {
	var trace []string
	ctx := NewContext()
	DynamicWind(ctx, func() { trace = append(trace, "connect") },
		func() any {
			trace = append(trace, "talk")
			return nil
		},
		func() { trace = append(trace, "disconnect") })

	assert.Equal(t, []string{"connect", "talk", "disconnect"}, trace)
}

func TestDynamicWindRunsAfterOnPanic(t *testing.T) {
	var trace []string
	ctx := NewContext()
	func() {
		defer func() { recover() }()
		DynamicWind(ctx, func() { trace = append(trace, "before") },
			func() any {
				panic("escape")
			},
			func() { trace = append(trace, "after") })
	}()
	assert.Equal(t, []string{"before", "after"}, trace)
}

func TestNestedDynamicWindOrder(t *testing.T) {
	var trace []string
	ctx := NewContext()
	DynamicWind(ctx, func() { trace = append(trace, "outer-before") },
		func() any {
			DynamicWind(ctx, func() { trace = append(trace, "inner-before") },
				func() any {
					trace = append(trace, "body")
					return nil
				},
				func() { trace = append(trace, "inner-after") })
			return nil
		},
		func() { trace = append(trace, "outer-after") })

	assert.Equal(t, []string{
		"outer-before", "inner-before", "body", "inner-after", "outer-after",
	}, trace)
}

// TestReenterCrossesExtentsInOrder exercises Reenter directly on two
// sibling extents built without going through a live Go call stack --
// the shape a VM would be in after a continuation captured under one
// dynamic-wind is invoked long after both winds returned normally, so
// the invoking code needs only the node tree (not the original Go
// frames) to compute the after-bottom-up / before-top-down crossing.
func TestReenterCrossesExtentsInOrder(t *testing.T) {
	var trace []string
	root := (*Node)(nil)
	ext1 := &Node{
		before: func() { trace = append(trace, "connect1") },
		after:  func() { trace = append(trace, "disconnect1") },
		parent: root,
	}
	ext2 := &Node{
		before: func() { trace = append(trace, "connect2") },
		after:  func() { trace = append(trace, "disconnect2") },
		parent: root,
	}

	ctx := &Context{current: ext2}
	Reenter(ctx, ext1)

	assert.Equal(t, []string{"disconnect2", "connect1"}, trace)
	assert.Equal(t, ext1, ctx.Current())
}

func TestCaptureInvokeGeneric(t *testing.T) {
	ctx := NewContext()
	var resumed int
	var k *Continuation[int]

	DynamicWind(ctx, func() {}, func() any {
		k = Capture(ctx, 42, 1)
		return nil
	}, func() {})

	k.Invoke(ctx, func(snapshot int) { resumed = snapshot })
	assert.Equal(t, 42, resumed)
}

func TestReentrantContinuationEquivalence(t *testing.T) {
	// Invoking the same captured continuation twice must reproduce the
	// same after/before trace both times.
	run := func() []string {
		var trace []string
		ctx := NewContext()
		var k *Continuation[struct{}]
		DynamicWind(ctx, func() { trace = append(trace, "before") },
			func() any {
				k = Capture(ctx, struct{}{}, 0)
				return nil
			},
			func() { trace = append(trace, "after") })

		outerCtx := NewContext()
		k.Invoke(outerCtx, func(struct{}) { trace = append(trace, "resumed") })
		return trace
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
}

func TestLCA(t *testing.T) {
	ctx := NewContext()
	root := ctx.Current()
	a := &Node{parent: root}
	b := &Node{parent: a}
	c := &Node{parent: a}
	assert.Equal(t, a, lca(b, c))
	assert.Equal(t, root, lca(b, root))
	assert.Equal(t, b, lca(b, b))
}
