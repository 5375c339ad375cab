package condition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeLattice(t *testing.T) {
	assert.True(t, IOReadErrorType.IsA(ReadErrorType))
	assert.True(t, IOReadErrorType.IsA(PortErrorType))
	assert.True(t, IOReadErrorType.IsA(IOErrorType))
	assert.True(t, IOReadErrorType.IsA(ErrorType))
	assert.True(t, IOReadErrorType.IsA(ConditionType))
	assert.False(t, MessageType.IsA(ErrorType))
}

func TestConditionHasType(t *testing.T) {
	c := New(ReadErrorType, "unexpected EOF")
	assert.True(t, c.HasType(ReadErrorType))
	assert.True(t, c.HasType(IOErrorType))
	assert.False(t, c.HasType(SystemErrorType))
}

func TestErrorsIsAgainstSentinel(t *testing.T) {
	c := New(ReadErrorType, "bad token")
	assert.True(t, errors.Is(c, Sentinel(IOErrorType)))
	assert.False(t, errors.Is(c, Sentinel(SystemErrorType)))
}

func TestCompoundFlattensNested(t *testing.T) {
	a := New(ReadErrorType, "a")
	b := New(SystemErrorType, "b")
	inner := MakeCompound(a, b)
	c := New(MessageType, "c")
	outer := MakeCompound(inner, c)

	assert.Len(t, outer.Members, 3)
	assert.True(t, outer.HasType(IOErrorType))
	assert.True(t, outer.HasType(MessageType))
	assert.False(t, outer.HasType(PortErrorType))
}

func TestExtractReturnsFirstMatch(t *testing.T) {
	a := New(ReadErrorType, "a")
	b := New(SystemErrorType, "b")
	compound := MakeCompound(a, b)

	got, ok := Extract(compound, SystemErrorType)
	require.True(t, ok)
	assert.Equal(t, b, got)

	_, ok = Extract(compound, MessageType)
	assert.False(t, ok)
}

func TestRaiseUncaughtPanics(t *testing.T) {
	ctx := NewContext()
	defer func() {
		assert.Equal(t, &Uncaught{Value: "boom"}, recover())
	}()
	Raise(ctx, "boom")
}

func TestRaiseReachesTopmostHandlerWithReducedStack(t *testing.T) {
	ctx := NewContext()
	var seenDepthDuringHandler int
	ctx.PushHandler(func(v any) any {
		seenDepthDuringHandler = ctx.Depth()
		panic("unwind")
	})

	func() {
		defer func() { recover() }()
		Raise(ctx, "x")
	}()

	assert.Equal(t, 0, seenDepthDuringHandler)
}

func TestGuardMatchingClauseEscapesWithValue(t *testing.T) {
	ctx := NewContext()
	result := Guard(ctx, func(v any) (any, bool) {
		if s, ok := v.(string); ok && s == "known" {
			return "handled:" + s, true
		}
		return nil, false
	}, func() any {
		Raise(ctx, "known")
		return "unreached"
	})

	assert.Equal(t, "handled:known", result)
	assert.Equal(t, 0, ctx.Depth())
}

func TestGuardNoMatchReRaisesToOuterHandler(t *testing.T) {
	ctx := NewContext()
	outer := Guard(ctx, func(v any) (any, bool) {
		return "outer-caught:" + v.(string), true
	}, func() any {
		return Guard(ctx, func(v any) (any, bool) {
			return nil, false // inner guard never matches, must re-raise
		}, func() any {
			Raise(ctx, "deep")
			return nil
		})
	})

	assert.Equal(t, "outer-caught:deep", outer)
}

func TestGuardBodyCompletesNormally(t *testing.T) {
	ctx := NewContext()
	result := Guard(ctx, func(v any) (any, bool) {
		return "should not run", true
	}, func() any {
		return "ok"
	})
	assert.Equal(t, "ok", result)
	assert.Equal(t, 0, ctx.Depth())
}

func TestRaiseContinuableResumesWithHandlerResult(t *testing.T) {
	ctx := NewContext()
	result := WithExceptionHandler(ctx, func(v any) any {
		return v.(int) * 2
	}, func() any {
		return RaiseContinuable(ctx, 21)
	})
	assert.Equal(t, 42, result)
	assert.Equal(t, 0, ctx.Depth())
}

func TestWithRestartsInvokeByName(t *testing.T) {
	ctx := NewContext()
	result := WithRestarts(ctx, []Restart{
		{Name: "use-value", Run: func(args ...any) any { return args[0] }},
	}, func() any {
		return ctx.InvokeRestart("use-value", "fallback")
	})
	assert.Equal(t, "fallback", result)
	_, ok := ctx.FindRestart("use-value")
	assert.False(t, ok)
}

func TestInvokeRestartMissingPanics(t *testing.T) {
	ctx := NewContext()
	assert.Panics(t, func() {
		ctx.InvokeRestart("nope")
	})
}
