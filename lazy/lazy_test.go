package lazy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomrt/loomrt/value"
)

func TestForceEagerReturnsValueDirectly(t *testing.T) {
	p := MakeEager(value.Fixnum(7))
	assert.Equal(t, value.Fixnum(7), Force(p))
	assert.True(t, p.Forced())
}

func TestForceLazyRunsThunkOnce(t *testing.T) {
	calls := 0
	p := MakeLazy(func() *Promise {
		calls++
		return MakeEager(value.Fixnum(99))
	})

	assert.Equal(t, value.Fixnum(99), Force(p))
	assert.Equal(t, value.Fixnum(99), Force(p))
	assert.Equal(t, 1, calls, "force must memoize, not re-run the thunk")
}

func TestForceSplicesThroughChainedDelays(t *testing.T) {
	// Chain of 10000 forwarding promises, only the last one eager -- Force
	// must resolve this without recursing (a deep chain would overflow
	// the Go stack if Force called itself instead of looping).
	final := MakeEager(value.Fixnum(1))
	chain := final
	for i := 0; i < 10000; i++ {
		next := chain
		chain = MakeLazy(func() *Promise { return next })
	}
	assert.Equal(t, value.Fixnum(1), Force(chain))
}

func TestForceSplicePointsAtInnerPromise(t *testing.T) {
	inner := MakeLazy(func() *Promise { return MakeEager(value.Fixnum(5)) })
	outer := MakeLazy(func() *Promise { return inner })

	assert.Equal(t, value.Fixnum(5), Force(outer))
	assert.True(t, inner.Forced(), "forcing outer must also force and memoize inner")
}

func TestLazyPairForcesOnce(t *testing.T) {
	calls := 0
	lp := MakeLazyPair(func() *value.Pair {
		calls++
		return &value.Pair{Car: value.Fixnum(1), Cdr: (*value.Pair)(nil)}
	})

	assert.True(t, IsPair(lp))
	car, ok := Car(lp)
	require.True(t, ok)
	assert.Equal(t, value.Fixnum(1), car)

	rest, ok := Cdr(lp)
	require.True(t, ok)
	assert.Nil(t, rest.(*value.Pair))
	assert.Equal(t, 1, calls)
}

func TestLazyPairEmptyIsNotAPair(t *testing.T) {
	lp := MakeLazyPair(func() *value.Pair { return nil })
	assert.False(t, IsPair(lp))
	_, ok := Car(lp)
	assert.False(t, ok)
}

func TestGeneratorToLseqYieldsInOrder(t *testing.T) {
	i := 0
	gen := func() (value.Value, bool) {
		if i >= 3 {
			return nil, false
		}
		i++
		return value.Fixnum(i), true
	}

	seq := GeneratorToLseq(gen)
	var got []int64
	var cur any = seq
	for IsPair(cur) {
		car, _ := Car(cur)
		got = append(got, int64(car.(value.Fixnum)))
		cur, _ = Cdr(cur)
	}

	assert.Equal(t, []int64{1, 2, 3}, got)
	assert.False(t, IsPair(cur))
}
