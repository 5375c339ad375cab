package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func big(s string) *Int {
	v, ok := FromString(s, 10)
	if !ok {
		panic("bad literal: " + s)
	}
	return v
}

func TestAddSub(t *testing.T) {
	a := FromInt64(123456789012345)
	b := FromInt64(987654321098765)
	sum := Add(a, b)
	assert.Equal(t, "1111111110111110", sum.Text(10))

	diff := Sub(b, a)
	assert.Equal(t, "864197532086420", diff.Text(10))

	assert.True(t, Sub(a, a).IsZero())
}

func TestMul(t *testing.T) {
	a := big("123456789012345678901234567890")
	b := big("987654321098765432109876543210")
	got := Mul(a, b)
	want := "121932631137021795226185032733622923332237463801111263526900"
	assert.Equal(t, want, got.Text(10))
}

func TestDivMod(t *testing.T) {
	cases := []struct {
		x, y       int64
		q, r       int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{0, 5, 0, 0},
	}
	for _, c := range cases {
		q, r, err := DivMod(FromInt64(c.x), FromInt64(c.y))
		require.NoError(t, err)
		qv, _ := q.FitsInt64()
		rv, _ := r.FitsInt64()
		assert.Equal(t, c.q, qv, "quotient of %d/%d", c.x, c.y)
		assert.Equal(t, c.r, rv, "remainder of %d/%d", c.x, c.y)
	}

	_, _, err := DivMod(FromInt64(1), FromInt64(0))
	assert.ErrorIs(t, err, ErrDivByZero{})
}

func TestDivModBig(t *testing.T) {
	x := big("123456789012345678901234567890123456789")
	y := big("987654321098765432109")
	q, r, err := DivMod(x, y)
	require.NoError(t, err)
	// x == q*y + r
	check := Add(Mul(q, y), r)
	assert.Equal(t, x.Text(10), check.Text(10))
	assert.True(t, Cmp(Abs(r), Abs(y)) < 0)
}

func TestShift(t *testing.T) {
	x := FromInt64(1)
	shifted := Lsh(x, 100)
	assert.Equal(t, 101, shifted.BitLen())

	back := Rsh(shifted, 100)
	v, _ := back.FitsInt64()
	assert.Equal(t, int64(1), v)

	neg := FromInt64(-1)
	assert.True(t, Rsh(neg, 10).Sign() < 0)
	v2, _ := Rsh(neg, 10).FitsInt64()
	assert.Equal(t, int64(-1), v2) // arithmetic shift of -1 is always -1
}

func TestBitwise(t *testing.T) {
	a := FromInt64(12)  // 0b1100
	b := FromInt64(10)  // 0b1010
	av, _ := And(a, b).FitsInt64()
	assert.Equal(t, int64(8), av)
	ov, _ := Or(a, b).FitsInt64()
	assert.Equal(t, int64(14), ov)
	xv, _ := Xor(a, b).FitsInt64()
	assert.Equal(t, int64(6), xv)
	nv, _ := Not(FromInt64(0)).FitsInt64()
	assert.Equal(t, int64(-1), nv)
}

func TestGCD(t *testing.T) {
	g := GCD(FromInt64(48), FromInt64(18))
	v, _ := g.FitsInt64()
	assert.Equal(t, int64(6), v)

	assert.True(t, GCD(FromInt64(0), FromInt64(0)).IsZero())
	v2, _ := GCD(FromInt64(0), FromInt64(7)).FitsInt64()
	assert.Equal(t, int64(7), v2)
}

func TestFromFloat64Truncates(t *testing.T) {
	x := FromFloat64(3.9)
	v, _ := x.FitsInt64()
	assert.Equal(t, int64(3), v)

	x = FromFloat64(-3.9)
	v, _ = x.FitsInt64()
	assert.Equal(t, int64(-3), v)
}

func TestIntegerLength(t *testing.T) {
	assert.Equal(t, 0, IntegerLength(FromInt64(0)))
	assert.Equal(t, 3, IntegerLength(FromInt64(4)))  // 100
	assert.Equal(t, 0, IntegerLength(FromInt64(-1))) // -1 is all-1s
	assert.Equal(t, 2, IntegerLength(FromInt64(-4))) // -4 = ...100
}
