package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomrt/loomrt/bignum"
	"github.com/loomrt/loomrt/value"
)

func TestAddContagion(t *testing.T) {
	sum, err := Add(value.Fixnum(1), value.Flonum(2.5))
	require.NoError(t, err)
	assert.Equal(t, value.Flonum(3.5), sum)
}

func TestDivProducesExactRational(t *testing.T) {
	r, err := Div(value.Fixnum(1), value.Fixnum(3))
	require.NoError(t, err)
	rat, ok := r.(*value.Rational)
	require.True(t, ok, "expected a rational, got %T", r)
	assert.Equal(t, value.Fixnum(1), rat.Numer)
	assert.Equal(t, value.Fixnum(3), rat.Denom)
}

func TestDivByExactZero(t *testing.T) {
	_, err := Div(value.Fixnum(1), value.Fixnum(0))
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestDivByZeroFlonum(t *testing.T) {
	r, err := Div(value.Fixnum(1), value.Flonum(0))
	require.NoError(t, err)
	f := r.(value.Flonum)
	assert.True(t, f.IsInf(1))
}

func TestRationalReducesToInteger(t *testing.T) {
	r, err := NewRational(value.Fixnum(6), value.Fixnum(3))
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(2), r)
}

func TestMulZeroAbsorbsInexact(t *testing.T) {
	r, err := Mul(value.Fixnum(0), value.Flonum(1e300))
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(0), r)
}

func TestExptExact(t *testing.T) {
	r, err := Expt(value.Fixnum(2), value.Fixnum(100))
	require.NoError(t, err)
	big, ok := r.(*value.Bignum)
	require.True(t, ok)
	assert.Equal(t, "1267650600228229401496703205376", big.V.String())
}

func TestExptNegativePower(t *testing.T) {
	r, err := Expt(value.Fixnum(2), value.Fixnum(-2))
	require.NoError(t, err)
	rat := r.(*value.Rational)
	assert.Equal(t, value.Fixnum(1), rat.Numer)
	assert.Equal(t, value.Fixnum(4), rat.Denom)
}

func TestCompareMixedExactInexact(t *testing.T) {
	big, _ := Expt(value.Fixnum(2), value.Fixnum(60))
	flo := value.Flonum(ToFloat64(big))
	// 2^60 as a flonum round-trips exactly (53-bit mantissa covers it
	// only if the low bits are zero, which they are for a power of two).
	assert.True(t, Equal(big, flo))
}

func TestGcdLcm(t *testing.T) {
	assert.Equal(t, value.Fixnum(6), Gcd(value.Fixnum(48), value.Fixnum(18)))
	l, err := Lcm(value.Fixnum(4), value.Fixnum(6))
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(12), l)
}

func TestQuotientRemainderModulo(t *testing.T) {
	q, err := Quotient(value.Fixnum(-7), value.Fixnum(2))
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(-3), q)

	r, err := Remainder(value.Fixnum(-7), value.Fixnum(2))
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(-1), r)

	m, err := Modulo(value.Fixnum(-7), value.Fixnum(2))
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(1), m)
}

func TestRoundToEven(t *testing.T) {
	half, err := NewRational(value.Fixnum(5), value.Fixnum(2))
	require.NoError(t, err)
	r, err := Round(half, RoundNearest)
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(2), r) // 2.5 rounds to even: 2

	threeHalf, err := NewRational(value.Fixnum(7), value.Fixnum(2))
	require.NoError(t, err)
	r2, err := Round(threeHalf, RoundNearest)
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(4), r2) // 3.5 rounds to even: 4
}

func TestSqrtExactPerfectSquare(t *testing.T) {
	r, err := Sqrt(value.Fixnum(144))
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(12), r)
}

func TestSqrtNegativeProducesCompnum(t *testing.T) {
	r, err := Sqrt(value.Fixnum(-4))
	require.NoError(t, err)
	c, ok := r.(*value.Compnum)
	require.True(t, ok)
	assert.Equal(t, value.Flonum(2), c.Im)
}

func TestToExactRoundTrip(t *testing.T) {
	e, err := ToExact(value.Flonum(0.5))
	require.NoError(t, err)
	rat := e.(*value.Rational)
	assert.Equal(t, value.Fixnum(1), rat.Numer)
	assert.Equal(t, value.Fixnum(2), rat.Denom)
}

func TestNumeratorDenominator(t *testing.T) {
	r, _ := NewRational(value.Fixnum(3), value.Fixnum(4))
	n, d := NumeratorDenominator(r)
	assert.Equal(t, value.Fixnum(3), n)
	assert.Equal(t, value.Fixnum(4), d)

	n2, d2 := NumeratorDenominator(value.Fixnum(5))
	assert.Equal(t, value.Fixnum(5), n2)
	assert.Equal(t, value.Fixnum(1), d2)
}

func TestIntegerLengthGrounding(t *testing.T) {
	// sanity check that numeric and bignum agree on a shared fixture.
	assert.Equal(t, 8, bignum.IntegerLength(bignum.FromInt64(200)))
}
