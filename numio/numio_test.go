package numio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomrt/loomrt/value"
)

func TestParseInteger(t *testing.T) {
	n, err := Parse("42", true)
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(42), n)
}

func TestParseHexPrefix(t *testing.T) {
	n, err := Parse("#xff", true)
	require.NoError(t, err)
	assert.Equal(t, value.Fixnum(255), n)
}

func TestParseRational(t *testing.T) {
	n, err := Parse("1/3", true)
	require.NoError(t, err)
	rat := n.(*value.Rational)
	assert.Equal(t, value.Fixnum(1), rat.Numer)
	assert.Equal(t, value.Fixnum(3), rat.Denom)
}

func TestParseDecimalRoundTrip(t *testing.T) {
	n, err := Parse("0.1", true)
	require.NoError(t, err)
	f := n.(value.Flonum)
	assert.Equal(t, "0.1", FormatFlonum(float64(f)))
}

func TestParseSpecialValues(t *testing.T) {
	n, err := Parse("+inf.0", true)
	require.NoError(t, err)
	assert.True(t, n.(value.Flonum).IsInf(1))

	n, err = Parse("+nan.0", true)
	require.NoError(t, err)
	assert.True(t, n.(value.Flonum).IsNaN())
}

func TestParseComplexRectangular(t *testing.T) {
	n, err := Parse("3+4i", true)
	require.NoError(t, err)
	c := n.(*value.Compnum)
	assert.Equal(t, value.Flonum(3), c.Re)
	assert.Equal(t, value.Flonum(4), c.Im)
}

func TestParseExactnessPrefix(t *testing.T) {
	n, err := Parse("#e1.5", true)
	require.NoError(t, err)
	rat := n.(*value.Rational)
	assert.Equal(t, value.Fixnum(3), rat.Numer)
	assert.Equal(t, value.Fixnum(2), rat.Denom)
}

func TestParseInvalidStrict(t *testing.T) {
	_, err := Parse("not-a-number", true)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseInvalidNonStrict(t *testing.T) {
	n, err := Parse("not-a-number", false)
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestFormatFlonumSuppressesExponent(t *testing.T) {
	assert.Equal(t, "3.14", FormatFlonum(3.14))
	assert.Equal(t, "100.0", FormatFlonum(100.0))
	assert.Equal(t, "0.0", FormatFlonum(0.0))
}

func TestFormatFlonumSpecials(t *testing.T) {
	assert.Equal(t, "+inf.0", FormatFlonum(math.Inf(1)))
	assert.Equal(t, "-inf.0", FormatFlonum(math.Inf(-1)))
	assert.Equal(t, "+nan.0", FormatFlonum(math.NaN()))
}

func TestFormatRational(t *testing.T) {
	rat := &value.Rational{Numer: value.Fixnum(1), Denom: value.Fixnum(3)}
	assert.Equal(t, "1/3", Format(rat, 10, false))
}

func TestFormatHexUppercase(t *testing.T) {
	assert.Equal(t, "FF", Format(value.Fixnum(255), 16, true))
}

func TestShortestDigitsRoundTrip(t *testing.T) {
	for _, v := range []float64{0.1, 1.0 / 3.0, 100.0, 1e20, 1.5e-10, 123456789.123456} {
		s := FormatFlonum(v)
		n, err := Parse(s, true)
		require.NoError(t, err)
		assert.Equal(t, v, float64(n.(value.Flonum)), "round-trip of %v via %q", v, s)
	}
}
