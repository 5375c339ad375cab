package numeric

import (
	"math"
	"math/cmplx"

	"github.com/loomrt/loomrt/bignum"
	"github.com/loomrt/loomrt/value"
)

// Expt implements (expt base power), grounded on original_source's
// Scm_Expt: an exact base raised to a non-negative exact integer power
// stays exact via repeated squaring; a negative exact integer power
// inverts the exact result; any inexact operand falls through to
// float64/complex128 math.
func Expt(base, power value.Number) (value.Number, error) {
	if value.IsExact(base) && value.IsInteger(power) && value.IsExact(power) {
		pf, ok := power.(value.Fixnum)
		if ok {
			return exactExpt(base, int64(pf))
		}
	}
	if base.Kind() == value.KindCompnum || power.Kind() == value.KindCompnum {
		bc := complex(ToFloat64(realPart(base)), ToFloat64(imagPart(base)))
		pc := complex(ToFloat64(realPart(power)), ToFloat64(imagPart(power)))
		r := cmplx.Pow(bc, pc)
		return normalizeCompnum(value.Flonum(real(r)), value.Flonum(imag(r))), nil
	}
	return value.Flonum(math.Pow(ToFloat64(base), ToFloat64(power))), nil
}

func realPart(v value.Number) value.Number {
	if c, ok := v.(*value.Compnum); ok {
		return c.Re
	}
	return v
}

func imagPart(v value.Number) value.Number {
	if c, ok := v.(*value.Compnum); ok {
		return c.Im
	}
	return value.Fixnum(0)
}

// exactExpt computes base^n exactly by repeated squaring, n possibly
// negative (producing a reduced rational).
func exactExpt(base value.Number, n int64) (value.Number, error) {
	if n == 0 {
		return value.Fixnum(1), nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := value.Number(value.Fixnum(1))
	b := base
	for n > 0 {
		if n&1 == 1 {
			r, err := Mul(result, b)
			if err != nil {
				return nil, err
			}
			result = r
		}
		n >>= 1
		if n > 0 {
			sq, err := Mul(b, b)
			if err != nil {
				return nil, err
			}
			b = sq
		}
	}
	if neg {
		return Div(value.Fixnum(1), result)
	}
	return result, nil
}

// pow10Cache/pow2Cache memoize small exact powers of ten and two, the way
// number.c's iexpt10 does for decimal<->binary flonum conversion; grown
// lazily and never shrunk.
var pow10Cache = []*bignum.Int{bignum.FromInt64(1)}
var pow2Cache = []*bignum.Int{bignum.FromInt64(1)}

func pow10(n int) *bignum.Int {
	for len(pow10Cache) <= n {
		pow10Cache = append(pow10Cache, bignum.Mul(pow10Cache[len(pow10Cache)-1], bignum.FromInt64(10)))
	}
	return pow10Cache[n]
}

func pow2(n int) *bignum.Int {
	for len(pow2Cache) <= n {
		pow2Cache = append(pow2Cache, bignum.Lsh(pow2Cache[len(pow2Cache)-1], 1))
	}
	return pow2Cache[n]
}
