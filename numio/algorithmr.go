package numio

import (
	"math"

	"github.com/loomrt/loomrt/bignum"
)

// decimalToFlonum converts the exact decimal value f*10^scale (f >= 0) to
// the nearest float64, correctly rounded, via Clinger's Algorithm R: seed
// a float64 estimate with ordinary floating-point arithmetic, decode it
// into an integer mantissa and binary exponent, then walk the mantissa up
// or down by comparing the decimal value against the candidate's exact
// value until they agree to within half a unit in the last place.
func decimalToFlonum(f *bignum.Int, scale int, neg bool) float64 {
	if f.IsZero() {
		if neg {
			return math.Copysign(0, -1)
		}
		return 0
	}

	// A decimal magnitude with more than ~309 digits before the point
	// overflows float64; fewer than ~-324 underflows to zero. Bail out
	// early rather than building enormous intermediate bignums.
	digits := len(f.String())
	decExp := digits + scale
	if decExp > 310 {
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if decExp < -324 {
		if neg {
			return math.Copysign(0, -1)
		}
		return 0
	}

	approx := approxFloat(f, scale)
	if math.IsInf(approx, 0) || approx == 0 {
		if neg {
			return -approx
		}
		return approx
	}

	mant, exp := math.Frexp(approx)
	const bits = 53
	m := int64(mant * (1 << bits))
	e := exp - bits

	for {
		cmp := compareDecimalToBinary(f, scale, m, e)
		if cmp == 0 {
			break
		}
		// Stop once the decimal value lies within half a unit of m: compare
		// it with the midpoint between m and its neighbour on that side (the
		// neighbour below m = 2^52 is half as far away); ties go to even m.
		var mid int
		switch {
		case cmp > 0:
			mid = compareDecimalToBinary(f, scale, 2*m+1, e-1)
		case m == 1<<(bits-1):
			mid = -compareDecimalToBinary(f, scale, 4*m-1, e-2)
		default:
			mid = -compareDecimalToBinary(f, scale, 2*m-1, e-1)
		}
		if mid < 0 || (mid == 0 && m%2 == 0) {
			break
		}
		if cmp > 0 {
			m++
		} else {
			m--
		}
		// Renormalize if the increment/decrement pushed m out of the
		// 53-bit window.
		if m >= (1 << bits) {
			m >>= 1
			e++
		} else if m < (1 << (bits - 1)) {
			m = m<<1 + 1
			e--
		}
	}

	result := math.Ldexp(float64(m), e)
	if neg {
		return -result
	}
	return result
}

// approxFloat computes a rough float64 estimate of f*10^scale using
// ordinary (imprecise) floating point; Algorithm R only needs this as a
// starting point for the exact refinement loop above.
func approxFloat(f *bignum.Int, scale int) float64 {
	mag := f.Float64()
	if scale == 0 {
		return mag
	}
	return mag * math.Pow(10, float64(scale))
}

// compareDecimalToBinary returns the sign of (f*10^scale) - (m*2^e),
// computed exactly via bignum by cross-multiplying onto a common
// denominator.
func compareDecimalToBinary(f *bignum.Int, scale int, m int64, e int) int {
	lhsNum, lhsDen := scaledByTen(f, scale)
	rhs := bignum.FromInt64(m)
	rhsNum, rhsDen := scaledByTwo(rhs, e)

	left := bignum.Mul(lhsNum, rhsDen)
	right := bignum.Mul(rhsNum, lhsDen)
	return bignum.Cmp(left, right)
}

func scaledByTen(f *bignum.Int, scale int) (num, den *bignum.Int) {
	if scale >= 0 {
		return bignum.Mul(f, pow10(scale)), bignum.FromInt64(1)
	}
	return f, pow10(-scale)
}

func scaledByTwo(f *bignum.Int, e int) (num, den *bignum.Int) {
	if e >= 0 {
		return bignum.Lsh(f, uint(e)), bignum.FromInt64(1)
	}
	return f, bignum.Lsh(bignum.FromInt64(1), uint(-e))
}

var pow10Cache = []*bignum.Int{bignum.FromInt64(1)}

func pow10(n int) *bignum.Int {
	for len(pow10Cache) <= n {
		pow10Cache = append(pow10Cache, bignum.Mul(pow10Cache[len(pow10Cache)-1], bignum.FromInt64(10)))
	}
	return pow10Cache[n]
}
