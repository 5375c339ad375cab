package numeric

import (
	"math"

	"github.com/loomrt/loomrt/bignum"
	"github.com/loomrt/loomrt/value"
)

// Equal implements numeric equality (=), which compares across exactness:
// an exact and an inexact value are equal when the inexact value, read
// exactly, equals the exact one -- never by converting the exact side to
// float64 first, which would silently lose precision for large
// integers.
func Equal(a, b value.Number) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}

// Compare orders two real numbers, returning (-1|0|1, true), or
// (0, false) if either side is NaN or either is complex (those have no
// total order). Mixed exact/inexact comparisons are done exactly: the
// flonum operand is decomposed into its exact rational value via
// math.Frexp rather than compared as float64, so (= (expt 2 60) 1.0e18)
// style comparisons near the edge of float64 precision are decided
// correctly.
func Compare(a, b value.Number) (int, bool) {
	if isComplex(a) || isComplex(b) {
		return 0, false
	}
	if isNaN(a) || isNaN(b) {
		return 0, false
	}
	if value.IsExact(a) && value.IsExact(b) {
		return compareExact(a, b), true
	}
	return compareMixed(a, b), true
}

func isComplex(v value.Number) bool { return v.Kind() == value.KindCompnum }

func isNaN(v value.Number) bool {
	f, ok := v.(value.Flonum)
	return ok && f.IsNaN()
}

func compareExact(a, b value.Number) int {
	ar, br := toRational(a), toRational(b)
	lhs := bignum.Mul(value.IntegerValue(ar.Numer), value.IntegerValue(br.Denom))
	rhs := bignum.Mul(value.IntegerValue(br.Numer), value.IntegerValue(ar.Denom))
	return bignum.Cmp(lhs, rhs)
}

// compareMixed compares when at least one operand is inexact, by
// converting the flonum operand to its *exact* rational value (via
// math.Frexp: every finite float64 is m*2^e for an integer mantissa m)
// and then comparing exactly, avoiding precision loss.
func compareMixed(a, b value.Number) int {
	if isInf(a) || isInf(b) {
		af, bf := ToFloat64(a), ToFloat64(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	ae := exactOf(a)
	be := exactOf(b)
	return compareExact(ae, be)
}

func isInf(v value.Number) bool {
	f, ok := v.(value.Flonum)
	return ok && f.IsInf(0)
}

// exactOf returns v's exact value: unchanged if v is already exact,
// otherwise the precise rational value of its flonum bit pattern.
func exactOf(v value.Number) value.Number {
	if value.IsExact(v) {
		return v
	}
	f := float64(v.(value.Flonum))
	if f == 0 {
		return value.Fixnum(0)
	}
	mantissa, exp := math.Frexp(f)
	// mantissa in [0.5,1), scale to an integer: 53 bits is enough for any
	// float64 significand.
	const shift = 53
	m := int64(mantissa * (1 << shift))
	e := exp - shift
	numer := value.NewInteger(bignum.FromInt64(m))
	if e >= 0 {
		scaled := bignum.Lsh(value.IntegerValue(numer), uint(e))
		return value.NewInteger(scaled)
	}
	denom := value.NewInteger(bignum.Lsh(bignum.FromInt64(1), uint(-e)))
	r, _ := NewRational(numer, denom)
	return r
}

// Lt, Gt, Lte, Gte implement <, >, <=, >=; they return false (not an
// error) when the comparison is undefined (NaN/complex operand),
// matching Scheme's NaN-is-never-ordered behaviour.
func Lt(a, b value.Number) bool {
	c, ok := Compare(a, b)
	return ok && c < 0
}

func Gt(a, b value.Number) bool {
	c, ok := Compare(a, b)
	return ok && c > 0
}

func Lte(a, b value.Number) bool {
	c, ok := Compare(a, b)
	return ok && c <= 0
}

func Gte(a, b value.Number) bool {
	c, ok := Compare(a, b)
	return ok && c >= 0
}
