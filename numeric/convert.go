package numeric

import (
	"math"

	"github.com/loomrt/loomrt/bignum"
	"github.com/loomrt/loomrt/value"
)

// ToInexact converts a to the nearest Flonum (or Compnum, if a already
// is one); inexact arguments pass through unchanged.
func ToInexact(a value.Number) value.Number {
	switch a := a.(type) {
	case *value.Compnum, value.Flonum:
		return a
	default:
		return value.Flonum(ToFloat64(a))
	}
}

// ToExact converts a to the exact value it denotes: integers and
// rationals pass through, and a flonum converts to the exact rational
// equal to its bit pattern (never a decimal approximation), per R7RS's
// inexact->exact.
func ToExact(a value.Number) (value.Number, error) {
	switch a := a.(type) {
	case value.Fixnum, *value.Bignum, *value.Rational:
		return a, nil
	case value.Flonum:
		f := float64(a)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ErrDomain
		}
		return exactOf(a), nil
	default:
		return nil, ErrNotANumber
	}
}

// Sqrt implements R7RS sqrt, supplemented per SPEC_FULL.md section 5
// (number.c's Scm_Sqrt): an exact perfect square of a non-negative exact
// integer stays exact; anything else falls through to flonum (or
// compnum, for a negative real) sqrt.
func Sqrt(a value.Number) (value.Number, error) {
	if value.IsExact(a) && value.IsInteger(a) && Sign(a) >= 0 {
		n := value.IntegerValue(a)
		if root, exact := bignum.ISqrt(n); exact {
			return value.NewInteger(root), nil
		}
	}
	if value.IsExact(a) {
		if r, ok := a.(*value.Rational); ok {
			ns, nExact := trySqrtExact(r.Numer)
			ds, dExact := trySqrtExact(r.Denom)
			if nExact && dExact {
				return NewRational(ns, ds)
			}
		}
	}
	f := ToFloat64(a)
	if f < 0 {
		return &value.Compnum{Re: 0, Im: value.Flonum(math.Sqrt(-f))}, nil
	}
	return value.Flonum(math.Sqrt(f)), nil
}

func trySqrtExact(a value.Number) (value.Number, bool) {
	if !value.IsInteger(a) || Sign(a) < 0 {
		return nil, false
	}
	root, exact := bignum.ISqrt(value.IntegerValue(a))
	if !exact {
		return nil, false
	}
	return value.NewInteger(root), true
}
