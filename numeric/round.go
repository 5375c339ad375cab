package numeric

import (
	"math"

	"github.com/loomrt/loomrt/bignum"
	"github.com/loomrt/loomrt/value"
)

// RoundMode selects one of Scheme's four rounding primitives.
type RoundMode int

const (
	RoundFloor RoundMode = iota
	RoundCeiling
	RoundTruncate
	RoundNearest // round to even on a tie, per R7RS round
)

// Round applies mode to a, preserving exactness: an exact input yields an
// exact integer, an inexact input yields a flonum integer (Gauche's
// number.c keeps rounding results in the same exactness as the
// argument).
func Round(a value.Number, mode RoundMode) (value.Number, error) {
	switch a := a.(type) {
	case value.Fixnum, *value.Bignum:
		return a, nil
	case *value.Rational:
		return roundRational(a, mode)
	case value.Flonum:
		return value.Flonum(roundFloat(float64(a), mode)), nil
	default:
		return nil, ErrNotANumber
	}
}

func roundFloat(f float64, mode RoundMode) float64 {
	switch mode {
	case RoundFloor:
		return math.Floor(f)
	case RoundCeiling:
		return math.Ceil(f)
	case RoundTruncate:
		return math.Trunc(f)
	default:
		return math.RoundToEven(f)
	}
}

func roundRational(a *value.Rational, mode RoundMode) (value.Number, error) {
	n, d := value.IntegerValue(a.Numer), value.IntegerValue(a.Denom)
	q, r, err := bignum.DivMod(n, d)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return value.NewInteger(q), nil
	}
	switch mode {
	case RoundTruncate:
		return value.NewInteger(q), nil
	case RoundFloor:
		if n.Sign() < 0 {
			q = bignum.Sub(q, bignum.FromInt64(1))
		}
		return value.NewInteger(q), nil
	case RoundCeiling:
		if n.Sign() > 0 {
			q = bignum.Add(q, bignum.FromInt64(1))
		}
		return value.NewInteger(q), nil
	default: // RoundNearest, round-to-even on exact halves
		twiceR := bignum.Lsh(bignum.Abs(r), 1)
		cmp := bignum.Cmp(twiceR, d)
		roundAway := cmp > 0
		if cmp == 0 {
			// Tie: round to even quotient.
			qv, ok := q.FitsInt64()
			roundAway = !ok || qv%2 != 0
		}
		if roundAway {
			if n.Sign() < 0 {
				q = bignum.Sub(q, bignum.FromInt64(1))
			} else {
				q = bignum.Add(q, bignum.FromInt64(1))
			}
		}
		return value.NewInteger(q), nil
	}
}

// Quotient, Remainder, and Modulo operate on exact or inexact integers.
// Quotient/Remainder truncate toward zero (Go's native integer division
// rule); Modulo's result takes the divisor's sign, per R7RS.

func Quotient(a, b value.Number) (value.Number, error) {
	q, _, err := integerDivMod(a, b)
	return q, err
}

func Remainder(a, b value.Number) (value.Number, error) {
	_, r, err := integerDivMod(a, b)
	return r, err
}

func Modulo(a, b value.Number) (value.Number, error) {
	_, r, err := integerDivMod(a, b)
	if err != nil {
		return nil, err
	}
	if Sign(r) != 0 && Sign(r) != Sign(b) {
		sum, err := Add(r, b)
		if err != nil {
			return nil, err
		}
		return sum, nil
	}
	return r, nil
}

func integerDivMod(a, b value.Number) (q, r value.Number, err error) {
	inexact := !value.IsExact(a) || !value.IsExact(b)
	ai, bi := toIntBignum(a), toIntBignum(b)
	qi, ri, err := bignum.DivMod(ai, bi)
	if err != nil {
		return nil, nil, ErrDivByZero
	}
	qn, rn := value.NewInteger(qi), value.NewInteger(ri)
	if inexact {
		return value.Flonum(ToFloat64(qn)), value.Flonum(ToFloat64(rn)), nil
	}
	return qn, rn, nil
}

func toIntBignum(a value.Number) *bignum.Int {
	switch a := a.(type) {
	case value.Fixnum:
		return bignum.FromInt64(int64(a))
	case *value.Bignum:
		return a.V
	case value.Flonum:
		return bignum.FromFloat64(math.Trunc(float64(a)))
	default:
		panic("numeric: toIntBignum of a non-integer Number")
	}
}

// Gcd and Lcm operate on exact integers, per number.c's Scm_Gcd.
func Gcd(a, b value.Number) value.Number {
	g := bignum.GCD(toIntBignum(a), toIntBignum(b))
	return value.NewInteger(g)
}

func Lcm(a, b value.Number) (value.Number, error) {
	ai, bi := toIntBignum(a), toIntBignum(b)
	if ai.IsZero() || bi.IsZero() {
		return value.Fixnum(0), nil
	}
	g := bignum.GCD(ai, bi)
	q, _, err := bignum.DivMod(ai, g)
	if err != nil {
		return nil, err
	}
	prod := bignum.Mul(q, bi)
	return value.NewInteger(bignum.Abs(prod)), nil
}
