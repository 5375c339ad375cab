// Package numeric implements generic dispatch across the five numeric
// kinds (fixnum, bignum, rational, flonum, compnum),
// following the contagion ladder fixnum < bignum < rational < flonum <
// compnum, plus gcd, expt, rounding, comparison, and exact<->inexact
// coercion.
//
// Grounded on pgavlin/loom's numerics.go for the builtin-call shape
// (NumberAdd/NumberLt/...), generalised from loom's single big.Float
// representation to the full tower value.Number describes; the
// quotient/remainder/modulo sign rules are grounded on
// other_examples/ichiban-prolog__number.go, and expt's special-cased
// power tables on original_source/src/number.c's Scm_Expt.
package numeric

import (
	"errors"
	"math"

	"github.com/loomrt/loomrt/bignum"
	"github.com/loomrt/loomrt/value"
)

// ErrDivByZero is raised (condition tag arith/div-by-zero) when an exact
// division's divisor is exact zero.
var ErrDivByZero = errors.New("division by zero")

// ErrDomain is raised (condition tag arith/domain) for arguments outside
// an operation's domain, e.g. sqrt of a negative real when complex
// promotion is disabled.
var ErrDomain = errors.New("arithmetic domain error")

// ErrNotANumber is raised when a non-numeric argument reaches an
// arithmetic primitive.
var ErrNotANumber = errors.New("not a number")

// Add returns a+b, lifting the lower-kinded operand per the contagion
// ladder, except that exact zero is *not* treated as absorbing for +
// (only for *).
func Add(a, b value.Number) (value.Number, error) {
	return dispatch(a, b, addFix, addBig, addRat, addFlo, addCom)
}

// Sub returns a-b.
func Sub(a, b value.Number) (value.Number, error) {
	nb, err := Negate(b)
	if err != nil {
		return nil, err
	}
	return Add(a, nb)
}

// Mul returns a*b. Exact zero absorbs regardless of the other operand's
// kind, including an inexact 0.0 operand: exact zero absorbs regardless
// of the other operand.
func Mul(a, b value.Number) (value.Number, error) {
	if isExactZero(a) || isExactZero(b) {
		return value.Fixnum(0), nil
	}
	if isOne(a) {
		return b, nil
	}
	if isOne(b) {
		return a, nil
	}
	return dispatch(a, b, mulFix, mulBig, mulRat, mulFlo, mulCom)
}

// Div returns a/b. Division of exact by exact produces an exact reduced
// rational; it only yields a flonum when one operand is already inexact.
func Div(a, b value.Number) (value.Number, error) {
	if isOne(b) && value.IsExact(b) {
		return a, nil
	}
	if value.IsExact(a) && value.IsExact(b) {
		return exactDiv(a, b)
	}
	af, bf, kind := promoteFlo(a, b)
	if kind == value.KindCompnum {
		return divCom(toCompnum(a), toCompnum(b))
	}
	if bf == 0 {
		switch {
		case af == 0:
			return value.Flonum(math.NaN()), nil
		case af > 0:
			return value.Flonum(math.Inf(1)), nil
		default:
			return value.Flonum(math.Inf(-1)), nil
		}
	}
	return value.Flonum(af / bf), nil
}

func isExactZero(v value.Number) bool {
	switch v := v.(type) {
	case value.Fixnum:
		return v == 0
	case *value.Bignum:
		return v.V.IsZero()
	default:
		return false
	}
}

func isOne(v value.Number) bool {
	switch v := v.(type) {
	case value.Fixnum:
		return v == 1
	case value.Flonum:
		return v == 1
	default:
		return false
	}
}

// Negate returns -a.
func Negate(a value.Number) (value.Number, error) {
	switch a := a.(type) {
	case value.Fixnum:
		if a == math.MinInt64 {
			return value.NewInteger(bignum.Neg(bignum.FromInt64(int64(a)))), nil
		}
		return value.Fixnum(-a), nil
	case *value.Bignum:
		return value.NewInteger(bignum.Neg(a.V)), nil
	case *value.Rational:
		n, err := Negate(a.Numer)
		if err != nil {
			return nil, err
		}
		return &value.Rational{Numer: n, Denom: a.Denom}, nil
	case value.Flonum:
		return -a, nil
	case *value.Compnum:
		return &value.Compnum{Re: -a.Re, Im: -a.Im}, nil
	default:
		return nil, ErrNotANumber
	}
}

// Abs returns |a|.
func Abs(a value.Number) (value.Number, error) {
	if Sign(a) < 0 {
		return Negate(a)
	}
	return a, nil
}

// Sign returns -1, 0, or 1 for a real number; NaN and complex numbers
// have no sign and Sign returns 0 for them by convention (callers needing
// to distinguish should check IsNaN themselves).
func Sign(a value.Number) int {
	switch a := a.(type) {
	case value.Fixnum:
		switch {
		case a < 0:
			return -1
		case a > 0:
			return 1
		default:
			return 0
		}
	case *value.Bignum:
		return a.V.Sign()
	case *value.Rational:
		return Sign(a.Numer)
	case value.Flonum:
		switch {
		case a > 0:
			return 1
		case a < 0:
			return -1
		default:
			return 0
		}
	default:
		return 0
	}
}

// kind returns the contagion rank of a number.
func kindOf(a value.Number) value.Kind { return a.Kind() }

func higherKind(a, b value.Kind) value.Kind {
	if a > b {
		return a
	}
	return b
}

type fixOp func(a, b value.Fixnum) (value.Number, error)
type bigOp func(a, b *bignum.Int) (value.Number, error)
type ratOp func(a, b *value.Rational) (value.Number, error)
type floOp func(a, b value.Flonum) (value.Number, error)
type comOp func(a, b *value.Compnum) (value.Number, error)

// dispatch performs a 5x5 dispatch on the kinds of the two operands,
// lifting the lower-kinded operand to the higher kind and performing the
// operation there.
func dispatch(a, b value.Number, ff fixOp, fb bigOp, fr ratOp, fl floOp, fc comOp) (value.Number, error) {
	k := higherKind(kindOf(a), kindOf(b))
	switch k {
	case value.KindFixnum:
		af, aok := a.(value.Fixnum)
		bf, bok := b.(value.Fixnum)
		if aok && bok {
			return ff(af, bf)
		}
	case value.KindBignum:
		return fb(value.IntegerValue(a), value.IntegerValue(b))
	case value.KindRational:
		return fr(toRational(a), toRational(b))
	case value.KindFlonum:
		af, bf, _ := promoteFlo(a, b)
		return fl(value.Flonum(af), value.Flonum(bf))
	case value.KindCompnum:
		return fc(toCompnum(a), toCompnum(b))
	}
	return nil, ErrNotANumber
}

func toRational(a value.Number) *value.Rational {
	switch a := a.(type) {
	case *value.Rational:
		return a
	case value.Fixnum, *value.Bignum:
		return &value.Rational{Numer: a, Denom: value.Fixnum(1)}
	default:
		panic("numeric: toRational of a non-exact-integer/rational Number")
	}
}

func toCompnum(a value.Number) *value.Compnum {
	switch a := a.(type) {
	case *value.Compnum:
		return a
	default:
		return &value.Compnum{Re: value.Flonum(ToFloat64(a)), Im: 0}
	}
}

// promoteFlo converts both operands to float64 for a flonum-kinded op.
func promoteFlo(a, b value.Number) (af, bf float64, kind value.Kind) {
	kind = higherKind(kindOf(a), kindOf(b))
	return ToFloat64(a), ToFloat64(b), kind
}

// ToFloat64 converts any real numeric value to the nearest float64.
func ToFloat64(a value.Number) float64 {
	switch a := a.(type) {
	case value.Fixnum:
		return float64(a)
	case *value.Bignum:
		return a.V.Float64()
	case *value.Rational:
		n := ToFloat64(a.Numer)
		d := ToFloat64(a.Denom)
		return n / d
	case value.Flonum:
		return float64(a)
	case *value.Compnum:
		return float64(a.Re)
	default:
		return math.NaN()
	}
}

func addFix(a, b value.Fixnum) (value.Number, error) {
	s := int64(a) + int64(b)
	if value.InFixnumRange(s) {
		return value.Fixnum(s), nil
	}
	return value.NewInteger(bignum.Add(bignum.FromInt64(int64(a)), bignum.FromInt64(int64(b)))), nil
}

func addBig(a, b *bignum.Int) (value.Number, error) {
	return value.NewInteger(bignum.Add(a, b)), nil
}

func addRat(a, b *value.Rational) (value.Number, error) {
	// a/b + c/d = (a*d + c*b) / (b*d), then reduce.
	ad, err := Mul(a.Numer, b.Denom)
	if err != nil {
		return nil, err
	}
	cb, err := Mul(b.Numer, a.Denom)
	if err != nil {
		return nil, err
	}
	num, err := Add(ad, cb)
	if err != nil {
		return nil, err
	}
	den, err := Mul(a.Denom, b.Denom)
	if err != nil {
		return nil, err
	}
	return NewRational(num, den)
}

func addFlo(a, b value.Flonum) (value.Number, error) { return a + b, nil }

func addCom(a, b *value.Compnum) (value.Number, error) {
	return normalizeCompnum(a.Re+b.Re, a.Im+b.Im), nil
}

func mulFix(a, b value.Fixnum) (value.Number, error) {
	// Detect overflow via the bignum path; cheap enough, and correct for
	// every input since FixBits <= 63.
	prod := bignum.Mul(bignum.FromInt64(int64(a)), bignum.FromInt64(int64(b)))
	return value.NewInteger(prod), nil
}

func mulBig(a, b *bignum.Int) (value.Number, error) {
	return value.NewInteger(bignum.Mul(a, b)), nil
}

func mulRat(a, b *value.Rational) (value.Number, error) {
	num, err := Mul(a.Numer, b.Numer)
	if err != nil {
		return nil, err
	}
	den, err := Mul(a.Denom, b.Denom)
	if err != nil {
		return nil, err
	}
	return NewRational(num, den)
}

func mulFlo(a, b value.Flonum) (value.Number, error) { return a * b, nil }

func mulCom(a, b *value.Compnum) (value.Number, error) {
	re := a.Re*b.Re - a.Im*b.Im
	im := a.Re*b.Im + a.Im*b.Re
	return normalizeCompnum(re, im), nil
}

func divCom(a, b *value.Compnum) (value.Number, error) {
	denom := b.Re*b.Re + b.Im*b.Im
	re := (a.Re*b.Re + a.Im*b.Im) / denom
	im := (a.Im*b.Re - a.Re*b.Im) / denom
	return normalizeCompnum(re, im), nil
}

// normalizeCompnum collapses a complex result with zero imaginary part to
// a plain Flonum: a Compnum's imaginary part is never exactly zero.
func normalizeCompnum(re, im value.Flonum) value.Number {
	if im == 0 {
		return re
	}
	return &value.Compnum{Re: re, Im: im}
}

// exactDiv divides two exact numbers, producing an exact (possibly
// integer-collapsed) rational.
func exactDiv(a, b value.Number) (value.Number, error) {
	if isExactZero(b) {
		return nil, ErrDivByZero
	}
	ar, br := toRational(a), toRational(b)
	num, err := Mul(ar.Numer, br.Denom)
	if err != nil {
		return nil, err
	}
	den, err := Mul(ar.Denom, br.Numer)
	if err != nil {
		return nil, err
	}
	return NewRational(num, den)
}

// NewRational reduces numer/denom by their gcd, moves the sign onto the
// numerator, and collapses denom==1 into a plain integer -- the
// normalisation every rational-producing operation applies to its
// result.
func NewRational(numer, denom value.Number) (value.Number, error) {
	if isExactZero(denom) {
		return nil, ErrDivByZero
	}
	ni, di := value.IntegerValue(numer), value.IntegerValue(denom)
	if di.Sign() < 0 {
		ni, di = bignum.Neg(ni), bignum.Neg(di)
	}
	if ni.IsZero() {
		return value.Fixnum(0), nil
	}
	g := bignum.GCD(ni, di)
	if g.Sign() != 0 {
		q1, _, _ := bignum.DivMod(ni, g)
		q2, _, _ := bignum.DivMod(di, g)
		ni, di = q1, q2
	}
	if oneVal, ok := di.FitsInt64(); ok && oneVal == 1 {
		return value.NewInteger(ni), nil
	}
	return &value.Rational{Numer: value.NewInteger(ni), Denom: value.NewInteger(di)}, nil
}

// NumeratorDenominator returns the numerator and denominator of an exact
// rational or integer (number.c's Scm_Numerator/Scm_Denominator) --
// supplemented per SPEC_FULL.md section 5.
func NumeratorDenominator(a value.Number) (numer, denom value.Number) {
	switch a := a.(type) {
	case *value.Rational:
		return a.Numer, a.Denom
	default:
		return a, value.Fixnum(1)
	}
}
