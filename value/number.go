package value

import (
	"math"

	"github.com/loomrt/loomrt/bignum"
)

// Kind tags the five variants of the numeric tower, in contagion order:
// fixnum < bignum < rational < flonum < compnum.
type Kind int

const (
	KindFixnum Kind = iota
	KindBignum
	KindRational
	KindFlonum
	KindCompnum
)

func (k Kind) String() string {
	switch k {
	case KindFixnum:
		return "fixnum"
	case KindBignum:
		return "bignum"
	case KindRational:
		return "rational"
	case KindFlonum:
		return "flonum"
	case KindCompnum:
		return "compnum"
	default:
		return "unknown"
	}
}

// Number is implemented by every numeric variant. Kind is the dispatch
// tag numeric's 5x5 table switches on; no arithmetic lives on Number
// itself -- dispatch is by type switch in the numeric package, never by
// virtual method.
type Number interface {
	Value
	Kind() Kind
}

// FixMin/FixMax bound the inline fixnum range. Chosen as the 62-bit range
// a tagged pointer on a 64-bit machine would leave after stealing two tag
// bits -- a conventional fixnum width, not a hard requirement of any
// operation in this package.
const (
	FixBits = 62
	FixMax  = int64(1)<<(FixBits-1) - 1
	FixMin  = -int64(1) << (FixBits - 1)
)

// Fixnum is a signed machine integer small enough to need no allocation.
type Fixnum int64

func (Fixnum) schemeValue()  {}
func (Fixnum) Kind() Kind    { return KindFixnum }
func (f Fixnum) Int64() int64 { return int64(f) }

// InFixnumRange reports whether v fits in the fixnum range.
func InFixnumRange(v int64) bool { return v >= FixMin && v <= FixMax }

// Bignum is a heap-allocated arbitrary-precision integer. Zero is always
// represented as a Fixnum, never a Bignum: NewInteger demotes a would-be
// bignum zero (or any magnitude that fits in the fixnum range) to a
// Fixnum.
type Bignum struct {
	V *bignum.Int
}

func (*Bignum) schemeValue() {}
func (*Bignum) Kind() Kind   { return KindBignum }

// NewInteger normalises a bignum.Int into the smallest representation
// that holds it: a Fixnum when it fits, otherwise a *Bignum. Every
// integer-producing operation funnels its result through here.
func NewInteger(v *bignum.Int) Number {
	if i, ok := v.FitsInt64(); ok && InFixnumRange(i) {
		return Fixnum(i)
	}
	return &Bignum{V: v}
}

// IntegerValue returns v's underlying bignum.Int, promoting a Fixnum.
func IntegerValue(v Number) *bignum.Int {
	switch v := v.(type) {
	case Fixnum:
		return bignum.FromInt64(int64(v))
	case *Bignum:
		return v.V
	default:
		panic("value: IntegerValue of a non-integer Number")
	}
}

// Rational is a reduced fraction of two exact integers. Invariants:
// Denom > 0, gcd(|Numer|, Denom) == 1, Denom != 1 (an integer result
// collapses via NewRational, never surviving as a Rational with
// Denom==1).
type Rational struct {
	Numer, Denom Number // always Fixnum or *Bignum
}

func (*Rational) schemeValue() {}
func (*Rational) Kind() Kind   { return KindRational }

// Flonum is an IEEE-754 binary64 inexact real.
type Flonum float64

func (Flonum) schemeValue() {}
func (Flonum) Kind() Kind   { return KindFlonum }

// IsNaN/IsInf mirror math's helpers at the Flonum type.
func (f Flonum) IsNaN() bool     { return math.IsNaN(float64(f)) }
func (f Flonum) IsInf(sign int) bool { return math.IsInf(float64(f), sign) }

// Compnum is a complex number with a non-zero imaginary part; a zero
// imaginary part is always represented as a plain Flonum instead.
type Compnum struct {
	Re, Im Flonum
}

func (*Compnum) schemeValue() {}
func (*Compnum) Kind() Kind   { return KindCompnum }

// IsExact reports whether v is one of the exact kinds (fixnum, bignum,
// rational).
func IsExact(v Number) bool {
	switch v.Kind() {
	case KindFixnum, KindBignum, KindRational:
		return true
	default:
		return false
	}
}

// IsInteger reports whether v is exactly or inexactly a whole number:
// true for fixnum and bignum, and for a flonum whose value is whole.
func IsInteger(v Number) bool {
	switch v := v.(type) {
	case Fixnum, *Bignum:
		return true
	case Flonum:
		f := float64(v)
		return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
	default:
		return false
	}
}
