// Package bignum implements arbitrary-precision signed integers as an
// ordered sequence of unsigned limbs, least-significant first.
//
// Grounded on original_source/src/number.c's ScmBignum representation and
// Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) as implemented there. Limbs are
// 32 bits wide with 64-bit accumulators for the multiply/divide inner
// loops -- the same "half native word" choice CPython and GMP's generic
// path make, so every partial product and trial quotient fits in a single
// uint64 without needing a double-width type math/bits doesn't expose
// generically (see DESIGN.md).
package bignum

import (
	"math/bits"
)

type limb = uint32

const (
	limbBits = 32
	limbBase = 1 << limbBits
)

// Int is a heap-allocated arbitrary-precision signed integer. The zero
// value is not a valid Int; use the constructors below.
//
// Invariant: the last limb is non-zero (normalised), so zero is the
// empty limb slice. The constructors and arithmetic here do produce
// zero (FromInt64(0), x minus itself, a product with zero); callers that
// need "integer, exact but maybe small" consult FitsInt64 and fall back
// to a fixnum, which is how value.NewInteger keeps zero a fixnum.
type Int struct {
	neg   bool
	limbs []limb
}

// Sign returns -1, 0, or 1.
func (x *Int) Sign() int {
	if x == nil || len(x.limbs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x represents zero.
func (x *Int) IsZero() bool {
	return x == nil || len(x.limbs) == 0
}

func normalize(neg bool, limbs []limb) *Int {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	limbs = limbs[:n]
	if n == 0 {
		neg = false
	}
	return &Int{neg: neg, limbs: limbs}
}

// FromInt64 constructs an Int from a signed machine integer.
func FromInt64(v int64) *Int {
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-(v + 1)) + 1
	} else {
		u = uint64(v)
	}
	return FromUint64WithSign(neg, u)
}

// FromUint64 constructs a non-negative Int from an unsigned machine integer.
func FromUint64(v uint64) *Int {
	return FromUint64WithSign(false, v)
}

// FromUint64WithSign constructs an Int with the given sign and magnitude.
func FromUint64WithSign(neg bool, v uint64) *Int {
	return normalize(neg, []limb{limb(v), limb(v >> limbBits)})
}

// FromFloat64 decomposes v into exponent/mantissa and truncates toward
// zero. Returns nil for NaN/Inf, which callers must check for first.
func FromFloat64(v float64) *Int {
	if v != v || v > maxFinite || v < -maxFinite {
		return nil
	}
	neg := v < 0
	if neg {
		v = -v
	}
	mant, exp := frexp(v) // v == mant * 2^exp, mant in [0.5, 1)
	const mbits = 53
	m := uint64(ldexp(mant, mbits))
	exp -= mbits

	result := FromUint64(m)
	switch {
	case exp > 0:
		result = Lsh(result, uint(exp))
	case exp < 0:
		result = Rsh(result, uint(-exp))
	}
	if result.IsZero() {
		return result
	}
	result.neg = neg
	return result
}

const maxFinite = 1.7976931348623157e+308

// frexp/ldexp keep bignum free of a math import for a handful of uses; the
// standard library's own math.Frexp/Ldexp do the same decomposition, this
// is the loop-based equivalent so bignum has no dependency on flonum
// printing (which lives in numio and does import math).
func frexp(f float64) (frac float64, exp int) {
	if f == 0 {
		return 0, 0
	}
	for f >= 1 {
		f /= 2
		exp++
	}
	for f < 0.5 {
		f *= 2
		exp--
	}
	return f, exp
}

func ldexp(f float64, e int) float64 {
	for e > 0 {
		f *= 2
		e--
	}
	for e < 0 {
		f /= 2
		e++
	}
	return f
}

// Float64 converts x to a float64. This is the fast, slightly-imprecise
// conversion used for e.g. exact->inexact coercion in the tower's
// contagion ladder and for the starting estimate of numio's Algorithm R,
// whose exact bignum refinement does not depend on this rounding.
func (x *Int) Float64() float64 {
	if x.IsZero() {
		return 0
	}
	var f float64
	for i := len(x.limbs) - 1; i >= 0; i-- {
		f = f*limbBase + float64(x.limbs[i])
	}
	if x.neg {
		f = -f
	}
	return f
}

// FitsInt64 reports whether x can be represented as an int64, returning
// the value if so.
func (x *Int) FitsInt64() (int64, bool) {
	if x.IsZero() {
		return 0, true
	}
	u, ok := x.magnitudeUint64()
	if !ok {
		return 0, false
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u >= 1<<63 {
		return 0, false
	}
	return int64(u), true
}

// FitsUint64 reports whether x can be represented as a uint64.
func (x *Int) FitsUint64() (uint64, bool) {
	if x.neg {
		return 0, false
	}
	return x.magnitudeUint64()
}

func (x *Int) magnitudeUint64() (uint64, bool) {
	if len(x.limbs) > 2 {
		return 0, false
	}
	var u uint64
	for i := len(x.limbs) - 1; i >= 0; i-- {
		u = u<<limbBits | uint64(x.limbs[i])
	}
	return u, true
}

// Neg returns -x.
func Neg(x *Int) *Int {
	if x.IsZero() {
		return x
	}
	return normalize(!x.neg, cloneLimbs(x.limbs))
}

// Abs returns |x|.
func Abs(x *Int) *Int {
	if !x.neg {
		return x
	}
	return Neg(x)
}

func cmpMagnitude(a, b []limb) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp returns -1, 0, or 1 as x<y, x==y, x>y.
func Cmp(x, y *Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	if xs == 0 {
		return 0
	}
	c := cmpMagnitude(x.limbs, y.limbs)
	if xs < 0 {
		c = -c
	}
	return c
}

func addMagnitude(a, b []limb) []limb {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]limb, len(a)+1)
	var carry uint64
	for i := range a {
		var bi limb
		if i < len(b) {
			bi = b[i]
		}
		s := uint64(a[i]) + uint64(bi) + carry
		out[i] = limb(s)
		carry = s >> limbBits
	}
	out[len(a)] = limb(carry)
	return out
}

// subMagnitude computes a-b assuming a >= b in magnitude.
func subMagnitude(a, b []limb) []limb {
	out := make([]limb, len(a))
	var borrow int64
	for i := range a {
		var bi limb
		if i < len(b) {
			bi = b[i]
		}
		d := int64(a[i]) - int64(bi) - borrow
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = limb(d)
	}
	return out
}

// Add returns x+y.
func Add(x, y *Int) *Int {
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	if x.neg == y.neg {
		return normalize(x.neg, addMagnitude(x.limbs, y.limbs))
	}
	switch c := cmpMagnitude(x.limbs, y.limbs); {
	case c == 0:
		return normalize(false, nil)
	case c > 0:
		return normalize(x.neg, subMagnitude(x.limbs, y.limbs))
	default:
		return normalize(y.neg, subMagnitude(y.limbs, x.limbs))
	}
}

// Sub returns x-y.
func Sub(x, y *Int) *Int {
	return Add(x, Neg(y))
}

// Mul returns x*y by schoolbook multiplication; faster algorithms
// (Karatsuba, FFT) are not needed at this scale.
func Mul(x, y *Int) *Int {
	if x.IsZero() || y.IsZero() {
		return normalize(false, nil)
	}
	out := make([]limb, len(x.limbs)+len(y.limbs))
	for i, xi := range x.limbs {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y.limbs {
			acc := uint64(xi)*uint64(yj) + uint64(out[i+j]) + carry
			out[i+j] = limb(acc)
			carry = acc >> limbBits
		}
		out[i+len(y.limbs)] += limb(carry)
	}
	return normalize(x.neg != y.neg, out)
}

// BitLen returns the number of bits in the magnitude of x (0 for zero).
func (x *Int) BitLen() int {
	if x.IsZero() {
		return 0
	}
	n := len(x.limbs)
	top := x.limbs[n-1]
	return (n-1)*limbBits + bits.Len32(top)
}

func cloneLimbs(l []limb) []limb {
	out := make([]limb, len(l))
	copy(out, l)
	return out
}

// String renders x in base 10 (see text.go for arbitrary-radix formatting).
func (x *Int) String() string {
	return x.Text(10)
}
