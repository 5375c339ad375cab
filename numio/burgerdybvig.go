package numio

import (
	"math"
	"strconv"

	"github.com/loomrt/loomrt/bignum"
)

// shortestDigits implements the Burger-Dybvig free-format algorithm:
// given a finite, non-zero float64, it produces the shortest decimal
// digit string that reads back to exactly v, plus the decimal exponent
// (the power of ten by which the digit string's implied leading "0."
// must be scaled -- i.e. digits "314" with exponent 1 means 3.14).
func shortestDigits(v float64) (digits string, exp int) {
	neg := math.Signbit(v)
	v = math.Abs(v)

	bits := math.Float64bits(v)
	mantissaBits := bits & ((1 << 52) - 1)
	rawExp := int((bits >> 52) & 0x7ff)

	var f uint64
	var e int
	if rawExp == 0 {
		f = mantissaBits
		e = -1074
	} else {
		f = mantissaBits | (1 << 52)
		e = rawExp - 1075
	}

	lowBoundaryCloser := mantissaBits == 0 && rawExp > 1

	var r, s, mPlus, mMinus *bignum.Int
	bf := bignum.FromUint64(f)

	if e >= 0 {
		be := bignum.Lsh(bignum.FromInt64(1), uint(e))
		if !lowBoundaryCloser {
			r = bignum.Lsh(bignum.Mul(bf, be), 1)
			s = bignum.FromInt64(2)
			mPlus = be
			mMinus = be
		} else {
			be1 := bignum.Lsh(be, 1)
			r = bignum.Lsh(bignum.Mul(bf, be1), 1)
			s = bignum.FromInt64(4)
			mPlus = be1
			mMinus = be
		}
	} else {
		if !lowBoundaryCloser {
			r = bignum.Lsh(bf, 1)
			s = bignum.Lsh(bignum.FromInt64(1), uint(-e+1))
			mPlus = bignum.FromInt64(1)
			mMinus = bignum.FromInt64(1)
		} else {
			r = bignum.Lsh(bf, 2)
			s = bignum.Lsh(bignum.FromInt64(1), uint(-e+2))
			mPlus = bignum.FromInt64(2)
			mMinus = bignum.FromInt64(1)
		}
	}

	// Estimate the decimal exponent, then scale r/s/m+/m- so the first
	// digit generated lands just after the decimal point.
	est := int(math.Ceil(math.Log10(v) - 1e-10))
	if est >= 0 {
		s = bignum.Mul(s, pow10(est))
	} else {
		scale := pow10(-est)
		r = bignum.Mul(r, scale)
		mPlus = bignum.Mul(mPlus, scale)
		mMinus = bignum.Mul(mMinus, scale)
	}
	// Fixup: if the estimate undershot, r+m+ would overflow a single
	// digit; correct by scaling s up one more power of ten.
	if bignum.Cmp(bignum.Add(r, mPlus), s) > 0 {
		s = bignum.Mul(s, bignum.FromInt64(10))
		est++
	}

	var out []byte
	for {
		r = bignum.Mul(r, bignum.FromInt64(10))
		mPlus = bignum.Mul(mPlus, bignum.FromInt64(10))
		mMinus = bignum.Mul(mMinus, bignum.FromInt64(10))

		q, rem, _ := bignum.DivMod(r, s)
		d, _ := q.FitsInt64()
		r = rem

		low := bignum.Cmp(r, mMinus) < 0
		high := bignum.Cmp(bignum.Add(r, mPlus), s) > 0

		if !low && !high {
			out = append(out, byte('0'+d))
			continue
		}
		switch {
		case low && !high:
			out = append(out, byte('0'+d))
		case high && !low:
			out = append(out, byte('0'+d+1))
		default:
			twiceR := bignum.Lsh(r, 1)
			cmp := bignum.Cmp(twiceR, s)
			if cmp < 0 {
				out = append(out, byte('0'+d))
			} else if cmp > 0 {
				out = append(out, byte('0'+d+1))
			} else if d%2 == 0 {
				out = append(out, byte('0'+d))
			} else {
				out = append(out, byte('0'+d+1))
			}
		}
		break
	}

	_ = neg
	return string(out), est
}

// FormatFlonum renders v as the shortest round-tripping decimal, with
// exponent notation suppressed for -3 < est <= 10, and the conventional
// special-value spellings.
func FormatFlonum(v float64) string {
	switch {
	case math.IsNaN(v):
		return "+nan.0"
	case math.IsInf(v, 1):
		return "+inf.0"
	case math.IsInf(v, -1):
		return "-inf.0"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	neg := v < 0
	digits, est := shortestDigits(math.Abs(v))

	var body string
	if est > -3 && est <= 10 {
		body = fixedNotation(digits, est)
	} else {
		body = scientificNotation(digits, est)
	}
	if neg {
		return "-" + body
	}
	return body
}

func fixedNotation(digits string, est int) string {
	switch {
	case est <= 0:
		return "0." + zeros(-est) + digits
	case est >= len(digits):
		return digits + zeros(est-len(digits)) + ".0"
	default:
		return digits[:est] + "." + digits[est:]
	}
}

func scientificNotation(digits string, est int) string {
	mantissa := digits[:1]
	if len(digits) > 1 {
		mantissa += "." + digits[1:]
	} else {
		mantissa += ".0"
	}
	return mantissa + "e" + strconv.Itoa(est-1)
}

func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
