package bignum

// ErrDivByZero is returned by DivMod for a zero divisor; callers above
// this package translate it into a raised condition.
type ErrDivByZero struct{}

func (ErrDivByZero) Error() string { return "division by zero" }

// DivMod returns the truncated quotient and remainder of x/y, with the
// remainder's sign following the dividend. It implements Knuth's
// Algorithm D (TAOCP vol. 2, 4.3.1), normalising the divisor's leading
// limb before the trial-quotient loop, the way number.c's bignum divide
// does.
func DivMod(x, y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, ErrDivByZero{}
	}
	if x.IsZero() {
		return normalize(false, nil), normalize(false, nil), nil
	}
	if cmpMagnitude(x.limbs, y.limbs) < 0 {
		return normalize(false, nil), x, nil
	}

	var qm, rm []limb
	if len(y.limbs) == 1 {
		qm, rm = divModSingle(x.limbs, y.limbs[0])
	} else {
		qm, rm = divModKnuth(x.limbs, y.limbs)
	}

	q = normalize(x.neg != y.neg, qm)
	r = normalize(x.neg, rm)
	return q, r, nil
}

// divModSingle divides a magnitude by a single limb.
func divModSingle(u []limb, v limb) (q []limb, r []limb) {
	q = make([]limb, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem<<limbBits | uint64(u[i])
		q[i] = limb(cur / uint64(v))
		rem = cur % uint64(v)
	}
	if rem == 0 {
		return q, nil
	}
	return q, []limb{limb(rem)}
}

// divModKnuth implements Algorithm D for divisors of two or more limbs.
// Every accumulator here is uint64, and every limb is 32 bits, so trial
// quotients, products, and the base itself (1<<32) all fit comfortably
// without a double-width type.
func divModKnuth(uIn, vIn []limb) (q []limb, r []limb) {
	n := len(vIn)
	m := len(uIn) - n

	shift := uint(nlz32(vIn[n-1]))
	v := shiftLeftLimbs(vIn, shift, n)
	u := shiftLeftLimbs(uIn, shift, len(uIn)+1)

	q = make([]limb, m+1)

	for j := m; j >= 0; j-- {
		num := uint64(u[j+n])<<limbBits | uint64(u[j+n-1])
		den := uint64(v[n-1])
		qhat := num / den
		rhat := num % den
		if qhat >= limbBase {
			qhat = limbBase - 1
			rhat = num - qhat*den
		}

		for rhat < limbBase && n >= 2 &&
			qhat*uint64(v[n-2]) > rhat<<limbBits+uint64(u[j+n-2]) {
			qhat--
			rhat += den
		}

		// D4: multiply and subtract qhat*v from u[j..j+n].
		var borrow int64
		var carry uint64
		for i := 0; i < n; i++ {
			p := qhat*uint64(v[i]) + carry
			carry = p >> limbBits
			d := int64(u[j+i]) - int64(limb(p)) - borrow
			if d < 0 {
				d += limbBase
				borrow = 1
			} else {
				borrow = 0
			}
			u[j+i] = limb(d)
		}
		d := int64(u[j+n]) - int64(carry) - borrow
		if d < 0 {
			d += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		u[j+n] = limb(d)

		if borrow != 0 {
			// D6: qhat was one too large; add v back once.
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(u[j+i]) + uint64(v[i]) + c
				u[j+i] = limb(s)
				c = s >> limbBits
			}
			u[j+n] = limb(uint64(u[j+n]) + c)
		}

		q[j] = limb(qhat)
	}

	rem := shiftRightLimbs(u[:n], shift)
	return q, rem
}

func nlz32(x limb) int {
	n := 0
	for i := limbBits - 1; i >= 0; i-- {
		if x&(1<<uint(i)) != 0 {
			break
		}
		n++
	}
	return n
}

// shiftLeftLimbs left-shifts a magnitude by `shift` bits (0..limbBits-1)
// into a result buffer of exactly `outLen` limbs.
func shiftLeftLimbs(src []limb, shift uint, outLen int) []limb {
	out := make([]limb, outLen)
	if shift == 0 {
		copy(out, src)
		return out
	}
	var carry limb
	n := len(src)
	if n > outLen {
		n = outLen
	}
	for i := 0; i < n; i++ {
		out[i] = src[i]<<shift | carry
		carry = src[i] >> (limbBits - shift)
	}
	if n < outLen {
		out[n] = carry
	}
	return out
}

func shiftRightLimbs(src []limb, shift uint) []limb {
	if shift == 0 {
		return cloneLimbs(src)
	}
	out := make([]limb, len(src))
	for i := 0; i < len(src); i++ {
		lo := src[i] >> shift
		var hi limb
		if i+1 < len(src) {
			hi = src[i+1] << (limbBits - shift)
		}
		out[i] = lo | hi
	}
	return out
}

// GCD returns the non-negative greatest common divisor of |x| and |y| via
// the Euclidean algorithm, with a fast path when both operands fit in a
// machine word.
func GCD(x, y *Int) *Int {
	x, y = Abs(x), Abs(y)
	if xw, ok := x.FitsUint64(); ok {
		if yw, ok := y.FitsUint64(); ok {
			return FromUint64(gcdWord(xw, yw))
		}
	}
	for !y.IsZero() {
		_, r, _ := DivMod(x, y)
		x, y = y, Abs(r)
	}
	return x
}

func gcdWord(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
