package bignum

// twos renders x as n limbs of its two's-complement representation,
// sign-extending as needed so And/Or/Xor/Not see the shorter operand's
// sign extended rather than zero-filled.
func twos(x *Int, n int) []limb {
	out := make([]limb, n)
	if x.IsZero() {
		return out
	}
	if !x.neg {
		copy(out, x.limbs)
		return out
	}
	m := make([]limb, n)
	copy(m, x.limbs)
	// m := |x| - 1
	borrow := true
	for i := range m {
		if !borrow {
			break
		}
		if m[i] == 0 {
			m[i] = limbBase - 1
		} else {
			m[i]--
			borrow = false
		}
	}
	for i := range out {
		out[i] = ^m[i]
	}
	return out
}

// fromTwos interprets limbs as a two's-complement value and converts it
// back to sign-magnitude form.
func fromTwos(limbs []limb) *Int {
	n := len(limbs)
	if n == 0 {
		return normalize(false, nil)
	}
	if limbs[n-1]>>(limbBits-1) == 0 {
		return normalize(false, cloneLimbs(limbs))
	}
	comp := make([]limb, n)
	for i, l := range limbs {
		comp[i] = ^l
	}
	return normalize(true, addMagnitude(comp, []limb{1}))
}

func bitOp(x, y *Int, op func(a, b limb) limb) *Int {
	n := len(x.limbs)
	if len(y.limbs) > n {
		n = len(y.limbs)
	}
	n++
	a, b := twos(x, n), twos(y, n)
	out := make([]limb, n)
	for i := range out {
		out[i] = op(a[i], b[i])
	}
	return fromTwos(out)
}

// And returns the bitwise AND of the two's-complement views of x and y.
func And(x, y *Int) *Int { return bitOp(x, y, func(a, b limb) limb { return a & b }) }

// Or returns the bitwise OR of the two's-complement views of x and y.
func Or(x, y *Int) *Int { return bitOp(x, y, func(a, b limb) limb { return a | b }) }

// Xor returns the bitwise XOR of the two's-complement views of x and y.
func Xor(x, y *Int) *Int { return bitOp(x, y, func(a, b limb) limb { return a ^ b }) }

// IntegerLength returns Scheme's (integer-length x): the number of bits
// needed to represent x in two's complement, excluding the sign bit.
// number.c's Scm_IntegerLength defines it as BitLen(x) for x>=0 and
// BitLen(-(x+1)) for x<0.
func IntegerLength(x *Int) int {
	if !x.neg {
		return x.BitLen()
	}
	return Not(x).BitLen()
}

// Not returns the bitwise complement of the two's-complement view of x,
// i.e. -(x+1).
func Not(x *Int) *Int {
	n := len(x.limbs) + 1
	a := twos(x, n)
	out := make([]limb, n)
	for i := range out {
		out[i] = ^a[i]
	}
	return fromTwos(out)
}
