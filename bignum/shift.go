package bignum

// Lsh returns x<<n for n>=0.
func Lsh(x *Int, n uint) *Int {
	if x.IsZero() || n == 0 {
		return x
	}
	words := int(n / limbBits)
	shift := n % limbBits

	src := x.limbs
	out := make([]limb, len(src)+words+1)
	if shift == 0 {
		copy(out[words:], src)
	} else {
		var carry limb
		for i, w := range src {
			out[words+i] = w<<shift | carry
			carry = w >> (limbBits - shift)
		}
		out[words+len(src)] = carry
	}
	return normalize(x.neg, out)
}

// Rsh returns x>>n for n>=0, arithmetic (two's-complement) for negative
// x: the vacated high bits fill with 1, not 0.
func Rsh(x *Int, n uint) *Int {
	if x.IsZero() || n == 0 {
		return x
	}
	if !x.neg {
		return normalize(false, rshMagnitude(x.limbs, n))
	}
	// (x >> n) == -(((-x)-1 >> n) + 1) for negative x: borrow one from the
	// magnitude before shifting, then restore it after, which is exactly
	// how an infinite-precision two's-complement shift would fill with 1s.
	xm1 := subMagnitude(x.limbs, []limb{1})
	shifted := rshMagnitude(xm1, n)
	return normalize(true, addMagnitude(shifted, []limb{1}))
}

func rshMagnitude(src []limb, n uint) []limb {
	words := int(n / limbBits)
	shift := n % limbBits
	if words >= len(src) {
		return nil
	}
	src = src[words:]
	out := make([]limb, len(src))
	if shift == 0 {
		copy(out, src)
		return out
	}
	for i := range src {
		lo := src[i] >> shift
		var hi limb
		if i+1 < len(src) {
			hi = src[i+1] << (limbBits - shift)
		}
		out[i] = lo | hi
	}
	return out
}

// Ash implements Scheme's arithmetic shift for arbitrary signed n:
// positive n shifts left, negative n shifts right.
func Ash(x *Int, n int) *Int {
	if n >= 0 {
		return Lsh(x, uint(n))
	}
	return Rsh(x, uint(-n))
}
