package bignum

// ISqrt returns the integer square root of x (x must be non-negative) by
// Newton's method on bignum.Int, and reports whether x is a perfect
// square.
func ISqrt(x *Int) (root *Int, exact bool) {
	if x.Sign() < 0 {
		return FromInt64(0), false
	}
	if x.IsZero() {
		return FromInt64(0), true
	}
	if fv, ok := x.FitsUint64(); ok {
		r := isqrtUint64(fv)
		return FromUint64(r), r*r == fv
	}
	// Newton iteration: guess a starting point with roughly half the bit
	// length of x, then refine until it stops decreasing.
	guess := FromInt64(1)
	guess = Lsh(guess, uint((x.BitLen()+1)/2))
	for {
		q, _, _ := DivMod(x, guess)
		next, _, _ := DivMod(Add(guess, q), FromInt64(2))
		if Cmp(next, guess) >= 0 {
			break
		}
		guess = next
	}
	sq := Mul(guess, guess)
	return guess, Cmp(sq, x) == 0
}

func isqrtUint64(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
