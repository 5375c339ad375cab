package numio

import (
	"strings"

	"github.com/loomrt/loomrt/bignum"
	"github.com/loomrt/loomrt/value"
)

// Format renders n as text in the given radix (2, 8, 10, or 16);
// uppercase controls hex-digit case. Integers, and the numerator and
// denominator of a rational, are written in radix; flonums and compnums
// are always written in decimal, whatever radix is passed (hex/octal/
// binary flonums are not part of this grammar).
func Format(n value.Number, radix int, uppercase bool) string {
	switch n := n.(type) {
	case value.Fixnum:
		return formatInt(bignum.FromInt64(int64(n)), radix, uppercase)
	case *value.Bignum:
		return formatInt(n.V, radix, uppercase)
	case *value.Rational:
		return Format(n.Numer, radix, uppercase) + "/" + Format(n.Denom, radix, uppercase)
	case value.Flonum:
		return FormatFlonum(float64(n))
	case *value.Compnum:
		return formatCompnum(n)
	default:
		return "?"
	}
}

func formatInt(v *bignum.Int, radix int, uppercase bool) string {
	s := v.Text(radix)
	if uppercase {
		s = strings.ToUpper(s)
	}
	return s
}

func formatCompnum(c *value.Compnum) string {
	re := FormatFlonum(float64(c.Re))
	im := float64(c.Im)
	imStr := FormatFlonum(im)
	var sign string
	if im >= 0 && !strings.HasPrefix(imStr, "+") {
		sign = "+"
	}
	if c.Re == 0 {
		return sign + imStr + "i"
	}
	return re + sign + imStr + "i"
}
