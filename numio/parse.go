package numio

import (
	"math"
	"strings"

	"github.com/loomrt/loomrt/bignum"
	"github.com/loomrt/loomrt/numeric"
	"github.com/loomrt/loomrt/value"
)

// Parse reads a single numeric literal from s following R7RS-style
// number grammar: an optional radix prefix (#b #o #d #x, default 10) and
// exactness prefix (#e #i) in either order, then a real or complex
// datum. In strict mode a malformed literal returns ErrParse; in
// non-strict mode it returns (nil, nil) to let a caller fall back
// to treating the token as a symbol.
func Parse(s string, strict bool) (value.Number, error) {
	n, ok, err := parse(s)
	if err != nil {
		return nil, err
	}
	if !ok {
		if strict {
			return nil, ErrParse
		}
		return nil, nil
	}
	return n, nil
}

func parse(s string) (value.Number, bool, error) {
	radix := 10
	exactness := byte(0) // 0 unset, 'e' exact, 'i' inexact

	for len(s) >= 2 && s[0] == '#' {
		switch s[1] {
		case 'b', 'B':
			radix = 2
		case 'o', 'O':
			radix = 8
		case 'd', 'D':
			radix = 10
		case 'x', 'X':
			radix = 16
		case 'e', 'E':
			exactness = 'e'
		case 'i', 'I':
			exactness = 'i'
		default:
			return nil, false, nil
		}
		s = s[2:]
	}
	if s == "" {
		return nil, false, nil
	}

	n, ok, err := parseComplex(s, radix)
	if err != nil || !ok {
		return nil, ok, err
	}
	switch exactness {
	case 'e':
		ex, err := numeric.ToExact(n)
		if err != nil {
			return nil, false, err
		}
		return ex, true, nil
	case 'i':
		return numeric.ToInexact(n), true, nil
	default:
		return n, true, nil
	}
}

// parseComplex handles rectangular (a+bi, a-bi, +bi, -bi) and polar
// (r@theta) complex forms, falling through to a plain real.
func parseComplex(s string, radix int) (value.Number, bool, error) {
	if at := strings.IndexByte(s, '@'); at >= 0 {
		mag, ok, err := parseReal(s[:at], radix)
		if err != nil || !ok {
			return nil, false, err
		}
		ang, ok, err := parseReal(s[at+1:], radix)
		if err != nil || !ok {
			return nil, false, err
		}
		re, im := polarToRect(numeric.ToFloat64(mag), numeric.ToFloat64(ang))
		return normalizeComplex(re, im), true, nil
	}

	if strings.HasSuffix(s, "i") || strings.HasSuffix(s, "I") {
		body := s[:len(s)-1]
		if body == "+" {
			return normalizeComplex(0, 1), true, nil
		}
		if body == "-" {
			return normalizeComplex(0, -1), true, nil
		}
		// Find the split between the real part and the imaginary part:
		// the last '+' or '-' not at position 0 and not part of an
		// exponent marker.
		split := splitSign(body)
		if split < 0 {
			im, ok, err := parseReal(body, radix)
			if err != nil || !ok {
				return nil, false, err
			}
			return normalizeComplex(0, numeric.ToFloat64(im)), true, nil
		}
		reStr, imStr := body[:split], body[split:]
		re, ok, err := parseReal(reStr, radix)
		if err != nil || !ok {
			return nil, false, err
		}
		if imStr == "+" {
			return normalizeComplex(numeric.ToFloat64(re), 1), true, nil
		}
		if imStr == "-" {
			return normalizeComplex(numeric.ToFloat64(re), -1), true, nil
		}
		im, ok, err := parseReal(imStr, radix)
		if err != nil || !ok {
			return nil, false, err
		}
		return normalizeComplex(numeric.ToFloat64(re), numeric.ToFloat64(im)), true, nil
	}

	return parseReal(s, radix)
}

func normalizeComplex(re, im float64) value.Number {
	if im == 0 {
		return value.Flonum(re)
	}
	return &value.Compnum{Re: value.Flonum(re), Im: value.Flonum(im)}
}

func polarToRect(mag, theta float64) (re, im float64) {
	return mag * math.Cos(theta), mag * math.Sin(theta)
}

// splitSign finds the index of a '+'/'-' in body that separates a real
// part from an imaginary part, skipping position 0 and any sign that is
// part of an exponent marker ("1e+10").
func splitSign(body string) int {
	for i := len(body) - 1; i > 0; i-- {
		if body[i] != '+' && body[i] != '-' {
			continue
		}
		prev := body[i-1]
		if prev == 'e' || prev == 'E' {
			continue
		}
		return i
	}
	return -1
}

// parseReal handles special values, rationals (n/d), and decimals
// (including radix-prefixed exact integers and #e/#i-free decimal
// literals with an exponent marker).
func parseReal(s string, radix int) (value.Number, bool, error) {
	switch s {
	case "+inf.0":
		return value.Flonum(math.Inf(1)), true, nil
	case "-inf.0":
		return value.Flonum(math.Inf(-1)), true, nil
	case "+nan.0", "-nan.0":
		return value.Flonum(math.NaN()), true, nil
	}
	if s == "" {
		return nil, false, nil
	}

	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		numerStr, denomStr := s[:slash], s[slash+1:]
		numer, ok := bignum.FromString(numerStr, radix)
		if !ok {
			return nil, false, nil
		}
		denom, ok := bignum.FromString(denomStr, radix)
		if !ok {
			return nil, false, nil
		}
		r, err := numeric.NewRational(value.NewInteger(numer), value.NewInteger(denom))
		if err != nil {
			return nil, false, err
		}
		return r, true, nil
	}

	if radix == 10 && hasDecimalMarker(s) {
		return parseDecimal(s)
	}

	i, ok := bignum.FromString(s, radix)
	if !ok {
		return nil, false, nil
	}
	return value.NewInteger(i), true, nil
}

func hasDecimalMarker(s string) bool {
	return strings.ContainsAny(s, ".eE") && s != "+" && s != "-"
}

// parseDecimal parses a radix-10 decimal literal "[sign]digits[.digits][e
// exp]" into an exact integer f and scale such that the value is
// f*10^scale, then converts through Algorithm R.
func parseDecimal(s string) (value.Number, bool, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	if s == "" {
		return nil, false, nil
	}

	mantissa := s
	exp := 0
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissa = s[:idx]
		e, ok := parseSignedInt(s[idx+1:])
		if !ok {
			return nil, false, nil
		}
		exp = e
	}

	intPart, fracPart := mantissa, ""
	if dot := strings.IndexByte(mantissa, '.'); dot >= 0 {
		intPart, fracPart = mantissa[:dot], mantissa[dot+1:]
	}
	if intPart == "" && fracPart == "" {
		return nil, false, nil
	}
	digits := intPart + fracPart
	if digits == "" || !isAllDigits(digits) {
		return nil, false, nil
	}
	f, ok := bignum.FromString(digits, 10)
	if !ok {
		return nil, false, nil
	}
	scale := exp - len(fracPart)

	v := decimalToFlonum(f, scale, neg)
	return value.Flonum(v), true, nil
}

func isAllDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func parseSignedInt(s string) (int, bool) {
	neg := false
	if s == "" {
		return 0, false
	}
	if s[0] == '+' {
		s = s[1:]
	} else if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if s == "" || !isAllDigits(s) {
		return 0, false
	}
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
		if n > 1_000_000 {
			n = 1_000_000 // clamp: anything this large already overflows/underflows
			break
		}
	}
	if neg {
		n = -n
	}
	return n, true
}
