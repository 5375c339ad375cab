package lazy

import "github.com/loomrt/loomrt/value"

// LazyPair is an unforced cons cell: inspecting either field forces the
// whole cell at once (car and cdr are produced together by a single
// thunk call), unlike a classic stream where only the tail is deferred.
// The resulting pair's Cdr may itself be another *LazyPair, so a chain
// of these is forced one cell at a time as a caller walks it, never all
// at once.
type LazyPair struct {
	thunk  func() *value.Pair
	pair   *value.Pair
	forced bool
}

// MakeLazyPair wraps thunk in an unforced lazy pair. thunk returning nil
// means the cell is the empty list, matching value.Pair's convention
// that a nil *Pair terminates a list.
func MakeLazyPair(thunk func() *value.Pair) *LazyPair {
	return &LazyPair{thunk: thunk}
}

// ForcePair forces lp exactly once, memoizing the result so repeated
// inspection never re-runs the generator.
func ForcePair(lp *LazyPair) *value.Pair {
	if !lp.forced {
		lp.pair = lp.thunk()
		lp.forced = true
		lp.thunk = nil
	}
	return lp.pair
}

// IsPair reports whether v is a pair -- ordinary or lazy -- once forced,
// and false for the empty list or any non-pair value.
func IsPair(v any) bool {
	switch p := v.(type) {
	case *value.Pair:
		return p != nil
	case *LazyPair:
		return ForcePair(p) != nil
	default:
		return false
	}
}

// Car returns the first element of v, forcing v if it is an unforced
// lazy pair. ok is false if v is not a pair or is the empty list.
func Car(v any) (result value.Value, ok bool) {
	pair, ok := asPair(v)
	if !ok {
		return nil, false
	}
	return pair.Car, true
}

// Cdr returns the rest of v -- which may itself be an ordinary
// value.Value, a *value.Pair, or an unforced *LazyPair -- forcing v if
// necessary. ok is false if v is not a pair or is the empty list.
func Cdr(v any) (rest any, ok bool) {
	pair, ok := asPair(v)
	if !ok {
		return nil, false
	}
	return pair.Cdr, true
}

func asPair(v any) (*value.Pair, bool) {
	switch p := v.(type) {
	case *value.Pair:
		if p == nil {
			return nil, false
		}
		return p, true
	case *LazyPair:
		pair := ForcePair(p)
		if pair == nil {
			return nil, false
		}
		return pair, true
	default:
		return nil, false
	}
}

// Generator yields the next element of a sequence and true, or an
// unspecified value and false at end-of-sequence.
type Generator func() (value.Value, bool)

// GeneratorToLseq wraps gen in a lazy list: forcing one cell calls gen
// once, producing either the empty list (gen exhausted) or a pair whose
// cdr is the still-unforced continuation of the same generator.
func GeneratorToLseq(gen Generator) *LazyPair {
	return MakeLazyPair(func() *value.Pair {
		v, ok := gen()
		if !ok {
			return nil
		}
		return &value.Pair{Car: v, Cdr: GeneratorToLseq(gen)}
	})
}
