// Package value defines the tagged, polymorphic scalar value
// representation: every live Scheme value belongs to exactly one
// variant, dispatch is by type switch over a closed set of concrete
// types (never subtype inheritance), and the numeric variants in
// particular are covered in number.go.
//
// Grounded on pgavlin/loom's values.go, which already uses exactly this
// "small sealed interface + type switch" shape for Pair/Symbol/Boolean/
// String/Vector; the numeric variants are pulled out of that file and
// rebuilt as a full numeric tower (fixnum/bignum/ratnum/flonum/compnum)
// in number.go rather than loom's single big.Float Number.
package value

// Value is implemented by every Scheme datum the runtime core touches.
// It carries no methods of its own -- dispatch happens through a
// tag-indexed table in callers, never through virtual methods, so this
// interface exists only to give the Go type system a closed-ish universe
// to switch over.
type Value interface {
	schemeValue()
}

// Boolean is Scheme's #t/#f.
type Boolean bool

func (Boolean) schemeValue() {}

// Truthy reports whether v counts as true in a boolean context: anything
// other than the Boolean false value does, per R7RS.
func Truthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

// Symbol is an interned Scheme identifier.
type Symbol string

func (Symbol) schemeValue() {}

// Character is a single Scheme character.
type Character rune

func (Character) schemeValue() {}

// String is a Scheme string. Scheme strings are mutable in general, but
// the runtime core only needs read access to them (for number parsing and
// condition messages), so String is kept as an immutable Go string and the
// evaluator-level mutable string object lives above this package.
type String string

func (String) schemeValue() {}

// Pair is a cons cell. A nil *Pair is the empty list. Cdr is typed any
// rather than Value so that it can hold a lazy tail such as package
// lazy's *LazyPair, which does not implement Value.
type Pair struct {
	Car Value
	Cdr any
}

func (*Pair) schemeValue() {}

// Cons allocates a new pair.
func Cons(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// Vector is a fixed-length Scheme vector.
type Vector []Value

func (Vector) schemeValue() {}

// EqLiteral is the subset of eq?/eqv? comparable without allocation: two
// values of these kinds compare equal by Go equality of their underlying
// representation. Numbers are deliberately excluded here -- eqv? on
// numbers needs numeric.Equal's exactness-aware comparison, not pointer or
// raw Go equality (two *Bignum values with equal magnitude are eqv? but
// not the same pointer).
func EqLiteral(a, b Value) bool {
	switch a := a.(type) {
	case Boolean:
		b, ok := b.(Boolean)
		return ok && a == b
	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b
	case Character:
		b, ok := b.(Character)
		return ok && a == b
	case *Pair:
		b, ok := b.(*Pair)
		return ok && a == b
	default:
		return a == b
	}
}
