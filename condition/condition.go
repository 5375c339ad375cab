// Package condition implements component F: the hierarchical condition
// type graph, compound conditions, and the raise/guard/handler-stack
// protocol built on top of it.
//
// pgavlin-loom signals errors by panicking with a bare string or error
// value and never recovers in production code (recover() appears only
// in its own test harness). This package keeps that panic-based idiom
// for the boundary case -- an uncaught raise still panics, so a REPL
// wrapping the evaluator in one recover behaves exactly like loom's own
// top-level error surfacing -- but the handler-stack machinery that
// makes raise/guard/with-exception-handler behave like R7RS (rather
// than like an ordinary Go panic) is new: nothing in the retrieval pack
// implements a reduced-handler-stack re-raise protocol, so the design
// below follows the protocol description directly, the same way
// cont.Reenter's lca walk does.
package condition

import "fmt"

// Type is one node in the condition lattice. A Type may have more than
// one Parent (io-read-error is both a read-error and a port-error), so
// the graph is a DAG rather than a tree.
type Type struct {
	Name    string
	Parents []*Type
}

// NewType declares a user-extensible condition type under the given
// parents.
func NewType(name string, parents ...*Type) *Type {
	return &Type{Name: name, Parents: parents}
}

// IsA reports whether t is other or a descendant of other.
func (t *Type) IsA(other *Type) bool {
	if t == nil || other == nil {
		return false
	}
	if t == other {
		return true
	}
	for _, p := range t.Parents {
		if p.IsA(other) {
			return true
		}
	}
	return false
}

func (t *Type) String() string {
	if t == nil {
		return "<condition>"
	}
	return t.Name
}

// Predefined types forming the lattice rooted at <condition>.
var (
	ConditionType   = NewType("condition")
	SeriousType     = NewType("serious", ConditionType)
	ErrorType       = NewType("error", SeriousType)
	MessageType     = NewType("message", ConditionType)
	IOErrorType     = NewType("io-error", ErrorType)
	ReadErrorType   = NewType("read-error", IOErrorType)
	PortErrorType   = NewType("port-error", IOErrorType)
	IOReadErrorType = NewType("io-read-error", ReadErrorType, PortErrorType)
	SystemErrorType = NewType("system-error", ErrorType)
)

// Conditionish is satisfied by both a simple Condition and a Compound,
// so has-type?/extract can operate uniformly over either.
type Conditionish interface {
	HasType(t *Type) bool
}

// Condition is a simple, immutable condition instance. Errno is only
// meaningful when Typ.IsA(SystemErrorType); it is the zero value
// otherwise.
type Condition struct {
	Typ       *Type
	Msg       string
	Irritants []any
	Errno     int
}

// New constructs a simple condition of the given type.
func New(t *Type, msg string, irritants ...any) *Condition {
	return &Condition{Typ: t, Msg: msg, Irritants: irritants}
}

// NewSystemError constructs a <system-error> condition carrying errno.
func NewSystemError(errno int, msg string) *Condition {
	return &Condition{Typ: SystemErrorType, Msg: msg, Errno: errno}
}

// HasType reports whether c is a T or a subtype of T.
func (c *Condition) HasType(t *Type) bool {
	if c == nil {
		return false
	}
	return c.Typ.IsA(t)
}

// Error implements the error interface so a *Condition can flow through
// ordinary Go error-handling paths (errors.Is/errors.As against a
// sentinel Type via Is, below) as well as through raise/guard.
func (c *Condition) Error() string {
	if len(c.Irritants) == 0 {
		return fmt.Sprintf("%s: %s", c.Typ, c.Msg)
	}
	return fmt.Sprintf("%s: %s %v", c.Typ, c.Msg, c.Irritants)
}

// Is lets errors.Is(err, condition.Sentinel(T)) match any condition
// whose type is T or a descendant of T.
func (c *Condition) Is(target error) bool {
	s, ok := target.(*sentinel)
	if !ok {
		return false
	}
	return c.HasType(s.t)
}

type sentinel struct{ t *Type }

func (s *sentinel) Error() string { return "condition of type " + s.t.String() }

// Sentinel returns an error value usable with errors.Is to test whether
// a *Condition (or a Compound containing one) descends from t.
func Sentinel(t *Type) error { return &sentinel{t: t} }

// Compound is an (immutable) flattened set of simple conditions.
type Compound struct {
	Members []*Condition
}

// MakeCompound builds a Compound from any mix of Condition and Compound
// arguments, flattening nested compounds so a Compound never contains
// another Compound.
func MakeCompound(cs ...Conditionish) *Compound {
	var members []*Condition
	for _, c := range cs {
		switch c := c.(type) {
		case *Condition:
			if c != nil {
				members = append(members, c)
			}
		case *Compound:
			if c != nil {
				members = append(members, c.Members...)
			}
		}
	}
	return &Compound{Members: members}
}

// HasType reports whether any member of c is a T or a subtype of T.
func (c *Compound) HasType(t *Type) bool {
	if c == nil {
		return false
	}
	for _, m := range c.Members {
		if m.HasType(t) {
			return true
		}
	}
	return false
}

func (c *Compound) Error() string {
	if c == nil || len(c.Members) == 0 {
		return "compound condition (empty)"
	}
	s := c.Members[0].Error()
	for _, m := range c.Members[1:] {
		s += "; " + m.Error()
	}
	return s
}

// Extract returns the first member of c that is a T (or c itself, if c
// is already a simple condition of type T).
func Extract(c Conditionish, t *Type) (*Condition, bool) {
	switch c := c.(type) {
	case *Condition:
		if c.HasType(t) {
			return c, true
		}
	case *Compound:
		for _, m := range c.Members {
			if m.HasType(t) {
				return m, true
			}
		}
	}
	return nil, false
}

// Stable condition tags, matching the external symbol names raised
// conditions carry so a guard clause can dispatch on tag rather than on
// Go type identity.
const (
	TagIORead        = "io/read"
	TagIOPort        = "io/port"
	TagIOSystem      = "io/system"
	TagArithDivZero  = "arith/div-by-zero"
	TagArithOverflow = "arith/overflow"
	TagArithDomain   = "arith/domain"
	TagNumberParse   = "number/parse"
	TagNumberLimit   = "number/impl-limit"
)
