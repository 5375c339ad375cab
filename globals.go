package loomrt

var globalScope = &scope{env: map[Symbol]Value{
	// equality predicates
	"eqv?":   ProcedureFunc(Eqv),
	"eq?":    ProcedureFunc(Eq),
	"equal?": ProcedureFunc(Equal),

	// numerics
	"number?":           ProcedureFunc(NumberPred),
	"=":                 ProcedureFunc(NumberEq),
	"<":                 ProcedureFunc(NumberLt),
	">":                 ProcedureFunc(NumberGt),
	"<=":                ProcedureFunc(NumberLte),
	">=":                ProcedureFunc(NumberGte),
	"+":                 ProcedureFunc(NumberAdd),
	"*":                 ProcedureFunc(NumberMul),
	"-":                 ProcedureFunc(NumberSub),
	"/":                 ProcedureFunc(NumberDiv),
	"truncate-quotient": ProcedureFunc(NumberTruncateQuotient),
	"quotient":          ProcedureFunc(NumberTruncateQuotient),

	// booleans
	"boolean?": ProcedureFunc(BooleanPred),
	"not":      ProcedureFunc(BooleanNot),

	// symbols
	"symbol?": ProcedureFunc(func(args Vector) Value {
		if len(args) != 1 {
			return Boolean(false)
		}
		_, ok := args[0].(Symbol)
		return Boolean(ok)
	}),

	// pairs and lists
	"pair?":     ProcedureFunc(PairPred),
	"cons":      ProcedureFunc(PairCons),
	"car":       ProcedureFunc(PairCar),
	"cdr":       ProcedureFunc(PairCdr),
	"set-car!":  ProcedureFunc(PairSetCar),
	"set-cdr!":  ProcedureFunc(PairSetCdr),
	"null?":     ProcedureFunc(NullPred),
	"list":      ProcedureFunc(ListConstructor),
	"length":    ProcedureFunc(ListLength),
	"append":    ProcedureFunc(ListAppend),
	"assq":      ProcedureFunc(ListAssq),
	"list-tail": ProcedureFunc(ListTail),
	"list-ref":  ProcedureFunc(ListRef),
	"reverse": ProcedureFunc(func(args Vector) Value {
		if len(args) != 1 {
			panic("reverse expects one argument")
		}
		var r Value
		for p, _ := asPair(args[0]); p != nil; p, _ = asPair(p.cdr) {
			r = &Pair{car: p.car, cdr: r}
		}
		return r
	}),

	// continuations and dynamic extent
	"call/cc":                        ProcedureFunc(CallCC),
	"call-with-current-continuation": ProcedureFunc(CallCC),
	"dynamic-wind":                   ProcedureFunc(DynamicWind),

	// conditions and exceptions
	"raise":                  ProcedureFunc(Raise),
	"raise-continuable":      ProcedureFunc(RaiseContinuable),
	"with-exception-handler": ProcedureFunc(WithExceptionHandler),
	"error":                  ProcedureFunc(Error),

	// promises and lazy sequences
	"force":           ProcedureFunc(Force),
	"make-promise":    ProcedureFunc(MakePromise),
	"generator->lseq": ProcedureFunc(GeneratorToLseq),
}}
