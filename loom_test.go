package loomrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExpr(t *testing.T, expr, expectedExpr string, globalPairs ...interface{}) {
	defer func() {
		if x := recover(); x != nil {
			t.Fatalf("panic: %v", x)
		}
	}()

	e := NewEnv()

	globals := map[Symbol]Value{}
	require.Zero(t, len(globalPairs)%2, "len(globalPairs) must be even")

	for i := 0; i < len(globalPairs); i += 2 {
		key := globalPairs[i]
		switch k := key.(type) {
		case Symbol:
			// OK
		case string:
			key = Symbol(k)
		default:
			t.Fatalf("global names must be strings or symbols")
		}

		value := globalPairs[i+1]
		switch v := value.(type) {
		case Value:
			// OK
		case string:
			x, err := ParseString(v)
			require.NoError(t, err)
			value = e.Eval(x)
		default:
			t.Fatalf("global values must be Values or strings")
		}

		globals[key.(Symbol)] = value.(Value)
	}
	e = e.With(globals)

	actualx, err := ParseString(expr)
	require.NoError(t, err)
	expectedx, err := ParseString(expectedExpr)
	require.NoError(t, err)
	actual := e.Eval(actualx)
	expected := e.Eval(expectedx)
	if !assert.True(t, Truthy(Equal(Vector{actual, expected}))) {
		assert.Equal(t, EncodeToString(expected), EncodeToString(actual))
	}
}

func TestSmoke(t *testing.T) {
	cases := []struct{ name, expr, expected string }{
		{
			"pair",
			"'(1 . 2)",
			"'(1 . 2)",
		},
		{
			"identity",
			"((lambda (x) x) 42)",
			"42",
		},
		{
			"identity-2",
			"((lambda () ((lambda (x) x) 42)))",
			"42",
		},
		{
			"if-t",
			"(if #t 42)",
			"42",
		},
		{
			"define-x",
			"((lambda () (define x 42) x))",
			"42",
		},
		{
			"factorial",
			`((lambda (n)
								(define (factorial-loop n acc)
									(if (= n 0) acc
										(factorial-loop (- n 1) (* n acc))))
								(factorial-loop n 1))
							4)`,
			"24",
		},
		{
			"quasiquote",
			`(quasiquote (a ,((lambda (n)
								(define (factorial-loop n acc)
									(if (= n 0) acc
										(factorial-loop (- n 1) (* n acc))))
								(factorial-loop n 1))
							4) b))`,
			"'(a 24 b)",
		},
		{
			"let-cond-1",
			`(let ((x 24)) (cond ((= x 24) x) ((= x 42) 1) (else 0)))`,
			"24",
		},
		{
			"let-cond-2",
			`(let ((x 42)) (cond ((= x 24) x) ((= x 42) 1) (else 0)))`,
			"1",
		},
		{
			"let-cond-3",
			`(let ((x 42)) (cond ((= x 24) x) ((= x 43) 1) (else 0)))`,
			"0",
		},
		{
			"list-tail",
			`(list-tail (list 1 2 3 4 5) 2)`,
			"'(3 4 5)",
		},
		{
			"list-recursion",
			`(begin
						(define dosort
						  (lambda (pred? ls n)
							(if (= n 1)
								(list (car ls))
								(let ((i (quotient n 2)))
								  (domerge pred?
										   (dosort pred? ls i)
										   (dosort pred? (list-tail ls i) (- n i)))))))
						(define domerge
						  (lambda (pred? l1 l2)
							(cond
							  ((null? l1) l2)
							  ((null? l2) l1)
							  ((pred? (car l2) (car l1))
							   (cons (car l2) (domerge pred? l1 (cdr l2))))
							  (else (cons (car l1) (domerge pred? (cdr l1) l2))))))
						(dosort < '(5 4 3 2 1) 5))`,
			"'(1 2 3 4 5)",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testExpr(t, c.expr, c.expected)
		})
	}
}
