package loomrt

import "testing"

func TestGuard(t *testing.T) {
	cases := []struct{ name, expr, expected string }{
		{
			"catches-raise",
			`(guard (e (#t e)) (raise 42))`,
			"42",
		},
		{
			"falls-through-to-else",
			`(guard (e (#f 'no) (else 'yes)) (raise 'oops))`,
			"'yes",
		},
		{
			"normal-return-bypasses-handler",
			`(guard (e (#t 'handled)) 42)`,
			"42",
		},
		{
			"nested-guard-rethrows-to-outer",
			`(guard (e ((symbol? e) 'outer))
			   (guard (e2 ((number? e2) 'inner))
			     (raise 'oops)))`,
			"'outer",
		},
		{
			"error-builtin-raises",
			`(guard (e (#t 'caught)) (error "boom"))`,
			"'caught",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testExpr(t, c.expr, c.expected)
		})
	}
}

func TestRaiseContinuable(t *testing.T) {
	cases := []struct{ name, expr, expected string }{
		{
			"handler-result-resumes-computation",
			`(+ 1 (with-exception-handler
			        (lambda (e) 41)
			        (lambda () (raise-continuable 'oops))))`,
			"42",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testExpr(t, c.expr, c.expected)
		})
	}
}
