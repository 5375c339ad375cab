package loomrt

import "testing"

func TestPromise(t *testing.T) {
	cases := []struct{ name, expr, expected string }{
		{
			"force-delay",
			"(force (delay (+ 1 2)))",
			"3",
		},
		{
			"force-non-promise-returns-unchanged",
			"(force 42)",
			"42",
		},
		{
			"make-promise-idempotent",
			"(force (make-promise (make-promise 42)))",
			"42",
		},
		{
			"delay-evaluated-once",
			`(let ((count 0))
			   (define p (delay (begin (set! count (+ count 1)) count)))
			   (force p)
			   (force p)
			   count)`,
			"1",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testExpr(t, c.expr, c.expected)
		})
	}
}

func TestGeneratorToLseq(t *testing.T) {
	cases := []struct{ name, expr, expected string }{
		{
			"car-cdr-walk",
			`(let ((n 0))
			   (define g (generator->lseq (lambda ()
			     (set! n (+ n 1))
			     (if (> n 3) '() n))))
			   (list (car g) (car (cdr g)) (car (cdr (cdr g)))))`,
			"'(1 2 3)",
		},
		{
			"pair-predicate",
			`(pair? (generator->lseq (lambda () 1)))`,
			"#t",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testExpr(t, c.expr, c.expected)
		})
	}
}
