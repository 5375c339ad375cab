package loomrt

import "testing"

func TestCallCC(t *testing.T) {
	cases := []struct{ name, expr, expected string }{
		{
			"return-value",
			"(call/cc (lambda (k) 42))",
			"42",
		},
		{
			"escape",
			"(+ 1 (call/cc (lambda (k) (k 42) 99)))",
			"43",
		},
		{
			"escape-from-nested-call",
			`(+ 1 (call/cc (lambda (k)
			                  (+ 2 (call/cc (lambda (k2) (k 42)))))))`,
			"43",
		},
		{
			"invoke-escapes-from-call/cc",
			`(let ((count 0))
			   (call/cc (lambda (k)
			     (set! count (+ count 1))
			     (if (< count 3) (k #f))
			     count)))`,
			"#f",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testExpr(t, c.expr, c.expected)
		})
	}
}

func TestDynamicWind(t *testing.T) {
	cases := []struct{ name, expr, expected string }{
		{
			"runs-before-and-after",
			`(let ((trace '()))
			   (dynamic-wind
			     (lambda () (set! trace (cons 'before trace)))
			     (lambda () (set! trace (cons 'during trace)))
			     (lambda () (set! trace (cons 'after trace))))
			   (reverse trace))`,
			"'(before during after)",
		},
		{
			"after-runs-on-escape",
			`(let ((trace '()))
			   (call/cc (lambda (k)
			     (dynamic-wind
			       (lambda () (set! trace (cons 'before trace)))
			       (lambda () (k 'escaped))
			       (lambda () (set! trace (cons 'after trace))))))
			   (reverse trace))`,
			"'(before after)",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			testExpr(t, c.expr, c.expected)
		})
	}
}
