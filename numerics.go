package loomrt

import "github.com/loomrt/loomrt/numeric"

func NumberPred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Number)
	return Boolean(ok)
}

func NumberEq(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || !numeric.Equal(n.N, x.N) {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberLt(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || !numeric.Lt(n.N, x.N) {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberGt(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || !numeric.Gt(n.N, x.N) {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberLte(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || !numeric.Lte(n.N, x.N) {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberGte(args Vector) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || !numeric.Gte(n.N, x.N) {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberAdd(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	sum, ok := args[0].(Number)
	if !ok {
		return nil
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok {
			return nil
		}
		n, err := numeric.Add(sum.N, x.N)
		if err != nil {
			panic(err)
		}
		sum = Number{n}
	}
	return sum
}

func NumberMul(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	product, ok := args[0].(Number)
	if !ok {
		return nil
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok {
			return nil
		}
		n, err := numeric.Mul(product.N, x.N)
		if err != nil {
			panic(err)
		}
		product = Number{n}
	}
	return product
}

func NumberSub(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	diff, ok := args[0].(Number)
	if !ok {
		return nil
	}

	if len(args) == 1 {
		n, err := numeric.Negate(diff.N)
		if err != nil {
			panic(err)
		}
		return Number{n}
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok {
			return nil
		}
		n, err := numeric.Sub(diff.N, x.N)
		if err != nil {
			panic(err)
		}
		diff = Number{n}
	}
	return diff
}

func NumberDiv(args Vector) Value {
	if len(args) == 0 {
		return nil
	}

	quo, ok := args[0].(Number)
	if !ok {
		return nil
	}

	if len(args) == 1 {
		n, err := numeric.Div(NewInt(1).N, quo.N)
		if err != nil {
			panic(err)
		}
		return Number{n}
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok {
			return nil
		}
		n, err := numeric.Div(quo.N, x.N)
		if err != nil {
			panic(err)
		}
		quo = Number{n}
	}
	return quo
}

func NumberTruncateQuotient(args Vector) Value {
	if len(args) != 2 {
		panic("truncate-quotient expects 2 arguments")
	}

	n1, ok := args[0].(Number)
	if !ok {
		panic("the first argument to truncate-quotient must be a number")
	}
	n2, ok := args[1].(Number)
	if !ok {
		panic("the second argument to truncate-quotient must be a number")
	}

	q, err := numeric.Quotient(n1.N, n2.N)
	if err != nil {
		panic(err)
	}
	return Number{q}
}
