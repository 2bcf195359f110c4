package lisp

import (
	"math"
	"strings"
)

type binaryOp struct {
	num     func(a, b float64) *LVal
	str     func(a, b string) *LVal
	logical func(a, b bool) *LVal
}

var binaryOps = map[string]binaryOp{
	"+": {
		num: func(a, b float64) *LVal { return Number(a + b) },
		str: func(a, b string) *LVal { return String(a + b) },
	},
	"-": {num: func(a, b float64) *LVal { return Number(a - b) }},
	"*": {num: func(a, b float64) *LVal { return Number(a * b) }},
	"/": {num: func(a, b float64) *LVal { return Number(a / b) }},
	"%": {num: func(a, b float64) *LVal { return Number(math.Mod(a, b)) }},
	"<": {
		num: func(a, b float64) *LVal { return Bool(a < b) },
		str: func(a, b string) *LVal { return Bool(strings.Compare(a, b) < 0) },
	},
	"<=": {
		num: func(a, b float64) *LVal { return Bool(a <= b) },
		str: func(a, b string) *LVal { return Bool(strings.Compare(a, b) <= 0) },
	},
	">": {
		num: func(a, b float64) *LVal { return Bool(a > b) },
		str: func(a, b string) *LVal { return Bool(strings.Compare(a, b) > 0) },
	},
	">=": {
		num: func(a, b float64) *LVal { return Bool(a >= b) },
		str: func(a, b string) *LVal { return Bool(strings.Compare(a, b) >= 0) },
	},
	"=": {
		num: func(a, b float64) *LVal { return Bool(a == b) },
		str: func(a, b string) *LVal { return Bool(a == b) },
	},
	"!=": {
		num: func(a, b float64) *LVal { return Bool(a != b) },
		str: func(a, b string) *LVal { return Bool(a != b) },
	},
	"&": {logical: func(a, b bool) *LVal { return Bool(a && b) }},
	"|": {logical: func(a, b bool) *LVal { return Bool(a || b) }},
}

func opBinary(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	name := form.Cells[0].Str
	if len(form.Cells) != 3 {
		return nil, invalidf("operator %s takes two operands, %d provided", name, len(form.Cells)-1)
	}
	a, err := ev.Eval(form.Cells[1], env)
	if err != nil {
		return nil, err
	}
	b, err := ev.Eval(form.Cells[2], env)
	if err != nil {
		return nil, err
	}
	return applyBinary(name, a, b)
}

func applyBinary(name string, a, b *LVal) (*LVal, error) {
	op, ok := binaryOps[name]
	if !ok {
		return nil, reasonf("unknown operator: %s", name)
	}
	if op.logical != nil {
		if a.Type == LBool && b.Type == LBool {
			return op.logical(a.Bool, b.Bool), nil
		}
		return nil, invalidf("invalid type for %s operator", name)
	}
	if a.Type == LString && b.Type == LString && op.str != nil {
		return op.str(a.Str, b.Str), nil
	}
	x, xok := a.numeric()
	y, yok := b.numeric()
	if xok && yok && op.num != nil {
		return op.num(x, y), nil
	}
	return nil, invalidf("invalid type for %s operator", name)
}
