package lisp

// The functions in this file rewrite sugar forms into the primitive forms
// var, set, if, while, begin, lambda and class.  They are pure and do not
// recurse into the forms they produce.

// TransformDef rewrites (def name params body) as
// (var name (lambda params body)).
func TransformDef(form *LVal) (*LVal, error) {
	if len(form.Cells) != 4 {
		return nil, invalidf("invalid defining function: %v", form)
	}
	name := form.Cells[1]
	if name.Type != LSymbol {
		return nil, invalidf("invalid function name: %v", name)
	}
	return List(
		Symbol("var"),
		name,
		List(Symbol("lambda"), form.Cells[2], form.Cells[3]),
	), nil
}

// TransformSwitch rewrites
//
//	(switch (cond1 block1) (cond2 block2) ... (else blockN))
//
// as nested if forms.
func TransformSwitch(form *LVal) (*LVal, error) {
	clauses := form.Cells[1:]
	if len(clauses) < 2 {
		return nil, invalidf("switch requires at least two clauses")
	}
	last := clauses[len(clauses)-1]
	if last.Type != LList || len(last.Cells) != 2 || !last.Cells[0].IsSymbol(ElseSymbol) {
		return nil, invalidf("last switch clause must be (%s block): %v", ElseSymbol, last)
	}
	result := last.Cells[1]
	for i := len(clauses) - 2; i >= 0; i-- {
		c := clauses[i]
		if c.Type != LList || len(c.Cells) != 2 {
			return nil, invalidf("invalid switch clause: %v", c)
		}
		result = List(Symbol("if"), c.Cells[0], c.Cells[1], result)
	}
	return result, nil
}

// TransformFor rewrites (for init cond step body) as
// (begin init (while cond (begin body step))).
func TransformFor(form *LVal) (*LVal, error) {
	if len(form.Cells) != 5 {
		return nil, invalidf("invalid for statement: %v", form)
	}
	init, cond, step, body := form.Cells[1], form.Cells[2], form.Cells[3], form.Cells[4]
	return List(
		Symbol("begin"),
		init,
		List(Symbol("while"), cond, List(Symbol("begin"), body, step)),
	), nil
}

// TransformIncDec rewrites (++ x) and (-- x) as (set x (+ x 1)) and
// (set x (- x 1)).
func TransformIncDec(form *LVal) (*LVal, error) {
	if len(form.Cells) != 2 {
		return nil, invalidf("invalid %v statement: %v", form.Cells[0], form)
	}
	var op string
	switch form.Cells[0].Str {
	case "++":
		op = "+"
	case "--":
		op = "-"
	default:
		return nil, invalidf("unknown increment operator: %v", form.Cells[0])
	}
	target := form.Cells[1]
	return List(
		Symbol("set"),
		target,
		List(Symbol(op), target, Number(1)),
	), nil
}

var compoundOps = map[string]string{
	"+=": "+",
	"-=": "-",
	"*=": "*",
	"/=": "/",
	"%=": "%",
}

// TransformCompoundAssign rewrites (+= x y) as (set x (+ x y)), and likewise
// for -=, *=, /= and %=.
func TransformCompoundAssign(form *LVal) (*LVal, error) {
	if len(form.Cells) != 3 {
		return nil, invalidf("invalid %v statement: %v", form.Cells[0], form)
	}
	op, ok := compoundOps[form.Cells[0].Str]
	if !ok {
		return nil, invalidf("unknown assignment operator: %v", form.Cells[0])
	}
	target := form.Cells[1]
	return List(
		Symbol("set"),
		target,
		List(Symbol(op), target, form.Cells[2]),
	), nil
}

// TransformModule rewrites (module name body) as (class name nil body).
func TransformModule(form *LVal) (*LVal, error) {
	if len(form.Cells) != 3 {
		return nil, invalidf("invalid module definition: %v", form)
	}
	return List(Symbol("class"), form.Cells[1], Symbol("nil"), form.Cells[2]), nil
}
