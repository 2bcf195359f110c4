package lisp

import (
	"bytes"
	"sort"
)

// SpecialOp evaluates a special form.  The form passed includes the head
// symbol.  Operands are not evaluated before a SpecialOp is called.
type SpecialOp func(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error)

type langSpecialOp struct {
	name string
	fn   SpecialOp
}

var langSpecialOps = []langSpecialOp{
	{"var", opVar},
	{"set", opSet},
	{"if", opIf},
	{"while", opWhile},
	{"begin", opBegin},
	{"lambda", opLambda},
	{"print", opPrint},
	{"def", transformOp(TransformDef)},
	{"switch", transformOp(TransformSwitch)},
	{"for", transformOp(TransformFor)},
	{"++", transformOp(TransformIncDec)},
	{"--", transformOp(TransformIncDec)},
	{"+=", transformOp(TransformCompoundAssign)},
	{"-=", transformOp(TransformCompoundAssign)},
	{"*=", transformOp(TransformCompoundAssign)},
	{"/=", transformOp(TransformCompoundAssign)},
	{"%=", transformOp(TransformCompoundAssign)},
	{"module", transformOp(TransformModule)},
	{"class", opClass},
	{"new", opNew},
	{"prop", opProp},
	{"super", opSuper},
	{"import", opImport},
}

// specialOps is populated in init because the operators recursively call
// Eval, which reads specialOps.
var specialOps map[string]SpecialOp

func init() {
	specialOps = make(map[string]SpecialOp, len(langSpecialOps)+len(binaryOps))
	for _, op := range langSpecialOps {
		specialOps[op.name] = op.fn
	}
	for name := range binaryOps {
		specialOps[name] = opBinary
	}
}

// SpecialOps returns the sorted names of all special forms.
func SpecialOps() []string {
	names := make([]string, 0, len(specialOps))
	for name := range specialOps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSpecialOp returns true if name is the head symbol of a special form.
func IsSpecialOp(name string) bool {
	_, ok := specialOps[name]
	return ok
}

// transformOp returns a SpecialOp that desugars its form with fn and
// evaluates the result.  The transform runs every time the form is
// evaluated.
func transformOp(fn func(*LVal) (*LVal, error)) SpecialOp {
	return func(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
		expanded, err := fn(form)
		if err != nil {
			return nil, err
		}
		return ev.Eval(expanded, env)
	}
}

func opVar(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) != 3 {
		return nil, invalidf("invalid variable declaration: %v", form)
	}
	name := form.Cells[1]
	if name.Type != LSymbol {
		return nil, invalidf("invalid variable name: %v", name)
	}
	val, err := ev.Eval(form.Cells[2], env)
	if err != nil {
		return nil, err
	}
	return env.Define(name.Str, val), nil
}

func opSet(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) != 3 {
		return nil, invalidf("invalid assignment: %v", form)
	}
	target := form.Cells[1]
	switch {
	case target.Type == LSymbol:
		val, err := ev.Eval(form.Cells[2], env)
		if err != nil {
			return nil, err
		}
		return env.Assign(target.Str, val)
	case target.IsForm("prop"):
		return ev.setProp(target, form.Cells[2], env)
	default:
		return nil, invalidf("invalid assignment target: %v", target)
	}
}

func opIf(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) != 4 {
		return nil, invalidf("invalid if statement: %v", form)
	}
	cond, err := ev.Eval(form.Cells[1], env)
	if err != nil {
		return nil, err
	}
	if cond.Type != LBool {
		return nil, invalidf("if condition is not a boolean: %v", cond.Type)
	}
	if cond.Bool {
		return ev.Eval(form.Cells[2], env)
	}
	return ev.Eval(form.Cells[3], env)
}

func opWhile(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) != 3 {
		return nil, invalidf("invalid while statement: %v", form)
	}
	result := Void()
	for {
		cond, err := ev.Eval(form.Cells[1], env)
		if err != nil {
			return nil, err
		}
		if cond.Type != LBool {
			return nil, invalidf("while condition is not a boolean: %v", cond.Type)
		}
		if !cond.Bool {
			return result, nil
		}
		result, err = ev.Eval(form.Cells[2], env)
		if err != nil {
			return nil, err
		}
	}
}

func opBegin(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	return ev.evalSequence(form.Cells[1:], NewEnv(env))
}

func opLambda(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	if len(form.Cells) != 3 {
		return nil, invalidf("invalid lambda expression: %v", form)
	}
	params, err := lambdaParams(form.Cells[1])
	if err != nil {
		return nil, err
	}
	h := ev.Arena.Push(env)
	ev.trace("closure", "params", len(params), "frame", h)
	return Fun(params, form.Cells[2], h), nil
}

func lambdaParams(v *LVal) ([]string, error) {
	switch v.Type {
	case LSymbol:
		return []string{v.Str}, nil
	case LList:
		params := make([]string, len(v.Cells))
		for i, p := range v.Cells {
			if p.Type != LSymbol {
				return nil, invalidf("invalid parameter: %v", p)
			}
			params[i] = p.Str
		}
		return params, nil
	default:
		return nil, invalidf("invalid parameter list: %v", v)
	}
}

func opPrint(ev *Evaluator, form *LVal, env *LEnv) (*LVal, error) {
	var buf bytes.Buffer
	for _, arg := range form.Cells[1:] {
		val, err := ev.Eval(arg, env)
		if err != nil {
			return nil, err
		}
		buf.WriteString(val.String())
	}
	buf.WriteString("\n")
	_, err := ev.Stdout.Write(buf.Bytes())
	if err != nil {
		return nil, reasonf("print: %v", err)
	}
	return Void(), nil
}
