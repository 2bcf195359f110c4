package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialOps(t *testing.T) {
	names := SpecialOps()
	assert.IsIncreasing(t, names)
	for _, name := range []string{"var", "set", "if", "while", "begin", "lambda", "print",
		"def", "switch", "for", "module", "class", "new", "prop", "super", "import",
		"+", "-", "*", "/", "%", "<", "<=", ">", ">=", "=", "!=", "&", "|",
		"++", "--", "+=", "-=", "*=", "/=", "%="} {
		assert.True(t, IsSpecialOp(name), name)
		assert.Contains(t, names, name)
	}
	assert.False(t, IsSpecialOp("exit"))
	assert.False(t, IsSpecialOp("self"))
}

func TestApplyBinary(t *testing.T) {
	tests := []struct {
		op     string
		a, b   *LVal
		result string
		err    string
	}{
		{"+", Number(1), Number(2), "3", ""},
		{"+", String("ab"), String("cd"), "abcd", ""},
		{"-", Number(1), Number(2.5), "-1.5", ""},
		{"*", Number(3), Bool(true), "3", ""},
		{"/", Number(1), Number(4), "0.25", ""},
		{"%", Number(7), Number(4), "3", ""},
		{"%", Number(-5), Number(3), "-2", ""},
		{"<", String("a"), String("b"), "true", ""},
		{">=", String("a"), String("b"), "false", ""},
		{"=", String("a"), String("a"), "true", ""},
		{"!=", Number(1), Number(1), "false", ""},
		{"=", Bool(true), Number(1), "true", ""},
		{"&", Bool(true), Bool(false), "false", ""},
		{"|", Bool(true), Bool(false), "true", ""},
		{"&", Number(1), Bool(false), "", "invalid error: invalid type for & operator"},
		{"-", String("a"), String("b"), "", "invalid error: invalid type for - operator"},
		{"+", String("a"), Number(1), "", "invalid error: invalid type for + operator"},
		{"^", Number(1), Number(1), "", "runtime error: unknown operator: ^"},
	}
	for _, test := range tests {
		v, err := applyBinary(test.op, test.a, test.b)
		if test.err != "" {
			assert.EqualError(t, err, test.err, "%s %v %v", test.op, test.a, test.b)
			continue
		}
		if assert.NoError(t, err, "%s %v %v", test.op, test.a, test.b) {
			assert.Equal(t, test.result, v.String(), "%s %v %v", test.op, test.a, test.b)
		}
	}
}

func TestSpecialOpErrors(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)
	env := ev.Global()
	env.Define("n", Number(1))

	tests := []struct {
		form *LVal
		err  string
	}{
		{List(sym("+"), Number(1)), "invalid error: operator + takes two operands, 1 provided"},
		{List(sym("if"), Number(1), Number(2), Number(3)), "invalid error: if condition is not a boolean: number"},
		{List(sym("if"), Bool(true), Number(2)), "invalid error: invalid if statement: (if true 2)"},
		{List(sym("while"), Number(0), Number(1)), "invalid error: while condition is not a boolean: number"},
		{List(sym("var"), Number(1), Number(2)), "invalid error: invalid variable name: 1"},
		{List(sym("set"), Number(1), Number(2)), "invalid error: invalid assignment target: 1"},
		{List(sym("set"), sym("undefined"), Number(2)), "reference error: undefined is not defined"},
		{List(sym("lambda"), List(Number(1)), Number(2)), "invalid error: invalid parameter: 1"},
		{List(sym("n"), Number(2)), "runtime error: n is not a function"},
	}
	for _, test := range tests {
		_, err := ev.Eval(test.form, env)
		assert.EqualError(t, err, test.err, test.form.String())
	}
}

func TestWhileResult(t *testing.T) {
	ev, err := NewEvaluator()
	require.NoError(t, err)
	env := ev.Global()

	// (var i 0) (while (< i 3) (set i (+ i 1)))
	forms := []*LVal{
		List(sym("var"), sym("i"), Number(0)),
		List(sym("while"),
			List(sym("<"), sym("i"), Number(3)),
			List(sym("set"), sym("i"), List(sym("+"), sym("i"), Number(1)))),
	}
	v, err := ev.EvalProgram(forms, env)
	require.NoError(t, err)
	assert.Equal(t, "3", v.String())

	v, err = ev.Eval(List(sym("while"), Bool(false), Number(1)), env)
	require.NoError(t, err)
	assert.True(t, v.IsVoid())
}
