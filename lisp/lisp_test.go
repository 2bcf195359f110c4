package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	tests := []struct {
		v    *LVal
		want string
	}{
		{Void(), "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(7), "7"},
		{Number(0.5), "0.5"},
		{Number(-12.25), "-12.25"},
		{Number(1e21), "1000000000000000000000"},
		{String("hello world"), "hello world"},
		{Symbol("x"), "x"},
		{List(), "()"},
		{List(Symbol("a"), List(Number(1), String("b"))), "(a (1 b))"},
		{Fun([]string{"x", "y"}, Void(), 0), "fn(x, y)"},
		{Fun(nil, Void(), 0), "fn()"},
		{Object(3, nil, true), "#<class 3>"},
		{Object(4, nil, false), "#<instance 4>"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.v.String())
	}
}

func TestLValEqual(t *testing.T) {
	a := List(Symbol("+"), Number(1), String("x"))
	b := List(Symbol("+"), Number(1), String("x"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(List(Symbol("+"), Number(2), String("x"))))
	assert.False(t, Symbol("x").Equal(String("x")))
	assert.True(t, Void().Equal(Void()))
	assert.True(t, Object(1, nil, false).Equal(Object(1, nil, false)))
	assert.False(t, Object(1, nil, false).Equal(Object(2, nil, false)))
	assert.True(t, Fun([]string{"x"}, Symbol("x"), 0).Equal(Fun([]string{"x"}, Symbol("x"), 0)))
	assert.False(t, Fun([]string{"x"}, Symbol("x"), 0).Equal(Fun([]string{"x"}, Symbol("x"), 1)))
}

func TestIsForm(t *testing.T) {
	assert.True(t, List(Symbol("begin"), Number(1)).IsForm("begin"))
	assert.False(t, List(Number(1)).IsForm("begin"))
	assert.False(t, List().IsForm("begin"))
	assert.False(t, Symbol("begin").IsForm("begin"))
}
