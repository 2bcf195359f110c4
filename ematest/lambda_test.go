package ematest

import (
	"testing"

	"github.com/emalang/ema/lisp"
)

func TestLambda(t *testing.T) {
	tests := TestSuite{
		{"immediate call", TestSequence{
			{"((lambda (x) (* x x)) 4)", "16", ""},
			{"((lambda data (+ data 1)) 2)", "3", ""},
			{"((lambda () 7))", "7", ""},
			{"(((lambda (x) (lambda (y) (+ x y))) 3) 4)", "7", ""},
		}},
		{"named functions", TestSequence{
			{"(var square (lambda (x) (* x x)))", "fn(x)", ""},
			{"(square 5)", "25", ""},
			{"(def apply2 (f x) (f (f x)))", "fn(f, x)", ""},
			{"(apply2 square 3)", "81", ""},
			{"(square 1 2)", "runtime error: function square took 1 arguments, 2 provided", ""},
			{"(apply2 square)", "runtime error: function apply2 took 2 arguments, 1 provided", ""},
		}},
		{"recursion", TestSequence{
			{"(def factorial (n) (if (= n 1) 1 (* n (factorial (- n 1)))))", "fn(n)", ""},
			{"(factorial 4)", "24", ""},
			{"(factorial 10)", "3628800", ""},
		}},
		{"non-functions", TestSequence{
			{"(var n 5)", "5", ""},
			{"(n)", "5", ""},
			{"(n 1)", "runtime error: n is not a function", ""},
			{"(undefined 1)", "reference error: undefined is not defined", ""},
		}},
		{"malformed", TestSequence{
			{"(lambda (x))", "invalid error: invalid lambda expression: (lambda (x))", ""},
			{"(lambda (1) x)", "invalid error: invalid parameter: 1", ""},
			{"(def f x)", "invalid error: invalid defining function: (def f x)", ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestMaxDepth(t *testing.T) {
	tests := TestSuite{
		{"unbounded recursion", TestSequence{
			{"(def forever (n) (forever n))", "fn(n)", ""},
			{"(forever 1)", "runtime error: maximum call depth exceeded (50)", ""},
			{"(def down (n) (if (= n 0) 0 (down (- n 1))))", "fn(n)", ""},
			{"(down 40)", "0", ""},
		}},
	}
	RunTestSuite(t, tests, lisp.WithMaxDepth(50))
}
