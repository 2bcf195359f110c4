// Package ematest runs table-driven tests of ema programs.
package ematest

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/emalang/ema/lisp"
	"github.com/emalang/ema/lisp/lisplib"
	"github.com/emalang/ema/parser"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// by a lisp.Evaluator.
type TestSequence []struct {
	Expr   string // an ema expression
	Result string // the evaluated result, or the error without its location
	Output string // text printed while evaluating Expr, if checked
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEvaluator returns an evaluator which reads ema source, writes printed
// output to stdout and resolves modules relative to dir before falling back
// to the standard modules.
func NewEvaluator(stdout *bytes.Buffer, dir string, configs ...lisp.Config) (*lisp.Evaluator, error) {
	base := []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithModuleLoader(lisplib.DefaultLoader()),
		lisp.WithSourceDir(dir),
		lisp.WithStdout(stdout),
	}
	return lisp.NewEvaluator(append(base, configs...)...)
}

// ResultString formats the outcome of an evaluation the way TestSequence
// results are written.
func ResultString(v *lisp.LVal, err error) string {
	if err != nil {
		var lerr *lisp.Error
		if errors.As(err, &lerr) {
			return lerr.Cond.String() + " error: " + lerr.Msg
		}
		return err.Error()
	}
	return v.String()
}

// RunTestSuite runs each TestSequence in tests on isolated evaluators.
// Modules are resolved relative to the testdata directory.
func RunTestSuite(t *testing.T, tests TestSuite, configs ...lisp.Config) {
	t.Helper()
	for i, test := range tests {
		var stdout bytes.Buffer
		ev, err := NewEvaluator(&stdout, "testdata", configs...)
		if err != nil {
			t.Fatalf("test %d %q: unable to create evaluator: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			stdout.Reset()
			v, err := parser.ParseLVal("test", expr.Expr)
			if err != nil {
				t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: expected one expression (got %d)", i, test.Name, j, len(v))
				continue
			}
			result := ResultString(ev.Eval(v[0], ev.Global()))
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if expr.Output != "" && stdout.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, stdout.String())
			}
		}
	}
}

// RunFile evaluates the source file at path on a fresh evaluator and checks
// the result of its last expression.
func RunFile(t *testing.T, path string, result string, configs ...lisp.Config) {
	t.Helper()
	var stdout bytes.Buffer
	ev, err := NewEvaluator(&stdout, "", configs...)
	if err != nil {
		t.Fatalf("unable to create evaluator: %v", err)
	}
	got := ResultString(ev.LoadFile(path))
	if got != result {
		t.Errorf("%s: expected result %s (got %s)", path, result, got)
	}
}

// BenchmarkParse returns a benchmark function that parses the file at path.
func BenchmarkParse(path string, newReader func() lisp.Reader) func(b *testing.B) {
	return func(b *testing.B) {
		src, err := os.ReadFile(path)
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err := newReader().Read(path, bytes.NewReader(src))
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
