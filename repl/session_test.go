package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emalang/ema/lisp"
	"github.com/emalang/ema/lisp/lisplib"
	"github.com/emalang/ema/parser"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer, *bytes.Buffer) {
	var out, stdout bytes.Buffer
	ev, err := lisp.NewEvaluator(
		lisp.WithReader(parser.NewReader()),
		lisp.WithModuleLoader(lisplib.Loader()),
		lisp.WithStdout(&stdout))
	require.NoError(t, err)
	return NewSession(ev, &out, PlainStyles()), &out, &stdout
}

func TestSession(t *testing.T) {
	tests := []struct {
		line   string
		status Status
		output string
	}{
		{"", StatusReady, ""},
		{"; nothing", StatusReady, ""},
		{"(+ 1 2)", StatusReady, "3\n"},
		{"(var x 10)", StatusReady, "10\n"},
		{"(def add (a b)", StatusPending, ""},
		{"  (+ a b))", StatusReady, "fn(a, b)\n"},
		{"(add x 5)", StatusReady, "15\n"},
		{"nil", StatusReady, "nil\n"},
		{"1 2 3", StatusReady, "3\n"},
		{"y", StatusReady, "repl:1:1: reference error: y is not defined\n"},
		{")", StatusReady, "repl:1:1: parse error: unexpected ')'\n"},
		{"(import (square) Math)", StatusReady, "#<class 1>\n"},
		{"(square 4)", StatusReady, "16\n"},
		{"  exit  ", StatusExit, ""},
	}
	s, out, _ := newTestSession(t)
	for _, test := range tests {
		out.Reset()
		status := s.Feed(test.line)
		assert.Equal(t, test.status, status, test.line)
		assert.Equal(t, test.output, out.String(), test.line)
	}
}

func TestSessionPending(t *testing.T) {
	s, out, stdout := newTestSession(t)
	assert.Equal(t, StatusPending, s.Feed("(print"))
	assert.True(t, s.Pending())
	// exit only ends the session outside of an expression
	assert.Equal(t, StatusPending, s.Feed("exit"))
	assert.Equal(t, StatusPending, s.Feed(`"hi"`))
	s.Reset()
	assert.False(t, s.Pending())
	assert.Equal(t, StatusReady, s.Feed(`(print "hi")`))
	assert.Equal(t, "nil\n", out.String())
	assert.Equal(t, "hi\n", stdout.String())
}

func TestSessionStack(t *testing.T) {
	s, out, _ := newTestSession(t)
	s.ShowStack = true
	s.Feed("(def f () (+ 1 missing))")
	out.Reset()
	assert.Equal(t, StatusReady, s.Feed("(f)"))
	assert.Equal(t, `repl:1:16: reference error: missing is not defined
Stack Trace [1 frames -- entrypoint last]:
  height 0: repl:1:1: f
`, out.String())
}
