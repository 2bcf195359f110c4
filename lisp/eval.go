package lisp

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/emalang/ema/internal/log"
	"github.com/emalang/ema/parser/token"
)

// Evaluator evaluates LVal expressions.  An Evaluator owns the frame arena
// shared by every function and object it creates.  An Evaluator is not safe
// for concurrent use.
type Evaluator struct {
	Arena  *Arena
	Stack  *CallStack
	Reader Reader
	Loader ModuleLoader
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer

	// SourceDir is the directory of the source currently being evaluated.
	// Modules are resolved relative to it.
	SourceDir string
	ModuleExt string
	MaxDepth  int

	global *LEnv
}

// NewEvaluator initializes and returns a new Evaluator with a fresh global
// environment, then applies configs in order.
func NewEvaluator(configs ...Config) (*Evaluator, error) {
	ev := &Evaluator{
		Arena:     NewArena(),
		Stack:     &CallStack{},
		Logger:    log.Discard(),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		ModuleExt: DefaultModuleExt,
		MaxDepth:  DefaultMaxDepth,
		global:    NewGlobalEnv(),
	}
	for _, config := range configs {
		err := config(ev)
		if err != nil {
			return nil, err
		}
	}
	return ev, nil
}

// Global returns the root environment of ev.
func (ev *Evaluator) Global() *LEnv {
	return ev.global
}

// Load reads source from r using the configured Reader and evaluates each
// top-level expression in the global environment.  The value of the last
// expression is returned.
func (ev *Evaluator) Load(name string, r io.Reader) (*LVal, error) {
	if ev.Reader == nil {
		return nil, reasonf("no reader configured")
	}
	exprs, err := ev.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	return ev.EvalProgram(exprs, ev.global)
}

// LoadString evaluates the source code in src.
func (ev *Evaluator) LoadString(name, src string) (*LVal, error) {
	return ev.Load(name, bytes.NewBufferString(src))
}

// LoadFile evaluates the source file at path.  Modules imported by the file
// are resolved relative to the file's directory.
func (ev *Evaluator) LoadFile(path string) (*LVal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, reasonf("%v", err)
	}
	defer f.Close()
	restore := ev.enterDir(filepath.Dir(path))
	defer restore()
	return ev.Load(path, f)
}

func (ev *Evaluator) enterDir(dir string) (restore func()) {
	prev := ev.SourceDir
	ev.SourceDir = dir
	return func() { ev.SourceDir = prev }
}

// EvalProgram evaluates exprs in order directly in env and returns the value
// of the last one.
func (ev *Evaluator) EvalProgram(exprs []*LVal, env *LEnv) (*LVal, error) {
	result := Void()
	for _, expr := range exprs {
		var err error
		result, err = ev.Eval(expr, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.
func (ev *Evaluator) Eval(v *LVal, env *LEnv) (*LVal, error) {
	switch v.Type {
	case LSymbol:
		val, err := env.Lookup(v.Str)
		if err != nil {
			return nil, locate(err, v)
		}
		return val, nil
	case LList:
		val, err := ev.evalList(v, env)
		if err != nil {
			return nil, locate(err, v)
		}
		return val, nil
	default:
		// atoms, functions and objects evaluate to themselves
		return v, nil
	}
}

func (ev *Evaluator) evalList(v *LVal, env *LEnv) (*LVal, error) {
	if len(v.Cells) == 0 {
		return Void(), nil
	}
	head := v.Cells[0]
	if head.Type == LSymbol {
		if op, ok := specialOps[head.Str]; ok {
			return op(ev, v, env)
		}
		f, err := ev.Eval(head, env)
		if err != nil {
			return nil, err
		}
		if f.Type == LFun {
			return ev.call(f, v, env)
		}
		if len(v.Cells) == 1 {
			return f, nil
		}
		return nil, reasonf("%v is not a function", head)
	}
	if isSequenceHead(head) {
		return ev.evalSequence(v.Cells, NewEnv(env))
	}
	f, err := ev.Eval(head, env)
	if err != nil {
		return nil, err
	}
	if f.Type == LFun {
		return ev.call(f, v, env)
	}
	if len(v.Cells) == 1 {
		return f, nil
	}
	return nil, reasonf("%v is not a function", head)
}

// isSequenceHead returns true if a list with the non-symbol head is a block
// of forms rather than an application.  Heads which produce functions are
// lambda, prop and super forms and calls to other functions.
func isSequenceHead(head *LVal) bool {
	switch head.Type {
	case LFun:
		return false
	case LList:
		if len(head.Cells) == 0 {
			return true
		}
		op := head.Cells[0]
		if op.Type != LSymbol {
			return isSequenceHead(op)
		}
		switch op.Str {
		case "lambda", "prop", "super":
			return false
		}
		return IsSpecialOp(op.Str)
	default:
		return true
	}
}

// evalSequence evaluates exprs in env and returns the value of the last.
func (ev *Evaluator) evalSequence(exprs []*LVal, env *LEnv) (*LVal, error) {
	result := Void()
	for _, expr := range exprs {
		var err error
		result, err = ev.Eval(expr, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// call applies the function f to the arguments of form, which are evaluated
// in the caller's environment env.
func (ev *Evaluator) call(f *LVal, form *LVal, env *LEnv) (*LVal, error) {
	name := form.Cells[0].String()
	args := form.Cells[1:]
	if len(args) != len(f.Params) {
		return nil, reasonf("function %s took %d arguments, %d provided",
			name, len(f.Params), len(args))
	}
	vals := make([]*LVal, len(args))
	for i := range args {
		var err error
		vals[i], err = ev.Eval(args[i], env)
		if err != nil {
			return nil, err
		}
	}
	return ev.invoke(name, form.Source, f, vals)
}

// invoke binds vals to the parameters of f in a new activation environment
// extending the frame f captured and evaluates the body of f there.
func (ev *Evaluator) invoke(name string, site *token.Location, f *LVal, vals []*LVal) (*LVal, error) {
	captured, err := ev.Arena.Frame(f.Frame)
	if err != nil {
		return nil, err
	}
	if ev.MaxDepth > 0 && ev.Stack.Height() >= ev.MaxDepth {
		return nil, reasonf("maximum call depth exceeded (%d)", ev.MaxDepth)
	}
	activation := NewEnv(captured)
	for i, param := range f.Params {
		activation.Define(param, vals[i])
	}
	ev.Stack.Push(name, site)
	result, err := ev.Eval(f.Body, activation)
	if err != nil {
		ev.attachStack(err)
	}
	ev.Stack.Pop()
	return result, err
}

func (ev *Evaluator) attachStack(err error) {
	lerr, ok := err.(*Error)
	if ok && lerr.Stack == nil {
		lerr.Stack = ev.Stack.Copy()
	}
}

func (ev *Evaluator) trace(msg string, args ...interface{}) {
	ev.Logger.Log(context.Background(), slog.Level(log.LevelTrace), msg, args...)
}
