package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emalang/ema/lisp"
)

// ExitCommand ends a session when entered on a line by itself.
const ExitCommand = "exit"

// Status is the state of a Session after it is fed a line.
type Status int

// Possible Status values
const (
	StatusReady   Status = iota // the input was evaluated or discarded
	StatusPending               // the input contains an unclosed list
	StatusExit                  // the exit command was entered
)

// Styles controls the rendering of session output.
type Styles struct {
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
}

// PlainStyles returns Styles that render text unchanged.
func PlainStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle(),
		Result: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle(),
	}
}

// ColorStyles returns Styles that render results and errors in color.
func ColorStyles() Styles {
	return Styles{
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Result: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Session accumulates input lines and evaluates them once they form
// complete expressions.  A Session does not read input itself.
type Session struct {
	ev     *lisp.Evaluator
	out    io.Writer
	styles Styles
	buf    []string

	// ShowStack prints the call stack of runtime errors raised inside
	// functions.
	ShowStack bool
}

// NewSession returns a Session evaluating input with ev and writing results
// to out.
func NewSession(ev *lisp.Evaluator, out io.Writer, styles Styles) *Session {
	return &Session{
		ev:     ev,
		out:    out,
		styles: styles,
	}
}

// Pending returns true if previously fed lines are waiting for the rest of
// an expression.
func (s *Session) Pending() bool {
	return len(s.buf) > 0
}

// Reset discards pending input.
func (s *Session) Reset() {
	s.buf = nil
}

// Feed adds line to the pending input.  If the input is complete it is
// evaluated in the global environment and the value of the last expression,
// or the error, is written to the session output.
func (s *Session) Feed(line string) Status {
	if !s.Pending() && strings.TrimSpace(line) == ExitCommand {
		return StatusExit
	}
	src := line
	if s.Pending() {
		src = strings.Join(append(s.buf, line), "\n")
	}
	exprs, err := s.ev.Reader.Read("repl", strings.NewReader(src))
	if errors.Is(err, lisp.ErrUnclosedList) {
		s.buf = append(s.buf, line)
		return StatusPending
	}
	s.buf = nil
	if err != nil {
		s.printError(err)
		return StatusReady
	}
	if len(exprs) == 0 {
		return StatusReady
	}
	val, err := s.ev.EvalProgram(exprs, s.ev.Global())
	if err != nil {
		s.printError(err)
		return StatusReady
	}
	fmt.Fprintln(s.out, s.styles.Result.Render(val.String()))
	return StatusReady
}

func (s *Session) printError(err error) {
	fmt.Fprintln(s.out, s.styles.Error.Render(err.Error()))
	var lerr *lisp.Error
	if s.ShowStack && errors.As(err, &lerr) && lerr.Stack != nil {
		lerr.Stack.DebugPrint(s.out)
	}
}
