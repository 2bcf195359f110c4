package lisp

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/emalang/ema/parser/token"
)

// Condition classifies an Error.
type Condition uint

// Possible Condition values
const (
	CondInvalid   Condition = iota // malformed special form
	CondReason                     // generic runtime failure
	CondReference                  // unbound identifier
	CondToken                      // lexical failure
	CondParse                      // structural reader failure
)

var conditionStrings = []string{
	CondInvalid:   "invalid",
	CondReason:    "runtime",
	CondReference: "reference",
	CondToken:     "token",
	CondParse:     "parse",
}

func (c Condition) String() string {
	if int(c) >= len(conditionStrings) {
		return "unknown"
	}
	return conditionStrings[c]
}

// ErrUnclosedList is reported by readers when the input ends inside an open
// list.  Interactive front ends use it to decide to read more input.
var ErrUnclosedList = &Error{Cond: CondParse, Msg: "could not find closing ')'"}

// ErrUnexpectedClose is reported by readers for a ')' without a matching '('.
var ErrUnexpectedClose = &Error{Cond: CondParse, Msg: "unexpected ')'"}

// Error is the error type produced by readers and by the evaluator.
type Error struct {
	Cond   Condition
	Msg    string
	Source *token.Location
	Stack  *CallStack // call stack when the error escaped a function, if any
}

// Errorf returns an Error with the given condition and formatted message.
func Errorf(cond Condition, format string, v ...interface{}) *Error {
	return &Error{Cond: cond, Msg: fmt.Sprintf(format, v...)}
}

func invalidf(format string, v ...interface{}) error {
	return Errorf(CondInvalid, format, v...)
}

func reasonf(format string, v ...interface{}) error {
	return Errorf(CondReason, format, v...)
}

func referencef(format string, v ...interface{}) error {
	return Errorf(CondReference, format, v...)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var buf bytes.Buffer
	if e.Source != nil {
		buf.WriteString(e.Source.String())
		buf.WriteString(": ")
	}
	buf.WriteString(e.Cond.String())
	buf.WriteString(" error: ")
	buf.WriteString(e.Msg)
	return buf.String()
}

// Is reports whether target is an *Error with the same condition and
// message, ignoring location and stack.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Cond == t.Cond && e.Msg == t.Msg
}

// WithSource returns a copy of e located at loc.
func (e *Error) WithSource(loc *token.Location) *Error {
	cp := *e
	cp.Source = loc
	return &cp
}

// HasCondition returns true if err is an *Error with condition cond.
func HasCondition(err error, cond Condition) bool {
	var lerr *Error
	if !errors.As(err, &lerr) {
		return false
	}
	return lerr.Cond == cond
}

// locate attaches the source location of v to err when err does not have one
// yet.
func locate(err error, v *LVal) error {
	lerr, ok := err.(*Error)
	if !ok || lerr.Source != nil || v.Source == nil {
		return err
	}
	lerr.Source = v.Source
	return lerr
}
