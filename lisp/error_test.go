package lisp

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emalang/ema/parser/token"
)

func TestErrors(t *testing.T) {
	err := Errorf(CondReason, "test error %d", 1)
	assert.Equal(t, "runtime error: test error 1", err.Error())

	loc := &token.Location{File: "test", Line: 2, Col: 3}
	located := err.WithSource(loc)
	assert.Equal(t, "test:2:3: runtime error: test error 1", located.Error())
	assert.Nil(t, err.Source, "WithSource modified its receiver")

	assert.True(t, errors.Is(ErrUnclosedList.WithSource(loc), ErrUnclosedList))
	assert.False(t, errors.Is(ErrUnexpectedClose, ErrUnclosedList))

	wrapped := fmt.Errorf("loading: %w", located)
	assert.True(t, HasCondition(wrapped, CondReason))
	assert.False(t, HasCondition(wrapped, CondParse))
	assert.False(t, HasCondition(errors.New("plain"), CondReason))
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "invalid", CondInvalid.String())
	assert.Equal(t, "runtime", CondReason.String())
	assert.Equal(t, "reference", CondReference.String())
	assert.Equal(t, "token", CondToken.String())
	assert.Equal(t, "parse", CondParse.String())
	assert.Equal(t, "unknown", Condition(100).String())
}

func TestLocate(t *testing.T) {
	loc := &token.Location{File: "a", Line: 1, Col: 1}
	v := Symbol("x")
	v.Source = loc

	err := locate(referencef("x is not defined"), v)
	assert.Equal(t, "a:1:1: reference error: x is not defined", err.Error())

	// the innermost location is kept
	outer := &LVal{Type: LList, Source: &token.Location{File: "b", Line: 9, Col: 9}}
	err = locate(err, outer)
	assert.Equal(t, "a:1:1: reference error: x is not defined", err.Error())
}
