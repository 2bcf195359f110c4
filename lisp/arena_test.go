package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	a := NewArena()
	e1 := NewEnv(nil)
	e2 := NewEnv(e1)

	_, ok := e1.Handle()
	assert.False(t, ok)

	h1 := a.Push(e1)
	h2 := a.Push(e2)
	assert.Equal(t, Handle(0), h1)
	assert.Equal(t, Handle(1), h2)
	assert.Equal(t, h1, a.Push(e1), "pushing a frame twice must reuse its handle")
	assert.Equal(t, 2, a.Len())

	f, err := a.Frame(h2)
	require.NoError(t, err)
	assert.True(t, f == e2)

	// frames stay live and mutable through the arena
	f.Define("x", Number(1))
	v, ok := e2.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v.Num)

	_, err = a.Frame(Handle(2))
	assert.True(t, HasCondition(err, CondReason))
	_, err = a.Frame(noHandle)
	assert.Error(t, err)
}
