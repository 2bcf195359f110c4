package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleter(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Feed("(var counter 1)")
	c := &completer{ev: s.ev}

	assert.Empty(t, c.Complete(""))
	assert.Contains(t, c.Complete("cls"), "class")
	assert.Contains(t, c.Complete("ctr"), "counter")

	tests := []struct {
		line     string
		suffixes []string
		length   int
	}{
		{"(cla", []string{"ss"}, 3},
		{"(var y (cou", []string{"nter"}, 3},
		{"(import Ma", []string{"th"}, 2},
		{"ex", []string{"it"}, 2},
		{"(class", nil, 5},
		{"(", nil, 0},
	}
	for _, test := range tests {
		line := []rune(test.line)
		suffixes, n := c.Do(line, len(line))
		var got []string
		for _, s := range suffixes {
			got = append(got, string(s))
		}
		assert.Equal(t, test.suffixes, got, test.line)
		assert.Equal(t, test.length, n, test.line)
	}
}

func TestCurrentWord(t *testing.T) {
	assert.Equal(t, "abc", currentWord("abc"))
	assert.Equal(t, "b", currentWord("(a b"))
	assert.Equal(t, "", currentWord("(a "))
	assert.Equal(t, "x", currentWord(`"s" (x`))
}
