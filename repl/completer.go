package repl

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/emalang/ema/lisp"
	"github.com/emalang/ema/lisp/lisplib"
)

// wordDelimiters separate the words of a line for completion.
const wordDelimiters = " \t\n();\""

// completer completes the word before the cursor with names bound in the
// global environment, special forms and standard module names.
type completer struct {
	ev *lisp.Evaluator
}

func (c *completer) candidates() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(list []string) {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	add(lisp.SpecialOps())
	add(c.ev.Global().Names())
	add(lisplib.Modules())
	add([]string{ExitCommand})
	sort.Strings(names)
	return names
}

// Complete returns the candidates matching word ordered from best to worst
// match.
func (c *completer) Complete(word string) []string {
	if word == "" {
		return nil
	}
	matches := fuzzy.Find(word, c.candidates())
	completions := make([]string, len(matches))
	for i, m := range matches {
		completions[i] = m.Str
	}
	return completions
}

// Do implements readline.AutoCompleter.  Readline appends the returned
// suffixes to the line so only candidates extending the typed word are
// offered.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	word := currentWord(string(line[:pos]))
	var suffixes [][]rune
	for _, name := range c.Complete(word) {
		if strings.HasPrefix(name, word) && name != word {
			suffixes = append(suffixes, []rune(name[len(word):]))
		}
	}
	return suffixes, len([]rune(word))
}

// currentWord returns the trailing word of s.
func currentWord(s string) string {
	i := strings.LastIndexAny(s, wordDelimiters)
	return s[i+1:]
}
