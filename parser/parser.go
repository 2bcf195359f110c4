// Package parser provides the ema reader.
//
//	expr    := '(' <expr>* ')' | <string> | <word>
//	string  := '"' [^"]* '"'
//	word    := [^[:space:]();]+
//	comment := ';' [^\n]*
//
// A word is a number when it contains a digit and strconv.ParseFloat accepts
// it, otherwise it is a symbol.  Strings have no escape sequences and may
// span lines.
package parser

import (
	"strings"

	"github.com/emalang/ema/lisp"
	"github.com/emalang/ema/parser/rdparser"
)

// NewReader returns a lisp.Reader that parses ema source.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// Parse parses text and returns a list containing its top-level
// expressions.
func Parse(text string) (*lisp.LVal, error) {
	exprs, err := ParseLVal("", text)
	if err != nil {
		return nil, err
	}
	return lisp.List(exprs...), nil
}

// ParseLVal parses the top-level expressions of text.  Source locations
// reference name.
func ParseLVal(name string, text string) ([]*lisp.LVal, error) {
	return NewReader().Read(name, strings.NewReader(text))
}
