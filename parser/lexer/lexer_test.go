package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emalang/ema/parser/token"
)

type tokenTest struct {
	typ  token.Type
	text string
}

func lexAll(src string) []*token.Token {
	lex := New(token.NewScanner("test", strings.NewReader(src)))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ERROR {
			return toks
		}
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		src  string
		toks []tokenTest
	}{
		{"", []tokenTest{{token.EOF, ""}}},
		{"  \n\t", []tokenTest{{token.EOF, ""}}},
		{"(+ 1 2)", []tokenTest{
			{token.PAREN_L, "("},
			{token.SYMBOL, "+"},
			{token.NUMBER, "1"},
			{token.NUMBER, "2"},
			{token.PAREN_R, ")"},
			{token.EOF, ""},
		}},
		{"-5 1e3 .5 3.14 inf NaN x1 1x -", []tokenTest{
			{token.NUMBER, "-5"},
			{token.NUMBER, "1e3"},
			{token.NUMBER, ".5"},
			{token.NUMBER, "3.14"},
			{token.SYMBOL, "inf"},
			{token.SYMBOL, "NaN"},
			{token.SYMBOL, "x1"},
			{token.SYMBOL, "1x"},
			{token.SYMBOL, "-"},
			{token.EOF, ""},
		}},
		{`"a b" "" "multi
line"`, []tokenTest{
			{token.STRING, `"a b"`},
			{token.STRING, `""`},
			{token.STRING, "\"multi\nline\""},
			{token.EOF, ""},
		}},
		{"x;comment\n(y)", []tokenTest{
			{token.SYMBOL, "x"},
			{token.COMMENT, ";comment"},
			{token.PAREN_L, "("},
			{token.SYMBOL, "y"},
			{token.PAREN_R, ")"},
			{token.EOF, ""},
		}},
		{"a)b(c", []tokenTest{
			{token.SYMBOL, "a"},
			{token.PAREN_R, ")"},
			{token.SYMBOL, "b"},
			{token.PAREN_L, "("},
			{token.SYMBOL, "c"},
			{token.EOF, ""},
		}},
		{`(print "abc`, []tokenTest{
			{token.PAREN_L, "("},
			{token.SYMBOL, "print"},
			{token.ERROR, "unterminated string literal"},
		}},
	}
	for _, test := range tests {
		toks := lexAll(test.src)
		var got []tokenTest
		for _, tok := range toks {
			got = append(got, tokenTest{tok.Type, tok.Text})
		}
		assert.Equal(t, test.toks, got, "%q", test.src)
	}
}

func TestLexerLocation(t *testing.T) {
	toks := lexAll("(a\n  \"s\")")
	if !assert.Len(t, toks, 5) {
		return
	}
	assert.Equal(t, "test:1:1", toks[0].Source.String())
	assert.Equal(t, "test:1:2", toks[1].Source.String())
	assert.Equal(t, "test:2:3", toks[2].Source.String())
	assert.Equal(t, "test:2:6", toks[3].Source.String())
}

func TestIsNumber(t *testing.T) {
	for _, word := range []string{"0", "42", "-1.5", "+2", "1e-3", "1E6"} {
		assert.True(t, IsNumber(word), word)
	}
	for _, word := range []string{"inf", "-Inf", "nan", "x", "1.2.3", "--1", "1_"} {
		assert.False(t, IsNumber(word), word)
	}
}
