package rdparser

import (
	"io"
	"strconv"

	"github.com/emalang/ema/lisp"
	"github.com/emalang/ema/parser/lexer"
	"github.com/emalang/ema/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Evaluator.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// Parser is a recursive descent parser for ema source.
type Parser struct {
	lex  *lexer.Lexer
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	p := &Parser{
		lex: lexer.New(scanner),
	}
	// Setup the peek token so the parser is in the proper state when the
	// first parse function is called.
	p.ReadToken()
	return p
}

// ParseProgram parses expressions until the end of input and returns them
// in order.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for {
		p.skipComments()
		if p.expect(token.EOF) {
			break
		}
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses a single expression.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	p.skipComments()
	switch p.PeekType() {
	case token.NUMBER:
		return p.ParseLiteralNumber()
	case token.STRING:
		return p.ParseLiteralString()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L:
		return p.ParseList()
	case token.PAREN_R:
		p.ReadToken()
		return nil, lisp.ErrUnexpectedClose.WithSource(p.Token().Source)
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.errorf(lisp.CondToken, "%s", p.Token().Text)
	default:
		p.ReadToken()
		return nil, p.errorf(lisp.CondParse, "unexpected %s", p.Token().Type)
	}
}

func (p *Parser) ParseLiteralNumber() (*lisp.LVal, error) {
	if !p.expect(token.NUMBER) {
		return nil, p.errorf(lisp.CondParse, "invalid number literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf(lisp.CondToken, "invalid number literal: %v", text)
	}
	return p.tokenLVal(lisp.Number(x)), nil
}

// ParseLiteralString parses a string literal.  Strings are not unescaped.
func (p *Parser) ParseLiteralString() (*lisp.LVal, error) {
	if !p.expect(token.STRING) {
		return nil, p.errorf(lisp.CondParse, "invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	return p.tokenLVal(lisp.String(text[1 : len(text)-1])), nil
}

func (p *Parser) ParseSymbol() (*lisp.LVal, error) {
	if !p.expect(token.SYMBOL) {
		return nil, p.errorf(lisp.CondParse, "invalid symbol: %v", p.PeekType())
	}
	return p.tokenLVal(lisp.Symbol(p.Token().Text)), nil
}

// ParseList parses a parenthesized list.  Reaching the end of input before
// the closing paren is reported as lisp.ErrUnclosedList.
func (p *Parser) ParseList() (*lisp.LVal, error) {
	if !p.expect(token.PAREN_L) {
		return nil, p.errorf(lisp.CondParse, "invalid list: %v", p.PeekType())
	}
	open := p.Token()
	expr := lisp.List()
	expr.Source = open.Source
	for {
		p.skipComments()
		if p.expect(token.EOF) {
			return nil, lisp.ErrUnclosedList.WithSource(open.Source)
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		expr.Cells = append(expr.Cells, x)
	}
	return expr, nil
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.lex.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) skipComments() {
	for p.expect(token.COMMENT) {
	}
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

func (p *Parser) errorf(cond lisp.Condition, format string, v ...interface{}) error {
	var loc *token.Location
	if p.Token() != nil {
		loc = p.Token().Source
	}
	return lisp.Errorf(cond, format, v...).WithSource(loc)
}
