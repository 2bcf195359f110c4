package lexer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/emalang/ema/parser/token"
)

// delimiters end a word along with whitespace and the end of input.
const delimiters = "();"

// Lexer splits source text into tokens.  Any maximal run of characters other
// than whitespace and delimiters is a word.  A word is a NUMBER when it
// parses as a floating point literal and a SYMBOL otherwise.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	// readErr is the error that stopped the scanner, if any.  After
	// readErr is set the lexer only emits EOF or ERROR tokens.
	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readChar()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case ';':
		for {
			c, ok := lex.scanner.Peek()
			if !ok || c == '\n' {
				break
			}
			err := lex.readChar()
			if err != nil {
				return lex.emitError(err, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case '"':
		return lex.readString()
	default:
		return lex.readWord()
	}
}

func (lex *Lexer) readString() *token.Token {
	for {
		err := lex.readChar()
		if err == io.EOF {
			lex.readErr = fmt.Errorf("unterminated string literal")
			return lex.emit(token.ERROR, lex.readErr.Error())
		}
		if err != nil {
			return lex.emitError(err, false)
		}
		if lex.ch == '"' {
			return lex.scanner.EmitToken(token.STRING)
		}
	}
}

func (lex *Lexer) readWord() *token.Token {
	for !isDelimiter(lex.scanner.Peek()) {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	if IsNumber(lex.scanner.Text()) {
		return lex.scanner.EmitToken(token.NUMBER)
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

// IsNumber returns true if word is read as a number.  Words like "inf" and
// "nan" which strconv accepts but which contain no digit are symbols.
func IsNumber(word string) bool {
	if !strings.ContainsAny(word, "0123456789") {
		return false
	}
	_, err := strconv.ParseFloat(word, 64)
	return err == nil
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	lex.readErr = err
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) skipWhitespace() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			break
		}
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isDelimiter(c rune, ok bool) bool {
	return !ok || unicode.IsSpace(c) || strings.ContainsRune(delimiters, c)
}
