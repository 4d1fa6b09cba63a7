// Package lexer implements the streaming lexer described in spec.md
// §4.1: a byte-at-a-time scanner that produces a lazy token sequence
// terminated by a synthetic EOF, reporting malformed input in-band as
// LexError items without stopping the scan.
//
// The scanning style — a cursor byte plus Position/Line tracking and a
// Peek/Advance pair — is grounded on the teacher's lexer.Lexer
// (akashmaji946/go-mix/lexer/lexer.go); the two-character lookahead
// needed for "for"-as-prefix-of-nothing-in-Lox is simpler here than the
// teacher's three-deep operator ladder, so Peek/PeekNext suffice.
package lexer

import (
	"strconv"

	"github.com/akashmaji946/golox/loxerr"
	"github.com/akashmaji946/golox/token"
)

// Lexer scans Lox source text into tokens on demand.
type Lexer struct {
	src     string
	start   int
	current int
	line    int
}

// New creates a Lexer over the given source text.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) lexeme() string {
	return l.src[l.start:l.current]
}

// ScanTokens runs the lexer to completion, returning every token
// (terminated by a synthetic EOF) plus every LexError encountered along
// the way. It is the form the parser and the `tokenize` CLI subcommand
// both consume.
func ScanTokens(src string) ([]token.Token, []*loxerr.LexError) {
	l := New(src)
	var tokens []token.Token
	var errs []*loxerr.LexError
	for {
		tok, err, done := l.Next()
		if err != nil {
			errs = append(errs, err)
		} else {
			tokens = append(tokens, tok)
		}
		if done {
			break
		}
	}
	return tokens, errs
}

// Next scans and returns the next token. done is true once the returned
// item is the terminal EOF token; exactly one of (a valid Token) or (a
// non-nil *loxerr.LexError) is produced per call.
func (l *Lexer) Next() (token.Token, *loxerr.LexError, bool) {
	l.skipWhitespaceAndComments()
	l.start = l.current

	if l.atEnd() {
		return token.New(token.EOF, "", l.line), nil, true
	}

	c := l.advance()

	switch c {
	case '(':
		return l.simple(token.LEFT_PAREN), nil, false
	case ')':
		return l.simple(token.RIGHT_PAREN), nil, false
	case '{':
		return l.simple(token.LEFT_BRACE), nil, false
	case '}':
		return l.simple(token.RIGHT_BRACE), nil, false
	case ',':
		return l.simple(token.COMMA), nil, false
	case '.':
		return l.simple(token.DOT), nil, false
	case '-':
		return l.simple(token.MINUS), nil, false
	case '+':
		return l.simple(token.PLUS), nil, false
	case ';':
		return l.simple(token.SEMICOLON), nil, false
	case '*':
		return l.simple(token.STAR), nil, false
	case '/':
		return l.simple(token.SLASH), nil, false
	case '=':
		if l.match('=') {
			return l.simple(token.EQUAL_EQUAL), nil, false
		}
		return l.simple(token.EQUAL), nil, false
	case '!':
		if l.match('=') {
			return l.simple(token.BANG_EQUAL), nil, false
		}
		return l.simple(token.BANG), nil, false
	case '<':
		if l.match('=') {
			return l.simple(token.LESS_EQUAL), nil, false
		}
		return l.simple(token.LESS), nil, false
	case '>':
		if l.match('=') {
			return l.simple(token.GREATER_EQUAL), nil, false
		}
		return l.simple(token.GREATER), nil, false
	case '"':
		return l.readString()
	default:
		switch {
		case isDigit(c):
			return l.readNumber(), nil, false
		case isAlpha(c):
			return l.readIdentifier(), nil, false
		default:
			return token.Token{}, &loxerr.LexError{
				Message: "Unexpected character: " + string(c) + ".",
				Line:    l.line,
			}, false
		}
	}
}

func (l *Lexer) simple(typ token.Type) token.Token {
	return token.New(typ, l.lexeme(), l.line)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.peek() {
		case ' ', '\r', '\t':
			l.advance()
		case '\n':
			l.line++
			l.advance()
		case '/':
			if l.peekNext() == '/' {
				for l.peek() != '\n' && !l.atEnd() {
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) readString() (token.Token, *loxerr.LexError, bool) {
	startLine := l.line
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		return token.Token{}, &loxerr.LexError{Message: "Unterminated string.", Line: startLine}, false
	}
	l.advance() // closing quote
	value := l.src[l.start+1 : l.current-1]
	return token.NewString(l.lexeme(), value, startLine), nil, false
}

func (l *Lexer) readNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	lexeme := l.lexeme()
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.NewNumber(lexeme, value, l.line)
}

func (l *Lexer) readIdentifier() token.Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	lexeme := l.lexeme()
	typ, ok := token.Keywords[lexeme]
	if !ok {
		typ = token.IDENTIFIER
	}
	return token.New(typ, lexeme, l.line)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
