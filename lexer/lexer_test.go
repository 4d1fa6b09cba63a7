package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/token"
)

type tokenCase struct {
	Input    string
	Expected []token.Type
}

func TestScanTokens_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    "(){},.-+;*/",
			Expected: []token.Type{token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE, token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR, token.SLASH, token.EOF},
		},
		{
			Input:    "= == ! != < <= > >=",
			Expected: []token.Type{token.EQUAL, token.EQUAL_EQUAL, token.BANG, token.BANG_EQUAL, token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.EOF},
		},
	}

	for _, tc := range tests {
		toks, errs := ScanTokens(tc.Input)
		assert.Empty(t, errs)
		got := make([]token.Type, len(toks))
		for i, tok := range toks {
			got[i] = tok.Type
		}
		assert.Equal(t, tc.Expected, got)
	}
}

func TestScanTokens_Keywords(t *testing.T) {
	toks, errs := ScanTokens("and class else false for fun if nil or print return super this true var while foo")
	assert.Empty(t, errs)
	want := []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN, token.IF, token.NIL,
		token.OR, token.PRINT, token.RETURN, token.SUPER, token.THIS, token.TRUE, token.VAR, token.WHILE,
		token.IDENTIFIER, token.EOF,
	}
	got := make([]token.Type, len(toks))
	for i, tok := range toks {
		got[i] = tok.Type
	}
	assert.Equal(t, want, got)
}

func TestScanTokens_Numbers(t *testing.T) {
	toks, errs := ScanTokens("123 1.5 1.")
	assert.Empty(t, errs)
	assert.Equal(t, 123.0, toks[0].Literal.Num)
	assert.Equal(t, 1.5, toks[1].Literal.Num)
	// trailing dot is not part of the number
	assert.Equal(t, token.NUMBER, toks[2].Type)
	assert.Equal(t, 1.0, toks[2].Literal.Num)
	assert.Equal(t, token.DOT, toks[3].Type)
}

func TestScanTokens_String(t *testing.T) {
	toks, errs := ScanTokens(`"hello world"`)
	assert.Empty(t, errs)
	assert.Equal(t, "hello world", toks[0].Literal.Str)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, errs := ScanTokens(`"hello`)
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Unterminated string.", errs[0].Message)
	}
}

func TestScanTokens_MultilineString(t *testing.T) {
	toks, errs := ScanTokens("\"a\nb\"\nvar")
	assert.Empty(t, errs)
	assert.Equal(t, "a\nb", toks[0].Literal.Str)
	// the var keyword on line 3 proves the newline inside the string was counted
	assert.Equal(t, 3, toks[1].Line)
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, errs := ScanTokens("@")
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "Unexpected character: @.", errs[0].Message)
	}
}

func TestScanTokens_LineComment(t *testing.T) {
	toks, errs := ScanTokens("// a comment\nvar x")
	assert.Empty(t, errs)
	assert.Equal(t, token.VAR, toks[0].Type)
	assert.Equal(t, 2, toks[0].Line)
}

func TestTokenString_TokenizeFormat(t *testing.T) {
	toks, _ := ScanTokens("var x = 1;")
	assert.Equal(t, "VAR var null", toks[0].String())
	assert.Equal(t, "NUMBER 1 1.0", toks[3].String())
	assert.Equal(t, "EOF  null", toks[len(toks)-1].String())
}
