package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_StringPunctuationHasNullLiteral(t *testing.T) {
	tok := New(PLUS, "+", 1)
	assert.Equal(t, "PLUS + null", tok.String())
}

func TestToken_StringKeywordLooksUpFromMap(t *testing.T) {
	typ, ok := Keywords["class"]
	assert.True(t, ok)
	assert.Equal(t, CLASS, typ)
}

func TestToken_UnknownIdentifierIsNotAKeyword(t *testing.T) {
	_, ok := Keywords["foobar"]
	assert.False(t, ok)
}

func TestToken_StringLiteralPrintsUnquoted(t *testing.T) {
	tok := NewString(`"hi"`, "hi", 1)
	assert.Equal(t, `STRING "hi" hi`, tok.String())
	assert.True(t, tok.Literal.HasValue())
}

func TestToken_IntegralNumberLiteralKeepsTrailingZero(t *testing.T) {
	tok := NewNumber("7", 7, 1)
	assert.Equal(t, "NUMBER 7 7.0", tok.String())
}

func TestToken_FractionalNumberLiteralUsesShortestForm(t *testing.T) {
	tok := NewNumber("3.25", 3.25, 1)
	assert.Equal(t, "NUMBER 3.25 3.25", tok.String())
}

func TestToken_PlainTokenHasNoValue(t *testing.T) {
	tok := New(IDENTIFIER, "x", 1)
	assert.False(t, tok.Literal.HasValue())
}
