package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZohaib07/lox-interpreter/internal/token"
)

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	tokens, errs := New(`(){},.-+;*/ == != <= >= = ! < >`).ScanTokens()
	require.Empty(t, errs)

	want := []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Slash,
		token.EqualEqual, token.BangEqual, token.LessEqual, token.GreaterEqual,
		token.Equal, token.Bang, token.Less, token.Greater,
		token.EOF,
	}

	require.Len(t, tokens, len(want))
	for i, k := range want {
		assert.Equalf(t, k, tokens[i].Kind, "token %d", i)
	}
}

func TestScanTokensLineComment(t *testing.T) {
	tokens, errs := New("1 // a comment\n2").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, token.Number, tokens[1].Kind)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokensStringLiteral(t *testing.T) {
	tokens, errs := New(`"hello, world"`).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello, world", tokens[0].Literal.Str)
}

func TestScanTokensStringLiteralEmbeddedNewline(t *testing.T) {
	tokens, errs := New("\"a\nb\"\nvar").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 3)
	assert.Equal(t, "a\nb", tokens[0].Literal.Str)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 3, tokens[1].Line)
}

func TestScanTokensUnterminatedString(t *testing.T) {
	_, errs := New(`"unterminated`).ScanTokens()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unterminated string")
}

func TestScanTokensNumberIntegerVsFloat(t *testing.T) {
	tokens, errs := New("42 3.14 0.0").ScanTokens()
	require.Empty(t, errs)
	require.Len(t, tokens, 4)

	assert.False(t, tokens[0].Literal.IsFloat)
	assert.Equal(t, float64(42), tokens[0].Literal.Num)

	assert.True(t, tokens[1].Literal.IsFloat)
	assert.InDelta(t, 3.14, tokens[1].Literal.Num, 1e-9)

	assert.True(t, tokens[2].Literal.IsFloat)
}

func TestScanTokensIdentifiersAndKeywords(t *testing.T) {
	tokens, errs := New("foo _bar bar123 and class input").ScanTokens()
	require.Empty(t, errs)

	want := []token.Kind{
		token.Identifier, token.Identifier, token.Identifier,
		token.And, token.Class, token.Input, token.EOF,
	}
	require.Len(t, tokens, len(want))
	for i, k := range want {
		assert.Equalf(t, k, tokens[i].Kind, "token %d", i)
	}
}

func TestScanTokensUnexpectedCharacterContinuesScanning(t *testing.T) {
	tokens, errs := New("1 @ 2").ScanTokens()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unexpected character: @")
	// scanning continues past the bad byte
	require.Len(t, tokens, 3)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, token.Number, tokens[1].Kind)
}

func TestTokenStringFormat(t *testing.T) {
	tokens, _ := New(`"hi" 42 foo`).ScanTokens()
	assert.Equal(t, `STRING "hi" hi`, tokens[0].String())
	assert.Equal(t, "NUMBER 42 42", tokens[1].String())
	assert.Equal(t, "IDENTIFIER foo null", tokens[2].String())
}
