package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(src string) []TokenType {
	r := NewRaw(src)
	var out []TokenType
	for {
		tok := r.Next()
		if tok.Type == EOF {
			return out
		}
		out = append(out, tok.Type)
	}
}

func TestRawTokenizesOperatorsAndPunctuation(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenType
	}{
		{"1 + 2", []TokenType{NUMBER, SPACE, PLUS, SPACE, NUMBER}},
		{"a.b.c", []TokenType{IDENT, DOT, IDENT, DOT, IDENT}},
		{"x += 1", []TokenType{IDENT, SPACE, PLUSEQ, SPACE, NUMBER}},
		{"a <= b", []TokenType{IDENT, SPACE, LE, SPACE, IDENT}},
		{"a != b", []TokenType{IDENT, SPACE, NE, SPACE, IDENT}},
		{"[1, 2]", []TokenType{LBRACKET, NUMBER, COMMA, SPACE, NUMBER, RBRACKET}},
		{"0..=2", []TokenType{NUMBER, DOTDOT, ASSIGN, NUMBER}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenTypes(tt.input), "input: %q", tt.input)
	}
}

func TestRawTokenizesCommandRedirectOperators(t *testing.T) {
	tests := []struct {
		input string
		want  TokenType
	}{
		{">>", OUT_APPEND},
		{"*>", ERR_WRITE},
		{"*>>", ERR_APPEND},
		{"&>", ALL_WRITE},
		{"&>>", ALL_APPEND},
		{"|", PIPE},
		{"*|", ERR_PIPE},
		{"&|", ALL_PIPE},
	}
	for _, tt := range tests {
		r := NewRaw(tt.input)
		tok := r.Next()
		assert.Equal(t, tt.want, tok.Type, "input: %q", tt.input)
	}
}

func TestRawTokenizesKeywords(t *testing.T) {
	assert.Equal(t, KW_LET, LookupIdent("let"))
	assert.Equal(t, KW_FOR, LookupIdent("for"))
	assert.Equal(t, IDENT, LookupIdent("letter"))
}

func TestRawTokenizesNumberAndString(t *testing.T) {
	r := NewRaw(`42 'hi'`)
	tok := r.Next()
	require.Equal(t, NUMBER, tok.Type)
	assert.Equal(t, float64(42), tok.Num)

	r.Next() // SPACE
	tok = r.Next()
	require.Equal(t, STRING, tok.Type)
	assert.Equal(t, "hi", tok.Str)
	assert.False(t, tok.DoesInterp)
}

func TestRawTracksNewLineState(t *testing.T) {
	r := NewRaw("a\nb")
	tok := r.Next()
	require.Equal(t, IDENT, tok.Type)
	assert.True(t, r.isNewLine == false)

	r.Next() // NEWLINE
	tok = r.Next()
	require.Equal(t, IDENT, tok.Type)
	assert.Equal(t, "b", tok.Lexeme)
}

func TestPeekableLookaheadDoesNotConsume(t *testing.T) {
	p := NewPeekable("a + b")
	first := p.Peek()
	assert.Equal(t, IDENT, first.Type)
	second := p.Peek()
	assert.Equal(t, first, second, "peek must be idempotent")

	consumed := p.Next()
	assert.Equal(t, IDENT, consumed.Type)
}

func TestPeekableReportsIsNewLineForFirstTokenOnLine(t *testing.T) {
	p := NewPeekable("a\nb")
	require.Equal(t, IDENT, p.Next().Type) // "a", first token overall
	require.Equal(t, NEWLINE, p.Next().Type)

	assert.True(t, p.IsNewLine(), "b is the first real token on its line")
	tok := p.Next()
	assert.Equal(t, "b", tok.Lexeme)
}

func TestRecorderReplaysRecordedTokens(t *testing.T) {
	rec := NewRecorder(NewRaw("a b c"))
	rec.StartRecording()
	first := rec.Next()
	second := rec.Next()
	rec.StopRecording(true)

	replayedFirst := rec.Next()
	replayedSecond := rec.Next()
	assert.Equal(t, first, replayedFirst)
	assert.Equal(t, second, replayedSecond)

	next := rec.Next()
	assert.Equal(t, "b", next.Lexeme)
}
