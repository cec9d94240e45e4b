package strlit

import (
	"testing"

	"github.com/omniwsa/omniwsa/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackslashSimpleLiteral(t *testing.T) {
	cfg := Config{Quote: '"', Escapes: map[byte]string{'n': "\n", '"': "\""}}
	lit, n, issues := Parse(`hello"`, cfg)
	assert.Empty(t, issues)
	assert.True(t, lit.Closed)
	assert.Equal(t, "hello", lit.Value)
	assert.Equal(t, len(`hello"`), n)
}

func TestParseBackslashDecodesKnownEscape(t *testing.T) {
	cfg := Config{Quote: '"', Escapes: map[byte]string{'n': "\n"}}
	lit, _, issues := Parse(`a\nb"`, cfg)
	assert.Empty(t, issues)
	assert.Equal(t, "a\nb", lit.Value)
	require.Len(t, lit.Chunks, 3)
	assert.Equal(t, ChunkEscape, lit.Chunks[1].Kind)
}

func TestParseBackslashUnknownEscapeReportsInvalidEscape(t *testing.T) {
	cfg := Config{Quote: '"', Escapes: map[byte]string{'n': "\n"}}
	_, _, issues := Parse(`a\qb"`, cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, diag.InvalidEscape, issues[0].Kind)
}

func TestParseBackslashUnterminatedReportsIssue(t *testing.T) {
	cfg := Config{Quote: '"'}
	lit, _, issues := Parse(`no closing quote`, cfg)
	assert.False(t, lit.Closed)
	require.NotEmpty(t, issues)
}

func TestParseDoublingEscapesQuoteByDoubling(t *testing.T) {
	cfg := Config{Quote: '\'', DoublingEscape: true}
	lit, n, issues := Parse(`it''s fine'`, cfg)
	assert.Empty(t, issues)
	assert.True(t, lit.Closed)
	assert.Equal(t, "it's fine", lit.Value)
	assert.Equal(t, len(`it''s fine'`), n)
}

func TestParseDoublingUnterminated(t *testing.T) {
	cfg := Config{Quote: '\'', DoublingEscape: true}
	lit, _, issues := Parse(`unterminated`, cfg)
	assert.False(t, lit.Closed)
	assert.NotEmpty(t, issues)
}
