package scanner

import (
	"testing"

	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burghardLex(t *testing.T) dialect.LexConfig {
	t.Helper()
	d, ok := dialect.NewRegistry().Lookup(dialect.Burghard)
	require.True(t, ok)
	return d.Lex
}

func TestScanAlwaysTerminatesWithEof(t *testing.T) {
	toks := Scan([]byte("push 1\n"), burghardLex(t))
	require.NotEmpty(t, toks)
	assert.Equal(t, token.Eof, toks[len(toks)-1].Kind)
}

func TestScanWordAndIntegerAndSpace(t *testing.T) {
	toks := Scan([]byte("push 1"), burghardLex(t))
	var kinds []token.Kind
	for _, tk := range toks {
		if tk.Kind != token.Eof {
			kinds = append(kinds, tk.Kind)
		}
	}
	assert.Equal(t, []token.Kind{token.Word, token.Space, token.IntegerLit}, kinds)
}

func TestScanLineCommentConsumesToLineEnd(t *testing.T) {
	toks := Scan([]byte("push 1 ; a comment\npush 2\n"), burghardLex(t))
	var comments int
	for _, tk := range toks {
		if tk.Kind == token.LineComment {
			comments++
			assert.Contains(t, tk.Text, "a comment")
		}
	}
	assert.Equal(t, 1, comments)
}

func TestScanInvalidByteBecomesErrorTokenNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		toks := Scan([]byte{0x01}, burghardLex(t))
		require.NotEmpty(t, toks)
	})
}

func TestScanStringLiteralRecognizesQuotedBody(t *testing.T) {
	toks := Scan([]byte(`push "hi"`), burghardLex(t))
	var found bool
	for _, tk := range toks {
		if tk.Kind == token.StringLit {
			found = true
			require.NotNil(t, tk.String)
			require.Len(t, tk.String.Chunks, 1)
			assert.Equal(t, "hi", tk.String.Chunks[0].Value)
		}
	}
	assert.True(t, found)
}
