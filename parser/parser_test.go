package parser

import (
	"testing"

	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, id dialect.ID) *dialect.Dialect {
	t.Helper()
	d, ok := dialect.NewRegistry().Lookup(id)
	require.True(t, ok)
	return d
}

// TestParseValueIntegerCapturesAssignedValue exercises spec.md §8's
// voliva "valueinteger" directive: the bound value must be the literal
// that followed the name, not a placeholder.
func TestParseValueIntegerCapturesAssignedValue(t *testing.T) {
	d := lookup(t, dialect.Voliva)
	res := Parse([]byte("valueinteger foo 42\n"), d, "t.wsa")
	require.False(t, res.Diags.HasErrors())
	v, ok := res.Variables.Get("foo")
	require.True(t, ok)
	assert.Equal(t, symbols.ValueInt, v.Kind)
	require.NotNil(t, v.Int)
	assert.Equal(t, int64(42), v.Int.Int64())
}

// TestParseValueIntegerCapturesNegativeValue checks the sign is carried
// through the big.Int reconstruction, not just the magnitude.
func TestParseValueIntegerCapturesNegativeValue(t *testing.T) {
	d := lookup(t, dialect.Voliva)
	res := Parse([]byte("valueinteger foo -7\n"), d, "t.wsa")
	require.False(t, res.Diags.HasErrors())
	v, ok := res.Variables.Get("foo")
	require.True(t, ok)
	require.NotNil(t, v.Int)
	assert.Equal(t, int64(-7), v.Int.Int64())
}

// TestParseValueStringCapturesAssignedValue exercises "valuestring":
// the bound value must be the decoded string literal, not empty text.
func TestParseValueStringCapturesAssignedValue(t *testing.T) {
	d := lookup(t, dialect.Voliva)
	res := Parse([]byte(`valuestring greeting "hello"` + "\n"), d, "t.wsa")
	require.False(t, res.Diags.HasErrors())
	v, ok := res.Variables.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, symbols.ValueStr, v.Kind)
	assert.Equal(t, "hello", v.Str)
}

// TestParseValueIntegerWithoutLiteralDefaultsToZero checks the fallback
// path for a malformed directive body still yields a defined variable
// rather than panicking.
func TestParseValueIntegerWithoutLiteralDefaultsToZero(t *testing.T) {
	d := lookup(t, dialect.Voliva)
	res := Parse([]byte("valueinteger foo\n"), d, "t.wsa")
	v, ok := res.Variables.Get("foo")
	require.True(t, ok)
	require.NotNil(t, v.Int)
	assert.Equal(t, int64(0), v.Int.Int64())
}

// TestParseLabelColonDefinesAndReferences exercises the common
// Burghard-style "name:" label definition alongside a later reference.
func TestParseLabelColonDefinesAndReferences(t *testing.T) {
	d := lookup(t, dialect.Burghard)
	res := Parse([]byte("loop:\njump loop\n"), d, "t.wsa")
	assert.False(t, res.Diags.HasErrors())
	e := res.Labels.Get("loop")
	require.NotNil(t, e)
	require.NotNil(t, e.DefinedSpan)
	assert.Len(t, e.ReferenceSpans, 1)
}

// TestParseUnknownMnemonicReportsDiagnostic checks that a dialect
// without macro support reports UnknownMnemonic rather than silently
// dropping the line.
func TestParseUnknownMnemonicReportsDiagnostic(t *testing.T) {
	d := lookup(t, dialect.Burghard)
	res := Parse([]byte("frobnicate\n"), d, "t.wsa")
	require.True(t, res.Diags.HasErrors())
}

// TestParseOptionSetsBooleanFlag exercises Burghard's option assembly
// directive.
func TestParseOptionSetsBooleanFlag(t *testing.T) {
	d := lookup(t, dialect.Burghard)
	res := Parse([]byte("option fast\n"), d, "t.wsa")
	assert.False(t, res.Diags.HasErrors())
	assert.True(t, res.Options.IsSet("fast"))
}
