package symbols

import (
	"math/big"
	"testing"

	"github.com/omniwsa/omniwsa/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelsDefineThenReferenceSharesIndex(t *testing.T) {
	l := NewLabels()
	ok := l.Define("top", token.Span{Start: 0, End: 3}, false)
	assert.True(t, ok)

	idx := l.Reference("top", token.Span{Start: 10, End: 13})
	assert.Equal(t, 0, idx)

	entry := l.Get("top")
	require.NotNil(t, entry)
	require.NotNil(t, entry.DefinedSpan)
	assert.Len(t, entry.ReferenceSpans, 1)
}

func TestLabelsDefineRejectsDuplicateWithoutAllowRedefine(t *testing.T) {
	l := NewLabels()
	require.True(t, l.Define("top", token.Span{}, false))
	assert.False(t, l.Define("top", token.Span{}, false))
}

func TestLabelsDefineAllowsRedefineWhenPermitted(t *testing.T) {
	l := NewLabels()
	require.True(t, l.Define("top", token.Span{}, false))
	assert.True(t, l.Define("top", token.Span{}, true))
}

func TestLabelsReferenceBeforeDefineLeavesUndefined(t *testing.T) {
	l := NewLabels()
	l.Reference("missing", token.Span{})
	assert.Equal(t, []string{"missing"}, l.Undefined())
}

func TestLabelsUndefinedOmitsDefinedLabels(t *testing.T) {
	l := NewLabels()
	l.Reference("a", token.Span{})
	l.Define("a", token.Span{}, false)
	l.Reference("b", token.Span{})
	assert.Equal(t, []string{"b"}, l.Undefined())
}

func TestLabelsNamesReflectsFirstAppearanceOrder(t *testing.T) {
	l := NewLabels()
	l.Reference("second", token.Span{})
	l.Define("first", token.Span{}, false)
	assert.Equal(t, []string{"second", "first"}, l.Names())
}

func TestVariablesSetAndGetIntValue(t *testing.T) {
	v := NewVariables()
	v.Set("n", Value{Kind: ValueInt, Int: big.NewInt(42)})

	got, ok := v.Get("n")
	require.True(t, ok)
	assert.Equal(t, ValueInt, got.Kind)
	assert.Equal(t, big.NewInt(42), got.Int)
}

func TestVariablesSetAndGetStringValue(t *testing.T) {
	v := NewVariables()
	v.Set("greeting", Value{Kind: ValueStr, Str: "hi"})

	got, ok := v.Get("greeting")
	require.True(t, ok)
	assert.Equal(t, ValueStr, got.Kind)
	assert.Equal(t, "hi", got.Str)
}

func TestVariablesGetMissingReturnsFalse(t *testing.T) {
	v := NewVariables()
	_, ok := v.Get("nosuch")
	assert.False(t, ok)
}

func TestVariablesNamesTracksFirstAssignmentOrderOnly(t *testing.T) {
	v := NewVariables()
	v.Set("a", Value{Kind: ValueInt, Int: big.NewInt(1)})
	v.Set("b", Value{Kind: ValueInt, Int: big.NewInt(2)})
	v.Set("a", Value{Kind: ValueInt, Int: big.NewInt(3)})
	assert.Equal(t, []string{"a", "b"}, v.Names())

	got, _ := v.Get("a")
	assert.Equal(t, big.NewInt(3), got.Int)
}

func TestMacrosDefineRejectsDuplicateWithoutAllowRedefine(t *testing.T) {
	m := NewMacros()
	require.True(t, m.Define("twice", MacroDef{Params: []string{"n"}}, false))
	assert.False(t, m.Define("twice", MacroDef{Params: []string{"n"}}, false))
}

func TestMacrosDefineAllowsRedefineWhenPermitted(t *testing.T) {
	m := NewMacros()
	require.True(t, m.Define("twice", MacroDef{Params: []string{"n"}}, false))
	assert.True(t, m.Define("twice", MacroDef{Params: []string{"n", "m"}}, true))

	def, ok := m.Get("twice")
	require.True(t, ok)
	assert.Equal(t, []string{"n", "m"}, def.Params)
}

func TestMacrosNamesTracksDefinitionOrder(t *testing.T) {
	m := NewMacros()
	m.Define("b", MacroDef{}, false)
	m.Define("a", MacroDef{}, false)
	assert.Equal(t, []string{"b", "a"}, m.Names())
}

func TestOptionsSetGetAndIsSet(t *testing.T) {
	o := NewOptions()
	assert.False(t, o.IsSet("fast"))

	o.Set("fast", true)
	assert.True(t, o.IsSet("fast"))
	assert.True(t, o.Get("fast"))

	o.Set("fast", false)
	assert.True(t, o.IsSet("fast"))
	assert.False(t, o.Get("fast"))
}

func TestOptionsGetUnsetReturnsFalse(t *testing.T) {
	o := NewOptions()
	assert.False(t, o.Get("nosuch"))
	assert.False(t, o.IsSet("nosuch"))
}
