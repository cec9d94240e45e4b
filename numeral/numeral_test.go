package numeral

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalLiteral(t *testing.T) {
	cfg := Decimal32()
	lit, issues := Parse("42", cfg)
	assert.Empty(t, issues)
	assert.Equal(t, "42", lit.Text)
	assert.Equal(t, big.NewInt(42), lit.Value)
	assert.False(t, lit.Negative)
}

func TestParseNegativeDecimalLiteral(t *testing.T) {
	cfg := Decimal32()
	lit, issues := Parse("-7", cfg)
	assert.Empty(t, issues)
	assert.True(t, lit.Negative)
	assert.Equal(t, big.NewInt(-7), lit.Value)
}

func TestParseHexPrefixLiteral(t *testing.T) {
	cfg := Decimal32()
	cfg.BaseStyles[Prefix0x] = true
	lit, issues := Parse("0x1F", cfg)
	assert.Empty(t, issues)
	assert.Equal(t, 16, lit.Radix)
	assert.Equal(t, big.NewInt(31), lit.Value)
}

func TestParseRejectsUnsupportedSign(t *testing.T) {
	cfg := Config{BaseStyles: map[BaseStyle]bool{Decimal: true}}
	lit, _ := Parse("-5", cfg)
	assert.NotEqual(t, big.NewInt(-5), lit.Value)
}

func TestRenderRoundTripsDecimal(t *testing.T) {
	cfg := Decimal32()
	v := big.NewInt(-123)
	text := Render(v, RenderStyle{Radix: 10}, cfg)
	assert.Equal(t, "-123", text)

	lit, issues := Parse(text, cfg)
	require.Empty(t, issues)
	assert.Equal(t, v, lit.Value)
}

func TestRenderHexWithPrefixUppercase(t *testing.T) {
	v := big.NewInt(255)
	text := Render(v, RenderStyle{Radix: 16, UsePrefix: true, UpperCase: true}, Decimal32())
	assert.Equal(t, "0XFF", text)
}

func TestRenderForceSignOnNonNegative(t *testing.T) {
	v := big.NewInt(5)
	text := Render(v, RenderStyle{Radix: 10, ForceSign: true}, Decimal32())
	assert.Equal(t, "+5", text)
}
