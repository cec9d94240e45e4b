package numeral

import "math/big"

// RenderStyle picks which of a dialect's accepted notations to emit;
// Render never needs to guess since callers (generator, round-trip
// tests) always know which style they want reproduced.
type RenderStyle struct {
	Radix       int
	UseSuffix   bool // emit a base suffix instead of a prefix
	UsePrefix   bool
	UpperCase   bool
	ForceSign   bool // always emit a '+' for non-negative values
}

// Render renders v back to source text under the given style. It is the
// inverse of Parse for the "integer parse/render round-trip" invariant
// of spec.md §8: for every Config that accepts decimal, and every v,
// Parse(Render(v, style, cfg), cfg).Value == v.
func Render(v *big.Int, style RenderStyle, cfg Config) string {
	radix := style.Radix
	if radix == 0 {
		radix = 10
	}
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	digits := abs.Text(radix)
	if style.UpperCase {
		digits = toUpper(digits)
	}

	var prefix, suffix string
	if style.UsePrefix {
		switch radix {
		case 2:
			prefix = pick(style.UpperCase, "0B", "0b")
		case 8:
			prefix = pick(style.UpperCase, "0O", "0o")
		case 16:
			prefix = pick(style.UpperCase, "0X", "0x")
		}
	} else if style.UseSuffix {
		switch radix {
		case 2:
			suffix = pick(style.UpperCase, "B", "b")
		case 8:
			suffix = pick(style.UpperCase, "O", "o")
		case 16:
			suffix = pick(style.UpperCase, "H", "h")
		}
	}

	sign := ""
	if neg {
		sign = "-"
	} else if style.ForceSign {
		sign = "+"
	}

	return sign + prefix + digits + suffix
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
	return string(b)
}
