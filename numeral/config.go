// Package numeral implements the integer syntax engine of spec.md §4.3:
// a per-dialect-configurable parser/renderer for integer literals, with
// arbitrary precision via math/big.
//
// Grounded on the teacher's scanNumber (sqlparser/scanner.go), which
// recognizes T-SQL's one fixed numeric-literal grammar with a regexp;
// generalized here to the full configuration matrix spec.md §4.3
// requires, since the dialects in the catalog (§4.6) disagree pairwise
// on sign styles, base prefixes/suffixes, digit separators and
// juxtaposition rules.
package numeral

// Sign enumerates the sign styles a dialect may accept before a literal.
type Sign int

const (
	SignNeg Sign = iota + 1
	SignPos
	SignMultiple // a dialect-specific style: signs may repeat, e.g. "--5" == "5"
)

// BaseStyle enumerates the base-prefix/suffix styles of spec.md §4.3.
type BaseStyle int

const (
	Decimal BaseStyle = iota + 1
	Prefix0b
	Prefix0B
	Prefix0o
	Prefix0O
	Prefix0x
	Prefix0X
	SuffixBLower
	SuffixBUpper
	SuffixOLower
	SuffixOUpper
	SuffixHLower
	SuffixHUpper
	LeadingZeroOctal
)

// DigitSep enumerates accepted digit-separator characters.
type DigitSep int

const (
	SepUnderscore DigitSep = iota + 1
	SepSingleQuote
)

// DigitSepLocation enumerates where a digit separator may legally occur.
type DigitSepLocation int

const (
	AfterBasePrefix DigitSepLocation = iota + 1
	AfterOctalLeadingZero
	AfterDigits
	MultipleAdjacent
)

// Config is the orthogonal set of per-dialect integer syntax fields from
// spec.md §4.3.
type Config struct {
	Signs              map[Sign]bool
	BaseStyles         map[BaseStyle]bool
	DigitSeps          map[DigitSep]bool
	DigitSepLocations  map[DigitSepLocation]bool
	Spaces             bool
	SpaceLocations     map[string]bool // "leading", "trailing", "around-sign"
	Parens             bool
	SuffixDecimalFirst bool // forbid e.g. "ha" from being read as hex starting with a letter
	JuxtaposeWord      bool // shortest-integer-then-word, for fused mnemonics (wsf)
	LeadingZeroOctal   bool
	QuoteDigitSep      bool
	RawSuffix          bool

	// Overflow selects behavior when a dialect needs bounded precision.
	Overflow OverflowPolicy
	// BoundBits is the bit width applied when Overflow != OverflowNone.
	BoundBits int
}

// OverflowPolicy selects the behavior applied after arbitrary-precision
// parsing when a dialect requires bounded-width integers.
type OverflowPolicy int

const (
	OverflowNone OverflowPolicy = iota // arbitrary precision, no bound applied
	OverflowSaturate
	OverflowWrap
	OverflowError
)

// Decimal32 is a convenience baseline config: signed decimal only, no
// separators, no parens, no bounding. Dialects build their Config by
// copying and mutating this, mirroring how the teacher's per-dialect
// document types each start from a shared baseline (sqldocument) and
// layer dialect-specific tokens (mssql/pgsql) on top.
func Decimal32() Config {
	return Config{
		Signs:      map[Sign]bool{SignNeg: true, SignPos: true},
		BaseStyles: map[BaseStyle]bool{Decimal: true},
	}
}

func (c Config) allowsBase(b BaseStyle) bool { return c.BaseStyles != nil && c.BaseStyles[b] }
func (c Config) allowsSign(s Sign) bool      { return c.Signs != nil && c.Signs[s] }
func (c Config) allowsSep(s DigitSep) bool   { return c.DigitSeps != nil && c.DigitSeps[s] }
func (c Config) allowsSepLoc(l DigitSepLocation) bool {
	return c.DigitSepLocations != nil && c.DigitSepLocations[l]
}
