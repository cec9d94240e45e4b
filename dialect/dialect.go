// Package dialect is the catalog specified in spec.md §4.6: a uniform,
// data-driven description of each supported dialect's lexical rules,
// mnemonic table, argument signatures, preprocessor flags and generation
// rules. Adding a dialect means filling in a Dialect record, not writing
// a new parser (spec.md §9 "dynamic dispatch across dialects").
//
// Grounded on the teacher's per-variant split (sqlparser/mssql,
// sqlparser/pgsql: each a scanner.go + tokens.go + document.go trio) but
// deliberately collapsed into configuration, per spec.md §9's explicit
// design note preferring a data-driven catalog over per-dialect code.
package dialect

import (
	"github.com/omniwsa/omniwsa/numeral"
	"github.com/omniwsa/omniwsa/strlit"
)

// ID identifies a catalog entry, per spec.md §6 "Dialect selection".
type ID string

const (
	Burghard         ID = "burghard"
	CensoredUsername ID = "censoredusername"
	Esotope          ID = "esotope"
	Lime             ID = "lime"
	LittleBugHunter  ID = "littlebughunter"
	Nossembly        ID = "nossembly"
	Palaiologos      ID = "palaiologos"
	RdebathLex       ID = "rdebath_lex"
	RdebathSed       ID = "rdebath_sed"
	Respace          ID = "respace"
	Voliva           ID = "voliva"
	Wconrad          ID = "wconrad"
	Whitelips        ID = "whitelips"
	WSF              ID = "wsf"
	Omniwsa          ID = "omniwsa" // draft unifying dialect, not registered by default
)

// CommentStyle enumerates the comment syntaxes a dialect's lexer may
// recognize, per spec.md §4.1.
type CommentStyle int

const (
	LineHash CommentStyle = iota + 1
	LineSemi
	LineDoubleDash
	LineDoubleSlash
	BlockC
	BlockNestedBrace
)

// QuoteStyle enumerates string/char quoting styles, per spec.md §4.1.
type QuoteStyle int

const (
	DoubleQuote QuoteStyle = iota + 1
	SingleQuote
)

// LineTermSet selects which line terminators a dialect's scanner
// recognizes.
type LineTermSet int

const (
	LFOnly LineTermSet = iota + 1
	LFCRCRLF
	UnicodeLineBreak
)

// CaseFold selects mnemonic case-folding policy, per spec.md §4.1.
type CaseFold int

const (
	Sensitive CaseFold = iota + 1
	AsciiInsensitive
	LowercaseAll
)

// EsotopeVersion resolves Open Question (C) of spec.md §9.
type EsotopeVersion int

const (
	EsotopeV1 EsotopeVersion = iota + 1
	EsotopeV2
)

// LexConfig is the dialect lexical configuration of spec.md §4.1.
type LexConfig struct {
	// WordStart/WordContinue classify bytes (ASCII fast path) that may
	// start/continue a Word token. For Unicode-aware dialects (voliva,
	// Whitelips) UnicodeWords is set and xid.Start/xid.Continue govern
	// classification instead (see scanner.Scan).
	WordStart    func(b byte) bool
	WordContinue func(b byte) bool
	UnicodeWords bool

	Comments       map[CommentStyle]bool
	Quotes         map[QuoteStyle]strlit.Config
	LineTerms      LineTermSet
	HorizontalTabs bool // include '\t' in the horizontal-space set (all dialects include ' ')
	NULIsSpace     bool // older-assembler quirk: NUL byte treated as horizontal space

	Punct map[byte]bool // which punctuation bytes are tokens at all

	CaseFold CaseFold

	Integer numeral.Config
	String  strlit.Config // default quote config when a dialect has exactly one quote style

	// InvalidUtf8AsReplacement records whether a dialect substitutes
	// U+FFFD for malformed byte sequences. The scanner does not read it:
	// a malformed sequence always yields an InvalidUtf8 error token.
	InvalidUtf8AsReplacement bool
	// ByteOriented dialects (Palaiologos, Lime) do not attempt UTF-8
	// decoding for word classification at all; every byte >= 0x80 is
	// treated as an ordinary word byte.
	ByteOriented bool

	EsotopeVersion EsotopeVersion
}

// ParseStyleKind selects one of the two parse styles of spec.md §4.5.
type ParseStyleKind int

const (
	LineTerminated ParseStyleKind = iota + 1
	PunctuationTerminated
)

// ParseStyle configures §4.5's parser framework.
type ParseStyle struct {
	Kind        ParseStyleKind
	Separators  map[byte]bool // punctuation-terminated: which bytes separate instructions
	LabelColon  bool          // label definitions are "name:" rather than a prefix sigil
	LabelPrefix byte          // 0 if unused; e.g. Palaiologos uses '@' def / '%' use
	LabelUsePrefix byte
}

// ArgKind enumerates the argument kinds a signature entry may require.
type ArgKind int

const (
	ArgInteger ArgKind = iota + 1
	ArgLabel
	ArgString
	ArgVariable
	ArgNone
)

// GenRuleKind selects how a matched signature lowers to Whitespace
// tokens or to other instructions (desugaring), per spec.md §4.6
// "generation".
type GenRuleKind int

const (
	GenDirect    GenRuleKind = iota + 1 // opcode + args encoded directly
	GenDesugar                         // expands to a fixed sequence of other instructions
	GenAuxLabel                        // synthesizes an auxiliary label, e.g. jumpp/jumpnz
	GenStoreStr                        // voliva storestr: per-character dup/push/store/push 1/add, plus terminator
	GenPushStr                         // Burghard pushs: NUL-terminated, reverse-order push per character
)

// Signature is one accepted argument tuple for a mnemonic within a
// dialect, paired with its lowering rule, per spec.md's GLOSSARY.
type Signature struct {
	Opcode  Opcode
	Args    []ArgKind
	Rule    GenRuleKind
	Desugar func(args []any) []Instr // not consulted by the generator, which lowers GenDesugar itself
}

// Instr is a minimal opcode+args pair used by desugaring rules to
// describe the instructions they expand to, without depending on the
// cst package (avoiding an import cycle: cst depends on dialect for
// its Opcode type).
type Instr struct {
	Opcode Opcode
	Args   []any
}

// Opcode enumerates the canonical Whitespace operations every dialect's
// mnemonics ultimately map to.
type Opcode int

const (
	OpPush Opcode = iota + 1
	OpDup
	OpCopy // copy-nth, a.k.a. "pick"
	OpSwap
	OpDrop
	OpSlide
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpStore
	OpRetrieve
	OpLabel
	OpCall
	OpJump
	OpJumpZero
	OpJumpNeg
	OpJumpPos  // extension: jumpp (Burghard), jumppn etc. (voliva) — lowered via GenAuxLabel
	OpJumpNZ
	OpJumpNPos
	OpRet
	OpEnd
	OpOutChar
	OpOutNum
	OpReadChar
	OpReadNum
	OpStoreStr // voliva extension: storestr "literal", desugared via GenStoreStr
	OpPushStr  // Burghard extension: pushs "literal", desugared via GenPushStr
)

// LabelNumberingRule selects one of the five documented assignment
// strategies of spec.md §4.6.
type LabelNumberingRule int

const (
	FirstUseOrder LabelNumberingRule = iota + 1
	DefinitionOrder
	FirstDefinitionFromIndex
	HighestReferenceCountFirst
	ArbitraryPrecisionBitsOfText
)

// ZeroEncoding selects how a dialect's generator encodes the integer 0
// (and -0 where the dialect has a notion of negative zero).
type ZeroEncoding int

const (
	ZeroSignless ZeroEncoding = iota + 1 // L: no sign bit at all
	ZeroPositiveSigned                    // S L: always emit the positive sign token
	ZeroStyleDependent                     // dialect.Bugs carries the concrete flag
)

// Generation configures §4.6's "generation" rules.
type Generation struct {
	Zero              ZeroEncoding
	LabelNumbering    LabelNumberingRule
	FirstDefIndex     int64 // base index for FirstDefinitionFromIndex (Lime: 0x4a00)
	AuxLabelTemplate  string // e.g. ".__aux_%s_%d"
	MinifyLabels      bool
	EmitUnreferenced  bool
	LimeNULTruncation bool // Open Question (B): Lime sets it true; no pass reads it
	IntegerBitWidth   int  // 0 = arbitrary precision; 32 for Palaiologos etc.
}

// PreprocessorStyle selects which preprocessor capability bundle a
// dialect needs, per spec.md §4.7.
type PreprocessorStyle struct {
	Includes          bool
	IncludeRelativeTo string // "cwd" (Burghard-documented quirk) or "file"; no pass reads it
	Options           bool   // option / ifoption / elseifoption / elseoption / endoption
	Variables         bool   // valueinteger / valuestring
	Macros            bool   // Whitelips macro / $label / $number / ${n}
	MaxMacroDepth     int    // documented default 16
}

// BugFlags enumerates observed upstream misbehaviors the core must
// reproduce bug-for-bug, per spec.md §4.6 "bugs".
type BugFlags struct {
	BurghardLowercasesStrings   bool
	LimeDigitCap64              bool
	PalaiologosXchgXchgRemoved  bool
	PalaiologosWrap32           bool
	VolivaStorestrZeroTerm      bool
	CensoredUsernameZeroSignNew bool // post 2024-12-10 zero encoding, spec.md §8 scenario 5
}

// Dialect is one catalog entry: the full description named in
// spec.md §4.6.
type Dialect struct {
	ID            ID
	DisplayName   string
	Lex           LexConfig
	Mnemonics     map[string]Opcode // lower-cased or as-is per CaseFold
	MnemonicOpArgc map[string]int   // arity hint for ambiguity resolution
	Signatures    map[Opcode][]Signature
	Preprocessor  PreprocessorStyle
	ParseStyle    ParseStyle
	Generation    Generation
	Bugs          BugFlags
	// RepMnemonic names the dialect's "repeat statement" pseudo-mnemonic
	// (Palaiologos "rep"), empty when the dialect has none. It names an
	// integer repeat count followed by one nested instruction, expanded
	// by the preprocessor to that many copies (spec.md §8 scenario 2).
	RepMnemonic string
}

// FoldMnemonic applies the dialect's case-folding policy to a raw
// mnemonic token's text before table lookup.
func (d *Dialect) FoldMnemonic(s string) string {
	switch d.Lex.CaseFold {
	case LowercaseAll:
		return toLower(s)
	case AsciiInsensitive:
		return toLower(s)
	default:
		return s
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

// Lookup finds a signature for opcode matching the given arg kinds
// exactly, implementing the "longest match first" rule of spec.md §4.5
// by having callers try arities from longest to shortest.
func (d *Dialect) Lookup(op Opcode, args []ArgKind) (Signature, bool) {
	sigs := d.Signatures[op]
	for _, sig := range sigs {
		if sameArgs(sig.Args, args) {
			return sig, true
		}
	}
	return Signature{}, false
}

func sameArgs(a, b []ArgKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
