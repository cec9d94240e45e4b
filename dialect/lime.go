package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newLime builds the Lime VM assembly dialect: its labels are assigned
// starting from a fixed base index (0x4a00) in first-definition order.
// It sets Bugs.LimeDigitCap64 (the 64-raw-digit-byte string literal cap)
// and Generation.LimeNULTruncation (Open Question (B) of spec.md §9, NUL
// truncation ambiguity) to true, but no pass reads either flag: string
// literals are neither capped nor truncated. No '#!lwsvm' shebang
// preamble is emitted; the generated stream holds only program tokens.
func newLime() *Dialect {
	d := &Dialect{
		ID:          Lime,
		DisplayName: "Lime",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineDoubleSlash: true, BlockC: true},
			LineTerms:      LFOnly,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true},
			CaseFold:       Sensitive,
			Integer:        numeral.Decimal32(),
			ByteOriented:   true,
		},
		ParseStyle: ParseStyle{
			Kind:       LineTerminated,
			LabelColon: true,
		},
		Generation: Generation{
			Zero:              ZeroSignless,
			LabelNumbering:    FirstDefinitionFromIndex,
			FirstDefIndex:     0x4a00,
			LimeNULTruncation: true,
		},
		Bugs: BugFlags{
			LimeDigitCap64: true,
		},
		Mnemonics:  stdMnemonics(),
		Signatures: stdSignatures(),
	}
	return d
}
