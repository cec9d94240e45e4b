package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newEsotope builds the esotope-ws assembly dialect. Its label numbering
// uses an arbitrary-precision bits-of-text rule (the label name's bytes,
// reinterpreted as a base-256 big-endian integer, become the
// Whitespace-encoded label ID directly). Open Question (C) of spec.md §9
// (splitlines/whitespace version skew) is recorded in Lex.EsotopeVersion
// (set to EsotopeV2); the scanner does not read it, so both versions
// scan alike.
func newEsotope() *Dialect {
	d := &Dialect{
		ID:          Esotope,
		DisplayName: "esotope-ws",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineHash: true},
			LineTerms:      UnicodeLineBreak,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true},
			CaseFold:       Sensitive,
			Integer:        numeral.Decimal32(),
			EsotopeVersion: EsotopeV2,
		},
		ParseStyle: ParseStyle{
			Kind:       LineTerminated,
			LabelColon: true,
		},
		Generation: Generation{
			Zero:           ZeroSignless,
			LabelNumbering: ArbitraryPrecisionBitsOfText,
		},
		Mnemonics:  stdMnemonics(),
		Signatures: stdSignatures(),
	}
	return d
}
