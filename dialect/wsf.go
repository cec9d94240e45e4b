package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newWSF builds the wsf ("Whitespace with Fused mnemonics") dialect: an
// integer immediately followed by a word fuses into push-then-mnemonic,
// so "1dup" scans as integer "1" and word "dup" without intervening
// whitespace. This is the JuxtaposeWord case spec.md §4.3 names
// explicitly.
func newWSF() *Dialect {
	intCfg := numeral.Decimal32()
	intCfg.JuxtaposeWord = true

	d := &Dialect{
		ID:          WSF,
		DisplayName: "wsf",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineHash: true},
			LineTerms:      LFOnly,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true},
			CaseFold:       Sensitive,
			Integer:        intCfg,
		},
		ParseStyle: ParseStyle{
			Kind:       LineTerminated,
			LabelColon: true,
		},
		Generation: Generation{
			Zero:           ZeroSignless,
			LabelNumbering: FirstUseOrder,
		},
		Mnemonics:  stdMnemonics(),
		Signatures: stdSignatures(),
	}
	return d
}
