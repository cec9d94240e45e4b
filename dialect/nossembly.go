package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newNossembly builds leahhirst's "nossembly" dialect: line-terminated,
// case-insensitive mnemonics, labels numbered in definition order.
func newNossembly() *Dialect {
	d := &Dialect{
		ID:          Nossembly,
		DisplayName: "nossembly",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineSemi: true},
			LineTerms:      LFCRCRLF,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true},
			CaseFold:       AsciiInsensitive,
			Integer:        numeral.Decimal32(),
		},
		ParseStyle: ParseStyle{
			Kind:       LineTerminated,
			LabelColon: true,
		},
		Generation: Generation{
			Zero:           ZeroSignless,
			LabelNumbering: DefinitionOrder,
		},
		Mnemonics:  stdMnemonics(),
		Signatures: stdSignatures(),
	}
	return d
}
