package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newRespace builds the respace assembly dialect: punctuation-terminated
// (instructions separated by ';'), decimal integers only, labels
// numbered in first-use order.
func newRespace() *Dialect {
	d := &Dialect{
		ID:          Respace,
		DisplayName: "respace",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineHash: true},
			LineTerms:      LFOnly,
			HorizontalTabs: true,
			Punct:          map[byte]bool{';': true, ':': true},
			CaseFold:       Sensitive,
			Integer:        numeral.Decimal32(),
		},
		ParseStyle: ParseStyle{
			Kind:       PunctuationTerminated,
			Separators: map[byte]bool{';': true},
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
