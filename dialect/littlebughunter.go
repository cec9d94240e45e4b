package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newLittleBugHunter builds the LittleBugHunter assembly dialect:
// conventional line-terminated syntax with decimal and hex (0x-prefixed)
// integers, labels numbered in first-use order.
func newLittleBugHunter() *Dialect {
	intCfg := numeral.Decimal32()
	intCfg.BaseStyles[numeral.Prefix0x] = true
	intCfg.BaseStyles[numeral.Prefix0X] = true

	d := &Dialect{
		ID:          LittleBugHunter,
		DisplayName: "LittleBugHunter",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineHash: true, BlockC: true},
			LineTerms:      LFCRCRLF,
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
