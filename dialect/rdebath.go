package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newRdebathLex builds rdebath's "wsa" lexer-based assembly front end:
// line-terminated, decimal and hex, labels numbered in first-use order.
func newRdebathLex() *Dialect {
	intCfg := numeral.Decimal32()
	intCfg.BaseStyles[numeral.Prefix0x] = true
	intCfg.BaseStyles[numeral.Prefix0X] = true

	d := &Dialect{
		ID:          RdebathLex,
		DisplayName: "rdebath wsa (lex front end)",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineHash: true, LineSemi: true},
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

// newRdebathSed builds rdebath's alternate sed-based preprocessing front
// end to the same VM: the same instruction set and numbering rule as
// RdebathLex, but its comment/line-splitting conventions are stricter
// (only line-hash comments, no semicolon), reflecting the sed script's
// simpler single-pass substitution model.
func newRdebathSed() *Dialect {
	intCfg := numeral.Decimal32()
	intCfg.BaseStyles[numeral.Prefix0x] = true
	intCfg.BaseStyles[numeral.Prefix0X] = true

	d := &Dialect{
		ID:          RdebathSed,
		DisplayName: "rdebath wsa (sed front end)",
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
