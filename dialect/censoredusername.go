package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newCensoredUsername builds the CensoredUsername "ws-assembler" dialect.
// Up to 2024-12-10 its generator emitted zero as a signless number (no
// sign bits at all); after that date it switched to emitting zero with
// an explicit positive sign, a change that is bug-for-bug reproduced here
// by CensoredUsernameZeroSignNew rather than silently adopting one
// behavior, per spec.md §8 scenario 5.
func newCensoredUsername() *Dialect {
	intCfg := numeral.Decimal32()
	intCfg.BaseStyles[numeral.Prefix0x] = true
	intCfg.BaseStyles[numeral.Prefix0X] = true
	intCfg.BaseStyles[numeral.Prefix0b] = true
	intCfg.BaseStyles[numeral.Prefix0B] = true

	d := &Dialect{
		ID:          CensoredUsername,
		DisplayName: "CensoredUsername ws-assembler",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineSemi: true, BlockC: true},
			LineTerms:      LFCRCRLF,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true},
			CaseFold:       Sensitive,
			Integer:        intCfg,
			String:         backslashStringConfig('"'),
		},
		ParseStyle: ParseStyle{
			Kind:       LineTerminated,
			LabelColon: true,
		},
		Generation: Generation{
			Zero:           ZeroStyleDependent,
			LabelNumbering: DefinitionOrder,
		},
		Bugs: BugFlags{
			CensoredUsernameZeroSignNew: true,
		},
		Mnemonics:  stdMnemonics(),
		Signatures: stdSignatures(),
	}
	return d
}
