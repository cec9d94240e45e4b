package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newOmniwsaDraft builds the "omniwsa" lingua-franca dialect: a superset
// syntax picked to round-trip as many of the other fourteen dialects'
// source texts as cleanly as possible. It is intentionally not part of
// the default registry (spec.md §1 tracks it as a draft, not a member of
// the core contract) and is reached only through Registry.LookupDraft,
// e.g. by a rewrite pipeline's canonical intermediate form.
func newOmniwsaDraft() *Dialect {
	intCfg := numeral.Decimal32()
	intCfg.BaseStyles[numeral.Prefix0x] = true
	intCfg.BaseStyles[numeral.Prefix0X] = true
	intCfg.BaseStyles[numeral.Prefix0b] = true
	intCfg.BaseStyles[numeral.Prefix0B] = true
	intCfg.BaseStyles[numeral.Prefix0o] = true
	intCfg.BaseStyles[numeral.Prefix0O] = true
	intCfg.DigitSeps = map[numeral.DigitSep]bool{numeral.SepUnderscore: true}
	intCfg.DigitSepLocations = map[numeral.DigitSepLocation]bool{numeral.AfterDigits: true}

	d := &Dialect{
		ID:          Omniwsa,
		DisplayName: "omniwsa (draft)",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			UnicodeWords:   true,
			Comments:       map[CommentStyle]bool{LineHash: true, LineSemi: true, LineDoubleSlash: true, BlockC: true},
			LineTerms:      UnicodeLineBreak,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true, ',': true},
			CaseFold:       Sensitive,
			Integer:        intCfg,
			String:         backslashStringConfig('"'),
		},
		ParseStyle: ParseStyle{
			Kind:       LineTerminated,
			LabelColon: true,
		},
		Preprocessor: PreprocessorStyle{
			Includes:          true,
			IncludeRelativeTo: "cwd",
			Options:           true,
			Variables:         true,
			Macros:            true,
			MaxMacroDepth:     16,
		},
		Generation: Generation{
			Zero:             ZeroPositiveSigned,
			LabelNumbering:   DefinitionOrder,
			AuxLabelTemplate: "__omniwsa_aux_%s_%d",
			EmitUnreferenced: true,
		},
		Mnemonics:  stdMnemonics(),
		Signatures: stdSignatures(),
	}
	return d
}
