package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newWhitelips builds the Whitelips online IDE dialect: Unicode-aware,
// supports the macro/$label/$number/${n} preprocessor of spec.md §4.7
// with dynamic-scoped lookup and a bounded (documented 16) expansion
// depth. Labels are numbered in first-use order.
func newWhitelips() *Dialect {
	intCfg := numeral.Decimal32()
	intCfg.BaseStyles[numeral.Prefix0x] = true
	intCfg.BaseStyles[numeral.Prefix0X] = true
	intCfg.BaseStyles[numeral.Prefix0b] = true

	d := &Dialect{
		ID:          Whitelips,
		DisplayName: "Whitelips",
		Lex: LexConfig{
			UnicodeWords:   true,
			Comments:       map[CommentStyle]bool{LineSemi: true, LineDoubleSlash: true},
			LineTerms:      LFCRCRLF,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true, '$': true},
			CaseFold:       Sensitive,
			Integer:        intCfg,
			String:         backslashStringConfig('"'),
		},
		ParseStyle: ParseStyle{
			Kind:       LineTerminated,
			LabelColon: true,
		},
		Preprocessor: PreprocessorStyle{
			Macros:        true,
			MaxMacroDepth: 16,
		},
		Generation: Generation{
			Zero:             ZeroSignless,
			LabelNumbering:   FirstUseOrder,
			AuxLabelTemplate: "__omniwsa_aux_%s_%d",
		},
		Mnemonics: map[string]Opcode{
			"push": OpPush, "dup": OpDup, "copy": OpCopy, "swap": OpSwap,
			"pop": OpDrop, "slide": OpSlide,
			"add": OpAdd, "sub": OpSub, "mul": OpMul, "div": OpDiv, "mod": OpMod,
			"store": OpStore, "retrieve": OpRetrieve,
			"label": OpLabel, "call": OpCall, "jmp": OpJump,
			"jz": OpJumpZero, "jn": OpJumpNeg,
			"ret": OpRet, "end": OpEnd,
			"ochar": OpOutChar, "onum": OpOutNum,
			"ichar": OpReadChar, "inum": OpReadNum,
		},
		Signatures: map[Opcode][]Signature{
			OpPush:     {{Opcode: OpPush, Args: []ArgKind{ArgInteger}, Rule: GenDirect}},
			OpDup:      {{Opcode: OpDup, Args: nil, Rule: GenDirect}},
			OpCopy:     {{Opcode: OpCopy, Args: []ArgKind{ArgInteger}, Rule: GenDirect}},
			OpSwap:     {{Opcode: OpSwap, Args: nil, Rule: GenDirect}},
			OpDrop:     {{Opcode: OpDrop, Args: nil, Rule: GenDirect}},
			OpSlide:    {{Opcode: OpSlide, Args: []ArgKind{ArgInteger}, Rule: GenDirect}},
			OpAdd:      {{Opcode: OpAdd, Args: nil, Rule: GenDirect}},
			OpSub:      {{Opcode: OpSub, Args: nil, Rule: GenDirect}},
			OpMul:      {{Opcode: OpMul, Args: nil, Rule: GenDirect}},
			OpDiv:      {{Opcode: OpDiv, Args: nil, Rule: GenDirect}},
			OpMod:      {{Opcode: OpMod, Args: nil, Rule: GenDirect}},
			OpStore:    {{Opcode: OpStore, Args: nil, Rule: GenDirect}},
			OpRetrieve: {{Opcode: OpRetrieve, Args: nil, Rule: GenDirect}},
			OpLabel:    {{Opcode: OpLabel, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpCall:     {{Opcode: OpCall, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpJump:     {{Opcode: OpJump, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpJumpZero: {{Opcode: OpJumpZero, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpJumpNeg:  {{Opcode: OpJumpNeg, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpRet:      {{Opcode: OpRet, Args: nil, Rule: GenDirect}},
			OpEnd:      {{Opcode: OpEnd, Args: nil, Rule: GenDirect}},
			OpOutChar:  {{Opcode: OpOutChar, Args: nil, Rule: GenDirect}},
			OpOutNum:   {{Opcode: OpOutNum, Args: nil, Rule: GenDirect}},
			OpReadChar: {{Opcode: OpReadChar, Args: nil, Rule: GenDirect}},
			OpReadNum:  {{Opcode: OpReadNum, Args: nil, Rule: GenDirect}},
		},
	}
	return d
}
