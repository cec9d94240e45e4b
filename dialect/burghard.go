package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newBurghard builds the Burghard ("wsa"/whitespace-assembly) dialect.
//
// Burghard is line-terminated, label definitions use bare "name:",
// supports an option/ifoption preprocessor (spec.md §4.7), lowercases
// string literals on emission (BurghardLowercasesStrings), and sets
// IncludeRelativeTo to "cwd" (spec.md §4.7). No pass reads that field:
// include names reach the SourceProvider as written, and where they
// resolve is up to the provider. Extension control
// flow (jumpp/jumpnp/jumpnz) is lowered via synthesized auxiliary
// labels. Label IDs are assigned in definition order.
func newBurghard() *Dialect {
	intCfg := numeral.Decimal32()
	intCfg.BaseStyles[numeral.Prefix0x] = true
	intCfg.BaseStyles[numeral.Prefix0X] = true

	d := &Dialect{
		ID:          Burghard,
		DisplayName: "Burghard",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineSemi: true},
			LineTerms:      LFCRCRLF,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true, ',': true},
			CaseFold:       AsciiInsensitive,
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
		},
		Generation: Generation{
			Zero:             ZeroPositiveSigned,
			LabelNumbering:   DefinitionOrder,
			AuxLabelTemplate: "__omniwsa_aux_%s_%d",
		},
		Bugs: BugFlags{
			BurghardLowercasesStrings: true,
		},
		Mnemonics: map[string]Opcode{
			"push": OpPush, "dup": OpDup, "copy": OpCopy, "swap": OpSwap,
			"pop": OpDrop, "discard": OpDrop, "slide": OpSlide,
			"add": OpAdd, "sub": OpSub, "mul": OpMul, "div": OpDiv, "mod": OpMod,
			"store": OpStore, "retrieve": OpRetrieve,
			"label": OpLabel, "call": OpCall, "jump": OpJump,
			"jumpz": OpJumpZero, "jumpn": OpJumpNeg,
			"jumpp": OpJumpPos, "jumpnp": OpJumpNPos, "jumpnz": OpJumpNZ,
			"ret": OpRet, "exit": OpEnd,
			"outchar": OpOutChar, "outnum": OpOutNum,
			"inchar": OpReadChar, "innum": OpReadNum,
			"pushs": OpPushStr,
		},
		Signatures: map[Opcode][]Signature{
			OpPush:     {{Opcode: OpPush, Args: []ArgKind{ArgInteger}, Rule: GenDirect}},
			OpDup:      {{Opcode: OpDup, Args: nil, Rule: GenDirect}},
			OpCopy:     {{Opcode: OpCopy, Args: []ArgKind{ArgInteger}, Rule: GenDirect}},
			OpSwap:     {{Opcode: OpSwap, Args: nil, Rule: GenDirect}},
			OpDrop:     {{Opcode: OpDrop, Args: nil, Rule: GenDirect}},
			OpSlide:    {{Opcode: OpSlide, Args: []ArgKind{ArgInteger}, Rule: GenDirect}},
			OpAdd:      {{Opcode: OpAdd, Args: []ArgKind{ArgInteger}, Rule: GenDesugar}, {Opcode: OpAdd, Args: nil, Rule: GenDirect}},
			OpSub:      {{Opcode: OpSub, Args: []ArgKind{ArgInteger}, Rule: GenDesugar}, {Opcode: OpSub, Args: nil, Rule: GenDirect}},
			OpMul:      {{Opcode: OpMul, Args: []ArgKind{ArgInteger}, Rule: GenDesugar}, {Opcode: OpMul, Args: nil, Rule: GenDirect}},
			OpDiv:      {{Opcode: OpDiv, Args: []ArgKind{ArgInteger}, Rule: GenDesugar}, {Opcode: OpDiv, Args: nil, Rule: GenDirect}},
			OpMod:      {{Opcode: OpMod, Args: []ArgKind{ArgInteger}, Rule: GenDesugar}, {Opcode: OpMod, Args: nil, Rule: GenDirect}},
			OpStore:    {{Opcode: OpStore, Args: []ArgKind{ArgInteger}, Rule: GenDesugar}, {Opcode: OpStore, Args: nil, Rule: GenDirect}},
			OpRetrieve: {{Opcode: OpRetrieve, Args: []ArgKind{ArgInteger}, Rule: GenDesugar}, {Opcode: OpRetrieve, Args: nil, Rule: GenDirect}},
			OpLabel:    {{Opcode: OpLabel, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpCall:     {{Opcode: OpCall, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpJump:     {{Opcode: OpJump, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpJumpZero: {{Opcode: OpJumpZero, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpJumpNeg:  {{Opcode: OpJumpNeg, Args: []ArgKind{ArgLabel}, Rule: GenDirect}},
			OpJumpPos:  {{Opcode: OpJumpPos, Args: []ArgKind{ArgLabel}, Rule: GenAuxLabel}},
			OpJumpNPos: {{Opcode: OpJumpNPos, Args: []ArgKind{ArgLabel}, Rule: GenAuxLabel}},
			OpJumpNZ:   {{Opcode: OpJumpNZ, Args: []ArgKind{ArgLabel}, Rule: GenAuxLabel}},
			OpRet:      {{Opcode: OpRet, Args: nil, Rule: GenDirect}},
			OpEnd:      {{Opcode: OpEnd, Args: nil, Rule: GenDirect}},
			OpOutChar:  {{Opcode: OpOutChar, Args: nil, Rule: GenDirect}},
			OpOutNum:   {{Opcode: OpOutNum, Args: nil, Rule: GenDirect}},
			OpReadChar: {{Opcode: OpReadChar, Args: nil, Rule: GenDirect}},
			OpReadNum:  {{Opcode: OpReadNum, Args: nil, Rule: GenDirect}},
			OpPushStr:  {{Opcode: OpPushStr, Args: []ArgKind{ArgString}, Rule: GenPushStr}},
		},
	}
	return d
}

