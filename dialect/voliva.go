package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newVoliva builds the voliva wsa dialect (the "wsa" online IDE/compiler
// by voliva). Unicode word classification, supports valueinteger/
// valuestring variable bindings (spec.md §4.7), and the documented
// storestr-emits-a-trailing-zero-terminator bug (spec.md §8 scenario 3:
// "storestr \"A\"" lowers to dup/push 'A'/store/push 1/add/dup/push 0/
// store/push 1/add). Labels are numbered in first-use order.
func newVoliva() *Dialect {
	d := &Dialect{
		ID:          Voliva,
		DisplayName: "voliva wsa",
		Lex: LexConfig{
			UnicodeWords:   true,
			Comments:       map[CommentStyle]bool{LineSemi: true},
			LineTerms:      LFCRCRLF,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true},
			CaseFold:       Sensitive,
			Integer:        numeral.Decimal32(),
			String:         backslashStringConfig('"'),
		},
		ParseStyle: ParseStyle{
			Kind:       LineTerminated,
			LabelColon: true,
		},
		Preprocessor: PreprocessorStyle{
			Variables: true,
		},
		Generation: Generation{
			Zero:             ZeroSignless,
			LabelNumbering:   FirstUseOrder,
			AuxLabelTemplate: "__omniwsa_aux_%s_%d",
		},
		Bugs: BugFlags{
			VolivaStorestrZeroTerm: true,
		},
		Mnemonics: map[string]Opcode{
			"push": OpPush, "dup": OpDup, "copy": OpCopy, "swap": OpSwap,
			"pop": OpDrop, "slide": OpSlide,
			"add": OpAdd, "sub": OpSub, "mul": OpMul, "div": OpDiv, "mod": OpMod,
			"store": OpStore, "retrieve": OpRetrieve,
			"label": OpLabel, "call": OpCall, "jump": OpJump,
			"jumpz": OpJumpZero, "jumpn": OpJumpNeg,
			"jumpp": OpJumpPos, "jumppn": OpJumpNPos,
			"ret": OpRet, "end": OpEnd,
			"readchar": OpReadChar, "readnum": OpReadNum,
			"printchar": OpOutChar, "printnum": OpOutNum,
			"storestr": OpStoreStr,
		},
		Signatures: map[Opcode][]Signature{
			OpPush: {
				{Opcode: OpPush, Args: []ArgKind{ArgInteger}, Rule: GenDirect},
				{Opcode: OpPush, Args: []ArgKind{ArgVariable}, Rule: GenDirect},
			},
			OpDup: {{Opcode: OpDup, Args: nil, Rule: GenDirect}},
			OpCopy: {
				{Opcode: OpCopy, Args: []ArgKind{ArgInteger}, Rule: GenDirect},
				{Opcode: OpCopy, Args: []ArgKind{ArgVariable}, Rule: GenDirect},
			},
			OpSwap: {{Opcode: OpSwap, Args: nil, Rule: GenDirect}},
			OpDrop: {{Opcode: OpDrop, Args: nil, Rule: GenDirect}},
			OpSlide: {
				{Opcode: OpSlide, Args: []ArgKind{ArgInteger}, Rule: GenDirect},
				{Opcode: OpSlide, Args: []ArgKind{ArgVariable}, Rule: GenDirect},
			},
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
			OpJumpPos:  {{Opcode: OpJumpPos, Args: []ArgKind{ArgLabel}, Rule: GenAuxLabel}},
			OpJumpNPos: {{Opcode: OpJumpNPos, Args: []ArgKind{ArgLabel}, Rule: GenAuxLabel}},
			OpRet:      {{Opcode: OpRet, Args: nil, Rule: GenDirect}},
			OpEnd:      {{Opcode: OpEnd, Args: nil, Rule: GenDirect}},
			OpOutChar:  {{Opcode: OpOutChar, Args: nil, Rule: GenDirect}},
			OpOutNum:   {{Opcode: OpOutNum, Args: nil, Rule: GenDirect}},
			OpReadChar: {{Opcode: OpReadChar, Args: nil, Rule: GenDirect}},
			OpReadNum:  {{Opcode: OpReadNum, Args: nil, Rule: GenDirect}},
			OpStoreStr: {{Opcode: OpStoreStr, Args: []ArgKind{ArgString}, Rule: GenStoreStr}},
		},
	}
	return d
}
