package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newWconrad builds wconrad's Whitespace assembly dialect, whose labels
// are bare digit sequences ending in ':' at definition sites and bare
// digit sequences at use sites (spec.md §4.5: "a single token that could
// be either an integer or a label is classified by the dialect"). Labels
// are numbered in definition order, matching the source text's own
// numbering convention.
func newWconrad() *Dialect {
	d := &Dialect{
		ID:          Wconrad,
		DisplayName: "wconrad wspace assembler",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineHash: true},
			LineTerms:      LFCRCRLF,
			HorizontalTabs: true,
			Punct:          map[byte]bool{':': true},
			CaseFold:       Sensitive,
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
		Mnemonics: map[string]Opcode{
			"push": OpPush, "dup": OpDup, "copy": OpCopy, "swap": OpSwap,
			"pop": OpDrop, "slide": OpSlide,
			"add": OpAdd, "sub": OpSub, "mul": OpMul, "div": OpDiv, "mod": OpMod,
			"store": OpStore, "retrieve": OpRetrieve,
			"label": OpLabel, "call": OpCall, "jump": OpJump,
			"jumpz": OpJumpZero, "jumpn": OpJumpNeg,
			"return": OpRet, "end": OpEnd,
			"outchar": OpOutChar, "outnum": OpOutNum,
			"readchar": OpReadChar, "readnum": OpReadNum,
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
