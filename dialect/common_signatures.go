package dialect

// stdSignatures builds the conventional 1:1 Signature table most
// dialects share: every stack/arithmetic/heap/flow opcode maps straight
// through to Whitespace with no desugaring. Catalog entries that use it
// take it as is; dialects with different signatures (e.g. Burghard's
// arithmetic-with-immediate desugaring, Palaiologos's rep/xchg quirks)
// build their own tables instead.
func stdSignatures() map[Opcode][]Signature {
	return map[Opcode][]Signature{
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
	}
}

// stdMnemonics builds the conventional lower-case mnemonic table most
// dialects share verbatim; dialects with different spellings build their
// own tables instead.
func stdMnemonics() map[string]Opcode {
	return map[string]Opcode{
		"push": OpPush, "dup": OpDup, "copy": OpCopy, "swap": OpSwap,
		"drop": OpDrop, "slide": OpSlide,
		"add": OpAdd, "sub": OpSub, "mul": OpMul, "div": OpDiv, "mod": OpMod,
		"store": OpStore, "retrieve": OpRetrieve,
		"label": OpLabel, "call": OpCall, "jump": OpJump,
		"jumpz": OpJumpZero, "jumpn": OpJumpNeg,
		"ret": OpRet, "end": OpEnd,
		"outchar": OpOutChar, "outnum": OpOutNum,
		"readchar": OpReadChar, "readnum": OpReadNum,
	}
}
