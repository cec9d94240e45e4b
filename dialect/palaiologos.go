package dialect

import "github.com/omniwsa/omniwsa/numeral"

// newPalaiologos builds the Palaiologos dialect catalog entry.
//
// Palaiologos assembly is byte-oriented (no Unicode awareness), uses
// '@' to define a label and '%' to reference one, is punctuation-free
// (line-terminated), and its reference implementation wraps integers to
// 32-bit two's complement (spec.md §4.6 "bugs": PalaiologosWrap32) and
// unconditionally drops a redundant "xchg xchg" pair it detects
// (PalaiologosXchgXchgRemoved). Label IDs are assigned by
// HighestReferenceCountFirst (spec.md §8 scenario 4).
func newPalaiologos() *Dialect {
	intCfg := numeral.Config{
		Signs:      map[numeral.Sign]bool{numeral.SignNeg: true, numeral.SignPos: true},
		BaseStyles: map[numeral.BaseStyle]bool{numeral.Decimal: true},
		Overflow:   numeral.OverflowWrap,
		BoundBits:  32,
	}

	d := &Dialect{
		ID:          Palaiologos,
		DisplayName: "Palaiologos",
		Lex: LexConfig{
			WordStart:      asciiLetterOrUnderscore,
			WordContinue:   asciiWordByte,
			Comments:       map[CommentStyle]bool{LineSemi: true},
			LineTerms:      LFCRCRLF,
			HorizontalTabs: true,
			Punct:          map[byte]bool{'@': true, '%': true},
			CaseFold:       Sensitive,
			Integer:        intCfg,
			ByteOriented:   true,
		},
		ParseStyle: ParseStyle{
			Kind:           LineTerminated,
			LabelPrefix:    '@',
			LabelUsePrefix: '%',
		},
		Preprocessor: PreprocessorStyle{},
		Generation: Generation{
			Zero:            ZeroSignless,
			LabelNumbering:  HighestReferenceCountFirst,
			IntegerBitWidth: 32,
		},
		Bugs: BugFlags{
			PalaiologosXchgXchgRemoved: true,
			PalaiologosWrap32:          true,
		},
		RepMnemonic: "rep",
		Mnemonics: map[string]Opcode{
			"push": OpPush, "dup": OpDup, "copy": OpCopy, "xchg": OpSwap,
			"drop": OpDrop, "slide": OpSlide,
			"add": OpAdd, "sub": OpSub, "mul": OpMul, "div": OpDiv, "mod": OpMod,
			"store": OpStore, "load": OpRetrieve,
			"label": OpLabel, "call": OpCall, "jmp": OpJump,
			"jz": OpJumpZero, "jn": OpJumpNeg, "ret": OpRet, "end": OpEnd,
			"outc": OpOutChar, "outn": OpOutNum, "inc": OpReadChar, "inn": OpReadNum,
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

	// rep K X: desugars to K copies of instruction X (spec.md §8
	// scenario 2, "rep dup 3" -> "dup; dup; dup"). Modeled as a
	// dedicated pseudo-mnemonic (RepMnemonic) handled by the parser/
	// preprocessor framework rather than a Signature, since its arity is
	// dialect-syntax (a nested mnemonic), not a fixed ArgKind tuple.
	return d
}

func asciiLetterOrUnderscore(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func asciiWordByte(b byte) bool {
	return asciiLetterOrUnderscore(b) || (b >= '0' && b <= '9')
}
