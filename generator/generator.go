// Package generator implements spec.md §4.8: lowering a flat, fully
// resolved instruction stream plus its label side table to a
// wstoken.Stream, the three-symbol Whitespace instruction set.
//
// Grounded on sqlparser/dom.go's Create.Serialize/SerializeBytes (a
// linear walk-and-write over a flat token list) for the emission pass,
// and sqldocument/topological_sort.go's DFS-with-visiting/visited
// bookkeeping, adapted in labels.go into the walk that assigns each
// label numbering rule's id order.
package generator

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/omniwsa/omniwsa/cst"
	"github.com/omniwsa/omniwsa/diag"
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/symbols"
	"github.com/omniwsa/omniwsa/token"
	"github.com/omniwsa/omniwsa/wstoken"
)

// lowered is one already-resolved Whitespace-level operation: either a
// opcode with no operand, an opcode carrying a resolved integer
// (push/copy/slide/Burghard-style immediate arithmetic), or an opcode
// carrying a label reference (call/jump family, including a label
// definition site when IsLabelDef is set).
type lowered struct {
	Op         dialect.Opcode
	IntArg     *big.Int
	HasInt     bool
	LabelArg   string
	HasLabel   bool
	IsLabelDef bool
}

type gen struct {
	d      *dialect.Dialect
	labels *symbols.Labels
	diags  []diag.Diagnostic
	auxSeq int
}

// Generate lowers instructions (produced by generator.Flatten from a
// preprocessed cst.Program) to Whitespace tokens, resolving every label
// reference against labels. Two passes, per spec.md §4.8: lower (which
// may desugar one source instruction into several, minting fresh
// auxiliary labels as it goes) happens first so every label definition
// exists in labels before orderLabels numbers them; emit then walks the
// lowered stream a second time, substituting each label's assigned id.
func Generate(instructions []cst.Instruction, labels *symbols.Labels, d *dialect.Dialect) (wstoken.Stream, []diag.Diagnostic) {
	g := &gen{d: d, labels: labels}
	expanded := g.lowerAll(instructions)
	g.orderLabels(expanded)
	out := g.emit(expanded)
	return out, g.diags
}

// Flatten turns a preprocessed Program's lines into the flat
// instruction stream Generate consumes. A colon/prefix-style label
// definition (cst.Line.Label) carries no Instruction of its own in the
// CST, so it is synthesized here as an OpLabel instruction matching
// signature 0 — every catalog entry declares OpLabel's sole signature
// as {Args: [ArgLabel], Rule: GenDirect} (dialect.stdSignatures), so
// this holds across every dialect without per-dialect special-casing.
func Flatten(lines []cst.Line) []cst.Instruction {
	var out []cst.Instruction
	for _, l := range lines {
		if l.Label != nil {
			out = append(out, labelDefInstruction(*l.Label))
		}
		if l.Instruction != nil {
			out = append(out, *l.Instruction)
		}
	}
	return out
}

func labelDefInstruction(ld cst.LabelDef) cst.Instruction {
	return cst.Instruction{
		Opcode:         dialect.OpLabel,
		SignatureIndex: 0,
		Args: cst.Separated[cst.Arg, cst.SeparatorKind]{
			Items: []cst.Arg{{Kind: cst.ArgLabel, Tokens: []token.Token{ld.NameToken}, Span: ld.NameToken.Span}},
		},
		Span: ld.Span,
	}
}

func (g *gen) lowerAll(instructions []cst.Instruction) []lowered {
	var out []lowered
	for _, ins := range instructions {
		l := g.lower(ins)
		if g.d.Bugs.PalaiologosXchgXchgRemoved && len(l) == 1 && l[0].Op == dialect.OpSwap &&
			len(out) > 0 && out[len(out)-1].Op == dialect.OpSwap {
			// a swap directly following a swap cancels out: drop both.
			out = out[:len(out)-1]
			continue
		}
		out = append(out, l...)
	}
	return out
}

func (g *gen) lower(ins cst.Instruction) []lowered {
	sigs := g.d.Signatures[ins.Opcode]
	if ins.SignatureIndex < 0 || ins.SignatureIndex >= len(sigs) {
		g.addError(diag.GenerationFailure, fmt.Sprintf("instruction %v has no resolved signature", ins.Opcode))
		return nil
	}
	sig := sigs[ins.SignatureIndex]
	switch sig.Rule {
	case dialect.GenDesugar:
		return g.lowerDesugar(ins, sig)
	case dialect.GenAuxLabel:
		return g.lowerAuxLabel(ins, sig)
	case dialect.GenStoreStr:
		return g.lowerStoreStr(ins)
	case dialect.GenPushStr:
		return g.lowerPushStr(ins)
	default:
		return g.lowerDirect(ins, sig)
	}
}

// lowerDirect handles the common case: one source instruction becomes
// one Whitespace opcode, its operand (if any) resolved to an integer
// or a label name per the matched signature's declared arg kinds.
func (g *gen) lowerDirect(ins cst.Instruction, sig dialect.Signature) []lowered {
	l := lowered{Op: ins.Opcode, IsLabelDef: ins.Opcode == dialect.OpLabel}
	for i, arg := range ins.Args.Items {
		if i >= len(sig.Args) {
			continue
		}
		switch sig.Args[i] {
		case dialect.ArgInteger:
			l.IntArg = g.intValue(arg)
			l.HasInt = true
		case dialect.ArgVariable:
			// By the time generation runs, the preprocessor has already
			// substituted the bound value in; which field it belongs in
			// depends on what that value turned out to be; an unbound
			// variable (substitution failed) leaves a Word token and
			// falls through to the label-like case below.
			if len(arg.Tokens) > 0 && arg.Tokens[0].Integer != nil {
				l.IntArg = g.intValue(arg)
				l.HasInt = true
				continue
			}
			fallthrough
		case dialect.ArgLabel:
			if len(arg.Tokens) > 0 {
				l.LabelArg = arg.Tokens[0].Text
				l.HasLabel = true
			}
		}
	}
	return []lowered{l}
}

// lowerDesugar handles the Burghard-style "op n" immediate overload:
// "add 5" expands to push(5) followed by the bare, argumentless op, the
// same expansion its reference implementation performs (spec.md §4.6).
func (g *gen) lowerDesugar(ins cst.Instruction, sig dialect.Signature) []lowered {
	n := big.NewInt(0)
	if len(ins.Args.Items) > 0 {
		n = g.intValue(ins.Args.Items[0])
	}
	return []lowered{
		{Op: dialect.OpPush, IntArg: n, HasInt: true},
		{Op: ins.Opcode},
	}
}

// lowerAuxLabel handles the three extension jumps (jumpp, jumpnz,
// jumpnp) that no canonical Whitespace opcode expresses directly. Every
// canonical conditional jump unconditionally pops its tested value
// before deciding whether to branch, so testing one value against two
// conditions (e.g. "is it positive", meaning both "not negative" and
// "not zero") requires dup'ing it first and draining the extra copy on
// whichever branch doesn't consume it naturally.
func (g *gen) lowerAuxLabel(ins cst.Instruction, sig dialect.Signature) []lowered {
	target := argLabelText(ins)
	switch ins.Opcode {
	case dialect.OpJumpNZ:
		skip := g.auxLabel(target, "skip")
		return []lowered{
			jumpTo(dialect.OpJumpZero, skip),
			jumpTo(dialect.OpJump, target),
			labelDef(skip),
		}
	case dialect.OpJumpPos:
		clean := g.auxLabel(target, "neg")
		after := g.auxLabel(target, "after")
		return []lowered{
			{Op: dialect.OpDup},
			jumpTo(dialect.OpJumpNeg, clean),
			jumpTo(dialect.OpJumpZero, after),
			jumpTo(dialect.OpJump, target),
			labelDef(clean),
			{Op: dialect.OpDrop},
			labelDef(after),
		}
	case dialect.OpJumpNPos:
		neg := g.auxLabel(target, "neg")
		after := g.auxLabel(target, "after")
		return []lowered{
			{Op: dialect.OpDup},
			jumpTo(dialect.OpJumpNeg, neg),
			jumpTo(dialect.OpJumpZero, target),
			jumpTo(dialect.OpJump, after),
			labelDef(neg),
			{Op: dialect.OpDrop},
			jumpTo(dialect.OpJump, target),
			labelDef(after),
		}
	}
	g.addError(diag.GenerationFailure, fmt.Sprintf("opcode %v declared GenAuxLabel but has no lowering", ins.Opcode))
	return nil
}

func argLabelText(ins cst.Instruction) string {
	if len(ins.Args.Items) == 0 || len(ins.Args.Items[0].Tokens) == 0 {
		return ""
	}
	return ins.Args.Items[0].Tokens[0].Text
}

func jumpTo(op dialect.Opcode, name string) lowered {
	return lowered{Op: op, LabelArg: name, HasLabel: true}
}

func labelDef(name string) lowered {
	return lowered{Op: dialect.OpLabel, LabelArg: name, HasLabel: true, IsLabelDef: true}
}

// auxLabel mints a fresh, dialect-templated label name for a
// GenAuxLabel desugar and registers its definition site in labels so
// orderLabels numbers it alongside every user-visible label.
func (g *gen) auxLabel(target, tag string) string {
	g.auxSeq++
	tmpl := g.d.Generation.AuxLabelTemplate
	if tmpl == "" {
		tmpl = "__omniwsa_aux_%s_%d"
	}
	name := fmt.Sprintf(tmpl, target+"_"+tag, g.auxSeq)
	g.labels.Define(name, token.Span{}, true)
	return name
}

// lowerStoreStr expands voliva's "storestr <string>" pseudo-instruction
// into the dup/push/store/push 1/add sequence its reference compiler
// emits per character (one push of each rune's code point), assuming the destination address is already on the
// stack. When VolivaStorestrZeroTerm is set (the documented upstream
// bug, spec.md §8 scenario 3), the NUL terminator write is followed by
// the same superfluous pointer advance as every preceding byte, rather
// than stopping once the terminator is stored.
func (g *gen) lowerStoreStr(ins cst.Instruction) []lowered {
	var s string
	if len(ins.Args.Items) > 0 {
		s = decodeStringArg(ins.Args.Items[0])
	}
	var out []lowered
	emitByte := func(code int64) {
		out = append(out,
			lowered{Op: dialect.OpDup},
			lowered{Op: dialect.OpPush, IntArg: big.NewInt(code), HasInt: true},
			lowered{Op: dialect.OpStore},
			lowered{Op: dialect.OpPush, IntArg: big.NewInt(1), HasInt: true},
			lowered{Op: dialect.OpAdd},
		)
	}
	for _, r := range s {
		emitByte(int64(r))
	}
	if g.d.Bugs.VolivaStorestrZeroTerm {
		emitByte(0)
	} else {
		out = append(out,
			lowered{Op: dialect.OpDup},
			lowered{Op: dialect.OpPush, IntArg: big.NewInt(0), HasInt: true},
			lowered{Op: dialect.OpStore},
		)
	}
	return out
}

// lowerPushStr expands Burghard's "pushs <string>" pseudo-instruction
// into a NUL terminator push followed by one push per character (rune)
// in reverse order, so popping the stack afterward yields the string in forward
// order. Applies BurghardLowercasesStrings (spec.md §8 scenario 1)
// before pushing, matching the reference assembler's case-folding.
func (g *gen) lowerPushStr(ins cst.Instruction) []lowered {
	var s string
	if len(ins.Args.Items) > 0 {
		s = decodeStringArg(ins.Args.Items[0])
	}
	if g.d.Bugs.BurghardLowercasesStrings {
		s = strings.ToLower(s)
	}
	runes := []rune(s)
	out := []lowered{{Op: dialect.OpPush, IntArg: big.NewInt(0), HasInt: true}}
	for i := len(runes) - 1; i >= 0; i-- {
		out = append(out, lowered{Op: dialect.OpPush, IntArg: big.NewInt(int64(runes[i])), HasInt: true})
	}
	return out
}

// decodeStringArg resolves a string-literal argument's decoded
// contents, concatenating chunk values the same way a direct string
// argument would be decoded at a use site.
func decodeStringArg(arg cst.Arg) string {
	if len(arg.Tokens) == 0 {
		return ""
	}
	t := arg.Tokens[0]
	if t.String == nil {
		return t.Text
	}
	var sb strings.Builder
	for _, ch := range t.String.Chunks {
		sb.WriteString(ch.Value)
	}
	return sb.String()
}

func (g *gen) intValue(arg cst.Arg) *big.Int {
	if len(arg.Tokens) == 0 || arg.Tokens[0].Integer == nil {
		return big.NewInt(0)
	}
	lit := arg.Tokens[0].Integer
	v := bigFromWords(lit.Value)
	if lit.Negative {
		v.Neg(v)
	}
	v = g.wrap(v)
	if g.d.Bugs.PalaiologosWrap32 && v.Cmp(big.NewInt(-1<<31)) == 0 {
		g.addError(diag.GenerationFailure, "integer wraps to -2^31 under 32-bit wraparound; refusing to encode it")
	}
	return v
}

// bigFromWords reconstructs the magnitude token.IntegerLiteral.Value
// carries as little-endian uint32 words into a big.Int, without relying
// on math/big's platform-width Word type.
func bigFromWords(p *token.BigIntPlaceholder) *big.Int {
	v := new(big.Int)
	if p == nil {
		return v
	}
	for i := len(p.Words) - 1; i >= 0; i-- {
		v.Lsh(v, 32)
		v.Or(v, new(big.Int).SetUint64(uint64(p.Words[i])))
	}
	return v
}

// wrap applies the dialect's fixed integer bit width (Palaiologos: 32,
// two's complement wraparound per PalaiologosWrap32) when one is
// configured; arbitrary-precision dialects (IntegerBitWidth == 0) pass
// the value through unchanged.
func (g *gen) wrap(v *big.Int) *big.Int {
	bits := g.d.Generation.IntegerBitWidth
	if bits <= 0 {
		return v
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	r := new(big.Int).Mod(v, mod)
	half := new(big.Int).Rsh(mod, 1)
	if r.Cmp(half) >= 0 {
		r.Sub(r, mod)
	}
	return r
}

func (g *gen) emit(instrs []lowered) wstoken.Stream {
	var out wstoken.Stream
	for _, ins := range instrs {
		prefix, ok := instrPrefix[ins.Op]
		if !ok {
			g.addError(diag.GenerationFailure, fmt.Sprintf("no token encoding for opcode %v", ins.Op))
			continue
		}
		out = append(out, prefix...)
		switch {
		case ins.HasInt:
			out = g.appendInt(out, ins.IntArg)
		case ins.HasLabel:
			out = g.appendLabel(out, ins.LabelArg)
		}
	}
	return out
}

func (g *gen) appendInt(s wstoken.Stream, v *big.Int) wstoken.Stream {
	if v.Sign() == 0 {
		if g.zeroEncoding() == dialect.ZeroPositiveSigned {
			return s.AppendInt(nil, false, true)
		}
		return s.AppendInt(nil, false, false)
	}
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	return s.AppendInt(bitsMSBFirst(abs), neg, true)
}

func (g *gen) zeroEncoding() dialect.ZeroEncoding {
	z := g.d.Generation.Zero
	if z != dialect.ZeroStyleDependent {
		return z
	}
	if g.d.Bugs.CensoredUsernameZeroSignNew {
		return dialect.ZeroPositiveSigned
	}
	return dialect.ZeroSignless
}

// appendLabel resolves name to its assigned Whitespace token encoding.
// ArbitraryPrecisionBitsOfText (esotope-ws) bypasses the numbering
// table entirely: the label's own name bytes, read as a big-endian
// base-256 integer, are the encoded id (spec.md §9 Open Question
// resolution, esotope.go).
func (g *gen) appendLabel(s wstoken.Stream, name string) wstoken.Stream {
	if g.d.Generation.LabelNumbering == dialect.ArbitraryPrecisionBitsOfText {
		v := new(big.Int).SetBytes([]byte(name))
		return s.AppendInt(bitsMSBFirst(v), false, true)
	}
	e := g.labels.Get(name)
	if e == nil || e.EmittedID == nil {
		g.addError(diag.UndefinedLabel, "undefined label: "+name)
		return s.AppendInt(nil, false, true)
	}
	id := *e.EmittedID
	abs := big.NewInt(id)
	neg := id < 0
	abs.Abs(abs)
	return s.AppendInt(bitsMSBFirst(abs), neg, true)
}

func bitsMSBFirst(v *big.Int) []bool {
	text := v.Text(2)
	bits := make([]bool, len(text))
	for i, c := range text {
		bits[i] = c == '1'
	}
	return bits
}

func (g *gen) addError(kind diag.Kind, msg string) {
	g.diags = append(g.diags, diag.New(diag.Span{}, kind, msg))
}
