package generator

import (
	"math/big"
	"testing"

	"github.com/omniwsa/omniwsa/cst"
	"github.com/omniwsa/omniwsa/diag"
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/symbols"
	"github.com/omniwsa/omniwsa/token"
	"github.com/omniwsa/omniwsa/wstoken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func burghard(t *testing.T) *dialect.Dialect {
	t.Helper()
	d, ok := dialect.NewRegistry().Lookup(dialect.Burghard)
	require.True(t, ok)
	return d
}

func intArg(n int64) cst.Arg {
	neg := n < 0
	if neg {
		n = -n
	}
	return cst.Arg{
		Kind: cst.ArgInteger,
		Tokens: []token.Token{{
			Kind:    token.IntegerLit,
			Integer: &token.IntegerLiteral{Negative: neg, Value: &token.BigIntPlaceholder{Words: []uint32{uint32(n)}}},
		}},
	}
}

func labelArg(name string) cst.Arg {
	return cst.Arg{Kind: cst.ArgLabel, Tokens: []token.Token{{Kind: token.Word, Text: name}}}
}

func stringArg(s string) cst.Arg {
	return cst.Arg{
		Kind: cst.ArgString,
		Tokens: []token.Token{{
			Kind:   token.StringLit,
			Text:   s,
			String: &token.StringLiteral{Closed: true, Chunks: []token.Chunk{{Kind: token.ChunkLiteral, Literal: s, Value: s}}},
		}},
	}
}

func variableIntArg(n int64) cst.Arg {
	arg := intArg(n)
	arg.Kind = cst.ArgVariable
	return arg
}

func instr(op dialect.Opcode, sigIdx int, args ...cst.Arg) cst.Instruction {
	return cst.Instruction{Opcode: op, SignatureIndex: sigIdx, Args: cst.Separated[cst.Arg, cst.SeparatorKind]{Items: args}}
}

// TestGeneratePushEncodesSignAndMagnitude walks "push 3" through the full
// pipeline and checks the literal S/T/L token sequence: S S (push) then
// S (positive sign) T T (binary 11) L.
func TestGeneratePushEncodesSignAndMagnitude(t *testing.T) {
	d := burghard(t)
	labels := symbols.NewLabels()
	instrs := []cst.Instruction{instr(dialect.OpPush, 0, intArg(3))}
	out, diags := Generate(instrs, labels, d)
	assert.Empty(t, diags)
	assert.Equal(t, wstoken.Stream{
		wstoken.Space, wstoken.Space, // push prefix
		wstoken.Space,                // positive sign
		wstoken.Tab, wstoken.Tab,     // 3 = 0b11
		wstoken.LineFeed,
	}, out)
}

// TestGenerateNegativePush checks the sign token flips to Tab and the
// magnitude is unsigned.
func TestGenerateNegativePush(t *testing.T) {
	d := burghard(t)
	labels := symbols.NewLabels()
	instrs := []cst.Instruction{instr(dialect.OpPush, 0, intArg(-2))}
	out, diags := Generate(instrs, labels, d)
	assert.Empty(t, diags)
	assert.Equal(t, wstoken.Stream{
		wstoken.Space, wstoken.Space,
		wstoken.Tab,  // negative sign
		wstoken.Tab,  // 2 = 0b10 -> "10"
		wstoken.Space,
		wstoken.LineFeed,
	}, out)
}

// TestGenerateZeroSignless exercises the ZeroSignless generation rule:
// push 0 emits no sign token at all, just the terminating L. Burghard
// itself defaults to ZeroPositiveSigned (spec.md §8 scenario 1), so this
// test selects ZeroSignless explicitly rather than relying on it being
// any particular dialect's default.
func TestGenerateZeroSignless(t *testing.T) {
	d := burghard(t)
	d.Generation.Zero = dialect.ZeroSignless
	labels := symbols.NewLabels()
	instrs := []cst.Instruction{instr(dialect.OpPush, 0, intArg(0))}
	out, diags := Generate(instrs, labels, d)
	assert.Empty(t, diags)
	assert.Equal(t, wstoken.Stream{wstoken.Space, wstoken.Space, wstoken.LineFeed}, out)
}

// TestGenerateZeroPositiveSigned exercises the opposite zero encoding.
func TestGenerateZeroPositiveSigned(t *testing.T) {
	d := burghard(t)
	d.Generation.Zero = dialect.ZeroPositiveSigned
	labels := symbols.NewLabels()
	instrs := []cst.Instruction{instr(dialect.OpPush, 0, intArg(0))}
	out, diags := Generate(instrs, labels, d)
	assert.Empty(t, diags)
	assert.Equal(t, wstoken.Stream{wstoken.Space, wstoken.Space, wstoken.Space, wstoken.LineFeed}, out)
}

// TestGenerateBurghardImmediateAddDesugarsToPushThenAdd exercises the
// GenDesugar rule: "add 5" lowers to push 5; add, not a direct encoding.
func TestGenerateBurghardImmediateAddDesugarsToPushThenAdd(t *testing.T) {
	d := burghard(t)
	labels := symbols.NewLabels()
	instrs := []cst.Instruction{instr(dialect.OpAdd, 0, intArg(5))}
	out, diags := Generate(instrs, labels, d)
	assert.Empty(t, diags)
	want := wstoken.Stream{wstoken.Space, wstoken.Space} // push prefix
	want = want.AppendInt(bitsMSBFirst(big.NewInt(5)), false, true)
	want = append(want, instrPrefix[dialect.OpAdd]...)
	assert.Equal(t, want, out)
}

// TestGenerateUndefinedLabelDiagnostic checks that jumping to a name
// with no Define site raises UndefinedLabel instead of panicking.
func TestGenerateUndefinedLabelDiagnostic(t *testing.T) {
	d := burghard(t)
	labels := symbols.NewLabels()
	instrs := []cst.Instruction{instr(dialect.OpJump, 0, labelArg("nowhere"))}
	_, diags := Generate(instrs, labels, d)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.UndefinedLabel, diags[0].Kind)
}

// TestLowerAuxLabelJumpNZ verifies the every-conditional-jump-pops
// desugaring for "jumpnz": jumpz skip; jump target; skip:. Exactly one
// jumpz (which unconditionally pops) and no other pop appears, so the
// net stack effect is a single pop regardless of the tested value.
func TestLowerAuxLabelJumpNZ(t *testing.T) {
	g := &gen{d: burghard(t), labels: symbols.NewLabels()}
	out := g.lowerAuxLabel(instr(dialect.OpJumpNZ, 0, labelArg("target")), dialect.Signature{})
	require.Len(t, out, 3)
	assert.Equal(t, dialect.OpJumpZero, out[0].Op)
	assert.Equal(t, dialect.OpJump, out[1].Op)
	assert.Equal(t, "target", out[1].LabelArg)
	assert.True(t, out[2].IsLabelDef)
	assert.Equal(t, out[0].LabelArg, out[2].LabelArg)
}

// TestLowerAuxLabelJumpPos verifies "jumpp": the tested value is
// duplicated so jumpneg and jumpz each pop one copy; only the negative
// path, where jumpneg branches before jumpz runs, explicitly drops the
// leftover copy, so no path leaks a value.
func TestLowerAuxLabelJumpPos(t *testing.T) {
	g := &gen{d: burghard(t), labels: symbols.NewLabels()}
	out := g.lowerAuxLabel(instr(dialect.OpJumpPos, 0, labelArg("target")), dialect.Signature{})
	require.Len(t, out, 7)
	assert.Equal(t, dialect.OpDup, out[0].Op)
	assert.Equal(t, dialect.OpJumpNeg, out[1].Op)
	assert.Equal(t, dialect.OpJumpZero, out[2].Op)
	assert.Equal(t, dialect.OpJump, out[3].Op)
	assert.Equal(t, "target", out[3].LabelArg)
	assert.True(t, out[4].IsLabelDef)
	assert.Equal(t, dialect.OpDrop, out[5].Op)
	assert.True(t, out[6].IsLabelDef)
}

// TestLowerAuxLabelJumpNPos mirrors TestLowerAuxLabelJumpPos for the
// negated condition (jump unless positive).
func TestLowerAuxLabelJumpNPos(t *testing.T) {
	g := &gen{d: burghard(t), labels: symbols.NewLabels()}
	out := g.lowerAuxLabel(instr(dialect.OpJumpNPos, 0, labelArg("target")), dialect.Signature{})
	require.Len(t, out, 8)
	assert.Equal(t, dialect.OpDup, out[0].Op)
	assert.Equal(t, dialect.OpJumpNeg, out[1].Op)
	assert.Equal(t, dialect.OpJumpZero, out[2].Op)
	assert.Equal(t, "target", out[2].LabelArg)
	assert.Equal(t, dialect.OpJump, out[3].Op)
	assert.True(t, out[4].IsLabelDef)
	assert.Equal(t, dialect.OpDrop, out[5].Op)
	assert.Equal(t, dialect.OpJump, out[6].Op)
	assert.Equal(t, "target", out[6].LabelArg)
	assert.True(t, out[7].IsLabelDef)
}

// TestFlattenSynthesizesLabelDef checks that a colon-style label
// definition (no explicit Instruction in the CST) becomes an OpLabel
// instruction at signature index 0.
func TestFlattenSynthesizesLabelDef(t *testing.T) {
	lines := []cst.Line{{Label: &cst.LabelDef{NameToken: token.Token{Text: "loop"}}}}
	out := Flatten(lines)
	require.Len(t, out, 1)
	assert.Equal(t, dialect.OpLabel, out[0].Opcode)
	assert.Equal(t, 0, out[0].SignatureIndex)
	assert.Equal(t, "loop", out[0].Args.Items[0].Tokens[0].Text)
}

// TestWrapPalaiologos32 checks two's-complement wraparound into a
// 32-bit signed range.
func TestWrapPalaiologos32(t *testing.T) {
	g := &gen{d: &dialect.Dialect{Generation: dialect.Generation{IntegerBitWidth: 32}}}
	got := g.wrap(big.NewInt(1<<32 + 5))
	assert.Equal(t, big.NewInt(5), got)

	got = g.wrap(new(big.Int).Lsh(big.NewInt(1), 31)) // 2^31 wraps to -2^31
	assert.Equal(t, new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 31)), got)
}

func voliva(t *testing.T) *dialect.Dialect {
	t.Helper()
	d, ok := dialect.NewRegistry().Lookup(dialect.Voliva)
	require.True(t, ok)
	return d
}

// TestLowerPushStrReverseOrderNulTerminated exercises spec.md §8
// scenario 1: Burghard "pushs \"Hi\"" lowercases to "hi" and expands to
// push 0; push 'i'; push 'h' (NUL-terminated, reverse order so popping
// afterward yields the string forwards).
func TestLowerPushStrReverseOrderNulTerminated(t *testing.T) {
	g := &gen{d: burghard(t), labels: symbols.NewLabels()}
	out := g.lowerPushStr(instr(dialect.OpPushStr, 0, stringArg("Hi")))
	require.Len(t, out, 3)
	for _, l := range out {
		assert.Equal(t, dialect.OpPush, l.Op)
		assert.True(t, l.HasInt)
	}
	assert.Equal(t, big.NewInt(0), out[0].IntArg)
	assert.Equal(t, big.NewInt('i'), out[1].IntArg)
	assert.Equal(t, big.NewInt('h'), out[2].IntArg)
}

// TestGeneratePushStrEndToEndTokens checks the full token encoding of
// spec.md §8 scenario 1, including Burghard's ZeroPositiveSigned zero
// encoding ("push 0" => S S S L).
func TestGeneratePushStrEndToEndTokens(t *testing.T) {
	d := burghard(t)
	labels := symbols.NewLabels()
	instrs := []cst.Instruction{instr(dialect.OpPushStr, 0, stringArg("Hi"))}
	out, diags := Generate(instrs, labels, d)
	assert.Empty(t, diags)
	want := wstoken.Stream{wstoken.Space, wstoken.Space, wstoken.Space, wstoken.LineFeed}
	want = append(want, wstoken.Stream{wstoken.Space, wstoken.Space}.AppendInt(bitsMSBFirst(big.NewInt('i')), false, true)...)
	want = append(want, wstoken.Stream{wstoken.Space, wstoken.Space}.AppendInt(bitsMSBFirst(big.NewInt('h')), false, true)...)
	assert.Equal(t, want, out)
}

// TestLowerStoreStrPerByteSequenceWithTrailingBug exercises spec.md §8
// scenario 3: voliva's storestr desugars to dup/push/store/push 1/add
// per byte including its terminator, with the documented
// VolivaStorestrZeroTerm bug leaving a superfluous trailing
// push-1/add after the terminator write rather than stopping there.
func TestLowerStoreStrPerByteSequenceWithTrailingBug(t *testing.T) {
	g := &gen{d: voliva(t), labels: symbols.NewLabels()}
	out := g.lowerStoreStr(instr(dialect.OpStoreStr, 0, stringArg("A")))
	wantOps := []dialect.Opcode{
		dialect.OpDup, dialect.OpPush, dialect.OpStore, dialect.OpPush, dialect.OpAdd,
		dialect.OpDup, dialect.OpPush, dialect.OpStore, dialect.OpPush, dialect.OpAdd,
	}
	require.Len(t, out, len(wantOps))
	for i, op := range wantOps {
		assert.Equal(t, op, out[i].Op, "instr %d", i)
	}
	assert.Equal(t, big.NewInt('A'), out[1].IntArg)
	assert.Equal(t, big.NewInt(1), out[3].IntArg)
	assert.Equal(t, big.NewInt(0), out[6].IntArg)
	assert.Equal(t, big.NewInt(1), out[8].IntArg)
}

// TestLowerStoreStrWithoutBugStopsAtTerminator checks the corrected
// (non-buggy) behavior: the terminator write is not followed by a
// pointer advance.
func TestLowerStoreStrWithoutBugStopsAtTerminator(t *testing.T) {
	d := voliva(t)
	d.Bugs.VolivaStorestrZeroTerm = false
	g := &gen{d: d, labels: symbols.NewLabels()}
	out := g.lowerStoreStr(instr(dialect.OpStoreStr, 0, stringArg("A")))
	wantOps := []dialect.Opcode{
		dialect.OpDup, dialect.OpPush, dialect.OpStore, dialect.OpPush, dialect.OpAdd,
		dialect.OpDup, dialect.OpPush, dialect.OpStore,
	}
	require.Len(t, out, len(wantOps))
	for i, op := range wantOps {
		assert.Equal(t, op, out[i].Op, "instr %d", i)
	}
}

// TestLowerDirectArgVariableRoutesIntegerSubstitution checks that an
// ArgVariable arg whose substituted token carries an integer (the
// common case once a valueinteger-bound name is resolved) lowers
// through the integer path, not the label path.
func TestLowerDirectArgVariableRoutesIntegerSubstitution(t *testing.T) {
	g := &gen{d: voliva(t), labels: symbols.NewLabels()}
	sig := dialect.Signature{Opcode: dialect.OpPush, Args: []dialect.ArgKind{dialect.ArgVariable}, Rule: dialect.GenDirect}
	out := g.lowerDirect(instr(dialect.OpPush, 1, variableIntArg(7)), sig)
	require.Len(t, out, 1)
	assert.True(t, out[0].HasInt)
	assert.False(t, out[0].HasLabel)
	assert.Equal(t, big.NewInt(7), out[0].IntArg)
}

// TestLowerDirectArgVariableFallsBackToLabelWhenUnbound checks that an
// unresolved variable (substitution left a bare Word token) falls
// through to the label-like path rather than panicking or silently
// dropping the argument.
func TestLowerDirectArgVariableFallsBackToLabelWhenUnbound(t *testing.T) {
	g := &gen{d: voliva(t), labels: symbols.NewLabels()}
	sig := dialect.Signature{Opcode: dialect.OpPush, Args: []dialect.ArgKind{dialect.ArgVariable}, Rule: dialect.GenDirect}
	arg := cst.Arg{Kind: cst.ArgVariable, Tokens: []token.Token{{Kind: token.Word, Text: "unbound"}}}
	out := g.lowerDirect(instr(dialect.OpPush, 1, arg), sig)
	require.Len(t, out, 1)
	assert.False(t, out[0].HasInt)
	assert.True(t, out[0].HasLabel)
	assert.Equal(t, "unbound", out[0].LabelArg)
}

// TestArbitraryPrecisionLabelBypassesEmittedID checks that esotope-style
// label encoding reads the label name's own bytes rather than any
// assigned numeric id.
func TestArbitraryPrecisionLabelBypassesEmittedID(t *testing.T) {
	d := burghard(t)
	d.Generation.LabelNumbering = dialect.ArbitraryPrecisionBitsOfText
	labels := symbols.NewLabels()
	g := &gen{d: d, labels: labels}
	out := g.appendLabel(nil, "A") // 'A' == 0x41
	want := wstoken.Stream{}.AppendInt(bitsMSBFirst(big.NewInt(0x41)), false, true)
	assert.Equal(t, want, out)
}
