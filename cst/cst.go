// Package cst implements the dialect-agnostic concrete syntax tree of
// spec.md §3/§4.2: a lossless, round-trippable tree whose nodes keep
// back-links to their tokens and whose cross-references (label use →
// label def) are resolved by index into a side table, never by cycles
// in the tree.
//
// Grounded on the teacher's sqlparser/dom.go Document/Create/Declare
// shape (a flat DOM of position-carrying nodes with a WithoutPos
// projection for assertions), generalized from SQL statements to
// Whitespace-assembly lines/instructions/args.
package cst

import (
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/token"
)

// Separated is the generic container of spec.md §4.2: an item list with
// interleaved separators, so that a dialect where a bare integer stands
// for push (Palaiologos, no separator at all) and a dialect with
// comma-separated args (wconrad-style) fit the same shape.
type Separated[Item any, Sep any] struct {
	Items []Item
	// Seps has len(Items)-1 entries when non-empty, one between each
	// adjacent pair of Items.
	Seps []Sep
}

// SeparatorKind enumerates the punctuation tokens that may separate
// items in a Separated list.
type SeparatorKind int

const (
	SepNone SeparatorKind = iota
	SepComma
	SepSpace
)

// ArgKind mirrors dialect.ArgKind but is restated here as the CST's own
// type; the parser package is responsible for keeping them in lockstep.
type ArgKind int

const (
	ArgInteger ArgKind = iota + 1
	ArgLabel
	ArgString
	ArgVariable
	ArgNone
)

// Arg is one parsed instruction argument: its kind and the token(s) it
// spans. Most args are a single token; a signed integer with detached
// sign punctuation may span two.
type Arg struct {
	Kind   ArgKind
	Tokens []token.Token
	Span   token.Span
}

// LabelDef is a label definition site: the name token and, for
// colon-style dialects, the colon punctuation token.
type LabelDef struct {
	NameToken  token.Token
	Colon      *token.Token // nil when the dialect uses a prefix sigil instead
	Span       token.Span
}

// SignatureIndexMacroCall marks an Instruction whose mnemonic did not
// match the dialect's mnemonic table but the dialect supports macros: an
// unresolved macro-call candidate, left for the preprocessor to expand
// against symbols.Macros or reject as UnknownMnemonic.
const SignatureIndexMacroCall = -2

// SignatureIndexRepCall marks an Instruction recognized as the
// dialect's RepMnemonic repeat-statement (Palaiologos "rep K X"): Args
// holds the repeat count followed by the nested mnemonic's raw tokens,
// left for the preprocessor to re-parse and replicate.
const SignatureIndexRepCall = -3

// Instruction is one parsed mnemonic-and-arguments line element.
// SignatureIndex identifies which of the dialect's overloads for this
// mnemonic was matched (spec.md §4.2: "the signature — not the mnemonic
// alone — drives generation"); -1 when no signature matched (an error
// node carries the diagnostic instead).
type Instruction struct {
	MnemonicToken  *token.Token // nil for label-only or directive-only lines
	Opcode         dialect.Opcode
	SignatureIndex int // index into dialect.Dialect.Signatures[Opcode]; -1 when unmatched
	Args           Separated[Arg, SeparatorKind]
	Span           token.Span
}

// PreprocessorKind enumerates the preprocessor directive shapes a Line
// may carry instead of an Instruction, per spec.md §4.7.
type PreprocessorKind int

const (
	PpOption PreprocessorKind = iota + 1
	PpIfOption
	PpElseIfOption
	PpElseOption
	PpEndOption
	PpInclude
	PpValueInteger
	PpValueString
	PpMacroDef
	PpMacroEnd
	PpMacroCall
)

// Preprocessor is a parsed preprocessor directive line.
type Preprocessor struct {
	Directive PreprocessorKind
	Keyword   token.Token
	Body      []token.Token
	Span      token.Span
}

// ErrorNode wraps any node kind (held as an any so Error can decorate a
// Line, Instruction, Arg, or LabelDef alike) together with the error
// kinds attributed to it, satisfying spec.md invariant 4: "a node
// carries at least one error kind iff any of its descendants do, except
// where an error is explicitly local."
type ErrorNode struct {
	Node  any
	Kinds []string // diag.Kind names, kept as strings; cst does not import diag
	Span  token.Span
}

// Line is one logical source line (or, for punctuation-terminated
// dialects such as respace, one instruction-separated segment): leading
// and trailing horizontal whitespace/comment tokens, the parsed content,
// and the terminator token that ended it (absent on the final line of a
// file lacking a trailing newline).
type Line struct {
	PrefixWS    []token.Token
	Label       *LabelDef
	Instruction *Instruction
	Directive   *Preprocessor
	Comment     *token.Token
	SuffixWS    []token.Token
	Terminator  *token.Token
	Errors      []ErrorNode
	Span        token.Span
}

// Program is the root CST node: the full parsed source, per spec.md §3
// "Program(lines)".
type Program struct {
	Lines []Line
	Span  token.Span
}

// ComputedSpan returns the union of every line's span, satisfying invariant 2
// (span containment) at the root.
func (p Program) ComputedSpan() token.Span {
	if len(p.Lines) == 0 {
		return token.Span{}
	}
	s := p.Lines[0].Span
	for _, l := range p.Lines[1:] {
		s = s.Union(l.Span)
	}
	return s
}

// WithoutPos returns a copy of Program with every Span zeroed and every
// token's Span zeroed, for use in test assertions that compare shape
// without positions — mirrors the teacher's Document.WithoutPos.
func (p Program) WithoutPos() Program {
	lines := make([]Line, len(p.Lines))
	for i, l := range p.Lines {
		lines[i] = l.withoutPos()
	}
	return Program{Lines: lines}
}

func (l Line) withoutPos() Line {
	out := Line{}
	for _, t := range l.PrefixWS {
		out.PrefixWS = append(out.PrefixWS, t.WithoutPos())
	}
	if l.Label != nil {
		ld := l.Label.withoutPos()
		out.Label = &ld
	}
	if l.Instruction != nil {
		ins := l.Instruction.withoutPos()
		out.Instruction = &ins
	}
	if l.Directive != nil {
		dir := l.Directive.withoutPos()
		out.Directive = &dir
	}
	if l.Comment != nil {
		c := l.Comment.WithoutPos()
		out.Comment = &c
	}
	for _, t := range l.SuffixWS {
		out.SuffixWS = append(out.SuffixWS, t.WithoutPos())
	}
	if l.Terminator != nil {
		t := l.Terminator.WithoutPos()
		out.Terminator = &t
	}
	for _, e := range l.Errors {
		out.Errors = append(out.Errors, ErrorNode{Kinds: e.Kinds})
	}
	return out
}

func (ld LabelDef) withoutPos() LabelDef {
	out := LabelDef{NameToken: ld.NameToken.WithoutPos()}
	if ld.Colon != nil {
		c := ld.Colon.WithoutPos()
		out.Colon = &c
	}
	return out
}

func (ins Instruction) withoutPos() Instruction {
	out := Instruction{Opcode: ins.Opcode, SignatureIndex: ins.SignatureIndex}
	if ins.MnemonicToken != nil {
		t := ins.MnemonicToken.WithoutPos()
		out.MnemonicToken = &t
	}
	out.Args.Seps = ins.Args.Seps
	for _, a := range ins.Args.Items {
		out.Args.Items = append(out.Args.Items, a.withoutPos())
	}
	return out
}

func (a Arg) withoutPos() Arg {
	out := Arg{Kind: a.Kind}
	for _, t := range a.Tokens {
		out.Tokens = append(out.Tokens, t.WithoutPos())
	}
	return out
}

func (p Preprocessor) withoutPos() Preprocessor {
	out := Preprocessor{Directive: p.Directive, Keyword: p.Keyword.WithoutPos()}
	for _, t := range p.Body {
		out.Body = append(out.Body, t.WithoutPos())
	}
	return out
}
