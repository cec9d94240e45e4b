// Package preprocessor implements spec.md §4.7: option assembly,
// include resolution, variable substitution and Whitelips-style macro
// expansion, run after parsing and before generation on dialects whose
// PreprocessorStyle enables them.
//
// Grounded on the teacher's preprocess.go Batch/line-correction
// bookkeeping (splicing generated text back to source positions) for
// the include-splice shape, and sqldocument/topological_sort.go's
// visiting/visited DFS for include-cycle detection (IncludeCycle is the
// same shape as CycleError, generalized from a dependency graph of
// Creates to a stack of in-progress include names).
package preprocessor

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/omniwsa/omniwsa/cst"
	"github.com/omniwsa/omniwsa/diag"
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/symbols"
	"github.com/omniwsa/omniwsa/token"
)

// SourceProvider resolves an include name to source bytes, per spec.md
// §6 "the preprocessor asks the external source provider for the named
// file". name is as written in the include directive; the dialect's
// IncludeRelativeTo is not passed on, so the provider alone decides what
// a name is relative to.
type SourceProvider interface {
	Read(name string) ([]byte, error)
}

// ParseFunc re-enters the parser for included source, supplied by the
// compile package to avoid preprocessor importing parser (which would
// create a cycle, since parser will eventually want to invoke the
// preprocessor between parse and generate for a single Compile call).
type ParseFunc func(src []byte, d *dialect.Dialect, file string) (cst.Program, *symbols.Labels, *symbols.Variables, *symbols.Macros, *symbols.Options, diag.List)

// Unit bundles one source unit's parse products, mirroring parser.Result
// without importing the parser package.
type Unit struct {
	Program   cst.Program
	Labels    *symbols.Labels
	Variables *symbols.Variables
	Macros    *symbols.Macros
	Options   *symbols.Options
}

// Preprocess runs every enabled capability over u, returning the
// expanded program, a Labels table rebuilt from that expanded program,
// and accumulated diagnostics. Labels is rebuilt rather than reused
// from u.Labels because macro expansion mints fresh per-call label
// instances (see substituteMacroLine); the generator must number and
// resolve against the post-expansion names, not the pre-expansion ones.
func Preprocess(u Unit, d *dialect.Dialect, sp SourceProvider, parse ParseFunc) (cst.Program, *symbols.Labels, diag.List) {
	pp := &state{d: d, sp: sp, parse: parse, labels: u.Labels, vars: u.Variables, macros: u.Macros, opts: u.Options, expandedIncludes: map[string]bool{}}
	if d.Preprocessor.Macros {
		pp.collectMacros(u.Program.Lines)
	}
	lines := pp.expandLines(u.Program.Lines, nil, 0)
	lines = pp.substituteVariables(lines)
	prog := cst.Program{Lines: lines}
	prog.Span = prog.ComputedSpan()
	return prog, rebuildLabels(lines), pp.diags
}

// rebuildLabels re-derives the label side table from the final,
// post-expansion line stream, in first-appearance order.
func rebuildLabels(lines []cst.Line) *symbols.Labels {
	labels := symbols.NewLabels()
	for _, l := range lines {
		if l.Label != nil {
			labels.Define(l.Label.NameToken.Text, l.Label.NameToken.Span, true)
		}
		if l.Instruction == nil {
			continue
		}
		for _, arg := range l.Instruction.Args.Items {
			if arg.Kind != cst.ArgLabel || len(arg.Tokens) == 0 {
				continue
			}
			labels.Reference(arg.Tokens[0].Text, arg.Tokens[0].Span)
		}
	}
	return labels
}

type state struct {
	d      *dialect.Dialect
	sp     SourceProvider
	parse  ParseFunc
	labels *symbols.Labels
	vars   *symbols.Variables
	macros *symbols.Macros
	opts   *symbols.Options

	expandedIncludes map[string]bool
	expansionCount   int64
	diags            diag.List
}

func (s *state) addError(kind diag.Kind, msg string) {
	s.diags = append(s.diags, diag.New(diag.Span{}, kind, msg))
}

// expandLines resolves option blocks, includes and macro calls.
// includeStack tracks in-progress include names (visiting, in
// topological_sort.go terms) so a cycle is caught rather than looping
// forever; macroDepth tracks macro-expansion nesting for MaxMacroDepth.
func (s *state) expandLines(lines []cst.Line, includeStack []string, macroDepth int) []cst.Line {
	var out []cst.Line
	i := 0
	for i < len(lines) {
		line := lines[i]
		switch {
		case line.Directive != nil && line.Directive.Directive == cst.PpIfOption:
			block, consumed := s.collectOptionBlock(lines[i:])
			out = append(out, s.expandLines(s.selectOptionBranch(block), includeStack, macroDepth)...)
			i += consumed
			continue
		case line.Directive != nil && line.Directive.Directive == cst.PpInclude:
			if s.d.Preprocessor.Includes {
				out = append(out, s.expandInclude(line, includeStack, macroDepth)...)
			} else {
				out = append(out, line)
			}
			i++
			continue
		case line.Directive != nil && line.Directive.Directive == cst.PpMacroDef:
			// body already captured by collectMacros; skip through to the
			// matching endmacro so the definition itself emits nothing.
			j := i + 1
			for j < len(lines) && !(lines[j].Directive != nil && lines[j].Directive.Directive == cst.PpMacroEnd) {
				j++
			}
			i = j + 1
			continue
		case line.Instruction != nil && line.Instruction.SignatureIndex == cst.SignatureIndexMacroCall:
			out = append(out, s.expandMacroCall(line, includeStack, macroDepth)...)
			i++
			continue
		case line.Instruction != nil && line.Instruction.SignatureIndex == cst.SignatureIndexRepCall:
			out = append(out, s.expandRepCall(line, includeStack, macroDepth)...)
			i++
			continue
		default:
			out = append(out, line)
			i++
		}
	}
	return out
}

// optionBlock is one ifoption/elseifoption*/elseoption?/endoption group.
type optionBlock struct {
	conds  []string // the option name guarding each branch ("" for the final else)
	bodies [][]cst.Line
}

func (s *state) collectOptionBlock(lines []cst.Line) (optionBlock, int) {
	var block optionBlock
	i := 0
	cond := firstWordOf(lines[0].Directive.Body)
	block.conds = append(block.conds, cond)
	i++
	var cur []cst.Line
	for i < len(lines) {
		d := lines[i].Directive
		if d != nil && d.Directive == cst.PpElseIfOption {
			block.bodies = append(block.bodies, cur)
			cur = nil
			block.conds = append(block.conds, firstWordOf(d.Body))
			i++
			continue
		}
		if d != nil && d.Directive == cst.PpElseOption {
			block.bodies = append(block.bodies, cur)
			cur = nil
			block.conds = append(block.conds, "")
			i++
			continue
		}
		if d != nil && d.Directive == cst.PpEndOption {
			block.bodies = append(block.bodies, cur)
			i++
			return block, i
		}
		cur = append(cur, lines[i])
		i++
	}
	// unterminated ifoption: treat everything collected as the sole branch.
	block.bodies = append(block.bodies, cur)
	return block, i
}

func (s *state) selectOptionBranch(block optionBlock) []cst.Line {
	for i, cond := range block.conds {
		if cond == "" || s.opts.Get(cond) {
			if i < len(block.bodies) {
				return block.bodies[i]
			}
			return nil
		}
	}
	return nil
}

func firstWordOf(toks []token.Token) string {
	for _, t := range toks {
		if t.Kind == token.Word {
			return t.Text
		}
	}
	return ""
}

func (s *state) expandInclude(line cst.Line, includeStack []string, macroDepth int) []cst.Line {
	// the name is the first run of non-space tokens, so a name such as
	// "lib.wsa" that scans as several tokens is kept whole.
	var nb strings.Builder
	for _, t := range line.Directive.Body {
		if t.Kind == token.Space {
			if nb.Len() > 0 {
				break
			}
			continue
		}
		nb.WriteString(t.Text)
	}
	name := nb.String()
	if name == "" {
		s.addError(diag.IncludeNotFound, "include directive with no file name")
		return nil
	}
	for _, n := range includeStack {
		if n == name {
			s.addError(diag.IncludeCycle, "include cycle detected: "+name)
			return nil
		}
	}
	if s.expandedIncludes[name] {
		// deduplication: a given logical include name is expanded at
		// most once per compilation unit, per spec.md §4.7.
		return nil
	}
	s.expandedIncludes[name] = true

	src, err := s.sp.Read(name)
	if err != nil {
		s.addError(diag.IncludeNotFound, "include not found: "+name+": "+err.Error())
		return nil
	}
	prog, labels, vars, macros, opts, diags := s.parse(src, s.d, name)
	s.diags = append(s.diags, diags...)
	s.mergeSymbols(labels, vars, macros, opts)
	if s.d.Preprocessor.Macros {
		// re-collect from this file's own lines: the freshly parsed macros
		// table only has Params (the parser never sees past its own EOF),
		// so fill in Lines the same way the top-level unit does.
		s.collectMacros(prog.Lines)
	}
	return s.expandLines(prog.Lines, append(includeStack, name), macroDepth)
}

func (s *state) mergeSymbols(labels *symbols.Labels, vars *symbols.Variables, macros *symbols.Macros, opts *symbols.Options) {
	for _, name := range labels.Names() {
		e := labels.Get(name)
		if e.DefinedSpan != nil {
			s.labels.Define(name, *e.DefinedSpan, false)
		}
		for _, ref := range e.ReferenceSpans {
			s.labels.Reference(name, ref)
		}
	}
	for _, name := range vars.Names() {
		v, _ := vars.Get(name)
		s.vars.Set(name, v)
	}
	for _, name := range macros.Names() {
		m, _ := macros.Get(name)
		s.macros.Define(name, m, true)
	}
}

// collectMacros scans lines (without resolving ifoption branches or
// following includes — both are handled separately) for macro
// definitions, storing each as a symbols.MacroDef carrying its raw body
// lines, per spec.md §4.7's Whitelips-style macro system.
func (s *state) collectMacros(lines []cst.Line) {
	i := 0
	for i < len(lines) {
		d := lines[i].Directive
		if d == nil || d.Directive != cst.PpMacroDef {
			i++
			continue
		}
		words := macroWords(d.Body)
		var name string
		var params []string
		if len(words) > 0 {
			name, params = words[0], words[1:]
		}
		var body []cst.Line
		j := i + 1
		for j < len(lines) {
			if lines[j].Directive != nil && lines[j].Directive.Directive == cst.PpMacroEnd {
				break
			}
			body = append(body, lines[j])
			j++
		}
		if name != "" {
			s.macros.Define(name, symbols.MacroDef{Params: params, Lines: body}, true)
		}
		i = j + 1
	}
}

func macroWords(toks []token.Token) []string {
	var out []string
	for _, t := range toks {
		if t.Kind == token.Word {
			out = append(out, t.Text)
		}
	}
	return out
}

// expandMacroCall substitutes line's macro-call instruction with its
// macro's body, with formal parameters bound to the call's argument
// tokens positionally, then recursively expands the substituted lines
// (so a macro body that itself calls a macro is handled), enforcing
// d.Preprocessor.MaxMacroDepth.
func (s *state) expandMacroCall(line cst.Line, includeStack []string, macroDepth int) []cst.Line {
	ins := line.Instruction
	name := ins.MnemonicToken.Text
	def, ok := s.macros.Get(name)
	if !ok {
		s.addError(diag.UnknownMnemonic, "unknown mnemonic or macro: "+name)
		return nil
	}
	if macroDepth >= s.d.Preprocessor.MaxMacroDepth {
		s.addError(diag.MacroDepthExceeded, "macro expansion depth exceeded calling "+name)
		return nil
	}
	s.expansionCount++
	suffix := fmt.Sprintf("__%d", s.expansionCount)

	params := map[string][]token.Token{}
	for i, p := range def.Params {
		if i < len(ins.Args.Items) {
			params[p] = ins.Args.Items[i].Tokens
		}
	}

	body := make([]cst.Line, len(def.Lines))
	for i, bl := range def.Lines {
		body[i] = substituteMacroLine(bl, params, suffix)
	}
	return s.expandLines(body, includeStack, macroDepth+1)
}

// substituteMacroLine replaces Word tokens in l's label and instruction
// arguments that name a formal parameter with the bound argument token,
// and renames dialect-local labels (by convention, names starting with
// ".") with a per-expansion suffix so repeated or recursive calls don't
// collide on the same local label name.
func substituteMacroLine(l cst.Line, params map[string][]token.Token, suffix string) cst.Line {
	out := l
	if l.Label != nil {
		ld := *l.Label
		ld.NameToken = substituteToken(ld.NameToken, params, suffix)
		out.Label = &ld
	}
	if l.Instruction != nil {
		ins := *l.Instruction
		items := make([]cst.Arg, len(ins.Args.Items))
		for i, item := range ins.Args.Items {
			toks := make([]token.Token, len(item.Tokens))
			for ti, t := range item.Tokens {
				toks[ti] = substituteToken(t, params, suffix)
			}
			item.Tokens = toks
			if len(toks) > 0 {
				item.Kind = argKindFor(toks[0])
			}
			items[i] = item
		}
		ins.Args.Items = items
		out.Instruction = &ins
	}
	return out
}

func substituteToken(t token.Token, params map[string][]token.Token, suffix string) token.Token {
	if t.Kind != token.Word {
		return t
	}
	if repl, ok := params[t.Text]; ok && len(repl) > 0 {
		r := repl[0]
		r.Span = token.Span{}
		return r
	}
	if strings.HasPrefix(t.Text, ".") {
		nt := t
		nt.Text = t.Text + suffix
		nt.Span = token.Span{}
		return nt
	}
	return t
}

func argKindFor(t token.Token) cst.ArgKind {
	switch t.Kind {
	case token.IntegerLit:
		return cst.ArgInteger
	case token.StringLit, token.CharLit:
		return cst.ArgString
	default:
		return cst.ArgLabel
	}
}

// expandRepCall re-lexes a Palaiologos-style "rep K X" statement's
// nested mnemonic as a standalone instruction (via s.parse, the same
// re-entry hook used for includes) and replicates it K times, per
// spec.md §8 scenario 2.
func (s *state) expandRepCall(line cst.Line, includeStack []string, macroDepth int) []cst.Line {
	ins := line.Instruction
	if len(ins.Args.Items) < 2 {
		return nil
	}
	countTok := ins.Args.Items[0].Tokens[0]
	count, err := strconv.Atoi(countTok.Text)
	if err != nil || count < 0 {
		s.addError(diag.BadType, "rep count is not a non-negative integer: "+countTok.Text)
		return nil
	}

	var words []string
	for _, arg := range ins.Args.Items[1:] {
		for _, t := range arg.Tokens {
			words = append(words, t.Text)
		}
	}
	nestedSrc := strings.Join(words, " ")

	prog, _, _, _, _, diags := s.parse([]byte(nestedSrc), s.d, "<rep>")
	s.diags = append(s.diags, diags...)
	if len(prog.Lines) == 0 || prog.Lines[0].Instruction == nil {
		s.addError(diag.UnexpectedToken, "rep: could not parse nested instruction: "+nestedSrc)
		return nil
	}
	nested := *prog.Lines[0].Instruction

	out := make([]cst.Line, 0, count)
	for n := 0; n < count; n++ {
		cp := nested
		out = append(out, cst.Line{Instruction: &cp, Span: cp.Span})
	}
	return s.expandLines(out, includeStack, macroDepth)
}

// substituteVariables replaces ArgVariable argument tokens with a
// synthesized token carrying the variable's currently-bound value text,
// per spec.md §4.7 "variables are substituted positionally at argument
// sites." Synthesized tokens carry no source span, per the same section.
func (s *state) substituteVariables(lines []cst.Line) []cst.Line {
	for li := range lines {
		ins := lines[li].Instruction
		if ins == nil {
			continue
		}
		for ai := range ins.Args.Items {
			arg := &ins.Args.Items[ai]
			if arg.Kind != cst.ArgVariable || len(arg.Tokens) == 0 {
				continue
			}
			name := arg.Tokens[0].Text
			val, ok := s.vars.Get(name)
			if !ok {
				s.addError(diag.UndefinedVariable, "undefined variable: "+name)
				continue
			}
			arg.Tokens = []token.Token{synthesizeValueToken(val)}
		}
	}
	return lines
}

func synthesizeValueToken(v symbols.Value) token.Token {
	if v.Kind == symbols.ValueStr {
		return token.Token{
			Kind: token.StringLit,
			Text: v.Str,
			String: &token.StringLiteral{
				Closed: true,
				Chunks: []token.Chunk{{Kind: token.ChunkLiteral, Literal: v.Str, Value: v.Str}},
			},
		}
	}
	n := v.Int
	if n == nil {
		n = big.NewInt(0)
	}
	return token.Token{
		Kind: token.IntegerLit,
		Text: n.String(),
		Integer: &token.IntegerLiteral{
			Negative: n.Sign() < 0,
			Digits:   n.String(),
			Value:    &token.BigIntPlaceholder{Words: magnitudeWords32(n)},
		},
	}
}

// magnitudeWords32 splits v's absolute value into little-endian 32-bit
// words, mirroring the scanner's own conversion of a parsed literal's
// magnitude into token.BigIntPlaceholder's storage shape.
func magnitudeWords32(v *big.Int) []uint32 {
	abs := new(big.Int).Abs(v)
	if abs.Sign() == 0 {
		return nil
	}
	mask := big.NewInt(1<<32 - 1)
	tmp := new(big.Int).Set(abs)
	var words []uint32
	for tmp.Sign() != 0 {
		word := new(big.Int).And(tmp, mask)
		words = append(words, uint32(word.Uint64()))
		tmp.Rsh(tmp, 32)
	}
	return words
}
