// Package parser implements the dialect parser framework of spec.md
// §4.5: given a token stream and a dialect, produce a CST plus the
// label/variable/macro/option side tables of symbols.
//
// Grounded on the teacher's sqlparser/parser.go recursive-descent
// convention ("functions typically consume after the keyword that
// triggered their invocation... on return, positioned at the token that
// starts the next statement") and dom.go's Document.Parse driving loop,
// generalized from SQL batches to Whitespace-assembly lines.
package parser

import (
	"math/big"
	"strings"

	"github.com/omniwsa/omniwsa/cst"
	"github.com/omniwsa/omniwsa/diag"
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/scanner"
	"github.com/omniwsa/omniwsa/symbols"
	"github.com/omniwsa/omniwsa/token"
)

// Result is everything parsing a single source unit produces.
type Result struct {
	Program   cst.Program
	Labels    *symbols.Labels
	Variables *symbols.Variables
	Macros    *symbols.Macros
	Options   *symbols.Options
	Diags     diag.List
}

// Parse scans src under d's lexical config and parses the resulting
// token stream into a CST, per d's parse style (spec.md §4.5).
func Parse(src []byte, d *dialect.Dialect, file string) Result {
	toks := scanner.Scan(src, d.Lex)
	li := token.NewLineIndex(file, src)
	p := &parser{
		toks:      toks,
		d:         d,
		li:        li,
		labels:    symbols.NewLabels(),
		variables: symbols.NewVariables(),
		macros:    symbols.NewMacros(),
		options:   symbols.NewOptions(),
	}
	prog := p.parseProgram()
	return Result{
		Program:   prog,
		Labels:    p.labels,
		Variables: p.variables,
		Macros:    p.macros,
		Options:   p.options,
		Diags:     p.diags,
	}
}

type parser struct {
	toks []token.Token
	pos  int
	d    *dialect.Dialect
	li   *token.LineIndex

	labels    *symbols.Labels
	variables *symbols.Variables
	macros    *symbols.Macros
	options   *symbols.Options
	diags     diag.List
}

func (p *parser) peek() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.Eof}
	}
	return p.toks[p.pos]
}

func (p *parser) bump() token.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) atEof() bool { return p.peek().Kind == token.Eof }

func (p *parser) addError(span token.Span, kind diag.Kind, msg string) {
	p.diags = append(p.diags, diag.New(diagSpan(p.li, span), kind, msg))
}

func diagSpan(li *token.LineIndex, s token.Span) diag.Span {
	sp := li.Span(s)
	return diag.Span{Start: s.Start, End: s.End, Pos: diag.Pos{File: sp.StartPos.File, Line: sp.StartPos.Line, Col: sp.StartPos.Col}}
}

// parseProgram splits the token stream into lines (line-terminated
// dialects) or separator-delimited segments (punctuation-terminated
// dialects) and parses each independently, resyncing at the next
// delimiter on error, per spec.md §4.5.
func (p *parser) parseProgram() cst.Program {
	var lines []cst.Line
	for !p.atEof() {
		lines = append(lines, p.parseLine())
	}
	prog := cst.Program{Lines: lines}
	prog.Span = prog.ComputedSpan()
	return prog
}

// parseLine consumes one line-terminated unit: leading whitespace and
// comments, then at most one of {label def, preprocessor directive,
// instruction}, then trailing whitespace/comment and the terminator.
func (p *parser) parseLine() cst.Line {
	var line cst.Line
	start := p.pos

	for isWsOrComment(p.peek()) {
		t := p.bump()
		if isComment(t) {
			tt := t
			line.Comment = &tt
		} else {
			line.PrefixWS = append(line.PrefixWS, t)
		}
	}

	if p.atEof() || isTerminator(p.peek(), p.d) {
		line.Span = p.spanSince(start)
		p.consumeTerminatorAndTrailing(&line)
		return line
	}

	if label, ok := p.tryParseLabelDef(); ok {
		line.Label = &label
	}

	for isWsOrComment(p.peek()) && !p.atEof() && !isTerminator(p.peek(), p.d) {
		t := p.bump()
		if isComment(t) {
			tt := t
			line.Comment = &tt
		} else {
			line.PrefixWS = append(line.PrefixWS, t)
		}
	}

	if !p.atEof() && !isTerminator(p.peek(), p.d) {
		if pp, ok := p.tryParsePreprocessor(); ok {
			line.Directive = &pp
		} else if line.Label == nil || !p.atEof() && !isTerminator(p.peek(), p.d) {
			if ins, ok := p.tryParseInstruction(); ok {
				line.Instruction = &ins
			}
		}
	}

	for isWsOrComment(p.peek()) && !p.atEof() && !isTerminator(p.peek(), p.d) {
		t := p.bump()
		if isComment(t) {
			tt := t
			line.Comment = &tt
		} else {
			line.SuffixWS = append(line.SuffixWS, t)
		}
	}

	// resync: if anything unexpected remains before the terminator, tag
	// it Skipped and record an error, rather than losing the bytes.
	for !p.atEof() && !isTerminator(p.peek(), p.d) {
		skipped := p.bump()
		skipped.Kind = token.Skipped
		line.SuffixWS = append(line.SuffixWS, skipped)
		p.addError(skipped.Span, diag.UnexpectedToken, "unexpected token, skipped")
	}

	line.Span = p.spanSince(start)
	p.consumeTerminatorAndTrailing(&line)
	return line
}

func (p *parser) consumeTerminatorAndTrailing(line *cst.Line) {
	if !p.atEof() && isTerminator(p.peek(), p.d) {
		t := p.bump()
		line.Terminator = &t
		line.Span = line.Span.Union(t.Span)
	}
}

func (p *parser) spanSince(start int) token.Span {
	if start >= len(p.toks) {
		if len(p.toks) == 0 {
			return token.Span{}
		}
		return p.toks[len(p.toks)-1].Span
	}
	end := p.pos
	if end == start {
		return p.toks[start].Span
	}
	return p.toks[start].Span.Union(p.toks[end-1].Span)
}

func isWsOrComment(t token.Token) bool {
	switch t.Kind {
	case token.Space, token.LineComment, token.BlockComment, token.NestedComment:
		return true
	}
	return false
}

func isComment(t token.Token) bool {
	switch t.Kind {
	case token.LineComment, token.BlockComment, token.NestedComment:
		return true
	}
	return false
}

func isTerminator(t token.Token, d *dialect.Dialect) bool {
	if t.Kind == token.Eof {
		return true
	}
	switch d.ParseStyle.Kind {
	case dialect.PunctuationTerminated:
		if t.Kind == token.Punct && d.ParseStyle.Separators[punctByte(t)] {
			return true
		}
		return t.Kind == token.LineTerm
	default: // LineTerminated
		return t.Kind == token.LineTerm
	}
}

func punctByte(t token.Token) byte {
	if len(t.Text) == 0 {
		return 0
	}
	return t.Text[0]
}

// tryParseLabelDef recognizes both colon-style ("name:") and sigil-style
// (Palaiologos "@name") label definitions.
func (p *parser) tryParseLabelDef() (cst.LabelDef, bool) {
	style := p.d.ParseStyle
	if style.LabelPrefix != 0 {
		t := p.peek()
		if t.Kind == token.Punct && punctByte(t) == style.LabelPrefix {
			p.bump()
			name := p.peek()
			if name.Kind != token.Word {
				p.addError(t.Span, diag.UnexpectedToken, "expected label name after prefix")
				return cst.LabelDef{}, false
			}
			p.bump()
			if !p.labels.Define(name.Text, name.Span, false) {
				p.addError(name.Span, diag.DuplicateLabel, "duplicate label definition: "+name.Text)
			}
			return cst.LabelDef{NameToken: name, Span: t.Span.Union(name.Span)}, true
		}
		return cst.LabelDef{}, false
	}
	if style.LabelColon {
		if p.peek().Kind != token.Word {
			return cst.LabelDef{}, false
		}
		save := p.pos
		name := p.bump()
		if p.peek().Kind == token.Punct && punctByte(p.peek()) == ':' {
			colon := p.bump()
			if !p.labels.Define(name.Text, name.Span, false) {
				p.addError(name.Span, diag.DuplicateLabel, "duplicate label definition: "+name.Text)
			}
			return cst.LabelDef{NameToken: name, Colon: &colon, Span: name.Span.Union(colon.Span)}, true
		}
		p.pos = save // not a label def after all; let instruction parsing see the word
		return cst.LabelDef{}, false
	}
	return cst.LabelDef{}, false
}

// preprocessorKeywords maps directive keyword text to its Kind, shared
// across every dialect; a dialect that does not enable a given
// PreprocessorStyle capability simply never matches here in practice
// since its mnemonic table won't alias these names to opcodes.
var preprocessorKeywords = map[string]cst.PreprocessorKind{
	"option":       cst.PpOption,
	"ifoption":     cst.PpIfOption,
	"elseifoption": cst.PpElseIfOption,
	"elseoption":   cst.PpElseOption,
	"endoption":    cst.PpEndOption,
	"include":      cst.PpInclude,
	"valueinteger": cst.PpValueInteger,
	"valuestring":  cst.PpValueString,
	"macro":        cst.PpMacroDef,
	"endmacro":     cst.PpMacroEnd,
}

func (p *parser) tryParsePreprocessor() (cst.Preprocessor, bool) {
	t := p.peek()
	if t.Kind != token.Word {
		return cst.Preprocessor{}, false
	}
	kw := strings.ToLower(t.Text)
	kind, ok := preprocessorKeywords[kw]
	if !ok {
		return cst.Preprocessor{}, false
	}
	switch kind {
	case cst.PpOption, cst.PpIfOption, cst.PpElseIfOption:
		if !p.d.Preprocessor.Options {
			return cst.Preprocessor{}, false
		}
	case cst.PpElseOption, cst.PpEndOption:
		if !p.d.Preprocessor.Options {
			return cst.Preprocessor{}, false
		}
	case cst.PpInclude:
		if !p.d.Preprocessor.Includes {
			return cst.Preprocessor{}, false
		}
	case cst.PpValueInteger, cst.PpValueString:
		if !p.d.Preprocessor.Variables {
			return cst.Preprocessor{}, false
		}
	case cst.PpMacroDef, cst.PpMacroEnd:
		if !p.d.Preprocessor.Macros {
			return cst.Preprocessor{}, false
		}
	}
	keyword := p.bump()
	var body []token.Token
	for !p.atEof() && !isTerminator(p.peek(), p.d) {
		tk := p.peek()
		if isComment(tk) {
			break
		}
		body = append(body, p.bump())
	}
	span := keyword.Span
	if len(body) > 0 {
		span = span.Union(body[len(body)-1].Span)
	}

	switch kind {
	case cst.PpOption:
		if name := firstWord(body); name != "" {
			p.options.Set(name, true)
		}
	case cst.PpValueInteger:
		if name := firstWord(body); name != "" {
			p.variables.Set(name, symbols.Value{Kind: symbols.ValueInt, Int: firstIntegerValue(body)})
		}
	case cst.PpValueString:
		if name := firstWord(body); name != "" {
			p.variables.Set(name, symbols.Value{Kind: symbols.ValueStr, Str: firstStringValue(body)})
		}
	case cst.PpMacroDef:
		words := wordsOf(body)
		if len(words) >= 1 {
			p.macros.Define(words[0], symbols.MacroDef{Params: words[1:]}, true)
		}
	}

	return cst.Preprocessor{Directive: kind, Keyword: keyword, Body: body, Span: span}, true
}

func firstWord(toks []token.Token) string {
	for _, t := range toks {
		if t.Kind == token.Word {
			return t.Text
		}
	}
	return ""
}

func wordsOf(toks []token.Token) []string {
	var out []string
	for _, t := range toks {
		if t.Kind == token.Word {
			out = append(out, t.Text)
		}
	}
	return out
}

// firstIntegerValue finds the first integer literal in toks (the value
// half of "valueinteger name <int>") and returns its magnitude and
// sign as a *big.Int, reconstructed from the token's little-endian word
// placeholder the same way the generator recovers an operand's value.
// A directive body with no literal yields zero, matching the "0"
// synthesizeValueToken previously always produced, but now only as a
// genuine fallback rather than the only possible outcome.
func firstIntegerValue(toks []token.Token) *big.Int {
	for _, t := range toks {
		if t.Kind != token.IntegerLit || t.Integer == nil {
			continue
		}
		v := bigFromWords(t.Integer.Value)
		if t.Integer.Negative {
			v.Neg(v)
		}
		return v
	}
	return big.NewInt(0)
}

// bigFromWords mirrors the generator's reconstruction of a
// token.BigIntPlaceholder's little-endian magnitude words into a
// big.Int, duplicated here since the generator keeps its copy
// unexported.
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

// firstStringValue finds the first string or char literal in toks (the
// value half of "valuestring name <str>") and returns its decoded
// contents, concatenating chunk values so escapes are resolved the same
// way the literal would be if it appeared directly at a use site.
func firstStringValue(toks []token.Token) string {
	for _, t := range toks {
		if t.Kind != token.StringLit && t.Kind != token.CharLit {
			continue
		}
		if t.String == nil {
			return ""
		}
		var sb strings.Builder
		for _, ch := range t.String.Chunks {
			sb.WriteString(ch.Value)
		}
		return sb.String()
	}
	return ""
}
