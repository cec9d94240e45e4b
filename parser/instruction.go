package parser

import (
	"github.com/omniwsa/omniwsa/cst"
	"github.com/omniwsa/omniwsa/diag"
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/token"
)

// tryParseInstruction consumes a mnemonic word and its arguments up to
// the next terminator, matching the dialect's signature table. Mnemonic
// matching respects FoldMnemonic; argument count/kind ambiguity is
// resolved by trying each of the opcode's signatures in the catalog's
// declared order, which lists the longest arity first per spec.md §4.5.
func (p *parser) tryParseInstruction() (cst.Instruction, bool) {
	mnemTok := p.peek()
	if mnemTok.Kind != token.Word {
		p.addError(mnemTok.Span, diag.UnexpectedToken, "expected mnemonic")
		skip := p.bump()
		skip.Kind = token.Skipped
		return cst.Instruction{}, false
	}
	folded := p.d.FoldMnemonic(mnemTok.Text)
	op, ok := p.d.Mnemonics[folded]
	if !ok {
		if p.d.RepMnemonic != "" && folded == p.d.FoldMnemonic(p.d.RepMnemonic) {
			return p.parseRepStatement(mnemTok)
		}
		if p.d.Preprocessor.Macros {
			// may be a macro call; defer the unknown-mnemonic diagnostic
			// to the preprocessor, which resolves against symbols.Macros
			// once every included file's definitions have been merged in.
			return p.parsePossibleMacroCall(mnemTok)
		}
		p.addError(mnemTok.Span, diag.UnknownMnemonic, "unknown mnemonic: "+mnemTok.Text)
		p.bump()
		return cst.Instruction{}, false
	}
	p.bump()

	var argToks []token.Token
	var seps []cst.SeparatorKind
	for !p.atEof() && !isTerminator(p.peek(), p.d) {
		t := p.peek()
		switch {
		case t.Kind == token.Space:
			p.bump()
			continue
		case isComment(t):
			goto done
		case t.Kind == token.Punct && punctByte(t) == ',':
			p.bump()
			if len(argToks) > 0 {
				seps = append(seps, cst.SepComma)
			}
			continue
		case t.Kind == token.IntegerLit, t.Kind == token.StringLit, t.Kind == token.CharLit, t.Kind == token.Word:
			if len(argToks) > 0 && len(seps) < len(argToks) {
				seps = append(seps, cst.SepSpace)
			}
			argToks = append(argToks, p.bump())
			continue
		case t.Kind == token.Punct && isArgSigil(punctByte(t), p.d):
			if len(argToks) > 0 && len(seps) < len(argToks) {
				seps = append(seps, cst.SepSpace)
			}
			argToks = append(argToks, p.bumpSigilArg())
			continue
		}
		break
	}
done:

	sigs := p.d.Signatures[op]
	sig, kinds, idx, ok := matchSignature(sigs, argToks)

	ins := cst.Instruction{
		MnemonicToken:  &mnemTok,
		Opcode:         op,
		SignatureIndex: idx,
		Span:           mnemTok.Span,
	}
	if len(argToks) > 0 {
		ins.Span = ins.Span.Union(argToks[len(argToks)-1].Span)
	}

	if !ok {
		p.addError(mnemTok.Span, diag.MissingArgument, "no matching argument signature for "+mnemTok.Text)
		// still record the raw argument tokens as best-effort Label/unknown
		// args so the CST stays lossless even when unmatched.
		for _, t := range argToks {
			ins.Args.Items = append(ins.Args.Items, cst.Arg{Kind: guessArgKind(t), Tokens: []token.Token{t}, Span: t.Span})
		}
		ins.Args.Seps = seps
		return ins, true
	}
	_ = sig

	for i, t := range argToks {
		kind := cst.ArgNone
		if i < len(kinds) {
			kind = kinds[i]
		}
		if kind == cst.ArgLabel {
			p.labels.Reference(t.Text, t.Span)
		}
		ins.Args.Items = append(ins.Args.Items, cst.Arg{Kind: kind, Tokens: []token.Token{t}, Span: t.Span})
	}
	ins.Args.Seps = seps
	return ins, true
}

func (p *parser) parsePossibleMacroCall(mnemTok token.Token) (cst.Instruction, bool) {
	p.bump()
	var argToks []token.Token
	for !p.atEof() && !isTerminator(p.peek(), p.d) {
		t := p.peek()
		if t.Kind == token.Space || (t.Kind == token.Punct && punctByte(t) == ',') {
			p.bump()
			continue
		}
		if isComment(t) {
			break
		}
		argToks = append(argToks, p.bump())
	}
	ins := cst.Instruction{MnemonicToken: &mnemTok, SignatureIndex: cst.SignatureIndexMacroCall, Span: mnemTok.Span}
	for _, t := range argToks {
		ins.Args.Items = append(ins.Args.Items, cst.Arg{Kind: guessArgKind(t), Tokens: []token.Token{t}, Span: t.Span})
		ins.Span = ins.Span.Union(t.Span)
	}
	return ins, true
}

// parseRepStatement consumes "rep K X..." (K an integer, X a nested
// mnemonic with its own arguments) into a single Instruction tagged
// SignatureIndexRepCall: Args[0] is the count, Args[1:] are X's raw
// tokens, left unparsed for the preprocessor to re-lex as a standalone
// instruction and replicate K times.
func (p *parser) parseRepStatement(mnemTok token.Token) (cst.Instruction, bool) {
	p.bump()
	ins := cst.Instruction{MnemonicToken: &mnemTok, SignatureIndex: cst.SignatureIndexRepCall, Span: mnemTok.Span}
	for !p.atEof() && !isTerminator(p.peek(), p.d) {
		t := p.peek()
		if t.Kind == token.Space {
			p.bump()
			continue
		}
		if isComment(t) {
			break
		}
		t = p.bump()
		ins.Args.Items = append(ins.Args.Items, cst.Arg{Kind: guessArgKind(t), Tokens: []token.Token{t}, Span: t.Span})
		ins.Span = ins.Span.Union(t.Span)
	}
	if len(ins.Args.Items) < 2 {
		p.addError(mnemTok.Span, diag.MissingArgument, "rep requires a count and a nested instruction")
	}
	return ins, true
}

// isArgSigil reports whether b introduces a sigil-prefixed argument
// reference: the dialect's configured label-use prefix (Palaiologos
// "%label"), or "$" when the dialect's macro preprocessor is active
// (Whitelips "$label"/"$0"-style parameter references). Without this,
// the argument loop below has nothing to match such a token against
// and falls through to the trailing break, silently losing the rest
// of the instruction's arguments.
func isArgSigil(b byte, d *dialect.Dialect) bool {
	if b == 0 {
		return false
	}
	if d.ParseStyle.LabelUsePrefix != 0 && b == d.ParseStyle.LabelUsePrefix {
		return true
	}
	return d.Preprocessor.Macros && b == '$'
}

// bumpSigilArg consumes a sigil token already confirmed by isArgSigil
// and folds it with the token it prefixes into a single argument
// token, so the sigil doesn't count as a separate, unmatched argument
// slot. The combined token carries the referenced token's kind and
// payload (so "$0" still matches an integer signature slot and "%l2"
// still matches a label slot); its text drops the sigil so label and
// variable lookups key on the same bare name used at definition sites.
func (p *parser) bumpSigilArg() token.Token {
	sigil := p.bump()
	if p.atEof() {
		return sigil
	}
	next := p.peek()
	switch next.Kind {
	case token.Word, token.IntegerLit, token.StringLit, token.CharLit:
	default:
		return sigil
	}
	next = p.bump()
	next.Span = sigil.Span.Union(next.Span)
	return next
}

func guessArgKind(t token.Token) cst.ArgKind {
	switch t.Kind {
	case token.IntegerLit:
		return cst.ArgInteger
	case token.StringLit, token.CharLit:
		return cst.ArgString
	default:
		return cst.ArgLabel
	}
}

// matchSignature tries each candidate in order (the catalog lists each
// opcode's signatures longest-arity-first) and returns the first whose
// arity and per-slot kind both match the raw token kinds. A Word token
// is compatible with both ArgLabel and ArgVariable slots since the
// concrete classification for those two depends on the dialect
// signature expected at that position, not on lexical shape alone.
func matchSignature(sigs []dialect.Signature, argToks []token.Token) (dialect.Signature, []cst.ArgKind, int, bool) {
	for idx, sig := range sigs {
		if len(sig.Args) != len(argToks) {
			continue
		}
		kinds := make([]cst.ArgKind, len(sig.Args))
		ok := true
		for i, want := range sig.Args {
			if !argCompatible(argToks[i], want) {
				ok = false
				break
			}
			kinds[i] = cst.ArgKind(want)
		}
		if ok {
			return sig, kinds, idx, true
		}
	}
	return dialect.Signature{}, nil, -1, false
}

func argCompatible(t token.Token, want dialect.ArgKind) bool {
	switch want {
	case dialect.ArgInteger:
		return t.Kind == token.IntegerLit
	case dialect.ArgString:
		return t.Kind == token.StringLit || t.Kind == token.CharLit
	case dialect.ArgLabel, dialect.ArgVariable:
		return t.Kind == token.Word
	case dialect.ArgNone:
		return false
	}
	return false
}
