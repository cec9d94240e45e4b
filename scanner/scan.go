package scanner

import (
	"math/big"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/numeral"
	"github.com/omniwsa/omniwsa/strlit"
	"github.com/omniwsa/omniwsa/token"
)

// Scan produces the flat, lossless token stream of spec.md §3/§4.1 for
// src under cfg. Scanning is total: it always terminates with an Eof
// token, and invalid bytes become error tokens rather than aborting.
func Scan(src []byte, cfg dialect.LexConfig) []token.Token {
	c := NewCursor(src)
	var out []token.Token
	for {
		start := c.Pos()
		if c.Eof() {
			out = append(out, token.Token{Kind: token.Eof, Span: token.Span{Start: start, End: start}})
			return out
		}
		tok, ok := scanOne(c, cfg)
		if !ok {
			// scanOne must always make progress; this is a defensive
			// fallback that should never trigger given total predicates
			// below, but avoids an infinite loop on a dialect config bug.
			c.Bump(1)
			tok = token.Token{Kind: token.InvalidToken, Span: token.Span{Start: start, End: c.Pos()}, Text: string(src[start:c.Pos()])}
		}
		out = append(out, tok)
	}
}

func scanOne(c *Cursor, cfg dialect.LexConfig) (token.Token, bool) {
	start := c.Pos()
	b := c.Peek()

	if isLineTermByte(b, cfg.LineTerms) {
		return scanLineTerm(c, cfg), true
	}
	if isHSpaceByte(b, cfg) {
		c.BumpASCIIWhile(func(b byte) bool { return isHSpaceByte(b, cfg) })
		return mk(token.Space, start, c), true
	}
	if cs, ok := matchCommentStart(c, cfg); ok {
		return scanComment(c, cfg, cs), true
	}
	if cfg.String.Quote != 0 && b == cfg.String.Quote {
		return scanString(c, cfg, cfg.String, token.StringLit), true
	}
	if qc, ok := cfg.Quotes[dialect.SingleQuote]; ok && b == qc.Quote {
		return scanString(c, cfg, qc, token.CharLit), true
	}
	if qc, ok := cfg.Quotes[dialect.DoubleQuote]; ok && b == qc.Quote {
		return scanString(c, cfg, qc, token.StringLit), true
	}
	if isIntegerStart(c, cfg) {
		return scanInteger(c, cfg), true
	}
	if isWordStart(c, cfg) {
		return scanWord(c, cfg), true
	}
	if pk, ok := puncts[b]; ok && cfg.Punct[b] {
		c.Bump(1)
		return token.Token{Kind: token.Punct, Span: token.Span{Start: start, End: c.Pos()}, Text: string(c.Bytes()[start:c.Pos()]), Punct: pk}, true
	}

	if cfg.ByteOriented {
		c.Bump(1)
		return mk(token.InvalidToken, start, c), true
	}
	r, w := c.PeekRune()
	if r == utf8.RuneError {
		if w == 0 {
			return token.Token{}, false // eof, unreachable (caller already checked)
		}
		c.Bump(1)
		return token.Token{Kind: token.InvalidUtf8, Span: token.Span{Start: start, End: c.Pos()}, Text: string(c.Bytes()[start:c.Pos()]), Errors: token.ErrInvalidUtf8}, true
	}
	c.Bump(w)
	return mk(token.InvalidToken, start, c), true
}

func mk(kind token.Kind, start int, c *Cursor) token.Token {
	return token.Token{Kind: kind, Span: token.Span{Start: start, End: c.Pos()}, Text: string(c.Bytes()[start:c.Pos()])}
}

var puncts = map[byte]token.PunctKind{
	':': token.Colon,
	',': token.Comma,
	';': token.Semicolon,
	'/': token.Slash,
	'[': token.LBracket,
	']': token.RBracket,
	'#': token.Hash,
	'@': token.At,
	'%': token.Percent,
	'$': token.Dollar,
}

func isLineTermByte(b byte, set dialect.LineTermSet) bool {
	switch set {
	case dialect.LFOnly:
		return b == '\n'
	case dialect.LFCRCRLF:
		return b == '\n' || b == '\r'
	case dialect.UnicodeLineBreak:
		return b == '\n' || b == '\r' || b == '\v' || b == '\f'
	}
	return b == '\n'
}

func scanLineTerm(c *Cursor, cfg dialect.LexConfig) token.Token {
	start := c.Pos()
	if c.Peek() == '\r' && cfg.LineTerms != dialect.LFOnly && c.PeekAt(1) == '\n' {
		c.Bump(2)
	} else {
		c.Bump(1)
	}
	return mk(token.LineTerm, start, c)
}

func isHSpaceByte(b byte, cfg dialect.LexConfig) bool {
	if b == ' ' {
		return true
	}
	if b == '\t' && cfg.HorizontalTabs {
		return true
	}
	if b == 0 && cfg.NULIsSpace {
		return true
	}
	return false
}

// matchCommentStart reports which enabled CommentStyle the bytes at the
// cursor begin, without consuming anything.
func matchCommentStart(c *Cursor, cfg dialect.LexConfig) (dialect.CommentStyle, bool) {
	b0, b1 := c.Peek(), c.PeekAt(1)
	switch {
	case b0 == '#' && cfg.Comments[dialect.LineHash]:
		return dialect.LineHash, true
	case b0 == ';' && cfg.Comments[dialect.LineSemi]:
		return dialect.LineSemi, true
	case b0 == '-' && b1 == '-' && cfg.Comments[dialect.LineDoubleDash]:
		return dialect.LineDoubleDash, true
	case b0 == '/' && b1 == '/' && cfg.Comments[dialect.LineDoubleSlash]:
		return dialect.LineDoubleSlash, true
	case b0 == '/' && b1 == '*' && cfg.Comments[dialect.BlockC]:
		return dialect.BlockC, true
	case b0 == '{' && cfg.Comments[dialect.BlockNestedBrace]:
		return dialect.BlockNestedBrace, true
	}
	return 0, false
}

func scanComment(c *Cursor, cfg dialect.LexConfig, style dialect.CommentStyle) token.Token {
	start := c.Pos()
	switch style {
	case dialect.LineHash, dialect.LineSemi, dialect.LineDoubleDash, dialect.LineDoubleSlash:
		c.Bump(lineCommentPrefixLen(style))
		c.BumpUntilASCII('\n')
		return mk(token.LineComment, start, c)
	case dialect.BlockC:
		c.Bump(2) // "/*"
		for !c.Eof() {
			if c.Peek() == '*' && c.PeekAt(1) == '/' {
				c.Bump(2)
				return mk(token.BlockComment, start, c)
			}
			c.Bump(1)
		}
		return token.Token{Kind: token.BlockComment, Span: token.Span{Start: start, End: c.Pos()}, Text: string(c.Bytes()[start:c.Pos()]), Errors: token.ErrUnterminatedBlockComment}
	case dialect.BlockNestedBrace:
		depth := 0
		for !c.Eof() {
			switch c.Peek() {
			case '{':
				depth++
				c.Bump(1)
				continue
			case '}':
				depth--
				c.Bump(1)
				if depth == 0 {
					return mk(token.NestedComment, start, c)
				}
				continue
			}
			c.Bump(1)
		}
		return token.Token{Kind: token.NestedComment, Span: token.Span{Start: start, End: c.Pos()}, Text: string(c.Bytes()[start:c.Pos()]), Errors: token.ErrUnterminatedBlockComment}
	}
	c.Bump(1)
	return mk(token.LineComment, start, c)
}

func lineCommentPrefixLen(style dialect.CommentStyle) int {
	switch style {
	case dialect.LineHash, dialect.LineSemi:
		return 1
	case dialect.LineDoubleDash, dialect.LineDoubleSlash:
		return 2
	}
	return 1
}

func scanString(c *Cursor, cfg dialect.LexConfig, qc strlit.Config, kind token.Kind) token.Token {
	start := c.Pos()
	c.Bump(1) // opening quote
	body := string(c.Bytes()[c.Pos():])
	lit, consumed, issues := strlit.Parse(body, qc)
	c.Bump(consumed)

	tokChunks := make([]token.Chunk, len(lit.Chunks))
	var errs token.ErrorKind
	for i, ch := range lit.Chunks {
		tokChunks[i] = token.Chunk{Kind: token.ChunkKind(ch.Kind), Literal: ch.Literal, Value: ch.Value}
	}
	for _, iss := range issues {
		switch iss.Kind.String() {
		case "UnterminatedString":
			if kind == token.CharLit {
				errs |= token.ErrUnterminatedChar
			} else {
				errs |= token.ErrUnterminatedString
			}
		case "InvalidEscape":
			errs |= token.ErrInvalidEscape
		}
	}
	return token.Token{
		Kind: kind,
		Span: token.Span{Start: start, End: c.Pos()},
		Text: string(c.Bytes()[start:c.Pos()]),
		String: &token.StringLiteral{
			Quote:  qc.Quote,
			Chunks: tokChunks,
			Closed: lit.Closed,
		},
		Errors: errs,
	}
}

func isIntegerStart(c *Cursor, cfg dialect.LexConfig) bool {
	b := c.Peek()
	if b >= '0' && b <= '9' {
		return true
	}
	if (b == '-' && cfg.Integer.Signs[numeral.SignNeg]) || (b == '+' && cfg.Integer.Signs[numeral.SignPos]) {
		b1 := c.PeekAt(1)
		return b1 >= '0' && b1 <= '9'
	}
	return false
}

func scanInteger(c *Cursor, cfg dialect.LexConfig) token.Token {
	start := c.Pos()
	body := string(c.Bytes()[start:])
	lit, issues := numeral.Parse(body, cfg.Integer)
	c.Bump(len(lit.Text))

	var errs token.ErrorKind
	for _, iss := range issues {
		switch iss.Kind.String() {
		case "IntegerOverflow":
			errs |= token.ErrIntegerOverflow
		case "IntegerDigitOutOfRange":
			errs |= token.ErrIntegerDigitOutOfRange
		case "IntegerEmpty":
			errs |= token.ErrIntegerEmpty
		}
	}
	var words []uint32
	if lit.Value != nil {
		words = magnitudeWords32(lit.Value)
	}
	return token.Token{
		Kind: token.IntegerLit,
		Span: token.Span{Start: start, End: c.Pos()},
		Text: lit.Text,
		Integer: &token.IntegerLiteral{
			Radix:      lit.Radix,
			Negative:   lit.Negative,
			SignsText:  lit.SignsText,
			Digits:     lit.Digits,
			RawDigits:  lit.RawDigits,
			Suffix:     lit.Suffix,
			Value:      &token.BigIntPlaceholder{Words: words},
			Overflowed: lit.Overflowed,
		},
		Errors: errs,
	}
}

// magnitudeWords32 splits v's absolute value into little-endian 32-bit
// words, independent of the host's big.Word bit width, for storage in
// token.BigIntPlaceholder.
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

func isWordStart(c *Cursor, cfg dialect.LexConfig) bool {
	b := c.Peek()
	if cfg.ByteOriented {
		return cfg.WordStart != nil && cfg.WordStart(b)
	}
	if cfg.UnicodeWords {
		r, _ := c.PeekRune()
		return r != utf8.RuneError && xid.Start(r)
	}
	return cfg.WordStart != nil && cfg.WordStart(b)
}

func scanWord(c *Cursor, cfg dialect.LexConfig) token.Token {
	start := c.Pos()
	if cfg.ByteOriented {
		c.BumpASCIIWhile(func(b byte) bool { return cfg.WordContinue != nil && cfg.WordContinue(b) })
		return mk(token.Word, start, c)
	}
	if cfg.UnicodeWords {
		// first rune already validated by isWordStart
		_, w := c.PeekRune()
		c.Bump(w)
		c.BumpWhile(func(r rune) bool { return xid.Continue(r) })
		return mk(token.Word, start, c)
	}
	c.BumpASCIIWhile(func(b byte) bool { return cfg.WordContinue != nil && cfg.WordContinue(b) })
	return mk(token.Word, start, c)
}
