// Package scanner implements the scanner framework of spec.md §4.1: a
// cursor over source bytes that produces the flat, lossless token
// stream consumed by the parser framework, under a per-dialect
// dialect.LexConfig.
//
// Grounded on the teacher's sqlparser/scanner.go Scanner type (a cursor
// with startIndex/curIndex bookkeeping and Peek-by-rune decisions),
// generalized from a single fixed T-SQL grammar to the configurable
// matrix dialect.LexConfig carries, and from rune-oriented to a mix of
// rune- and byte-oriented modes (ByteOriented dialects such as
// Palaiologos and Lime skip UTF-8 decoding entirely).
package scanner

import "unicode/utf8"

// Cursor is the byte-oriented scanning primitive named in spec.md §4.1:
// peek, bump, backtrack, bump_while, bump_ascii_while, bump_until_ascii.
type Cursor struct {
	src []byte
	pos int
}

func NewCursor(src []byte) *Cursor { return &Cursor{src: src} }

func (c *Cursor) Pos() int   { return c.pos }
func (c *Cursor) Len() int   { return len(c.src) }
func (c *Cursor) Eof() bool  { return c.pos >= len(c.src) }
func (c *Cursor) Bytes() []byte { return c.src }

// Peek returns the byte at the cursor without advancing, or 0 at eof.
func (c *Cursor) Peek() byte {
	if c.Eof() {
		return 0
	}
	return c.src[c.pos]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past eof.
func (c *Cursor) PeekAt(n int) byte {
	if c.pos+n >= len(c.src) || c.pos+n < 0 {
		return 0
	}
	return c.src[c.pos+n]
}

// PeekRune decodes the rune starting at the cursor without advancing.
// Returns (utf8.RuneError, 0) at eof and (utf8.RuneError, 1) for an
// invalid leading byte, matching utf8.DecodeRune's own convention.
func (c *Cursor) PeekRune() (rune, int) {
	if c.Eof() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(c.src[c.pos:])
}

// Bump advances the cursor by n bytes.
func (c *Cursor) Bump(n int) { c.pos += n }

// Backtrack resets the cursor to a previously observed position.
func (c *Cursor) Backtrack(pos int) { c.pos = pos }

// BumpWhile advances over consecutive runes satisfying predicate,
// decoding UTF-8. Stops at the first rune that fails (or at an invalid
// byte sequence, which is never bumped by this method).
func (c *Cursor) BumpWhile(predicate func(r rune) bool) {
	for !c.Eof() {
		r, w := utf8.DecodeRune(c.src[c.pos:])
		if r == utf8.RuneError && w <= 1 {
			return
		}
		if !predicate(r) {
			return
		}
		c.pos += w
	}
}

// BumpASCIIWhile advances over consecutive bytes satisfying predicate,
// without attempting UTF-8 decoding; used by byte-oriented dialects.
func (c *Cursor) BumpASCIIWhile(predicate func(b byte) bool) {
	for !c.Eof() && predicate(c.src[c.pos]) {
		c.pos++
	}
}

// BumpUntilASCII advances until the next occurrence of delim or eof,
// without consuming delim itself. Returns whether delim was found.
func (c *Cursor) BumpUntilASCII(delim byte) bool {
	for !c.Eof() {
		if c.src[c.pos] == delim {
			return true
		}
		c.pos++
	}
	return false
}
