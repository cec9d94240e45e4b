// Package strlit implements the string/char syntax engine of spec.md
// §4.4: quoted literals parsed into a lossless sequence of chunks, each
// retaining both its literal source bytes and its decoded value.
//
// Grounded on the teacher's scanUntilSingleDoubleEscapes
// (sqlparser/scanner.go), which handles SQL's doubled-quote escape rule
// for both string literals (''  ->  ') and quoted identifiers (]] -> ]);
// generalized here to an arbitrary escape table per dialect, since most
// Whitespace-assembly dialects use backslash escapes instead.
package strlit

import (
	"strings"

	"github.com/omniwsa/omniwsa/diag"
)

// Config selects a dialect's quoting and escaping rules.
type Config struct {
	Quote byte // opening/closing quote byte, e.g. '"' or '\''

	// Escapes maps the byte following a backslash to its decoded value.
	// If DoublingEscape is true, the doubled-quote rule is used instead
	// (quote quote -> quote), matching SQL-style dialects. A nil map with
	// DoublingEscape false makes every backslash escape invalid.
	Escapes map[byte]string
	// DoublingEscape selects the "" / '' style doubling escape rather
	// than backslash escapes.
	DoublingEscape bool

	AllowLineContinuation bool // backslash-newline is elided
	AllowRawNewline       bool // an unescaped LF inside the literal is permitted
	NulTerminated         bool // the decoded value gets an implicit trailing NUL on emission
}

// Literal is the parsed body of a quoted literal (not including the
// quote bytes themselves, which the scanner records separately as part
// of the token span).
type Literal struct {
	Chunks []Chunk
	Closed bool
	Value  string // convenience: concatenation of all chunk Values
}

type ChunkKind int

const (
	ChunkLiteral ChunkKind = iota + 1
	ChunkEscape
	ChunkInvalid
)

type Chunk struct {
	Kind    ChunkKind
	Literal string
	Value   string
}

// Issue is a diagnostic relative to the start of the body text handed to
// Parse (i.e. the text strictly between the quote bytes).
type Issue struct {
	Offset  int
	Kind    diag.Kind
	Message string
}

// Parse scans body (the literal's content, without surrounding quotes)
// until an unescaped Config.Quote byte or end of input, returning the
// chunk sequence and whether a closing quote was found at the returned
// consumed length. Callers (the scanner) pass the text starting right
// after the opening quote; Parse returns how many bytes of body it
// consumed including the closing quote if present.
func Parse(body string, cfg Config) (Literal, int, []Issue) {
	if cfg.DoublingEscape {
		return parseDoubling(body, cfg)
	}
	return parseBackslash(body, cfg)
}

func parseDoubling(body string, cfg Config) (Literal, int, []Issue) {
	var lit Literal
	var issues []Issue
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			s := cur.String()
			lit.Chunks = append(lit.Chunks, Chunk{Kind: ChunkLiteral, Literal: s, Value: s})
			lit.Value += s
			cur.Reset()
		}
	}
	i := 0
	for i < len(body) {
		b := body[i]
		if b == cfg.Quote {
			if i+1 < len(body) && body[i+1] == cfg.Quote {
				flush()
				doubled := body[i : i+2]
				lit.Chunks = append(lit.Chunks, Chunk{Kind: ChunkEscape, Literal: doubled, Value: string(cfg.Quote)})
				lit.Value += string(cfg.Quote)
				i += 2
				continue
			}
			// closing quote
			flush()
			lit.Closed = true
			return lit, i + 1, issues
		}
		if b == '\n' && !cfg.AllowRawNewline {
			issues = append(issues, Issue{Offset: i, Kind: diag.UnterminatedString, Message: "raw newline inside quoted literal"})
		}
		cur.WriteByte(b)
		i++
	}
	flush()
	lit.Closed = false
	issues = append(issues, Issue{Offset: i, Kind: diag.UnterminatedString, Message: "unterminated quoted literal"})
	return lit, i, issues
}

func parseBackslash(body string, cfg Config) (Literal, int, []Issue) {
	var lit Literal
	var issues []Issue
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			s := cur.String()
			lit.Chunks = append(lit.Chunks, Chunk{Kind: ChunkLiteral, Literal: s, Value: s})
			lit.Value += s
			cur.Reset()
		}
	}
	i := 0
	for i < len(body) {
		b := body[i]
		switch {
		case b == cfg.Quote:
			flush()
			lit.Closed = true
			return lit, i + 1, issues
		case b == '\\' && i+1 < len(body):
			esc := body[i+1]
			if cfg.AllowLineContinuation && esc == '\n' {
				flush()
				lit.Chunks = append(lit.Chunks, Chunk{Kind: ChunkEscape, Literal: body[i : i+2], Value: ""})
				i += 2
				continue
			}
			if val, ok := cfg.Escapes[esc]; ok {
				flush()
				lit.Chunks = append(lit.Chunks, Chunk{Kind: ChunkEscape, Literal: body[i : i+2], Value: val})
				lit.Value += val
				i += 2
				continue
			}
			flush()
			lit.Chunks = append(lit.Chunks, Chunk{Kind: ChunkInvalid, Literal: body[i : i+2], Value: body[i : i+2]})
			lit.Value += body[i : i+2]
			issues = append(issues, Issue{Offset: i, Kind: diag.InvalidEscape, Message: "unknown escape sequence"})
			i += 2
		case b == '\n' && !cfg.AllowRawNewline:
			issues = append(issues, Issue{Offset: i, Kind: diag.UnterminatedString, Message: "raw newline inside quoted literal"})
			cur.WriteByte(b)
			i++
		default:
			cur.WriteByte(b)
			i++
		}
	}
	flush()
	lit.Closed = false
	issues = append(issues, Issue{Offset: i, Kind: diag.UnterminatedString, Message: "unterminated quoted literal"})
	return lit, i, issues
}
