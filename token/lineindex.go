package token

import "sort"

// LineIndex maps byte offsets to 1-based (line, column), built once per
// source buffer. Grounded on sqlparser/scanner.go's running
// startLine/indexAtStartLine bookkeeping, but computed eagerly here
// since the core's tokens are byte-offset addressed rather than scanned
// incrementally by downstream consumers.
type LineIndex struct {
	file        string
	lineStarts  []int // byte offset of the first byte of each line
}

// NewLineIndex scans src once for line-feed bytes. Lines are delimited by
// '\n'; a preceding '\r' is treated as part of the prior line's content
// for offset purposes, matching how CRLF/LF/CR line terminators are each
// single LineTerm tokens in the scanner (spec.md §4.1).
func NewLineIndex(file string, src []byte) *LineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{file: file, lineStarts: starts}
}

// Pos resolves a byte offset to a 1-based line/column.
func (li *LineIndex) Pos(offset int) Pos {
	// last lineStart <= offset
	i := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	})
	line := i // number of starts <= offset is i, 0-based line index is i-1, but i from Search is count of starts > offset
	if line == 0 {
		line = 1
	}
	lineStart := li.lineStarts[line-1]
	return Pos{File: li.file, Line: line, Col: offset - lineStart + 1}
}

func (li *LineIndex) Span(s Span) SpanPos {
	return SpanPos{Span: s, StartPos: li.Pos(s.Start), EndPos: li.Pos(s.End)}
}

// SpanPos pairs a byte Span with its resolved human-readable positions.
type SpanPos struct {
	Span     Span
	StartPos Pos
	EndPos   Pos
}
