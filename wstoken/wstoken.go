// Package wstoken is the output side of the pipeline: the three-symbol
// Whitespace instruction set ({Space, Tab, LineFeed}) that the generator
// (spec.md §4.8) emits to, and that an Encoder renders to concrete bytes
// (the classic space/tab/newline encoding, or any bug-for-bug variant a
// dialect's generation rules require).
package wstoken

// Token is one of the three symbols a Whitespace program is made of.
type Token int

const (
	Space Token = iota
	Tab
	LineFeed
)

func (t Token) String() string {
	switch t {
	case Space:
		return "S"
	case Tab:
		return "T"
	case LineFeed:
		return "L"
	}
	return "?"
}

// Stream is an ordered sequence of wstoken.Token, the generator's
// output and the encoder's input.
type Stream []Token

// AppendInt appends the signed-integer encoding of spec.md §4.8: a sign
// token (S=positive, T=negative) followed by the magnitude's bits
// most-significant-first, then a terminating L. The sign token is
// written only when emitSign is true, whatever the value; callers set it
// for every non-zero value and for zero when the dialect's ZeroEncoding
// requires one. The magnitude bits are written as given, unpadded.
func (s Stream) AppendInt(magnitudeBitsMSBFirst []bool, negative bool, emitSign bool) Stream {
	if emitSign {
		if negative {
			s = append(s, Tab)
		} else {
			s = append(s, Space)
		}
	}
	for _, bit := range magnitudeBitsMSBFirst {
		if bit {
			s = append(s, Tab)
		} else {
			s = append(s, Space)
		}
	}
	s = append(s, LineFeed)
	return s
}

// Encoder renders a Stream to concrete bytes. DefaultEncoder implements
// the classic published mapping (space/tab/newline); a dialect with a
// documented alternate charset (e.g. a "readable" pseudo-Whitespace
// syntax used only for debugging) can supply its own.
type Encoder interface {
	Encode(s Stream) []byte
	Decode(b []byte) (Stream, error)
}

// DefaultEncoder is the canonical Whitespace byte encoding: ' ' for
// Space, '\t' for Tab, '\n' for LineFeed. All other bytes are treated as
// insignificant (skipped) by Decode, per the reference implementations'
// convention that Whitespace source may be embedded in commented-out
// regions of another language.
type DefaultEncoder struct{}

func (DefaultEncoder) Encode(s Stream) []byte {
	out := make([]byte, len(s))
	for i, t := range s {
		switch t {
		case Space:
			out[i] = ' '
		case Tab:
			out[i] = '\t'
		case LineFeed:
			out[i] = '\n'
		}
	}
	return out
}

func (DefaultEncoder) Decode(b []byte) (Stream, error) {
	var s Stream
	for _, c := range b {
		switch c {
		case ' ':
			s = append(s, Space)
		case '\t':
			s = append(s, Tab)
		case '\n':
			s = append(s, LineFeed)
		}
	}
	return s, nil
}
