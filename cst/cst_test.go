package cst

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/token"
)

// TestWithoutPosZeroesSpans uses go-cmp for a structural diff rather
// than reflect.DeepEqual/testify's Equal, since a mismatch here should
// point at exactly which nested field still carries position
// information — the thing this projection exists to strip.
func TestWithoutPosZeroesSpans(t *testing.T) {
	mnemTok := token.Token{Kind: token.Word, Text: "push", Span: token.Span{Start: 10, End: 14}}
	prog := Program{
		Lines: []Line{{
			Instruction: &Instruction{
				MnemonicToken:  &mnemTok,
				Opcode:         dialect.OpPush,
				SignatureIndex: 0,
				Args: Separated[Arg, SeparatorKind]{
					Items: []Arg{{
						Kind:   ArgInteger,
						Tokens: []token.Token{{Kind: token.IntegerLit, Text: "1", Span: token.Span{Start: 15, End: 16}}},
						Span:   token.Span{Start: 15, End: 16},
					}},
				},
				Span: token.Span{Start: 10, End: 16},
			},
			Span: token.Span{Start: 10, End: 17},
		}},
		Span: token.Span{Start: 10, End: 17},
	}

	got := prog.WithoutPos()

	want := Program{
		Lines: []Line{{
			Instruction: &Instruction{
				MnemonicToken:  &token.Token{Kind: token.Word, Text: "push"},
				Opcode:         dialect.OpPush,
				SignatureIndex: 0,
				Args: Separated[Arg, SeparatorKind]{
					Items: []Arg{{
						Kind:   ArgInteger,
						Tokens: []token.Token{{Kind: token.IntegerLit, Text: "1"}},
					}},
				},
			},
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WithoutPos() mismatch (-want +got):\n%s", diff)
	}
}
