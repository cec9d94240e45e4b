// Package diag defines the diagnostic record shared across every pass of
// the omniwsa pipeline: scanning, parsing, preprocessing and generation.
//
// Grounded on sqlparser/dom.go's Error type and error.go's
// SQLCodeParseErrors aggregation in the teacher repo.
package diag

import "fmt"

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Kind enumerates every error kind named in spec.md §7, verbatim.
type Kind int

const (
	InvalidUtf8 Kind = iota + 1
	UnterminatedString
	UnterminatedChar
	UnterminatedBlockComment
	InvalidEscape
	IntegerOverflow
	IntegerDigitOutOfRange
	IntegerEmpty
	UnexpectedToken
	MissingArgument
	ExtraArgument
	UnknownMnemonic
	DuplicateLabel
	UndefinedLabel
	DuplicateVariable
	UndefinedVariable
	BadType
	IncludeNotFound
	IncludeCycle
	MacroDepthExceeded
	BugReproduced
	GenerationFailure
)

var kindNames = map[Kind]string{
	InvalidUtf8:              "InvalidUtf8",
	UnterminatedString:       "UnterminatedString",
	UnterminatedChar:         "UnterminatedChar",
	UnterminatedBlockComment: "UnterminatedBlockComment",
	InvalidEscape:            "InvalidEscape",
	IntegerOverflow:          "IntegerOverflow",
	IntegerDigitOutOfRange:   "IntegerDigitOutOfRange",
	IntegerEmpty:             "IntegerEmpty",
	UnexpectedToken:          "UnexpectedToken",
	MissingArgument:          "MissingArgument",
	ExtraArgument:            "ExtraArgument",
	UnknownMnemonic:          "UnknownMnemonic",
	DuplicateLabel:           "DuplicateLabel",
	UndefinedLabel:           "UndefinedLabel",
	DuplicateVariable:        "DuplicateVariable",
	UndefinedVariable:        "UndefinedVariable",
	BadType:                  "BadType",
	IncludeNotFound:          "IncludeNotFound",
	IncludeCycle:             "IncludeCycle",
	MacroDepthExceeded:       "MacroDepthExceeded",
	BugReproduced:            "BugReproduced",
	GenerationFailure:        "GenerationFailure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownKind"
}

// DefaultSeverity gives each Kind its conventional severity; callers may
// override it when constructing a Diagnostic (e.g. BugReproduced is
// informational even though some kinds default to Error).
func (k Kind) DefaultSeverity() Severity {
	switch k {
	case BugReproduced:
		return Info
	default:
		return Error
	}
}

// Pos is a 1-based line/column position, derived from a byte offset by a
// token.LineIndex. It exists purely for rendering; spans are the
// source of truth.
type Pos struct {
	File string
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Span identifies a half-open byte range plus resolved start position,
// filled in by the caller (usually from a token.LineIndex) since diag
// does not import the token package.
type Span struct {
	Start, End int
	Pos        Pos
}

// Diagnostic is the single record type produced by every pass.
type Diagnostic struct {
	Span     Span
	Kind     Kind
	Severity Severity
	Message  string
}

func New(span Span, kind Kind, message string) Diagnostic {
	return Diagnostic{Span: span, Kind: kind, Severity: kind.DefaultSeverity(), Message: message}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Span.Pos, d.Severity, d.Message)
}

// List aggregates diagnostics from a whole compilation, mirroring the
// teacher's SQLCodeParseErrors.
type List []Diagnostic

func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

func (l List) Error() string {
	if len(l) == 0 {
		return "no diagnostics"
	}
	msg := "omniwsa: diagnostics:\n\n"
	for _, d := range l {
		msg += d.String() + "\n"
	}
	return msg
}
