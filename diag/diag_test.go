package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindDefaultSeverity(t *testing.T) {
	assert.Equal(t, Error, UnknownMnemonic.DefaultSeverity())
	assert.Equal(t, Info, BugReproduced.DefaultSeverity())
}

func TestKindStringNamesEveryDeclaredKind(t *testing.T) {
	assert.Equal(t, "UnknownMnemonic", UnknownMnemonic.String())
	assert.Equal(t, "IncludeCycle", IncludeCycle.String())
	assert.Equal(t, "UnknownKind", Kind(0).String())
}

func TestNewUsesKindDefaultSeverity(t *testing.T) {
	d := New(Span{}, BugReproduced, "zero_sign changed")
	assert.Equal(t, Info, d.Severity)
	assert.Equal(t, BugReproduced, d.Kind)
}

func TestListHasErrorsIgnoresNonErrorSeverity(t *testing.T) {
	l := List{New(Span{}, BugReproduced, "info only")}
	assert.False(t, l.HasErrors())

	l = append(l, New(Span{}, UndefinedLabel, "missing label"))
	assert.True(t, l.HasErrors())
}

func TestListErrorRendersEveryDiagnostic(t *testing.T) {
	l := List{
		New(Span{Pos: Pos{File: "a.wsa", Line: 1, Col: 1}}, UnknownMnemonic, "frob"),
		New(Span{Pos: Pos{File: "a.wsa", Line: 2, Col: 1}}, UndefinedLabel, "missing"),
	}
	msg := l.Error()
	assert.Contains(t, msg, "frob")
	assert.Contains(t, msg, "missing")
	assert.Contains(t, msg, "a.wsa:1:1")
}

func TestEmptyListErrorIsNotBlank(t *testing.T) {
	assert.Equal(t, "no diagnostics", List{}.Error())
}
