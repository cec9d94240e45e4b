// Package symbols implements the per-compilation-unit side tables of
// spec.md §3: labels, variables, macros and options, each resolved by
// name → index rather than by cycles in the CST ("cross-references such
// as label uses → label defs are resolved by index into a side table,
// never by cycles in the tree").
//
// Grounded on the teacher's sqldocument/topological_sort.go, whose
// declaredToIdx map (name → slice index, built once up front) is the
// same shape generalized here to four separate tables instead of one.
package symbols

import (
	"math/big"

	"github.com/omniwsa/omniwsa/cst"
	"github.com/omniwsa/omniwsa/token"
)

// LabelEntry is one label's bookkeeping: where it was defined (if at
// all yet), every site it was referenced from, and the numeric id the
// generator eventually assigns it.
type LabelEntry struct {
	DefinedSpan    *token.Span
	ReferenceSpans []token.Span
	EmittedID      *int64
}

// Labels is the name → LabelEntry side table. Order records first
// appearance (definition or reference, whichever comes first), which
// FirstUseOrder numbering reads directly off this table.
type Labels struct {
	order       []string
	entries     map[string]*LabelEntry
	declaredIdx map[string]int // name -> index into order, mirrors topological_sort.go's declaredToIdx
}

func NewLabels() *Labels {
	return &Labels{entries: make(map[string]*LabelEntry), declaredIdx: make(map[string]int)}
}

func (l *Labels) ensure(name string) *LabelEntry {
	e, ok := l.entries[name]
	if !ok {
		e = &LabelEntry{}
		l.entries[name] = e
		l.declaredIdx[name] = len(l.order)
		l.order = append(l.order, name)
	}
	return e
}

// Define records a label definition site. Returns false if the label
// was already defined and allowRedefine is false (DuplicateLabel).
func (l *Labels) Define(name string, span token.Span, allowRedefine bool) bool {
	e := l.ensure(name)
	if e.DefinedSpan != nil && !allowRedefine {
		return false
	}
	s := span
	e.DefinedSpan = &s
	return true
}

// Reference records a use site and returns the label's table index
// (stable for the lifetime of this Labels value).
func (l *Labels) Reference(name string, span token.Span) int {
	e := l.ensure(name)
	e.ReferenceSpans = append(e.ReferenceSpans, span)
	return l.indexOf(name)
}

func (l *Labels) indexOf(name string) int {
	if i, ok := l.declaredIdx[name]; ok {
		return i
	}
	return -1
}

// Get returns the entry for name, or nil if never defined or referenced.
func (l *Labels) Get(name string) *LabelEntry { return l.entries[name] }

// Names returns every label name in first-appearance order.
func (l *Labels) Names() []string { return l.order }

// Undefined returns names referenced but never defined, in
// first-reference order, for UndefinedLabel diagnostics.
func (l *Labels) Undefined() []string {
	var out []string
	for _, name := range l.order {
		if l.entries[name].DefinedSpan == nil {
			out = append(out, name)
		}
	}
	return out
}

// ValueKind distinguishes the two variable payload shapes of spec.md §3.
type ValueKind int

const (
	ValueInt ValueKind = iota + 1
	ValueStr
)

// Value is a variable's last-assigned payload.
type Value struct {
	Kind ValueKind
	Int  *big.Int
	Str  string
}

// Variables is the name → last-assigned-Value side table. Per spec.md
// §3, some dialects unify integer and string variables in one
// namespace; others keep two. Callers that need the split pass a
// distinct Variables instance per kind.
type Variables struct {
	order  []string
	values map[string]Value
}

func NewVariables() *Variables {
	return &Variables{values: make(map[string]Value)}
}

func (v *Variables) Set(name string, val Value) {
	if _, ok := v.values[name]; !ok {
		v.order = append(v.order, name)
	}
	v.values[name] = val
}

func (v *Variables) Get(name string) (Value, bool) {
	val, ok := v.values[name]
	return val, ok
}

func (v *Variables) Names() []string { return v.order }

// MacroDef is one Whitelips-style macro definition: its formal
// parameters, unexpanded body lines, and lexical scope depth at
// definition time (used to resolve $redef and shadowing). Lines is
// populated by the preprocessor once the matching endmacro has been
// seen (the parser only records Params, since the body may span many
// lines it hasn't reached yet).
type MacroDef struct {
	Params []string
	Body   []token.Token
	Lines  []cst.Line
	Scope  int
}

// Macros is the name → MacroDef side table.
type Macros struct {
	order   []string
	entries map[string]MacroDef
}

func NewMacros() *Macros {
	return &Macros{entries: make(map[string]MacroDef)}
}

// Define installs or (per the dialect's $redef convention) overwrites a
// macro definition. Returns false if name was already defined and
// allowRedefine is false.
func (m *Macros) Define(name string, def MacroDef, allowRedefine bool) bool {
	if _, ok := m.entries[name]; ok && !allowRedefine {
		return false
	}
	if _, ok := m.entries[name]; !ok {
		m.order = append(m.order, name)
	}
	m.entries[name] = def
	return true
}

func (m *Macros) Get(name string) (MacroDef, bool) {
	d, ok := m.entries[name]
	return d, ok
}

func (m *Macros) Names() []string { return m.order }

// Options is the name → bool side table for dialects with
// option/ifoption directives (spec.md §4.7).
type Options struct {
	values map[string]bool
}

func NewOptions() *Options {
	return &Options{values: make(map[string]bool)}
}

func (o *Options) Set(name string, v bool) { o.values[name] = v }

func (o *Options) Get(name string) bool { return o.values[name] }

func (o *Options) IsSet(name string) bool {
	_, ok := o.values[name]
	return ok
}
