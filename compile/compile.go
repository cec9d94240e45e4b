// Package compile is the top-level orchestration of spec.md §5/§6: wire
// scanner -> parser -> preprocessor -> generator -> wstoken.Encoder
// behind one narrow entry point, so cmd/omniwsa (or any other embedder)
// never has to know the pipeline's internals.
//
// Grounded on root-level deployable.go/dbintf.go (a top-level type
// wrapping the parse pipeline behind a narrow external interface)
// generalized from "deploy a schema to a live DB" to "compile a source
// to a Whitespace token stream", and error.go's SQLCodeParseErrors
// aggregation for Result's diagnostics rendering.
package compile

import (
	"github.com/omniwsa/omniwsa/cst"
	"github.com/omniwsa/omniwsa/diag"
	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/generator"
	"github.com/omniwsa/omniwsa/parser"
	"github.com/omniwsa/omniwsa/preprocessor"
	"github.com/omniwsa/omniwsa/symbols"
	"github.com/omniwsa/omniwsa/wstoken"
	"github.com/sirupsen/logrus"
)

// SourceProvider resolves an include directive's file name to source
// bytes. Reused directly from preprocessor rather than restated under a
// different method name, since compile's only job with it is to pass it
// straight through.
type SourceProvider = preprocessor.SourceProvider

// Compilation is everything one Compile/Check call needs: the root
// source unit, the selected dialect, and (for dialects whose
// PreprocessorStyle.Includes is set) the provider that resolves
// included file names.
type Compilation struct {
	Source   []byte
	File     string
	Dialect  *dialect.Dialect
	Provider SourceProvider
	// Logger receives informational logging of pass boundaries (scan ->
	// parse -> preprocess -> generate) and BugReproduced diagnostics, per
	// the teacher's optional-injected-logrus.FieldLogger pattern
	// (cli/cmd/config.go). nil is valid and disables logging entirely.
	Logger logrus.FieldLogger
}

// Result is everything a Compile/Check call produces: the final
// (post-preprocessing) CST, every diagnostic raised across the whole
// pipeline, and — only from Compile, never Check — the generated
// Whitespace token stream.
type Result struct {
	CST         *cst.Program
	Diagnostics diag.List
	Tokens      wstoken.Stream
}

// Check runs scanning, parsing and preprocessing only — no generation —
// matching spec.md §7's "user-visible behavior" for a syntax-check-only
// invocation (e.g. an editor's lint-on-save, or a CLI "check" subcommand
// that should never fail on generation-only concerns like an undefined
// label it can still report structurally).
func Check(c Compilation) Result {
	prog, _, diags := parseAndPreprocess(c)
	logPass(c.Logger, "check complete", len(prog.Lines), diags)
	return Result{CST: &prog, Diagnostics: diags}
}

// Compile runs the full pipeline through generation, returning the
// encoded Whitespace token stream alongside every diagnostic raised
// along the way. Tokens is returned even when Diagnostics.HasErrors()
// is true (it may be empty or partial): generation does its best-effort and lets the caller decide
// whether to trust partial output, consistent with the rest of the
// pipeline's resync-don't-abort posture.
func Compile(c Compilation) Result {
	prog, labels, diags := parseAndPreprocess(c)
	instrs := generator.Flatten(prog.Lines)
	tokens, genDiags := generator.Generate(instrs, labels, c.Dialect)
	diags = append(diags, genDiags...)
	if c.Logger != nil {
		c.Logger.WithField("tokens", len(tokens)).Debug("generate complete")
		c.Logger.Debug(generator.DumpLabels(labels))
	}
	return Result{CST: &prog, Diagnostics: diags, Tokens: tokens}
}

func parseAndPreprocess(c Compilation) (cst.Program, *symbols.Labels, diag.List) {
	res := parser.Parse(c.Source, c.Dialect, c.File)
	diags := append(diag.List{}, res.Diags...)
	if c.Logger != nil {
		c.Logger.WithField("lines", len(res.Program.Lines)).Debug("parse complete")
	}

	u := preprocessor.Unit{
		Program:   res.Program,
		Labels:    res.Labels,
		Variables: res.Variables,
		Macros:    res.Macros,
		Options:   res.Options,
	}
	prog, labels, ppDiags := preprocessor.Preprocess(u, c.Dialect, c.Provider, reenterParser)
	diags = append(diags, ppDiags...)
	logPass(c.Logger, "preprocess complete", len(prog.Lines), ppDiags)
	return prog, labels, diags
}

func logPass(logger logrus.FieldLogger, msg string, lines int, diags diag.List) {
	if logger == nil {
		return
	}
	for _, d := range diags {
		if d.Kind == diag.BugReproduced {
			logger.WithField("message", d.Message).Info("bug reproduced")
		}
	}
	logger.WithField("lines", lines).Debug(msg)
}

// reenterParser adapts parser.Parse to preprocessor.ParseFunc, the hook
// the preprocessor uses to parse included files and re-lex Palaiologos
// "rep" statements without importing parser directly.
func reenterParser(src []byte, d *dialect.Dialect, file string) (cst.Program, *symbols.Labels, *symbols.Variables, *symbols.Macros, *symbols.Options, diag.List) {
	res := parser.Parse(src, d, file)
	return res.Program, res.Labels, res.Variables, res.Macros, res.Options, res.Diags
}
