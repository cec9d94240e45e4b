package generator

import (
	"github.com/alecthomas/repr"
	"github.com/omniwsa/omniwsa/symbols"
)

// DumpLabels renders the resolved name -> emitted-id table with
// repr.String, mirroring sqltest/querydump.go's use of repr for
// diagnosing otherwise-opaque structures. Called by compile.Compile
// whenever a logger is attached (see compile.Compilation.Logger), which
// logs the result at debug level; never called without a logger.
func DumpLabels(labels *symbols.Labels) string {
	out := make(map[string]*int64, len(labels.Names()))
	for _, name := range labels.Names() {
		out[name] = labels.Get(name).EmittedID
	}
	return repr.String(out, repr.Indent("  "))
}
