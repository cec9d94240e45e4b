package generator

import (
	"sort"

	"github.com/omniwsa/omniwsa/dialect"
	"github.com/omniwsa/omniwsa/symbols"
)

// orderLabels is pass 1 of spec.md §4.8's two-pass resolution: walk and
// number. It assigns symbols.LabelEntry.EmittedID to every label named
// in instrs, per the dialect's LabelNumberingRule. Adapted from
// sqldocument/topological_sort.go's declaredToIdx + DFS-visiting walk,
// here degenerating to a straight-line scan since the label graph carries
// no real dependency order to resolve — only an assignment order.
func (g *gen) orderLabels(instrs []lowered) {
	switch g.d.Generation.LabelNumbering {
	case dialect.ArbitraryPrecisionBitsOfText:
		// encoded straight from the label's name bytes at emit time
		// (see gen.appendLabel); no sequential id to assign.
		return
	case dialect.FirstUseOrder:
		g.assignSequential(g.labels.Names(), 0)
	case dialect.FirstDefinitionFromIndex:
		g.assignSequential(definitionOrder(instrs), g.d.Generation.FirstDefIndex)
	case dialect.HighestReferenceCountFirst:
		g.assignSequential(byReferenceCountDesc(g.labels), 0)
	default: // DefinitionOrder
		g.assignSequential(definitionOrder(instrs), 0)
	}
}

func (g *gen) assignSequential(names []string, base int64) {
	for i, name := range names {
		e := g.labels.Get(name)
		if e == nil {
			continue
		}
		id := base + int64(i)
		e.EmittedID = &id
	}
}

// definitionOrder returns every label name in the order its definition
// site (IsLabelDef) first appears in the lowered instruction stream —
// distinct from symbols.Labels.Names, which orders by first appearance
// of either a definition or a reference, whichever comes first.
func definitionOrder(instrs []lowered) []string {
	var out []string
	seen := map[string]bool{}
	for _, ins := range instrs {
		if ins.IsLabelDef && !seen[ins.LabelArg] {
			seen[ins.LabelArg] = true
			out = append(out, ins.LabelArg)
		}
	}
	return out
}

// byReferenceCountDesc orders labels by descending reference count,
// ties broken by first-appearance order, per spec.md §8 scenario 4
// (Palaiologos: the more-referenced label gets the lower id).
func byReferenceCountDesc(labels *symbols.Labels) []string {
	names := append([]string(nil), labels.Names()...)
	sort.SliceStable(names, func(i, j int) bool {
		a, b := labels.Get(names[i]), labels.Get(names[j])
		return len(a.ReferenceSpans) > len(b.ReferenceSpans)
	})
	return names
}
