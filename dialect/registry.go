package dialect

// Registry is the read-only catalog of registered dialects. Per spec.md
// §9 "the only process-level invariant is that the dialect catalog is
// read-only", the core never mutates a Registry after NewRegistry builds
// it; each NewRegistry call returns a fresh instance. Callers that need
// an overlay (see SPEC_FULL.md's "catalog overlays" ambient-stack note)
// clone a Dialect value and register it in their own registry instance.
type Registry struct {
	entries map[ID]*Dialect
}

// NewRegistry builds the default registry containing every catalog
// entry except the draft `omniwsa` dialect, per spec.md §1 "tracked as a
// draft but not part of the core contract".
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[ID]*Dialect)}
	for _, d := range []*Dialect{
		newBurghard(),
		newPalaiologos(),
		newVoliva(),
		newWhitelips(),
		newWconrad(),
		newLime(),
		newEsotope(),
		newRespace(),
		newWSF(),
		newLittleBugHunter(),
		newNossembly(),
		newRdebathLex(),
		newRdebathSed(),
		newCensoredUsername(),
	} {
		r.entries[d.ID] = d
	}
	return r
}

// Lookup returns a dialect by ID. The draft `omniwsa` ID is only
// reachable via LookupDraft, never via the default registry.
func (r *Registry) Lookup(id ID) (*Dialect, bool) {
	d, ok := r.entries[id]
	return d, ok
}

// Register adds or overrides a catalog entry in this Registry instance.
// Used to install a locally-overlaid Dialect (see SPEC_FULL.md); other
// Registry instances are not affected.
func (r *Registry) Register(d *Dialect) {
	r.entries[d.ID] = d
}

// LookupDraft returns the draft omniwsa dialect regardless of whether it
// has been registered, per spec.md §1's "tracked as a draft" language.
func LookupDraft() *Dialect {
	return newOmniwsaDraft()
}

// IDs lists every registered dialect ID, in no particular order (map
// iteration order), for enumeration by external callers (e.g. a CLI's --dialect flag help
// text).
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}
