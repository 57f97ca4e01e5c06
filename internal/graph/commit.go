package graph

import "github.com/oxhq/unreach/internal/graphmodel"

// FileCommit is the per-file mutation record an ingestion worker produces
// while holding no lock, and then hands to Commit under the graph's single
// lock (§5 "Parallel commit": workers accumulate into per-file buffers and
// commit once, rather than locking per edge).
type FileCommit struct {
	File    string
	Modules []string
	Imports []string

	// Declarations are raw, pre-merge declarations parsed from this file's
	// definition occurrences (§4.1). Each may carry ParentPendingSymbolID
	// set from a child-of relation.
	Declarations []*graphmodel.Declaration

	// ParentPendingSymbolID maps a raw declaration of this commit (keyed by
	// its pointer) to the parent symbol-id recorded by a child-of relation
	// (§4.1, §4.2).
	ParentPendingSymbolID map[*graphmodel.Declaration]string

	// ReferenceBuckets maps a referencer symbol-id to the references that
	// belong to it (§4.1: relation roles base-of/called-by/contained-by/
	// extended-by, and the latent reconciliation bucket of §4.4).
	ReferenceBuckets map[string][]graphmodel.Reference

	// Dangling holds references with no known parent at ingest time,
	// resolved later by location (§4.1, §4.4).
	Dangling []graphmodel.Reference

	ParameterSymbolIDs []string

	// ImplicitOverrides carries the override edges committed into the
	// graph's override-base map: those synthesized from implicit
	// occurrences (§4.1: "implicit... used only to model override edges
	// added by the compiler"), and the override-of relations found on
	// definitions.
	ImplicitOverrides []ImplicitOverride

	// RetainRaw lists raw declarations from this commit that must be
	// retained at ingest time (§4.1 "Retention at ingest": always-implicit
	// declarations, and objc-accessible declarations when configured).
	RetainRaw []*graphmodel.Declaration

	// ConformanceEdges carries conforms-to relations discovered on a raw
	// declaration, committed into the graph's conformance map for the
	// protocol-conformance-extender pass (§4.5 rule 2).
	ConformanceEdges []ConformanceEdge
}

// ConformanceEdge is one type-to-protocol conformance relation.
type ConformanceEdge struct {
	ConformerSymbolID string
	ProtocolSymbolID  string
}

// ImplicitOverride is one override edge, discovered either via an implicit
// occurrence or via an override-of relation on a definition.
type ImplicitOverride struct {
	OverrideSymbolID string
	BaseSymbolID     string
}

// NewFileCommit returns an empty commit record for file.
func NewFileCommit(file string) *FileCommit {
	return &FileCommit{
		File:                  file,
		ParentPendingSymbolID: make(map[*graphmodel.Declaration]string),
		ReferenceBuckets:      make(map[string][]graphmodel.Reference),
	}
}

// Commit merges fc into the graph. This is the only place besides the
// narrow pass-mutation methods that takes the write lock; it runs once per
// file, called by the ingestion worker that built fc as soon as that file
// is done, serialized against the other workers by the lock (§5).
func (g *Graph) Commit(fc *FileCommit) {
	g.mu.Lock()
	defer g.mu.Unlock()

	file := g.files[fc.File]
	if file == nil {
		file = graphmodel.NewSourceFile(fc.File)
		g.files[fc.File] = file
	}
	for _, m := range fc.Modules {
		file.Modules.Add(m)
	}
	file.Imports = append(file.Imports, fc.Imports...)

	rawToTarget := make(map[*graphmodel.Declaration]*graphmodel.Declaration, len(fc.Declarations))
	for _, raw := range fc.Declarations {
		target := g.mergeDeclLocked(raw)
		rawToTarget[raw] = target
		if parentID, ok := fc.ParentPendingSymbolID[raw]; ok && parentID != "" {
			target.ParentPendingSymbolID = parentID
			g.pendingChildren[parentID] = append(g.pendingChildren[parentID], target)
		}
	}

	for referencer, refs := range fc.ReferenceBuckets {
		g.referenceBuckets[referencer] = append(g.referenceBuckets[referencer], refs...)
	}

	g.dangling = append(g.dangling, fc.Dangling...)

	for _, id := range fc.ParameterSymbolIDs {
		g.parameterSymbolIDs.Add(id)
	}

	for _, ov := range fc.ImplicitOverrides {
		g.overrideBase[ov.OverrideSymbolID] = ov.BaseSymbolID
	}

	for _, ce := range fc.ConformanceEdges {
		g.conformances[ce.ConformerSymbolID] = append(g.conformances[ce.ConformerSymbolID], ce.ProtocolSymbolID)
	}

	for _, raw := range fc.RetainRaw {
		if target, ok := rawToTarget[raw]; ok {
			g.retainLocked(target)
		}
	}
}

// mergeDeclLocked applies the §4.1 dedup rule: declarations sharing a
// MergeKey collapse into one, symbol-id sets unioned. Must be called with
// g.mu held.
func (g *Graph) mergeDeclLocked(raw *graphmodel.Declaration) *graphmodel.Declaration {
	key := raw.Key()
	if existing, ok := g.declByKey[key]; ok {
		existing.MergeFrom(raw)
		for id := range raw.SymbolIDs {
			g.bySymbolID[id] = existing
		}
		return existing
	}

	g.declByKey[key] = raw
	g.all = append(g.all, raw)
	for id := range raw.SymbolIDs {
		g.bySymbolID[id] = raw
	}
	locKey := raw.Location.Key()
	g.byLocation[locKey] = append(g.byLocation[locKey], raw)
	lineKey := raw.Location.LineKey()
	g.byLine[lineKey] = append(g.byLine[lineKey], raw)
	return raw
}

// ReferenceBucket returns the references accumulated against referencer
// symbol-id. It leaves the bucket in place; DrainReferenceBucket clears it.
func (g *Graph) ReferenceBucket(referencerSymbolID string) []graphmodel.Reference {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.referenceBuckets[referencerSymbolID]
}

// ReferenceBuckets returns every referencer symbol-id that has pending
// references, for the reconciler's latent subpass (§4.4) to iterate.
func (g *Graph) ReferenceBuckets() map[string][]graphmodel.Reference {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string][]graphmodel.Reference, len(g.referenceBuckets))
	for k, v := range g.referenceBuckets {
		out[k] = v
	}
	return out
}

// DrainReferenceBucket discards the references buffered against
// referencerSymbolID after the latent subpass (§4.4) has attached them.
func (g *Graph) DrainReferenceBucket(referencerSymbolID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.referenceBuckets, referencerSymbolID)
}

// Dangling returns every dangling reference accumulated so far.
func (g *Graph) Dangling() []graphmodel.Reference {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]graphmodel.Reference(nil), g.dangling...)
}

// ClearDangling discards the dangling list after the reconciler has
// consumed it (§5 Memory: "Dangling references are freed after
// reconciliation").
func (g *Graph) ClearDangling() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dangling = nil
}

// PendingChildren returns the children declared against parentSymbolID by
// a child-of relation, for the graph builder (§4.2).
func (g *Graph) PendingChildren(parentSymbolID string) []*graphmodel.Declaration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pendingChildren[parentSymbolID]
}

// PendingChildrenParentIDs returns every parent symbol-id with pending
// children, for §4.2 to iterate deterministically (sorted by caller).
func (g *Graph) PendingChildrenParentIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ids := make([]string, 0, len(g.pendingChildren))
	for id := range g.pendingChildren {
		ids = append(ids, id)
	}
	return ids
}
