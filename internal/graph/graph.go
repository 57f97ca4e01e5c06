// Package graph implements the SourceGraph, the process-wide store described
// in spec.md §3 and §5: every declaration and reference found across all
// analyzed files, indexed by symbol-id and by location, guarded by a single
// lock so that per-file ingestion workers can commit concurrently.
package graph

import (
	"sort"
	"sync"

	"github.com/oxhq/unreach/internal/graphmodel"
)

// Graph is the shared store. All mutation happens either through Commit
// (called once per ingested file, under the lock) or through the narrow
// mutation methods the passes call in §4.5, which also take the lock.
// Declarations and references are never copied out from under the lock —
// callers hold pointers that stay valid for the run's lifetime (§5 Memory).
type Graph struct {
	mu sync.Mutex

	bySymbolID map[string]*graphmodel.Declaration
	byLocation map[string][]*graphmodel.Declaration
	byLine     map[string][]*graphmodel.Declaration
	declByKey  map[graphmodel.MergeKey]*graphmodel.Declaration
	all        []*graphmodel.Declaration // stable insertion order, for determinism

	files map[string]*graphmodel.SourceFile

	parameterSymbolIDs graphmodel.StringSet

	// pendingChildren maps a not-yet-resolved parent symbol-id to the
	// children declared against it by a child-of relation (§4.1, §4.2).
	pendingChildren map[string][]*graphmodel.Declaration

	// referenceBuckets maps a referencer symbol-id to the references that
	// belong to it once that declaration is found (§4.1, §4.4 "Latent").
	referenceBuckets map[string][]graphmodel.Reference

	dangling []graphmodel.Reference

	retained []*graphmodel.Declaration

	// Auxiliary relations filled in by the mutation passes (§3).
	conformances           map[string][]string // conforming decl symbol-id -> protocol symbol-id(s)
	protocolDefaultImpl    map[string]map[string]string // protocol id -> member name -> default-impl symbol-id
	overrideBase           map[string]string   // override symbol-id -> base symbol-id
	letShorthandContainers map[string]*graphmodel.Declaration
}

// New returns an empty Graph, ready for concurrent Commit calls.
func New() *Graph {
	return &Graph{
		bySymbolID:              make(map[string]*graphmodel.Declaration),
		byLocation:              make(map[string][]*graphmodel.Declaration),
		byLine:                  make(map[string][]*graphmodel.Declaration),
		declByKey:               make(map[graphmodel.MergeKey]*graphmodel.Declaration),
		files:                   make(map[string]*graphmodel.SourceFile),
		parameterSymbolIDs:      graphmodel.NewStringSet(),
		pendingChildren:         make(map[string][]*graphmodel.Declaration),
		referenceBuckets:        make(map[string][]graphmodel.Reference),
		conformances:            make(map[string][]string),
		protocolDefaultImpl:     make(map[string]map[string]string),
		overrideBase:            make(map[string]string),
		letShorthandContainers:  make(map[string]*graphmodel.Declaration),
	}
}

// DeclBySymbolID looks up a declaration by one of its symbol-ids. Each
// symbol-id maps to at most one declaration (§3 invariant).
func (g *Graph) DeclBySymbolID(id string) (*graphmodel.Declaration, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	d, ok := g.bySymbolID[id]
	return d, ok
}

// DeclsByLocation returns every declaration at loc's exact (file, line,
// column) — more than one can share a point (e.g. a property and its
// same-line getter), which is why the §4.4 reconciler needs a list here.
func (g *Graph) DeclsByLocation(loc graphmodel.Location) []*graphmodel.Declaration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*graphmodel.Declaration(nil), g.byLocation[loc.Key()]...)
}

// DeclsByLine returns every declaration on loc's (file, line), ignoring
// column — the §4.4 fallback lookup table.
func (g *Graph) DeclsByLine(loc graphmodel.Location) []*graphmodel.Declaration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*graphmodel.Declaration(nil), g.byLine[loc.LineKey()]...)
}

// AllDeclarations returns every declaration in stable insertion order.
// Callers must not mutate the returned slice.
func (g *Graph) AllDeclarations() []*graphmodel.Declaration {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*graphmodel.Declaration, len(g.all))
	copy(out, g.all)
	return out
}

// File returns the SourceFile for path, creating it if absent.
func (g *Graph) File(path string) *graphmodel.SourceFile {
	g.mu.Lock()
	defer g.mu.Unlock()
	f, ok := g.files[path]
	if !ok {
		f = graphmodel.NewSourceFile(path)
		g.files[path] = f
	}
	return f
}

// Files returns every SourceFile known to the graph, sorted by path.
func (g *Graph) Files() []*graphmodel.SourceFile {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*graphmodel.SourceFile, 0, len(g.files))
	for _, f := range g.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// IsParameterSymbolID reports whether id was recorded as a parameter
// symbol-id at ingest time (§4.1). Used by the graph builder (§4.2) to
// decide whether orphan children are synthesized accessors of a parameter
// and should be discarded.
func (g *Graph) IsParameterSymbolID(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.parameterSymbolIDs.Has(id)
}

// Retain marks decl retained and records it in the graph's retained set.
// Per §3 this flag is monotonically non-decreasing: retaining an
// already-retained declaration is a no-op.
func (g *Graph) Retain(decl *graphmodel.Declaration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.retainLocked(decl)
}

func (g *Graph) retainLocked(decl *graphmodel.Declaration) {
	if decl.Retained {
		return
	}
	decl.Retain()
	g.retained = append(g.retained, decl)
}

// MarkReachable marks decl reachable by traversal, used only by the
// transitive-reachability pass (§4.5 rule 9). Unlike Retain this does not
// add decl to the retained set: reachable-but-not-retained declarations
// are live but were not retained by policy (§3 distinguishes the two).
func (g *Graph) MarkReachable(decl *graphmodel.Declaration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	decl.MarkReachable()
}

// RetainTree retains decl and every declaration nested under it (the
// behavior required by the ignore / ignore-all comment commands, §4.3).
func (g *Graph) RetainTree(decl *graphmodel.Declaration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, d := range decl.AllDescendants() {
		g.retainLocked(d)
	}
}

// Retained returns every declaration retained so far, in the order they
// were retained.
func (g *Graph) Retained() []*graphmodel.Declaration {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*graphmodel.Declaration, len(g.retained))
	copy(out, g.retained)
	return out
}
