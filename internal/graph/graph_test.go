package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

func newDecl(kind graphmodel.DeclKind, id string, line int) *graphmodel.Declaration {
	d := graphmodel.NewDeclaration(kind, graphmodel.Location{File: "a.go", Line: line, Column: 1})
	d.SymbolIDs.Add(id)
	return d
}

// §4.2: a parent-symbol-id with children that resolves to a real
// declaration attaches those children under it.
func TestEstablishHierarchyAttachesResolvedParent(t *testing.T) {
	g := graph.New()
	parent := newDecl(graphmodel.KindClass, "p", 1)
	child := newDecl(graphmodel.KindMethodInstance, "c", 2)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{parent, child}
	fc.ParentPendingSymbolID[child] = "p"
	g.Commit(fc)

	g.EstablishHierarchy()

	got, ok := g.DeclBySymbolID("p")
	require.True(t, ok)
	assert.Len(t, got.Children, 1)
	assert.Same(t, got, got.Children[0].Parent)
}

// §4.2: children whose parent symbol-id was recorded as a parameter are
// discarded entirely (synthesized accessors of a parameter).
func TestEstablishHierarchyDiscardsParameterOrphans(t *testing.T) {
	g := graph.New()
	child := newDecl(graphmodel.KindAccessorGetter, "get", 2)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{child}
	fc.ParentPendingSymbolID[child] = "paramSym"
	fc.ParameterSymbolIDs = []string{"paramSym"}
	g.Commit(fc)

	g.EstablishHierarchy()

	_, ok := g.DeclBySymbolID("get")
	assert.False(t, ok)
	assert.Empty(t, g.AllDeclarations())
}

// §4.2: an orphan child whose parent symbol-id never resolves to a
// declaration and was never a parameter stays top-level.
func TestEstablishHierarchyLeavesTrueOrphansTopLevel(t *testing.T) {
	g := graph.New()
	child := newDecl(graphmodel.KindMethodInstance, "orphan", 2)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{child}
	fc.ParentPendingSymbolID[child] = "missing"
	g.Commit(fc)

	g.EstablishHierarchy()

	got, ok := g.DeclBySymbolID("orphan")
	require.True(t, ok)
	assert.Nil(t, got.Parent)
	assert.Contains(t, g.AllDeclarations(), got)
}

// §4.1 dedup: declarations sharing a MergeKey (kind, name, is-implicit,
// is-objc-accessible, location) collapse into one with a unioned
// symbol-id set.
func TestCommitMergesDeclarationsSharingKey(t *testing.T) {
	g := graph.New()
	loc := graphmodel.Location{File: "a.go", Line: 1, Column: 1}
	a := graphmodel.NewDeclaration(graphmodel.KindExtensionClass, loc)
	a.Name = "Ext"
	a.SymbolIDs.Add("id1")
	b := graphmodel.NewDeclaration(graphmodel.KindExtensionClass, loc)
	b.Name = "Ext"
	b.SymbolIDs.Add("id2")

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{a, b}
	g.Commit(fc)

	got1, ok1 := g.DeclBySymbolID("id1")
	got2, ok2 := g.DeclBySymbolID("id2")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Same(t, got1, got2)
	assert.Len(t, g.AllDeclarations(), 1)
}

// §3: Retain is monotonic and RetainTree retains a whole subtree, used by
// the ignore/ignore-all comment commands (§4.3).
func TestRetainTreeRetainsDescendants(t *testing.T) {
	g := graph.New()
	parent := newDecl(graphmodel.KindClass, "p", 1)
	child := newDecl(graphmodel.KindMethodInstance, "c", 2)
	parent.AddChild(child)

	g.RetainTree(parent)

	assert.True(t, parent.Retained)
	assert.True(t, child.Retained)
	assert.ElementsMatch(t, []*graphmodel.Declaration{parent, child}, g.Retained())
}

func TestRetainIsIdempotent(t *testing.T) {
	g := graph.New()
	d := newDecl(graphmodel.KindClass, "p", 1)
	g.Retain(d)
	g.Retain(d)
	assert.Len(t, g.Retained(), 1)
}

// §4.5 rule 2/3 auxiliary relations: conformances and override bases are
// recorded and retrievable for the passes that consume them.
func TestConformanceAndOverrideBaseBookkeeping(t *testing.T) {
	g := graph.New()
	g.AddConformance("S", "P")
	g.AddConformance("S", "Q")
	assert.ElementsMatch(t, []string{"P", "Q"}, g.Conformances("S"))
	assert.Contains(t, g.AllConformers(), "S")

	g.SetOverrideBase("Sub.m", "Base.m")
	base, ok := g.OverrideBase("Sub.m")
	require.True(t, ok)
	assert.Equal(t, "Base.m", base)
	assert.Contains(t, g.AllOverrides(), "Sub.m")
}

func TestSetAndLookupProtocolDefaultImpl(t *testing.T) {
	g := graph.New()
	g.SetProtocolDefaultImpl("P", "f", "P.Extension.f")
	impl, ok := g.ProtocolDefaultImpl("P", "f")
	require.True(t, ok)
	assert.Equal(t, "P.Extension.f", impl)

	_, ok = g.ProtocolDefaultImpl("P", "missing")
	assert.False(t, ok)
}

// §4.5 rules 2/3: AddRelated attaches a related, not plain, reference.
func TestAddRelatedCreatesRelatedReference(t *testing.T) {
	g := graph.New()
	from := newDecl(graphmodel.KindMethodInstance, "S.f", 1)
	to := newDecl(graphmodel.KindMethodInstance, "P.f", 1)

	g.AddRelated(from, to)

	require.Len(t, from.Related, 1)
	assert.True(t, from.Related[0].IsRelated)
	assert.Equal(t, "P.f", from.Related[0].SymbolID)
}
