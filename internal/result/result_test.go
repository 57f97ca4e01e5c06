package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/passes"
	"github.com/oxhq/unreach/internal/result"
)

func declAt(kind graphmodel.DeclKind, id, name string, line int) *graphmodel.Declaration {
	d := graphmodel.NewDeclaration(kind, graphmodel.Location{File: "a.go", Line: line, Column: 1})
	d.SymbolIDs.Add(id)
	d.Name = name
	return d
}

// §4.5 rule 10 / §3: a declaration that is neither reachable nor
// structurally required is collected as unused; a reachable one is not.
func TestCollectReportsOnlyUnreachableDeclarations(t *testing.T) {
	g := graph.New()
	dead := declAt(graphmodel.KindFreeFunction, "f.dead", "dead", 1)
	alive := declAt(graphmodel.KindFreeFunction, "f.alive", "alive", 2)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{dead, alive}
	g.Commit(fc)
	g.Retain(alive)
	alive.MarkReachable()

	records := result.Collect(g, passes.Config{}, nil, nil)
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "dead")
	assert.NotContains(t, names, "alive")
}

// §4.5 rule 10: destructors and required initializers are structurally
// required regardless of liveness and never reported.
func TestCollectExcludesStructurallyRequired(t *testing.T) {
	g := graph.New()
	destructor := declAt(graphmodel.KindDestructor, "C.deinit", "deinit", 1)
	reqInit := declAt(graphmodel.KindConstructor, "C.init", "init", 2)
	reqInit.Modifiers.Add("required")

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{destructor, reqInit}
	g.Commit(fc)

	records := result.Collect(g, passes.Config{}, nil, nil)
	assert.Empty(t, records)
}

// §6 / §4.6: an implicit declaration is never reported even if unreached.
func TestCollectExcludesImplicitDeclarations(t *testing.T) {
	g := graph.New()
	implicit := declAt(graphmodel.KindMethodInstance, "E.synth", "synth", 1)
	implicit.IsImplicit = true

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{implicit}
	g.Commit(fc)

	records := result.Collect(g, passes.Config{}, nil, nil)
	assert.Empty(t, records)
}

// SPEC_FULL.md §C.3: an implicitly-public declaration (no explicit
// accessibility keyword) also yields a redundant-public-accessibility
// record alongside the unused-declaration one.
func TestCollectFlagsRedundantPublicAccessibility(t *testing.T) {
	g := graph.New()
	d := declAt(graphmodel.KindFreeFunction, "f.pub", "pub", 1)
	d.Accessibility = graphmodel.AccessPublic
	d.AccessibilityExplicit = false

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{d}
	g.Commit(fc)

	records := result.Collect(g, passes.Config{}, nil, nil)
	var categories []result.Category
	for _, r := range records {
		categories = append(categories, r.Category)
	}
	assert.Contains(t, categories, result.CategoryUnusedDeclaration)
	assert.Contains(t, categories, result.CategoryRedundantPublic)
}

// §6 retain-assign-only-properties: a property with only write-role
// incoming references is skipped when the option is set, but still
// reported when it is off.
func TestCollectHonorsRetainAssignOnlyProperties(t *testing.T) {
	g := graph.New()
	prop := declAt(graphmodel.KindVariableInstance, "C.x", "x", 1)
	writer := declAt(graphmodel.KindMethodInstance, "C.set", "set", 2)
	writer.References = []*graphmodel.Reference{
		{Kind: graphmodel.KindVariableInstance, SymbolID: "C.x", Role: graphmodel.RoleWrite, Parent: writer},
	}

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{prop, writer}
	g.Commit(fc)
	g.Retain(writer)
	writer.MarkReachable()

	records := result.Collect(g, passes.Config{RetainAssignOnlyProperties: true}, nil, nil)
	var names []string
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.NotContains(t, names, "x")

	records2 := result.Collect(g, passes.Config{RetainAssignOnlyProperties: false}, nil, nil)
	names2 := make([]string, 0, len(records2))
	for _, r := range records2 {
		names2 = append(names2, r.Name)
	}
	assert.Contains(t, names2, "x")
}

// §6: a property that is never referenced at all — read or written — is
// still reported even with retain-assign-only-properties set; the option
// only covers the narrower write-only case.
func TestCollectRetainAssignOnlyPropertiesDoesNotHideFullyUnusedProperty(t *testing.T) {
	g := graph.New()
	prop := declAt(graphmodel.KindVariableInstance, "C.x", "x", 1)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{prop}
	g.Commit(fc)

	records := result.Collect(g, passes.Config{RetainAssignOnlyProperties: true}, nil, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "x", records[0].Name)
}

// §4.6: an unused-parameter record from pass 7 surfaces as a separate
// result, unless retained.
func TestCollectEmitsUnusedParameterRecords(t *testing.T) {
	g := graph.New()
	fn := declAt(graphmodel.KindFreeFunction, "f.f", "f", 1)
	fn.UnusedParameters = []*graphmodel.UnusedParameter{
		{Name: "b", Location: graphmodel.Location{File: "a.go", Line: 1, Column: 10}},
	}

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{fn}
	g.Commit(fc)
	g.Retain(fn)
	fn.MarkReachable()

	records := result.Collect(g, passes.Config{}, nil, nil)
	require.Len(t, records, 1)
	assert.Equal(t, result.CategoryUnusedParameter, records[0].Category)
	assert.Equal(t, "b", records[0].Name)
}

// §4.6 / pass 6: unused-import and redundant-conformance records pass
// through Collect verbatim as likely-confidence secondary results.
func TestCollectAppendsSecondaryCategories(t *testing.T) {
	g := graph.New()
	conformer := declAt(graphmodel.KindStruct, "S", "S", 1)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{conformer}
	g.Commit(fc)

	unusedImports := []passes.UnusedImport{{File: "a.go", Import: "fmt"}}
	redundant := []passes.RedundantConformance{{ConformerSymbolID: "S", ProtocolSymbolID: "P"}}

	records := result.Collect(g, passes.Config{}, unusedImports, redundant)

	var categories []result.Category
	for _, r := range records {
		categories = append(categories, r.Category)
	}
	assert.Contains(t, categories, result.CategoryUnusedImport)
	assert.Contains(t, categories, result.CategoryRedundantConformance)
}
