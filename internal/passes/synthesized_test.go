package passes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/passes"
)

// §4.5 rule 4 / scenario 4: Codable conformance retains the synthesized
// init(from:) and encode(to:) members, and the conformer's own properties.
func TestSynthesizedMemberRetainerRetainsCodableMembers(t *testing.T) {
	g := graph.New()
	enumE := declAt(graphmodel.KindEnum, "E", 1)
	prop := declAt(graphmodel.KindVariableInstance, "E.x", 2)
	initFrom := declAt(graphmodel.KindConstructor, "E.initFrom", 3)
	initFrom.Name = "init(from:)"
	encodeTo := declAt(graphmodel.KindMethodInstance, "E.encodeTo", 4)
	encodeTo.Name = "encode(to:)"
	enumE.AddChild(prop)
	enumE.AddChild(initFrom)
	enumE.AddChild(encodeTo)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{enumE, prop, initFrom, encodeTo}
	g.Commit(fc)
	g.AddConformance("E", "Codable")

	passes.SynthesizedMemberRetainer(g, passes.Config{})

	assert.True(t, initFrom.Retained)
	assert.True(t, encodeTo.Retained)
	assert.True(t, prop.Retained)
}

// §6 external-encodable-protocols: a configured protocol name behaves as
// Encodable for synthesis purposes.
func TestSynthesizedMemberRetainerHonorsExternalEncodableProtocols(t *testing.T) {
	g := graph.New()
	typ := declAt(graphmodel.KindStruct, "S", 1)
	encodeTo := declAt(graphmodel.KindMethodInstance, "S.encodeTo", 2)
	encodeTo.Name = "encode(to:)"
	typ.AddChild(encodeTo)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{typ, encodeTo}
	g.Commit(fc)
	g.AddConformance("S", "MyEncodable")

	passes.SynthesizedMemberRetainer(g, passes.Config{ExternalEncodableProtocols: []string{"MyEncodable"}})
	assert.True(t, encodeTo.Retained)
}

// §4.5 rule 4: a conformance to an unrecognized protocol retains nothing.
func TestSynthesizedMemberRetainerIgnoresUnrecognizedProtocol(t *testing.T) {
	g := graph.New()
	typ := declAt(graphmodel.KindStruct, "S", 1)
	member := declAt(graphmodel.KindMethodInstance, "S.f", 2)
	typ.AddChild(member)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{typ, member}
	g.Commit(fc)
	g.AddConformance("S", "SomeProtocol")

	passes.SynthesizedMemberRetainer(g, passes.Config{})
	assert.False(t, member.Retained)
}

// SPEC_FULL.md §C.1: two enum cases with the same declared type form one
// liveness group — wiring runs regardless of which one is later found
// live by the reachability closure.
func TestEnumGroupLivenessLinksSameTypedSiblings(t *testing.T) {
	g := graph.New()
	enumE := declAt(graphmodel.KindEnum, "E", 1)
	caseA := declAt(graphmodel.KindEnumCase, "E.a", 2)
	caseA.DeclaredType = "Int"
	caseB := declAt(graphmodel.KindEnumCase, "E.b", 3)
	caseB.DeclaredType = "Int"
	enumE.AddChild(caseA)
	enumE.AddChild(caseB)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{enumE, caseA, caseB}
	g.Commit(fc)

	passes.EnumGroupLiveness(g)

	assert.Len(t, caseA.Related, 1)
	assert.Equal(t, "E.b", caseA.Related[0].SymbolID)
	assert.Len(t, caseB.Related, 1)
	assert.Equal(t, "E.a", caseB.Related[0].SymbolID)
}

// SPEC_FULL.md §C.1: cases with differing declared types are not grouped.
func TestEnumGroupLivenessSkipsDifferingTypes(t *testing.T) {
	g := graph.New()
	enumE := declAt(graphmodel.KindEnum, "E", 1)
	caseA := declAt(graphmodel.KindEnumCase, "E.a", 2)
	caseA.DeclaredType = "Int"
	caseB := declAt(graphmodel.KindEnumCase, "E.b", 3)
	caseB.DeclaredType = "String"
	enumE.AddChild(caseA)
	enumE.AddChild(caseB)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{enumE, caseA, caseB}
	g.Commit(fc)

	passes.EnumGroupLiveness(g)

	assert.Empty(t, caseA.Related)
	assert.Empty(t, caseB.Related)
}

// §4.5 rule 8: a declaration with let-shorthand identifiers is marked as a
// container, and the shadowed identifier is wired back to the outer
// declaration of the same name it shadows — a read inside the unwrapped
// scope must retain the outer binding, not vanish on the shadow.
func TestLetShorthandLinkerMarksContainers(t *testing.T) {
	g := graph.New()
	fn := declAt(graphmodel.KindFreeFunction, "F", 1)
	outer := declAt(graphmodel.KindVariableLocal, "F.x", 2)
	outer.Name = "x"
	shorthand := declAt(graphmodel.KindVariableLocal, "F.x.shadow", 5)
	shorthand.Name = "x"
	shorthand.LetShorthandIdentifiers.Add("x")
	fn.AddChild(outer)
	fn.AddChild(shorthand)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{fn, outer, shorthand}
	g.Commit(fc)

	passes.LetShorthandLinker(g)

	assert.True(t, shorthand.IsLetShorthandContainer)
	require.Len(t, shorthand.Related, 1)
	assert.Equal(t, "F.x", shorthand.Related[0].SymbolID)
}
