package passes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/passes"
)

func declAt(kind graphmodel.DeclKind, id string, line int) *graphmodel.Declaration {
	d := graphmodel.NewDeclaration(kind, graphmodel.Location{File: "a.go", Line: line, Column: 1})
	d.SymbolIDs.Add(id)
	return d
}

// §4.5 rule 1: effective accessibility is the minimum of a declaration's
// own and every enclosing declaration's — a public method on an internal
// type is effectively internal.
func TestAccessibilityCascadeTakesMinimumOfEnclosing(t *testing.T) {
	g := graph.New()
	parent := declAt(graphmodel.KindClass, "P", 1)
	parent.Accessibility = graphmodel.AccessInternal
	child := declAt(graphmodel.KindMethodInstance, "P.m", 2)
	child.Accessibility = graphmodel.AccessPublic
	parent.AddChild(child)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{parent, child}
	g.Commit(fc)

	passes.AccessibilityCascade(g, passes.Config{})

	assert.Equal(t, graphmodel.AccessInternal, child.Accessibility)
}

// §4.5 rule 1 / §6: retain-public marks public/open declarations live.
func TestAccessibilityCascadeRetainsPublicWhenConfigured(t *testing.T) {
	g := graph.New()
	d := declAt(graphmodel.KindFreeFunction, "f", 1)
	d.Accessibility = graphmodel.AccessPublic

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{d}
	g.Commit(fc)

	passes.AccessibilityCascade(g, passes.Config{RetainPublic: true})
	assert.True(t, d.Retained)

	g2 := graph.New()
	d2 := declAt(graphmodel.KindFreeFunction, "f2", 1)
	d2.Accessibility = graphmodel.AccessPublic
	fc2 := graph.NewFileCommit("a.go")
	fc2.Declarations = []*graphmodel.Declaration{d2}
	g2.Commit(fc2)

	passes.AccessibilityCascade(g2, passes.Config{RetainPublic: false})
	assert.False(t, d2.Retained)
}

// §4.5 rule 3: OverrideChainExtender adds the reverse edge, a related
// reference from the base to its override; the override-to-base edge comes
// from the override-of relation at ingest.
func TestOverrideChainExtenderAddsReverseEdge(t *testing.T) {
	g := graph.New()
	base := declAt(graphmodel.KindMethodInstance, "Base.m", 1)
	override := declAt(graphmodel.KindMethodInstance, "Sub.m", 2)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{base, override}
	g.Commit(fc)
	g.SetOverrideBase("Sub.m", "Base.m")

	passes.OverrideChainExtender(g)

	require := assert.New(t)
	require.Len(base.Related, 1)
	require.Equal("Sub.m", base.Related[0].SymbolID)
}

// §4.5 rule 2: conforming to a protocol synthesizes a related reference
// from each protocol member to the matching conformer member.
func TestProtocolConformanceExtenderLinksConformingMembers(t *testing.T) {
	g := graph.New()
	protocol := declAt(graphmodel.KindProtocol, "P", 1)
	protoMember := declAt(graphmodel.KindMethodInstance, "P.f", 2)
	protocol.AddChild(protoMember)

	conformer := declAt(graphmodel.KindStruct, "S", 3)
	implMember := declAt(graphmodel.KindMethodInstance, "S.f", 4)
	implMember.Name = "f"
	protoMember.Name = "f"
	conformer.AddChild(implMember)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{protocol, protoMember, conformer, implMember}
	g.Commit(fc)
	g.AddConformance("S", "P")

	passes.ProtocolConformanceExtender(g)

	if assert.Len(t, protoMember.Related, 1) {
		assert.Equal(t, "S.f", protoMember.Related[0].SymbolID)
	}
}

// §4.5 rule 2: when the conformer has no matching member, the recorded
// protocol-extension default implementation is used instead.
func TestProtocolConformanceExtenderFallsBackToDefaultImpl(t *testing.T) {
	g := graph.New()
	protocol := declAt(graphmodel.KindProtocol, "P", 1)
	protoMember := declAt(graphmodel.KindMethodInstance, "P.f", 2)
	protoMember.Name = "f"
	protocol.AddChild(protoMember)

	conformer := declAt(graphmodel.KindStruct, "S", 3)
	defaultImpl := declAt(graphmodel.KindMethodInstance, "PExt.f", 4)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{protocol, protoMember, conformer, defaultImpl}
	g.Commit(fc)
	g.AddConformance("S", "P")
	g.SetProtocolDefaultImpl("P", "f", "PExt.f")

	passes.ProtocolConformanceExtender(g)

	if assert.Len(t, protoMember.Related, 1) {
		assert.Equal(t, "PExt.f", protoMember.Related[0].SymbolID)
	}
}
