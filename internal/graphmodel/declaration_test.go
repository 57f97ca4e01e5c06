package graphmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// §8 invariant: "Every declaration merged from multiple symbol-ids has
// symbol-id-set size >= 1 and all member ids resolve back to it via the
// by-id index" — this is the Declaration-local half of that invariant; the
// by-id resolution half is exercised at the graph/commit layer.
func TestMergeFromUnionsSymbolIDsAndRelations(t *testing.T) {
	loc := Location{File: "a.go", Line: 1, Column: 1}
	a := NewDeclaration(KindExtensionClass, loc)
	a.SymbolIDs.Add("id1")
	a.Attributes.Add("objc")

	b := NewDeclaration(KindExtensionClass, loc)
	b.SymbolIDs.Add("id2")
	b.Attributes.Add("final")
	b.References = append(b.References, &Reference{SymbolID: "used", Parent: b})

	a.MergeFrom(b)

	assert.True(t, a.SymbolIDs.Has("id1"))
	assert.True(t, a.SymbolIDs.Has("id2"))
	assert.True(t, a.Attributes.Has("objc"))
	assert.True(t, a.Attributes.Has("final"))
	if assert.Len(t, a.References, 1) {
		assert.Same(t, a, a.References[0].Parent)
	}
}

func TestKeyIdentifiesDeduplicationTuple(t *testing.T) {
	loc := Location{File: "a.go", Line: 4, Column: 2}
	a := NewDeclaration(KindAccessorGetter, loc)
	a.Name = "get"
	b := NewDeclaration(KindAccessorGetter, loc)
	b.Name = "get"
	c := NewDeclaration(KindAccessorGetter, loc)
	c.Name = "set"

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestRetainIsMonotonic(t *testing.T) {
	d := NewDeclaration(KindClass, Location{File: "a.go", Line: 1})
	assert.False(t, d.IsReachable())
	d.Retain()
	assert.True(t, d.IsReachable())
	d.Retain()
	assert.True(t, d.Retained)
}

func TestAllDescendantsIncludesSelf(t *testing.T) {
	parent := NewDeclaration(KindClass, Location{File: "a.go", Line: 1})
	child := NewDeclaration(KindMethodInstance, Location{File: "a.go", Line: 2})
	parent.AddChild(child)

	all := parent.AllDescendants()
	assert.ElementsMatch(t, []*Declaration{parent, child}, all)
	assert.Same(t, parent, child.Parent)
}
