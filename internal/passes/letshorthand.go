package passes

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// LetShorthandLinker is pass 8 (§4.5): for declarations bound by shorthand
// optional unwrapping (`if let x`, `guard let x`), mark them as containers
// and wire each shadowed identifier to the outer declaration of the same
// name it shadows. A read of the shorthand identifier inside the unwrapped
// scope is, semantically, a use of the outer declaration — without this
// edge the outer declaration would look dead whenever its only uses are
// behind a shadowing unwrap.
//
// Grounded on the declaration/usage split of a Go vet-style shadow
// checker's usage collector (`other_examples/.../scopeguard/internal/
// usage/collector.go`'s `declUsage`/`current` bookkeeping, which resolves a
// read against the declaration it shadows rather than treating the
// shadowing binding as a fresh, independently-live one).
func LetShorthandLinker(g *graph.Graph) {
	for _, decl := range g.AllDeclarations() {
		if decl.LetShorthandIdentifiers.Len() == 0 {
			continue
		}
		g.MarkLetShorthandContainer(decl)
		for _, name := range decl.LetShorthandIdentifiers.Sorted() {
			if outer := findShadowedDeclaration(decl, name); outer != nil {
				g.AddRelated(decl, outer)
			}
		}
	}
}

// findShadowedDeclaration looks for the outer declaration a shorthand
// identifier named name shadows: the nearest ancestor scope's own child of
// the same name, declared before decl's location. Ties at that scope break
// by graphmodel.Less for determinism (§8).
func findShadowedDeclaration(decl *graphmodel.Declaration, name string) *graphmodel.Declaration {
	for ancestor := decl.Parent; ancestor != nil; ancestor = ancestor.Parent {
		var candidates []*graphmodel.Declaration
		for _, sibling := range ancestor.Children {
			if sibling == decl || sibling.Name != name {
				continue
			}
			if sibling.Location.Less(decl.Location) {
				candidates = append(candidates, sibling)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if graphmodel.Less(c, best) {
				best = c
			}
		}
		return best
	}
	return nil
}
