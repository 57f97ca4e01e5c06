package passes

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// EnumGroupLiveness implements SPEC_FULL.md §C.1, grounded on gopls
// unusedfunc's treatment of a single-type const block as one liveness
// unit: a run of ≥2 sibling enum-case declarations sharing an identical
// declared type is one group — using any one member counts as using the
// whole group. This only changes how "at least one reference" is computed
// for enum-case declarations; it adds no new declaration kind and changes
// nothing about §4.5 rule 10.
//
// Implemented as related-reference wiring (like the conformance and
// override extenders) rather than by directly flipping a liveness bit, so
// the existing transitive-reachability closure (pass 9) does the actual
// propagation: every member of a group gets a related reference to every
// other member, so reaching one reaches all.
func EnumGroupLiveness(g *graph.Graph) {
	for _, parent := range g.AllDeclarations() {
		groups := make(map[string][]int)
		for i, child := range parent.Children {
			if child.Kind != graphmodel.KindEnumCase {
				continue
			}
			if child.DeclaredType == "" {
				continue
			}
			groups[child.DeclaredType] = append(groups[child.DeclaredType], i)
		}
		for _, idxs := range groups {
			if len(idxs) < 2 {
				continue
			}
			for _, i := range idxs {
				for _, j := range idxs {
					if i == j {
						continue
					}
					g.AddRelated(parent.Children[i], parent.Children[j])
				}
			}
		}
	}
}
