package passes

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// TransitiveReachability is pass 9 (§4.5): starting from the retained set,
// close over outgoing references (both plain and related); every
// declaration reached is live.
func TransitiveReachability(g *graph.Graph) {
	var stack []string
	visited := make(map[string]bool)

	for _, decl := range g.Retained() {
		for id := range decl.SymbolIDs {
			if !visited[id] {
				visited[id] = true
				stack = append(stack, id)
			}
		}
		walk(g, decl, visited, &stack)
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		decl, ok := g.DeclBySymbolID(id)
		if !ok {
			continue
		}
		walk(g, decl, visited, &stack)
	}
}

func walk(g *graph.Graph, decl *graphmodel.Declaration, visited map[string]bool, stack *[]string) {
	g.MarkReachable(decl)
	for _, ref := range decl.References {
		if isSelfReference(decl, ref) {
			continue
		}
		if ref.Role == graphmodel.RoleWrite {
			// An assignment alone does not keep its target alive (§6
			// retain-assign-only-properties reports exactly these by
			// default); a read of the same target elsewhere still
			// reaches it through its own, separate reference.
			continue
		}
		push(g, ref.SymbolID, visited, stack)
	}
	for _, ref := range decl.Related {
		if isSelfReference(decl, ref) {
			continue
		}
		push(g, ref.SymbolID, visited, stack)
	}
}

// isSelfReference reports whether ref is decl referring to itself — a
// reference whose target is one of decl's own symbol-ids, such as a
// recursive call (SPEC_FULL.md §C.2, grounded on gopls unusedfunc's
// curSelf check). Such a reference must not count toward decl's own
// liveness: a recursive function is not "used" merely by calling itself,
// and the sole incoming edge a reachability closure would otherwise see
// for an unused recursive function is exactly this loop. A reference to
// another declaration is followed even when it sits on decl's own line.
func isSelfReference(decl *graphmodel.Declaration, ref *graphmodel.Reference) bool {
	return decl.SymbolIDs.Has(ref.SymbolID)
}

func push(g *graph.Graph, symbolID string, visited map[string]bool, stack *[]string) {
	if symbolID == "" || visited[symbolID] {
		return
	}
	visited[symbolID] = true
	*stack = append(*stack, symbolID)
}
