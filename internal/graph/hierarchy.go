package graph

import (
	"sort"

	"github.com/oxhq/unreach/internal/graphmodel"
)

// EstablishHierarchy implements the graph builder of §4.2. It must run
// once, after every file has been committed: for each parent symbol-id that
// received pending children via a child-of relation, attach the children to
// the matching declaration if one exists; if none exists and the parent
// symbol-id was recorded as a parameter symbol-id, the children are
// synthesized accessors of a parameter and are discarded; otherwise they
// remain top-level (module-scope), satisfying the §3 invariant that every
// non-parameter-parented declaration eventually has a parent or is
// considered top-level.
func (g *Graph) EstablishHierarchy() {
	ids := g.PendingChildrenParentIDs()
	sort.Strings(ids) // deterministic regardless of ingestion order (§5)

	for _, parentID := range ids {
		children := g.PendingChildren(parentID)
		parent, found := g.DeclBySymbolID(parentID)

		g.mu.Lock()
		switch {
		case found:
			for _, child := range children {
				parent.AddChild(child)
			}
		case g.parameterSymbolIDs.Has(parentID):
			g.discardLocked(children)
		default:
			// Orphan: stays top-level, already present in g.all.
		}
		delete(g.pendingChildren, parentID)
		g.mu.Unlock()
	}
}

// discardLocked removes children from every index, used when a parameter's
// synthesized accessors turn out to have no real owner (§4.2). Must be
// called with g.mu held.
func (g *Graph) discardLocked(children []*graphmodel.Declaration) {
	discard := make(map[*graphmodel.Declaration]struct{}, len(children))
	for _, c := range children {
		discard[c] = struct{}{}
		delete(g.declByKey, c.Key())
		for id := range c.SymbolIDs {
			delete(g.bySymbolID, id)
		}
		locKey := c.Location.Key()
		g.byLocation[locKey] = removeDecl(g.byLocation[locKey], c)
		lineKey := c.Location.LineKey()
		g.byLine[lineKey] = removeDecl(g.byLine[lineKey], c)
	}

	filtered := g.all[:0:0]
	for _, d := range g.all {
		if _, dropped := discard[d]; !dropped {
			filtered = append(filtered, d)
		}
	}
	g.all = filtered
}

func removeDecl(list []*graphmodel.Declaration, target *graphmodel.Declaration) []*graphmodel.Declaration {
	out := list[:0:0]
	for _, d := range list {
		if d != target {
			out = append(out, d)
		}
	}
	return out
}
