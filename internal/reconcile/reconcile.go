// Package reconcile implements the two §4.4 subpasses that attach
// references whose parent declaration was unknown at ingest time: latent
// resolution by symbol-id, and a location heuristic for references that
// never had a relation to key off of.
package reconcile

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// Latent implements §4.4's latent subpass: "For every referencer-symbol-id
// bucket, look up a declaration by symbol-id; if found, each reference in
// the bucket is attached to that declaration." Buckets whose symbol-id
// never resolves stay buffered in the graph; nothing here discards them,
// since a later file's ingest could still add the owning declaration
// (ordering across files is unspecified, §5).
func Latent(g *graph.Graph) {
	for referencer, refs := range g.ReferenceBuckets() {
		owner, ok := g.DeclBySymbolID(referencer)
		if !ok {
			continue
		}
		attachAll(owner, refs)
		g.DrainReferenceBucket(referencer)
	}
}

// Dangling implements §4.4's location-heuristic subpass over the
// references ingest couldn't bucket at all. For each dangling reference:
// try exact-location candidates, then line candidates; pick the
// deterministic minimum by graphmodel.Less among the candidates with no
// parent yet, or among all candidates when every one has a parent.
func Dangling(g *graph.Graph) {
	for _, ref := range g.Dangling() {
		owner := pickOwner(g, ref.Location)
		if owner == nil {
			continue
		}
		attachAll(owner, []graphmodel.Reference{ref})
	}
	g.ClearDangling()
}

func pickOwner(g *graph.Graph, loc graphmodel.Location) *graphmodel.Declaration {
	candidates := explicitOnly(g.DeclsByLocation(loc))
	if len(candidates) == 0 {
		candidates = explicitOnly(g.DeclsByLine(loc))
	}
	if len(candidates) == 0 {
		return nil
	}

	pool := candidates[:0:0]
	for _, c := range candidates {
		if c.Parent == nil {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		pool = candidates
	}

	best := pool[0]
	for _, c := range pool[1:] {
		if graphmodel.Less(c, best) {
			best = c
		}
	}
	return best
}

func explicitOnly(decls []*graphmodel.Declaration) []*graphmodel.Declaration {
	out := decls[:0:0]
	for _, d := range decls {
		if !d.IsImplicit {
			out = append(out, d)
		}
	}
	return out
}

func attachAll(owner *graphmodel.Declaration, refs []graphmodel.Reference) {
	for _, r := range refs {
		r.Parent = owner
		rp := r
		if rp.IsRelated {
			owner.Related = append(owner.Related, &rp)
		} else {
			owner.References = append(owner.References, &rp)
		}
	}
}
