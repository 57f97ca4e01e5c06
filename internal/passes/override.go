package passes

import "github.com/oxhq/unreach/internal/graph"

// OverrideChainExtender is pass 3 (§4.5): "for each method that overrides
// another, ensure a related reference in both directions so that calling
// either form retains both." The override edge itself (override-of, §4.1)
// already gave the override a related reference to its base; this pass
// adds the reverse edge so a final override reachable only through its
// base still retains the override.
func OverrideChainExtender(g *graph.Graph) {
	for _, overrideID := range g.AllOverrides() {
		baseID, ok := g.OverrideBase(overrideID)
		if !ok {
			continue
		}
		override, ok := g.DeclBySymbolID(overrideID)
		if !ok {
			continue
		}
		base, ok := g.DeclBySymbolID(baseID)
		if !ok {
			continue
		}
		g.AddRelated(base, override)
	}
}
