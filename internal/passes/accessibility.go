package passes

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// AccessibilityCascade is pass 1 (§4.5): compute each declaration's
// effective accessibility as the minimum of its own explicit accessibility
// and every enclosing declaration's, then retain public/open declarations
// when RetainPublic is set.
func AccessibilityCascade(g *graph.Graph, cfg Config) {
	for _, decl := range g.AllDeclarations() {
		decl.Accessibility = effectiveAccessibility(decl)
	}
	if !cfg.RetainPublic {
		return
	}
	for _, decl := range g.AllDeclarations() {
		if decl.Accessibility.IsPublicFacing() {
			g.Retain(decl)
		}
	}
}

func effectiveAccessibility(decl *graphmodel.Declaration) graphmodel.Accessibility {
	eff := decl.Accessibility
	for p := decl.Parent; p != nil; p = p.Parent {
		if p.Accessibility < eff {
			eff = p.Accessibility
		}
	}
	return eff
}
