package syntax

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// Apply writes one file's visitor result into g (§4.3): it finds the
// declaration at each enrichment record's location, fills in its
// attributes/modifiers/footprint fields, assigns a role to every reference
// whose location falls in a footprint set, and records unused-parameter
// candidates for the unused-parameter pass (§4.5 rule 7) to consume later.
//
// A location with no matching declaration is silently skipped: the
// compiler index and the syntax visitor can disagree at the margins (e.g.
// compiler-synthesized locations), and §7 only requires per-declaration
// parser failures to be treated conservatively, not every unmatched
// location to abort the run.
func Apply(g *graph.Graph, result FileResult) []UnusedParamRecord {
	for _, rec := range result.Enrichments {
		candidates := g.DeclsByLocation(rec.Location)
		for _, decl := range candidates {
			applyRecord(decl, rec)
		}
	}
	return result.UnusedParameters
}

func applyRecord(decl *graphmodel.Declaration, rec EnrichmentRecord) {
	if rec.AccessibilityExplicit {
		decl.Accessibility = rec.Accessibility
		decl.AccessibilityExplicit = true
	}
	for _, a := range rec.Attributes {
		decl.Attributes.Add(a)
	}
	for _, m := range rec.Modifiers {
		decl.Modifiers.Add(m)
	}
	for _, c := range rec.CommentCommands {
		decl.CommentCommands.Add(c)
	}
	if rec.DeclaredType != "" {
		decl.DeclaredType = rec.DeclaredType
	}
	decl.Footprint.Merge(rec.Footprint)
	for _, id := range rec.LetShorthandIdentifiers {
		decl.LetShorthandIdentifiers.Add(id)
	}
	decl.HasCapitalSelfFunctionCall = decl.HasCapitalSelfFunctionCall || rec.HasCapitalSelfFunctionCall
	decl.HasGenericFunctionReturnedMetatypeParams = decl.HasGenericFunctionReturnedMetatypeParams || rec.HasGenericFunctionReturnedMetatypeParams

	assignRoles(decl, decl.References)
	assignRoles(decl, decl.Related)
}

// assignRoles implements §4.3's "assigns each of its references a role by
// checking whether the reference's location appears in one of the
// footprint location sets", including the class/protocol inheritance
// distinction.
func assignRoles(decl *graphmodel.Declaration, refs []*graphmodel.Reference) {
	for _, ref := range refs {
		ref.Role = decl.Footprint.RoleFor(ref.Location, decl.Kind == graphmodel.KindProtocol)
	}
}
