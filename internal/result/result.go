// Package result implements §4.6's result collector: classifying the
// declarations that survive the mutation passes as dead, and several
// secondary categories pass 6 identifies structurally rather than by
// liveness.
package result

import (
	"sort"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/passes"
)

// Category classifies why a result was reported (§4.6, §6 "Result
// output").
type Category string

const (
	CategoryUnusedDeclaration      Category = "unused-declaration"
	CategoryRedundantPublic        Category = "redundant-public-accessibility"
	CategoryUnusedParameter        Category = "unused-parameter"
	CategoryRedundantConformance   Category = "redundant-conformance"
	CategoryUnusedImport           Category = "unused-import"
)

// Confidence distinguishes a structurally certain result (unused
// declarations and unused parameters, always definite) from one a
// secondary analyzer inferred from an absence (redundant public
// accessibility, unused import, redundant conformance, always likely) —
// see SPEC_FULL.md §C.3.
type Confidence string

const (
	ConfidenceDefinite Confidence = "definite"
	ConfidenceLikely   Confidence = "likely"
)

// Record is one reported declaration (§6: "A sequence of records:
// (symbol-id, kind, name, file, line, column, category)").
type Record struct {
	SymbolID   string
	Kind       graphmodel.DeclKind
	Name       string
	Location   graphmodel.Location
	Category   Category
	Confidence Confidence
	Detail     string
}

// Collect runs pass 10 plus the secondary analyzers of pass 6, returning
// the final result set (§4.5 rule 10, §4.6), sorted by location (file,
// line, column; records sharing a location keep their emission order).
// Declaration and parameter records are deduplicated; unused-import and
// redundant-conformance records are reported as given, without
// deduplication.
func Collect(g *graph.Graph, cfg passes.Config, unusedImports []passes.UnusedImport, redundant []passes.RedundantConformance) []Record {
	var out []Record
	seen := make(map[string]bool)

	decls := g.AllDeclarations()
	graphmodel.SortByLocation(decls)
	assignOnly := assignOnlyTargets(decls)

	for _, decl := range decls {
		if decl.IsImplicit {
			continue
		}
		for _, up := range decl.UnusedParameters {
			if up.Retained {
				continue
			}
			emitParam(&out, seen, decl, up)
		}
		if decl.IsReachable() {
			continue
		}
		if structurallyRequired(decl) {
			continue
		}
		if decl.Kind.IsVariable() && decl.Kind != graphmodel.KindVariableParameter &&
			cfg.RetainAssignOnlyProperties && isAssignOnly(decl, assignOnly) {
			continue
		}
		emit(&out, seen, decl, CategoryUnusedDeclaration, ConfidenceDefinite, "")

		if !decl.AccessibilityExplicit && decl.Accessibility.IsPublicFacing() {
			emit(&out, seen, decl, CategoryRedundantPublic, ConfidenceLikely, "")
		}
	}

	for _, imp := range unusedImports {
		out = append(out, Record{
			Name:       imp.Import,
			Location:   graphmodel.Location{File: imp.File},
			Category:   CategoryUnusedImport,
			Confidence: ConfidenceLikely,
		})
	}

	for _, rc := range redundant {
		conformer, ok := g.DeclBySymbolID(rc.ConformerSymbolID)
		if !ok {
			continue
		}
		out = append(out, Record{
			SymbolID:   rc.ConformerSymbolID,
			Kind:       conformer.Kind,
			Name:       conformer.Name,
			Location:   conformer.Location,
			Category:   CategoryRedundantConformance,
			Confidence: ConfidenceLikely,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Location.Less(out[j].Location) })
	return out
}

func emit(out *[]Record, seen map[string]bool, decl *graphmodel.Declaration, cat Category, conf Confidence, detail string) {
	key := firstID(decl) + "|" + decl.Location.Key() + "|" + string(cat)
	if seen[key] {
		return
	}
	seen[key] = true
	*out = append(*out, Record{
		SymbolID:   firstID(decl),
		Kind:       decl.Kind,
		Name:       decl.Name,
		Location:   decl.Location,
		Category:   cat,
		Confidence: conf,
		Detail:     detail,
	})
}

func emitParam(out *[]Record, seen map[string]bool, fn *graphmodel.Declaration, up *graphmodel.UnusedParameter) {
	key := up.Location.Key() + "|" + up.Name + "|" + string(CategoryUnusedParameter)
	if seen[key] {
		return
	}
	seen[key] = true
	*out = append(*out, Record{
		SymbolID:   firstID(fn),
		Kind:       graphmodel.KindVariableParameter,
		Name:       up.Name,
		Location:   up.Location,
		Category:   CategoryUnusedParameter,
		Confidence: ConfidenceDefinite,
	})
}

func firstID(d *graphmodel.Declaration) string {
	for id := range d.SymbolIDs {
		return id
	}
	return ""
}

// structurallyRequired reports whether decl must exist regardless of
// usage: destructors, and initializers marked required (§4.5 rule 10).
func structurallyRequired(decl *graphmodel.Declaration) bool {
	if decl.Kind == graphmodel.KindDestructor {
		return true
	}
	if decl.Kind == graphmodel.KindConstructor && decl.Modifiers.Has("required") {
		return true
	}
	return false
}

// assignOnlyTargets scans every declaration's outgoing references once and
// returns the set of target symbol-ids that received at least one
// RoleWrite reference and no reference of any other role — exactly
// "assigned somewhere, never read" (§6 retain-assign-only-properties).
// Reference.Role only carries this distinction when the index.Store/
// syntax.Visitor pair feeding the graph populates RoleFlags.Write; the
// bundled Go provider (internal/langgo) does not yet emit field-access
// occurrences at all, so this set is always empty for it today — see
// DESIGN.md's Open Question decisions.
func assignOnlyTargets(decls []*graphmodel.Declaration) map[string]bool {
	sawWrite := make(map[string]bool)
	sawOther := make(map[string]bool)
	for _, decl := range decls {
		for _, refs := range [][]*graphmodel.Reference{decl.References, decl.Related} {
			for _, ref := range refs {
				if ref.Role == graphmodel.RoleWrite {
					sawWrite[ref.SymbolID] = true
				} else {
					sawOther[ref.SymbolID] = true
				}
			}
		}
	}
	out := make(map[string]bool, len(sawWrite))
	for id := range sawWrite {
		if !sawOther[id] {
			out[id] = true
		}
	}
	return out
}

// isAssignOnly reports whether decl is among the assign-only targets.
func isAssignOnly(decl *graphmodel.Declaration, assignOnly map[string]bool) bool {
	for id := range decl.SymbolIDs {
		if assignOnly[id] {
			return true
		}
	}
	return false
}
