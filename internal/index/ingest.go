package index

import (
	"fmt"
	"strings"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// objcPrefix is the compiler's marker for an objc-bridged symbol-id (§4.1:
// "A symbol-id whose string form starts with the c: prefix is treated as
// objc-accessible").
const objcPrefix = "c:"

// IngestFile implements §4.1 for a single file: walk every compilation
// unit's occurrences, build raw declarations, and bucket references by
// referencer symbol-id (resolved later) or onto the dangling list. The
// returned FileCommit is a self-contained buffer; it touches no shared
// state and can be built by any worker in the ingestion pool (§5).
func IngestFile(file string, units []UnitRef, opts Options) (*graph.FileCommit, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("ingest: %s: no compilation units", file)
	}

	fc := graph.NewFileCommit(file)

	seenModule := ""
	for _, u := range units {
		module := u.Unit.ModuleName()
		if seenModule == "" {
			seenModule = module
		} else if seenModule != module {
			return nil, graphmodel.Wrap(graphmodel.ErrConflictingIndexUnits,
				fmt.Sprintf("file %s compiled into units with different modules", file), nil)
		}
		fc.Modules = append(fc.Modules, module)
		fc.Imports = append(fc.Imports, u.Unit.Imports()...)

		occurrences, err := u.Store.Occurrences(u.Unit)
		if err != nil {
			return nil, graphmodel.Wrap(graphmodel.ErrIndexReadFailure,
				fmt.Sprintf("reading index for %s", file), err)
		}

		for _, occ := range occurrences {
			switch {
			case occ.Roles.Definition:
				ingestDefinition(fc, occ, opts)
			case occ.Roles.Reference:
				ingestReference(fc, occ)
			case occ.Roles.Implicit:
				ingestImplicit(fc, occ)
			}
		}
	}

	return fc, nil
}

// ingestDefinition parses a definition occurrence into a raw Declaration,
// processes its relations, and — unless it is a parameter — adds it to the
// commit's declaration list.
func ingestDefinition(fc *graph.FileCommit, occ Occurrence, opts Options) {
	isObjc := strings.HasPrefix(occ.Symbol.ID, objcPrefix)

	if occ.Symbol.Kind == graphmodel.KindVariableParameter {
		fc.ParameterSymbolIDs = append(fc.ParameterSymbolIDs, occ.Symbol.ID)
		return
	}

	decl := graphmodel.NewDeclaration(occ.Symbol.Kind, occ.Location)
	decl.Name = occ.Symbol.Name
	decl.SymbolIDs.Add(occ.Symbol.ID)
	decl.IsImplicit = occ.Roles.Implicit
	decl.IsObjcAccessible = isObjc

	for _, rel := range occ.Relations {
		switch rel.Role {
		case RelChildOf:
			fc.ParentPendingSymbolID[decl] = rel.SymbolID
		case RelOverrideOf:
			ref := graphmodel.Reference{
				Kind:      decl.Kind,
				SymbolID:  rel.SymbolID,
				Location:  decl.Location,
				Name:      decl.Name,
				IsRelated: true,
				Role:      graphmodel.RolePlain,
				Parent:    decl,
			}
			decl.Related = append(decl.Related, &ref)
			fc.ImplicitOverrides = append(fc.ImplicitOverrides, graph.ImplicitOverride{
				OverrideSymbolID: occ.Symbol.ID,
				BaseSymbolID:     rel.SymbolID,
			})
		case RelBaseOf, RelCalledBy, RelExtendedBy, RelContainedBy:
			fc.ReferenceBuckets[rel.SymbolID] = append(fc.ReferenceBuckets[rel.SymbolID], graphmodel.Reference{
				Kind:      decl.Kind,
				SymbolID:  firstSymbolID(decl),
				Location:  decl.Location,
				Name:      decl.Name,
				IsRelated: rel.Role == RelBaseOf,
			})
		case RelConformsTo:
			fc.ConformanceEdges = append(fc.ConformanceEdges, graph.ConformanceEdge{
				ConformerSymbolID: occ.Symbol.ID,
				ProtocolSymbolID:  rel.SymbolID,
			})
		}
	}

	fc.Declarations = append(fc.Declarations, decl)

	if decl.IsImplicit || (isObjc && opts.RetainObjcAccessible) {
		fc.RetainRaw = append(fc.RetainRaw, decl)
	}
}

// ingestReference parses a reference occurrence (§4.1 "Reference
// occurrences"): relations from {base-of, called-by, contained-by,
// extended-by} each produce one bucketed reference; with none, a single
// reference goes onto the dangling list unless its kind is module.
func ingestReference(fc *graph.FileCommit, occ Occurrence) {
	role := graphmodel.RolePlain
	if occ.Roles.Write {
		role = graphmodel.RoleWrite
	}

	bucketed := false
	for _, rel := range occ.Relations {
		switch rel.Role {
		case RelBaseOf, RelCalledBy, RelExtendedBy, RelContainedBy:
			fc.ReferenceBuckets[rel.SymbolID] = append(fc.ReferenceBuckets[rel.SymbolID], graphmodel.Reference{
				Kind:      occ.Symbol.Kind,
				SymbolID:  occ.Symbol.ID,
				Location:  occ.Location,
				Name:      occ.Symbol.Name,
				Role:      role,
				IsRelated: rel.Role == RelBaseOf,
			})
			bucketed = true
		}
	}
	if bucketed {
		return
	}
	if occ.Symbol.Kind == graphmodel.KindModule {
		return // unattributed module references are discarded
	}
	fc.Dangling = append(fc.Dangling, graphmodel.Reference{
		Kind:     occ.Symbol.Kind,
		SymbolID: occ.Symbol.ID,
		Location: occ.Location,
		Name:     occ.Symbol.Name,
		Role:     role,
	})
}

// ingestImplicit parses an implicit occurrence, used only to model
// override edges the compiler adds without an explicit relation on the
// definition itself (§4.1).
func ingestImplicit(fc *graph.FileCommit, occ Occurrence) {
	for _, rel := range occ.Relations {
		if rel.Role == RelOverrideOf {
			fc.ImplicitOverrides = append(fc.ImplicitOverrides, graph.ImplicitOverride{
				OverrideSymbolID: occ.Symbol.ID,
				BaseSymbolID:     rel.SymbolID,
			})
		}
	}
}

func firstSymbolID(d *graphmodel.Declaration) string {
	for id := range d.SymbolIDs {
		return id
	}
	return ""
}
