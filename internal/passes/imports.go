package passes

import (
	"strings"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// UnusedImport is one import statement flagged by pass 6.
type UnusedImport struct {
	File   string
	Import string
}

// RedundantConformance is one conformance flagged by pass 6: the protocol
// contributes no member a conforming type wouldn't already have on its
// own.
type RedundantConformance struct {
	ConformerSymbolID string
	ProtocolSymbolID  string
}

// UnusedImportsAndRedundantConformances is pass 6 (§4.5): "Flag imports
// whose module is not referenced by any used declaration, and conformances
// whose protocol contributes no used members beyond what the concrete type
// would have anyway." The unused-import half reads liveness (IsReachable),
// so the driver calls this once reachability (pass 9) has run; the
// redundant-conformance half only needs the graph's structural shape. The
// result collector reports both lists as returned here.
func UnusedImportsAndRedundantConformances(g *graph.Graph) ([]UnusedImport, []RedundantConformance) {
	return unusedImports(g), redundantConformances(g)
}

// unusedImports matches each file's import strings against the referenced
// names recorded on that file's live declarations, using the import's last
// path component as the qualifying package identifier — the convention a
// qualified reference name follows (e.g. "fmt.Sprintf" references import
// "fmt" or ".../fmt").
func unusedImports(g *graph.Graph) []UnusedImport {
	var out []UnusedImport
	for _, file := range g.Files() {
		referenced := referencedQualifiers(g, file.Path)
		for _, imp := range file.Imports {
			if !referenced[lastComponent(imp)] {
				out = append(out, UnusedImport{File: file.Path, Import: imp})
			}
		}
	}
	return out
}

func referencedQualifiers(g *graph.Graph, file string) map[string]bool {
	seen := make(map[string]bool)
	for _, decl := range g.AllDeclarations() {
		if decl.Location.File != file || !decl.IsReachable() {
			continue
		}
		for _, ref := range decl.References {
			if q, _, ok := splitQualified(ref.Name); ok {
				seen[q] = true
			}
		}
	}
	return seen
}

func splitQualified(name string) (qualifier, member string, ok bool) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", "", false
	}
	return name[:idx], name[idx+1:], true
}

func lastComponent(importPath string) string {
	importPath = strings.Trim(importPath, `"`)
	if idx := strings.LastIndex(importPath, "/"); idx >= 0 {
		return importPath[idx+1:]
	}
	return importPath
}

// redundantConformances flags a conformance as redundant when the protocol
// declares no members at all — a marker protocol whose conformance adds no
// obligation a concrete type's own members don't already satisfy.
func redundantConformances(g *graph.Graph) []RedundantConformance {
	var out []RedundantConformance
	for _, conformerID := range g.AllConformers() {
		for _, protocolID := range g.Conformances(conformerID) {
			protocol, ok := g.DeclBySymbolID(protocolID)
			if !ok {
				continue
			}
			if !hasUsableMembers(protocol) {
				out = append(out, RedundantConformance{ConformerSymbolID: conformerID, ProtocolSymbolID: protocolID})
			}
		}
	}
	return out
}

func hasUsableMembers(protocol *graphmodel.Declaration) bool {
	for _, m := range protocol.Children {
		if m.Kind.IsMethod() || m.Kind.IsVariable() || m.Kind == graphmodel.KindSubscript {
			return true
		}
	}
	return false
}
