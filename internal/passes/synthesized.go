package passes

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// synthesizedMemberNames maps a recognized protocol name to the member
// names the compiler synthesizes for a conforming type (§4.5 rule 4).
var synthesizedMemberNames = map[string][]string{
	"Codable":         {"init(from:)", "encode(to:)"},
	"Encodable":       {"encode(to:)"},
	"Decodable":       {"init(from:)"},
	"Hashable":        {"hash(into:)"},
	"CaseIterable":    {"allCases"},
	"RawRepresentable": {"rawValue", "init(rawValue:)"},
}

// SynthesizedMemberRetainer is pass 4 (§4.5): for a conformance to Codable,
// Hashable, CaseIterable, RawRepresentable, Encodable/Decodable (or one of
// cfg.ExternalEncodableProtocols, which behave as Encodable for this
// purpose), retain the compiler-synthesized members and, for Codable-like
// protocols, the stored properties they would serialize.
func SynthesizedMemberRetainer(g *graph.Graph, cfg Config) {
	encodableLike := map[string]bool{}
	for _, name := range cfg.ExternalEncodableProtocols {
		encodableLike[name] = true
	}

	for _, conformerID := range g.AllConformers() {
		conformer, ok := g.DeclBySymbolID(conformerID)
		if !ok {
			continue
		}
		for _, protocolID := range g.Conformances(conformerID) {
			name := protocolName(g, protocolID)
			names, recognized := synthesizedMemberNames[name]
			if !recognized && encodableLike[name] {
				names = synthesizedMemberNames["Encodable"]
				recognized = true
			}
			if !recognized {
				continue
			}

			retainSynthesizedMembers(g, conformer, names)

			if name == "Codable" || name == "Encodable" || name == "Decodable" || encodableLike[name] {
				for _, child := range conformer.Children {
					if child.Kind.IsVariable() {
						g.Retain(child)
					}
				}
			}
		}
	}
}

// retainSynthesizedMembers retains any member of conformer whose name
// matches a synthesized name (e.g. rawValue, allCases) — declarations the
// compiler emits as explicit rather than implicit for these protocols.
func retainSynthesizedMembers(g *graph.Graph, conformer *graphmodel.Declaration, names []string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for _, child := range conformer.Children {
		if want[child.Name] {
			g.Retain(child)
		}
	}
}

// protocolName resolves protocolID to a declared name if the protocol is
// part of the analyzed set; otherwise it assumes the index's symbol-id for
// a standard-library protocol is the protocol's bare name, which is how
// most compiler indices represent well-known built-ins that have no
// declaration site in user code.
func protocolName(g *graph.Graph, protocolID string) string {
	if decl, ok := g.DeclBySymbolID(protocolID); ok {
		return decl.Name
	}
	return protocolID
}
