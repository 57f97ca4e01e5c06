package passes

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// ProtocolConformanceExtender is pass 2 (§4.5): for each declaration that
// conforms to a protocol, every member of that protocol gets a related
// reference onto the conforming type's member of the same name, so that
// reaching the protocol member reaches the concrete implementation.
// Default implementations provided by protocol extensions are accounted
// for: a protocol member with no matching conformer member instead gets a
// related reference onto its recorded default implementation.
func ProtocolConformanceExtender(g *graph.Graph) {
	for _, conformerID := range g.AllConformers() {
		conformer, ok := g.DeclBySymbolID(conformerID)
		if !ok {
			continue
		}
		for _, protocolID := range g.Conformances(conformerID) {
			protocol, ok := g.DeclBySymbolID(protocolID)
			if !ok {
				continue
			}
			for _, member := range protocol.Children {
				target := findConformingMember(conformer, member.Name)
				if target == nil {
					if implID, ok := g.ProtocolDefaultImpl(protocolID, member.Name); ok {
						if impl, ok := g.DeclBySymbolID(implID); ok {
							target = impl
						}
					}
				}
				if target == nil {
					continue
				}
				g.AddRelated(member, target)
			}
		}
	}
}

func findConformingMember(decl *graphmodel.Declaration, name string) *graphmodel.Declaration {
	for _, child := range decl.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}
