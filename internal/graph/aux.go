package graph

import (
	"sort"

	"github.com/oxhq/unreach/internal/graphmodel"
)

// AddConformance records that the declaration at conformerID conforms to
// the protocol at protocolID (§3 auxiliary relations, consumed by the
// protocol-conformance-extender pass, §4.5 rule 2).
func (g *Graph) AddConformance(conformerID, protocolID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.conformances[conformerID] = append(g.conformances[conformerID], protocolID)
}

// Conformances returns the protocol symbol-ids conformerID conforms to.
func (g *Graph) Conformances(conformerID string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.conformances[conformerID]...)
}

// AllConformers returns every symbol-id that has at least one recorded
// conformance, for the conformance pass to iterate deterministically.
func (g *Graph) AllConformers() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, len(g.conformances))
	for id := range g.conformances {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SetProtocolDefaultImpl records that protocolID's extension provides a
// default implementation of memberName at implSymbolID (§4.5 rule 2:
// "Account for default implementations provided by protocol extensions").
func (g *Graph) SetProtocolDefaultImpl(protocolID, memberName, implSymbolID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m, ok := g.protocolDefaultImpl[protocolID]
	if !ok {
		m = make(map[string]string)
		g.protocolDefaultImpl[protocolID] = m
	}
	m[memberName] = implSymbolID
}

// ProtocolDefaultImpl returns the default-implementation symbol-id for
// memberName on protocolID, if any.
func (g *Graph) ProtocolDefaultImpl(protocolID, memberName string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	m, ok := g.protocolDefaultImpl[protocolID]
	if !ok {
		return "", false
	}
	id, ok := m[memberName]
	return id, ok
}

// SetOverrideBase records that overrideID overrides baseID (§4.5 rule 3).
func (g *Graph) SetOverrideBase(overrideID, baseID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.overrideBase[overrideID] = baseID
}

// OverrideBase returns the symbol-id overrideID overrides, if recorded.
func (g *Graph) OverrideBase(overrideID string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, ok := g.overrideBase[overrideID]
	return id, ok
}

// AllOverrides returns every override symbol-id recorded, for the
// override-chain-extender pass to iterate deterministically.
func (g *Graph) AllOverrides() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, len(g.overrideBase))
	for id := range g.overrideBase {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// AddRelated attaches a plain related reference from "from" to "to",
// modeling a synthesized language-semantic edge a pass adds rather than one
// the compiler index recorded (§4.5 rules 2 and 3).
func (g *Graph) AddRelated(from, to *graphmodel.Declaration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ref := &graphmodel.Reference{
		Kind:      to.Kind,
		Location:  to.Location,
		Name:      to.Name,
		IsRelated: true,
		Parent:    from,
	}
	for id := range to.SymbolIDs {
		ref.SymbolID = id
		break
	}
	from.Related = append(from.Related, ref)
}

// MarkLetShorthandContainer records decl as a container whose shadow
// bindings should be considered references (§4.5 rule 8).
func (g *Graph) MarkLetShorthandContainer(decl *graphmodel.Declaration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	decl.IsLetShorthandContainer = true
	g.letShorthandContainers[decl.Location.Key()] = decl
}
