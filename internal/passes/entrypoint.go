package passes

import "github.com/oxhq/unreach/internal/graph"

// entryPointNames are declaration names treated as program entry points
// regardless of attributes (§4.5 rule 5).
var entryPointNames = map[string]bool{
	"main": true,
}

// entryPointAttributes are attribute strings (as the syntax visitor
// reports them, §4.3) that mark a declaration as externally invoked: test
// methods, interface-builder-referenced members, and similar framework
// entry points the compiler cannot see a call site for.
var entryPointAttributes = map[string]bool{
	"test":                true,
	"ibaction":            true,
	"iboutlet":            true,
	"interface-builder":   true,
	"main-attribute":      true,
}

// EntryPointRetainer is pass 5 (§4.5): retain declarations named or
// attributed as program entry points — main, test methods, exported,
// objc-exposed when configured, interface-builder-referenced.
func EntryPointRetainer(g *graph.Graph, cfg Config) {
	for _, decl := range g.AllDeclarations() {
		if entryPointNames[decl.Name] {
			g.Retain(decl)
			continue
		}
		for _, attr := range decl.Attributes.Sorted() {
			if entryPointAttributes[attr] {
				g.Retain(decl)
				break
			}
		}
		if decl.Modifiers.Has("exported") {
			g.Retain(decl)
		}
		if cfg.RetainObjcAccessible && decl.IsObjcAccessible {
			g.Retain(decl)
		}
	}
}
