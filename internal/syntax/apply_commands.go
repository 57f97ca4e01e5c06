package syntax

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// ParameterRetention is the per-function set of parameter names an
// ignore-parameters command names, for the unused-parameter pass (§4.5
// rule 7) to consult alongside objc-retention policy.
type ParameterRetention map[graphmodel.Location]graphmodel.StringSet

// ApplyCommands implements the three comment commands of §4.3: a leading
// file-level ignore-all retains every declaration in the file with its
// hierarchy; a per-declaration ignore retains that declaration and its
// descendants; ignore-parameters records retained parameter names for
// later. honorCommands is false when the configuration option
// ignore-comment-commands (§6) is set, in which case commands are not
// honored at all but ParameterRetention is still returned empty so callers
// need no special-casing.
func ApplyCommands(g *graph.Graph, result FileResult, honorCommands bool) ParameterRetention {
	retention := make(ParameterRetention)
	if !honorCommands {
		return retention
	}

	if hasIgnoreAll(result.FileLeadingCommands) {
		for _, decl := range g.AllDeclarations() {
			if decl.Location.File == result.File && decl.Parent == nil {
				g.RetainTree(decl)
			}
		}
		return retention
	}

	for _, decl := range g.AllDeclarations() {
		if decl.Location.File != result.File {
			continue
		}
		for _, cmd := range ParseAll(decl.CommentCommands.Sorted()) {
			switch cmd.Name {
			case CmdIgnore:
				g.RetainTree(decl)
			case CmdIgnoreParameters:
				names, ok := retention[decl.Location]
				if !ok {
					names = graphmodel.NewStringSet()
					retention[decl.Location] = names
				}
				for _, n := range cmd.Args {
					names.Add(n)
				}
			}
		}
	}

	return retention
}

func hasIgnoreAll(leading []string) bool {
	for _, raw := range leading {
		if cmd, ok := ParseCommand(raw); ok && cmd.Name == CmdIgnoreAll {
			return true
		}
	}
	return false
}
