package passes

import (
	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
)

// UnusedParameterPass is pass 7 (§4.5): receive a mapping from
// function-location to parameters-unused-in-body from the external syntax
// visitor, attach each parameter to its function, and retain it iff the
// function is objc-accessible (with retain-objc-accessible set), the
// function is a protocol method and retain-unused-protocol-func-params is
// set, or the function's ignore-parameters command named it.
func UnusedParameterPass(g *graph.Graph, cfg Config, in Inputs) {
	for _, rec := range in.UnusedParameters {
		fn := findFunction(g, rec.FunctionLocation)
		if fn == nil {
			continue
		}

		named := in.ParameterRetention[rec.FunctionLocation]

		for _, name := range rec.ParameterNames {
			up := &graphmodel.UnusedParameter{Name: name, Location: rec.FunctionLocation}
			fn.UnusedParameters = append(fn.UnusedParameters, up)

			switch {
			case cfg.RetainObjcAccessible && fn.IsObjcAccessible:
				up.Retained = true
			case cfg.RetainUnusedProtocolFuncParams && isProtocolMethod(fn):
				up.Retained = true
			case named != nil && named.Has(name):
				up.Retained = true
			}
		}
	}
}

func findFunction(g *graph.Graph, loc graphmodel.Location) *graphmodel.Declaration {
	candidates := g.DeclsByLocation(loc)
	if len(candidates) == 0 {
		candidates = g.DeclsByLine(loc)
	}
	for _, c := range candidates {
		if c.Kind.IsMethod() || c.Kind == graphmodel.KindFreeFunction || c.Kind == graphmodel.KindConstructor {
			return c
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return nil
}

func isProtocolMethod(fn *graphmodel.Declaration) bool {
	return fn.Parent != nil && fn.Parent.Kind == graphmodel.KindProtocol
}
