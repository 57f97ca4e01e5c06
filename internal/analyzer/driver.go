// Package analyzer wires the full pipeline together: ingest, hierarchy,
// syntax enrichment, reconciliation, the mutation-pass cascade, and result
// collection (§2, §7).
package analyzer

import (
	"context"
	"fmt"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/index"
	"github.com/oxhq/unreach/internal/passes"
	"github.com/oxhq/unreach/internal/reconcile"
	"github.com/oxhq/unreach/internal/result"
	"github.com/oxhq/unreach/internal/syntax"
)

// Config is the full set of run options threaded through the pipeline.
type Config struct {
	Passes              passes.Config
	RetainObjcAccessible bool
}

// SourceUnit is one file the driver must analyze: its path, the index
// input for ingest, and its raw contents for the syntax visitor.
type SourceUnit struct {
	File    string
	Units   []index.UnitRef
	Content []byte
}

// Driver runs the pipeline end to end over a fixed input set (§1
// Non-goals: "one full analysis per invocation").
type Driver struct {
	cfg     Config
	visitor syntax.Visitor
}

// New builds a Driver. visitor is the external syntax collaborator (§4.3,
// §6); a concrete implementation for Go source lives in internal/langgo.
func New(cfg Config, visitor syntax.Visitor) *Driver {
	return &Driver{cfg: cfg, visitor: visitor}
}

// Run executes the full pipeline and returns the final, sorted result set.
// Per §7, unindexed/conflicting-unit errors and index-read failures abort
// the run; per-declaration syntax failures are logged by the caller's
// visitor and simply omit enrichment for that declaration, which the
// ingest+enrichment split already treats conservatively as "unknown,
// still live" since a declaration with no enrichment record is never
// marked non-reachable by any pass other than the result emitter, which
// only removes declarations that are demonstrably unreachable.
func (d *Driver) Run(ctx context.Context, units []SourceUnit) ([]result.Record, error) {
	if err := checkUnindexed(units); err != nil {
		return nil, err
	}

	g := graph.New()

	fileInputs := make([]index.FileInput, 0, len(units))
	for _, u := range units {
		fileInputs = append(fileInputs, index.FileInput{File: u.File, Units: u.Units})
	}

	if err := index.IngestAll(ctx, g, fileInputs, index.Options{RetainObjcAccessible: d.cfg.RetainObjcAccessible}); err != nil {
		return nil, graphmodel.Wrap(graphmodel.ErrIndexReadFailure, "phase one ingest failed", err)
	}

	g.EstablishHierarchy()

	var inputs passes.Inputs
	inputs.ParameterRetention = make(syntax.ParameterRetention)

	for _, u := range units {
		fr, err := d.visitor.Visit(u.File, u.Content)
		if err != nil {
			// §7: parser failures for individual declarations are logged and
			// skipped; the run continues rather than aborting.
			continue
		}
		syntax.Apply(g, fr)
		retention := syntax.ApplyCommands(g, fr, !d.cfg.Passes.IgnoreCommentCommands)
		for loc, names := range retention {
			if existing, ok := inputs.ParameterRetention[loc]; ok {
				existing.Union(names)
			} else {
				inputs.ParameterRetention[loc] = names
			}
		}
		inputs.UnusedParameters = append(inputs.UnusedParameters, fr.UnusedParameters...)
	}

	reconcile.Latent(g)
	reconcile.Dangling(g)

	passes.AccessibilityCascade(g, d.cfg.Passes)
	passes.ProtocolConformanceExtender(g)
	passes.OverrideChainExtender(g)
	passes.SynthesizedMemberRetainer(g, d.cfg.Passes)
	passes.EntryPointRetainer(g, d.cfg.Passes)
	passes.UnusedParameterPass(g, d.cfg.Passes, inputs)
	passes.LetShorthandLinker(g)
	passes.EnumGroupLiveness(g)
	passes.TransitiveReachability(g)
	// Pass 6 only reads the graph; it runs after pass 9 so its unused-import
	// half sees the full live set.
	unusedImports, redundantConformances := passes.UnusedImportsAndRedundantConformances(g)

	return result.Collect(g, d.cfg.Passes, unusedImports, redundantConformances), nil
}

func checkUnindexed(units []SourceUnit) error {
	for _, u := range units {
		if len(u.Units) == 0 {
			return graphmodel.Wrap(graphmodel.ErrUnindexedFiles,
				fmt.Sprintf("file %s has no compilation unit in any index store", u.File), nil)
		}
	}
	return nil
}
