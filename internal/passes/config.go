// Package passes implements the §4.5 ordered mutation-pass pipeline: a
// fixed sequence of analyzers that mark declarations retained, extend the
// reference graph to model language semantics, and finally collect the
// declarations that remain dead.
package passes

import "github.com/oxhq/unreach/internal/syntax"

// Config carries the §6 recognized configuration options, one field per
// option, each consumed by exactly the pass documented in its comment.
type Config struct {
	// RetainPublic backs pass 1 (accessibility cascade).
	RetainPublic bool

	// RetainObjcAccessible backs pass 5 (entry-point retainer) and the
	// unused-parameter pass (pass 7), matching §4.1's ingest-time use of
	// the same option for raw declarations.
	RetainObjcAccessible bool

	// RetainAssignOnlyProperties backs the unused-declaration
	// classification in the result emitter: a property
	// that is only ever assigned is not reported when set.
	RetainAssignOnlyProperties bool

	// RetainUnusedProtocolFuncParams backs pass 7: protocol method
	// parameters are not reported as unused when set.
	RetainUnusedProtocolFuncParams bool

	// ExternalEncodableProtocols backs pass 4 (synthesized-member
	// retainer): protocol names that behave as Encodable for synthesis
	// purposes even though the core doesn't recognize them natively.
	ExternalEncodableProtocols []string

	// IgnoreCommentCommands backs the enrichment/command-application step:
	// when set, in-source commands are not honored.
	IgnoreCommentCommands bool
}

// Inputs bundles the per-run state the pass pipeline needs beyond the
// graph itself: comment-command derived parameter retention, and whatever
// the unused-parameter visitor reported.
type Inputs struct {
	ParameterRetention syntax.ParameterRetention
	UnusedParameters   []syntax.UnusedParamRecord
}
