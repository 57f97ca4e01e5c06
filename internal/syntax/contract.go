// Package syntax defines the external syntax-visitor boundary of §4.3/§6
// and the comment-command grammar, plus the enrichment pass that writes a
// visitor's output into the graph. Driving an actual parser is a provider
// concern (see internal/langgo); this package only consumes results.
package syntax

import "github.com/oxhq/unreach/internal/graphmodel"

// EnrichmentRecord is what the external syntax visitor yields per
// declaration location (§4.3).
type EnrichmentRecord struct {
	Location graphmodel.Location

	Accessibility         graphmodel.Accessibility
	AccessibilityExplicit bool

	Attributes      []string
	Modifiers       []string
	CommentCommands []string

	DeclaredType string
	Footprint    graphmodel.Footprint

	LetShorthandIdentifiers []string

	HasCapitalSelfFunctionCall               bool
	HasGenericFunctionReturnedMetatypeParams bool
}

// UnusedParamRecord maps one function location to the parameters the
// visitor found never read inside its body (§4.3, §6).
type UnusedParamRecord struct {
	FunctionLocation graphmodel.Location
	ParameterNames   []string
}

// FileResult is everything one file's visitor pass yields.
type FileResult struct {
	File             string
	Enrichments      []EnrichmentRecord
	UnusedParameters []UnusedParamRecord
	// FileLeadingCommands holds comment commands found before the first
	// declaration, i.e. file-level commands like ignore-all (§4.3).
	FileLeadingCommands []string
}

// Visitor is the external syntax boundary (§4.3, §6): "the core invokes an
// external syntax visitor and receives, per declaration location, the
// enrichment record..." Implementations live outside the core (see
// internal/langgo for the Go-source provider).
type Visitor interface {
	Visit(file string, source []byte) (FileResult, error)
}
