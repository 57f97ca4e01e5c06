// Package index implements the index ingestor, phase one of the pipeline
// (spec.md §4.1): turning compiler-emitted occurrence records into a
// per-file graph.FileCommit. The shapes in this file are the external
// interface boundary of §6 — driving the compiler to produce these records
// is explicitly out of scope; the core only consumes them.
package index

import "github.com/oxhq/unreach/internal/graphmodel"

// RelationRole mirrors the compiler index's relation roles (§6).
type RelationRole string

const (
	RelChildOf     RelationRole = "child-of"
	RelBaseOf      RelationRole = "base-of"
	RelOverrideOf  RelationRole = "override-of"
	RelCalledBy    RelationRole = "called-by"
	RelExtendedBy  RelationRole = "extended-by"
	RelContainedBy RelationRole = "contained-by"

	// RelConformsTo is one of the unenumerated roles §6's role-flag list
	// leaves open ("child-of, base-of, override-of, called-by,
	// extended-by, contained-by, …"): a type declaration's relation to a
	// protocol it conforms to, feeding the conformance extender (§4.5
	// rule 2).
	RelConformsTo RelationRole = "conforms-to"
)

// Relation is one edge of an occurrence's relation list.
type Relation struct {
	Role     RelationRole
	SymbolID string
}

// Symbol identifies a compiler symbol (§6: name, id, kind, sub-kind,
// language). SubKind and Language are passed through for provider-specific
// use (e.g. distinguishing an extension's sub-kind) but the core only acts
// on Kind.
type Symbol struct {
	Name     string
	ID       string
	Kind     graphmodel.DeclKind
	SubKind  string
	Language string
}

// RoleFlags are the occurrence role flags of §6. The named list there ends
// in "…" — deliberately non-exhaustive; Write is one of the roles a real
// compiler index reports beyond definition/reference/implicit, needed to
// tell a plain read of a symbol apart from an assignment to it.
type RoleFlags struct {
	Definition bool
	Reference  bool
	Implicit   bool
	Write      bool
}

// Occurrence is one point in a source file where a symbol is defined,
// referenced, or implicitly synthesized (§6, GLOSSARY).
type Occurrence struct {
	Symbol    Symbol
	Location  graphmodel.Location
	Roles     RoleFlags
	Relations []Relation
}

// CompilationUnit is one compiler invocation that produced index data for a
// file (§4.1 Input: "a non-empty list of (index-store, compilation-unit)
// pairs — multiple pairs occur when the same file is compiled into
// multiple targets").
type CompilationUnit interface {
	MainFilePath() string
	ModuleName() string
	Imports() []string
}

// Store yields the occurrences recorded for a given compilation unit (§6:
// "an iterator of occurrences"; simplified here to a slice return since Go
// callers gain nothing from a push-iterator for this shape).
type Store interface {
	Occurrences(unit CompilationUnit) ([]Occurrence, error)
}

// UnitRef pairs a Store with one of its CompilationUnits, the element type
// of the per-file Input list.
type UnitRef struct {
	Store Store
	Unit  CompilationUnit
}
