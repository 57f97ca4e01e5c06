package graphmodel

// UnusedParameter records a function parameter the syntax visitor found
// unread in the function body (§4.3 mapping, §4.5 rule 7), together with
// whether a later pass decided to retain it anyway.
type UnusedParameter struct {
	Name     string
	Location Location
	Retained bool
}

// Declaration is a logical program entity owned by the SourceGraph,
// possibly aggregating several compiler symbol-ids (§3). Every field here
// maps directly to the attributes enumerated in §3; nothing is added beyond
// what a pass or the result collector needs to read or write.
type Declaration struct {
	Kind     DeclKind
	SymbolIDs StringSet
	Location Location
	Name     string

	Accessibility         Accessibility
	AccessibilityExplicit bool

	Attributes      StringSet
	Modifiers       StringSet
	CommentCommands StringSet

	DeclaredType string
	Footprint    Footprint

	IsImplicit                              bool
	IsObjcAccessible                         bool
	HasCapitalSelfFunctionCall               bool
	HasGenericFunctionReturnedMetatypeParams bool

	LetShorthandIdentifiers StringSet
	IsLetShorthandContainer bool

	Parent   *Declaration
	Children []*Declaration

	References []*Reference // uses this declaration makes of others
	Related    []*Reference // structural relations this declaration carries

	UnusedParameters []*UnusedParameter

	// Retained marks this declaration as live by policy rather than by
	// traversal from another live declaration (§3 "Retained"). Once true
	// it must never become false again (§3 invariant).
	Retained bool

	// reachable is set by the transitive-reachability pass (§4.5 rule 9).
	reachable bool

	// ParentPendingSymbolID records an unresolved child-of relation until
	// the graph builder (§4.2) can attach the real parent.
	ParentPendingSymbolID string
}

// NewDeclaration constructs a Declaration with all set-valued fields
// initialized, ready to be populated by the ingestor.
func NewDeclaration(kind DeclKind, loc Location) *Declaration {
	return &Declaration{
		Kind:                    kind,
		SymbolIDs:               NewStringSet(),
		Location:                loc,
		Attributes:              NewStringSet(),
		Modifiers:               NewStringSet(),
		CommentCommands:         NewStringSet(),
		Footprint:               NewFootprint(),
		LetShorthandIdentifiers: NewStringSet(),
	}
}

// MergeKey is the deduplication key from §4.1: raw declarations sharing
// this tuple collapse into one logical declaration.
type MergeKey struct {
	Kind             DeclKind
	Name             string
	IsImplicit       bool
	IsObjcAccessible bool
	Location         Location
}

// Key computes d's MergeKey.
func (d *Declaration) Key() MergeKey {
	return MergeKey{
		Kind:             d.Kind,
		Name:             d.Name,
		IsImplicit:       d.IsImplicit,
		IsObjcAccessible: d.IsObjcAccessible,
		Location:         d.Location,
	}
}

// MergeFrom unions other into d per the dedup rule (§4.1: "all raw
// declarations sharing a key collapse into one declaration whose symbol-id
// set is the union of theirs"). The §9 Open Question about relations on a
// merge collision is resolved here by union, per spec.md's own answer.
func (d *Declaration) MergeFrom(other *Declaration) {
	d.SymbolIDs.Union(other.SymbolIDs)
	d.Attributes.Union(other.Attributes)
	d.Modifiers.Union(other.Modifiers)
	d.CommentCommands.Union(other.CommentCommands)
	d.IsImplicit = d.IsImplicit || other.IsImplicit
	d.IsObjcAccessible = d.IsObjcAccessible || other.IsObjcAccessible
	d.Footprint.Merge(other.Footprint)
	for _, ref := range other.References {
		ref.Parent = d
		d.References = append(d.References, ref)
	}
	for _, ref := range other.Related {
		ref.Parent = d
		d.Related = append(d.Related, ref)
	}
	if other.ParentPendingSymbolID != "" && d.ParentPendingSymbolID == "" {
		d.ParentPendingSymbolID = other.ParentPendingSymbolID
	}
}

// Retain marks d as retained. Per the §3 monotonic invariant this never
// clears the flag back to false.
func (d *Declaration) Retain() {
	d.Retained = true
}

// IsReachable reports whether the transitive-reachability pass marked d
// reachable from the retained set.
func (d *Declaration) IsReachable() bool {
	return d.Retained || d.reachable
}

// MarkReachable is called only by the transitive-reachability pass (§4.5
// rule 9).
func (d *Declaration) MarkReachable() {
	d.reachable = true
}

// AddChild attaches child under d, setting child's Parent.
func (d *Declaration) AddChild(child *Declaration) {
	child.Parent = d
	d.Children = append(d.Children, child)
}

// AllDescendants returns d and every declaration transitively nested under
// it, used by the ignore-all / ignore comment commands (§4.3) which must
// retain "that declaration and all descendants".
func (d *Declaration) AllDescendants() []*Declaration {
	out := []*Declaration{d}
	for _, c := range d.Children {
		out = append(out, c.AllDescendants()...)
	}
	return out
}

// ContainsLocation reports whether loc falls within d's own declaration
// line. Declarations only carry a point location, not a byte range, so
// this is a same-line and same-file check — if richer spans are available
// from the syntax visitor they are attached via Footprint instead.
func (d *Declaration) ContainsLocation(loc Location) bool {
	return loc.File == d.Location.File && loc.Line == d.Location.Line
}
