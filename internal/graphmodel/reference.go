package graphmodel

// Reference is a directed use edge from a using declaration to a used
// symbol-id (§3). It may resolve to a Declaration at reconciliation time
// (§4.4) or stay unresolved forever if the referent was never declared in
// the analyzed set (e.g. a standard-library symbol).
type Reference struct {
	Kind       DeclKind
	SymbolID   string
	Location   Location
	Name       string
	Role       RefRole
	IsRelated  bool
	Parent     *Declaration
}

// Clone returns a detached copy of r with no Parent set, for reassignment
// during reconciliation.
func (r Reference) Clone() Reference {
	r.Parent = nil
	return r
}
