package graphmodel

import "sort"

// Less implements the deterministic total order over declarations required
// by §4.4 ("pick the smallest by a deterministic ordering of (kind,
// location, name)"): kind rank first, then location, then name. The
// result order of §4.5 rule 10 uses SortByLocation instead.
func Less(a, b *Declaration) bool {
	if a.Kind.Rank() != b.Kind.Rank() {
		return a.Kind.Rank() < b.Kind.Rank()
	}
	if !a.Location.Key2Equal(b.Location) {
		return a.Location.Less(b.Location)
	}
	return a.Name < b.Name
}

// Key2Equal reports whether two locations are identical.
func (l Location) Key2Equal(o Location) bool {
	return l.File == o.File && l.Line == o.Line && l.Column == o.Column
}

// SortDeclarations sorts decls in place using Less.
func SortDeclarations(decls []*Declaration) {
	sort.Slice(decls, func(i, j int) bool { return Less(decls[i], decls[j]) })
}

// SortByLocation sorts decls strictly by (file, line, column), the §4.5
// rule 10 result order (ties broken by name for full determinism).
func SortByLocation(decls []*Declaration) {
	sort.Slice(decls, func(i, j int) bool {
		if !decls[i].Location.Key2Equal(decls[j].Location) {
			return decls[i].Location.Less(decls[j].Location)
		}
		return decls[i].Name < decls[j].Name
	})
}
