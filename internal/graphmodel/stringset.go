package graphmodel

import "sort"

// StringSet is a small unordered set of strings with deterministic iteration
// via Sorted. Several Declaration fields (symbol-id sets, attributes,
// modifiers, comment commands, let-shorthand identifiers) are sets in §3;
// this is the one implementation all of them share.
type StringSet map[string]struct{}

// NewStringSet builds a StringSet from the given members.
func NewStringSet(members ...string) StringSet {
	s := make(StringSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Add inserts member, returning true if it was not already present.
func (s StringSet) Add(member string) bool {
	if _, ok := s[member]; ok {
		return false
	}
	s[member] = struct{}{}
	return true
}

// Has reports whether member is in the set.
func (s StringSet) Has(member string) bool {
	_, ok := s[member]
	return ok
}

// Union mutates s in place to include every member of other.
func (s StringSet) Union(other StringSet) {
	for m := range other {
		s[m] = struct{}{}
	}
}

// Sorted returns the set's members in a deterministic order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of members.
func (s StringSet) Len() int {
	return len(s)
}

// LocationSet is the location-keyed analog of StringSet, used for the
// type-footprint position sets on Declaration.
type LocationSet map[string]Location

// NewLocationSet builds an empty LocationSet.
func NewLocationSet() LocationSet {
	return make(LocationSet)
}

// Add inserts loc keyed by its Key().
func (s LocationSet) Add(loc Location) {
	s[loc.Key()] = loc
}

// Has reports whether loc (matched by exact key) is in the set.
func (s LocationSet) Has(loc Location) bool {
	_, ok := s[loc.Key()]
	return ok
}

// Union mutates s in place to include every member of other.
func (s LocationSet) Union(other LocationSet) {
	for k, v := range other {
		s[k] = v
	}
}
