package graphmodel

// Footprint holds the sets of source locations where a declaration's type
// appears in a declared-type position: inherited types, the variable's own
// type, return type, parameter types, generic parameters, generic
// conformance requirements, variable-init function calls, and metatype
// arguments of a function call (§3, §4.3). The syntax enrichment pass fills
// these in, and then uses them to assign a RefRole to every reference
// whose location falls inside one of them.
type Footprint struct {
	Inherited           LocationSet
	VarType             LocationSet
	ReturnType          LocationSet
	ParameterType       LocationSet
	GenericParameter    LocationSet
	GenericRequirement  LocationSet
	VariableInitCall    LocationSet
	FunctionCallMetatype LocationSet
}

// NewFootprint returns a Footprint with every set initialized and empty.
func NewFootprint() Footprint {
	return Footprint{
		Inherited:            NewLocationSet(),
		VarType:              NewLocationSet(),
		ReturnType:           NewLocationSet(),
		ParameterType:        NewLocationSet(),
		GenericParameter:     NewLocationSet(),
		GenericRequirement:   NewLocationSet(),
		VariableInitCall:     NewLocationSet(),
		FunctionCallMetatype: NewLocationSet(),
	}
}

// Merge unions other into f in place, used when the enrichment pass writes
// a visitor's footprint onto an already-merged declaration.
func (f *Footprint) Merge(other Footprint) {
	f.Inherited.Union(other.Inherited)
	f.VarType.Union(other.VarType)
	f.ReturnType.Union(other.ReturnType)
	f.ParameterType.Union(other.ParameterType)
	f.GenericParameter.Union(other.GenericParameter)
	f.GenericRequirement.Union(other.GenericRequirement)
	f.VariableInitCall.Union(other.VariableInitCall)
	f.FunctionCallMetatype.Union(other.FunctionCallMetatype)
}

// RoleFor returns the RefRole that loc falls under, or RolePlain if loc
// does not appear in any footprint set. parentIsProtocol distinguishes
// the two inherited-type roles: a protocol-to-protocol inheritance is
// "refined", everything else inherited is "inherited-class-type".
func (f Footprint) RoleFor(loc Location, parentIsProtocol bool) RefRole {
	switch {
	case f.Inherited.Has(loc):
		if parentIsProtocol {
			return RoleRefinedProtocolType
		}
		return RoleInheritedClassType
	case f.VarType.Has(loc):
		return RoleVarType
	case f.ReturnType.Has(loc):
		return RoleReturnType
	case f.ParameterType.Has(loc):
		return RoleParameterType
	case f.GenericParameter.Has(loc):
		return RoleGenericParameterType
	case f.GenericRequirement.Has(loc):
		return RoleGenericRequirementType
	case f.VariableInitCall.Has(loc):
		return RoleVariableInitCall
	case f.FunctionCallMetatype.Has(loc):
		return RoleFunctionCallMetatype
	default:
		return RolePlain
	}
}
