// Package graphmodel holds the pure data structures of the declaration and
// reference graph. Nothing here touches tree-sitter, the filesystem, or any
// concurrency primitive — it is the shared vocabulary that the ingestor,
// reconciler, and mutation passes all build on.
package graphmodel

// DeclKind is the closed set of declaration kinds the graph can hold. New
// kinds are a compile-time-checked addition here, not an open hierarchy.
type DeclKind string

const (
	KindModule               DeclKind = "module"
	KindEnum                 DeclKind = "enum"
	KindStruct               DeclKind = "struct"
	KindClass                DeclKind = "class"
	KindProtocol             DeclKind = "protocol"
	KindExtensionClass       DeclKind = "extension_class"
	KindExtensionStruct      DeclKind = "extension_struct"
	KindExtensionProtocol    DeclKind = "extension_protocol"
	KindExtensionEnum        DeclKind = "extension_enum"
	KindTypealias            DeclKind = "typealias"
	KindAssociatedType       DeclKind = "associated_type"
	KindGenericTypeParameter DeclKind = "generic_type_parameter"
	KindFreeFunction         DeclKind = "free_function"
	KindMethodInstance       DeclKind = "method_instance"
	KindMethodClass          DeclKind = "method_class"
	KindMethodStatic         DeclKind = "method_static"
	KindConstructor          DeclKind = "constructor"
	KindDestructor           DeclKind = "destructor"
	KindOperatorInfix        DeclKind = "operator_infix"
	KindOperatorPrefix       DeclKind = "operator_prefix"
	KindOperatorPostfix      DeclKind = "operator_postfix"
	KindSubscript            DeclKind = "subscript"
	KindAccessorGetter       DeclKind = "accessor_getter"
	KindAccessorSetter       DeclKind = "accessor_setter"
	KindAccessorDidSet       DeclKind = "accessor_didset"
	KindAccessorWillSet      DeclKind = "accessor_willset"
	KindAccessorAddress      DeclKind = "accessor_address"
	KindAccessorMutAddress   DeclKind = "accessor_mutable_address"
	KindVariableInstance     DeclKind = "variable_instance"
	KindVariableClass        DeclKind = "variable_class"
	KindVariableStatic       DeclKind = "variable_static"
	KindVariableGlobal       DeclKind = "variable_global"
	KindVariableLocal        DeclKind = "variable_local"
	KindVariableParameter    DeclKind = "variable_parameter"
	KindEnumCase             DeclKind = "enum_case"
)

// IsAccessor reports whether k is one of the property/subscript accessor
// kinds. Used by the dangling-reference tie-break (§4.4) to rank accessors
// below the property or subscript that owns them.
func (k DeclKind) IsAccessor() bool {
	switch k {
	case KindAccessorGetter, KindAccessorSetter, KindAccessorDidSet,
		KindAccessorWillSet, KindAccessorAddress, KindAccessorMutAddress:
		return true
	default:
		return false
	}
}

// IsExtension reports whether k extends an existing type rather than
// declaring a new one.
func (k DeclKind) IsExtension() bool {
	switch k {
	case KindExtensionClass, KindExtensionStruct, KindExtensionProtocol, KindExtensionEnum:
		return true
	default:
		return false
	}
}

// IsMethod reports whether k is any flavor of method (as opposed to a free
// function or accessor).
func (k DeclKind) IsMethod() bool {
	switch k {
	case KindMethodInstance, KindMethodClass, KindMethodStatic:
		return true
	default:
		return false
	}
}

// IsVariable reports whether k is any flavor of stored variable.
func (k DeclKind) IsVariable() bool {
	switch k {
	case KindVariableInstance, KindVariableClass, KindVariableStatic,
		KindVariableGlobal, KindVariableLocal, KindVariableParameter:
		return true
	default:
		return false
	}
}

// kindRank totally orders DeclKind for the dangling-reference tie-break
// (§4.4): properties/subscripts must rank below their accessors so that a
// property-with-getter-on-the-same-line attributes to the property.
var kindRank = map[DeclKind]int{
	KindModule:               0,
	KindEnum:                 1,
	KindStruct:               2,
	KindClass:                3,
	KindProtocol:             4,
	KindExtensionClass:       5,
	KindExtensionStruct:      6,
	KindExtensionProtocol:    7,
	KindExtensionEnum:        8,
	KindTypealias:            9,
	KindAssociatedType:       10,
	KindGenericTypeParameter: 11,
	KindFreeFunction:         12,
	KindMethodInstance:       13,
	KindMethodClass:          14,
	KindMethodStatic:         15,
	KindConstructor:          16,
	KindDestructor:           17,
	KindOperatorInfix:        18,
	KindOperatorPrefix:       19,
	KindOperatorPostfix:      20,
	KindSubscript:            21,
	KindVariableInstance:     22,
	KindVariableClass:        23,
	KindVariableStatic:       24,
	KindVariableGlobal:       25,
	KindVariableLocal:        26,
	KindVariableParameter:    27,
	KindEnumCase:             28,
	KindAccessorGetter:       29,
	KindAccessorSetter:       30,
	KindAccessorDidSet:       31,
	KindAccessorWillSet:      32,
	KindAccessorAddress:      33,
	KindAccessorMutAddress:   34,
}

// Rank returns the deterministic sort position of k, lowest first.
func (k DeclKind) Rank() int {
	if r, ok := kindRank[k]; ok {
		return r
	}
	return len(kindRank)
}

// RefRole classifies how a Reference was used, distinguishing plain
// expression-level uses from the structural roles the syntax enrichment
// pass (§4.3) assigns by footprint location.
type RefRole string

const (
	RolePlain                  RefRole = "plain"
	RoleInheritedClassType     RefRole = "inherited_class_type"
	RoleRefinedProtocolType    RefRole = "refined_protocol_type"
	RoleVarType                RefRole = "var_type"
	RoleReturnType             RefRole = "return_type"
	RoleParameterType          RefRole = "parameter_type"
	RoleGenericParameterType   RefRole = "generic_parameter_type"
	RoleGenericRequirementType RefRole = "generic_requirement_type"
	RoleVariableInitCall       RefRole = "variable_init_function_call"
	RoleFunctionCallMetatype   RefRole = "function_call_metatype_argument"

	// RoleWrite marks a reference occurrence that only assigns to its
	// target (§6's role-flag list is explicitly non-exhaustive — "…" —
	// and the write/read distinction is one of the roles a compiler index
	// can supply beyond the ones spec.md names outright). A write-only
	// reference does not by itself confer liveness on its target (§4.5
	// rule 9, `passes.walk`); `retain-assign-only-properties` (§6) reads
	// it back out of the declaration's incoming references.
	RoleWrite RefRole = "write"
)

// Accessibility is ordered private < fileprivate < internal < package <
// public < open, matching §3.
type Accessibility int

const (
	AccessPrivate Accessibility = iota
	AccessFilePrivate
	AccessInternal
	AccessPackage
	AccessPublic
	AccessOpen
)

func (a Accessibility) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	case AccessFilePrivate:
		return "fileprivate"
	case AccessInternal:
		return "internal"
	case AccessPackage:
		return "package"
	case AccessPublic:
		return "public"
	case AccessOpen:
		return "open"
	default:
		return "internal"
	}
}

// IsPublicFacing reports whether a is public or open.
func (a Accessibility) IsPublicFacing() bool {
	return a == AccessPublic || a == AccessOpen
}
