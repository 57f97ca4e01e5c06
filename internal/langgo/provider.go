package langgo

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/index"
)

// Store implements index.Store for Go source, built on top of a
// pre-parsed SymbolTable (Build). Each compilation unit maps 1:1 to a Go
// file, mirroring the teacher's one-provider-per-file tree-sitter usage
// (providers/golang) rather than the multi-target fan-out real compiler
// indices support — Go doesn't need it.
type Store struct {
	table *SymbolTable
}

// NewStore returns a Store over a SymbolTable already built for the full
// analyzed file set.
func NewStore(table *SymbolTable) *Store {
	return &Store{table: table}
}

// NewUnit returns the CompilationUnit for path, reading its package name
// and imports out of the pre-parsed tree.
func (s *Store) NewUnit(path string) (*Unit, error) {
	tree, ok := s.table.trees[path]
	if !ok {
		return nil, fmt.Errorf("langgo: %s was not included in Build", path)
	}
	src := s.table.source[path]
	pkg, imports := parseUnitHeader(tree.RootNode(), src)
	return &Unit{Path: path, Package: pkg, ImportList: imports}, nil
}

// Occurrences implements index.Store (§6): walks the file's top-level
// declarations, emitting one definition occurrence per declaration and one
// reference occurrence per call site resolved against the symbol table.
func (s *Store) Occurrences(unit index.CompilationUnit) ([]index.Occurrence, error) {
	u, ok := unit.(*Unit)
	if !ok {
		return nil, fmt.Errorf("langgo: unexpected unit type %T", unit)
	}

	tree, ok := s.table.trees[u.Path]
	if !ok {
		return nil, fmt.Errorf("langgo: %s was not included in Build", u.Path)
	}
	src := s.table.source[u.Path]
	root := tree.RootNode()

	var occs []index.Occurrence
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "function_declaration":
			occs = append(occs, s.functionOccurrences(u, child, src, "", graphmodel.KindFreeFunction)...)
		case "method_declaration":
			recv := receiverTypeName(child, src)
			occs = append(occs, s.functionOccurrences(u, child, src, recv, graphmodel.KindMethodInstance)...)
		case "type_declaration":
			occs = append(occs, s.typeOccurrences(u, child, src)...)
		case "const_declaration", "var_declaration":
			occs = append(occs, s.globalOccurrences(u, child, src)...)
		}
	}

	return occs, nil
}

func (s *Store) functionOccurrences(u *Unit, fn *sitter.Node, src []byte, receiver string, kind graphmodel.DeclKind) []index.Occurrence {
	name := fieldText(fn, "name", src)
	id := u.Package + "." + name
	if receiver != "" {
		id = u.Package + "." + receiver + "." + name
	}

	var relations []index.Relation
	if receiver != "" {
		if recvDecl, ok := s.table.byName[u.Package+"."+receiver]; ok {
			relations = append(relations, index.Relation{Role: index.RelChildOf, SymbolID: recvDecl.ID})
		}
	}

	defOcc := index.Occurrence{
		Symbol:    index.Symbol{Name: name, ID: id, Kind: kind, Language: "go"},
		Location:  nodeLocation(fn, u.Path),
		Roles:     index.RoleFlags{Definition: true},
		Relations: relations,
	}

	occs := []index.Occurrence{defOcc}
	occs = append(occs, s.parameterOccurrences(u, fn, src, id)...)

	if body := fn.ChildByFieldName("body"); body != nil {
		occs = append(occs, s.callOccurrences(u, body, src, id)...)
	}
	return occs
}

func (s *Store) parameterOccurrences(u *Unit, fn *sitter.Node, src []byte, owner string) []index.Occurrence {
	params := fn.ChildByFieldName("parameters")
	if params == nil {
		return nil
	}
	var occs []index.Occurrence
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		if p.Type() != "parameter_declaration" {
			continue
		}
		for j := 0; j < int(p.NamedChildCount()); j++ {
			id := p.NamedChild(j)
			if id.Type() != "identifier" {
				continue
			}
			name := id.Content(src)
			occs = append(occs, index.Occurrence{
				Symbol:   index.Symbol{Name: name, ID: owner + "#" + name, Kind: graphmodel.KindVariableParameter, Language: "go"},
				Location: nodeLocation(id, u.Path),
				Roles:    index.RoleFlags{Definition: true},
			})
		}
	}
	return occs
}

// callOccurrences walks a function body for call_expression nodes whose
// callee resolves in the symbol table, emitting a reference occurrence
// for each with a called-by relation back to owner (§4.1 "Reference
// occurrences": relation role called-by is inverted into owner's bucket).
func (s *Store) callOccurrences(u *Unit, body *sitter.Node, src []byte, owner string) []index.Occurrence {
	var occs []index.Occurrence
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "call_expression" {
			if fnNode := n.ChildByFieldName("function"); fnNode != nil {
				name := fnNode.Content(src)
				if info, ok := s.table.Resolve(u.Package, name); ok {
					occs = append(occs, index.Occurrence{
						Symbol:   index.Symbol{Name: name, ID: info.ID, Kind: info.Kind, Language: "go"},
						Location: nodeLocation(fnNode, u.Path),
						Roles:    index.RoleFlags{Reference: true},
						Relations: []index.Relation{
							{Role: index.RelCalledBy, SymbolID: owner},
						},
					})
				}
			}
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(body)
	return occs
}

func (s *Store) typeOccurrences(u *Unit, decl *sitter.Node, src []byte) []index.Occurrence {
	var occs []index.Occurrence
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		spec := decl.NamedChild(i)
		if spec.Type() != "type_spec" {
			continue
		}
		name := fieldText(spec, "name", src)
		id := u.Package + "." + name
		kind := graphmodel.KindStruct
		if t := spec.ChildByFieldName("type"); t != nil && t.Type() == "interface_type" {
			kind = graphmodel.KindProtocol
		}
		occs = append(occs, index.Occurrence{
			Symbol:   index.Symbol{Name: name, ID: id, Kind: kind, Language: "go"},
			Location: nodeLocation(spec, u.Path),
			Roles:    index.RoleFlags{Definition: true},
		})

		if kind == graphmodel.KindStruct {
			occs = append(occs, s.fieldOccurrences(u, spec, src, id)...)
		}
	}
	return occs
}

func (s *Store) fieldOccurrences(u *Unit, spec *sitter.Node, src []byte, owner string) []index.Occurrence {
	structType := spec.ChildByFieldName("type")
	if structType == nil || structType.Type() != "struct_type" {
		return nil
	}
	fieldList := structType.ChildByFieldName("body")
	if fieldList == nil {
		return nil
	}
	var occs []index.Occurrence
	for i := 0; i < int(fieldList.NamedChildCount()); i++ {
		fd := fieldList.NamedChild(i)
		if fd.Type() != "field_declaration" {
			continue
		}
		for j := 0; j < int(fd.NamedChildCount()); j++ {
			id := fd.NamedChild(j)
			if id.Type() != "field_identifier" {
				continue
			}
			name := id.Content(src)
			occs = append(occs, index.Occurrence{
				Symbol:    index.Symbol{Name: name, ID: owner + "." + name, Kind: graphmodel.KindVariableInstance, Language: "go"},
				Location:  nodeLocation(id, u.Path),
				Roles:     index.RoleFlags{Definition: true},
				Relations: []index.Relation{{Role: index.RelChildOf, SymbolID: owner}},
			})
		}
	}
	return occs
}

func (s *Store) globalOccurrences(u *Unit, decl *sitter.Node, src []byte) []index.Occurrence {
	var occs []index.Occurrence
	for _, name := range declNames(decl, src) {
		occs = append(occs, index.Occurrence{
			Symbol:   index.Symbol{Name: name, ID: u.Package + "." + name, Kind: graphmodel.KindVariableGlobal, Language: "go"},
			Location: nodeLocation(decl, u.Path),
			Roles:    index.RoleFlags{Definition: true},
		})
	}
	return occs
}

func nodeLocation(n *sitter.Node, file string) graphmodel.Location {
	pt := n.StartPoint()
	return graphmodel.Location{File: file, Line: int(pt.Row) + 1, Column: int(pt.Column) + 1}
}
