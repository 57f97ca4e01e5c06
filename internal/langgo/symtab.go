package langgo

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/oxhq/unreach/internal/graphmodel"
)

// symbolInfo is everything a later file needs to know about a top-level Go
// symbol declared somewhere in the analyzed set: its synthesized symbol-id,
// kind, and (for methods) receiver type name.
type symbolInfo struct {
	ID       string
	Kind     graphmodel.DeclKind
	Receiver string // non-empty for methods: the receiver type's bare name
}

// SymbolTable resolves package-qualified Go names to symbol-ids across the
// whole analyzed file set, standing in for the cross-translation-unit
// symbol resolution a real compiler index would already provide (§4.1
// Input: "multiple pairs occur when the same file is compiled into
// multiple targets" — here multiple files of one package play that role).
type SymbolTable struct {
	byName map[string]symbolInfo // "pkg.Name" or "pkg.Receiver.Method"
	trees  map[string]*sitter.Tree
	source map[string][]byte
}

// Build parses every file once to collect top-level declarations, then
// returns a SymbolTable ready to drive per-file Occurrences(). Parsing is
// done once here rather than per Store.Occurrences call to avoid
// re-parsing the whole set for every file (§5 "no long-lived background
// tasks" still holds: this runs once, synchronously, before ingestion's
// worker pool starts).
func Build(ctx context.Context, files map[string][]byte) (*SymbolTable, error) {
	st := &SymbolTable{
		byName: make(map[string]symbolInfo),
		trees:  make(map[string]*sitter.Tree),
		source: make(map[string][]byte),
	}

	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())

	for path, src := range files {
		tree, err := parser.ParseCtx(ctx, nil, src)
		if err != nil {
			return nil, err
		}
		st.trees[path] = tree
		st.source[path] = src

		root := tree.RootNode()
		pkg, _ := parseUnitHeader(root, src)

		for i := 0; i < int(root.NamedChildCount()); i++ {
			child := root.NamedChild(i)
			switch child.Type() {
			case "function_declaration":
				name := fieldText(child, "name", src)
				st.byName[pkg+"."+name] = symbolInfo{ID: pkg + "." + name, Kind: graphmodel.KindFreeFunction}
			case "method_declaration":
				name := fieldText(child, "name", src)
				recv := receiverTypeName(child, src)
				id := pkg + "." + recv + "." + name
				st.byName[id] = symbolInfo{ID: id, Kind: graphmodel.KindMethodInstance, Receiver: recv}
			case "type_declaration":
				for j := 0; j < int(child.NamedChildCount()); j++ {
					spec := child.NamedChild(j)
					if spec.Type() != "type_spec" {
						continue
					}
					name := fieldText(spec, "name", src)
					kind := graphmodel.KindStruct
					if t := spec.ChildByFieldName("type"); t != nil && t.Type() == "interface_type" {
						kind = graphmodel.KindProtocol
					}
					st.byName[pkg+"."+name] = symbolInfo{ID: pkg + "." + name, Kind: kind}
				}
			case "const_declaration", "var_declaration":
				kind := graphmodel.KindVariableGlobal
				for _, name := range declNames(child, src) {
					st.byName[pkg+"."+name] = symbolInfo{ID: pkg + "." + name, Kind: kind}
				}
			}
		}
	}

	return st, nil
}

// Resolve matches an identifier or selector expression text (as seen from
// package pkg) against the table: first name as a top-level name of the
// same package ("pkg."+name), then, when name contains a dot, name read as
// "qualifier.member".
func (st *SymbolTable) Resolve(pkg, name string) (symbolInfo, bool) {
	if info, ok := st.byName[pkg+"."+name]; ok {
		return info, true
	}
	if qualifier, member, ok := cut(name, "."); ok {
		if info, ok := st.byName[qualifier+"."+member]; ok {
			return info, true
		}
	}
	return symbolInfo{}, false
}

func cut(s, sep string) (before, after string, found bool) {
	if idx := strings.Index(s, sep); idx >= 0 {
		return s[:idx], s[idx+len(sep):], true
	}
	return s, "", false
}

func fieldText(n *sitter.Node, field string, src []byte) string {
	f := n.ChildByFieldName(field)
	if f == nil {
		return ""
	}
	return f.Content(src)
}

func receiverTypeName(method *sitter.Node, src []byte) string {
	recv := method.ChildByFieldName("receiver")
	if recv == nil {
		return ""
	}
	var walk func(*sitter.Node) string
	walk = func(n *sitter.Node) string {
		if n.Type() == "type_identifier" {
			return n.Content(src)
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if s := walk(n.NamedChild(i)); s != "" {
				return s
			}
		}
		return ""
	}
	return walk(recv)
}

func declNames(decl *sitter.Node, src []byte) []string {
	var names []string
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		spec := decl.NamedChild(i)
		if spec.Type() != "const_spec" && spec.Type() != "var_spec" {
			continue
		}
		for j := 0; j < int(spec.NamedChildCount()); j++ {
			id := spec.NamedChild(j)
			if id.Type() == "identifier" {
				names = append(names, id.Content(src))
			}
		}
	}
	return names
}
