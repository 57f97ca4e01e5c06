package langgo

import (
	"context"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/syntax"
)

// Visitor implements syntax.Visitor for Go source (§4.3, §6): accessibility
// from Go's capitalization convention, comment commands from leading `//`
// comments, and unused parameters from a simple read-count walk of each
// function body.
type Visitor struct{}

func (Visitor) Visit(file string, source []byte) (syntax.FileResult, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return syntax.FileResult{}, err
	}
	root := tree.RootNode()

	result := syntax.FileResult{File: file}
	result.FileLeadingCommands = leadingFileCommands(root, source)

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "function_declaration", "method_declaration":
			visitFunction(&result, child, source, file)
		case "type_declaration":
			visitTypeDecl(&result, child, source, file)
		case "const_declaration", "var_declaration":
			visitGlobalDecl(&result, child, source, file)
		}
	}

	return result, nil
}

func visitFunction(result *syntax.FileResult, fn *sitter.Node, src []byte, file string) {
	name := fieldText(fn, "name", src)
	loc := nodeLocation(fn, file)

	rec := syntax.EnrichmentRecord{
		Location:              loc,
		Accessibility:         accessibilityOf(name),
		AccessibilityExplicit: true,
		CommentCommands:       commentCommandsBefore(fn, src),
	}
	result.Enrichments = append(result.Enrichments, rec)

	body := fn.ChildByFieldName("body")
	params := fn.ChildByFieldName("parameters")
	if body == nil || params == nil {
		return
	}

	var unused []string
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
			pname := id.Content(src)
			if pname == "_" {
				continue
			}
			if !identifierReadIn(body, src, pname) {
				unused = append(unused, pname)
			}
		}
	}
	if len(unused) > 0 {
		result.UnusedParameters = append(result.UnusedParameters, syntax.UnusedParamRecord{
			FunctionLocation: loc,
			ParameterNames:   unused,
		})
	}
}

func visitTypeDecl(result *syntax.FileResult, decl *sitter.Node, src []byte, file string) {
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		spec := decl.NamedChild(i)
		if spec.Type() != "type_spec" {
			continue
		}
		name := fieldText(spec, "name", src)
		result.Enrichments = append(result.Enrichments, syntax.EnrichmentRecord{
			Location:              nodeLocation(spec, file),
			Accessibility:         accessibilityOf(name),
			AccessibilityExplicit: true,
			CommentCommands:       commentCommandsBefore(decl, src),
		})
	}
}

func visitGlobalDecl(result *syntax.FileResult, decl *sitter.Node, src []byte, file string) {
	result.Enrichments = append(result.Enrichments, syntax.EnrichmentRecord{
		Location:        nodeLocation(decl, file),
		CommentCommands: commentCommandsBefore(decl, src),
	})
}

// accessibilityOf maps Go's capitalization convention onto the §3
// accessibility ladder: exported identifiers are public, unexported are
// package-private — mapped to AccessInternal since Go has no fileprivate
// distinction.
func accessibilityOf(name string) graphmodel.Accessibility {
	if name == "" {
		return graphmodel.AccessInternal
	}
	if unicode.IsUpper(rune(name[0])) {
		return graphmodel.AccessPublic
	}
	return graphmodel.AccessInternal
}

// identifierReadIn reports whether name is referenced anywhere inside
// node as a plain identifier (a crude but serviceable proxy for "read in
// the function body" — it does not distinguish a read from the left side
// of a pure reassignment, which is an acceptable false negative for a
// dead-code detector: a reassigned-only parameter still looks used).
func identifierReadIn(node *sitter.Node, src []byte, name string) bool {
	found := false
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if found {
			return
		}
		if n.Type() == "identifier" && n.Content(src) == name {
			found = true
			return
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(node)
	return found
}

// commentCommandsBefore collects the text of any `//` comment immediately
// preceding decl, as raw strings for syntax.ParseAll to interpret.
func commentCommandsBefore(decl *sitter.Node, src []byte) []string {
	prev := decl.PrevSibling()
	var comments []string
	for prev != nil && prev.Type() == "comment" {
		comments = append([]string{prev.Content(src)}, comments...)
		prev = prev.PrevSibling()
	}
	return comments
}

func leadingFileCommands(root *sitter.Node, src []byte) []string {
	var out []string
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "comment" {
			break
		}
		out = append(out, child.Content(src))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
