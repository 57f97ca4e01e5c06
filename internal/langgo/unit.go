// Package langgo is a concrete index.Store and syntax.Visitor
// implementation for Go source, the reference provider the driver can run
// against end to end. It is grounded on the teacher's tree-sitter-based Go
// provider (providers/golang), reusing the same parser and grammar but
// feeding the dead-code pipeline instead of a query/transform engine.
package langgo

import sitter "github.com/smacker/go-tree-sitter"

// Unit is one Go source file treated as its own compilation unit. Go has
// no separate compiler-index step, so ingestion and parsing share the same
// tree-sitter pass (see Store.Occurrences).
type Unit struct {
	Path       string
	Package    string
	ImportList []string
}

func (u *Unit) MainFilePath() string { return u.Path }
func (u *Unit) ModuleName() string   { return u.Package }
func (u *Unit) Imports() []string    { return u.ImportList }

// parseUnitHeader extracts the package clause and import paths from a
// parsed source_file root, used both to build the Unit and to answer
// index.CompilationUnit.Imports().
func parseUnitHeader(root *sitter.Node, source []byte) (pkg string, imports []string) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_clause":
			if id := child.NamedChild(0); id != nil {
				pkg = id.Content(source)
			}
		case "import_declaration":
			imports = append(imports, importPathsOf(child, source)...)
		}
	}
	return pkg, imports
}

func importPathsOf(decl *sitter.Node, source []byte) []string {
	var paths []string
	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n.Type() == "interpreted_string_literal" {
			raw := n.Content(source)
			paths = append(paths, trimQuotes(raw))
			return
		}
		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(decl)
	return paths
}

func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
