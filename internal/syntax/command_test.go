package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/syntax"
)

// §6 grammar: "// periphery:<command>[:<args>]", comma-separated identifier
// arguments.
func TestParseCommandRecognizesGrammar(t *testing.T) {
	cmd, ok := syntax.ParseCommand("// periphery:ignore-parameters:a,b,c")
	require.True(t, ok)
	assert.Equal(t, syntax.CmdIgnoreParameters, cmd.Name)
	assert.Equal(t, []string{"a", "b", "c"}, cmd.Args)

	cmd2, ok2 := syntax.ParseCommand("// periphery:ignore")
	require.True(t, ok2)
	assert.Equal(t, syntax.CmdIgnore, cmd2.Name)
	assert.Empty(t, cmd2.Args)
}

func TestParseCommandRejectsUnknownOrUnprefixed(t *testing.T) {
	_, ok := syntax.ParseCommand("// periphery:bogus")
	assert.False(t, ok)

	_, ok2 := syntax.ParseCommand("// a plain comment")
	assert.False(t, ok2)
}

// §4.3: a leading ignore-all command retains the whole file's top-level
// hierarchy.
func TestApplyCommandsIgnoreAllRetainsFile(t *testing.T) {
	g := graph.New()
	parent := graphmodel.NewDeclaration(graphmodel.KindClass, graphmodel.Location{File: "a.go", Line: 1})
	child := graphmodel.NewDeclaration(graphmodel.KindMethodInstance, graphmodel.Location{File: "a.go", Line: 2})
	parent.AddChild(child)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{parent, child}
	g.Commit(fc)

	fr := syntax.FileResult{File: "a.go", FileLeadingCommands: []string{"// periphery:ignore-all"}}
	syntax.ApplyCommands(g, fr, true)

	assert.True(t, parent.Retained)
	assert.True(t, child.Retained)
}

// §4.3: a per-declaration ignore command retains that declaration and its
// descendants.
func TestApplyCommandsIgnoreRetainsDeclarationTree(t *testing.T) {
	g := graph.New()
	parent := graphmodel.NewDeclaration(graphmodel.KindClass, graphmodel.Location{File: "a.go", Line: 1})
	parent.CommentCommands.Add("// periphery:ignore")
	child := graphmodel.NewDeclaration(graphmodel.KindMethodInstance, graphmodel.Location{File: "a.go", Line: 2})
	parent.AddChild(child)

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{parent, child}
	g.Commit(fc)

	syntax.ApplyCommands(g, syntax.FileResult{File: "a.go"}, true)

	assert.True(t, parent.Retained)
	assert.True(t, child.Retained)
}

// §4.3: ignore-parameters records the named parameters for the
// unused-parameter pass to consult, without retaining anything by itself.
func TestApplyCommandsIgnoreParametersRecordsNames(t *testing.T) {
	g := graph.New()
	fnLoc := graphmodel.Location{File: "a.go", Line: 1}
	fn := graphmodel.NewDeclaration(graphmodel.KindFreeFunction, fnLoc)
	fn.CommentCommands.Add("// periphery:ignore-parameters:b")

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{fn}
	g.Commit(fc)

	retention := syntax.ApplyCommands(g, syntax.FileResult{File: "a.go"}, true)

	names, ok := retention[fnLoc]
	require.True(t, ok)
	assert.True(t, names.Has("b"))
	assert.False(t, fn.Retained)
}

// §6 ignore-comment-commands: when honorCommands is false, no commands are
// applied and ParameterRetention is empty.
func TestApplyCommandsSkipsWhenNotHonored(t *testing.T) {
	g := graph.New()
	fn := graphmodel.NewDeclaration(graphmodel.KindFreeFunction, graphmodel.Location{File: "a.go", Line: 1})
	fn.CommentCommands.Add("// periphery:ignore")

	fc := graph.NewFileCommit("a.go")
	fc.Declarations = []*graphmodel.Declaration{fn}
	g.Commit(fc)

	retention := syntax.ApplyCommands(g, syntax.FileResult{File: "a.go"}, false)
	assert.Empty(t, retention)
	assert.False(t, fn.Retained)
}
