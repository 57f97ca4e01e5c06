package index_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/unreach/internal/graph"
	"github.com/oxhq/unreach/internal/graphmodel"
	"github.com/oxhq/unreach/internal/index"
)

// §5: files are ingested concurrently but every resulting declaration
// lands in the shared graph once the pool joins.
func TestIngestAllCommitsEveryFile(t *testing.T) {
	g := graph.New()

	var files []index.FileInput
	for i := 0; i < 8; i++ {
		fileName := string(rune('a'+i)) + ".go"
		occ := index.Occurrence{
			Symbol:   index.Symbol{Name: "f", ID: string(rune('a' + i)), Kind: graphmodel.KindFreeFunction},
			Location: graphmodel.Location{File: fileName, Line: 1, Column: 1},
			Roles:    index.RoleFlags{Definition: true},
		}
		files = append(files, index.FileInput{
			File:  fileName,
			Units: []index.UnitRef{{Store: &fakeStore{occs: []index.Occurrence{occ}}, Unit: &fakeUnit{path: fileName, module: "pkg"}}},
		})
	}

	err := index.IngestAll(context.Background(), g, files, index.Options{})
	require.NoError(t, err)
	assert.Len(t, g.AllDeclarations(), 8)
}

// §5 Cancellation: the first worker error is propagated; the run does not
// silently succeed.
func TestIngestAllPropagatesFirstError(t *testing.T) {
	g := graph.New()
	files := []index.FileInput{
		{File: "bad.go", Units: []index.UnitRef{{Store: &fakeStore{err: errors.New("boom")}, Unit: &fakeUnit{path: "bad.go", module: "pkg"}}}},
	}

	err := index.IngestAll(context.Background(), g, files, index.Options{})
	require.Error(t, err)
}
