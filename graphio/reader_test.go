package graphio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torvenik/graphden/core"
	"github.com/torvenik/graphden/graphio"
	"github.com/torvenik/graphden/mst"
)

// TestRead_LineLayoutIrrelevant parses the same graph in three layouts.
func TestRead_LineLayoutIrrelevant(t *testing.T) {
	inputs := map[string]string{
		"one per line": "4 4\n0 1 1\n1 2 2\n2 3 3\n0 3 10\n",
		"single line":  "4 4 0 1 1 1 2 2 2 3 3 0 3 10",
		"ragged":       "4\n4 0 1\n1 1 2 2 2\n\t3 3\n0 3 10",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			g, err := graphio.Read(strings.NewReader(in))
			require.NoError(t, err)

			assert.Equal(t, 4, g.VertexCount())
			assert.Equal(t, 4, g.EdgeCount())
			assert.False(t, g.Directed())

			// The parsed graph feeds the algorithms directly.
			_, total, err := mst.Kruskal(g)
			require.NoError(t, err)
			assert.Equal(t, 6.0, total)
		})
	}
}

// TestRead_FractionalWeightsAndOrder verifies float weights and file-order
// insertion.
func TestRead_FractionalWeightsAndOrder(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("3 2  0 2 0.5  0 1 2.25"))
	require.NoError(t, err)

	nbrs, err := g.ConnectedVertices(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, nbrs, "adjacency preserves file order")

	edges, _ := g.EdgeList(0)
	assert.Equal(t, 0.5, edges[0].Weight)
	assert.Equal(t, 2.25, edges[1].Weight)
}

// TestRead_TrailingTokensIgnored: the reader consumes exactly the declared
// edge count.
func TestRead_TrailingTokensIgnored(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("2 1 0 1 7 999 999 999"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestRead_Failures covers the format sentinels and wrapped core errors.
func TestRead_Failures(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty input", "", graphio.ErrBadHeader},
		{"missing edge count", "4", graphio.ErrBadHeader},
		{"negative header", "-2 0", graphio.ErrBadHeader},
		{"non-numeric header", "four 4", graphio.ErrBadHeader},
		{"truncated triples", "3 2 0 1 1", graphio.ErrTruncated},
		{"bad vertex token", "3 1 zero 1 1", graphio.ErrBadToken},
		{"bad weight token", "3 1 0 1 heavy", graphio.ErrBadToken},
		{"vertex out of range", "2 1 0 5 1", core.ErrVertexRange},
		{"self-loop", "2 1 1 1 1", core.ErrSelfLoop},
		{"duplicate edge", "2 2 0 1 1 1 0 2", core.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestReadFile round-trips through a real file and fails cleanly on a
// missing path.
func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weighted-graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("3 3\n0 1 4\n1 2 1\n0 2 2\n"), 0o644))

	g, err := graphio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())

	_, err = graphio.ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
