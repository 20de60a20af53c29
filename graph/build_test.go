package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/graph"
)

// TestSubgraph_InducedAndRemapped verifies edge survival and the dense
// remapping of vertex ids.
func TestSubgraph_InducedAndRemapped(t *testing.T) {
	// square 0-1-2-3-0 with a chord {0,2}
	g := newGraph(t, 4, []weightedEdge{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {0, 3, 1}, {0, 2, 5}})

	sub, err := g.Subgraph([]int{0, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 3, sub.NumberOfVertices(), "three induced vertices")
	assert.Equal(t, 3, sub.NumberOfEdges(), "edges {0,2},{2,3},{0,3} survive")
	// 0→0, 2→1, 3→2 under first-occurrence remapping
	assert.Equal(t, 5.0, sub.Adjacency().At(0, 1), "chord weight at remapped ids")
	assert.Equal(t, 1.0, sub.Adjacency().At(1, 2), "edge {2,3} remapped")
	assert.Zero(t, sub.Adjacency().At(0, 0), "no loop introduced")
}

// TestSubgraph_DuplicatesIgnored verifies duplicate ids in the vertex list
// do not inflate the induced set.
func TestSubgraph_DuplicatesIgnored(t *testing.T) {
	g := cycleGraph(t, 5)

	sub, err := g.Subgraph([]int{1, 2, 1, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NumberOfVertices(), "duplicates collapse")
	assert.Equal(t, 1, sub.NumberOfEdges(), "single surviving cycle edge")
}

// TestSubgraph_OutOfRange verifies the invalid-argument contract.
func TestSubgraph_OutOfRange(t *testing.T) {
	g := cycleGraph(t, 5)

	_, err := g.Subgraph([]int{0, 5})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange, "vertex 5 does not exist")
}

// TestDisjointUnion_BlockDiagonal verifies the shifted block structure.
func TestDisjointUnion_BlockDiagonal(t *testing.T) {
	a := newGraph(t, 2, []weightedEdge{{0, 1, 2}})
	b := newGraph(t, 2, []weightedEdge{{0, 1, 1}})

	u, err := a.DisjointUnion(b)
	require.NoError(t, err)

	assert.Equal(t, 4, u.NumberOfVertices(), "n + n' vertices")
	assert.Equal(t, 2, u.NumberOfEdges(), "edges from both operands")
	assert.Equal(t, 2.0, u.Adjacency().At(0, 1), "first block intact")
	assert.Equal(t, 1.0, u.Adjacency().At(2, 3), "second block shifted by n")
	assert.Zero(t, u.Adjacency().At(1, 2), "no cross-block edges")

	_, err = a.DisjointUnion(nil)
	assert.ErrorIs(t, err, graph.ErrNilGraph, "nil operand rejected")
}
