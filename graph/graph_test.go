package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"pgregory.net/rapid"

	"github.com/katalvlaran/spectral/graph"
)

// TestNewGraphFromRaw_BadCSR verifies malformed CSR arrays are rejected.
func TestNewGraphFromRaw_BadCSR(t *testing.T) {
	// rowPtr does not start at zero
	_, err := graph.NewGraphFromRaw([]int{1, 1}, nil, nil)
	assert.ErrorIs(t, err, graph.ErrBadCSR, "rowPtr[0] != 0 must error")

	// rowPtr final entry disagrees with nnz
	_, err = graph.NewGraphFromRaw([]int{0, 2}, []int{0}, []float64{1})
	assert.ErrorIs(t, err, graph.ErrBadCSR, "rowPtr[n] != len(colInd) must error")

	// column index out of range
	_, err = graph.NewGraphFromRaw([]int{0, 1}, []int{3}, []float64{1})
	assert.ErrorIs(t, err, graph.ErrBadCSR, "column index >= n must error")

	// non-monotone row pointers
	_, err = graph.NewGraphFromRaw([]int{0, 1, 0, 1}, []int{0}, []float64{1})
	assert.ErrorIs(t, err, graph.ErrBadCSR, "decreasing rowPtr must error")
}

// TestNewGraphFromRaw_Asymmetric verifies the domain failure on asymmetric input.
func TestNewGraphFromRaw_Asymmetric(t *testing.T) {
	// A[0,1] = 1 without the mirrored A[1,0]
	_, err := graph.NewGraphFromRaw([]int{0, 1, 1}, []int{1}, []float64{1})
	assert.ErrorIs(t, err, graph.ErrNotSymmetric, "missing mirror entry must error")

	// mirrored entry with a different weight
	_, err = graph.NewGraphFromRaw([]int{0, 1, 2}, []int{1, 0}, []float64{1, 2})
	assert.ErrorIs(t, err, graph.ErrNotSymmetric, "unequal mirror weight must error")
}

// TestNewGraphFromRaw_NegativeWeight verifies negative entries are rejected.
func TestNewGraphFromRaw_NegativeWeight(t *testing.T) {
	_, err := graph.NewGraphFromRaw([]int{0, 1, 2}, []int{1, 0}, []float64{-1, -1})
	assert.ErrorIs(t, err, graph.ErrNegativeWeight, "negative adjacency entry must error")
}

// TestGraph_SymmetryInvariant verifies A == Aᵀ exactly for a valid fixture.
func TestGraph_SymmetryInvariant(t *testing.T) {
	g := newGraph(t, 4, []weightedEdge{{0, 1, 2}, {1, 2, 0.5}, {2, 3, 1}, {0, 3, 3}})
	a := g.Adjacency()

	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, a.At(i, j), a.At(j, i), "A[%d,%d] must equal A[%d,%d] exactly", i, j, j, i)
		}
	}
}

// TestGraph_CountsAndVolume verifies vertex/edge counts, volume and average degree.
func TestGraph_CountsAndVolume(t *testing.T) {
	// triangle + pendant vertex: edges {0,1},{1,2},{0,2},{2,3}
	g := newGraph(t, 4, []weightedEdge{{0, 1, 1}, {1, 2, 1}, {0, 2, 1}, {2, 3, 2}})

	assert.Equal(t, 4, g.NumberOfVertices(), "vertex count")
	assert.Equal(t, 4, g.NumberOfEdges(), "edge count")
	assert.False(t, g.HasSelfLoops(), "no loops in fixture")
	assert.InDelta(t, 2+2+4+2, g.TotalVolume(), 1e-12, "volume = sum of degrees")
	assert.InDelta(t, 10.0/4, g.AverageDegree(), 1e-12, "average degree")
}

// TestGraph_SelfLoopAccounting verifies the doubled-degree convention and
// the one-edge-per-loop edge count.
func TestGraph_SelfLoopAccounting(t *testing.T) {
	// loop of weight 2 at vertex 0 plus edge {0,1} of weight 1
	g := newGraph(t, 2, []weightedEdge{{0, 0, 2}, {0, 1, 1}})

	assert.True(t, g.HasSelfLoops(), "loop flag must be set at construction")
	assert.Equal(t, 2, g.NumberOfEdges(), "loop counts as one edge")

	d0, err := g.Degree(0)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d0, 1e-12, "loop contributes twice: 2*2 + 1")

	du0, err := g.DegreeUnweighted(0)
	require.NoError(t, err)
	assert.Equal(t, 3, du0, "unweighted degree counts the loop twice")

	w, err := g.SelfLoopWeight(0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, w, "self-loop weight")

	w, err = g.SelfLoopWeight(1)
	require.NoError(t, err)
	assert.Zero(t, w, "no loop at vertex 1")
}

// TestNewGraphFromMatrix_Adjacency verifies the non-negative branch of the
// disambiguation rule.
func TestNewGraphFromMatrix_Adjacency(t *testing.T) {
	dense := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 2,
		0, 2, 0,
	})

	g, err := graph.NewGraphFromMatrix(dense)
	require.NoError(t, err, "non-negative matrix is an adjacency matrix")
	assert.Equal(t, 2, g.NumberOfEdges(), "two edges expected")
	assert.Equal(t, 1.0, g.Adjacency().At(0, 1), "weight preserved")
}

// TestNewGraphFromMatrix_Laplacian verifies the Laplacian branch: a strictly
// negative off-diagonal switches interpretation and the adjacency round-trips.
func TestNewGraphFromMatrix_Laplacian(t *testing.T) {
	// Laplacian of the weighted path 0-(2)-1-(0.5)-2
	dense := mat.NewDense(3, 3, []float64{
		2, -2, 0,
		-2, 2.5, -0.5,
		0, -0.5, 0.5,
	})

	g, err := graph.NewGraphFromMatrix(dense)
	require.NoError(t, err, "valid Laplacian must construct")

	want := newGraph(t, 3, []weightedEdge{{0, 1, 2}, {1, 2, 0.5}})
	assert.True(t, graph.Equal(want, g, 1e-9), "reconstructed adjacency must match")
}

// TestLaplacianRoundTrip_Property is the Laplacian-to-adjacency round-trip
// invariant over random weighted graphs, including self-loops.
func TestLaplacianRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(rt, "n")

		// Random symmetric non-negative adjacency with sparse structure.
		dense := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if rapid.Bool().Draw(rt, "present") {
					w := rapid.Float64Range(0.25, 4).Draw(rt, "w")
					dense.Set(i, j, w)
					dense.Set(j, i, w)
				}
			}
		}

		g, err := graph.NewGraphFromMatrix(dense)
		if err != nil {
			rt.Fatalf("adjacency fixture must construct: %v", err)
		}

		back, err := graph.NewGraphFromMatrix(g.Laplacian())
		if err != nil {
			rt.Fatalf("round-trip must construct: %v", err)
		}
		if !graph.Equal(g, back, 1e-9) {
			rt.Fatalf("adjacency not preserved through Laplacian round-trip")
		}
	})
}

// TestGraph_VertexExists covers the range check on both sides.
func TestGraph_VertexExists(t *testing.T) {
	g := pathGraph(t, 3)

	assert.True(t, g.VertexExists(0), "first vertex")
	assert.True(t, g.VertexExists(2), "last vertex")
	assert.False(t, g.VertexExists(-1), "negative index")
	assert.False(t, g.VertexExists(3), "index == n")
}
