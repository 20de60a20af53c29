package spectrum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/graph"
)

// weightedEdge is a compact {u, v, w} literal for fixtures.
type weightedEdge struct {
	u, v int
	w    float64
}

// newGraph assembles a Graph from an undirected edge list.
func newGraph(t *testing.T, n int, edges []weightedEdge) *graph.Graph {
	t.Helper()

	adj := make([]map[int]float64, n)
	for i := range adj {
		adj[i] = make(map[int]float64)
	}
	for _, e := range edges {
		adj[e.u][e.v] += e.w
		if e.u != e.v {
			adj[e.v][e.u] += e.w
		}
	}

	rowPtr := make([]int, n+1)
	var colInd []int
	var vals []float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if w, ok := adj[i][j]; ok && w != 0 {
				colInd = append(colInd, j)
				vals = append(vals, w)
			}
		}
		rowPtr[i+1] = len(colInd)
	}

	g, err := graph.NewGraphFromRaw(rowPtr, colInd, vals)
	require.NoError(t, err, "fixture graph must construct")

	return g
}

// completeGraph returns K_n with unit weights.
func completeGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()

	var edges []weightedEdge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, weightedEdge{u: i, v: j, w: 1})
		}
	}

	return newGraph(t, n, edges)
}

// cycleGraph returns C_n with unit weights.
func cycleGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()

	edges := make([]weightedEdge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, weightedEdge{u: i, v: (i + 1) % n, w: 1})
	}

	return newGraph(t, n, edges)
}
