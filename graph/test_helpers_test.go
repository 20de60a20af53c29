package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/graph"
)

// weightedEdge is a compact {u, v, w} literal for test fixtures.
type weightedEdge struct {
	u, v int
	w    float64
}

// rawCSR assembles canonical CSR arrays from an undirected edge list.
// Each off-diagonal edge is mirrored; self-loops (u == v) appear once.
func rawCSR(n int, edges []weightedEdge) (rowPtr, colInd []int, vals []float64) {
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

	rowPtr = make([]int, n+1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if w, ok := adj[i][j]; ok && w != 0 {
				colInd = append(colInd, j)
				vals = append(vals, w)
			}
		}
		rowPtr[i+1] = len(colInd)
	}

	return rowPtr, colInd, vals
}

// newGraph builds a Graph from an undirected edge list, failing the test on error.
func newGraph(t *testing.T, n int, edges []weightedEdge) *graph.Graph {
	t.Helper()

	g, err := graph.NewGraphFromRaw(rawCSR(n, edges))
	require.NoError(t, err, "fixture graph must construct")

	return g
}

// pathGraph returns the unit-weight path P_n: 0-1-...-(n-1).
func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()

	edges := make([]weightedEdge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, weightedEdge{u: i, v: i + 1, w: 1})
	}

	return newGraph(t, n, edges)
}

// cycleGraph returns the unit-weight cycle C_n.
func cycleGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()

	edges := make([]weightedEdge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, weightedEdge{u: i, v: (i + 1) % n, w: 1})
	}

	return newGraph(t, n, edges)
}

// completeGraph returns the unit-weight complete graph K_n.
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
