// Package gen: Erdős–Rényi and stochastic block model samplers.
package gen

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/spectral/graph"
)

// Sentinel errors for generator arguments.
var (
	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("gen: random source is nil")

	// ErrBadVertexCount indicates n < 1.
	ErrBadVertexCount = errors.New("gen: vertex count must be >= 1")

	// ErrBadClusterCount indicates k outside [1, n].
	ErrBadClusterCount = errors.New("gen: cluster count must be in [1, n]")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("gen: probability must be in [0, 1]")

	// ErrBadClusterSizes indicates explicit cluster sizes that are empty,
	// non-positive, or do not sum to the vertex count.
	ErrBadClusterSizes = errors.New("gen: cluster sizes must be positive and sum to n")
)

// ErdosRenyi samples G(n, p): each unordered vertex pair becomes a
// unit-weight edge independently with probability p. No self-loops.
//
// Complexity: O(n + E) expected time via geometric gap-skipping.
func ErdosRenyi(src rand.Source, n int, p float64) (*graph.Graph, error) {
	return StochasticBlockModel(src, n, 1, p, 0)
}

// StochasticBlockModel samples an n-vertex graph split into k near-equal
// contiguous clusters (cluster sizes differ by at most one): edges inside a
// cluster appear with probability p, edges between clusters with
// probability q. All edges have unit weight; no self-loops.
//
// Errors: ErrNilSource, ErrBadVertexCount, ErrBadClusterCount,
// ErrBadProbability.
func StochasticBlockModel(src rand.Source, n, k int, p, q float64) (*graph.Graph, error) {
	// 1) Validate arguments.
	if src == nil {
		return nil, ErrNilSource
	}
	if n < 1 {
		return nil, ErrBadVertexCount
	}
	if k < 1 || k > n {
		return nil, ErrBadClusterCount
	}
	if p < 0 || p > 1 || q < 0 || q > 1 {
		return nil, ErrBadProbability
	}

	// 2) Derive near-equal sizes: the first n%k clusters get one extra vertex.
	sizes := make([]int, k)
	base, rem := n/k, n%k
	for c := range sizes {
		sizes[c] = base
		if c < rem {
			sizes[c]++
		}
	}

	return sampleBlocks(src, n, sizes, p, q)
}

// SBMWithSizes samples a stochastic block model with explicit cluster
// sizes: contiguous clusters of the given sizes, within-cluster edge
// probability p, between-cluster probability q. Sizes must be positive and
// sum to n. All edges have unit weight; no self-loops.
//
// Errors: ErrNilSource, ErrBadVertexCount, ErrBadClusterSizes,
// ErrBadProbability.
func SBMWithSizes(src rand.Source, n int, sizes []int, p, q float64) (*graph.Graph, error) {
	// 1) Validate arguments.
	if src == nil {
		return nil, ErrNilSource
	}
	if n < 1 {
		return nil, ErrBadVertexCount
	}
	if len(sizes) == 0 {
		return nil, ErrBadClusterSizes
	}
	total := 0
	for _, s := range sizes {
		if s < 1 {
			return nil, ErrBadClusterSizes
		}
		total += s
	}
	if total != n {
		return nil, ErrBadClusterSizes
	}
	if p < 0 || p > 1 || q < 0 || q > 1 {
		return nil, ErrBadProbability
	}

	return sampleBlocks(src, n, sizes, p, q)
}

// sampleBlocks draws the block-model edges for contiguous clusters of the
// given (already validated) sizes.
func sampleBlocks(src rand.Source, n int, sizes []int, p, q float64) (*graph.Graph, error) {
	// 1) Expand sizes into the per-vertex cluster assignment.
	cluster := make([]int, n)
	var v int
	for c, size := range sizes {
		for i := 0; i < size; i++ {
			cluster[v] = c
			v++
		}
	}

	// 2) Sample the upper triangle row by row with geometric skips.
	rng := rand.New(src)
	var edges []graph.Edge
	emit := func(i, j int) {
		edges = append(edges, graph.Edge{U: i, V: j, Weight: 1})
	}
	var i int
	for i = 0; i < n; i++ {
		j := i + 1
		for j < n {
			// The within/between probability is constant along the rest of
			// this row segment while the cluster does not change; walk one
			// contiguous segment at a time.
			segEnd := clusterEnd(cluster, j)
			prob := q
			if cluster[j] == cluster[i] {
				prob = p
			}
			j = sampleSegment(rng, prob, i, j, segEnd, emit)
		}
	}

	// 3) Assemble the symmetric adjacency.
	return graph.NewGraphFromEdges(n, edges)
}

// clusterEnd returns the first index past j whose cluster differs from j's.
func clusterEnd(cluster []int, j int) int {
	end := j + 1
	for end < len(cluster) && cluster[end] == cluster[j] {
		end++
	}

	return end
}

// sampleSegment emits edges (i, x) for x in [j, end) independently with the
// given probability, using geometric gaps so the cost tracks the number of
// emitted edges. Returns end.
func sampleSegment(rng *rand.Rand, prob float64, i, j, end int, emit func(i, j int)) int {
	switch {
	case prob <= 0:
		return end
	case prob >= 1:
		for x := j; x < end; x++ {
			emit(i, x)
		}

		return end
	}

	logq := math.Log1p(-prob)
	x := j
	for {
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		x += int(math.Log(u) / logq)
		if x >= end {
			return end
		}
		emit(i, x)
		x++
	}
}
