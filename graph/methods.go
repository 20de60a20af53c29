// Package graph: whole-graph queries and structural comparison.
package graph

// NumberOfVertices returns the number of vertices n.
func (g *Graph) NumberOfVertices() int { return g.n }

// NumberOfEdges returns the number of undirected edges. Each off-diagonal
// non-zero pair {i,j} counts once; each self-loop counts as one edge.
func (g *Graph) NumberOfEdges() int {
	return (len(g.vals) + g.selfLoops) / 2
}

// HasSelfLoops reports whether the adjacency diagonal has any non-zero.
// The flag is set once at construction.
func (g *Graph) HasSelfLoops() bool { return g.hasSelfLoops }

// SelfLoopWeight returns the weight of the self-loop at v, zero if absent.
func (g *Graph) SelfLoopWeight(v int) (float64, error) {
	if !g.VertexExists(v) {
		return 0, ErrVertexOutOfRange
	}
	w, _ := g.at(v, v)

	return w, nil
}

// TotalVolume returns the sum of the weighted degrees of all vertices,
// equivalently the trace of the degree matrix.
func (g *Graph) TotalVolume() float64 {
	var vol float64
	for _, d := range g.degrees {
		vol += d
	}

	return vol
}

// AverageDegree returns TotalVolume() / n, or zero for an empty graph.
func (g *Graph) AverageDegree() float64 {
	if g.n == 0 {
		return 0
	}

	return g.TotalVolume() / float64(g.n)
}

// VertexExists reports whether v lies in [0, n).
func (g *Graph) VertexExists(v int) bool { return v >= 0 && v < g.n }

// Equal reports whether two graphs have the same vertex count and
// entry-wise equal adjacency matrices within the tolerance eps.
func Equal(a, b *Graph, eps float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.n != b.n {
		return false
	}

	return a.dominatedBy(b, eps) && b.dominatedBy(a, eps)
}

// dominatedBy checks every stored entry of g against the corresponding
// entry of other within eps. Entries absent on one side compare against 0.
func (g *Graph) dominatedBy(other *Graph, eps float64) bool {
	var i, p int
	for i = 0; i < g.n; i++ {
		for p = g.rowPtr[i]; p < g.rowPtr[i+1]; p++ {
			w, _ := other.at(i, g.colInd[p])
			if diff := g.vals[p] - w; diff > eps || diff < -eps {
				return false
			}
		}
	}

	return true
}
