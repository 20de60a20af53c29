// Package graph: local neighborhood queries (the LocalGraph capability set).
//
// These methods only touch one CSR row and never materialise a derived
// matrix, so they stay cheap on massive graphs.
package graph

// Degree returns the weighted degree of v: sum of the incident edge weights
// with the self-loop weight counted twice.
func (g *Graph) Degree(v int) (float64, error) {
	if !g.VertexExists(v) {
		return 0, ErrVertexOutOfRange
	}

	return g.degrees[v], nil
}

// DegreeUnweighted returns the number of edge endpoints at v; a self-loop
// counts twice, mirroring the weighted convention.
func (g *Graph) DegreeUnweighted(v int) (int, error) {
	if !g.VertexExists(v) {
		return 0, ErrVertexOutOfRange
	}

	return g.degreesUW[v], nil
}

// Degrees returns the weighted degrees of the given vertices in order.
func (g *Graph) Degrees(vs []int) ([]float64, error) {
	out := make([]float64, len(vs))
	for idx, v := range vs {
		d, err := g.Degree(v)
		if err != nil {
			return nil, err
		}
		out[idx] = d
	}

	return out, nil
}

// DegreesUnweighted returns the unweighted degrees of the given vertices.
func (g *Graph) DegreesUnweighted(vs []int) ([]int, error) {
	out := make([]int, len(vs))
	for idx, v := range vs {
		d, err := g.DegreeUnweighted(v)
		if err != nil {
			return nil, err
		}
		out[idx] = d
	}

	return out, nil
}

// Neighbors returns the edges incident to v in ascending neighbor order.
// The self-loop entry is excluded: loops are reflected in Degree but never
// appear in the neighbor edge list.
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.VertexExists(v) {
		return nil, ErrVertexOutOfRange
	}

	edges := make([]Edge, 0, g.rowPtr[v+1]-g.rowPtr[v])
	var p int
	for p = g.rowPtr[v]; p < g.rowPtr[v+1]; p++ {
		if g.colInd[p] == v {
			continue // self-loop
		}
		edges = append(edges, Edge{U: v, V: g.colInd[p], Weight: g.vals[p]})
	}

	return edges, nil
}

// NeighborsUnweighted returns the neighbor ids of v in ascending order,
// excluding v itself.
func (g *Graph) NeighborsUnweighted(v int) ([]int, error) {
	if !g.VertexExists(v) {
		return nil, ErrVertexOutOfRange
	}

	ids := make([]int, 0, g.rowPtr[v+1]-g.rowPtr[v])
	var p int
	for p = g.rowPtr[v]; p < g.rowPtr[v+1]; p++ {
		if g.colInd[p] == v {
			continue
		}
		ids = append(ids, g.colInd[p])
	}

	return ids, nil
}
