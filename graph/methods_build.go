// Package graph: structural operations producing new Graphs.
package graph

// Subgraph returns the induced subgraph on the given vertex list.
//
// Duplicate ids in the list are ignored; the first occurrence fixes the new
// dense id in [0, m). Edges are kept iff both endpoints survive.
//
// Errors: ErrVertexOutOfRange if any listed vertex is invalid.
//
// Complexity: O(n + nnz(kept rows)) time.
func (g *Graph) Subgraph(vertices []int) (*Graph, error) {
	// 1) Deduplicate while preserving first-occurrence order.
	remap := make(map[int]int, len(vertices))
	kept := make([]int, 0, len(vertices))
	for _, v := range vertices {
		if !g.VertexExists(v) {
			return nil, ErrVertexOutOfRange
		}
		if _, seen := remap[v]; seen {
			continue
		}
		remap[v] = len(kept)
		kept = append(kept, v)
	}

	// 2) Collect surviving edges with remapped endpoints.
	ts := make([]triplet, 0, len(kept))
	var p int
	for newID, v := range kept {
		for p = g.rowPtr[v]; p < g.rowPtr[v+1]; p++ {
			if u, ok := remap[g.colInd[p]]; ok {
				ts = append(ts, triplet{i: newID, j: u, v: g.vals[p]})
			}
		}
	}

	return newFromTriplets(len(kept), ts)
}

// DisjointUnion returns a new Graph on n + n' vertices whose adjacency is
// the block-diagonal combination of the two operands. Vertices of other are
// shifted by g.NumberOfVertices().
func (g *Graph) DisjointUnion(other *Graph) (*Graph, error) {
	if other == nil {
		return nil, ErrNilGraph
	}

	ts := make([]triplet, 0, len(g.vals)+len(other.vals))
	var i, p int
	for i = 0; i < g.n; i++ {
		for p = g.rowPtr[i]; p < g.rowPtr[i+1]; p++ {
			ts = append(ts, triplet{i: i, j: g.colInd[p], v: g.vals[p]})
		}
	}
	for i = 0; i < other.n; i++ {
		for p = other.rowPtr[i]; p < other.rowPtr[i+1]; p++ {
			ts = append(ts, triplet{i: g.n + i, j: g.n + other.colInd[p], v: other.vals[p]})
		}
	}

	return newFromTriplets(g.n+other.n, ts)
}
