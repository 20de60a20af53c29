// Package graph: constructors and canonical CSR assembly.
//
// Construction is fail-fast: a Graph is only returned after its adjacency
// matrix has been canonicalised (rows sorted, duplicates coalesced, explicit
// zeros dropped) and validated (square, exactly symmetric, non-negative).
// A failed construction leaves nothing observable behind.
package graph

import (
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// triplet is one (row, col, value) entry during assembly.
type triplet struct {
	i, j int
	v    float64
}

// NewGraphFromRaw constructs a Graph from raw CSR arrays: rowPtr of length
// n+1, and parallel colInd/vals arrays of length rowPtr[n].
//
// The arrays are copied and canonicalised; duplicate (i,j) entries are
// coalesced by summation, explicit zeros are dropped.
//
// Errors:
//   - ErrBadCSR on malformed arrays (lengths, non-monotone row pointers,
//     column index out of range).
//   - ErrNotSymmetric, ErrNegativeWeight on invalid adjacency content.
//
// Complexity: O(nnz log nnz) time, O(n + nnz) space.
func NewGraphFromRaw(rowPtr, colInd []int, vals []float64) (*Graph, error) {
	// 1) Validate the CSR skeleton.
	if len(rowPtr) < 1 || rowPtr[0] != 0 {
		return nil, ErrBadCSR
	}
	n := len(rowPtr) - 1
	if rowPtr[n] != len(colInd) || len(colInd) != len(vals) {
		return nil, ErrBadCSR
	}

	// 2) Flatten into triplets, checking structure as we go.
	ts := make([]triplet, 0, len(vals))
	var i, p int
	for i = 0; i < n; i++ {
		if rowPtr[i] > rowPtr[i+1] {
			return nil, ErrBadCSR
		}
		for p = rowPtr[i]; p < rowPtr[i+1]; p++ {
			if colInd[p] < 0 || colInd[p] >= n {
				return nil, ErrBadCSR
			}
			ts = append(ts, triplet{i: i, j: colInd[p], v: vals[p]})
		}
	}

	// 3) Canonicalise and validate adjacency invariants.
	return newFromTriplets(n, ts)
}

// NewGraph constructs a Graph from a pre-built sparse adjacency matrix.
//
// Errors: ErrNilGraph on nil input, ErrNonSquare, ErrNotSymmetric,
// ErrNegativeWeight.
func NewGraph(a *sparse.CSR) (*Graph, error) {
	if a == nil {
		return nil, ErrNilGraph
	}
	r, c := a.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	// Collect the non-zero entries; CSR iteration is row-major already.
	ts := make([]triplet, 0, a.NNZ())
	a.DoNonZero(func(i, j int, v float64) {
		ts = append(ts, triplet{i: i, j: j, v: v})
	})

	return newFromTriplets(r, ts)
}

// NewGraphFromMatrix constructs a Graph from a matrix that may be either an
// adjacency matrix or a Laplacian.
//
// Disambiguation rule: if any off-diagonal entry is strictly negative, the
// input is a Laplacian L and the adjacency is reconstructed by negating the
// off-diagonals of L and placing the row sums of L (the self-loop weights)
// on the diagonal; reconstructed entries with absolute value below 1e-10
// are pruned to zero to suppress floating-point noise. Otherwise the input
// is taken as an adjacency matrix verbatim.
//
// Sparse inputs (anything satisfying sparse.Sparser) are scanned over their
// non-zeros only; dense inputs cost O(n²).
//
// Errors: ErrNilGraph, ErrNonSquare, ErrNotSymmetric, ErrNegativeWeight.
func NewGraphFromMatrix(m mat.Matrix) (*Graph, error) {
	if m == nil {
		return nil, ErrNilGraph
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	// 1) Collect non-zero triplets once.
	var ts []triplet
	if s, ok := m.(sparse.Sparser); ok {
		ts = make([]triplet, 0, s.NNZ())
		s.DoNonZero(func(i, j int, v float64) {
			ts = append(ts, triplet{i: i, j: j, v: v})
		})
	} else {
		var i, j int
		var v float64
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v = m.At(i, j); v != 0 {
					ts = append(ts, triplet{i: i, j: j, v: v})
				}
			}
		}
	}

	// 2) Disambiguate: a strictly negative off-diagonal marks a Laplacian.
	isLaplacian := false
	for _, t := range ts {
		if t.i != t.j && t.v < 0 {
			isLaplacian = true
			break
		}
	}
	if !isLaplacian {
		return newFromTriplets(r, ts)
	}

	// 3) Reconstruct the adjacency: off-diagonal entries are the negated
	// off-diagonals of L; the diagonal (self-loop weight) is the row sum of
	// L, which is zero for loop-free rows and A[i,i] otherwise.
	rowSum := make([]float64, r)
	for _, t := range ts {
		rowSum[t.i] += t.v
	}
	adj := make([]triplet, 0, len(ts))
	for _, t := range ts {
		if t.i == t.j {
			continue // diagonal handled below
		}
		if w := -t.v; w > pruneEpsilon || w < -pruneEpsilon {
			adj = append(adj, triplet{i: t.i, j: t.j, v: w})
		}
	}
	var i int
	for i = 0; i < r; i++ {
		if w := rowSum[i]; w > pruneEpsilon || w < -pruneEpsilon {
			adj = append(adj, triplet{i: i, j: i, v: w})
		}
	}

	return newFromTriplets(r, adj)
}

// NewGraphFromEdges constructs a Graph on n vertices from an undirected
// edge list. Off-diagonal edges are mirrored automatically; self-loops
// (U == V) are taken once. Duplicate edges coalesce by summation.
//
// Errors: ErrVertexOutOfRange on an endpoint outside [0, n),
// ErrNegativeWeight.
func NewGraphFromEdges(n int, edges []Edge) (*Graph, error) {
	ts := make([]triplet, 0, 2*len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, ErrVertexOutOfRange
		}
		ts = append(ts, triplet{i: e.U, j: e.V, v: e.Weight})
		if e.U != e.V {
			ts = append(ts, triplet{i: e.V, j: e.U, v: e.Weight})
		}
	}

	return newFromTriplets(n, ts)
}

// newFromTriplets canonicalises triplets into CSR storage, validates the
// adjacency invariants, and finishes Graph construction.
func newFromTriplets(n int, ts []triplet) (*Graph, error) {
	// 1) Canonical order: row-major, columns ascending.
	sort.Slice(ts, func(a, b int) bool {
		if ts[a].i != ts[b].i {
			return ts[a].i < ts[b].i
		}

		return ts[a].j < ts[b].j
	})

	// 2) Coalesce duplicates by summation, drop exact zeros.
	rowPtr := make([]int, n+1)
	colInd := make([]int, 0, len(ts))
	vals := make([]float64, 0, len(ts))
	var k int
	for k = 0; k < len(ts); {
		i, j, v := ts[k].i, ts[k].j, ts[k].v
		for k++; k < len(ts) && ts[k].i == i && ts[k].j == j; k++ {
			v += ts[k].v
		}
		if v == 0 {
			continue
		}
		colInd = append(colInd, j)
		vals = append(vals, v)
		rowPtr[i+1]++
	}
	for k = 0; k < n; k++ {
		rowPtr[k+1] += rowPtr[k]
	}

	g := &Graph{n: n, rowPtr: rowPtr, colInd: colInd, vals: vals}

	// 3) Validate: non-negative entries and exact symmetry.
	var p int
	for k = 0; k < n; k++ {
		for p = rowPtr[k]; p < rowPtr[k+1]; p++ {
			if vals[p] < 0 {
				return nil, ErrNegativeWeight
			}
			if j := colInd[p]; j != k {
				if w, ok := g.at(j, k); !ok || w != vals[p] {
					return nil, ErrNotSymmetric
				}
			}
		}
	}

	// 4) Degrees and the self-loop flag; a self-loop contributes twice.
	g.degrees = make([]float64, n)
	g.degreesUW = make([]int, n)
	for k = 0; k < n; k++ {
		for p = rowPtr[k]; p < rowPtr[k+1]; p++ {
			g.degrees[k] += vals[p]
			g.degreesUW[k]++
			if colInd[p] == k {
				g.degrees[k] += vals[p]
				g.degreesUW[k]++
				g.selfLoops++
			}
		}
	}
	g.hasSelfLoops = g.selfLoops > 0

	return g, nil
}

// at returns the (i, j) entry of the canonical adjacency storage and whether
// it is structurally present. Binary search over the sorted row.
func (g *Graph) at(i, j int) (float64, bool) {
	lo, hi := g.rowPtr[i], g.rowPtr[i+1]
	p := lo + sort.SearchInts(g.colInd[lo:hi], j)
	if p < hi && g.colInd[p] == j {
		return g.vals[p], true
	}

	return 0, false
}
