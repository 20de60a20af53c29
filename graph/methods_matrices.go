// Package graph: lazy synthesis of the derived matrices.
//
// Every getter materialises its matrix on first call and caches it for the
// lifetime of the Graph; the matrices are never recomputed. Lazy
// initialisation is not synchronised - pre-warm before sharing the Graph
// across goroutines.
package graph

import (
	"math"

	"github.com/james-bowman/sparse"
)

// Adjacency returns the adjacency matrix A in CSR form.
func (g *Graph) Adjacency() *sparse.CSR {
	if g.adj == nil {
		g.adj = sparse.NewCSR(g.n, g.n, g.rowPtr, g.colInd, g.vals)
	}

	return g.adj
}

// DegreeMatrix returns the diagonal degree matrix D, D[v,v] = Degree(v).
func (g *Graph) DegreeMatrix() *sparse.CSR {
	if g.deg == nil {
		g.deg = g.buildDiagonal(func(i int) float64 { return g.degrees[i] })
	}

	return g.deg
}

// InverseDegreeMatrix returns D⁻¹. A degree-zero vertex has no inverse
// degree; the call fails with ErrIsolatedVertex.
func (g *Graph) InverseDegreeMatrix() (*sparse.CSR, error) {
	if g.invDeg == nil {
		if err := g.requireNoIsolated(); err != nil {
			return nil, err
		}
		g.invDeg = g.buildDiagonal(func(i int) float64 { return 1 / g.degrees[i] })
	}

	return g.invDeg, nil
}

// Laplacian returns the combinatorial Laplacian L = D - A.
func (g *Graph) Laplacian() *sparse.CSR {
	if g.lap == nil {
		g.lap = g.buildDerived(
			func(i int, aii float64) float64 { return g.degrees[i] - aii },
			func(_, _ int, w float64) float64 { return -w },
		)
	}

	return g.lap
}

// SignlessLaplacian returns |L| = D + A.
func (g *Graph) SignlessLaplacian() *sparse.CSR {
	if g.signlessLap == nil {
		g.signlessLap = g.buildDerived(
			func(i int, aii float64) float64 { return g.degrees[i] + aii },
			func(_, _ int, w float64) float64 { return w },
		)
	}

	return g.signlessLap
}

// NormalisedLaplacian returns L_n = I - D^(-1/2) A D^(-1/2).
//
// Isolated vertices have no normalised form; the call fails with
// ErrIsolatedVertex. Callers must remove or reject degree-zero vertices
// before requesting normalised matrices.
func (g *Graph) NormalisedLaplacian() (*sparse.CSR, error) {
	if g.normLap == nil {
		if err := g.requireNoIsolated(); err != nil {
			return nil, err
		}
		g.normLap = g.buildNormalised(-1)
	}

	return g.normLap, nil
}

// NormalisedSignlessLaplacian returns |L_n| = I + D^(-1/2) A D^(-1/2).
// Fails with ErrIsolatedVertex on degree-zero vertices.
func (g *Graph) NormalisedSignlessLaplacian() (*sparse.CSR, error) {
	if g.normSignless == nil {
		if err := g.requireNoIsolated(); err != nil {
			return nil, err
		}
		g.normSignless = g.buildNormalised(1)
	}

	return g.normSignless, nil
}

// LazyRandomWalkMatrix returns W = ½(I + A D⁻¹). Fails with
// ErrIsolatedVertex on degree-zero vertices.
func (g *Graph) LazyRandomWalkMatrix() (*sparse.CSR, error) {
	if g.lazyWalk == nil {
		if err := g.requireNoIsolated(); err != nil {
			return nil, err
		}
		g.lazyWalk = g.buildDerived(
			func(i int, aii float64) float64 { return 0.5 * (1 + aii/g.degrees[i]) },
			func(_, j int, w float64) float64 { return 0.5 * w / g.degrees[j] },
		)
	}

	return g.lazyWalk, nil
}

// requireNoIsolated rejects graphs with any degree-zero vertex.
func (g *Graph) requireNoIsolated() error {
	for _, d := range g.degrees {
		if d == 0 {
			return ErrIsolatedVertex
		}
	}

	return nil
}

// buildDiagonal assembles a diagonal CSR matrix with entry fn(i) at (i,i).
// Zero diagonal values are stored implicitly (dropped).
func (g *Graph) buildDiagonal(fn func(i int) float64) *sparse.CSR {
	rowPtr := make([]int, g.n+1)
	colInd := make([]int, 0, g.n)
	vals := make([]float64, 0, g.n)
	var i int
	for i = 0; i < g.n; i++ {
		if v := fn(i); v != 0 {
			colInd = append(colInd, i)
			vals = append(vals, v)
		}
		rowPtr[i+1] = len(colInd)
	}

	return sparse.NewCSR(g.n, g.n, rowPtr, colInd, vals)
}

// buildNormalised assembles I + offSign·D^(-1/2) A D^(-1/2) for the two
// normalised Laplacian variants. Degrees are already known to be strictly
// positive.
func (g *Graph) buildNormalised(offSign float64) *sparse.CSR {
	invSqrt := make([]float64, g.n)
	for i, d := range g.degrees {
		invSqrt[i] = 1 / math.Sqrt(d)
	}

	return g.buildDerived(
		func(i int, aii float64) float64 { return 1 + offSign*aii/g.degrees[i] },
		func(i, j int, w float64) float64 { return offSign * w * invSqrt[i] * invSqrt[j] },
	)
}

// buildDerived assembles a matrix whose off-diagonal entries are
// offFn(i, j, A[i,j]) and whose diagonal entries are diagFn(i, A[i,i]),
// preserving the sorted-row CSR canonical form. Zero results are dropped.
//
// Complexity: O(n + nnz) time and space.
func (g *Graph) buildDerived(diagFn func(i int, aii float64) float64, offFn func(i, j int, w float64) float64) *sparse.CSR {
	rowPtr := make([]int, g.n+1)
	colInd := make([]int, 0, len(g.colInd)+g.n)
	vals := make([]float64, 0, len(g.vals)+g.n)

	appendEntry := func(j int, v float64) {
		if v != 0 {
			colInd = append(colInd, j)
			vals = append(vals, v)
		}
	}

	var i, p, j int
	for i = 0; i < g.n; i++ {
		aii, _ := g.at(i, i)
		dv := diagFn(i, aii)
		placed := false
		for p = g.rowPtr[i]; p < g.rowPtr[i+1]; p++ {
			j = g.colInd[p]
			if j == i {
				appendEntry(i, dv)
				placed = true
				continue
			}
			if j > i && !placed {
				appendEntry(i, dv)
				placed = true
			}
			appendEntry(j, offFn(i, j, g.vals[p]))
		}
		if !placed {
			appendEntry(i, dv)
		}
		rowPtr[i+1] = len(colInd)
	}

	return sparse.NewCSR(g.n, g.n, rowPtr, colInd, vals)
}
