// Package spectrum: the partial eigensystem entry points.
package spectrum

import (
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/graph"
)

// Eigensystem returns the k eigenvalues and eigenvectors of the selected
// matrix of g, ordered per order: ascending for Smallest, descending by
// absolute value for Largest. The returned matrix is n×k with one
// eigenvector per column, aligned with the values slice.
//
// Constraints: 1 ≤ k ≤ n-1 strictly; k = n is rejected because the
// iterative backend cannot extract a full sparse spectrum.
//
// Errors: ErrNilGraph, ErrBadK, ErrUnknownMatrix, ErrUnknownOrder,
// graph.ErrIsolatedVertex (normalised selectors on isolated vertices),
// ErrNoConvergence from the backend.
func Eigensystem(g *graph.Graph, which Matrix, k int, order Order) ([]float64, *mat.Dense, error) {
	// 1) Argument validation.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NumberOfVertices()
	if k < 1 || k >= n {
		return nil, nil, ErrBadK
	}
	if order != Smallest && order != Largest {
		return nil, nil, ErrUnknownOrder
	}

	// 2) Materialise the selected matrix.
	m, err := selectMatrix(g, which)
	if err != nil {
		return nil, nil, err
	}

	// 3) Decompose: direct solver for small operators, Lanczos beyond.
	var vals []float64
	var vecs *mat.Dense
	if n <= denseEigenCutoff {
		vals, vecs, err = denseEigen(m, n)
	} else {
		vals, vecs, err = lanczosEigen(newCSROperator(m), k, order)
	}
	if err != nil {
		return nil, nil, err
	}

	// 4) Select and order the requested eigenpairs.
	return selectPairs(vals, vecs, k, order)
}

// Eigenvalues returns just the eigenvalues of Eigensystem.
func Eigenvalues(g *graph.Graph, which Matrix, k int, order Order) ([]float64, error) {
	vals, _, err := Eigensystem(g, which, k, order)

	return vals, err
}

// selectMatrix maps a selector onto the graph's cached matrix.
func selectMatrix(g *graph.Graph, which Matrix) (*sparse.CSR, error) {
	switch which {
	case Adjacency:
		return g.Adjacency(), nil
	case Laplacian:
		return g.Laplacian(), nil
	case NormalisedLaplacian:
		return g.NormalisedLaplacian()
	case SignlessLaplacian:
		return g.SignlessLaplacian(), nil
	case NormalisedSignlessLaplacian:
		return g.NormalisedSignlessLaplacian()
	default:
		return nil, ErrUnknownMatrix
	}
}

// denseEigen densifies the operator and runs gonum's symmetric eigensolver.
// Returns the full spectrum ascending with all n eigenvectors.
func denseEigen(m *sparse.CSR, n int) ([]float64, *mat.Dense, error) {
	data := make([]float64, n*n)
	m.DoNonZero(func(i, j int, v float64) {
		data[i*n+j] = v
	})

	var eig mat.EigenSym
	if ok := eig.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, nil, ErrNoConvergence
	}

	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	return vals, &vecs, nil
}

// selectPairs picks k eigenpairs out of the decomposition per order and
// packs them into aligned outputs.
func selectPairs(vals []float64, vecs *mat.Dense, k int, order Order) ([]float64, *mat.Dense, error) {
	n, _ := vecs.Dims()

	// Build the index permutation for the requested order. The input is
	// ascending by algebraic value (dense path) or already extremal
	// (Lanczos path, still sorted ascending before this call).
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	if order == Largest {
		sort.SliceStable(idx, func(a, b int) bool {
			av, bv := vals[idx[a]], vals[idx[b]]
			if av < 0 {
				av = -av
			}
			if bv < 0 {
				bv = -bv
			}

			return av > bv
		})
	}

	outVals := make([]float64, k)
	outVecs := mat.NewDense(n, k, nil)
	var c, r int
	for c = 0; c < k; c++ {
		outVals[c] = vals[idx[c]]
		for r = 0; r < n; r++ {
			outVecs.Set(r, c, vecs.At(r, idx[c]))
		}
	}

	return outVals, outVecs, nil
}
