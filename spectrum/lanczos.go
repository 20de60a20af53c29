// Package spectrum: the sparse Lanczos backend.
//
// Used above denseEigenCutoff. The iteration keeps full
// reorthogonalisation against both the Krylov basis and the already
// converged eigenvectors, and restarts per eigenpair with explicit
// deflation. Restarting from a fresh random direction after each converged
// pair is what recovers repeated eigenvalues, which a single Krylov run is
// structurally blind to.
package spectrum

import (
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/james-bowman/sparse"
)

const (
	// maxLanczosDim bounds the Krylov subspace per restart.
	maxLanczosDim = 96

	// maxLanczosRestarts bounds the restarts per eigenpair; each restart
	// begins a new Lanczos run from the current Ritz vector.
	maxLanczosRestarts = 80

	// lanczosTol is the relative residual threshold for Ritz acceptance.
	lanczosTol = 1e-10

	// breakdownTol detects an invariant subspace (happy breakdown).
	breakdownTol = 1e-13

	// lanczosSeed fixes the start vectors; the engine is deterministic.
	lanczosSeed = 1
)

// csrOperator is a minimal symmetric matvec extracted from a CSR matrix.
type csrOperator struct {
	n      int
	rowPtr []int
	colInd []int
	vals   []float64
}

// newCSROperator copies the non-zero pattern of m into flat arrays.
// CSR iteration is row-major, so a single pass plus a prefix sum suffices.
func newCSROperator(m *sparse.CSR) *csrOperator {
	n, _ := m.Dims()
	op := &csrOperator{
		n:      n,
		rowPtr: make([]int, n+1),
		colInd: make([]int, 0, m.NNZ()),
		vals:   make([]float64, 0, m.NNZ()),
	}
	m.DoNonZero(func(i, j int, v float64) {
		op.colInd = append(op.colInd, j)
		op.vals = append(op.vals, v)
		op.rowPtr[i+1]++
	})
	for i := 0; i < n; i++ {
		op.rowPtr[i+1] += op.rowPtr[i]
	}

	return op
}

// matVec computes dst = M·x.
func (op *csrOperator) matVec(dst, x []float64) {
	var i, p int
	for i = 0; i < op.n; i++ {
		var sum float64
		for p = op.rowPtr[i]; p < op.rowPtr[i+1]; p++ {
			sum += op.vals[p] * x[op.colInd[p]]
		}
		dst[i] = sum
	}
}

// lanczosEigen returns k eigenpairs of op at the requested end of the
// spectrum, values ascending with aligned eigenvector columns.
func lanczosEigen(op *csrOperator, k int, order Order) ([]float64, *mat.Dense, error) {
	rng := rand.New(rand.NewSource(lanczosSeed))

	locked := make([][]float64, 0, k)
	values := make([]float64, 0, k)
	for len(values) < k {
		theta, y, err := extremePair(op, locked, order, rng)
		if err != nil {
			return nil, nil, err
		}
		values = append(values, theta)
		locked = append(locked, y)
	}

	// Pack ascending by algebraic value.
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	outVals := make([]float64, k)
	vecs := mat.NewDense(op.n, k, nil)
	var c, r int
	for c = 0; c < k; c++ {
		outVals[c] = values[idx[c]]
		for r = 0; r < op.n; r++ {
			vecs.Set(r, c, locked[idx[c]][r])
		}
	}

	return outVals, vecs, nil
}

// extremePair runs restarted Lanczos on the operator deflated against the
// locked vectors and returns one converged extreme Ritz pair.
func extremePair(op *csrOperator, locked [][]float64, order Order, rng *rand.Rand) (float64, []float64, error) {
	n := op.n
	dim := n - len(locked)
	if dim > maxLanczosDim {
		dim = maxLanczosDim
	}

	v := randomUnit(n, rng)
	orthogonalise(v, locked)
	if nrm := floats.Norm(v, 2); nrm > 0 {
		floats.Scale(1/nrm, v)
	}

	var restart int
	for restart = 0; restart < maxLanczosRestarts; restart++ {
		basis, alphas, betas := lanczosRun(op, locked, v, dim)
		m := len(alphas)

		// Ritz step on the projected tridiagonal matrix.
		tri := make([]float64, m*m)
		var i int
		for i = 0; i < m; i++ {
			tri[i*m+i] = alphas[i]
			if i+1 < m {
				tri[i*m+i+1] = betas[i]
				tri[(i+1)*m+i] = betas[i]
			}
		}
		var eig mat.EigenSym
		if ok := eig.Factorize(mat.NewSymDense(m, tri), true); !ok {
			return 0, nil, ErrNoConvergence
		}
		tvals := eig.Values(nil)
		var tvecs mat.Dense
		eig.VectorsTo(&tvecs)

		ritz := 0 // Smallest: ascending order puts it first
		if order == Largest {
			for i = 1; i < m; i++ {
				if abs(tvals[i]) > abs(tvals[ritz]) {
					ritz = i
				}
			}
		}
		theta := tvals[ritz]

		// Assemble the Ritz vector y = V·s in operator space.
		y := make([]float64, n)
		for i = 0; i < m; i++ {
			floats.AddScaled(y, tvecs.At(i, ritz), basis[i])
		}
		orthogonalise(y, locked)
		if nrm := floats.Norm(y, 2); nrm > 0 {
			floats.Scale(1/nrm, y)
		}

		// Convergence: residual bound |beta_m · s_m| scaled to the value,
		// or a happy breakdown (exact invariant subspace).
		resid := abs(betas[m-1] * tvecs.At(m-1, ritz))
		scale := abs(theta)
		if scale < 1 {
			scale = 1
		}
		if resid <= lanczosTol*scale || m < dim {
			return theta, y, nil
		}

		v = y // restart from the best current guess
	}

	return 0, nil, ErrNoConvergence
}

// lanczosRun performs up to m Lanczos steps with full reorthogonalisation,
// deflating against the locked vectors. Returns the Krylov basis and the
// tridiagonal coefficients; betas[len-1] is the residual norm of the last
// step. Stops early on breakdown.
func lanczosRun(op *csrOperator, locked [][]float64, v0 []float64, m int) (basis [][]float64, alphas, betas []float64) {
	n := op.n
	basis = make([][]float64, 0, m)
	alphas = make([]float64, 0, m)
	betas = make([]float64, 0, m)

	v := append([]float64(nil), v0...)
	w := make([]float64, n)

	var j int
	for j = 0; j < m; j++ {
		basis = append(basis, v)

		op.matVec(w, v)
		alpha := floats.Dot(w, v)

		// Full reorthogonalisation against converged and Krylov vectors.
		orthogonalise(w, locked)
		orthogonalise(w, basis)

		beta := floats.Norm(w, 2)
		alphas = append(alphas, alpha)
		betas = append(betas, beta)

		if beta < breakdownTol {
			break
		}
		next := make([]float64, n)
		copy(next, w)
		floats.Scale(1/beta, next)
		v = next
	}

	return basis, alphas, betas
}

// orthogonalise removes from w its projection onto every vector in vs.
func orthogonalise(w []float64, vs [][]float64) {
	for _, u := range vs {
		if c := floats.Dot(w, u); c != 0 {
			floats.AddScaled(w, -c, u)
		}
	}
}

// randomUnit draws a dense unit vector from the source.
func randomUnit(n int, rng *rand.Rand) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64()
	}
	if nrm := floats.Norm(v, 2); nrm > 0 {
		floats.Scale(1/nrm, v)
	}

	return v
}

// abs avoids importing math for a single float operation in the hot loop.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
