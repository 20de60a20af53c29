// Package kde: sentinel errors, tuning constants and shared kernels.
package kde

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for estimator construction and queries.
var (
	// ErrNilData indicates a nil data or query matrix.
	ErrNilData = errors.New("kde: data matrix is nil")

	// ErrNoData indicates an empty data set.
	ErrNoData = errors.New("kde: data set is empty")

	// ErrBadScale indicates a non-positive or non-finite Gaussian scale.
	ErrBadScale = errors.New("kde: scale must be positive and finite")

	// ErrBadError indicates a relative error outside (0, 1].
	ErrBadError = errors.New("kde: relative error must be in (0, 1]")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("kde: worker count must be >= 1")

	// ErrDimensionMismatch indicates queries whose dimension disagrees with the data.
	ErrDimensionMismatch = errors.New("kde: query dimension mismatch")
)

// CKNS schedule constants.
const (
	// hashUnitCutoff is the subsample size up to which a unit stores its
	// points raw and skips LSH table construction.
	hashUnitCutoff = 1000

	// k1Constant scales the outer repetition count k1 = ⌈C₁·log₂n/ε²⌉.
	k1Constant = 0.2

	// k2Constant scales the LSH table count L = ⌈C₂·log₂n·2^φ⌉.
	k2Constant = 1.0
)

// validateData checks a data matrix and scale shared by both estimators.
func validateData(data *mat.Dense, a float64) (n, d int, err error) {
	if data == nil {
		return 0, 0, ErrNilData
	}
	n, d = data.Dims()
	if n == 0 {
		return 0, 0, ErrNoData
	}
	if a <= 0 || math.IsInf(a, 0) || math.IsNaN(a) {
		return 0, 0, ErrBadScale
	}

	return n, d, nil
}

// sqDist returns ‖x - y‖².
func sqDist(x, y []float64) float64 {
	var sum float64
	for i := range x {
		diff := x[i] - y[i]
		sum += diff * diff
	}

	return sum
}

// median returns the median of xs, averaging the two middle elements for
// even lengths. The input is not modified.
func median(xs []float64) float64 {
	cp := append([]float64(nil), xs...)
	insertionSort(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 1 {
		return cp[mid]
	}

	return 0.5 * (cp[mid-1] + cp[mid])
}

// insertionSort keeps the median helper allocation-light; the estimate
// slices it sees hold a few dozen elements at most.
func insertionSort(xs []float64) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}
