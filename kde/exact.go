// Package kde: the exact reference estimator.
package kde

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// ExactGaussianKDE computes Gaussian kernel densities by direct summation.
// It exists as the reference implementation for tests and as the fast path
// for small data sets.
type ExactGaussianKDE struct {
	data    *mat.Dense
	n, d    int
	a       float64
	workers int
}

// NewExactGaussianKDE builds the estimator over a copy of data with
// Gaussian scale a.
//
// Errors: ErrNilData, ErrNoData, ErrBadScale.
func NewExactGaussianKDE(data *mat.Dense, a float64, opts ...Option) (*ExactGaussianKDE, error) {
	n, d, err := validateData(data, a)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	if o.workers < 1 {
		return nil, ErrBadWorkers
	}

	return &ExactGaussianKDE{data: mat.DenseCopyOf(data), n: n, d: d, a: a, workers: o.workers}, nil
}

// Query returns F(q) = (1/n)·Σᵢ exp(-a·‖q - xᵢ‖²) for each row q of
// queries. Batches larger than the worker count are partitioned into
// near-equal chunks across the workers; smaller batches run on the
// caller's goroutine.
//
// Errors: ErrNilData, ErrDimensionMismatch.
func (e *ExactGaussianKDE) Query(queries *mat.Dense) ([]float64, error) {
	if queries == nil {
		return nil, ErrNilData
	}
	m, d := queries.Dims()
	if d != e.d {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, m)
	if m <= e.workers {
		for i := 0; i < m; i++ {
			out[i] = e.queryOne(queries.RawRowView(i))
		}

		return out, nil
	}

	var eg errgroup.Group
	chunk := (m + e.workers - 1) / e.workers
	for lo := 0; lo < m; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > m {
			hi = m
		}
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				out[i] = e.queryOne(queries.RawRowView(i))
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// queryOne sums the kernel over the whole data set.
func (e *ExactGaussianKDE) queryOne(q []float64) float64 {
	var sum float64
	for i := 0; i < e.n; i++ {
		sum += math.Exp(-e.a * sqDist(q, e.data.RawRowView(i)))
	}

	return sum / float64(e.n)
}
