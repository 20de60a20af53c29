// Package kde: the CKNS sublinear estimator.
package kde

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// CKNSGaussianKDE answers Gaussian kernel-sum queries in sublinear time via
// the Charikar-Kapralov-Nouri-Siminelakis construction. Build once, query
// many times; the lattice is immutable after construction.
type CKNSGaussianKDE struct {
	data *mat.Dense
	n, d int
	a    float64
	eps  float64

	logNMuMax   int // ⌈log₂n⌉
	numLogNMu   int // ⌈logNMuMax/2⌉, levels iterated as log_nmu = 2·i
	k1          int // outer repetitions per level
	workers     int
	seed        uint64

	// units[logNMuIter][iter][j-1]; every level has log_nmu < logNMuMax,
	// so its shell count J = logNMuMax - log_nmu is at least one.
	units [][][]*hashUnit
}

// NewCKNSGaussianKDE builds the estimator over a copy of data with
// Gaussian scale a and requested relative error eps in (0, 1].
//
// The parameter schedule follows CKNS: density levels log_nmu = 0, 2, 4,
// ..., below ⌈log₂n⌉; per level, J = ⌈log₂n⌉ - log_nmu distance shells and
// k1 = ⌈0.2·log₂n/ε²⌉ independent repetitions. Each (level, repetition,
// shell) cell is one hash unit; cells are built in parallel, each worker
// writing only its own preallocated slot, and the group wait is the barrier
// before the estimator is returned.
//
// Errors: ErrNilData, ErrNoData, ErrBadScale, ErrBadError, ErrBadWorkers.
//
// Complexity: construction samples expected O(k1·n) points overall and
// builds an LSH index per cell whose subsample exceeds the brute-force
// cutoff.
func NewCKNSGaussianKDE(data *mat.Dense, a, eps float64, opts ...Option) (*CKNSGaussianKDE, error) {
	// 1) Validate arguments.
	n, d, err := validateData(data, a)
	if err != nil {
		return nil, err
	}
	if eps <= 0 || eps > 1 || math.IsNaN(eps) {
		return nil, ErrBadError
	}
	o := gatherOptions(opts)
	if o.workers < 1 {
		return nil, ErrBadWorkers
	}

	// 2) Derive the schedule.
	k := &CKNSGaussianKDE{
		data:    mat.DenseCopyOf(data),
		n:       n,
		d:       d,
		a:       a,
		eps:     eps,
		workers: o.workers,
		seed:    o.seed,
	}
	k.logNMuMax = int(math.Ceil(math.Log2(float64(n))))
	k.numLogNMu = (k.logNMuMax + 1) / 2
	k.k1 = int(math.Ceil(k1Constant * math.Log2(float64(n)) / (eps * eps)))
	if k.k1 < 1 {
		k.k1 = 1
	}

	// 3) Preallocate the lattice so construction workers never contend:
	// every task owns exactly one cell.
	k.units = make([][][]*hashUnit, k.numLogNMu)
	for li := range k.units {
		bigJ := k.logNMuMax - 2*li // >= 1: 2*li < logNMuMax for li < numLogNMu
		k.units[li] = make([][]*hashUnit, k.k1)
		for it := range k.units[li] {
			k.units[li][it] = make([]*hashUnit, bigJ)
		}
	}

	// 4) Parallel fan-out; Wait is the construction barrier.
	var eg errgroup.Group
	eg.SetLimit(k.workers)
	for li := range k.units {
		logNMu := 2 * li
		if logNMu >= k.logNMuMax {
			continue // level without shells
		}
		bigJ := k.logNMuMax - logNMu
		for it := 0; it < k.k1; it++ {
			for j := 1; j <= bigJ; j++ {
				li, it, j := li, it, j
				eg.Go(func() error {
					u, uerr := newHashUnit(k.data, n, a, logNMu, j, bigJ, unitSeed(k.seed, li, it, j))
					if uerr != nil {
						return uerr
					}
					k.units[li][it][j-1] = u

					return nil
				})
			}
		}
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return k, nil
}

// Query returns the density estimate for each row of queries. The batch is
// atomic: a failure for any single point fails the whole call. Batches
// larger than the worker count are chunked across workers.
//
// Errors: ErrNilData, ErrDimensionMismatch.
func (k *CKNSGaussianKDE) Query(queries *mat.Dense) ([]float64, error) {
	if queries == nil {
		return nil, ErrNilData
	}
	m, d := queries.Dims()
	if d != k.d {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, m)
	if m <= k.workers {
		for i := 0; i < m; i++ {
			v, err := k.queryOne(queries.RawRowView(i))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil
	}

	var eg errgroup.Group
	eg.SetLimit(k.workers)
	chunk := (m + k.workers - 1) / k.workers
	for lo := 0; lo < m; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > m {
			hi = m
		}
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				v, err := k.queryOne(queries.RawRowView(i))
				if err != nil {
					return err
				}
				out[i] = v
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// queryOne walks the density levels from the largest guess downward. Per
// level it forms k1 independent shell-sum estimates, takes their median,
// and accepts the first level whose median clears 2^log_nmu - the CKNS
// consistency criterion. If no level passes, the floor 1/n is returned.
func (k *CKNSGaussianKDE) queryOne(q []float64) (float64, error) {
	ests := make([]float64, k.k1)
	for li := k.numLogNMu - 1; li >= 0; li-- {
		logNMu := 2 * li
		bigJ := k.logNMuMax - logNMu
		if bigJ <= 0 {
			continue
		}

		for it := 0; it < k.k1; it++ {
			var e float64
			for j := 1; j <= bigJ; j++ {
				c, err := k.units[li][it][j-1].contribute(k.data, q)
				if err != nil {
					return 0, err
				}
				e += c
			}
			ests[it] = e
		}

		if est := median(ests); est >= math.Exp2(float64(logNMu)) {
			return est / float64(k.n), nil
		}
	}

	return 1 / float64(k.n), nil
}

// unitSeed derives the per-cell seed from the estimator seed and the cell
// coordinates; the derivation is scheduling-independent by construction.
func unitSeed(base uint64, li, it, j int) uint64 {
	x := base
	x = mixSeed(x ^ (uint64(li+1) << 42))
	x = mixSeed(x ^ (uint64(it+1) << 21))
	x = mixSeed(x ^ uint64(j+1))

	return x
}
