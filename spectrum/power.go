// Package spectrum: Rayleigh quotient and the power method.
package spectrum

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// DefaultPowerIterations is the power-method iteration count when
// WithIterations is not given. It is sized so the Rayleigh quotient of the
// result sits within a loose tolerance of the dominant eigenvalue on small
// well-separated spectra.
const DefaultPowerIterations = 1000

// defaultPowerSeed fixes the random start vector when no source is given.
const defaultPowerSeed = 1

// Option configures the power method.
type Option func(*options)

// options stores the effective power-method configuration.
type options struct {
	iterations int
	initial    *mat.VecDense
	src        rand.Source
}

// WithIterations sets the iteration count t. t = 0 returns the initial
// vector unchanged. Negative counts are rejected by PowerMethod with
// ErrBadIterations.
func WithIterations(t int) Option {
	return func(o *options) { o.iterations = t }
}

// WithInitialVector sets the start vector. Its length must match the
// operator dimension.
func WithInitialVector(v *mat.VecDense) Option {
	return func(o *options) { o.initial = v }
}

// WithRandomSource sets the source used to draw the default start vector.
// Given the same source state, PowerMethod is deterministic.
func WithRandomSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// PowerMethod runs t iterations of x ← M·x / ‖M·x‖ and returns the final
// unit vector. With zero iterations the initial vector is returned
// unchanged (not normalised). If M·x vanishes, the current iterate is
// returned as-is: there is no direction left to follow.
//
// Defaults: t = DefaultPowerIterations; the start vector is a uniform
// random unit vector drawn from the configured source.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrBadIterations,
// ErrDimensionMismatch (explicit initial vector of the wrong length),
// ErrZeroVector (explicit all-zero initial vector).
//
// Complexity: O(t · nnz) for sparse operators.
func PowerMethod(m mat.Matrix, opts ...Option) (*mat.VecDense, error) {
	// 1) Validate the operator.
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	// 2) Gather options over the documented defaults.
	o := options{iterations: DefaultPowerIterations}
	for _, opt := range opts {
		opt(&o)
	}
	if o.iterations < 0 {
		return nil, ErrBadIterations
	}

	// 3) Resolve the start vector.
	var x *mat.VecDense
	if o.initial != nil {
		if o.initial.Len() != r {
			return nil, ErrDimensionMismatch
		}
		if mat.Norm(o.initial, 2) == 0 {
			return nil, ErrZeroVector
		}
		x = mat.VecDenseCopyOf(o.initial)
	} else {
		src := o.src
		if src == nil {
			src = rand.NewSource(defaultPowerSeed)
		}
		rng := rand.New(src)
		data := make([]float64, r)
		for i := range data {
			data[i] = rng.Float64() - 0.5
		}
		x = mat.NewVecDense(r, data)
		x.ScaleVec(1/mat.Norm(x, 2), x)
	}

	// 4) Iterate x ← M·x / ‖M·x‖.
	y := mat.NewVecDense(r, nil)
	var t int
	for t = 0; t < o.iterations; t++ {
		y.MulVec(m, x)
		nrm := mat.Norm(y, 2)
		if nrm == 0 {
			break // x is in the null space; nothing further to follow
		}
		x.ScaleVec(1/nrm, y)
	}

	return x, nil
}

// RayleighQuotient returns R(M, x) = xᵀ M x / xᵀ x.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrZeroVector.
func RayleighQuotient(m mat.Matrix, x mat.Vector) (float64, error) {
	if m == nil || x == nil {
		return 0, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return 0, ErrNonSquare
	}
	if x.Len() != r {
		return 0, ErrDimensionMismatch
	}
	den := mat.Dot(x, x)
	if den == 0 {
		return 0, ErrZeroVector
	}

	return mat.Inner(x, m, x) / den, nil
}
