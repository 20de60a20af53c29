package lsh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/spectral/lsh"
)

// TestCollisionProbability_Shape pins the boundary value and monotonicity.
func TestCollisionProbability_Shape(t *testing.T) {
	assert.Equal(t, 1.0, lsh.CollisionProbability(0), "p(0) = 1")
	assert.Equal(t, 1.0, lsh.CollisionProbability(-3), "non-positive distances collide surely")

	prev := 1.0
	for _, c := range []float64{0.25, 0.5, 1, 2, 4, 8} {
		p := lsh.CollisionProbability(c)
		assert.Greater(t, p, 0.0, "probability positive at c=%v", c)
		assert.Less(t, p, prev, "probability decreasing at c=%v", c)
		prev = p
	}

	// The CKNS operating point: distance equal to the radius.
	p1 := lsh.CollisionProbability(1)
	assert.InDelta(t, 0.8, p1, 0.02, "p(1) under w=4")
}

// TestNewEuclidean_ArgumentChecks covers the construction contract.
func TestNewEuclidean_ArgumentChecks(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 1}}

	_, err := lsh.NewEuclidean(nil, pts, 1, 1, 1)
	assert.ErrorIs(t, err, lsh.ErrNilSource, "nil source")

	_, err = lsh.NewEuclidean(rand.NewSource(1), nil, 1, 1, 1)
	assert.ErrorIs(t, err, lsh.ErrNoPoints, "empty point set")

	_, err = lsh.NewEuclidean(rand.NewSource(1), pts, 0, 1, 1)
	assert.ErrorIs(t, err, lsh.ErrBadParameters, "K = 0")

	_, err = lsh.NewEuclidean(rand.NewSource(1), pts, 1, 0, 1)
	assert.ErrorIs(t, err, lsh.ErrBadParameters, "L = 0")

	_, err = lsh.NewEuclidean(rand.NewSource(1), pts, 1, 1, 0)
	assert.ErrorIs(t, err, lsh.ErrBadRadius, "zero radius")

	_, err = lsh.NewEuclidean(rand.NewSource(1), [][]float64{{0, 0}, {1}}, 1, 1, 1)
	assert.ErrorIs(t, err, lsh.ErrDimensionMismatch, "ragged points")
}

// TestNear_RecallsExactMatches verifies a query identical to an indexed
// point always lands in the same buckets.
func TestNear_RecallsExactMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	pts := make([][]float64, 64)
	for i := range pts {
		pts[i] = []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	}

	e, err := lsh.NewEuclidean(rand.NewSource(3), pts, 2, 8, 1)
	require.NoError(t, err)
	assert.Equal(t, 64, e.Len(), "all points indexed")

	for i := range pts {
		cands, nerr := e.Near(pts[i])
		require.NoError(t, nerr)
		assert.Contains(t, cands, i, "point %d recalls itself", i)
		for _, c := range cands {
			assert.GreaterOrEqual(t, c, 0, "candidate in range")
			assert.Less(t, c, 64, "candidate in range")
		}
	}
}

// TestNear_DimensionMismatch verifies the query-side shape check.
func TestNear_DimensionMismatch(t *testing.T) {
	e, err := lsh.NewEuclidean(rand.NewSource(1), [][]float64{{0, 0}}, 1, 1, 1)
	require.NoError(t, err)

	_, err = e.Near([]float64{1, 2, 3})
	assert.ErrorIs(t, err, lsh.ErrDimensionMismatch, "wrong query dimension")
}

// TestNear_DeterministicPerSource verifies two indexes built from the same
// source state answer identically.
func TestNear_DeterministicPerSource(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pts := make([][]float64, 32)
	for i := range pts {
		pts[i] = []float64{rng.NormFloat64(), rng.NormFloat64()}
	}

	a, err := lsh.NewEuclidean(rand.NewSource(7), pts, 3, 5, 0.5)
	require.NoError(t, err)
	b, err := lsh.NewEuclidean(rand.NewSource(7), pts, 3, 5, 0.5)
	require.NoError(t, err)

	q := []float64{0.1, -0.2}
	ca, err := a.Near(q)
	require.NoError(t, err)
	cb, err := b.Near(q)
	require.NoError(t, err)
	assert.Equal(t, ca, cb, "identical tables recall identical candidates")
}
