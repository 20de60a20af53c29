// Package lsh: the Euclidean hash index.
package lsh

import (
	"encoding/binary"
	"errors"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sentinel errors for index construction and queries.
var (
	// ErrNilSource indicates a nil random source.
	ErrNilSource = errors.New("lsh: random source is nil")

	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("lsh: point set is empty")

	// ErrBadParameters indicates K < 1 or L < 1.
	ErrBadParameters = errors.New("lsh: hash parameters must be >= 1")

	// ErrBadRadius indicates a non-positive or non-finite radius.
	ErrBadRadius = errors.New("lsh: radius must be positive and finite")

	// ErrDimensionMismatch indicates points or queries of inconsistent dimension.
	ErrDimensionMismatch = errors.New("lsh: dimension mismatch")
)

// BucketWidth is the E2LSH quantisation width w. The collision probability
// below is a function of distance/radius under this fixed width.
const BucketWidth = 4.0

// table is one of the L hash tables: K Gaussian directions, K offsets and
// the bucket map from concatenated hash keys to point indices.
type table struct {
	proj    [][]float64 // K × dim Gaussian directions
	off     []float64   // K offsets in [0, w)
	buckets map[string][]int
}

// Euclidean is an E2LSH index over a fixed point set.
type Euclidean struct {
	dim    int
	k, l   int
	r      float64
	pts    [][]float64
	tables []table
}

// NewEuclidean builds an index with l tables of k concatenated hashes at
// radius r over the given points. The point slices are referenced, not
// copied; callers must not mutate them afterwards.
//
// Errors: ErrNilSource, ErrNoPoints, ErrBadParameters, ErrBadRadius,
// ErrDimensionMismatch (ragged point set).
//
// Complexity: O(l·k·(dim + n)) time, O(l·(k·dim + n)) space.
func NewEuclidean(src rand.Source, pts [][]float64, k, l int, r float64) (*Euclidean, error) {
	// 1) Validate arguments.
	if src == nil {
		return nil, ErrNilSource
	}
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	if k < 1 || l < 1 {
		return nil, ErrBadParameters
	}
	if r <= 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return nil, ErrBadRadius
	}
	dim := len(pts[0])
	for _, p := range pts {
		if len(p) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	// 2) Draw the hash functions.
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	uniform := distuv.Uniform{Min: 0, Max: BucketWidth, Src: src}
	e := &Euclidean{dim: dim, k: k, l: l, r: r, pts: pts, tables: make([]table, l)}
	var t, h, c int
	for t = 0; t < l; t++ {
		tbl := table{
			proj:    make([][]float64, k),
			off:     make([]float64, k),
			buckets: make(map[string][]int),
		}
		for h = 0; h < k; h++ {
			dir := make([]float64, dim)
			for c = 0; c < dim; c++ {
				dir[c] = normal.Rand()
			}
			tbl.proj[h] = dir
			tbl.off[h] = uniform.Rand()
		}
		e.tables[t] = tbl
	}

	// 3) Insert every point into its bucket in every table.
	key := make([]byte, 8*k)
	for idx, p := range pts {
		for t = 0; t < l; t++ {
			s := e.bucketKey(&e.tables[t], p, key)
			e.tables[t].buckets[s] = append(e.tables[t].buckets[s], idx)
		}
	}

	return e, nil
}

// bucketKey concatenates the K hash values of x into a map key.
func (e *Euclidean) bucketKey(tbl *table, x []float64, scratch []byte) string {
	var h int
	for h = 0; h < e.k; h++ {
		v := math.Floor((floats.Dot(tbl.proj[h], x)/e.r + tbl.off[h]) / BucketWidth)
		binary.LittleEndian.PutUint64(scratch[8*h:], uint64(int64(v)))
	}

	return string(scratch)
}

// Near returns the indices of candidate near neighbors of q: the union of
// q's buckets across all tables, deduplicated and sorted ascending. The
// caller filters candidates by true distance.
//
// Errors: ErrDimensionMismatch.
func (e *Euclidean) Near(q []float64) ([]int, error) {
	if len(q) != e.dim {
		return nil, ErrDimensionMismatch
	}

	seen := make(map[int]struct{})
	key := make([]byte, 8*e.k)
	var t int
	for t = 0; t < e.l; t++ {
		for _, idx := range e.tables[t].buckets[e.bucketKey(&e.tables[t], q, key)] {
			seen[idx] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for idx := range seen {
		out = append(out, idx)
	}
	sort.Ints(out)

	return out, nil
}

// Len returns the number of indexed points.
func (e *Euclidean) Len() int { return len(e.pts) }

// CollisionProbability returns the per-hash collision probability of two
// points at radius-scaled distance c (true distance / radius) under the
// fixed bucket width:
//
//	p(c) = 1 - 2Φ(-w/c) - (2c/(√(2π)·w))·(1 - e^(-w²/(2c²)))
//
// with p(0) = 1. Decreasing in c; the CKNS estimator evaluates it at c = 1.
func CollisionProbability(c float64) float64 {
	if c <= 0 {
		return 1
	}
	w := BucketWidth

	return 1 - 2*distuv.UnitNormal.CDF(-w/c) -
		(2*c/(math.Sqrt(2*math.Pi)*w))*(1-math.Exp(-w*w/(2*c*c)))
}
