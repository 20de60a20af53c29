// Package kde: one cell of the CKNS lattice.
package kde

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/lsh"
)

// hashUnit is one element of the lattice at coordinates (log_nmu, iter, j).
// It owns a subsample S of the data at probability 2^(-j)·2^(-log_nmu),
// stored raw while |S| stays at or under the brute-force cutoff, otherwise
// indexed by an E2LSH structure at the shell radius.
type hashUnit struct {
	a      float64
	logNMu int
	j      int

	prob   float64 // sampling probability of this cell
	sample []int   // sampled data row indices, ascending

	rj2   float64 // outer squared shell radius: j·ln2/a
	rjm12 float64 // inner squared shell radius: (j-1)·ln2/a

	table *lsh.Euclidean // nil while below the cutoff
}

// newHashUnit samples the data and, above the cutoff, builds the LSH index.
// All randomness flows from the given seed, so the unit is reproducible in
// isolation from its siblings.
func newHashUnit(data *mat.Dense, n int, a float64, logNMu, j, bigJ int, seed uint64) (*hashUnit, error) {
	u := &hashUnit{
		a:      a,
		logNMu: logNMu,
		j:      j,
		prob:   math.Exp2(-float64(j + logNMu)),
		rj2:    float64(j) * math.Ln2 / a,
		rjm12:  float64(j-1) * math.Ln2 / a,
	}

	// 1) Sample each data point independently with probability prob.
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		if rng.Float64() < u.prob {
			u.sample = append(u.sample, i)
		}
	}
	if len(u.sample) <= hashUnitCutoff {
		return u, nil // brute-force cell
	}

	// 2) Size the LSH structure for this shell: φ = ⌈(j/J)·(J-j+1)⌉,
	// K = ⌊-φ/log₂p⌋ against the collision probability at the radius,
	// L = ⌈C₂·log₂n·2^φ⌉.
	phi := math.Ceil(float64(j) / float64(bigJ) * float64(bigJ-j+1))
	pCol := lsh.CollisionProbability(1)
	k := int(math.Floor(-phi / math.Log2(pCol)))
	if k < 1 {
		k = 1
	}
	l := int(math.Ceil(k2Constant * math.Log2(float64(n)) * math.Exp2(phi)))
	if l < 1 {
		l = 1
	}

	pts := make([][]float64, len(u.sample))
	for idx, row := range u.sample {
		pts[idx] = data.RawRowView(row)
	}
	table, err := lsh.NewEuclidean(rand.NewSource(mixSeed(seed)), pts, k, l, math.Sqrt(u.rj2))
	if err != nil {
		return nil, err
	}
	u.table = table

	return u, nil
}

// contribute returns this unit's shell estimate for q: candidate recall,
// annulus filter, kernel sum scaled by the inverse sampling probability.
// The innermost shell keeps a closed lower bound so a query sitting exactly
// on a data point is still counted.
func (u *hashUnit) contribute(data *mat.Dense, q []float64) (float64, error) {
	var cands []int
	if u.table == nil {
		cands = make([]int, len(u.sample))
		for i := range cands {
			cands[i] = i
		}
	} else {
		var err error
		if cands, err = u.table.Near(q); err != nil {
			return 0, err
		}
	}

	var sum float64
	for _, c := range cands {
		d2 := sqDist(q, data.RawRowView(u.sample[c]))
		if d2 > u.rj2 {
			continue
		}
		if d2 <= u.rjm12 && u.j > 1 {
			continue
		}
		sum += math.Exp(-u.a * d2)
	}

	return sum / u.prob, nil
}

// mixSeed derives an independent stream seed (splitmix64 finalizer).
func mixSeed(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
