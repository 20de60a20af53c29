package kde_test

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/kde"
)

// benchCloud is shared across the benchmarks below.
func benchCloud(b *testing.B, m int) *mat.Dense {
	b.Helper()

	rng := rand.New(rand.NewSource(1))
	out := mat.NewDense(m, 2, nil)
	for i := 0; i < m; i++ {
		out.Set(i, 0, rng.NormFloat64())
		out.Set(i, 1, rng.NormFloat64())
	}

	return out
}

// BenchmarkExactQuery measures the direct-summation baseline.
func BenchmarkExactQuery(b *testing.B) {
	est, err := kde.NewExactGaussianKDE(benchCloud(b, 5000), 1)
	if err != nil {
		b.Fatal(err)
	}
	queries := benchCloud(b, 64)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = est.Query(queries); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCKNSQuery measures the sublinear path on the same cloud.
func BenchmarkCKNSQuery(b *testing.B) {
	est, err := kde.NewCKNSGaussianKDE(benchCloud(b, 5000), 1, 0.5)
	if err != nil {
		b.Fatal(err)
	}
	queries := benchCloud(b, 64)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err = est.Query(queries); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCKNSConstruction measures lattice build time.
func BenchmarkCKNSConstruction(b *testing.B) {
	data := benchCloud(b, 5000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := kde.NewCKNSGaussianKDE(data, 1, 0.5); err != nil {
			b.Fatal(err)
		}
	}
}
