// Package kde: functional configuration for the CKNS estimator.
package kde

import "runtime"

// Defaults, the single source of truth for zero-option behavior.
const (
	// DefaultSeed seeds the per-unit random derivation when WithSeed is
	// not given. Two estimators with equal data, parameters and seed build
	// identical lattices.
	DefaultSeed uint64 = 1
)

// Option configures a CKNS estimator.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	seed    uint64
	workers int
}

// WithSeed fixes the base seed of the sampling and hashing randomness.
// Every hash unit derives its own stream from this seed and its lattice
// coordinates, so construction parallelism never affects the result.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithWorkers caps the parallel fan-out of construction and batched
// queries. Counts below 1 are rejected by the constructor with
// ErrBadWorkers. Default: runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// gatherOptions resolves the defaults and applies the setters.
func gatherOptions(opts []Option) options {
	o := options{seed: DefaultSeed, workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
