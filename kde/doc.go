// Package kde estimates Gaussian kernel densities over large point sets.
//
// For a data set {x₁..xₙ} and scale a, the density at a query q is
//
//	F(q) = (1/n) · Σᵢ exp(-a·‖q - xᵢ‖²)
//
// Two estimators are provided:
//
//   - ExactGaussianKDE computes F by direct summation, fanning a batched
//     query across all cores. It is the reference implementation and the
//     sensible choice for small n.
//   - CKNSGaussianKDE is the sublinear-time estimator of Charikar,
//     Kapralov, Nouri and Siminelakis: a lattice of hash units, each
//     holding a subsample of the data at a geometric sampling rate,
//     indexed by Euclidean LSH once the subsample outgrows a brute-force
//     cutoff. A query walks candidate density levels from the largest
//     guess downward, takes a median over independent repetitions per
//     level, and accepts the first level consistent with its own estimate.
//     The result is an (ε, δ)-approximation of F with relative error ε.
//
// Construction of the lattice is parallel: the three-dimensional unit
// arrangement is preallocated and every worker writes only its own cell, so
// the fan-out needs no locking; waiting on the group is the barrier that
// separates construction from queries. Each unit derives its own seed from
// the estimator seed and its lattice coordinates, which makes the whole
// structure reproducible regardless of scheduling order.
package kde
