// Package gen generates random graphs for experiments and test fixtures.
//
// Two families are provided:
//
//   - ErdosRenyi: G(n, p), every unordered pair becomes a unit-weight edge
//     independently with probability p.
//   - StochasticBlockModel: n vertices split into k near-equal clusters,
//     with within-cluster edge probability p and between-cluster
//     probability q. SBMWithSizes takes explicit (possibly uneven) cluster
//     sizes instead of deriving them from n and k.
//
// Sampling uses geometric gap-skipping, so the cost is proportional to the
// number of generated edges rather than to n². Every generator takes an
// explicit rand.Source: the same source state always yields the same graph,
// and nothing touches process-global randomness.
package gen
