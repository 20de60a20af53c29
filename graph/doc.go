// Package graph provides the weighted undirected Graph type at the heart of
// the spectral toolkit.
//
// A Graph owns exactly one symmetric non-negative adjacency matrix in
// compressed sparse row (CSR) form. Seven derived matrices - the degree
// matrix, its inverse, the combinatorial and signless Laplacians, their
// normalised variants and the lazy random walk matrix - are synthesised on
// first request and cached for the lifetime of the Graph.
//
// The package provides:
//
//   - Constructors from raw CSR arrays, from a pre-built sparse matrix, and
//     from an ambiguous matrix that may be either an adjacency matrix or a
//     Laplacian (disambiguated by the sign of its off-diagonal entries).
//   - Local neighborhood queries (degree, neighbors) behind the LocalGraph
//     capability set, shared with the file-backed reader in graphio.
//   - Structural operations: induced subgraphs and disjoint unions.
//
// Lazy matrix initialisation is NOT thread-safe. Pre-warm the matrices you
// need before sharing a Graph across goroutines, or synchronise first access
// externally.
//
// Graphs are best treated as immutable: every operation that changes
// structure returns a new Graph.
package graph
