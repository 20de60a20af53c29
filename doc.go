// Package spectral (the module root) is a spectral toolkit for the
// analysis of massive graphs in Go.
//
// 🚀 What is spectral?
//
//	A numerical library that brings together:
//
//	  • Graph representations: CSR adjacency plus lazily built Laplacians,
//	    normalised Laplacians, signless variants and the lazy random walk
//	  • A spectrum engine: the k smallest or largest eigenpairs of any of
//	    those matrices, Rayleigh quotients and the power method
//	  • Sublinear kernel density estimation: the CKNS Gaussian KDE over
//	    a multi-level locality-sensitive-hashing lattice
//
// ✨ Why choose spectral?
//
//   - Deterministic      — every randomised component takes an explicit source
//   - Sparse-first       — CSR storage end to end, no hidden densification
//   - Parallel           — lattice construction and batched KDE queries fan
//     out across all cores behind a plain barrier
//
// Everything is organized under six subpackages:
//
//	graph/    — the Graph type, derived matrices and local neighborhood queries
//	spectrum/ — partial eigensystems, Rayleigh quotient, power method
//	kde/      — CKNS and exact Gaussian kernel density estimators
//	lsh/      — Euclidean locality-sensitive hash tables (E2LSH)
//	graphio/  — edgelist and adjacency-list formats, file-backed local access
//	gen/      — random graph generators (Erdős–Rényi, stochastic block model)
//
// Dive into README.md for full examples and a feature matrix.
//
//	go get github.com/katalvlaran/spectral
package spectral
