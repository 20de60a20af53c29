// Package spectrum computes partial eigensystems of graph matrices.
//
// The engine exposes one entry point, Eigensystem (and its values-only
// sibling Eigenvalues), parameterised by:
//
//   - a matrix selector: adjacency, combinatorial or normalised Laplacian,
//     and the signless variants;
//   - k, the number of requested eigenpairs, with 1 ≤ k ≤ n-1 strictly
//     (the iterative backend cannot extract the full spectrum of an n×n
//     sparse operator);
//   - an order: the k algebraically smallest eigenvalues, or the k of
//     largest absolute value.
//
// Small operators are densified and handed to gonum's symmetric
// eigensolver; large ones go through a Lanczos iteration with full
// reorthogonalisation and explicit deflation, so repeated eigenvalues
// (disconnected graphs, symmetric structures) are recovered with their
// multiplicities.
//
// The package also provides the Rayleigh quotient and the power method,
// the classical building blocks for quick spectral estimates.
package spectrum
