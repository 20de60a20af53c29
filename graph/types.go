// Package graph: central types and sentinel errors.
//
// This file declares the Graph entity, the Edge value type, the LocalGraph
// capability set, and the package sentinel errors. All public operations
// return these sentinels (possibly wrapped with fmt.Errorf("...: %w")) and
// tests match them via errors.Is. No operation panics on user input.
package graph

import (
	"errors"

	"github.com/james-bowman/sparse"
)

// Sentinel errors for graph operations.
var (
	// ErrNotSymmetric indicates the input adjacency matrix is not exactly symmetric.
	ErrNotSymmetric = errors.New("graph: adjacency matrix is not symmetric")

	// ErrNegativeWeight indicates a strictly negative entry in an adjacency matrix.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNonSquare indicates a non-square input matrix.
	ErrNonSquare = errors.New("graph: matrix is not square")

	// ErrBadCSR indicates malformed CSR arrays (lengths, row pointers, column indices).
	ErrBadCSR = errors.New("graph: malformed CSR arrays")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrIsolatedVertex indicates a degree-zero vertex where a normalised or
	// inverse-degree matrix was requested.
	ErrIsolatedVertex = errors.New("graph: isolated vertex has no normalised form")

	// ErrNilGraph indicates a nil *Graph argument.
	ErrNilGraph = errors.New("graph: graph is nil")

	// ErrEmptyGraph indicates an operation that requires at least one vertex.
	ErrEmptyGraph = errors.New("graph: graph has no vertices")
)

// pruneEpsilon suppresses floating-point noise when an adjacency matrix is
// reconstructed from a Laplacian: any entry with absolute value below this
// threshold is dropped.
const pruneEpsilon = 1e-10

// Edge is one weighted undirected edge {U, V} as seen from a local
// neighborhood query. U is always the queried vertex.
type Edge struct {
	U      int     // queried endpoint
	V      int     // neighbor endpoint
	Weight float64 // non-negative edge weight
}

// LocalGraph is the capability set shared by the in-memory Graph and the
// file-backed adjacency-list reader in graphio. Local clustering and
// conductance routines consume either backing store through this interface.
//
// All methods reject out-of-range vertices with ErrVertexOutOfRange (or the
// reader's not-found equivalent).
type LocalGraph interface {
	// Degree returns the weighted degree of v. A self-loop contributes
	// twice to the degree.
	Degree(v int) (float64, error)

	// DegreeUnweighted returns the number of edge endpoints at v; like the
	// weighted degree, a self-loop counts twice.
	DegreeUnweighted(v int) (int, error)

	// Degrees returns the weighted degrees of the given vertices.
	Degrees(vs []int) ([]float64, error)

	// DegreesUnweighted returns the unweighted degrees of the given vertices.
	DegreesUnweighted(vs []int) ([]int, error)

	// Neighbors returns the edges incident to v, excluding any self-loop.
	Neighbors(v int) ([]Edge, error)

	// NeighborsUnweighted returns the neighbor ids of v, excluding v itself.
	NeighborsUnweighted(v int) ([]int, error)

	// VertexExists reports whether v is a valid vertex index.
	VertexExists(v int) bool
}

// Graph is a weighted undirected graph backed by one symmetric CSR adjacency
// matrix. The zero value is not usable; construct via NewGraph,
// NewGraphFromRaw or NewGraphFromMatrix.
//
// Derived matrices are built lazily on first request and cached. Lazy
// initialisation is not synchronised; see the package documentation.
type Graph struct {
	n int // number of vertices

	// canonical CSR storage of the adjacency matrix: rows sorted by column,
	// duplicate entries coalesced, explicit zeros dropped.
	rowPtr []int
	colInd []int
	vals   []float64

	degrees   []float64 // weighted degree per vertex (self-loops doubled)
	degreesUW []int     // unweighted degree per vertex (self-loops doubled)

	selfLoops    int  // number of diagonal non-zeros
	hasSelfLoops bool // set at construction by scanning the diagonal

	// lazily cached matrices; nil until first request
	adj          *sparse.CSR
	deg          *sparse.CSR
	invDeg       *sparse.CSR
	lap          *sparse.CSR
	signlessLap  *sparse.CSR
	normLap      *sparse.CSR
	normSignless *sparse.CSR
	lazyWalk     *sparse.CSR
}

// compile-time check: *Graph satisfies the LocalGraph capability set.
var _ LocalGraph = (*Graph)(nil)
