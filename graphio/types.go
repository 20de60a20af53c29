// Package graphio: sentinel error set.
package graphio

import "errors"

// Sentinel errors for parsing and file-backed access. Underlying I/O
// failures are wrapped with fmt.Errorf("...: %w") and remain matchable via
// errors.Is against the os/io sentinels.
var (
	// ErrNilGraph indicates a nil *graph.Graph passed to a writer.
	ErrNilGraph = errors.New("graphio: graph is nil")

	// ErrMalformedLine indicates a line that does not parse under the format.
	ErrMalformedLine = errors.New("graphio: malformed line")

	// ErrVertexNotFound indicates the binary search exhausted the file
	// without finding the requested vertex line.
	ErrVertexNotFound = errors.New("graphio: vertex not found")

	// ErrUnsorted indicates an adjacency-list file whose vertex ids are not
	// strictly increasing, which breaks the binary-search contract.
	ErrUnsorted = errors.New("graphio: adjacency list is not sorted by vertex id")
)
