// Package graphio: file-backed local graph access.
//
// AdjacencyListFile answers the graph.LocalGraph capability set straight
// from a sorted adjacency-list file via offset binary search: every lookup
// costs O(log size) block reads and never loads the file.
package graphio

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spectral/graph"
)

// AdjacencyListFile is a read-only handle over a sorted adjacency-list
// file. All reads go through ReadAt, so one handle may be shared across
// goroutines.
type AdjacencyListFile struct {
	f    *os.File
	size int64
}

// compile-time check: the file handle satisfies the capability set.
var _ graph.LocalGraph = (*AdjacencyListFile)(nil)

// OpenAdjacencyList opens the adjacency-list file at path for local access.
func OpenAdjacencyList(path string) (*AdjacencyListFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open adjacency list: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("graphio: stat adjacency list: %w", err)
	}

	return &AdjacencyListFile{f: f, size: st.Size()}, nil
}

// Close releases the underlying file.
func (a *AdjacencyListFile) Close() error { return a.f.Close() }

// Degree returns the weighted degree of v (self-loop counted twice).
func (a *AdjacencyListFile) Degree(v int) (float64, error) {
	edges, err := a.row(v)
	if err != nil {
		return 0, err
	}

	var d float64
	for _, e := range edges {
		d += e.Weight
		if e.V == e.U {
			d += e.Weight
		}
	}

	return d, nil
}

// DegreeUnweighted returns the number of edge endpoints at v.
func (a *AdjacencyListFile) DegreeUnweighted(v int) (int, error) {
	edges, err := a.row(v)
	if err != nil {
		return 0, err
	}

	d := len(edges)
	for _, e := range edges {
		if e.V == e.U {
			d++
		}
	}

	return d, nil
}

// Degrees returns the weighted degrees of the given vertices.
func (a *AdjacencyListFile) Degrees(vs []int) ([]float64, error) {
	out := make([]float64, len(vs))
	for idx, v := range vs {
		d, err := a.Degree(v)
		if err != nil {
			return nil, err
		}
		out[idx] = d
	}

	return out, nil
}

// DegreesUnweighted returns the unweighted degrees of the given vertices.
func (a *AdjacencyListFile) DegreesUnweighted(vs []int) ([]int, error) {
	out := make([]int, len(vs))
	for idx, v := range vs {
		d, err := a.DegreeUnweighted(v)
		if err != nil {
			return nil, err
		}
		out[idx] = d
	}

	return out, nil
}

// Neighbors returns the edges incident to v, excluding the self-loop.
func (a *AdjacencyListFile) Neighbors(v int) ([]graph.Edge, error) {
	edges, err := a.row(v)
	if err != nil {
		return nil, err
	}

	out := make([]graph.Edge, 0, len(edges))
	for _, e := range edges {
		if e.V == e.U {
			continue
		}
		out = append(out, e)
	}

	return out, nil
}

// NeighborsUnweighted returns the neighbor ids of v, excluding v itself.
func (a *AdjacencyListFile) NeighborsUnweighted(v int) ([]int, error) {
	edges, err := a.Neighbors(v)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.V
	}

	return ids, nil
}

// VertexExists reports whether v has a line in the file.
func (a *AdjacencyListFile) VertexExists(v int) bool {
	_, err := a.row(v)

	return err == nil
}

// row locates and parses the line of vertex v.
func (a *AdjacencyListFile) row(v int) ([]graph.Edge, error) {
	line, err := a.findLine(v)
	if err != nil {
		return nil, err
	}

	id, edges, err := parseAdjacencyLine(line)
	if err != nil {
		return nil, fmt.Errorf("vertex %d: %w", v, err)
	}
	if id != v {
		return nil, ErrVertexNotFound // defensive; findLine already matched
	}

	return edges, nil
}

// findLine binary-searches the file by byte offset for the line whose
// leading id equals v. Invariant: vertex ids increase line by line.
func (a *AdjacencyListFile) findLine(v int) (string, error) {
	lo, hi := int64(0), a.size
	for lo < hi {
		mid := (lo + hi) / 2

		// First line boundary at or after mid.
		start, err := a.lineStart(mid)
		if err != nil {
			return "", err
		}
		if start >= a.size {
			hi = mid // mid sits inside the file's final line tail

			continue
		}

		line, nextStart, err := a.readLine(start)
		if err != nil {
			return "", err
		}
		id, _, perr := parseAdjacencyLine(line)
		if perr != nil {
			return "", fmt.Errorf("offset %d: %w", start, perr)
		}

		switch {
		case id == v:
			return line, nil
		case id < v:
			lo = nextStart
		default:
			hi = mid
		}
	}

	return "", fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
}

// lineStart returns the offset of the first line beginning at or after pos.
func (a *AdjacencyListFile) lineStart(pos int64) (int64, error) {
	if pos == 0 {
		return 0, nil
	}

	// Scan forward from pos-1 for the newline that ends the current line.
	buf := make([]byte, 4096)
	at := pos - 1
	for at < a.size {
		n, err := a.f.ReadAt(buf, at)
		if n == 0 && err != nil {
			if err == io.EOF {
				break
			}

			return 0, fmt.Errorf("graphio: read adjacency list: %w", err)
		}
		for i := 0; i < n; i++ {
			if buf[i] == '\n' {
				return at + int64(i) + 1, nil
			}
		}
		at += int64(n)
		if err == io.EOF {
			break
		}
	}

	return a.size, nil
}

// readLine reads the newline-terminated line starting at start and returns
// it with the offset of the next line.
func (a *AdjacencyListFile) readLine(start int64) (string, int64, error) {
	var line []byte
	buf := make([]byte, 4096)
	at := start
	for at < a.size {
		n, err := a.f.ReadAt(buf, at)
		if n == 0 && err != nil {
			if err == io.EOF {
				break
			}

			return "", 0, fmt.Errorf("graphio: read adjacency list: %w", err)
		}
		for i := 0; i < n; i++ {
			if buf[i] == '\n' {
				line = append(line, buf[:i]...)

				return string(line), at + int64(i) + 1, nil
			}
		}
		line = append(line, buf[:n]...)
		at += int64(n)
		if err == io.EOF {
			break
		}
	}

	// Final line without a trailing newline.
	return string(line), a.size, nil
}
