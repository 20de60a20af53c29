// Package graphio: the edgelist format.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectral/graph"
)

// ReadEdgelist parses whitespace-separated "u v [w]" lines into a Graph.
// The vertex count is max id + 1. Comment lines starting with '#' and
// blank lines are skipped; a missing weight defaults to 1.
//
// Errors: ErrMalformedLine (wrapped with the line number), wrapped reader
// failures, and the graph construction errors for invalid content.
func ReadEdgelist(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var edges []graph.Edge
	n := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
		}
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
		}
		w := 1.0
		if len(fields) == 3 {
			if w, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMalformedLine)
			}
		}

		edges = append(edges, graph.Edge{U: u, V: v, Weight: w})
		if u+1 > n {
			n = u + 1
		}
		if v+1 > n {
			n = v + 1
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read edgelist: %w", err)
	}

	return graph.NewGraphFromEdges(n, edges)
}

// WriteEdgelist writes each undirected edge once as "u v w", upper
// triangle order, loops included.
func WriteEdgelist(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	n := g.NumberOfVertices()
	var v int
	for v = 0; v < n; v++ {
		if lw, _ := g.SelfLoopWeight(v); lw != 0 {
			if _, err := fmt.Fprintf(bw, "%d %d %s\n", v, v, formatWeight(lw)); err != nil {
				return fmt.Errorf("graphio: write edgelist: %w", err)
			}
		}
		edges, _ := g.Neighbors(v)
		for _, e := range edges {
			if e.V < v {
				continue // written from the other endpoint
			}
			if _, err := fmt.Fprintf(bw, "%d %d %s\n", e.U, e.V, formatWeight(e.Weight)); err != nil {
				return fmt.Errorf("graphio: write edgelist: %w", err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write edgelist: %w", err)
	}

	return nil
}

// formatWeight renders weights compactly ("1", "0.5") and losslessly.
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
