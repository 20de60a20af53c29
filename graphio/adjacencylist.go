// Package graphio: the adjacency-list format and the format converters.
package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/spectral/graph"
)

// parseAdjacencyLine parses "vertex: n1[,w1] n2[,w2] ...". The returned
// edges include a self-loop entry when present (U == V).
func parseAdjacencyLine(line string) (int, []graph.Edge, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return 0, nil, ErrMalformedLine
	}
	v, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || v < 0 {
		return 0, nil, ErrMalformedLine
	}

	var edges []graph.Edge
	for _, tok := range strings.Fields(rest) {
		nbr, wtext, weighted := strings.Cut(tok, ",")
		u, uerr := strconv.Atoi(nbr)
		if uerr != nil || u < 0 {
			return 0, nil, ErrMalformedLine
		}
		w := 1.0
		if weighted {
			if w, uerr = strconv.ParseFloat(wtext, 64); uerr != nil {
				return 0, nil, ErrMalformedLine
			}
		}
		edges = append(edges, graph.Edge{U: v, V: u, Weight: w})
	}

	return v, edges, nil
}

// ReadAdjacencyList parses the whole stream into a Graph. Every undirected
// edge must appear on both endpoint lines; symmetry is validated by the
// graph constructor. Lines must be sorted by vertex id (the on-disk
// contract of the format).
//
// Errors: ErrMalformedLine, ErrUnsorted, wrapped reader failures, and the
// graph construction errors.
func ReadAdjacencyList(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	type row struct {
		v     int
		edges []graph.Edge
	}
	var rows []row
	n := 0
	prev := -1
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, edges, err := parseAdjacencyLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if v <= prev {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrUnsorted)
		}
		prev = v
		rows = append(rows, row{v: v, edges: edges})
		if v+1 > n {
			n = v + 1
		}
		for _, e := range edges {
			if e.V+1 > n {
				n = e.V + 1
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read adjacency list: %w", err)
	}

	// Each line is one full row of the adjacency matrix; assemble the CSR
	// arrays directly and let the constructor enforce symmetry (a file
	// listing an edge on only one endpoint line fails as asymmetric).
	rowPtr := make([]int, n+1)
	var colInd []int
	var vals []float64
	next := 0
	for v := 0; v < n; v++ {
		if next < len(rows) && rows[next].v == v {
			for _, e := range rows[next].edges {
				colInd = append(colInd, e.V)
				vals = append(vals, e.Weight)
			}
			next++
		}
		rowPtr[v+1] = len(colInd)
	}

	return graph.NewGraphFromRaw(rowPtr, colInd, vals)
}

// WriteAdjacencyList writes one sorted line per vertex with every incident
// edge, loops once on their own line's entry list.
func WriteAdjacencyList(w io.Writer, g *graph.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	bw := bufio.NewWriter(w)
	n := g.NumberOfVertices()
	var v int
	for v = 0; v < n; v++ {
		if _, err := fmt.Fprintf(bw, "%d:", v); err != nil {
			return fmt.Errorf("graphio: write adjacency list: %w", err)
		}
		if lw, _ := g.SelfLoopWeight(v); lw != 0 {
			if _, err := fmt.Fprintf(bw, " %d,%s", v, formatWeight(lw)); err != nil {
				return fmt.Errorf("graphio: write adjacency list: %w", err)
			}
		}
		edges, _ := g.Neighbors(v)
		for _, e := range edges {
			if _, err := fmt.Fprintf(bw, " %d,%s", e.V, formatWeight(e.Weight)); err != nil {
				return fmt.Errorf("graphio: write adjacency list: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return fmt.Errorf("graphio: write adjacency list: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write adjacency list: %w", err)
	}

	return nil
}

// EdgelistToAdjacencyList converts the file at src into the adjacency-list
// format at dst.
func EdgelistToAdjacencyList(src, dst string) error {
	return convertFile(src, dst, ReadEdgelist, WriteAdjacencyList)
}

// AdjacencyListToEdgelist converts the file at src into the edgelist
// format at dst.
func AdjacencyListToEdgelist(src, dst string) error {
	return convertFile(src, dst, ReadAdjacencyList, WriteEdgelist)
}

// convertFile wires a reader and a writer through an in-memory Graph.
func convertFile(src, dst string, read func(io.Reader) (*graph.Graph, error), write func(io.Writer, *graph.Graph) error) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("graphio: open %s: %w", src, err)
	}
	defer in.Close()

	g, err := read(in)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", dst, err)
	}
	if err = write(out, g); err != nil {
		out.Close()

		return err
	}

	return out.Close()
}
