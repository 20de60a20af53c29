// Package graphio reads and writes the two plain-text graph formats of the
// toolkit and provides random access into adjacency-list files.
//
// Edgelist format: one undirected edge per line as whitespace-separated
// "u v w" (weight optional, default 1); '#' starts a comment line; each
// undirected edge is written once.
//
// Adjacency-list format: one vertex per line as
//
//	vertex: neighbor1[,weight1] neighbor2[,weight2] ...
//
// with lines sorted by vertex id and every undirected edge appearing on
// both endpoints' lines (self-loops once, on their own line). The sorted
// order is what makes offset binary search possible: AdjacencyListFile
// serves the graph.LocalGraph capability set straight from disk without
// loading the file, so local algorithms run against graphs far larger than
// memory.
package graphio
