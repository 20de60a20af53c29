// Package lsh implements Euclidean locality-sensitive hashing (E2LSH).
//
// A Euclidean index owns L hash tables; each table hashes a point with K
// concatenated hashes of the form
//
//	h(x) = ⌊(g·x/r + b) / w⌋
//
// where g is a standard Gaussian direction, b is uniform in [0, w), w is
// the bucket width and r the target radius. Points within distance r of a
// query collide with constant per-hash probability, so scanning the query's
// bucket in every table recalls near neighbors in sublinear time.
//
// CollisionProbability exposes the per-hash collision probability as a
// function of the radius-scaled distance; callers (the CKNS kernel density
// estimator) use it to size K and L.
//
// Construction takes an explicit rand.Source; the same source state always
// builds the same tables.
package lsh
