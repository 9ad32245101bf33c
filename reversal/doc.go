// Package reversal enumerates Markov-equivalent DAGs by successive
// reversals of covered edges starting from one extension of the input
// graph: an edge x→y is covered when it was undirected in the original
// input and in-neighbors(x) equals in-neighbors(y) minus x, meaning
// flipping it alone yields another DAG in the same equivalence class.
//
// Chickering emits a DAG on entry to every recursive call and explores
// every covered edge not already reversed somewhere on the current
// path. DFS walks the identical tree but times its emissions to depth
// parity (entry on even depth, exit on odd), which bounds the Hamming
// distance between consecutive emissions to at most three.
//
// Both hold a single global visited-set of canonicalized edge-list
// fingerprints to avoid revisiting a DAG reached by a different
// reversal sequence; this set is exact but grows without bound, so
// callers enumerating very large equivalence classes should configure
// measure.WithMaxEmissions.
package reversal
