// Package graph defines the mutable labeled directed graph that every
// enumerator in this module builds on: a fixed vertex set {1..n} plus
// directed edges stored as forward and backward adjacency per vertex.
//
// An undirected edge {u,v} is encoded as the pair of directed edges u→v
// and v→u; IsDirected(u,v) reports true only when exactly one of the pair
// is present, IsUndirected(u,v) only when both are.
//
// Complexity:
//
//   - HasEdge, IsDirected, IsUndirected: O(log d), d = degree of the
//     relevant endpoint (adjacency is kept as a sorted slice per vertex).
//   - InNeighbors, OutNeighbors, AllNeighbors: O(d).
//   - AddEdge, RemoveEdge: O(d) for the insert/delete into the sorted
//     adjacency slice.
//   - Copy: O(V + E).
//
// No self-loops are permitted (AddEdge(v,v) returns ErrSelfLoop). Vertex
// IDs outside [1,n] return ErrVertexRange. The graph keeps no other
// invariants beyond forward/backward adjacency consistency, which every
// exported mutator preserves by construction.
package graph
