// Package mcs enumerates Markov-equivalent DAGs via maximum-cardinality-
// search bucket backtracking, in two variants:
//
//   - Enumerate (the "CPDAG" variant) assumes the input is already an
//     MPDAG: it buckets vertices purely by how many of their undirected
//     neighbors have been visited.
//   - EnumeratePDAG generalizes this with a second bucket axis tracking
//     whether a vertex's directed predecessors inside its chain
//     component have all been visited, so that background-knowledge
//     edges are never contradicted by the emitted order.
//
// Both variants maintain an A/invA/maxA bucket triple: invA[v] is the
// label (bucket index) a still-unvisited vertex currently sits in, A[l]
// is the sorted set of vertices at label l, and maxA is the highest
// nonempty label. Visiting a vertex moves its unvisited neighbors up the
// label scale (one label in Enumerate, two in EnumeratePDAG) and marks
// it visited: Enumerate negates its invA entry, while EnumeratePDAG,
// whose labels can legitimately be 0, keeps a separate visited flag.
// Backtracking (reset) undoes this exactly, which keeps each recursive
// step proportional to the visited vertex's degree rather than to the
// whole graph.
package mcs
