// Package meek applies the four Meek orientation rules to a graph.Graph in
// place, until no rule fires in a full pass (the graph's MPDAG fixpoint).
//
// Rules (a—b undirected, a→b directed):
//
//   - R1: a→b, b—c, a≠c, a not adjacent to c  ⇒  orient b→c.
//   - R2: a→b→c, a—c                          ⇒  orient a→c.
//   - R3: a—b, a—c, a—d, b→c, d→c, b≠d, b not adjacent to d  ⇒  orient a→c.
//   - R4: a—b, a—c, a—d, d→c→b, b≠d, b not adjacent to d     ⇒  orient a→b.
//
// Orienting a—b means removing the edge b→a and keeping a→b. Each
// application strictly reduces the number of undirected edges, so the
// number of passes is bounded by the edge count and the loop always
// terminates. Iteration order within a pass does not affect the fixpoint,
// only deterministically which edge is chosen to fire first.
package meek
