// Package enummeek enumerates every DAG Markov-equivalent to a PDAG by
// repeatedly picking an undirected edge, orienting it both ways, closing
// each branch under Meek's rules, and recursing. It is the simplest of
// the four enumerators in this module -- no bucket bookkeeping, just
// Meek closure plus a pivot-scan -- at the cost of redoing the closure
// pass from scratch on every recursive call.
package enummeek
