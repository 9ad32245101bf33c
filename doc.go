// Package dagmec enumerates every DAG Markov-equivalent to a given
// partially-directed input graph.
//
// Input graphs are expressed as a graph.Graph over a CPDAG, PDAG, or
// completed/chain-component (CC) mixture of directed and undirected
// edges. Three independent enumeration engines, each grounded on a
// different traversal strategy over the same equivalence class, and one
// counting cross-check are provided:
//
//	enummeek — repeatedly picks an undirected edge, orients it both
//	           ways, propagates Meek's rules, and recurses.
//	mcs      — maximum-cardinality-search bucket enumeration, with a
//	           CPDAG variant (Enumerate) and a background-knowledge
//	           PDAG variant (EnumeratePDAG).
//	reversal — Chickering covered-edge reversal, in both a plain
//	           breadth-style walk (Chickering) and a depth-first
//	           variant (DFS) with an SHD≤3 consecutive-emission bound.
//	clique   — a brute-force acyclic-moral-orientation cross-check used
//	           to validate the other three engines' counts on chordal
//	           skeletons.
//
// Supporting packages:
//
//	graph     — the fixed-vertex-set directed graph primitive every
//	            other package builds on.
//	meek      — Meek's orientation rules R1-R4 and their closure.
//	extend    — the potential-sink elimination engine that turns a PDAG
//	            into one consistent DAG extension, or reports that none
//	            exists.
//	topo      — acyclicity checking and topological ordering, shared by
//	            extend and the enumeration engines' tests.
//	measure   — deadline- and emission-cap-aware enumeration telemetry
//	            (Welford running statistics, CSV delay logging).
//	dotexport — Graphviz DOT/SVG rendering of a graph.Graph.
//	runconfig — TOML-driven run configuration (timeouts, caps, output
//	            paths) for a CLI or batch driver.
//	dagio     — the plain-text graph file format this module reads and
//	            writes.
package dagmec
