// Package topo implements acyclicity checking and topological ordering
// over graph.Graph, using three-color (white/gray/black) depth-first
// search. It is the shared acyclicity check used by the extend and mcs
// tests to confirm that extensions and emitted graphs are DAGs.
package topo
