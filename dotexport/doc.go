// Package dotexport renders a graph as Graphviz DOT, and optionally as
// SVG, for debugging and documentation -- visualizing an emitted DAG, an
// input PDAG with its undirected edges drawn without arrowheads, or an
// EG mid-enumeration.
package dotexport
