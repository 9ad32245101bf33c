package graph

import "errors"

// Sentinel errors returned by the graph package. Callers should branch on
// these with errors.Is; none of them is ever wrapped away.
var (
	// ErrVertexRange indicates a vertex ID outside the graph's [1,n] range.
	ErrVertexRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrEdgeNotFound indicates RemoveEdge was called on a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)
