package topo

import "errors"

// Vertex visitation states for three-color DFS.
const (
	white = iota
	gray
	black
)

// ErrCycleDetected is returned by Sort when d is not acyclic.
var ErrCycleDetected = errors.New("topo: cycle detected")
