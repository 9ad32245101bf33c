package extend

import "github.com/mecenum/dagmec/graph"

// IsExtendable reports whether pdag has a consistent DAG extension, using
// the potential-sink elimination procedure of spec §4.2. It never mutates
// pdag.
// Complexity: amortized linear in the size of the chordal structure
// uncovered, since each potential-sink test is O(1) and each edge is
// visited a constant number of times across the whole run.
func IsExtendable(pdag *graph.Graph) bool {
	eg := Build(pdag)
	eliminate(eg, nil)
	return eg.g.EdgeCount() == 0
}

// Extend returns a DAG consistent with pdag's skeleton and existing
// orientations, and true, if one exists. If none exists it returns an
// empty graph (no edges, same vertex count) and false -- the "⊥" result
// of spec §4.2/§7 kind 1, which callers should treat as "not extendable",
// not as an error.
//
// Determinism: potential-sink removal order does not affect whether pdag
// is extendable, but it does affect which D is produced when it is.
// Extend always processes newly-discovered sinks in increasing vertex-ID
// order and pops LIFO; callers comparing Extend's output across runs or
// implementations must replicate that exact order.
func Extend(pdag *graph.Graph) (*graph.Graph, bool) {
	eg := Build(pdag)
	d := pdag.Copy()
	eliminate(eg, d)
	if eg.g.EdgeCount() != 0 {
		return graph.NewGraph(pdag.NVertices()), false
	}
	return d, true
}

// eliminate runs the potential-sink elimination loop against eg, and --
// when d is non-nil -- finalizes each popped sink's undirected edges in d
// as incoming by dropping d's outgoing copy.
func eliminate(eg *EG, d *graph.Graph) {
	n := eg.g.NVertices()
	pushed := make([]bool, n+1)
	var stack []int

	for v := 1; v <= n; v++ {
		if eg.IsPotentialSink(v) {
			stack = append(stack, v)
			pushed[v] = true
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors := eg.g.AllNeighbors(s)
		if d != nil {
			for _, u := range eg.g.OutNeighbors(s) {
				_ = d.RemoveEdge(s, u)
			}
		}

		for _, w := range neighbors {
			eg.removeEdgeBetween(s, w)
			if !pushed[w] && eg.IsPotentialSink(w) {
				stack = append(stack, w)
				pushed[w] = true
			}
		}
	}
}
