package topo

import "github.com/mecenum/dagmec/graph"

// IsAcyclic reports whether d, treated as a directed graph over its
// directed edges only, contains no cycle.
func IsAcyclic(d *graph.Graph) bool {
	_, err := Sort(d)
	return err == nil
}

// Sort returns a topological ordering of d's vertices over its directed
// edges. Undirected pairs are ignored, since a PDAG with remaining
// undirected edges is not yet a DAG and has no topological order to speak
// of; callers that need to order a PDAG should extend it first. Returns
// ErrCycleDetected if a directed cycle exists among d's directed edges.
func Sort(d *graph.Graph) ([]int, error) {
	n := d.NVertices()
	state := make([]int, n+1)
	order := make([]int, 0, n)

	var visit func(v int) error
	visit = func(v int) error {
		state[v] = gray
		for _, w := range directedOutNeighbors(d, v) {
			switch state[w] {
			case white:
				if err := visit(w); err != nil {
					return err
				}
			case gray:
				return ErrCycleDetected
			}
		}
		state[v] = black
		order = append(order, v)
		return nil
	}

	for v := 1; v <= n; v++ {
		if state[v] == white {
			if err := visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

func directedOutNeighbors(d *graph.Graph, v int) []int {
	var out []int
	for _, w := range d.OutNeighbors(v) {
		if d.IsDirected(v, w) {
			out = append(out, w)
		}
	}
	return out
}
