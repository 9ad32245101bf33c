package graph

import "sort"

// IsDirected reports whether u→v exists without its reverse, i.e. the pair
// {u,v} is a directed edge in the partially-directed-graph sense.
// Complexity: O(log d).
func (g *Graph) IsDirected(u, v int) bool {
	return g.HasEdge(u, v) && !g.HasEdge(v, u)
}

// IsUndirected reports whether both u→v and v→u exist, i.e. {u,v} is an
// undirected edge.
// Complexity: O(log d).
func (g *Graph) IsUndirected(u, v int) bool {
	return g.HasEdge(u, v) && g.HasEdge(v, u)
}

// IsAdjacent reports whether u and v are connected by any edge, directed
// or undirected.
func (g *Graph) IsAdjacent(u, v int) bool {
	return g.HasEdge(u, v) || g.HasEdge(v, u)
}

// Edges returns every directed edge in deterministic (From, To) order. An
// undirected {u,v} with u<v appears as two entries, (u,v) and (v,u).
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u := 1; u <= g.n; u++ {
		for _, v := range g.out[u] {
			out = append(out, Edge{From: u, To: v})
		}
	}
	return out
}

// Copy returns a deep, independent copy of g.
// Complexity: O(V + E).
func (g *Graph) Copy() *Graph {
	cp := NewGraph(g.n)
	cp.edgeCount = g.edgeCount
	for v := 1; v <= g.n; v++ {
		if len(g.out[v]) > 0 {
			cp.out[v] = append([]int(nil), g.out[v]...)
		}
		if len(g.in[v]) > 0 {
			cp.in[v] = append([]int(nil), g.in[v]...)
		}
	}
	return cp
}

// AdjacentPairs returns every unordered pair {u,v}, u<v, for which u and
// v are adjacent (directed either way or undirected), in ascending
// (u,v) lexicographic order. This is the canonical scan order used by
// the extension engine (§4.2) and the Meek-based enumerator (§4.4).
func (g *Graph) AdjacentPairs() [][2]int {
	var out [][2]int
	for u := 1; u <= g.n; u++ {
		nbrs := g.AllNeighbors(u)
		for _, v := range nbrs {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}
