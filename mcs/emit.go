package mcs

import (
	"sort"

	"github.com/mecenum/dagmec/graph"
)

// buildDAG orients every adjacent pair whose endpoints share a component
// by topological position (tauPos), and copies every other pair's
// existing direction unchanged.
func buildDAG(g *graph.Graph, comp, tauPos []int) *graph.Graph {
	d := graph.NewGraph(g.NVertices())
	for _, p := range g.AdjacentPairs() {
		u, v := p[0], p[1]
		if comp[u] == comp[v] {
			if tauPos[u] < tauPos[v] {
				_ = d.AddEdge(u, v)
			} else {
				_ = d.AddEdge(v, u)
			}
			continue
		}
		if g.IsDirected(u, v) {
			_ = d.AddEdge(u, v)
		} else {
			_ = d.AddEdge(v, u)
		}
	}
	return d
}

// reachableWithin returns the sorted set of vertices reachable from
// start using only edges of adj whose both endpoints lie in allowed.
func reachableWithin(start int, allowed []int, adj [][]int) []int {
	allowedSet := make(map[int]bool, len(allowed))
	for _, v := range allowed {
		allowedSet[v] = true
	}
	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, w := range adj[cur] {
			if allowedSet[w] && !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}
	out := make([]int, 0, len(visited))
	for v := range visited {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
