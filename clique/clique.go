package clique

import (
	"math/big"
	"sort"

	"github.com/mecenum/dagmec/graph"
)

// Count returns the number of distinct DAGs compatible with g, where g
// must be a chordal undirected graph (every adjacent pair is an
// undirected edge). Disconnected components contribute independently
// and their counts are multiplied.
func Count(g *graph.Graph) *big.Int {
	n := g.NVertices()
	adj := make([][]int, n+1)
	for _, p := range g.AdjacentPairs() {
		adj[p[0]] = append(adj[p[0]], p[1])
		adj[p[1]] = append(adj[p[1]], p[0])
	}

	comp := make([]int, n+1)
	id := 0
	groups := make(map[int][]int)
	for v := 1; v <= n; v++ {
		if comp[v] != 0 {
			continue
		}
		id++
		queue := []int{v}
		comp[v] = id
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			groups[id] = append(groups[id], cur)
			for _, w := range adj[cur] {
				if comp[w] == 0 {
					comp[w] = id
					queue = append(queue, w)
				}
			}
		}
	}

	total := big.NewInt(1)
	for gid := 1; gid <= id; gid++ {
		total.Mul(total, countConnected(groups[gid], adj))
	}
	return total
}

// countConnected counts the acyclic moral orientations (AMOs) of a
// single connected chordal component: orientations of its edges that
// are acyclic and introduce no unshielded collider (a vertex with two
// non-adjacent parents). This is the quantity that equals the size of
// the Markov equivalence class represented by the component, not the
// number of simplicial elimination orderings - those overcount, since
// distinct elimination sequences can collapse onto the same DAG, or
// onto a DAG with a collider the elimination order never rules out.
//
// Every orientation is tried directly. The cross-check is only ever
// run on the small chordal skeletons used to validate the enumeration
// engines (see package doc), so a 2^|E| sweep over a single component
// is cheap in practice.
func countConnected(vertices []int, adj [][]int) *big.Int {
	adjSet := make(map[int]map[int]bool, len(vertices))
	for _, v := range vertices {
		adjSet[v] = make(map[int]bool, len(adj[v]))
		for _, w := range adj[v] {
			adjSet[v][w] = true
		}
	}

	type edge struct{ u, v int }
	var edges []edge
	for _, v := range vertices {
		for _, w := range adj[v] {
			if v < w {
				edges = append(edges, edge{v, w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}
		return edges[i].v < edges[j].v
	})

	total := big.NewInt(0)
	parents := make(map[int][]int, len(vertices))
	combos := 1 << uint(len(edges))
	for mask := 0; mask < combos; mask++ {
		for _, v := range vertices {
			parents[v] = parents[v][:0]
		}
		out := make(map[int][]int, len(vertices))
		for i, e := range edges {
			from, to := e.u, e.v
			if mask&(1<<uint(i)) != 0 {
				from, to = e.v, e.u
			}
			out[from] = append(out[from], to)
			parents[to] = append(parents[to], from)
		}

		if !isAcyclicOrientation(vertices, out) {
			continue
		}
		if hasUnshieldedCollider(vertices, parents, adjSet) {
			continue
		}
		total.Add(total, big.NewInt(1))
	}
	return total
}

// isAcyclicOrientation reports whether the directed edges in out form a
// DAG over vertices, via plain Kahn in-degree elimination.
func isAcyclicOrientation(vertices []int, out map[int][]int) bool {
	indeg := make(map[int]int, len(vertices))
	for _, v := range vertices {
		indeg[v] = 0
	}
	for _, v := range vertices {
		for _, w := range out[v] {
			indeg[w]++
		}
	}
	var queue []int
	for _, v := range vertices {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	visited := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		visited++
		for _, w := range out[v] {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}
	return visited == len(vertices)
}

// hasUnshieldedCollider reports whether some vertex has two parents
// that are not adjacent in the original skeleton.
func hasUnshieldedCollider(vertices []int, parents map[int][]int, adjSet map[int]map[int]bool) bool {
	for _, v := range vertices {
		ps := parents[v]
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				if !adjSet[ps[i]][ps[j]] {
					return true
				}
			}
		}
	}
	return false
}
