package reversal

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mecenum/dagmec/graph"
)

// originalUndirected snapshots, from g before extension, which pairs
// were undirected -- only those edges are ever eligible for reversal,
// so that background-knowledge orientations present in g survive into
// every emitted member of the equivalence class.
func originalUndirected(g *graph.Graph) map[[2]int]bool {
	set := make(map[[2]int]bool)
	for _, p := range g.AdjacentPairs() {
		if g.IsUndirected(p[0], p[1]) {
			set[p] = true
		}
	}
	return set
}

// coveredEdges returns every edge x→y in d that was undirected in the
// original input and satisfies in-neighbors(x) = in-neighbors(y) \ {x}.
func coveredEdges(d *graph.Graph, origUndirected map[[2]int]bool) []graph.Edge {
	var out []graph.Edge
	for _, e := range d.Edges() {
		key := canon(e.From, e.To)
		if !origUndirected[key] {
			continue
		}
		if isCovered(d, e.From, e.To) {
			out = append(out, e)
		}
	}
	return out
}

func isCovered(d *graph.Graph, x, y int) bool {
	inX := d.InNeighbors(x)
	inY := d.InNeighbors(y)

	want := make([]int, 0, len(inY))
	for _, w := range inY {
		if w != x {
			want = append(want, w)
		}
	}
	if len(inX) != len(want) {
		return false
	}
	for i := range inX {
		if inX[i] != want[i] {
			return false
		}
	}
	return true
}

func canon(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// flipEdge replaces the directed edge from→to with to→from.
func flipEdge(d *graph.Graph, from, to int) {
	_ = d.RemoveEdge(from, to)
	_ = d.AddEdge(to, from)
}

// fingerprint canonicalizes d's edge list into a comparable string key
// for the visited set.
func fingerprint(d *graph.Graph) string {
	edges := d.Edges()
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = strconv.Itoa(e.From) + "-" + strconv.Itoa(e.To)
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}
