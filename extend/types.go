package extend

import "github.com/mecenum/dagmec/graph"

// EG is a working directed copy of a PDAG plus the six incremental
// counter vectors from spec §3 that make the potential-sink test O(1).
type EG struct {
	g *graph.Graph

	dPlusDir, dMinusDir     []int // δ⁺_dir, δ⁻_dir
	dPlusUndir, dMinusUndir []int // δ⁺_undir, δ⁻_undir
	alpha, beta             []int
}

// newEG allocates a zeroed EG over n vertices, wrapping g (not copied by
// newEG itself; callers pass an already-owned working copy).
func newEG(g *graph.Graph) *EG {
	n := g.NVertices()
	return &EG{
		g:           g,
		dPlusDir:    make([]int, n+1),
		dMinusDir:   make([]int, n+1),
		dPlusUndir:  make([]int, n+1),
		dMinusUndir: make([]int, n+1),
		alpha:       make([]int, n+1),
		beta:        make([]int, n+1),
	}
}

// Build constructs an ExtendedGraph over a working graph of its own (the
// input PDAG itself is never mutated). It iterates every adjacent pair of
// g once, inserting that pair's edge(s) into the working graph and then
// folding it into the six counters via addEdge, so each triangle is
// counted once, when its last edge is inserted.
// Complexity: O(V + E + Σ_{u,v adjacent} |N(u) ∩ N(v)|), i.e. near-linear
// for sparse graphs and bounded by the graph's clique structure in the
// worst case.
func Build(g *graph.Graph) *EG {
	eg := newEG(graph.NewGraph(g.NVertices()))
	for _, uv := range g.AdjacentPairs() {
		u, v := uv[0], uv[1]
		if g.HasEdge(u, v) {
			_ = eg.g.AddEdge(u, v)
		}
		if g.HasEdge(v, u) {
			_ = eg.g.AddEdge(v, u)
		}
		eg.addEdge(u, v)
	}
	return eg
}

// Graph exposes the EG's working copy, primarily for tests that want to
// inspect or drive the graph directly alongside the counters.
func (eg *EG) Graph() *graph.Graph { return eg.g }

// IsPotentialSink implements the §3 invariant: s has no outgoing directed
// edge, its undirected neighborhood is a clique, and every directed
// predecessor of s is adjacent to every undirected neighbor of s.
// Complexity: O(1).
func (eg *EG) IsPotentialSink(s int) bool {
	up := eg.dPlusUndir[s]
	return eg.dPlusDir[s] == 0 &&
		eg.alpha[s] == choose2(up) &&
		eg.beta[s] == up*eg.dMinusDir[s]
}

// choose2 returns C(k,2) = k*(k-1)/2.
func choose2(k int) int {
	return k * (k - 1) / 2
}
