package meek

import "github.com/mecenum/dagmec/graph"

// Close applies R1-R4 to g in place until a full pass fires no rule.
// Complexity: O(passes * n^3) in the worst case; passes is bounded by the
// number of undirected edges since every successful application removes
// one.
func Close(g *graph.Graph) {
	for {
		if !pass(g) {
			return
		}
	}
}

// pass performs a single left-to-right scan applying whichever rule fires
// first for each undirected edge, and reports whether anything changed.
func pass(g *graph.Graph) bool {
	changed := false
	for _, uv := range g.AdjacentPairs() {
		a, b := uv[0], uv[1]
		if !g.IsUndirected(a, b) {
			continue
		}
		if fireR1(g, a, b) || fireR1(g, b, a) ||
			fireR2(g, a, b) || fireR2(g, b, a) ||
			fireR3(g, a, b) || fireR3(g, b, a) ||
			fireR4(g, a, b) || fireR4(g, b, a) {
			changed = true
		}
	}
	return changed
}

// orient removes the reverse edge, turning undirected a—b into a→b.
func orient(g *graph.Graph, a, b int) {
	_ = g.RemoveEdge(b, a)
}

// fireR1 orients a—b as a→b if some directed predecessor x→a exists with
// x not adjacent to b. R1 with the vertices renamed: x→a, a—b, x≠b, x not
// adjacent to b ⇒ a→b (the canonical a→b, b—c ⇒ b→c). Returns true if it
// fired.
func fireR1(g *graph.Graph, a, b int) bool {
	if !g.IsUndirected(a, b) {
		return false
	}
	for _, x := range g.InNeighbors(a) {
		if g.IsDirected(x, a) && x != b && !g.IsAdjacent(x, b) {
			orient(g, a, b)
			return true
		}
	}
	return false
}

// fireR2 orients a—b as a→b if there is a directed path a→x→b. R2: a→x,
// x→b, a—b ⇒ a→b.
func fireR2(g *graph.Graph, a, b int) bool {
	if !g.IsUndirected(a, b) {
		return false
	}
	for _, x := range g.OutNeighbors(a) {
		if g.IsDirected(a, x) && g.IsDirected(x, b) {
			orient(g, a, b)
			return true
		}
	}
	return false
}

// fireR3 orients a—c as a→c when a has two non-adjacent undirected
// neighbors b,d that both point into c. R3: a—b, a—c, a—d, b→c, d→c,
// b≠d, b not adjacent to d ⇒ a→c.
func fireR3(g *graph.Graph, a, c int) bool {
	if !g.IsUndirected(a, c) {
		return false
	}
	var candidates []int
	for _, x := range g.AllNeighbors(a) {
		if g.IsUndirected(a, x) && g.IsDirected(x, c) {
			candidates = append(candidates, x)
		}
	}
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			b, d := candidates[i], candidates[j]
			if !g.IsAdjacent(b, d) {
				orient(g, a, c)
				return true
			}
		}
	}
	return false
}

// fireR4 orients a—b as a→b when a has an undirected neighbor c that
// itself receives a directed edge from a third undirected neighbor d of
// a, through a chain d→c→b. R4: a—b, a—c, a—d, d→c→b, b≠d, b not
// adjacent to d ⇒ a→b.
func fireR4(g *graph.Graph, a, b int) bool {
	if !g.IsUndirected(a, b) {
		return false
	}
	for _, c := range g.AllNeighbors(a) {
		if !g.IsUndirected(a, c) || !g.IsDirected(c, b) {
			continue
		}
		for _, d := range g.AllNeighbors(a) {
			if d == b || d == c {
				continue
			}
			if g.IsUndirected(a, d) && g.IsDirected(d, c) && !g.IsAdjacent(b, d) {
				orient(g, a, b)
				return true
			}
		}
	}
	return false
}
