package extend

// updateAlphaBeta implements the eight-case table of spec §4.2 for the
// unordered pair (u,v), u<v (the same canonical ordering is used both
// when the edge is added, val=+1, and when it is later torn down during
// potential-sink removal, val=-1, which keeps every counter an exact
// running total without needing to recompute from scratch). isD reports
// whether u-v is itself a directed edge (in either direction); UX/VX/etc
// below are evaluated fresh against the current graph, so removal
// automatically accounts for any common neighbors that have themselves
// already been stripped.
func (eg *EG) updateAlphaBeta(u, v, val int, isD bool) {
	g := eg.g
	for _, x := range intersectNeighbors(g.AllNeighbors(u), g.AllNeighbors(v)) {
		ux := g.IsUndirected(u, x)
		vx := g.IsUndirected(v, x)

		if !isD && ux {
			eg.alpha[u] += val
		}
		if !isD && !g.HasEdge(u, x) && g.HasEdge(x, u) {
			eg.beta[u] += val
		}
		if !isD && vx {
			eg.alpha[v] += val
		}
		if isD && vx {
			eg.beta[v] += val
		}
		if !isD && g.HasEdge(x, v) && !g.HasEdge(v, x) {
			eg.beta[v] += val
		}
		if ux && vx {
			eg.alpha[x] += val
		}
		if vx && g.HasEdge(u, x) && !g.HasEdge(x, u) {
			eg.beta[x] += val
		}
		if ux && !g.HasEdge(x, v) && g.HasEdge(v, x) {
			eg.beta[x] += val
		}
	}

	if Debug {
		eg.assertNonNegative(u)
		eg.assertNonNegative(v)
	}
}

// intersectNeighbors returns the sorted intersection of two sorted slices.
func intersectNeighbors(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func (eg *EG) assertNonNegative(v int) {
	if eg.alpha[v] < 0 || eg.beta[v] < 0 || eg.dPlusDir[v] < 0 || eg.dMinusDir[v] < 0 ||
		eg.dPlusUndir[v] < 0 || eg.dMinusUndir[v] < 0 {
		invariantPanic("negative counter")
	}
}

// addEdge folds the adjacent pair (u,v), u<v, into the δ vectors and
// α/β counters. It is used both at Build time (val=+1 throughout) and
// never with val=-1 directly; removal goes through removeEdgeBetween, which
// mirrors this with val=-1 after first recording the edge's
// classification.
func (eg *EG) addEdge(u, v int) {
	g := eg.g
	switch {
	case g.IsDirected(u, v):
		eg.dPlusDir[u]++
		eg.dMinusDir[v]++
		eg.updateAlphaBeta(u, v, +1, true)
	case g.IsDirected(v, u):
		eg.dPlusDir[v]++
		eg.dMinusDir[u]++
		eg.updateAlphaBeta(u, v, +1, true)
	case g.IsUndirected(u, v):
		eg.dPlusUndir[u]++
		eg.dMinusUndir[u]++
		eg.dPlusUndir[v]++
		eg.dMinusUndir[v]++
		eg.updateAlphaBeta(u, v, +1, false)
	}
}

// removeEdgeBetween tears down the adjacent pair (p,q) -- in either
// vertex order -- undoing exactly the contribution addEdge made: it
// looks up the canonical (u,v), u<v, re-derives isD/δ updates from the
// edge's current classification, applies updateAlphaBeta with val=-1,
// updates the δ vectors, and finally removes the underlying graph edge(s).
func (eg *EG) removeEdgeBetween(p, q int) {
	u, v := p, q
	if u > v {
		u, v = v, u
	}
	g := eg.g
	switch {
	case g.IsDirected(u, v):
		eg.updateAlphaBeta(u, v, -1, true)
		eg.dPlusDir[u]--
		eg.dMinusDir[v]--
		_ = g.RemoveEdge(u, v)
	case g.IsDirected(v, u):
		eg.updateAlphaBeta(u, v, -1, true)
		eg.dPlusDir[v]--
		eg.dMinusDir[u]--
		_ = g.RemoveEdge(v, u)
	case g.IsUndirected(u, v):
		eg.updateAlphaBeta(u, v, -1, false)
		eg.dPlusUndir[u]--
		eg.dMinusUndir[u]--
		eg.dPlusUndir[v]--
		eg.dMinusUndir[v]--
		_ = g.RemoveEdge(u, v)
		_ = g.RemoveEdge(v, u)
	}

	if Debug {
		eg.assertNonNegative(u)
		eg.assertNonNegative(v)
	}
}
