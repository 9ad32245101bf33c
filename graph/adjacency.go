package graph

// HasEdge reports whether the directed edge u→v is present.
// Complexity: O(log d), d = out-degree of u.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	return sortedHas(g.out[u], v)
}

// AddEdge inserts the directed edge u→v. It is idempotent: adding an
// edge that already exists is a no-op. Returns ErrVertexRange if u or v
// fall outside [1,n], ErrSelfLoop if u == v.
// Complexity: O(log d + d) for the sorted-slice insertion.
func (g *Graph) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if sortedHas(g.out[u], v) {
		return nil
	}
	g.out[u] = sortedInsert(g.out[u], v)
	g.in[v] = sortedInsert(g.in[v], u)
	g.edgeCount++
	return nil
}

// RemoveEdge deletes the directed edge u→v. Returns ErrVertexRange if u or
// v are out of range, ErrEdgeNotFound if the edge does not exist.
// Complexity: O(log d + d).
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if !sortedHas(g.out[u], v) {
		return ErrEdgeNotFound
	}
	g.out[u] = sortedRemove(g.out[u], v)
	g.in[v] = sortedRemove(g.in[v], u)
	g.edgeCount--
	return nil
}

// OutNeighbors returns a sorted copy of {w : v→w}.
// Complexity: O(d).
func (g *Graph) OutNeighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	out := make([]int, len(g.out[v]))
	copy(out, g.out[v])
	return out
}

// InNeighbors returns a sorted copy of {u : u→v}.
// Complexity: O(d).
func (g *Graph) InNeighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	out := make([]int, len(g.in[v]))
	copy(out, g.in[v])
	return out
}

// AllNeighbors returns the sorted union of InNeighbors(v) and
// OutNeighbors(v), each vertex listed once regardless of how many of the
// two directions connect it to v.
// Complexity: O(d).
func (g *Graph) AllNeighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	out := make([]int, 0, len(g.out[v])+len(g.in[v]))
	i, j := 0, 0
	ov, iv := g.out[v], g.in[v]
	for i < len(ov) && j < len(iv) {
		switch {
		case ov[i] < iv[j]:
			out = append(out, ov[i])
			i++
		case ov[i] > iv[j]:
			out = append(out, iv[j])
			j++
		default:
			out = append(out, ov[i])
			i++
			j++
		}
	}
	out = append(out, ov[i:]...)
	out = append(out, iv[j:]...)
	return out
}
