package mcs

import (
	"math/big"
	"sort"

	"github.com/mecenum/dagmec/extend"
	"github.com/mecenum/dagmec/graph"
	"github.com/mecenum/dagmec/meek"
	"github.com/mecenum/dagmec/measure"
)

// EnumeratePDAG enumerates every DAG Markov-equivalent to g via two-axis
// MCS bucket backtracking: one axis counts visited in-component
// neighbors - reachable via an undirected edge or a background-directed
// edge alike, since within a chain component a directed edge is just as
// much an MCS adjacency as an undirected one - the other flags whether a
// vertex's directed predecessors within its chain component have all
// been visited, so that pre-existing background-knowledge edges in g are
// never contradicted by the emitted order.
//
// g need not already be closed under Meek's rules; EnumeratePDAG verifies
// extendability and applies meek.Close to a working copy before
// enumerating.
func EnumeratePDAG(g *graph.Graph, sink *measure.Sink, opts ...Option) (*big.Int, error) {
	cfg := newConfig(opts...)

	if !extend.IsExtendable(g) {
		if cfg.logger != nil {
			cfg.logger.Info("pdag_enumerate: input not extendable", "count", 0)
		}
		return big.NewInt(0), nil
	}

	gc := g.Copy()
	meek.Close(gc)
	n := gc.NVertices()

	undirAdj := undirectedAdjacency(n, gc.AdjacentPairs, gc.IsUndirected)
	comp := components(n, undirAdj)

	parents := make([][]int, n+1)
	for _, p := range gc.AdjacentPairs() {
		u, v := p[0], p[1]
		if comp[u] != comp[v] {
			continue
		}
		switch {
		case gc.IsDirected(u, v):
			parents[v] = append(parents[v], u)
		case gc.IsDirected(v, u):
			parents[u] = append(parents[u], v)
		}
	}

	children := make([][]int, n+1)
	indeg := make([]int, n+1)
	for v := 1; v <= n; v++ {
		indeg[v] = len(parents[v])
	}
	for v := 1; v <= n; v++ {
		for _, p := range parents[v] {
			children[p] = append(children[p], v)
		}
	}

	cAdj := make([][]int, n+1)
	for v := 1; v <= n; v++ {
		cAdj[v] = unionSorted(undirAdj[v], parents[v], children[v])
	}

	bs := newBucketSet(2*n + 2)
	invA := make([]int, n+1)
	visited := make([]bool, n+1)
	for v := 1; v <= n; v++ {
		label := 0
		if indeg[v] == 0 {
			label = 1
		}
		invA[v] = label
		bs.insert(label, v)
		if label > bs.maxA {
			bs.maxA = label
		}
	}

	tauPos := make([]int, n+1)
	count := big.NewInt(0)

	var step func(i int) error
	branch := func(v, i int) error {
		savedLabel, touchedNbrs, touchedIndeg, prevMaxA := setVertexPDAG(bs, invA, visited, indeg, v, cAdj[v], children[v])
		tauPos[v] = i
		if cfg.logger != nil {
			cfg.logger.Debug("pdag_enumerate: set", "v", v, "i", i, "label", invA[v])
		}
		err := step(i + 1)
		resetVertexPDAG(bs, invA, visited, indeg, v, savedLabel, touchedNbrs, touchedIndeg, prevMaxA)
		return err
	}

	step = func(i int) error {
		if i > n {
			d := buildDAG(gc, comp, tauPos)
			if cfg.onEmit != nil {
				if err := cfg.onEmit(d); err != nil {
					return err
				}
			}
			count.Add(count, big.NewInt(1))
			if sink != nil {
				return sink.Observe()
			}
			return nil
		}

		topMembers := append([]int(nil), bs.members(bs.maxA)...)
		v := bs.first(bs.maxA)
		if err := branch(v, i); err != nil {
			return err
		}

		for _, x := range reachableWithin(v, topMembers, cAdj) {
			if x == v {
				continue
			}
			if err := branch(x, i); err != nil {
				return err
			}
		}
		return nil
	}

	err := step(1)
	if cfg.logger != nil {
		cfg.logger.Info("pdag_enumerate: done", "count", count.String())
	}
	return count, err
}

// setVertexPDAG marks v visited: every still-unvisited in-component
// neighbor - cNbrs, which spans both undirected edges and
// background-directed edges within v's chain component - moves up two
// labels (the visited-neighbor axis), and every still-unvisited child
// for which v was its last unresolved parent additionally moves up one
// label (the indegree-zero axis flips on). A child is always itself a
// cNbrs entry, so the two bumps compose for it rather than compete.
func setVertexPDAG(bs *bucketSet, invA []int, visited []bool, indeg []int, v int, cNbrs, childrenOfV []int) (savedLabel int, touchedNbrs, touchedIndeg []int, prevMaxA int) {
	savedLabel = invA[v]
	bs.remove(savedLabel, v)
	visited[v] = true

	for _, w := range cNbrs {
		if !visited[w] {
			bs.remove(invA[w], w)
			invA[w] += 2
			bs.insert(invA[w], w)
			touchedNbrs = append(touchedNbrs, w)
		}
	}

	for _, c := range childrenOfV {
		if visited[c] {
			continue
		}
		indeg[c]--
		if indeg[c] == 0 {
			bs.remove(invA[c], c)
			invA[c]++
			bs.insert(invA[c], c)
			touchedIndeg = append(touchedIndeg, c)
		}
	}

	prevMaxA = bs.maxA
	bs.maxA += 2
	bs.sinkMaxA(0)
	return
}

// resetVertexPDAG is the exact inverse of setVertexPDAG.
func resetVertexPDAG(bs *bucketSet, invA []int, visited []bool, indeg []int, v, savedLabel int, touchedNbrs, touchedIndeg []int, prevMaxA int) {
	for i := len(touchedIndeg) - 1; i >= 0; i-- {
		c := touchedIndeg[i]
		bs.remove(invA[c], c)
		invA[c]--
		bs.insert(invA[c], c)
		indeg[c]++
	}
	for i := len(touchedNbrs) - 1; i >= 0; i-- {
		w := touchedNbrs[i]
		bs.remove(invA[w], w)
		invA[w] -= 2
		bs.insert(invA[w], w)
	}
	visited[v] = false
	invA[v] = savedLabel
	bs.insert(savedLabel, v)
	bs.maxA = prevMaxA
}

func unionSorted(lists ...[]int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, l := range lists {
		for _, v := range l {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Ints(out)
	return out
}
