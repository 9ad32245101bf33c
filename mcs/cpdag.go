package mcs

import (
	"math/big"

	"github.com/mecenum/dagmec/graph"
	"github.com/mecenum/dagmec/measure"
)

// Enumerate enumerates every DAG Markov-equivalent to g via single-axis
// MCS bucket backtracking over g's undirected skeleton. g is assumed to
// already be a CPDAG or a chordal undirected graph (CC); unlike
// EnumeratePDAG, it performs no extendability check or Meek closure.
func Enumerate(g *graph.Graph, sink *measure.Sink, opts ...Option) (*big.Int, error) {
	cfg := newConfig(opts...)
	n := g.NVertices()

	adj := undirectedAdjacency(n, g.AdjacentPairs, g.IsUndirected)
	comp := components(n, adj)

	bs := newBucketSet(n + 1)
	invA := make([]int, n+1)
	for v := 1; v <= n; v++ {
		invA[v] = 1
		bs.insert(1, v)
	}
	bs.maxA = 1

	tauPos := make([]int, n+1)
	count := big.NewInt(0)

	var step func(i int) error
	branch := func(v, i int) error {
		oldLabel, touched, prevMaxA := setVertex(bs, invA, v, adj[v])
		tauPos[v] = i
		if cfg.logger != nil {
			cfg.logger.Debug("cpdag_enumerate: set", "v", v, "i", i, "label", bs.maxA)
		}
		err := step(i + 1)
		resetVertex(bs, invA, v, oldLabel, touched, prevMaxA)
		return err
	}

	step = func(i int) error {
		if i > n {
			d := buildDAG(g, comp, tauPos)
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

		for _, x := range reachableWithin(v, topMembers, adj) {
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
		cfg.logger.Info("cpdag_enumerate: done", "count", count.String())
	}
	return count, err
}

// setVertex marks v visited, bumps every still-unvisited neighbor into
// the next bucket up, and returns everything resetVertex needs to undo
// this exactly.
func setVertex(bs *bucketSet, invA []int, v int, neighbors []int) (oldLabel int, touched []int, prevMaxA int) {
	oldLabel = invA[v]
	bs.remove(oldLabel, v)
	invA[v] = -oldLabel

	for _, w := range neighbors {
		if invA[w] > 0 {
			wl := invA[w]
			bs.remove(wl, w)
			invA[w] = wl + 1
			bs.insert(wl+1, w)
			touched = append(touched, w)
		}
	}

	prevMaxA = bs.maxA
	bs.maxA++
	bs.sinkMaxA(1)
	return
}

// resetVertex is the exact inverse of setVertex.
func resetVertex(bs *bucketSet, invA []int, v, oldLabel int, touched []int, prevMaxA int) {
	for i := len(touched) - 1; i >= 0; i-- {
		w := touched[i]
		wl := invA[w]
		bs.remove(wl, w)
		invA[w] = wl - 1
		bs.insert(wl-1, w)
	}
	invA[v] = oldLabel
	bs.insert(oldLabel, v)
	bs.maxA = prevMaxA
}
