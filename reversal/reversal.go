package reversal

import (
	"math/big"

	"github.com/mecenum/dagmec/extend"
	"github.com/mecenum/dagmec/graph"
	"github.com/mecenum/dagmec/measure"
)

// Chickering enumerates every DAG Markov-equivalent to g, starting from
// one extension of g and exploring covered-edge reversals depth-first:
// it emits the current DAG, then for every covered edge not already
// reversed somewhere on the path to the root, flips it, recurses if the
// resulting fingerprint is new, and flips it back.
//
// If g is not extendable, Chickering returns a zero count and no error.
func Chickering(g *graph.Graph, sink *measure.Sink, opts ...Option) (*big.Int, error) {
	cfg := newConfig(opts...)

	d0, ok := extend.Extend(g)
	if !ok {
		if cfg.logger != nil {
			cfg.logger.Info("chickering_enumerate: input not extendable", "count", 0)
		}
		return big.NewInt(0), nil
	}

	origUndirected := originalUndirected(g)
	visited := map[string]bool{fingerprint(d0): true}
	reversedOnStack := make(map[[2]int]bool)
	count := big.NewInt(0)

	var recurse func(d *graph.Graph) error
	recurse = func(d *graph.Graph) error {
		if cfg.onEmit != nil {
			if err := cfg.onEmit(d); err != nil {
				return err
			}
		}
		count.Add(count, big.NewInt(1))
		if sink != nil {
			if err := sink.Observe(); err != nil {
				return err
			}
		}

		for _, e := range coveredEdges(d, origUndirected) {
			key := canon(e.From, e.To)
			if reversedOnStack[key] {
				continue
			}
			flipEdge(d, e.From, e.To)
			fp := fingerprint(d)
			if !visited[fp] {
				visited[fp] = true
				reversedOnStack[key] = true
				if cfg.logger != nil {
					cfg.logger.Debug("chickering_enumerate: reverse", "x", e.From, "y", e.To)
				}
				if err := recurse(d); err != nil {
					flipEdge(d, e.To, e.From)
					return err
				}
				delete(reversedOnStack, key)
			}
			flipEdge(d, e.To, e.From)
		}
		return nil
	}

	err := recurse(d0)
	if cfg.logger != nil {
		cfg.logger.Info("chickering_enumerate: done", "count", count.String())
	}
	return count, err
}

// DFS enumerates the same equivalence class as Chickering by walking
// the identical covered-edge-reversal tree, but emits on entry at even
// depth and on exit at odd depth, which bounds the structural Hamming
// distance between consecutively emitted DAGs to at most three.
func DFS(g *graph.Graph, sink *measure.Sink, opts ...Option) (*big.Int, error) {
	cfg := newConfig(opts...)

	d0, ok := extend.Extend(g)
	if !ok {
		if cfg.logger != nil {
			cfg.logger.Info("dfs_enumerate: input not extendable", "count", 0)
		}
		return big.NewInt(0), nil
	}

	origUndirected := originalUndirected(g)
	visited := map[string]bool{fingerprint(d0): true}
	reversedOnStack := make(map[[2]int]bool)
	count := big.NewInt(0)

	emit := func(d *graph.Graph) error {
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

	var recurse func(d *graph.Graph, depth int) error
	recurse = func(d *graph.Graph, depth int) error {
		if depth%2 == 0 {
			if err := emit(d); err != nil {
				return err
			}
		}

		for _, e := range coveredEdges(d, origUndirected) {
			key := canon(e.From, e.To)
			if reversedOnStack[key] {
				continue
			}
			flipEdge(d, e.From, e.To)
			fp := fingerprint(d)
			if !visited[fp] {
				visited[fp] = true
				reversedOnStack[key] = true
				if err := recurse(d, depth+1); err != nil {
					flipEdge(d, e.To, e.From)
					return err
				}
				delete(reversedOnStack, key)
			}
			flipEdge(d, e.To, e.From)
		}

		if depth%2 == 1 {
			if err := emit(d); err != nil {
				return err
			}
		}
		return nil
	}

	err := recurse(d0, 0)
	if cfg.logger != nil {
		cfg.logger.Info("dfs_enumerate: done", "count", count.String())
	}
	return count, err
}
