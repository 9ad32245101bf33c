package enummeek

import (
	"math/big"

	"github.com/mecenum/dagmec/extend"
	"github.com/mecenum/dagmec/graph"
	"github.com/mecenum/dagmec/meek"
	"github.com/mecenum/dagmec/measure"
)

// Enumerate enumerates every DAG Markov-equivalent to g, calling
// sink.Observe once per emission (sink may be nil to skip measurement).
// It returns the count emitted so far and a non-nil error if sink raised
// measure.ErrDeadlineExceeded or measure.ErrMaxEmissions, in which case
// the count is a valid partial tally rather than the complete one.
//
// If skipExtendCheck is false, Enumerate first verifies g is extendable
// and returns a zero count, no error, if it is not -- per this module's
// convention, "not extendable" is a valid empty result, not a failure.
// Callers that already know g is extendable (e.g. because it came from
// extend.Extend) should pass true to skip the redundant check.
func Enumerate(g *graph.Graph, sink *measure.Sink, skipExtendCheck bool, opts ...Option) (*big.Int, error) {
	cfg := newConfig(opts...)
	count := big.NewInt(0)

	if !skipExtendCheck && !extend.IsExtendable(g) {
		if cfg.logger != nil {
			cfg.logger.Info("enumerate_meek: input not extendable", "count", 0)
		}
		return count, nil
	}

	err := recurse(g.Copy(), 1, sink, count, cfg)
	if cfg.logger != nil {
		cfg.logger.Info("enumerate_meek: done", "count", count.String())
	}
	return count, err
}

func recurse(g *graph.Graph, lastidx int, sink *measure.Sink, count *big.Int, cfg *config) error {
	meek.Close(g)

	u, v, found := firstUndirectedFrom(g, lastidx)
	if !found {
		count.Add(count, big.NewInt(1))
		if cfg.onEmit != nil {
			if err := cfg.onEmit(g); err != nil {
				return err
			}
		}
		if sink != nil {
			return sink.Observe()
		}
		return nil
	}

	if cfg.logger != nil {
		cfg.logger.Debug("enumerate_meek: branching", "u", u, "v", v, "lastidx", lastidx)
	}

	forward := g.Copy()
	_ = forward.RemoveEdge(v, u)
	if err := recurse(forward, u, sink, count, cfg); err != nil {
		return err
	}

	backward := g.Copy()
	_ = backward.RemoveEdge(u, v)
	return recurse(backward, u, sink, count, cfg)
}

// firstUndirectedFrom scans adjacent pairs (u,v), u<v, in ascending order,
// skipping any pair whose smaller endpoint is below lastidx, and returns
// the first one that is still undirected.
func firstUndirectedFrom(g *graph.Graph, lastidx int) (u, v int, found bool) {
	for _, p := range g.AdjacentPairs() {
		if p[0] < lastidx {
			continue
		}
		if g.IsUndirected(p[0], p[1]) {
			return p[0], p[1], true
		}
	}
	return 0, 0, false
}
