package mcs

import (
	"github.com/charmbracelet/log"
	"github.com/mecenum/dagmec/graph"
)

// Option configures Enumerate and EnumeratePDAG.
type Option func(*config)

type config struct {
	logger *log.Logger
	onEmit func(*graph.Graph) error
}

// WithLogger attaches a logger that traces bucket set/reset operations
// at debug level and reports a summary at info level once enumeration
// completes. Nil is equivalent to not passing the option.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithOnEmit registers a callback invoked with each emitted DAG, before
// the measurement sink is observed.
func WithOnEmit(fn func(*graph.Graph) error) Option {
	return func(c *config) {
		c.onEmit = fn
	}
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// undirectedAdjacency returns, for every vertex 1..n, the sorted list of
// vertices reachable by an undirected edge in g.
func undirectedAdjacency(n int, pairs func() [][2]int, isUndirected func(u, v int) bool) [][]int {
	adj := make([][]int, n+1)
	for _, p := range pairs() {
		if isUndirected(p[0], p[1]) {
			adj[p[0]] = append(adj[p[0]], p[1])
			adj[p[1]] = append(adj[p[1]], p[0])
		}
	}
	return adj
}

// components labels the connected components of the graph described by
// adj (an adjacency list over vertices 1..n), using a plain BFS with a
// deterministic (ascending) visit order.
func components(n int, adj [][]int) []int {
	comp := make([]int, n+1)
	id := 0
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
			for _, w := range adj[cur] {
				if comp[w] == 0 {
					comp[w] = id
					queue = append(queue, w)
				}
			}
		}
	}
	return comp
}
