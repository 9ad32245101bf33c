package reversal

import (
	"github.com/charmbracelet/log"
	"github.com/mecenum/dagmec/graph"
)

// Option configures Chickering and DFS.
type Option func(*config)

type config struct {
	logger *log.Logger
	onEmit func(*graph.Graph) error
}

// WithLogger attaches a logger that traces covered-edge reversal at
// debug level and reports a summary at info level once enumeration
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
