package enummeek

import (
	"github.com/charmbracelet/log"
	"github.com/mecenum/dagmec/graph"
)

// Option configures Enumerate.
type Option func(*config)

type config struct {
	logger *log.Logger
	onEmit func(*graph.Graph) error
}

// WithLogger attaches a logger that traces pivot selection and branch
// recursion at debug level and reports a summary at info level once
// enumeration completes. Nil is equivalent to not passing the option.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithOnEmit registers a callback invoked with each emitted DAG, before
// the measurement sink is observed. An error from fn aborts enumeration
// and is returned from Enumerate; the count reflects everything emitted
// up to and including the failing call. This is the hook a file-writing
// collaborator (or a test asserting soundness) attaches to.
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
