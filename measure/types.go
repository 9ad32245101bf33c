package measure

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Stats is the final aggregate a Sink reports once enumeration completes.
type Stats struct {
	Min, Max, Mean, Std float64
	N                   int64
}

// Sink accumulates running statistics over inter-emission latency and
// enforces a deadline and an optional emission cap. It is not safe for
// concurrent use; each enumeration call owns one Sink.
type Sink struct {
	timeoutSeconds float64
	maxEmissions   int64
	logger         *log.Logger

	csvFile   *os.File
	csvWriter *csv.Writer

	start, last time.Time
	n           int64
	min, max    float64
	mean, m2    float64
}

// Option configures a Sink at construction time.
type Option func(*Sink)

// WithTimeout sets the deadline, in seconds, measured from the Sink's
// first Observe call. Panics if seconds <= 0.
func WithTimeout(seconds float64) Option {
	if seconds <= 0 {
		panic("measure: WithTimeout(seconds<=0)")
	}
	return func(s *Sink) {
		s.timeoutSeconds = seconds
	}
}

// WithMaxEmissions caps the number of Observe calls the Sink accepts
// before returning ErrMaxEmissions. Panics if n <= 0.
func WithMaxEmissions(n int64) Option {
	if n <= 0 {
		panic("measure: WithMaxEmissions(n<=0)")
	}
	return func(s *Sink) {
		s.maxEmissions = n
	}
}

// WithLogger attaches a logger that receives a debug trace per Observe
// call. Stats does not log. Passing nil is equivalent to not calling
// WithLogger (silent).
func WithLogger(l *log.Logger) Option {
	return func(s *Sink) {
		s.logger = l
	}
}

// WithDelayLog appends "n,elapsed_ns" to the file at path for every
// Observe call. Returns an error if the file cannot be created; the
// Option returned on error is nil.
func WithDelayLog(path string) (Option, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("measure: opening delay log: %w", err)
	}
	w := csv.NewWriter(f)
	return func(s *Sink) {
		s.csvFile = f
		s.csvWriter = w
	}, nil
}

// New constructs a Sink with no deadline and no emission cap unless
// overridden by opts.
func New(opts ...Option) *Sink {
	s := &Sink{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close flushes and closes the delay log, if one was configured. Safe to
// call on a Sink with no delay log.
func (s *Sink) Close() error {
	if s.csvWriter == nil {
		return nil
	}
	s.csvWriter.Flush()
	if err := s.csvWriter.Error(); err != nil {
		return fmt.Errorf("measure: flushing delay log: %w", err)
	}
	return s.csvFile.Close()
}

// Stats returns the aggregate accumulated so far. Std is 0 when fewer
// than two samples have been observed.
func (s *Sink) Stats() Stats {
	std := 0.0
	if s.n > 1 {
		std = math.Sqrt(s.m2 / float64(s.n-1))
	}
	return Stats{Min: s.min, Max: s.max, Mean: s.mean, Std: std, N: s.n}
}
