// Package measure implements the measurement sink every enumerator in this
// module calls once per emitted DAG: a running-statistics accumulator over
// inter-emission latency plus a cooperative deadline check.
//
// Stats are kept with Welford's online algorithm so mean and variance are
// available without buffering every sample. A Sink optionally mirrors each
// sample to a CSV file for offline delay analysis, and can be given an
// upper bound on the number of emissions it will accept before reporting
// ErrMaxEmissions, which callers use to cap memory growth in the
// Chickering/DFS enumerators' visited-set.
package measure
