package measure

import "errors"

var (
	// ErrDeadlineExceeded is returned by Observe when the elapsed time since
	// the sink was started has reached its configured timeout. The caller
	// must unwind the current enumeration; the tally accumulated so far
	// remains valid for descriptive statistics, only the emitted count is
	// incomplete.
	ErrDeadlineExceeded = errors.New("measure: deadline exceeded")

	// ErrMaxEmissions is returned by Observe once the configured emission
	// cap has been reached.
	ErrMaxEmissions = errors.New("measure: maximum emission count reached")
)
