package measure

import (
	"fmt"
	"time"
)

// Observe records a single emission event. It must be called exactly once
// per DAG an enumerator emits, in emission order.
//
// Returns ErrMaxEmissions if the configured emission cap has just been
// reached (the emission is still counted), or ErrDeadlineExceeded if the
// configured timeout has just elapsed. Either error means the caller must
// stop enumerating; both are non-nil only together with a fully updated
// Stats snapshot.
func (s *Sink) Observe() error {
	now := time.Now()
	if s.n == 0 {
		s.start = now
		s.last = now
		s.min = 0
		s.max = 0
	}

	elapsedDur := now.Sub(s.last)
	elapsed := elapsedDur.Seconds()
	s.n++
	if s.n == 1 {
		s.min, s.max = elapsed, elapsed
	} else {
		if elapsed < s.min {
			s.min = elapsed
		}
		if elapsed > s.max {
			s.max = elapsed
		}
	}

	delta := elapsed - s.mean
	s.mean += delta / float64(s.n)
	delta2 := elapsed - s.mean
	s.m2 += delta * delta2

	s.last = now

	if s.logger != nil {
		s.logger.Debug("emission observed", "n", s.n, "elapsed_s", elapsed)
	}

	if s.csvWriter != nil {
		_ = s.csvWriter.Write([]string{
			fmt.Sprintf("%d", s.n),
			fmt.Sprintf("%d", elapsedDur.Nanoseconds()),
		})
	}

	if s.maxEmissions > 0 && s.n >= s.maxEmissions {
		return ErrMaxEmissions
	}
	if s.timeoutSeconds > 0 && now.Sub(s.start).Seconds() >= s.timeoutSeconds {
		return ErrDeadlineExceeded
	}
	return nil
}
