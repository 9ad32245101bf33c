package measure_test

import (
	"os"
	"testing"
	"time"

	"github.com/mecenum/dagmec/measure"
	"github.com/stretchr/testify/suite"
)

type SinkSuite struct {
	suite.Suite
}

func TestSinkSuite(t *testing.T) {
	suite.Run(t, new(SinkSuite))
}

func (s *SinkSuite) TestObserveAccumulatesCount() {
	sink := measure.New()
	for i := 0; i < 5; i++ {
		s.Require().NoError(sink.Observe())
	}
	st := sink.Stats()
	s.Equal(int64(5), st.N)
	s.GreaterOrEqual(st.Std, 0.0)
}

func (s *SinkSuite) TestMaxEmissionsStopsEnumeration() {
	sink := measure.New(measure.WithMaxEmissions(3))
	var lastErr error
	for i := 0; i < 3; i++ {
		lastErr = sink.Observe()
	}
	s.ErrorIs(lastErr, measure.ErrMaxEmissions)
}

func (s *SinkSuite) TestDeadlineExceeded() {
	sink := measure.New(measure.WithTimeout(0.001))
	s.Require().NoError(sink.Observe())
	time.Sleep(5 * time.Millisecond)
	err := sink.Observe()
	s.ErrorIs(err, measure.ErrDeadlineExceeded)
}

func (s *SinkSuite) TestDelayLogWritesRows() {
	path := s.T().TempDir() + "/delay.csv"
	opt, err := measure.WithDelayLog(path)
	s.Require().NoError(err)
	sink := measure.New(opt)
	s.Require().NoError(sink.Observe())
	s.Require().NoError(sink.Observe())
	s.Require().NoError(sink.Close())

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.NotEmpty(data)
}

func (s *SinkSuite) TestWithTimeoutPanicsOnNonPositive() {
	s.Panics(func() { measure.WithTimeout(0) })
}
