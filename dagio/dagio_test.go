package dagio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mecenum/dagmec/dagio"
	"github.com/stretchr/testify/suite"
)

type DagioSuite struct {
	suite.Suite
}

func TestDagioSuite(t *testing.T) {
	suite.Run(t, new(DagioSuite))
}

func (s *DagioSuite) TestReadGraphDirected() {
	input := "3 2\n\n1 2\n2 3\n"
	g, err := dagio.ReadGraph(strings.NewReader(input), false)
	s.Require().NoError(err)
	s.Equal(3, g.NVertices())
	s.Equal(2, g.EdgeCount())
	s.True(g.IsDirected(1, 2))
	s.True(g.IsDirected(2, 3))
}

func (s *DagioSuite) TestReadGraphUndirectedFlag() {
	input := "2 1\n\n1 2\n"
	g, err := dagio.ReadGraph(strings.NewReader(input), true)
	s.Require().NoError(err)
	s.Equal(2, g.EdgeCount())
	s.True(g.IsUndirected(1, 2))
}

func (s *DagioSuite) TestReadGraphMalformedHeader() {
	_, err := dagio.ReadGraph(strings.NewReader("not a header\n"), false)
	s.ErrorIs(err, dagio.ErrMalformed)
}

func (s *DagioSuite) TestReadGraphWrongEdgeCount() {
	_, err := dagio.ReadGraph(strings.NewReader("2 2\n\n1 2\n"), false)
	s.ErrorIs(err, dagio.ErrMalformed)
}

func (s *DagioSuite) TestWriteGraphRoundTrip() {
	g, err := dagio.ReadGraph(strings.NewReader("3 2\n\n1 2\n2 3\n"), false)
	s.Require().NoError(err)

	var buf bytes.Buffer
	s.Require().NoError(dagio.WriteGraph(&buf, g))

	g2, err := dagio.ReadGraph(strings.NewReader(buf.String()), false)
	s.Require().NoError(err)
	s.Equal(g.EdgeCount(), g2.EdgeCount())
	s.True(g2.IsDirected(1, 2))
	s.True(g2.IsDirected(2, 3))
}
