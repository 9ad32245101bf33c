package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mecenum/dagmec/graph"
)

type GraphSuite struct {
	suite.Suite
	g *graph.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = graph.NewGraph(5)
}

func (s *GraphSuite) TestAddHasRemoveEdge() {
	r := require.New(s.T())
	r.False(s.g.HasEdge(1, 2))

	r.NoError(s.g.AddEdge(1, 2))
	r.True(s.g.HasEdge(1, 2))
	r.False(s.g.HasEdge(2, 1))
	r.Equal(1, s.g.EdgeCount())

	// idempotent
	r.NoError(s.g.AddEdge(1, 2))
	r.Equal(1, s.g.EdgeCount())

	r.NoError(s.g.RemoveEdge(1, 2))
	r.False(s.g.HasEdge(1, 2))
	r.ErrorIs(s.g.RemoveEdge(1, 2), graph.ErrEdgeNotFound)
}

func (s *GraphSuite) TestSelfLoopRejected() {
	r := require.New(s.T())
	r.ErrorIs(s.g.AddEdge(3, 3), graph.ErrSelfLoop)
}

func (s *GraphSuite) TestVertexRange() {
	r := require.New(s.T())
	r.ErrorIs(s.g.AddEdge(0, 1), graph.ErrVertexRange)
	r.ErrorIs(s.g.AddEdge(1, 6), graph.ErrVertexRange)
}

func (s *GraphSuite) TestDirectedVsUndirected() {
	r := require.New(s.T())
	r.NoError(s.g.AddEdge(1, 2))
	r.True(s.g.IsDirected(1, 2))
	r.False(s.g.IsUndirected(1, 2))

	r.NoError(s.g.AddEdge(2, 1))
	r.False(s.g.IsDirected(1, 2))
	r.True(s.g.IsUndirected(1, 2))
}

func (s *GraphSuite) TestNeighbors() {
	r := require.New(s.T())
	r.NoError(s.g.AddEdge(1, 2))
	r.NoError(s.g.AddEdge(3, 1))
	r.NoError(s.g.AddEdge(1, 4))

	r.Equal([]int{2, 4}, s.g.OutNeighbors(1))
	r.Equal([]int{3}, s.g.InNeighbors(1))
	r.Equal([]int{2, 3, 4}, s.g.AllNeighbors(1))
}

func (s *GraphSuite) TestCopyIsIndependent() {
	r := require.New(s.T())
	r.NoError(s.g.AddEdge(1, 2))
	cp := s.g.Copy()
	r.NoError(cp.AddEdge(2, 3))
	r.False(s.g.HasEdge(2, 3))
	r.True(cp.HasEdge(1, 2))
}

func (s *GraphSuite) TestAdjacentPairsDeterministicOrder() {
	r := require.New(s.T())
	r.NoError(s.g.AddEdge(3, 1))
	r.NoError(s.g.AddEdge(1, 3))
	r.NoError(s.g.AddEdge(2, 4))
	r.Equal([][2]int{{1, 3}, {2, 4}}, s.g.AdjacentPairs())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
