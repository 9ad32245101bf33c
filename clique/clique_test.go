package clique_test

import (
	"testing"

	"github.com/mecenum/dagmec/clique"
	"github.com/mecenum/dagmec/graph"
	"github.com/stretchr/testify/suite"
)

func addUndirected(g *graph.Graph, u, v int) {
	if err := g.AddEdge(u, v); err != nil {
		panic(err)
	}
	if err := g.AddEdge(v, u); err != nil {
		panic(err)
	}
}

type CliqueSuite struct {
	suite.Suite
}

func TestCliqueSuite(t *testing.T) {
	suite.Run(t, new(CliqueSuite))
}

func (s *CliqueSuite) TestTriangle() {
	g := graph.NewGraph(3)
	addUndirected(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 2, 3)
	s.Equal("6", clique.Count(g).String())
}

func (s *CliqueSuite) TestPathOfFour() {
	g := graph.NewGraph(4)
	addUndirected(g, 1, 2)
	addUndirected(g, 2, 3)
	addUndirected(g, 3, 4)
	s.Equal("4", clique.Count(g).String())
}

func (s *CliqueSuite) TestK4() {
	g := graph.NewGraph(4)
	for u := 1; u <= 4; u++ {
		for v := u + 1; v <= 4; v++ {
			addUndirected(g, u, v)
		}
	}
	s.Equal("24", clique.Count(g).String())
}

func (s *CliqueSuite) TestTwoDisconnectedTriangles() {
	g := graph.NewGraph(6)
	addUndirected(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 2, 3)
	addUndirected(g, 4, 5)
	addUndirected(g, 4, 6)
	addUndirected(g, 5, 6)
	s.Equal("36", clique.Count(g).String())
}
