package mcs_test

import (
	"testing"

	"github.com/mecenum/dagmec/enummeek"
	"github.com/mecenum/dagmec/graph"
	"github.com/mecenum/dagmec/mcs"
	"github.com/mecenum/dagmec/topo"
	"github.com/stretchr/testify/suite"
)

func mustAddEdge(g *graph.Graph, u, v int) {
	if err := g.AddEdge(u, v); err != nil {
		panic(err)
	}
}

func addUndirected(g *graph.Graph, u, v int) {
	mustAddEdge(g, u, v)
	mustAddEdge(g, v, u)
}

type MCSSuite struct {
	suite.Suite
}

func TestMCSSuite(t *testing.T) {
	suite.Run(t, new(MCSSuite))
}

func (s *MCSSuite) TestTriangleCountSix() {
	g := graph.NewGraph(3)
	addUndirected(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 2, 3)

	count, err := mcs.Enumerate(g, nil)
	s.Require().NoError(err)
	s.Equal("6", count.String())
}

func (s *MCSSuite) TestPathCountFour() {
	g := graph.NewGraph(4)
	addUndirected(g, 1, 2)
	addUndirected(g, 2, 3)
	addUndirected(g, 3, 4)

	count, err := mcs.Enumerate(g, nil)
	s.Require().NoError(err)
	s.Equal("4", count.String())
}

func (s *MCSSuite) TestTwoTrianglesCountThirtySix() {
	g := graph.NewGraph(6)
	addUndirected(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 2, 3)
	addUndirected(g, 4, 5)
	addUndirected(g, 4, 6)
	addUndirected(g, 5, 6)

	count, err := mcs.Enumerate(g, nil)
	s.Require().NoError(err)
	s.Equal("36", count.String())
}

// Every emitted DAG must share g's skeleton and be acyclic.
func (s *MCSSuite) TestEmittedDAGsAreSoundTriangle() {
	g := graph.NewGraph(3)
	addUndirected(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 2, 3)

	var emitted []*graph.Graph
	_, err := mcs.Enumerate(g, nil, mcs.WithOnEmit(func(d *graph.Graph) error {
		emitted = append(emitted, d)
		return nil
	}))
	s.Require().NoError(err)
	s.Len(emitted, 6)
	for _, d := range emitted {
		s.Equal(3, d.EdgeCount())
		s.True(isAcyclic(d))
	}
}

// cpdag_enumerate and enumerate_meek must agree on a K4.
func (s *MCSSuite) TestAgreesWithEnumMeekOnK4() {
	g := graph.NewGraph(4)
	for u := 1; u <= 4; u++ {
		for v := u + 1; v <= 4; v++ {
			addUndirected(g, u, v)
		}
	}
	mcsCount, err := mcs.Enumerate(g, nil)
	s.Require().NoError(err)
	meekCount, err := enummeek.Enumerate(g, nil, false)
	s.Require().NoError(err)
	s.Equal(meekCount.String(), mcsCount.String())
	s.Equal("24", mcsCount.String())
}

// pdag_enumerate on a graph with one background-directed edge must keep
// that edge's orientation across every emitted DAG.
func (s *MCSSuite) TestEnumeratePDAGPreservesBackgroundEdge() {
	g := graph.NewGraph(3)
	mustAddEdge(g, 1, 2)
	addUndirected(g, 2, 3)
	addUndirected(g, 1, 3)

	var emitted []*graph.Graph
	count, err := mcs.EnumeratePDAG(g, nil, mcs.WithOnEmit(func(d *graph.Graph) error {
		emitted = append(emitted, d)
		return nil
	}))
	s.Require().NoError(err)
	s.NotEqual("0", count.String())
	for _, d := range emitted {
		s.True(d.IsDirected(1, 2))
		s.True(isAcyclic(d))
	}
}

// EnumeratePDAG must agree with enummeek.Enumerate even when the
// background-directed edge sits inside a chain component alongside
// undirected siblings: the bucket-label axis that tracks visited
// in-component neighbors has to count neighbors reached through that
// directed edge exactly like it counts undirected ones, or valid
// extensions go missing.
func (s *MCSSuite) TestEnumeratePDAGAgreesWithEnumMeekOnMixedComponent() {
	g := graph.NewGraph(3)
	mustAddEdge(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 2, 3)

	pdagCount, err := mcs.EnumeratePDAG(g, nil)
	s.Require().NoError(err)

	meekCount, err := enummeek.Enumerate(g, nil, false)
	s.Require().NoError(err)

	s.Equal(meekCount.String(), pdagCount.String())
	s.Equal("3", pdagCount.String())
}

func (s *MCSSuite) TestEnumeratePDAGNotExtendableYieldsZero() {
	g := graph.NewGraph(4)
	addUndirected(g, 1, 2)
	addUndirected(g, 2, 3)
	addUndirected(g, 3, 4)
	addUndirected(g, 4, 1)

	count, err := mcs.EnumeratePDAG(g, nil)
	s.Require().NoError(err)
	s.Equal("0", count.String())
}

func isAcyclic(g *graph.Graph) bool {
	return topo.IsAcyclic(g)
}
