package reversal_test

import (
	"testing"

	"github.com/mecenum/dagmec/enummeek"
	"github.com/mecenum/dagmec/graph"
	"github.com/mecenum/dagmec/reversal"
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

type ReversalSuite struct {
	suite.Suite
}

func TestReversalSuite(t *testing.T) {
	suite.Run(t, new(ReversalSuite))
}

func (s *ReversalSuite) TestChickeringTriangleCountSix() {
	g := graph.NewGraph(3)
	addUndirected(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 2, 3)

	count, err := reversal.Chickering(g, nil)
	s.Require().NoError(err)
	s.Equal("6", count.String())
}

func (s *ReversalSuite) TestDFSTriangleCountSix() {
	g := graph.NewGraph(3)
	addUndirected(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 2, 3)

	count, err := reversal.DFS(g, nil)
	s.Require().NoError(err)
	s.Equal("6", count.String())
}

func (s *ReversalSuite) TestAgreesWithEnumMeekOnPath() {
	g := graph.NewGraph(4)
	addUndirected(g, 1, 2)
	addUndirected(g, 2, 3)
	addUndirected(g, 3, 4)

	chick, err := reversal.Chickering(g, nil)
	s.Require().NoError(err)
	dfsCount, err := reversal.DFS(g, nil)
	s.Require().NoError(err)
	meekCount, err := enummeek.Enumerate(g, nil, false)
	s.Require().NoError(err)

	s.Equal(meekCount.String(), chick.String())
	s.Equal(meekCount.String(), dfsCount.String())
	s.Equal("4", meekCount.String())
}

// Consecutive DFS emissions must differ in at most three directed edges.
func (s *ReversalSuite) TestDFSConsecutiveEmissionsShdThree() {
	g := graph.NewGraph(4)
	addUndirected(g, 1, 2)
	addUndirected(g, 1, 3)
	addUndirected(g, 1, 4)
	addUndirected(g, 2, 3)
	addUndirected(g, 2, 4)
	addUndirected(g, 3, 4)

	var emitted []*graph.Graph
	_, err := reversal.DFS(g, nil, reversal.WithOnEmit(func(d *graph.Graph) error {
		emitted = append(emitted, d.Copy())
		return nil
	}))
	s.Require().NoError(err)
	s.Require().True(len(emitted) > 1)

	for i := 1; i < len(emitted); i++ {
		s.LessOrEqual(shd(emitted[i-1], emitted[i]), 3)
	}
}

func (s *ReversalSuite) TestNotExtendableYieldsZero() {
	g := graph.NewGraph(4)
	addUndirected(g, 1, 2)
	addUndirected(g, 2, 3)
	addUndirected(g, 3, 4)
	addUndirected(g, 4, 1)

	count, err := reversal.Chickering(g, nil)
	s.Require().NoError(err)
	s.Equal("0", count.String())
}

// shd counts the vertex pairs whose edge differs between a and b: a
// reversed edge counts once, as does an edge present in only one graph.
func shd(a, b *graph.Graph) int {
	setA := make(map[[2]int]bool)
	for _, e := range a.Edges() {
		setA[[2]int{e.From, e.To}] = true
	}
	setB := make(map[[2]int]bool)
	for _, e := range b.Edges() {
		setB[[2]int{e.From, e.To}] = true
	}
	diff := 0
	for e := range setA {
		if !setB[e] {
			diff++
		}
	}
	for e := range setB {
		if !setA[e] && !setA[[2]int{e[1], e[0]}] {
			diff++
		}
	}
	return diff
}
