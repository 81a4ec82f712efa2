package graphstore_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/shortpath/graphstore"
)

type StoreSuite struct {
	suite.Suite
	s *graphstore.Store[string]
}

func (s *StoreSuite) SetupTest() {
	s.s = graphstore.NewStore[string]()
}

func (s *StoreSuite) TestAddNodeRoundTrip() {
	require := require.New(s.T())
	payloads := []string{"a", "b", "c", "d", "e"}

	for i, p := range payloads {
		require.Equal(i, s.s.AddNode(p), "ids are assigned sequentially")
	}
	require.Equal(len(payloads), s.s.NodeCount())

	for i, p := range payloads {
		n, err := s.s.Node(i)
		require.NoError(err)
		require.Equal(i, n.ID)
		require.Equal(p, n.Payload)
	}

	want := []graphstore.Node[string]{
		{ID: 0, Payload: "a"}, {ID: 1, Payload: "b"}, {ID: 2, Payload: "c"},
		{ID: 3, Payload: "d"}, {ID: 4, Payload: "e"},
	}
	if diff := cmp.Diff(want, s.s.Nodes()); diff != "" {
		s.T().Errorf("Nodes() mismatch (-want +got):\n%s", diff)
	}
}

func (s *StoreSuite) TestNodeNotFoundCarriesID() {
	require := require.New(s.T())
	s.s.AddNode("a")

	for _, id := range []int{-1, 1, 42} {
		_, err := s.s.Node(id)
		require.ErrorIs(err, graphstore.ErrNodeNotFound)

		var nf *graphstore.NodeNotFoundError
		require.True(errors.As(err, &nf))
		require.Equal(id, nf.ID)
		require.False(s.s.HasNode(id))
	}
	require.True(s.s.HasNode(0))
}

func (s *StoreSuite) TestAddEdgeValidatesEndpoints() {
	require := require.New(s.T())
	a := s.s.AddNode("a")

	err := s.s.AddEdge(a, 7, 1)
	var nf *graphstore.NodeNotFoundError
	require.True(errors.As(err, &nf))
	require.Equal(7, nf.ID)

	// source is checked before destination
	err = s.s.AddEdge(5, 9, 1)
	require.True(errors.As(err, &nf))
	require.Equal(5, nf.ID)

	require.Zero(s.s.EdgeCount(), "failed inserts leave the store unchanged")
}

func (s *StoreSuite) TestAddEdgeRejectsBadWeights() {
	require := require.New(s.T())
	a, b := s.s.AddNode("a"), s.s.AddNode("b")

	for _, w := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(s.s.AddEdge(a, b, w), graphstore.ErrBadWeight, "weight %g", w)
	}
	require.NoError(s.s.AddEdge(a, b, 0), "zero weight is allowed")
	require.Equal(1, s.s.EdgeCount())
}

func (s *StoreSuite) TestEdgeLookupIsDirectional() {
	require := require.New(s.T())
	a, b := s.s.AddNode("a"), s.s.AddNode("b")
	require.NoError(s.s.AddEdge(a, b, 314))

	e, err := s.s.Edge(a, b)
	require.NoError(err)
	require.Equal(graphstore.Edge{From: a, To: b, Weight: 314}, e)

	_, err = s.s.Edge(b, a)
	require.ErrorIs(err, graphstore.ErrEdgeNotFound)
	var enf *graphstore.EdgeNotFoundError
	require.True(errors.As(err, &enf))
	require.Equal(b, enf.From)
	require.Equal(a, enf.To)

	_, err = s.s.Edge(a, 3)
	require.ErrorIs(err, graphstore.ErrNodeNotFound)
}

func (s *StoreSuite) TestParallelEdgesFirstMatchWins() {
	require := require.New(s.T())
	a, b := s.s.AddNode("a"), s.s.AddNode("b")
	require.NoError(s.s.AddEdge(a, b, 5))
	require.NoError(s.s.AddEdge(a, b, 2))

	e, err := s.s.Edge(a, b)
	require.NoError(err)
	require.Equal(5.0, e.Weight)
	require.Equal(2, s.s.EdgeCount())
}

func (s *StoreSuite) TestNeighborsOrderAndIsolation() {
	require := require.New(s.T())
	a, b, c := s.s.AddNode("a"), s.s.AddNode("b"), s.s.AddNode("c")
	require.NoError(s.s.AddEdge(a, c, 2))
	require.NoError(s.s.AddEdge(a, b, 1))

	nbs, err := s.s.Neighbors(a)
	require.NoError(err)
	require.Equal([]graphstore.Edge{{From: a, To: c, Weight: 2}, {From: a, To: b, Weight: 1}}, nbs)

	// mutating the returned slice must not leak into the store
	nbs[0].Weight = 99
	again, err := s.s.Neighbors(a)
	require.NoError(err)
	require.Equal(2.0, again[0].Weight)

	leaf, err := s.s.Neighbors(b)
	require.NoError(err)
	require.NotNil(leaf)
	require.Empty(leaf)

	_, err = s.s.Neighbors(9)
	require.ErrorIs(err, graphstore.ErrNodeNotFound)
}

func (s *StoreSuite) TestEdgesOrderedBySource() {
	require := require.New(s.T())
	for _, p := range []string{"a", "b", "c"} {
		s.s.AddNode(p)
	}
	require.NoError(s.s.AddEdge(2, 0, 3))
	require.NoError(s.s.AddEdge(0, 1, 1))
	require.NoError(s.s.AddEdge(0, 2, 2))

	want := []graphstore.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 2},
		{From: 2, To: 0, Weight: 3},
	}
	if diff := cmp.Diff(want, s.s.Edges()); diff != "" {
		s.T().Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func TestWithCapacity(t *testing.T) {
	s := graphstore.NewStore[int](graphstore.WithCapacity(16))
	require.Zero(t, s.NodeCount())
	require.Equal(t, 0, s.AddNode(10))

	require.Panics(t, func() { graphstore.WithCapacity(-1) })
}

func TestErrorMessages(t *testing.T) {
	require.Equal(t, "graphstore: node not found: id 3", (&graphstore.NodeNotFoundError{ID: 3}).Error())
	require.Equal(t, "graphstore: edge not found: 1→2", (&graphstore.EdgeNotFoundError{From: 1, To: 2}).Error())
}
