package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex_IdempotentOnDuplicate(t *testing.T) {
	g := NewGraph()

	require.NoError(t, g.AddVertex("a", VertexSource))
	require.NoError(t, g.AddVertex("a", VertexEstimator)) // no-op, kind untouched

	v := g.Vertices()
	require.Len(t, v, 1)
	assert.Equal(t, VertexSource, v[0].Kind)
}

func TestAddVertex_RejectsEmptyID(t *testing.T) {
	g := NewGraph()

	assert.ErrorIs(t, g.AddVertex("", VertexSource), ErrEmptyVertexID)
}

func TestAddEdge_RejectsUnknownEndpoints(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a", VertexSource))

	assert.ErrorIs(t, g.AddEdge("a", "b", EdgeData), ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("b", "a", EdgeData), ErrVertexNotFound)
}

func TestAddEdge_RejectsDuplicatePair(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a", VertexSource))
	require.NoError(t, g.AddVertex("b", VertexTransformer))
	require.NoError(t, g.AddEdge("a", "b", EdgeData))

	assert.ErrorIs(t, g.AddEdge("a", "b", EdgeFit), ErrDuplicateEdge)
}

func TestNeighbors_SortedByTo(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(id, VertexTransformer))
	}
	require.NoError(t, g.AddEdge("a", "d", EdgeData))
	require.NoError(t, g.AddEdge("a", "b", EdgeData))
	require.NoError(t, g.AddEdge("a", "c", EdgeFit))

	neighbors, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Len(t, neighbors, 3)
	assert.Equal(t, []string{"b", "c", "d"}, []string{neighbors[0].To, neighbors[1].To, neighbors[2].To})
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := NewGraph()
	_, err := g.Neighbors("missing")
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestStats_CountsDataAndFitEdgesSeparately(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id, VertexTransformer))
	}
	require.NoError(t, g.AddEdge("a", "b", EdgeData))
	require.NoError(t, g.AddEdge("a", "c", EdgeFit))

	stats := g.Stats()
	assert.Equal(t, 3, stats.VertexCount)
	assert.Equal(t, 2, stats.EdgeCount)
	assert.Equal(t, 1, stats.DataEdges)
	assert.Equal(t, 1, stats.FitEdges)
}

func TestVerticesAndEdges_SortedDeterministically(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id, VertexTransformer))
	}
	require.NoError(t, g.AddEdge("c", "a", EdgeData))
	require.NoError(t, g.AddEdge("b", "a", EdgeData))

	verts := g.Vertices()
	ids := []string{verts[0].ID, verts[1].ID, verts[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	edges := g.Edges()
	assert.Equal(t, "b", edges[0].From)
	assert.Equal(t, "c", edges[1].From)
}
