// Package core_test exercises the public Graph API: vertex arena,
// edge lifecycle, symmetric helpers and adjacency.
package core_test

import (
	"testing"

	"github.com/katalvlaran/contagion/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertices_Contiguous(t *testing.T) {
	g := core.NewGraph()
	first, err := g.AddVertices(3)
	require.NoError(t, err)
	assert.Equal(t, 0, first)

	first, err = g.AddVertices(2)
	require.NoError(t, err)
	assert.Equal(t, 3, first)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, g.Vertices())
	assert.True(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(5))
	assert.False(t, g.HasVertex(-1))

	_, err = g.AddVertices(-1)
	assert.ErrorIs(t, err, core.ErrNegativeCount)
}

func TestWithVertices_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { core.WithVertices(-2) })
}

func TestAddEdge_Errors(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))

	require.NoError(t, g.AddEdge(0, 1))
	assert.ErrorIs(t, g.AddEdge(0, 1), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(2, 2), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(0, 3), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge(-1, 0), core.ErrVertexNotFound)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestSymmetricEdges_AllOrNothing(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))

	require.NoError(t, g.AddEdge(1, 0))
	// 0→1 is free but 1→0 already exists: nothing must be added.
	assert.ErrorIs(t, g.AddSymmetricEdge(0, 1), core.ErrMultiEdgeNotAllowed)
	assert.False(t, g.HasEdge(0, 1))
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.AddSymmetricEdge(1, 2))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))

	// 1→0 exists but 0→1 does not: nothing must be removed.
	assert.ErrorIs(t, g.RemoveSymmetricEdge(1, 0), core.ErrEdgeNotFound)
	assert.True(t, g.HasEdge(1, 0))

	require.NoError(t, g.RemoveSymmetricEdge(2, 1))
	assert.Equal(t, 1, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge(2, 1), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge(7, 1), core.ErrVertexNotFound)
}

func TestEdges_SortedAndNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4))
	for _, e := range []core.Edge{{3, 0}, {0, 2}, {0, 1}, {2, 3}, {1, 0}} {
		require.NoError(t, g.AddEdge(e.From, e.To))
	}

	assert.Equal(t, []core.Edge{{0, 1}, {0, 2}, {1, 0}, {2, 3}, {3, 0}}, g.Edges())

	out, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)

	in, err := g.InNeighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, in)

	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 2, g.InDegree(0))
	assert.Equal(t, 0, g.OutDegree(9))

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	// Returned slices are copies.
	out[0] = 3
	again, _ := g.Neighbors(0)
	assert.Equal(t, []int{1, 2}, again)
}

func TestIsSymmetric(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	require.NoError(t, g.AddSymmetricEdge(0, 1))
	assert.True(t, g.IsSymmetric())

	require.NoError(t, g.AddEdge(1, 2))
	assert.False(t, g.IsSymmetric())
}

func TestAdjacency_CSR(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 0))

	offsets, targets := g.Adjacency()
	assert.Equal(t, []int{0, 2, 2, 3}, offsets)
	assert.Equal(t, []int{1, 2, 0}, targets)
}

func TestEdge_MirrorAndString(t *testing.T) {
	e := core.Edge{From: 4, To: 7}
	assert.Equal(t, core.Edge{From: 7, To: 4}, e.Mirror())
	assert.Equal(t, "4:7", e.String())
}
