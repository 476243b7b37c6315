package dfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgraph/core"
)

func buildAcyclic(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id, core.VertexTransformer))
	}
	require.NoError(t, g.AddEdge("a", "b", core.EdgeData))
	require.NoError(t, g.AddEdge("b", "c", core.EdgeData))

	return g
}

func buildCyclic(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id, core.VertexTransformer))
	}
	require.NoError(t, g.AddEdge("a", "b", core.EdgeData))
	require.NoError(t, g.AddEdge("b", "c", core.EdgeData))
	require.NoError(t, g.AddEdge("c", "a", core.EdgeFit))

	return g
}

func TestDetectCycles_NilGraph(t *testing.T) {
	cyclic, cycles, err := DetectCycles(nil)
	require.NoError(t, err)
	assert.False(t, cyclic)
	assert.Nil(t, cycles)
}

func TestDetectCycles_AcyclicGraph(t *testing.T) {
	cyclic, cycles, err := DetectCycles(buildAcyclic(t))
	require.NoError(t, err)
	assert.False(t, cyclic)
	assert.Empty(t, cycles)
}

func TestDetectCycles_FindsSimpleCycle(t *testing.T) {
	cyclic, cycles, err := DetectCycles(buildCyclic(t))
	require.NoError(t, err)
	assert.True(t, cyclic)
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycles[0])
}

func TestDetectCycles_DiscoveredFromEitherMemberCollapseToOneEntry(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"x", "y", "z"} {
		require.NoError(t, g.AddVertex(id, core.VertexTransformer))
	}
	require.NoError(t, g.AddEdge("x", "y", core.EdgeData))
	require.NoError(t, g.AddEdge("y", "z", core.EdgeData))
	require.NoError(t, g.AddEdge("z", "x", core.EdgeData))
	// An extra vertex w outside the cycle sorts first, so the DFS starts
	// at w and enters the cycle at y rather than x; the cycle must still
	// be reported once, in its canonical rotation.
	require.NoError(t, g.AddVertex("w", core.VertexTransformer))
	require.NoError(t, g.AddEdge("w", "y", core.EdgeData))

	_, cycles, err := DetectCycles(g)
	require.NoError(t, err)
	assert.Len(t, cycles, 1)
}

func TestCanonicalCycle_SameCycleRotationsShareOneSignature(t *testing.T) {
	sigABC, _ := canonicalCycle([]string{"a", "b", "c", "a"})
	sigBCA, _ := canonicalCycle([]string{"b", "c", "a", "b"})
	sigCAB, _ := canonicalCycle([]string{"c", "a", "b", "c"})

	assert.Equal(t, sigABC, sigBCA)
	assert.Equal(t, sigABC, sigCAB)
}

func TestMinimalRotation_PicksLexicographicallySmallestStart(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, minimalRotation([]string{"b", "c", "a"}))
	assert.Equal(t, []string{"a", "b", "c"}, minimalRotation([]string{"c", "a", "b"}))
	assert.Equal(t, []string{"a", "b", "c"}, minimalRotation([]string{"a", "b", "c"}))
}

func TestCompareVertices_OrdersLexicographically(t *testing.T) {
	assert.Equal(t, -1, compareVertices([]string{"a", "b"}, []string{"a", "c"}))
	assert.Equal(t, 1, compareVertices([]string{"b", "a"}, []string{"a", "z"}))
	assert.Equal(t, 0, compareVertices([]string{"a", "b"}, []string{"a", "b"}))
}

func TestReversedVertices_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c"}
	out := reversedVertices(in)

	assert.Equal(t, []string{"c", "b", "a"}, out)
	assert.Equal(t, []string{"a", "b", "c"}, in)
}
