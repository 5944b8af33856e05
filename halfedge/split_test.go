package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitInterior(t *testing.T) {
	g, vs := buildQuad()
	e := g.FindHalfedge(vs[0], vs[1]).Edge()
	v := g.SplitEdge(e)
	require.NoError(t, g.Check())
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, 8, g.NumEdges())
	assert.Equal(t, 4, g.NumFaces())
	assert.True(t, g.IsTriangleMesh())

	v0, v1 := g.EdgeVertices(e)
	assert.Equal(t, v, v0)
	assert.Equal(t, vs[1], v1)
	assert.True(t, g.FindHalfedge(v, vs[0]).IsValid())
	assert.Equal(t, InvalidHalfedge, g.FindHalfedge(vs[0], vs[1]))
	assert.Equal(t, 4, g.Valence(v))
	assert.ElementsMatch(t, []Vertex{vs[0], vs[1], vs[2], vs[3]}, g.VertexVertices(v, CCW).Collect())
	assert.False(t, g.IsBoundaryVertex(v))
}

func TestSplitBoundary(t *testing.T) {
	g := newQuietGraph()
	vs := addVertices(g, 3)
	require.True(t, g.AddFace(vs[0], vs[1], vs[2]).IsValid())
	b := g.FindHalfedge(vs[1], vs[0]).Edge()
	require.True(t, g.IsBoundaryEdge(b))

	v := g.SplitEdge(b)
	require.NoError(t, g.Check())
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 5, g.NumEdges())
	assert.Equal(t, 2, g.NumFaces())
	assert.True(t, g.IsBoundaryVertex(v))
	assert.Equal(t, 3, g.Valence(v))
	assert.Len(t, g.VertexFaces(v, CCW).Collect(), 2)
}

func TestIsSplitOK(t *testing.T) {
	g, vs := buildQuad()
	assert.False(t, g.IsSplitOK(0, vs[2]))
	assert.Panics(t, func() { g.Split(0, vs[2]) })

	g = newQuietGraph()
	vs = addVertices(g, 5)
	require.True(t, g.AddFace(vs[0], vs[1], vs[2], vs[3]).IsValid())
	v := g.NewVertex()
	assert.False(t, g.IsSplitOK(g.FindHalfedge(vs[0], vs[1]).Edge(), v))
}

func TestSplitRepeated(t *testing.T) {
	rng := newTestRand(t)
	g, _, ok := buildShuffledGrid(3, 2, rng)
	require.True(t, ok)
	for i := 0; i < 30; i++ {
		g.SplitEdge(Edge(rng.Intn(g.NumEdges())))
		require.NoError(t, g.Check(), "split %d", i)
	}
	assert.Equal(t, 1, g.NumVertices()-g.NumEdges()+g.NumFaces())
	assert.True(t, g.IsTriangleMesh())
}
