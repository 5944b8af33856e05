package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two triangles over the diagonal 0-1 of the quad (0,0) (2,0) (1,1) (1,-1)
func buildQuad() (g *Graph, vs []Vertex) {
	g = newQuietGraph()
	vs = addVertices(g, 4)
	g.AddFace(vs[0], vs[1], vs[2])
	g.AddFace(vs[0], vs[3], vs[1])
	return
}

func TestFlip(t *testing.T) {
	g, vs := buildQuad()
	e := g.FindHalfedge(vs[0], vs[1]).Edge()
	require.Equal(t, Edge(0), e)
	require.True(t, g.IsFlipOK(e))
	va, vb := g.Apexes(e)
	assert.Equal(t, vs[2], va)
	assert.Equal(t, vs[3], vb)

	g.Flip(e)
	require.NoError(t, g.Check())
	v0, v1 := g.EdgeVertices(e)
	assert.Equal(t, vs[3], v0)
	assert.Equal(t, vs[2], v1)
	assert.Equal(t, InvalidHalfedge, g.FindHalfedge(vs[0], vs[1]))
	assert.Equal(t, map[Vertex]bool{vs[0]: true, vs[2]: true, vs[3]: true}, faceVertexSet(g, 0))
	assert.Equal(t, map[Vertex]bool{vs[1]: true, vs[2]: true, vs[3]: true}, faceVertexSet(g, 1))
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 5, g.NumEdges())
	assert.Equal(t, 2, g.NumFaces())
	for v := range g.Vertices() {
		assert.True(t, g.IsBoundaryVertex(v))
	}
}

func TestFlipTwiceRestoresFaces(t *testing.T) {
	g, vs := buildQuad()
	g.Flip(0)
	require.True(t, g.IsFlipOK(0))
	g.Flip(0)
	require.NoError(t, g.Check())
	v0, v1 := g.EdgeVertices(0)
	assert.ElementsMatch(t, []Vertex{vs[0], vs[1]}, []Vertex{v0, v1})
	sets := []map[Vertex]bool{faceVertexSet(g, 0), faceVertexSet(g, 1)}
	assert.ElementsMatch(t, []map[Vertex]bool{
		{vs[0]: true, vs[1]: true, vs[2]: true},
		{vs[0]: true, vs[1]: true, vs[3]: true},
	}, sets)
}

func TestIsFlipOK(t *testing.T) {
	g, vs := buildQuad()
	// boundary edges never flip
	assert.False(t, g.IsFlipOK(g.FindHalfedge(vs[1], vs[2]).Edge()))
	assert.Panics(t, func() { g.Flip(g.FindHalfedge(vs[1], vs[2]).Edge()) })

	// tetrahedron: every flip would duplicate an edge
	g = newQuietGraph()
	vs = addVertices(g, 4)
	require.True(t, g.AddFace(vs[0], vs[1], vs[2]).IsValid())
	require.True(t, g.AddFace(vs[0], vs[2], vs[3]).IsValid())
	require.True(t, g.AddFace(vs[0], vs[3], vs[1]).IsValid())
	require.True(t, g.AddFace(vs[1], vs[3], vs[2]).IsValid())
	require.NoError(t, g.Check())
	for e := range g.Edges() {
		assert.False(t, g.IsBoundaryEdge(e))
		assert.False(t, g.IsFlipOK(e), "edge %s", e)
	}
}

func TestFlipKeepsBoundaryVertexHalfedge(t *testing.T) {
	rng := newTestRand(t)
	g, _, ok := buildShuffledGrid(3, 3, rng)
	require.True(t, ok)
	for round := 0; round < 200; round++ {
		e := Edge(rng.Intn(g.NumEdges()))
		if !g.IsFlipOK(e) {
			continue
		}
		g.Flip(e)
		require.NoError(t, g.Check(), "after flipping %s", e)
	}
	assert.Equal(t, 1, g.NumVertices()-g.NumEdges()+g.NumFaces())
}
