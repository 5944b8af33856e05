package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Three triangles around vertex 3: (0,0), (2,0), (1,2) with 3 at (1,1)
func buildFan3() (g *Graph, vs []Vertex) {
	g = newQuietGraph()
	vs = addVertices(g, 4)
	g.AddFace(vs[0], vs[1], vs[3])
	g.AddFace(vs[1], vs[2], vs[3])
	g.AddFace(vs[0], vs[3], vs[2])
	return
}

func TestConstruction(t *testing.T) {
	g, vs := buildFan3()
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 6, g.NumEdges())
	assert.Equal(t, 12, g.NumHalfedges())
	assert.Equal(t, 3, g.NumFaces())
	require.NoError(t, g.Check())

	type row struct {
		to         Vertex
		face       Face
		next, prev Halfedge
	}
	expected := []row{
		{1, 0, 2, 4},
		{0, InvalidFace, 11, 7},
		{3, 0, 4, 0},
		{1, 1, 6, 8},
		{0, 0, 0, 2},
		{3, 2, 9, 10},
		{2, 1, 8, 3},
		{1, InvalidFace, 1, 11},
		{3, 1, 3, 6},
		{2, 2, 10, 5},
		{0, 2, 5, 9},
		{2, InvalidFace, 7, 1},
	}
	for i, r := range expected {
		h := Halfedge(i)
		assert.Equal(t, r.to, g.ToVertex(h), "to_vertex of %s", h)
		assert.Equal(t, r.face, g.FaceOf(h), "face of %s", h)
		assert.Equal(t, r.next, g.Next(h), "next of %s", h)
		assert.Equal(t, r.prev, g.Prev(h), "prev of %s", h)
	}
	assert.Equal(t, []Halfedge{11, 1, 7, 9}, []Halfedge{
		g.VertexHalfedge(vs[0]), g.VertexHalfedge(vs[1]), g.VertexHalfedge(vs[2]), g.VertexHalfedge(vs[3]),
	})
	assert.Equal(t, []Halfedge{4, 3, 10}, []Halfedge{g.FaceHalfedge(0), g.FaceHalfedge(1), g.FaceHalfedge(2)})

	assert.True(t, g.IsBoundaryVertex(vs[0]))
	assert.True(t, g.IsBoundaryVertex(vs[1]))
	assert.True(t, g.IsBoundaryVertex(vs[2]))
	assert.False(t, g.IsBoundaryVertex(vs[3]))
	assert.Equal(t, 3, g.Valence(vs[3]))
	assert.True(t, g.IsTriangleMesh())
}

func TestNavigationIdentities(t *testing.T) {
	g, _ := buildFan3()
	for h := range g.Halfedges() {
		assert.Equal(t, h, g.Opposite(g.Opposite(h)))
		assert.Equal(t, h, g.Next(g.Prev(h)))
		assert.Equal(t, h, g.Prev(g.Next(h)))
		assert.Equal(t, g.ToVertex(h), g.FromVertex(g.Opposite(h)))
		assert.Equal(t, h.Edge(), g.EdgeOf(h))
	}
	for e := range g.Edges() {
		assert.Equal(t, g.IsBoundaryHalfedge(g.EdgeHalfedge(e, 0)) || g.IsBoundaryHalfedge(g.EdgeHalfedge(e, 1)),
			g.IsBoundaryEdge(e))
		assert.Equal(t, e, g.EdgeOf(g.EdgeHalfedge(e, 1)))
	}
	// boundary loop 1 -> 11 -> 7 closes after three steps
	h := Halfedge(1)
	for i := 0; i < 3; i++ {
		assert.True(t, g.IsBoundaryHalfedge(h))
		h = g.Next(h)
	}
	assert.Equal(t, Halfedge(1), h)
}

func TestFindHalfedge(t *testing.T) {
	g, vs := buildFan3()
	h := g.FindHalfedge(vs[0], vs[1])
	require.True(t, h.IsValid())
	assert.Equal(t, vs[0], g.FromVertex(h))
	assert.Equal(t, vs[1], g.ToVertex(h))
	assert.Equal(t, g.Opposite(h), g.FindHalfedge(vs[1], vs[0]))

	v := g.NewVertex()
	assert.Equal(t, InvalidHalfedge, g.FindHalfedge(vs[0], v))
	assert.Equal(t, InvalidHalfedge, g.FindHalfedge(v, vs[0]))
	assert.True(t, g.IsIsolated(v))
	assert.True(t, g.IsBoundaryVertex(v))
}

func TestHandles(t *testing.T) {
	assert.False(t, InvalidVertex.IsValid())
	assert.False(t, InvalidFace.IsValid())
	assert.True(t, Vertex(0).IsValid())
	assert.Equal(t, "v(invalid)", InvalidVertex.String())
	assert.Equal(t, "e7", Edge(7).String())
	assert.Equal(t, Halfedge(14), Edge(7).Halfedge(0))
	assert.Equal(t, Halfedge(15), Edge(7).Halfedge(1))
	assert.Equal(t, Halfedge(15), Halfedge(14).Opposite())
	assert.Equal(t, 1, Halfedge(15).Side())
}

func TestOutOfRangePanics(t *testing.T) {
	g, _ := buildFan3()
	assert.Panics(t, func() { g.Next(Halfedge(12)) })
	assert.Panics(t, func() { g.Next(InvalidHalfedge) })
	assert.Panics(t, func() { g.VertexHalfedge(Vertex(4)) })
	assert.Panics(t, func() { g.FaceHalfedge(InvalidFace) })
	assert.Panics(t, func() { g.IsBoundaryEdge(Edge(6)) })
}

func TestClear(t *testing.T) {
	g, _ := buildFan3()
	g.Clear()
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 0, g.NumFaces())
	assert.NoError(t, g.Check())
	g.Reserve(3, 3, 1)
	vs := addVertices(g, 3)
	assert.Equal(t, Face(0), g.AddTriangle(vs[0], vs[1], vs[2]))
	assert.NoError(t, g.Check())
}
