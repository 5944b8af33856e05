package halfedge

import "github.com/cockroachdb/errors"

// Apexes returns the third vertex of the triangle on each side of e, side 0 first.
// The result is only meaningful when both sides are triangles.
func (g *Graph) Apexes(e Edge) (va, vb Vertex) {
	h0 := g.EdgeHalfedge(e, 0)
	h1 := h0.Opposite()
	return g.ToVertex(g.Next(h0)), g.ToVertex(g.Next(h1))
}

/*
IsFlipOK reports whether e can be flipped: it must be interior, both of its
faces must be triangles, and the two apexes must be distinct and not already
connected, otherwise the flip would create a duplicate edge.
*/
func (g *Graph) IsFlipOK(e Edge) bool {
	if g.IsBoundaryEdge(e) {
		return false
	}
	h0 := e.Halfedge(0)
	h1 := e.Halfedge(1)
	if g.Degree(g.FaceOf(h0)) != 3 || g.Degree(g.FaceOf(h1)) != 3 {
		return false
	}
	va, vb := g.Apexes(e)
	if va == vb {
		return false
	}
	c := g.VertexVertices(va, CCW)
	for ; !c.Done(); c.Next() {
		if c.Value() == vb {
			return false
		}
	}
	return true
}

/*
Flip replaces the diagonal of the quadrilateral formed by the two triangles of
e. For e = (v0,v1) shared by (v0,v1,va) and (v1,v0,vb) the edge becomes
(va,vb) and the triangles become (va,vb,v1) and (vb,va,v0) up to rotation.

The caller must check IsFlipOK first; flipping a non flippable edge panics.
*/
func (g *Graph) Flip(e Edge) {
	if !g.IsFlipOK(e) {
		panic(errors.AssertionFailedf("flip: edge %s is not flippable", e))
	}
	a0 := e.Halfedge(0)
	b0 := e.Halfedge(1)

	a1 := g.halfedges[a0].next
	a2 := g.halfedges[a1].next
	b1 := g.halfedges[b0].next
	b2 := g.halfedges[b1].next

	va0 := g.halfedges[a0].vertex
	va1 := g.halfedges[a1].vertex
	vb0 := g.halfedges[b0].vertex
	vb1 := g.halfedges[b1].vertex

	fa := g.halfedges[a0].face
	fb := g.halfedges[b0].face

	g.setVertex(a0, va1)
	g.setVertex(b0, vb1)

	g.setNext(a0, a2)
	g.setNext(a2, b1)
	g.setNext(b1, a0)

	g.setNext(b0, b2)
	g.setNext(b2, a1)
	g.setNext(a1, b0)

	g.setFace(a1, fb)
	g.setFace(b1, fa)

	g.setFaceHalfedge(fa, a0)
	g.setFaceHalfedge(fb, b0)

	if g.vertices[va0].halfedge == b0 {
		g.setVertexHalfedge(va0, a1)
	}
	if g.vertices[vb0].halfedge == a0 {
		g.setVertexHalfedge(vb0, b1)
	}
}
