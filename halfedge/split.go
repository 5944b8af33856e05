package halfedge

import "github.com/cockroachdb/errors"

// IsSplitOK reports whether Split(e, v) is allowed: v must be isolated and every face on e a triangle
func (g *Graph) IsSplitOK(e Edge, v Vertex) bool {
	if !g.IsIsolated(v) {
		return false
	}
	for side := 0; side < 2; side++ {
		if f := g.FaceOf(g.EdgeHalfedge(e, side)); f.IsValid() && g.Degree(f) != 3 {
			return false
		}
	}
	return true
}

// SplitEdge creates a new vertex and splits e with it, see Split
func (g *Graph) SplitEdge(e Edge) (v Vertex) {
	g.checkEdge(e)
	v = g.NewVertex()
	g.Split(e, v)
	return
}

/*
Split inserts the isolated vertex v in the middle of e. The edge (v0,v1)
becomes (v0,v) plus (v,v1), with e keeping the (v,v1) part, and each triangle
incident to e is fanned into two triangles through a new edge from v to its
apex. A boundary side stays boundary.

Split panics unless IsSplitOK(e, v).
*/
func (g *Graph) Split(e Edge, v Vertex) {
	if !g.IsSplitOK(e, v) {
		panic(errors.AssertionFailedf("split: edge %s can not be split with %s", e, v))
	}
	h0 := e.Halfedge(0)
	o0 := e.Halfedge(1)

	v2 := g.halfedges[o0].vertex

	e1 := g.newEdge(v, v2)
	t1 := e1.Opposite()

	f0 := g.halfedges[h0].face
	f3 := g.halfedges[o0].face

	g.setVertexHalfedge(v, h0)
	g.setVertex(o0, v)

	if f0.IsValid() {
		h1 := g.halfedges[h0].next
		h2 := g.halfedges[h1].next

		v1 := g.halfedges[h1].vertex

		e0 := g.newEdge(v, v1)
		t0 := e0.Opposite()

		f1 := g.newFace(h2)
		g.setFaceHalfedge(f0, h0)

		g.setFace(h1, f0)
		g.setFace(t0, f0)
		g.setFace(h0, f0)

		g.setFace(h2, f1)
		g.setFace(t1, f1)
		g.setFace(e0, f1)

		g.setNext(h0, h1)
		g.setNext(h1, t0)
		g.setNext(t0, h0)

		g.setNext(e0, h2)
		g.setNext(h2, t1)
		g.setNext(t1, e0)
	} else {
		g.setNext(g.halfedges[h0].prev, t1)
		g.setNext(t1, h0)
	}

	if f3.IsValid() {
		o1 := g.halfedges[o0].next
		o2 := g.halfedges[o1].next

		v3 := g.halfedges[o1].vertex

		e2 := g.newEdge(v, v3)
		t2 := e2.Opposite()

		f2 := g.newFace(o1)
		g.setFaceHalfedge(f3, o0)

		g.setFace(o1, f2)
		g.setFace(t2, f2)
		g.setFace(e1, f2)

		g.setFace(o2, f3)
		g.setFace(o0, f3)
		g.setFace(e2, f3)

		g.setNext(e1, o1)
		g.setNext(o1, t2)
		g.setNext(t2, e1)

		g.setNext(o0, e2)
		g.setNext(e2, o2)
		g.setNext(o2, o0)
	} else {
		g.setNext(e1, g.halfedges[o0].next)
		g.setNext(o0, e1)
		g.setVertexHalfedge(v, e1)
	}

	if g.vertices[v2].halfedge == h0 {
		g.setVertexHalfedge(v2, t1)
	}
}
