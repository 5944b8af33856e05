package halfedge

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

type vertexRecord struct {
	halfedge Halfedge // outgoing, boundary one if the vertex is on the boundary
}

type halfedgeRecord struct {
	vertex Vertex // target
	face   Face   // InvalidFace on the boundary
	next   Halfedge
	prev   Halfedge
}

type faceRecord struct {
	halfedge Halfedge
}

/*
Graph is the combinatorial part of a polygonal 2-manifold surface, possibly
with boundary. Vertices, halfedges and faces are stored in growable arrays and
addressed by index; the two halfedges of edge e live at 2e and 2e+1.

A Graph is not safe for concurrent use.
*/
type Graph struct {
	vertices  []vertexRecord
	halfedges []halfedgeRecord
	faces     []faceRecord
	log       logrus.FieldLogger
}

type Option func(g *Graph)

// WithLogger sets the logger that receives AddFace warnings
func WithLogger(log logrus.FieldLogger) Option {
	return func(g *Graph) {
		if log != nil {
			g.log = log
		}
	}
}

func New(opts ...Option) (g *Graph) {
	g = &Graph{
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return
}

// Clear removes every element; all handles previously issued become invalid
func (g *Graph) Clear() {
	g.vertices = g.vertices[:0]
	g.halfedges = g.halfedges[:0]
	g.faces = g.faces[:0]
}

// Reserve grows the storage so that the given element counts fit without reallocation
func (g *Graph) Reserve(nVerts, nEdges, nFaces int) {
	if c := len(g.vertices) + nVerts; c > cap(g.vertices) {
		g.vertices = append(make([]vertexRecord, 0, c), g.vertices...)
	}
	if c := len(g.halfedges) + 2*nEdges; c > cap(g.halfedges) {
		g.halfedges = append(make([]halfedgeRecord, 0, c), g.halfedges...)
	}
	if c := len(g.faces) + nFaces; c > cap(g.faces) {
		g.faces = append(make([]faceRecord, 0, c), g.faces...)
	}
}

func (g *Graph) NumVertices() int  { return len(g.vertices) }
func (g *Graph) NumHalfedges() int { return len(g.halfedges) }
func (g *Graph) NumEdges() int     { return len(g.halfedges) / 2 }
func (g *Graph) NumFaces() int     { return len(g.faces) }

// NewVertex appends an isolated vertex
func (g *Graph) NewVertex() Vertex {
	g.vertices = append(g.vertices, vertexRecord{halfedge: InvalidHalfedge})
	return Vertex(len(g.vertices) - 1)
}

// newEdge appends an unlinked pair of halfedges, from -> to and to -> from
func (g *Graph) newEdge(from, to Vertex) Halfedge {
	g.halfedges = append(g.halfedges,
		halfedgeRecord{vertex: to, face: InvalidFace, next: InvalidHalfedge, prev: InvalidHalfedge},
		halfedgeRecord{vertex: from, face: InvalidFace, next: InvalidHalfedge, prev: InvalidHalfedge},
	)
	return Halfedge(len(g.halfedges) - 2)
}

func (g *Graph) newFace(h Halfedge) Face {
	g.faces = append(g.faces, faceRecord{halfedge: h})
	return Face(len(g.faces) - 1)
}

func (g *Graph) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for i := range g.vertices {
			if !yield(Vertex(i)) {
				return
			}
		}
	}
}

func (g *Graph) Halfedges() iter.Seq[Halfedge] {
	return func(yield func(Halfedge) bool) {
		for i := range g.halfedges {
			if !yield(Halfedge(i)) {
				return
			}
		}
	}
}

func (g *Graph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := 0; i < g.NumEdges(); i++ {
			if !yield(Edge(i)) {
				return
			}
		}
	}
}

func (g *Graph) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for i := range g.faces {
			if !yield(Face(i)) {
				return
			}
		}
	}
}

/*
Handle checks. An out of range handle is a programming error and panics.
*/
func (g *Graph) checkVertex(v Vertex) {
	if v < 0 || int(v) >= len(g.vertices) {
		panic(errors.AssertionFailedf("vertex handle %d out of range [0,%d)", v, len(g.vertices)))
	}
}

func (g *Graph) checkHalfedge(h Halfedge) {
	if h < 0 || int(h) >= len(g.halfedges) {
		panic(errors.AssertionFailedf("halfedge handle %d out of range [0,%d)", h, len(g.halfedges)))
	}
}

func (g *Graph) checkEdge(e Edge) {
	if e < 0 || int(e) >= g.NumEdges() {
		panic(errors.AssertionFailedf("edge handle %d out of range [0,%d)", e, g.NumEdges()))
	}
}

func (g *Graph) checkFace(f Face) {
	if f < 0 || int(f) >= len(g.faces) {
		panic(errors.AssertionFailedf("face handle %d out of range [0,%d)", f, len(g.faces)))
	}
}

// Navigation

func (g *Graph) Opposite(h Halfedge) Halfedge {
	g.checkHalfedge(h)
	return h.Opposite()
}

func (g *Graph) Next(h Halfedge) Halfedge {
	g.checkHalfedge(h)
	return g.halfedges[h].next
}

func (g *Graph) Prev(h Halfedge) Halfedge {
	g.checkHalfedge(h)
	return g.halfedges[h].prev
}

func (g *Graph) ToVertex(h Halfedge) Vertex {
	g.checkHalfedge(h)
	return g.halfedges[h].vertex
}

func (g *Graph) FromVertex(h Halfedge) Vertex {
	g.checkHalfedge(h)
	return g.halfedges[h.Opposite()].vertex
}

// FaceOf is InvalidFace for a boundary halfedge
func (g *Graph) FaceOf(h Halfedge) Face {
	g.checkHalfedge(h)
	return g.halfedges[h].face
}

func (g *Graph) EdgeOf(h Halfedge) Edge {
	g.checkHalfedge(h)
	return h.Edge()
}

// VertexHalfedge is an outgoing halfedge of v, InvalidHalfedge if v is isolated
func (g *Graph) VertexHalfedge(v Vertex) Halfedge {
	g.checkVertex(v)
	return g.vertices[v].halfedge
}

func (g *Graph) EdgeHalfedge(e Edge, side int) Halfedge {
	g.checkEdge(e)
	return e.Halfedge(side)
}

func (g *Graph) FaceHalfedge(f Face) Halfedge {
	g.checkFace(f)
	return g.faces[f].halfedge
}

// CCWRotated is the next outgoing halfedge counterclockwise around FromVertex(h)
func (g *Graph) CCWRotated(h Halfedge) Halfedge {
	return g.Opposite(g.Prev(h))
}

// CWRotated is the next outgoing halfedge clockwise around FromVertex(h)
func (g *Graph) CWRotated(h Halfedge) Halfedge {
	return g.Next(g.Opposite(h))
}

func (g *Graph) IsBoundaryHalfedge(h Halfedge) bool {
	return !g.FaceOf(h).IsValid()
}

func (g *Graph) IsBoundaryEdge(e Edge) bool {
	g.checkEdge(e)
	return g.IsBoundaryHalfedge(e.Halfedge(0)) || g.IsBoundaryHalfedge(e.Halfedge(1))
}

// IsBoundaryVertex is true for isolated vertices and for vertices whose fan is open
func (g *Graph) IsBoundaryVertex(v Vertex) bool {
	h := g.VertexHalfedge(v)
	return !h.IsValid() || g.IsBoundaryHalfedge(h)
}

func (g *Graph) IsIsolated(v Vertex) bool {
	return !g.VertexHalfedge(v).IsValid()
}

// EdgeVertices returns the from and to vertex of side 0 of the edge
func (g *Graph) EdgeVertices(e Edge) (v0, v1 Vertex) {
	h := g.EdgeHalfedge(e, 0)
	return g.FromVertex(h), g.ToVertex(h)
}

// FindHalfedge returns the halfedge from -> to, or InvalidHalfedge
func (g *Graph) FindHalfedge(from, to Vertex) Halfedge {
	g.checkVertex(to)
	c := g.VertexOutgoingHalfedges(from, CCW)
	for ; !c.Done(); c.Next() {
		if h := c.Value(); g.halfedges[h].vertex == to {
			return h
		}
	}
	return InvalidHalfedge
}

// Valence is the number of edges incident to v
func (g *Graph) Valence(v Vertex) (n int) {
	c := g.VertexOutgoingHalfedges(v, CCW)
	for ; !c.Done(); c.Next() {
		n++
	}
	return
}

// Degree is the number of halfedges in the face loop
func (g *Graph) Degree(f Face) (n int) {
	c := g.FaceHalfedges(f, CCW)
	for ; !c.Done(); c.Next() {
		n++
	}
	return
}

func (g *Graph) IsTriangleMesh() bool {
	for f := range g.Faces() {
		if g.Degree(f) != 3 {
			return false
		}
	}
	return true
}

// Raw mutators used by the Euler operators. Callers keep the invariants.

func (g *Graph) setNext(h, next Halfedge) {
	g.halfedges[h].next = next
	g.halfedges[next].prev = h
}

func (g *Graph) setVertex(h Halfedge, v Vertex) { g.halfedges[h].vertex = v }
func (g *Graph) setFace(h Halfedge, f Face)     { g.halfedges[h].face = f }

func (g *Graph) setVertexHalfedge(v Vertex, h Halfedge) { g.vertices[v].halfedge = h }
func (g *Graph) setFaceHalfedge(f Face, h Halfedge)     { g.faces[f].halfedge = h }

// adjustOutgoingHalfedge makes a boundary vertex store a boundary outgoing halfedge
func (g *Graph) adjustOutgoingHalfedge(v Vertex) {
	c := g.VertexOutgoingHalfedges(v, CCW)
	for ; !c.Done(); c.Next() {
		if h := c.Value(); g.IsBoundaryHalfedge(h) {
			g.setVertexHalfedge(v, h)
			return
		}
	}
}
