package delaunay

import (
	"github.com/cockroachdb/errors"

	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/types"
)

// EdgeSet holds the constrained edges, which are never flipped
type EdgeSet map[halfedge.Edge]struct{}

func NewEdgeSet(edges ...halfedge.Edge) (s EdgeSet) {
	s = make(EdgeSet, len(edges))
	for _, e := range edges {
		s.Add(e)
	}
	return
}

func (s EdgeSet) Add(e halfedge.Edge) { s[e] = struct{}{} }

// Contains is false for a nil set
func (s EdgeSet) Contains(e halfedge.Edge) bool {
	_, ok := s[e]
	return ok
}

func (s EdgeSet) Len() int { return len(s) }

// ConstrainByKeys resolves vertex pairs to the edges joining them
func ConstrainByKeys(g *halfedge.Graph, keys types.EdgeKeySet) (s EdgeSet, err error) {
	s = make(EdgeSet, len(keys))
	for ek := range keys {
		verts := ek.GetVertices(false)
		v0, v1 := halfedge.Vertex(verts[0]), halfedge.Vertex(verts[1])
		if int(v1) >= g.NumVertices() {
			return nil, errors.Newf("constraint %v: vertex out of range [0,%d)", verts, g.NumVertices())
		}
		h := g.FindHalfedge(v0, v1)
		if !h.IsValid() {
			return nil, errors.Newf("constraint %v: no edge joins the vertices", verts)
		}
		s.Add(h.Edge())
	}
	return
}

// BoundaryEdges returns every edge with a faceless side
func BoundaryEdges(g *halfedge.Graph) (s EdgeSet) {
	s = make(EdgeSet)
	for e := range g.Edges() {
		if g.IsBoundaryEdge(e) {
			s.Add(e)
		}
	}
	return
}
