package surfacemesh

import (
	"github.com/cockroachdb/errors"

	"github.com/notargets/geomkit/halfedge"
	"github.com/notargets/geomkit/types"
)

type ElementKind uint8

const (
	VertexElements ElementKind = iota
	HalfedgeElements
	EdgeElements
	FaceElements
)

func (k ElementKind) String() string {
	return [...]string{"vertex", "halfedge", "edge", "face"}[k]
}

type handle interface {
	~int
}

type propertyKey struct {
	kind ElementKind
	name string
}

/*
Property is a named attribute slot for one kind of element. Storage grows on
demand, so elements added after the property was created read the zero value
until set.
*/
type Property[H handle, T any] struct {
	name  string
	kind  ElementKind
	count func() int
	data  []T
}

func (p *Property[H, T]) Name() string { return p.name }

func (p *Property[H, T]) Kind() ElementKind { return p.kind }

func (p *Property[H, T]) index(h H) int {
	i := int(h)
	if n := p.count(); i < 0 || i >= n {
		panic(errors.AssertionFailedf("%s property %q: handle %d out of range [0,%d)", p.kind, p.name, i, n))
	}
	return i
}

func (p *Property[H, T]) Get(h H) (v T) {
	if i := p.index(h); i < len(p.data) {
		v = p.data[i]
	}
	return
}

func (p *Property[H, T]) Set(h H, v T) {
	i := p.index(h)
	if i >= len(p.data) {
		p.data = types.GrowSlice(p.data, p.count())
	}
	p.data[i] = v
}

// Fill sets every current element to v
func (p *Property[H, T]) Fill(v T) {
	p.data = types.GrowSlice(p.data, p.count())
	for i := range p.data {
		p.data[i] = v
	}
}

func (p *Property[H, T]) reset() { p.data = p.data[:0] }

func property[H handle, T any](m *Mesh, kind ElementKind, name string, count func() int) (*Property[H, T], error) {
	key := propertyKey{kind: kind, name: name}
	if existing, ok := m.properties[key]; ok {
		p, ok := existing.(*Property[H, T])
		if !ok {
			return nil, errors.Newf("%s property %q already exists as %T", kind, name, existing)
		}
		return p, nil
	}
	p := &Property[H, T]{name: name, kind: kind, count: count}
	m.properties[key] = p
	return p, nil
}

// VertexProperty returns the vertex property name, creating it on first use
func VertexProperty[T any](m *Mesh, name string) (*Property[halfedge.Vertex, T], error) {
	return property[halfedge.Vertex, T](m, VertexElements, name, m.graph.NumVertices)
}

func HalfedgeProperty[T any](m *Mesh, name string) (*Property[halfedge.Halfedge, T], error) {
	return property[halfedge.Halfedge, T](m, HalfedgeElements, name, m.graph.NumHalfedges)
}

func EdgeProperty[T any](m *Mesh, name string) (*Property[halfedge.Edge, T], error) {
	return property[halfedge.Edge, T](m, EdgeElements, name, m.graph.NumEdges)
}

func FaceProperty[T any](m *Mesh, name string) (*Property[halfedge.Face, T], error) {
	return property[halfedge.Face, T](m, FaceElements, name, m.graph.NumFaces)
}

func (m *Mesh) HasProperty(kind ElementKind, name string) bool {
	_, ok := m.properties[propertyKey{kind: kind, name: name}]
	return ok
}
