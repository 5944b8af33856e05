/*
Package surfacemesh attaches geometry and named attributes to a halfedge
graph. The graph stays purely combinatorial; positions live here and are
projected onto a plane for the 2D predicates.
*/
package surfacemesh

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/geomkit/geometry2D"
	"github.com/notargets/geomkit/halfedge"
)

type Mesh struct {
	graph      *halfedge.Graph
	points     []r3.Vec
	plane      geometry2D.Plane
	properties map[propertyKey]any
	log        logrus.FieldLogger
}

type Option func(m *Mesh)

func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Mesh) {
		if log != nil {
			m.log = log
		}
	}
}

// WithPlane sets the projection plane, the XY plane by default
func WithPlane(p geometry2D.Plane) Option {
	return func(m *Mesh) { m.plane = p }
}

func New(opts ...Option) (m *Mesh) {
	m = &Mesh{
		plane:      geometry2D.XYPlane(),
		properties: make(map[propertyKey]any),
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.graph = halfedge.New(halfedge.WithLogger(m.log))
	return
}

/*
Graph is the underlying combinatorics. Vertices must be added through
AddVertex and the mesh emptied through Clear, since calling NewVertex or Clear
on the graph itself leaves the positions out of step with it.
*/
func (m *Mesh) Graph() *halfedge.Graph { return m.graph }

// Clear removes every element and position; properties stay registered but hold no values
func (m *Mesh) Clear() {
	m.graph.Clear()
	m.points = m.points[:0]
	for _, p := range m.properties {
		p.(interface{ reset() }).reset()
	}
}

// Reserve makes room for nVerts more vertices and nFaces more faces, with edges estimated from Euler's formula
func (m *Mesh) Reserve(nVerts, nFaces int) {
	if c := len(m.points) + nVerts; c > cap(m.points) {
		m.points = append(make([]r3.Vec, 0, c), m.points...)
	}
	m.graph.Reserve(nVerts, nVerts+nFaces, nFaces)
}

func (m *Mesh) Logger() logrus.FieldLogger { return m.log }

func (m *Mesh) Plane() geometry2D.Plane { return m.plane }

func (m *Mesh) SetPlane(p geometry2D.Plane) { m.plane = p }

// FitPlane replaces the projection plane with the least squares plane through all points
func (m *Mesh) FitPlane() error {
	p, err := geometry2D.FitPlane(m.points)
	if err != nil {
		return errors.Wrap(err, "surface mesh")
	}
	m.plane = p
	return nil
}

func (m *Mesh) AddVertex(p r3.Vec) halfedge.Vertex {
	v := m.graph.NewVertex()
	m.points = append(m.points, p)
	return v
}

func (m *Mesh) NumVertices() int { return m.graph.NumVertices() }

func (m *Mesh) Point(v halfedge.Vertex) r3.Vec {
	m.checkVertex(v)
	return m.points[v]
}

func (m *Mesh) SetPoint(v halfedge.Vertex, p r3.Vec) {
	m.checkVertex(v)
	m.points[v] = p
}

func (m *Mesh) Points() []r3.Vec { return m.points }

// Point2D is the position of v projected onto the mesh plane
func (m *Mesh) Point2D(v halfedge.Vertex) r2.Vec {
	return m.plane.Project(m.Point(v))
}

func (m *Mesh) checkVertex(v halfedge.Vertex) {
	if v < 0 || int(v) >= len(m.points) {
		panic(errors.AssertionFailedf("vertex handle %d out of range [0,%d)", v, len(m.points)))
	}
}

// AddFace adds the face through the graph, InvalidFace when the graph rejects it
func (m *Mesh) AddFace(vs ...halfedge.Vertex) halfedge.Face {
	return m.graph.AddFace(vs...)
}

func (m *Mesh) AddFaceChecked(vs ...halfedge.Vertex) (halfedge.Face, error) {
	return m.graph.AddFaceChecked(vs...)
}

func (m *Mesh) AddTriangle(a, b, c halfedge.Vertex) halfedge.Face {
	return m.graph.AddTriangle(a, b, c)
}

/*
SplitEdge inserts a new vertex at p on e and fans the adjacent triangles, see
halfedge.Graph.Split. It fails without changing the mesh when a face on e is
not a triangle.
*/
func (m *Mesh) SplitEdge(e halfedge.Edge, p r3.Vec) (v halfedge.Vertex, err error) {
	g := m.graph
	for side := 0; side < 2; side++ {
		if f := g.FaceOf(g.EdgeHalfedge(e, side)); f.IsValid() && g.Degree(f) != 3 {
			return halfedge.InvalidVertex, errors.Newf("split %s: %s has degree %d", e, f, g.Degree(f))
		}
	}
	v = m.AddVertex(p)
	g.Split(e, v)
	return
}

func (m *Mesh) SplitEdgeMidpoint(e halfedge.Edge) (halfedge.Vertex, error) {
	v0, v1 := m.graph.EdgeVertices(e)
	return m.SplitEdge(e, r3.Scale(0.5, r3.Add(m.Point(v0), m.Point(v1))))
}

func (m *Mesh) FaceVertices(f halfedge.Face) []halfedge.Vertex {
	return m.graph.FaceVertices(f, halfedge.CCW).Collect()
}

func (m *Mesh) FacePoints(f halfedge.Face) (pts []r3.Vec) {
	for v := range m.graph.FaceVertices(f, halfedge.CCW).All() {
		pts = append(pts, m.points[v])
	}
	return
}

func (m *Mesh) FacePolygon(f halfedge.Face) (pg geometry2D.Polygon) {
	for v := range m.graph.FaceVertices(f, halfedge.CCW).All() {
		pg = append(pg, m.Point2D(v))
	}
	return
}
