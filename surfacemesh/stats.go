package surfacemesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/geomkit/geometry2D"
	"github.com/notargets/geomkit/halfedge"
)

type Statistics struct {
	Vertices, Edges, Faces int
	BoundaryEdges          int
	BoundaryLoops          int
	Triangles              int
	MinAngle, MeanAngle    float64 // degrees, over triangles
	MaxRadiusEdge          float64 // circumradius over shortest edge, worst triangle
	Area                   float64 // projected, signed sum
	Box                    geometry2D.BoundingBox
}

func (m *Mesh) Stats() (st Statistics) {
	g := m.graph
	st.Vertices, st.Edges, st.Faces = g.NumVertices(), g.NumEdges(), g.NumFaces()
	seen := make([]bool, g.NumHalfedges())
	for h := range g.Halfedges() {
		if !g.IsBoundaryHalfedge(h) {
			continue
		}
		st.BoundaryEdges++
		if seen[h] {
			continue
		}
		st.BoundaryLoops++
		for cur := h; !seen[cur]; cur = g.Next(cur) {
			seen[cur] = true
		}
	}
	st.MinAngle = math.Inf(1)
	var angleSum float64
	for f := range g.Faces() {
		pg := m.FacePolygon(f)
		st.Area += pg.Area()
		if len(pg) != 3 {
			continue
		}
		st.Triangles++
		for _, a := range geometry2D.TriangleAngles(pg[0], pg[1], pg[2]) {
			angleSum += a
			st.MinAngle = math.Min(st.MinAngle, a)
		}
		if center, err := geometry2D.Circumcenter(pg[0], pg[1], pg[2]); err == nil {
			shortest := math.Min(r2.Norm(r2.Sub(pg[1], pg[0])),
				math.Min(r2.Norm(r2.Sub(pg[2], pg[1])), r2.Norm(r2.Sub(pg[0], pg[2]))))
			st.MaxRadiusEdge = math.Max(st.MaxRadiusEdge, r2.Norm(r2.Sub(pg[0], center))/shortest)
		}
	}
	if st.Triangles == 0 {
		st.MinAngle = 0
	} else {
		st.MinAngle *= 180 / math.Pi
		st.MeanAngle = angleSum / float64(3*st.Triangles) * 180 / math.Pi
	}
	var projected geometry2D.Polygon
	for v := range g.Vertices() {
		projected = append(projected, m.Point2D(v))
	}
	st.Box = geometry2D.NewBoundingBox(projected...)
	return
}

func (st Statistics) Print() (txt string) {
	txt = fmt.Sprintf("Vertices = %d, Edges = %d, Faces = %d (%d triangles)\n", st.Vertices, st.Edges, st.Faces, st.Triangles)
	txt += fmt.Sprintf("Boundary edges = %d in %d loops\n", st.BoundaryEdges, st.BoundaryLoops)
	txt += fmt.Sprintf("Min angle = %8.4f deg, mean angle = %8.4f deg\n", st.MinAngle, st.MeanAngle)
	txt += fmt.Sprintf("Max radius-edge ratio = %8.4f\n", st.MaxRadiusEdge)
	txt += fmt.Sprintf("Area = %g, bounds = [%g,%g] x [%g,%g]\n", st.Area, st.Box.Min.X, st.Box.Max.X, st.Box.Min.Y, st.Box.Max.Y)
	return
}

// MinAngleAt is the smallest interior angle of triangle f in degrees, 0 when f is not a triangle
func (m *Mesh) MinAngleAt(f halfedge.Face) float64 {
	pg := m.FacePolygon(f)
	if len(pg) != 3 {
		return 0
	}
	return geometry2D.MinAngle(pg[0], pg[1], pg[2]) * 180 / math.Pi
}
