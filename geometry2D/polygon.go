package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/geomkit/predicates"
)

type BoundingBox struct {
	Min, Max r2.Vec
}

func NewBoundingBox(points ...r2.Vec) (box BoundingBox) {
	if len(points) == 0 {
		return
	}
	box = BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min.X, box.Max.X = math.Min(box.Min.X, p.X), math.Max(box.Max.X, p.X)
		box.Min.Y, box.Max.Y = math.Min(box.Min.Y, p.Y), math.Max(box.Max.Y, p.Y)
	}
	return
}

func (bb BoundingBox) Centroid() r2.Vec {
	return r2.Scale(0.5, r2.Add(bb.Min, bb.Max))
}

func (bb BoundingBox) Diagonal() float64 {
	return r2.Norm(r2.Sub(bb.Max, bb.Min))
}

func (bb *BoundingBox) Grow(other BoundingBox) {
	bb.Min.X, bb.Min.Y = math.Min(bb.Min.X, other.Min.X), math.Min(bb.Min.Y, other.Min.Y)
	bb.Max.X, bb.Max.Y = math.Max(bb.Max.X, other.Max.X), math.Max(bb.Max.Y, other.Max.Y)
}

func (bb BoundingBox) PointInside(p r2.Vec) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X && p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Polygon is a simple closed loop, the last vertex connects back to the first
type Polygon []r2.Vec

func (pg Polygon) Area() (area float64) {
	/*
		Algorithm: Green's theorem in the plane, positive for a counterclockwise loop
	*/
	n := len(pg)
	for i := range pg {
		p0, p1 := pg[i], pg[(i+1)%n]
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	return 0.5 * area
}

func (pg Polygon) Centroid() (centroid r2.Vec) {
	var (
		n    = len(pg)
		area = pg.Area()
	)
	if area == 0 {
		for _, p := range pg {
			centroid = r2.Add(centroid, p)
		}
		return r2.Scale(1/float64(n), centroid)
	}
	for i := range pg {
		p0, p1 := pg[i], pg[(i+1)%n]
		metric := p0.X*p1.Y - p1.X*p0.Y
		centroid.X += (p0.X + p1.X) * metric
		centroid.Y += (p0.Y + p1.Y) * metric
	}
	return r2.Scale(1/(6*area), centroid)
}

/*
PointInside uses the winding number from
http://geomalgorithms.com/a03-_inclusion.html#wn_PnPoly(); a point is inside
when the winding number is not zero. Points on the outline may land on
either side.
*/
func (pg Polygon) PointInside(point r2.Vec) bool {
	if !NewBoundingBox(pg...).PointInside(point) {
		return false
	}
	var (
		wn int
		n  = len(pg)
	)
	for i := range pg {
		p0, p1 := pg[i], pg[(i+1)%n]
		if p0.Y <= point.Y {
			if p1.Y > point.Y && predicates.Orient2D(p0, p1, point) == predicates.Positive {
				wn++
			}
		} else if p1.Y <= point.Y && predicates.Orient2D(p0, p1, point) == predicates.Negative {
			wn--
		}
	}
	return wn != 0
}
