package geometry2D

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/geomkit/predicates"
)

// TriangleAngles returns the interior angles in radians at a, b and c
func TriangleAngles(a, b, c r2.Vec) (angles [3]float64) {
	corner := func(p, q, r r2.Vec) float64 {
		u, v := r2.Sub(q, p), r2.Sub(r, p)
		return math.Atan2(math.Abs(r2.Cross(u, v)), r2.Dot(u, v))
	}
	angles[0] = corner(a, b, c)
	angles[1] = corner(b, c, a)
	angles[2] = math.Pi - angles[0] - angles[1]
	return
}

func MinAngle(a, b, c r2.Vec) float64 {
	angles := TriangleAngles(a, b, c)
	return math.Min(angles[0], math.Min(angles[1], angles[2]))
}

func Circumcenter(a, b, c r2.Vec) (center r2.Vec, err error) {
	if predicates.Orient2D(a, b, c) == predicates.On {
		return center, errors.Newf("degenerate triangle %v %v %v has no circumcircle", a, b, c)
	}
	var (
		ba, ca = r2.Sub(b, a), r2.Sub(c, a)
		lb, lc = r2.Dot(ba, ba), r2.Dot(ca, ca)
		d      = 2 * r2.Cross(ba, ca)
	)
	center = r2.Vec{
		X: a.X + (ca.Y*lb-ba.Y*lc)/d,
		Y: a.Y + (ba.X*lc-ca.X*lb)/d,
	}
	return
}

/*
IsIllegalEdge tells whether the edge pi-pj shared by the triangles pi-pj-pk
and pi-pj-pr should be swapped to pr-pk, which is the case when pr lies
strictly inside the circle through pi, pj, pk. The triangle may have either
orientation.
*/
func IsIllegalEdge(pr, pi, pj, pk r2.Vec) bool {
	orient := predicates.Orient2D(pi, pj, pk)
	return orient*predicates.InCircle(pi, pj, pk, pr) == predicates.Positive
}
