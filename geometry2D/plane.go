package geometry2D

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

/*
Plane is an oriented plane with an orthonormal in-plane frame. Points are
projected onto it by taking their coordinates along U and V relative to
Origin, so a counterclockwise loop seen from the Normal side stays
counterclockwise after projection.
*/
type Plane struct {
	Origin r3.Vec
	U, V   r3.Vec
	Normal r3.Vec
}

// XYPlane projects by dropping Z, exactly
func XYPlane() Plane {
	return Plane{
		U:      r3.Vec{X: 1},
		V:      r3.Vec{Y: 1},
		Normal: r3.Vec{Z: 1},
	}
}

func NewPlane(origin, normal r3.Vec) (p Plane, err error) {
	if r3.Norm(normal) == 0 {
		return p, errors.New("plane normal is the zero vector")
	}
	n := r3.Unit(normal)
	helper := r3.Vec{Y: 1}
	if math.Abs(n.Y) > 0.9 {
		helper = r3.Vec{Z: 1}
	}
	u := r3.Unit(r3.Cross(helper, n))
	p = Plane{
		Origin: origin,
		U:      u,
		V:      r3.Cross(n, u),
		Normal: n,
	}
	return
}

func (p Plane) Project(x r3.Vec) r2.Vec {
	d := r3.Sub(x, p.Origin)
	return r2.Vec{X: r3.Dot(d, p.U), Y: r3.Dot(d, p.V)}
}

// Lift maps plane coordinates back to space
func (p Plane) Lift(q r2.Vec) r3.Vec {
	return r3.Add(p.Origin, r3.Add(r3.Scale(q.X, p.U), r3.Scale(q.Y, p.V)))
}

// Distance is the signed distance of x from the plane, positive on the Normal side
func (p Plane) Distance(x r3.Vec) float64 {
	return r3.Dot(r3.Sub(x, p.Origin), p.Normal)
}

func (p Plane) Contains(x r3.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(p.Distance(x), 0, tol)
}

/*
FitPlane returns the least squares plane through the points: the origin is
the centroid and the normal the right singular vector belonging to the
smallest singular value of the centered coordinates. The normal is oriented
towards +Z, or +Y and +X when the plane is vertical.
*/
func FitPlane(points []r3.Vec) (p Plane, err error) {
	var (
		n        = len(points)
		centroid r3.Vec
	)
	if n < 3 {
		return p, errors.Newf("need at least 3 points to fit a plane, have %d", n)
	}
	for _, x := range points {
		centroid = r3.Add(centroid, x)
	}
	centroid = r3.Scale(1/float64(n), centroid)
	A := mat.NewDense(n, 3, nil)
	for i, x := range points {
		d := r3.Sub(x, centroid)
		A.SetRow(i, []float64{d.X, d.Y, d.Z})
	}
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		return p, errors.New("plane fit: SVD failed to converge")
	}
	values := svd.Values(nil)
	if values[0] == 0 || values[1] <= 1e-12*values[0] {
		return p, errors.New("plane fit: points are coincident or collinear")
	}
	var V mat.Dense
	svd.VTo(&V)
	normal := r3.Vec{X: V.At(0, 2), Y: V.At(1, 2), Z: V.At(2, 2)}
	for _, c := range []float64{normal.Z, normal.Y, normal.X} {
		if c < 0 {
			normal = r3.Scale(-1, normal)
			break
		}
		if c > 0 {
			break
		}
	}
	return NewPlane(centroid, normal)
}
