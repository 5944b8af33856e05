/*
Package predicates holds the orientation and in-circle tests the Delaunay
conditioner is built on. A Kernel selects how they are evaluated: Exact
reports the true sign of the determinant, Inexact evaluates in floating point
and snaps values within a tolerance to On.
*/
package predicates

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

type Sign int8

const (
	Negative Sign = -1
	On       Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	default:
		return "On"
	}
}

type Mode uint8

const (
	Exact Mode = iota
	Inexact
)

func (m Mode) String() string {
	if m == Inexact {
		return "Inexact"
	}
	return "Exact"
}

/*
Kernel carries the evaluation mode. In Inexact mode a determinant whose
magnitude is at most Tolerance is reported as On; the sign of values near zero
can be wrong, so algorithms relying on it need their own termination guard.
*/
type Kernel struct {
	Mode      Mode
	Tolerance float64
}

func DefaultKernel() Kernel {
	return Kernel{Mode: Exact}
}

func InexactKernel(tol float64) Kernel {
	return Kernel{Mode: Inexact, Tolerance: math.Abs(tol)}
}

func (k Kernel) snap(det float64) Sign {
	if math.Abs(det) <= k.Tolerance {
		return On
	}
	return signOf(det)
}

func signOf(x float64) Sign {
	switch {
	case x > 0:
		return Positive
	case x < 0:
		return Negative
	default:
		return On
	}
}

// Orient1D is the sign of q - p
func (k Kernel) Orient1D(p, q float64) Sign {
	if k.Mode == Inexact {
		return k.snap(q - p)
	}
	// comparison of two floats is exact
	switch {
	case q > p:
		return Positive
	case q < p:
		return Negative
	default:
		return On
	}
}

// Orient2D is Positive when a, b, c are in counterclockwise order, Negative when clockwise, On when collinear
func (k Kernel) Orient2D(a, b, c r2.Vec) Sign {
	det, errBound := orient2DFast(a, b, c)
	if k.Mode == Inexact {
		return k.snap(det)
	}
	if math.Abs(det) > errBound {
		return signOf(det)
	}
	return orient2DExact(a, b, c)
}

/*
Orient3D is the sign of det[a-d; b-d; c-d]. It is Positive when d lies below
the plane through a, b, c, with below meaning the side from which a, b, c do
not appear counterclockwise.
*/
func (k Kernel) Orient3D(a, b, c, d r3.Vec) Sign {
	det, errBound := orient3DFast(a, b, c, d)
	if k.Mode == Inexact {
		return k.snap(det)
	}
	if math.Abs(det) > errBound {
		return signOf(det)
	}
	return orient3DExact(a, b, c, d)
}

/*
InCircle lifts the four points onto the paraboloid z = x*x + y*y and returns
the orientation of the lifted d against the plane of the lifted a, b, c. With
a, b, c counterclockwise it is Positive when d is strictly inside their
circumcircle, On when d is on it and Negative outside; the result flips for a
clockwise triangle.
*/
func (k Kernel) InCircle(a, b, c, d r2.Vec) Sign {
	if k.Mode == Inexact {
		return k.Orient3D(lift(a), lift(b), lift(c), lift(d))
	}
	det, errBound := inCircleFast(a, b, c, d)
	if math.Abs(det) > errBound {
		return signOf(det)
	}
	return inCircleExact(a, b, c, d)
}

/*
IsLocallyDelaunay tells whether d is outside the circumcircle of the
counterclockwise triangle a, b, c. A cocircular d passes unless strongly is
set.
*/
func (k Kernel) IsLocallyDelaunay(a, b, c, d r2.Vec, strongly bool) bool {
	s := k.InCircle(a, b, c, d)
	if strongly {
		return s < On
	}
	return s <= On
}

func lift(p r2.Vec) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
}

// Free functions evaluating with DefaultKernel

func Orient1D(p, q float64) Sign      { return DefaultKernel().Orient1D(p, q) }
func Orient2D(a, b, c r2.Vec) Sign    { return DefaultKernel().Orient2D(a, b, c) }
func Orient3D(a, b, c, d r3.Vec) Sign { return DefaultKernel().Orient3D(a, b, c, d) }
func InCircle(a, b, c, d r2.Vec) Sign { return DefaultKernel().InCircle(a, b, c, d) }
func IsLocallyDelaunay(a, b, c, d r2.Vec, strongly bool) bool {
	return DefaultKernel().IsLocallyDelaunay(a, b, c, d, strongly)
}
