package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestIllegalEdge(t *testing.T) {
	R := []float64{-0.9600, 0.9201, -0.9600, -0.7366, 0.4731, -0.7366, -0.3333, -0.0297, -0.9405, -0.0297, 0.7358, -0.9517, -0.7841, -0.7841, -0.9517, 0.7358, 0.4017, -0.9434, -0.4583, -0.4583, -0.9434, 0.4017, 0.0733, -0.7064, -0.3669, -0.3669, -0.7064, 0.0733, -0.9600, 0.9201, -0.9600, -0.7366, 0.4731, -0.7366, -0.3333, -0.0297, -0.9405, -0.0297, 0.7358, -0.9517, -0.7841, -0.7841, -0.9517, 0.7358, 0.4017, -0.9434, -0.4583, -0.4583, -0.9434, 0.4017, 0.0733, -0.7064, -0.3669, -0.3669, -0.7064, 0.0733, 0.9195, 0.7388, 0.4779, 0.1653, -0.1653, -0.4779, -0.7388, -0.9195, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -0.9195, -0.7388, -0.4779, -0.1653, 0.1653, 0.4779, 0.7388, 0.9195}
	S := []float64{-0.9600, -0.9600, 0.9201, -0.7366, -0.7366, 0.4731, -0.3333, -0.9405, -0.0297, -0.0297, -0.9517, 0.7358, 0.7358, -0.9517, -0.7841, -0.7841, -0.9434, 0.4017, 0.4017, -0.9434, -0.4583, -0.4583, -0.7064, 0.0733, 0.0733, -0.7064, -0.3669, -0.3669, -0.9600, -0.9600, 0.9201, -0.7366, -0.7366, 0.4731, -0.3333, -0.9405, -0.0297, -0.0297, -0.9517, 0.7358, 0.7358, -0.9517, -0.7841, -0.7841, -0.9434, 0.4017, 0.4017, -0.9434, -0.4583, -0.4583, -0.7064, 0.0733, 0.0733, -0.7064, -0.3669, -0.3669, -0.9195, -0.7388, -0.4779, -0.1653, 0.1653, 0.4779, 0.7388, 0.9195, -0.9195, -0.7388, -0.4779, -0.1653, 0.1653, 0.4779, 0.7388, 0.9195, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000}
	R = append(R, -1, 1, -1) // Vertices
	S = append(S, -1, -1, 1)
	R = append(R, -0.9999999) // Almost at vertex, but inside
	S = append(S, -1)
	testCheck := make([]bool, len(R))
	for i := range testCheck {
		testCheck[i] = true
	}
	testCheck[len(R)-4] = false // vertices will be legal
	testCheck[len(R)-3] = false
	testCheck[len(R)-2] = false
	// Most points are inside the circumscribing circle, so will be "illegal"
	var (
		pi, pj, pk = r2.Vec{X: -1, Y: -1}, r2.Vec{X: 1, Y: -1}, r2.Vec{X: -1, Y: 1}
	)
	for i, r := range R {
		pr := r2.Vec{X: r, Y: S[i]}
		assert.Equal(t, testCheck[i], IsIllegalEdge(pr, pi, pj, pk), "point[%8.5f,%8.5f]", pr.X, pr.Y)
		// Test the opposite direction of the base triangle
		assert.Equal(t, testCheck[i], IsIllegalEdge(pr, pk, pj, pi), "point[%8.5f,%8.5f] cw", pr.X, pr.Y)
	}
}

func TestTriangleQuality(t *testing.T) {
	a, b, c := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 0.5, Y: math.Sqrt(3) / 2}
	for _, angle := range TriangleAngles(a, b, c) {
		assert.InDelta(t, math.Pi/3, angle, 1e-12)
	}
	assert.InDelta(t, math.Pi/4, MinAngle(r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 1, Y: 1}), 1e-12)

	center, err := Circumcenter(r2.Vec{}, r2.Vec{X: 2}, r2.Vec{Y: 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, center.X, 1e-14)
	assert.InDelta(t, 1, center.Y, 1e-14)
	_, err = Circumcenter(r2.Vec{}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 2})
	assert.Error(t, err)
}

func TestPlane(t *testing.T) {
	xy := XYPlane()
	p := r3.Vec{X: 1.5, Y: -2, Z: 7}
	assert.Equal(t, r2.Vec{X: 1.5, Y: -2}, xy.Project(p))
	assert.Equal(t, r3.Vec{X: 1.5, Y: -2}, xy.Lift(r2.Vec{X: 1.5, Y: -2}))

	// default frame of a +Z normal is the XY frame
	pl, err := NewPlane(r3.Vec{}, r3.Vec{Z: 3})
	require.NoError(t, err)
	assert.Equal(t, xy, pl)
	_, err = NewPlane(r3.Vec{}, r3.Vec{})
	assert.Error(t, err)

	// tilted plane z = x + 1, the frame stays orthonormal and right handed
	var pts []r3.Vec
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			x, y := float64(i), float64(j)
			pts = append(pts, r3.Vec{X: x, Y: y, Z: x + 1})
		}
	}
	fit, err := FitPlane(pts)
	require.NoError(t, err)
	s2 := math.Sqrt2 / 2
	assert.InDelta(t, -s2, fit.Normal.X, 1e-12)
	assert.InDelta(t, 0, fit.Normal.Y, 1e-12)
	assert.InDelta(t, s2, fit.Normal.Z, 1e-12)
	assert.True(t, scalar.EqualWithinAbs(r3.Dot(fit.U, fit.V), 0, 1e-12))
	assert.InDelta(t, 1, r3.Dot(r3.Cross(fit.U, fit.V), fit.Normal), 1e-12)
	for _, x := range pts {
		assert.True(t, fit.Contains(x, 1e-12))
		assert.InDelta(t, 0, r3.Norm(r3.Sub(x, fit.Lift(fit.Project(x)))), 1e-12)
	}
	assert.InDelta(t, 1, fit.Distance(r3.Add(pts[0], fit.Normal)), 1e-12)

	_, err = FitPlane(pts[:2])
	assert.Error(t, err)
	_, err = FitPlane([]r3.Vec{{X: 0}, {X: 1}, {X: 2}})
	assert.Error(t, err)
}

func TestPolygon(t *testing.T) {
	square := Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	assert.Equal(t, 4., square.Area())
	assert.Equal(t, r2.Vec{X: 1, Y: 1}, square.Centroid())
	assert.True(t, square.PointInside(r2.Vec{X: 0.5, Y: 1.5}))
	assert.False(t, square.PointInside(r2.Vec{X: 2.5, Y: 1}))
	cw := Polygon{square[3], square[2], square[1], square[0]}
	assert.Equal(t, -4., cw.Area())
	assert.True(t, cw.PointInside(r2.Vec{X: 1, Y: 1}))

	box := NewBoundingBox(square...)
	assert.Equal(t, r2.Vec{X: 1, Y: 1}, box.Centroid())
	assert.InDelta(t, 2*math.Sqrt2, box.Diagonal(), 1e-15)
	box.Grow(NewBoundingBox(r2.Vec{X: -1, Y: 5}))
	assert.Equal(t, BoundingBox{Min: r2.Vec{X: -1, Y: 0}, Max: r2.Vec{X: 2, Y: 5}}, box)
	assert.Equal(t, BoundingBox{}, NewBoundingBox())
}
