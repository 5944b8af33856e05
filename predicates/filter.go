package predicates

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Static forward error bounds for the floating point determinants (Shewchuk 1997)
var (
	epsilon         = math.Ldexp(1, -53)
	ccwErrBoundA    = (3 + 16*epsilon) * epsilon
	o3dErrBoundA    = (7 + 56*epsilon) * epsilon
	inCircErrBoundA = (10 + 96*epsilon) * epsilon
)

func orient2DFast(a, b, c r2.Vec) (det, errBound float64) {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det = detLeft - detRight
	errBound = ccwErrBoundA * (math.Abs(detLeft) + math.Abs(detRight))
	return
}

func orient3DFast(a, b, c, d r3.Vec) (det, errBound float64) {
	adx, ady, adz := a.X-d.X, a.Y-d.Y, a.Z-d.Z
	bdx, bdy, bdz := b.X-d.X, b.Y-d.Y, b.Z-d.Z
	cdx, cdy, cdz := c.X-d.X, c.Y-d.Y, c.Z-d.Z

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	det = adz*(bdxcdy-cdxbdy) + bdz*(cdxady-adxcdy) + cdz*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*math.Abs(adz) +
		(math.Abs(cdxady)+math.Abs(adxcdy))*math.Abs(bdz) +
		(math.Abs(adxbdy)+math.Abs(bdxady))*math.Abs(cdz)
	errBound = o3dErrBoundA * permanent
	return
}

func inCircleFast(a, b, c, d r2.Vec) (det, errBound float64) {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	aLift := adx*adx + ady*ady

	cdxady, adxcdy := cdx*ady, adx*cdy
	bLift := bdx*bdx + bdy*bdy

	adxbdy, bdxady := adx*bdy, bdx*ady
	cLift := cdx*cdx + cdy*cdy

	det = aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*aLift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*bLift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*cLift
	errBound = inCircErrBoundA * permanent
	return
}
