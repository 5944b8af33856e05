package predicates

import (
	"math/big"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Exact fallbacks. Every finite float64 is a rational, so the determinants are evaluated without rounding.

func rat(x float64) *big.Rat {
	return new(big.Rat).SetFloat64(x)
}

func sub(x, y float64) *big.Rat {
	return new(big.Rat).Sub(rat(x), rat(y))
}

func mul(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, y)
}

// det2 is x0*y1 - x1*y0
func det2(x0, y0, x1, y1 *big.Rat) *big.Rat {
	return new(big.Rat).Sub(mul(x0, y1), mul(x1, y0))
}

// det3 expands the determinant of the rows (x_i, y_i, z_i) along z
func det3(x, y, z [3]*big.Rat) *big.Rat {
	t0 := mul(z[0], det2(x[1], y[1], x[2], y[2]))
	t1 := mul(z[1], det2(x[2], y[2], x[0], y[0]))
	t2 := mul(z[2], det2(x[0], y[0], x[1], y[1]))
	return t0.Add(t0, t1).Add(t0, t2)
}

func orient2DExact(a, b, c r2.Vec) Sign {
	d := det2(sub(a.X, c.X), sub(a.Y, c.Y), sub(b.X, c.X), sub(b.Y, c.Y))
	return Sign(d.Sign())
}

func orient3DExact(a, b, c, d r3.Vec) Sign {
	x := [3]*big.Rat{sub(a.X, d.X), sub(b.X, d.X), sub(c.X, d.X)}
	y := [3]*big.Rat{sub(a.Y, d.Y), sub(b.Y, d.Y), sub(c.Y, d.Y)}
	z := [3]*big.Rat{sub(a.Z, d.Z), sub(b.Z, d.Z), sub(c.Z, d.Z)}
	return Sign(det3(x, y, z).Sign())
}

// inCircleExact lifts the translated points exactly, which matches lifting before translating
func inCircleExact(a, b, c, d r2.Vec) Sign {
	var x, y, z [3]*big.Rat
	for i, p := range [3]r2.Vec{a, b, c} {
		x[i] = sub(p.X, d.X)
		y[i] = sub(p.Y, d.Y)
		z[i] = new(big.Rat).Add(mul(x[i], x[i]), mul(y[i], y[i]))
	}
	return Sign(det3(x, y, z).Sign())
}
