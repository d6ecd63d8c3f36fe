package canvas

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transform mapping (x, y) to
// (A*x + B*y + C, D*x + E*y + F).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a transform that moves points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a transform that scales about the origin.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a rotation by angle radians about the origin. The y axis
// points down, so positive angles turn clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m∘n: n is applied first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// TransformPoint maps (x, y) through m.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation reports whether m only translates.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// Aff3 returns m in the layout golang.org/x/image/draw expects.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}
