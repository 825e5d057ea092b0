package orbital2d

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R2 returns the counter clockwise rotation of angle x in the plane.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(2, 2, []float64{c, -s, s, c})
}

// OrbitFrame returns the matrix whose columns are the major axis direction (sin ω, cos ω) and the
// minor axis direction (-cos ω, sin ω). It maps orbit frame coordinates to the plane.
func OrbitFrame(ω float64) *mat64.Dense {
	sinω, cosω := math.Sincos(ω)
	return mat64.NewDense(2, 2, []float64{sinω, -cosω, cosω, sinω})
}

// MxV22 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV22(m mat64.Matrix, v Vector2) Vector2 {
	var rVec mat64.Vector
	rVec.MulVec(m, mat64.NewVector(2, v.Slice()))
	return Vector2{rVec.At(0, 0), rVec.At(1, 0)}
}
