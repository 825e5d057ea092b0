package orbital2d

import (
	"math"

	"github.com/ChristopherRabotin/orbital2d/kepler"
	"github.com/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
	twoPi   = 2 * math.Pi
)

// Vector2 is a plane vector, used for positions, velocities, foci and centroids.
type Vector2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{v.X - w.X, v.Y - w.Y}
}

// Scale returns s*v.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{s * v.X, s * v.Y}
}

// Dot returns the inner product.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of v x w.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Norm returns the Euclidean norm.
func (v Vector2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the polar angle of v in radians, in (-π, π].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Equals returns whether both components are within ε of each other.
func (v Vector2) Equals(w Vector2, ε float64) bool {
	return floats.EqualWithinAbs(v.X, w.X, ε) && floats.EqualWithinAbs(v.Y, w.Y, ε)
}

// Slice returns the vector as a []float64, handy for gonum.
func (v Vector2) Slice() []float64 {
	return []float64{v.X, v.Y}
}

// Deg2rad converts degrees to radians, reduced into [0, 2π).
func Deg2rad(a float64) float64 {
	return kepler.NormalizeAngle(a * deg2rad)
}

// Rad2deg converts radians to degrees, reduced into [0, 360).
func Rad2deg(a float64) float64 {
	d := kepler.NormalizeAngle(a) / deg2rad
	if d >= 360 {
		d = 0
	}
	return d
}
