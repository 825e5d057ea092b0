package orbital2d

import (
	"fmt"
	"math"
)

// bezierκ places the handles of a cubic Bézier quarter ellipse.
const bezierκ = 4 * (math.Sqrt2 - 1) / 3

// CurvePoint is a point of a cubic Bézier path. In and Out are handle offsets relative to Position.
type CurvePoint struct {
	Position, In, Out Vector2
}

// EllipsePoints samples resolution points of the orbit placed around a fixed focus, e.g. the position
// of the orbited body. The first point is the periapsis and points are counter clockwise.
func EllipsePoints(o Orbit, focus Vector2, resolution int) ([]Vector2, error) {
	if resolution < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrResolution, resolution)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	shape := o.Shape()
	centroid := o.Centroid(focus)
	frame := OrbitFrame(o.ω)
	points := make([]Vector2, resolution)
	step := twoPi / float64(resolution)
	for i := range points {
		sinθ, cosθ := math.Sincos(float64(i) * step)
		points[i] = centroid.Add(MxV22(frame, Vector2{shape.A * cosθ, shape.B * sinθ}))
	}
	return points, nil
}

// BezierPath returns a closed path of four cubic Bézier arcs through the vertices of the orbit placed
// around focus, starting and ending at the periapsis.
func BezierPath(o Orbit, focus Vector2) ([]CurvePoint, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	shape := o.Shape()
	a, b := shape.A, shape.B
	ka, kb := bezierκ*a, bezierκ*b
	centroid := o.Centroid(focus)
	frame := OrbitFrame(o.ω)
	local := []CurvePoint{
		{Vector2{a, 0}, Vector2{0, -kb}, Vector2{0, kb}},
		{Vector2{0, b}, Vector2{ka, 0}, Vector2{-ka, 0}},
		{Vector2{-a, 0}, Vector2{0, kb}, Vector2{0, -kb}},
		{Vector2{0, -b}, Vector2{-ka, 0}, Vector2{ka, 0}},
		{Vector2{a, 0}, Vector2{0, -kb}, Vector2{0, kb}},
	}
	path := make([]CurvePoint, len(local))
	for i, pt := range local {
		path[i] = CurvePoint{
			Position: centroid.Add(MxV22(frame, pt.Position)),
			In:       MxV22(frame, pt.In),
			Out:      MxV22(frame, pt.Out),
		}
	}
	return path, nil
}

// BezierAt evaluates the arc between p0 and p1 at s in [0, 1].
func BezierAt(p0, p1 CurvePoint, s float64) Vector2 {
	c0 := p0.Position
	c1 := p0.Position.Add(p0.Out)
	c2 := p1.Position.Add(p1.In)
	c3 := p1.Position
	r := 1 - s
	return c0.Scale(r * r * r).Add(c1.Scale(3 * r * r * s)).Add(c2.Scale(3 * r * s * s)).Add(c3.Scale(s * s * s))
}
