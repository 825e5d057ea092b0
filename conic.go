package orbital2d

import "fmt"

// ConicType is the conic section described by an eccentricity.
type ConicType uint8

const (
	// Circle is e == 0.
	Circle ConicType = iota + 1
	// Ellipse is 0 < e < 1.
	Ellipse
	// Parabola is e == 1.
	Parabola
	// Hyperbola is e > 1.
	Hyperbola
)

func (c ConicType) String() string {
	switch c {
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case Parabola:
		return "parabola"
	case Hyperbola:
		return "hyperbola"
	default:
		return fmt.Sprintf("conic(%d)", uint8(c))
	}
}

// Bound returns whether this conic is a closed orbit.
func (c ConicType) Bound() bool {
	return c == Circle || c == Ellipse
}

// The predicates use exact comparisons: an eccentricity of 1e-17 is an ellipse, not a circle.
// Callers with noisy eccentricities must round them first.

// IsCircle returns whether e describes a circle.
func IsCircle(e float64) bool {
	return e == 0
}

// IsEllipse returns whether e describes a (non circular) ellipse.
func IsEllipse(e float64) bool {
	return e > 0 && e < 1
}

// IsParabola returns whether e describes a parabola.
func IsParabola(e float64) bool {
	return e == 1
}

// IsHyperbola returns whether e describes a hyperbola.
func IsHyperbola(e float64) bool {
	return e > 1
}

// Classify returns the conic type of e, or zero for a negative or NaN eccentricity.
func Classify(e float64) ConicType {
	switch {
	case IsCircle(e):
		return Circle
	case IsEllipse(e):
		return Ellipse
	case IsParabola(e):
		return Parabola
	case IsHyperbola(e):
		return Hyperbola
	default:
		return 0
	}
}
