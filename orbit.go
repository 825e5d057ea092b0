package orbital2d

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ChristopherRabotin/orbital2d/kepler"
	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees
	distanceε     = 1e-6                         // relative
)

// Orbit is a planar Keplerian orbit: eccentricity e, semi major axis a, argument of periapsis ω (radians)
// and the gravitational parameter μ of the body at its focus.
// Orbit is a value: nothing is cached, every derived quantity is recomputed from the elements.
type Orbit struct {
	e, a, ω, μ float64
}

// State is the full derivation of an orbit at time t past periapsis.
type State struct {
	T          float64 // time since periapsis passage
	M          float64 // mean anomaly
	E          float64 // eccentric anomaly (offset by ω)
	ν          float64 // true anomaly
	R          float64 // distance to the focus
	Iterations int     // Kepler solver iterations
	Converged  bool    // whether the Kepler solver met its tolerance
	PositionVelocity2D
}

// TrueAnomaly returns ν.
func (s State) TrueAnomaly() float64 {
	return s.ν
}

// String implements the Stringer interface.
func (s State) String() string {
	return fmt.Sprintf("t=%g M=%.6f E=%.6f ν=%.6f r=%.6f P=(%.6f, %.6f) V=(%.6f, %.6f)", s.T, s.M, s.E, s.ν, s.R, s.P.X, s.P.Y, s.V.X, s.V.Y)
}

// Shape holds the lengths of the ellipse described by an orbit.
type Shape struct {
	A, B, C float64 // semi major axis, semi minor axis and linear eccentricity
}

// NewOrbit returns an orbit from its elements. ω is in radians.
func NewOrbit(e, a, ω, μ float64) Orbit {
	return Orbit{e, a, ω, μ}
}

// NewOrbitAround returns an orbit around the provided body. ω is in radians.
func NewOrbitAround(e, a, ω float64, body CelestialObject) Orbit {
	return Orbit{e, a, ω, body.μ}
}

// Elements returns e, a, ω and μ.
func (o Orbit) Elements() (e, a, ω, μ float64) {
	return o.e, o.a, o.ω, o.μ
}

// Eccentricity returns e.
func (o Orbit) Eccentricity() float64 { return o.e }

// SemiMajorAxis returns a.
func (o Orbit) SemiMajorAxis() float64 { return o.a }

// ArgPeriapsis returns ω in radians.
func (o Orbit) ArgPeriapsis() float64 { return o.ω }

// GM returns μ.
func (o Orbit) GM() float64 { return o.μ }

// Conic returns the conic section of this orbit.
func (o Orbit) Conic() ConicType {
	return Classify(o.e)
}

// Shape returns a, b and c.
func (o Orbit) Shape() Shape {
	return Shape{o.a, SemiMinorAxis(o.e, o.a), LinearEccentricity(o.e, o.a)}
}

// Energyξ returns the specific mechanical energy ξ.
func (o Orbit) Energyξ() float64 {
	return -o.μ / (2 * o.a)
}

// SemiParameter returns the semi parameter p.
func (o Orbit) SemiParameter() float64 {
	return o.a * (1 - o.e*o.e)
}

// Apoapsis returns the apoapsis radius.
func (o Orbit) Apoapsis() float64 {
	return o.a * (1 + o.e)
}

// Periapsis returns the periapsis radius.
func (o Orbit) Periapsis() float64 {
	return o.a * (1 - o.e)
}

// Period returns the period of this orbit in the time unit of μ.
func (o Orbit) Period() float64 {
	return OrbitalPeriod(o.a, o.μ)
}

// PeriodDuration returns the period assuming μ is expressed per second squared.
// Periods beyond the range of time.Duration (and NaN periods) return ErrPeriodTooLong.
func (o Orbit) PeriodDuration() (time.Duration, error) {
	ns := o.Period() * float64(time.Second)
	if !(ns < math.MaxInt64) {
		return 0, fmt.Errorf("%w: T=%g s", ErrPeriodTooLong, o.Period())
	}
	return time.Duration(ns), nil
}

// MeanMotion returns n.
func (o Orbit) MeanMotion() float64 {
	return MeanAngularMotion(o.a, o.μ)
}

// Focus returns the focus of this orbit when centered on centroid.
func (o Orbit) Focus(centroid Vector2) Vector2 {
	return FocusFromCentroid(o.e, o.a, o.ω, centroid)
}

// Centroid returns the centroid of this orbit when its focus is at focus.
func (o Orbit) Centroid(focus Vector2) Vector2 {
	return CentroidFromFocus(o.e, o.a, o.ω, focus)
}

// MeanAnomaly returns M at time t.
func (o Orbit) MeanAnomaly(t float64) float64 {
	return MeanAnomaly(t, o.a, o.μ)
}

// EccentricAnomaly returns E at time t.
func (o Orbit) EccentricAnomaly(t float64) float64 {
	return EccentricAnomaly(t, o.e, o.a, o.ω, o.μ)
}

// TrueAnomaly returns ν at time t.
func (o Orbit) TrueAnomaly(t float64) float64 {
	return TrueAnomaly(t, o.e, o.a, o.ω, o.μ)
}

// Distance returns r at time t.
func (o Orbit) Distance(t float64) float64 {
	return HeliocentricDistance(t, o.e, o.a, o.ω, o.μ)
}

// Velocity returns the velocity at time t.
func (o Orbit) Velocity(t float64) Vector2 {
	return HeliocentricVelocity(t, o.e, o.a, o.ω, o.μ)
}

// PV returns the position and velocity at time t.
func (o Orbit) PV(t float64) PositionVelocity2D {
	return HeliocentricState(t, o.e, o.a, o.ω, o.μ)
}

// At returns the state at time t, solving Kepler's equation once.
func (o Orbit) At(t float64) State {
	M := o.MeanAnomaly(t)
	sol := kepler.Solve(o.e, M)
	E := sol.E + o.ω
	return State{
		T:                  t,
		M:                  M,
		E:                  E,
		ν:                  TrueAnomalyFromEccentricAnomaly(E, o.e),
		R:                  HeliocentricDistanceFromEccentricAnomaly(E, o.e, o.a),
		Iterations:         sol.Iterations,
		Converged:          sol.Converged,
		PositionVelocity2D: HeliocentricStateFromEccentricAnomaly(E, o.e, o.a, o.μ),
	}
}

// String prints the conic, the elements with ω in degrees, and μ.
func (o Orbit) String() string {
	return fmt.Sprintf("%s a=%.3f e=%.6f ω=%.3f μ=%g", o.Conic(), o.a, o.e, Rad2deg(o.ω), o.μ)
}

// Equals returns whether two orbits are identical within the element tolerances.
func (o Orbit) Equals(o1 Orbit) (bool, error) {
	if !floats.EqualWithinRel(o.μ, o1.μ, distanceε) {
		return false, errors.New("gravitational parameter invalid")
	}
	if !floats.EqualWithinRel(o.a, o1.a, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(o.e, o1.e, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if o.e > eccentricityε {
		// ω is meaningless on a circle.
		if diff := math.Abs(math.Remainder(o.ω-o1.ω, 2*math.Pi)); diff > angleε {
			return false, errors.New("argument of periapsis invalid")
		}
	}
	return true, nil
}

// Radii2ae converts apoapsis and periapsis radii into a semi major axis and an eccentricity.
// It panics if rA < rP.
func Radii2ae(rA, rP float64) (a, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
