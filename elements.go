package orbital2d

import (
	"math"

	"github.com/ChristopherRabotin/orbital2d/kepler"
)

// Conversions between the orbital elements and the state of a body on a planar Keplerian orbit.
//
// Conventions: angles are in radians, e is the eccentricity, a the semi major axis, ω the argument of
// periapsis and μ the gravitational parameter. Time t is measured from periapsis passage, in the time
// unit of μ. Functions taking a time solve Kepler's equation exactly once, everything else is closed form.
//
// None of these functions validate their inputs: e >= 1, a <= 0 or μ <= 0 yield NaN or meaningless
// values. See CheckElements and the checked variants on Orbit.

// PositionVelocity2D is the focus centered position and velocity at a given instant.
type PositionVelocity2D struct {
	P, V Vector2
}

// SemiMinorAxis returns b = sqrt(a² - (e a)²). NaN for e > 1.
func SemiMinorAxis(e, a float64) float64 {
	c := LinearEccentricity(e, a)
	return math.Sqrt(a*a - c*c)
}

// LinearEccentricity returns c = e a, the distance between the centroid and a focus.
func LinearEccentricity(e, a float64) float64 {
	return e * a
}

// GeocentricDistance returns the orbit radius whose period is the rotational period T of the central
// body, i.e. the stationary orbit radius (Kepler's third law inverted).
func GeocentricDistance(μ, T float64) float64 {
	return math.Cbrt(μ * T * T / (4 * math.Pi * math.Pi))
}

// FocusFromCentroid returns the focus of the ellipse centered on centroid.
func FocusFromCentroid(e, a, ω float64, centroid Vector2) Vector2 {
	return centroid.Add(focusOffset(e, a, ω))
}

// CentroidFromFocus returns the centroid of the ellipse whose focus is provided.
func CentroidFromFocus(e, a, ω float64, focus Vector2) Vector2 {
	return focus.Sub(focusOffset(e, a, ω))
}

// focusOffset is c(sin ω, cos ω): the major axis lies along +y when ω = 0.
func focusOffset(e, a, ω float64) Vector2 {
	sinω, cosω := math.Sincos(ω)
	return Vector2{sinω, cosω}.Scale(LinearEccentricity(e, a))
}

// OrbitalPeriod returns T = 2π sqrt(a³/μ).
func OrbitalPeriod(a, μ float64) float64 {
	return twoPi * math.Sqrt(a*a*a/μ)
}

// MeanAngularMotion returns n = 2π/T.
func MeanAngularMotion(a, μ float64) float64 {
	return twoPi / OrbitalPeriod(a, μ)
}

// MeanAnomaly returns M = n t.
func MeanAnomaly(t, a, μ float64) float64 {
	return MeanAngularMotion(a, μ) * t
}

// EccentricAnomalyFromMeanAnomaly solves Kepler's equation for M and offsets the result by ω.
// NOTE: ω is added to the anomaly itself, the resulting position is not rotated by ω. Use ω = 0 to
// get the conventional orbital plane anomaly.
func EccentricAnomalyFromMeanAnomaly(M, e, ω float64) float64 {
	return kepler.EccentricAnomaly(e, M) + ω
}

// EccentricAnomalyFromPosition returns the polar angle of position as seen from focus.
// This is not a solved Kepler anomaly.
func EccentricAnomalyFromPosition(position, focus Vector2) float64 {
	return position.Sub(focus).Angle()
}

// EccentricAnomaly returns the eccentric anomaly at time t.
func EccentricAnomaly(t, e, a, ω, μ float64) float64 {
	return EccentricAnomalyFromMeanAnomaly(MeanAnomaly(t, a, μ), e, ω)
}

// TrueAnomalyFromEccentricAnomaly returns ν = 2 atan2(sqrt(1+e) sin(E/2), sqrt(1-e) cos(E/2)).
func TrueAnomalyFromEccentricAnomaly(E, e float64) float64 {
	sinE2, cosE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sinE2, math.Sqrt(1-e)*cosE2)
}

// TrueAnomaly returns the true anomaly at time t.
func TrueAnomaly(t, e, a, ω, μ float64) float64 {
	return TrueAnomalyFromEccentricAnomaly(EccentricAnomaly(t, e, a, ω, μ), e)
}

// HeliocentricDistanceFromEccentricAnomaly returns r = a(1 - e cos E).
func HeliocentricDistanceFromEccentricAnomaly(E, e, a float64) float64 {
	return a * (1 - e*math.Cos(E))
}

// HeliocentricDistance returns the distance to the focus at time t.
func HeliocentricDistance(t, e, a, ω, μ float64) float64 {
	return HeliocentricDistanceFromEccentricAnomaly(EccentricAnomaly(t, e, a, ω, μ), e, a)
}

// HeliocentricVelocityFromEccentricAnomaly returns sqrt(μa)/r (-sin E, sqrt(1-e²) cos E).
func HeliocentricVelocityFromEccentricAnomaly(E, e, a, μ float64) Vector2 {
	r := HeliocentricDistanceFromEccentricAnomaly(E, e, a)
	return velocity(E, e, a, μ, r)
}

func velocity(E, e, a, μ, r float64) Vector2 {
	scale := math.Sqrt(μ*a) / r
	sinE, cosE := math.Sincos(E)
	return Vector2{-sinE, math.Sqrt(1-e*e) * cosE}.Scale(scale)
}

// HeliocentricVelocity returns the velocity at time t.
func HeliocentricVelocity(t, e, a, ω, μ float64) Vector2 {
	return HeliocentricVelocityFromEccentricAnomaly(EccentricAnomaly(t, e, a, ω, μ), e, a, μ)
}

// HeliocentricStateFromEccentricAnomaly returns the position (r cos ν, r sin ν) and the velocity
// where r and ν both derive from E.
func HeliocentricStateFromEccentricAnomaly(E, e, a, μ float64) PositionVelocity2D {
	r := HeliocentricDistanceFromEccentricAnomaly(E, e, a)
	ν := TrueAnomalyFromEccentricAnomaly(E, e)
	sinν, cosν := math.Sincos(ν)
	return PositionVelocity2D{
		P: Vector2{r * cosν, r * sinν},
		V: velocity(E, e, a, μ, r),
	}
}

// HeliocentricState returns the position and velocity at time t.
func HeliocentricState(t, e, a, ω, μ float64) PositionVelocity2D {
	return HeliocentricStateFromEccentricAnomaly(EccentricAnomaly(t, e, a, ω, μ), e, a, μ)
}
