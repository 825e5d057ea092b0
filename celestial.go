package orbital2d

import (
	"fmt"
	"strings"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
)

// CelestialObject defines a celestial object which can sit at the focus of an orbit.
// Distances are in km, μ in km³/s² and periods in seconds.
type CelestialObject struct {
	Name     string
	Radius   float64
	a        float64 // heliocentric semi major axis
	e        float64 // heliocentric eccentricity
	ϖ        float64 // longitude of perihelion (degrees)
	μ        float64
	rotation float64 // sidereal rotation period
}

// GM returns the gravitational parameter μ of the body in km³/s².
func (c CelestialObject) GM() float64 {
	return c.μ
}

// RotationPeriod returns the sidereal rotation period in seconds.
func (c CelestialObject) RotationPeriod() float64 {
	return c.rotation
}

// StationaryRadius returns the radius of the orbit whose period matches the rotation of this object
// (e.g. 42164 km for Earth).
func (c CelestialObject) StationaryRadius() float64 {
	return GeocentricDistance(c.μ, c.rotation)
}

// HelioOrbit returns the planar heliocentric orbit of this object, with the longitude of perihelion
// as the argument of periapsis.
func (c CelestialObject) HelioOrbit() (Orbit, error) {
	if c.Name == Sun.Name {
		return Orbit{}, fmt.Errorf("%s has no heliocentric orbit", c.Name)
	}
	return NewOrbitAround(c.e, c.a, Deg2rad(c.ϖ), Sun), nil
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals compares the name, radius, heliocentric semi major axis and μ.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ
}

// CelestialObjectFromString looks up a catalog body by name, case insensitively.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined celestial object '%s'", name)
	}
}

// Catalog bodies: radius (km), heliocentric a (km), e, ϖ (degrees), μ (km³/s²), sidereal rotation (s).

// Sun is the central body of the heliocentric orbits; it has none itself.
var Sun = CelestialObject{"Sun", 695700, -1, 0, 0, 1.32712440017987e11, 2192832}

// Venus rotates retrograde, only the magnitude of its rotation is kept.
var Venus = CelestialObject{"Venus", 6051.8, 108208601, 0.006772, 131.53, 3.24858599e5, 20996760}

// Earth has the geostationary radius, about 42164 km.
var Earth = CelestialObject{"Earth", 6378.1363, 149598023, 0.0167086, 102.9372, 3.98600433e5, 86164.0905}

// Mars has the areostationary radius, about 20428 km.
var Mars = CelestialObject{"Mars", 3396.19, 227939282.5616, 0.0934, 336.04, 4.28283100e4, 88642.66}

// Jupiter is the outermost catalog body (about 11.9 years around the Sun).
var Jupiter = CelestialObject{"Jupiter", 71492.0, 778298361, 0.0489, 14.75, 1.266865361e8, 35730}
