package orbital2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/ChristopherRabotin/orbital2d/kepler"
)

var (
	// ErrNotElliptic is returned when the eccentricity is not in [0, 1).
	ErrNotElliptic = errors.New("eccentricity must be in [0, 1)")
	// ErrSemiMajorAxis is returned when the semi major axis is not strictly positive.
	ErrSemiMajorAxis = errors.New("semi major axis must be strictly positive")
	// ErrGravitationalParameter is returned when μ is not strictly positive.
	ErrGravitationalParameter = errors.New("gravitational parameter must be strictly positive")
	// ErrNonConvergence is returned when Kepler's equation could not be solved within the tolerance.
	ErrNonConvergence = errors.New("kepler solver did not converge")
	// ErrResolution is returned when a path is requested with fewer than three points.
	ErrResolution = errors.New("resolution must be at least 3")
	// ErrPeriodTooLong is returned when a period does not fit in a time.Duration (about 292 years).
	ErrPeriodTooLong = errors.New("period too long for a time.Duration")
)

// CheckElements validates elements before they are given to the unchecked functions.
func CheckElements(e, a, μ float64) error {
	if !(e >= 0 && e < 1) {
		return fmt.Errorf("%w: e=%g is a %s", ErrNotElliptic, e, Classify(e))
	}
	if !(a > 0) || math.IsInf(a, 1) {
		return fmt.Errorf("%w: a=%g", ErrSemiMajorAxis, a)
	}
	if !(μ > 0) || math.IsInf(μ, 1) {
		return fmt.Errorf("%w: μ=%g", ErrGravitationalParameter, μ)
	}
	return nil
}

// SolveChecked solves Kepler's equation, reporting a hyperbolic/parabolic eccentricity or a non
// converged solve as an error. The estimate is returned in the latter case.
func SolveChecked(e, M float64) (float64, error) {
	if !(e >= 0 && e < 1) {
		return math.NaN(), fmt.Errorf("%w: e=%g is a %s", ErrNotElliptic, e, Classify(e))
	}
	sol := kepler.Solve(e, M)
	if !sol.Converged {
		return sol.E, fmt.Errorf("%w: e=%g M=%g after %d iterations", ErrNonConvergence, e, M, sol.Iterations)
	}
	return sol.E, nil
}

// Validate returns an error if this orbit cannot be used by the elliptical conversions.
func (o Orbit) Validate() error {
	return CheckElements(o.e, o.a, o.μ)
}

// StateChecked returns the state at time t, or an error if the orbit is invalid or the solver did not
// converge (in which case the best effort state is returned too).
func (o Orbit) StateChecked(t float64) (State, error) {
	if err := o.Validate(); err != nil {
		return State{}, err
	}
	s := o.At(t)
	if !s.Converged {
		return s, fmt.Errorf("%w: t=%g e=%g after %d iterations", ErrNonConvergence, t, o.e, s.Iterations)
	}
	return s, nil
}
