// Package kepler solves Kepler's equation M = E - e sin(E) for elliptical orbits.
//
// The solver follows "A Practical Method for Solving the Kepler Equation", Marc A. Murison, 2006:
// a third order starting value refined by a third order correction until the change between two
// estimates falls below the tolerance of the eccentricity band.
package kepler

import "math"

const (
	// MaxIterations caps the correction loop.
	MaxIterations = 100
	twoPi         = 2 * math.Pi
)

// Solution is the result of a Kepler equation solve.
type Solution struct {
	E          float64 // eccentric anomaly (radians)
	Iterations int     // number of corrections applied
	Converged  bool    // false if MaxIterations was hit before the tolerance
}

// Tolerance returns the convergence tolerance for the provided eccentricity.
func Tolerance(e float64) float64 {
	if e < 0.8 {
		return 1e-14
	}
	return 1e-13
}

// NormalizeAngle reduces θ (radians) into [0, 2π).
// Negative angles are folded forward: -π/2 becomes 3π/2.
func NormalizeAngle(θ float64) float64 {
	θ = math.Mod(θ, twoPi)
	if θ < 0 {
		θ += twoPi
	}
	if θ >= twoPi {
		// -1e-17 + 2π rounds to 2π.
		θ = 0
	}
	return θ
}

// Start3 returns Murison's third order starting value for the eccentric anomaly.
func Start3(e, M float64) float64 {
	t34 := e * e
	t35 := e * t34
	t33 := math.Cos(M)
	return M + (-0.5*t35+e+(t34+1.5*t33*t35)*t33)*math.Sin(M)
}

// Eps3 returns Murison's third order correction to the estimate x. The next estimate is x - Eps3(e, M, x).
func Eps3(e, M, x float64) float64 {
	t1 := math.Cos(x)
	t2 := -1 + e*t1
	t3 := math.Sin(x)
	t4 := e * t3
	t5 := -x + t4 + M
	t6 := t5 / (0.5*t5*t4/t2 + t2)
	return t5 / ((0.5*t3-t1*t6/6)*e*t6 + t2)
}

// Solve returns the eccentric anomaly for the eccentricity e in [0, 1) and the mean anomaly M (radians).
// M is first reduced into [0, 2π). If the tolerance is not met within MaxIterations, the last estimate
// is returned with Converged set to false. This only happens for nearly parabolic orbits (e >= 0.9999)
// with M close to 0 or 2π, where the iteration may diverge: an unconverged E can be arbitrarily far
// from the root and must not be used as an approximation.
// The result is undefined for e >= 1.
func Solve(e, M float64) Solution {
	tol := Tolerance(e)
	Mnorm := NormalizeAngle(M)
	E0 := Start3(e, Mnorm)
	sol := Solution{E: E0}
	for sol.Iterations < MaxIterations {
		sol.E = E0 - Eps3(e, Mnorm, E0)
		sol.Iterations++
		if math.Abs(sol.E-E0) <= tol {
			sol.Converged = true
			break
		}
		E0 = sol.E
	}
	return sol
}

// EccentricAnomaly solves Kepler's equation and returns the last estimate of E (radians).
// Non convergence is silent, use Solve to inspect it.
func EccentricAnomaly(e, M float64) float64 {
	return Solve(e, M).E
}

// MeanAnomaly is Kepler's equation itself: M = E - e sin(E).
func MeanAnomaly(e, E float64) float64 {
	return E - e*math.Sin(E)
}
