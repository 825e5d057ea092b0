package orbital2d

import (
	"fmt"
	"math"
)

const eps = 1e-10

// anglesEqual returns whether two angles in Radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Abs(math.Mod(a-b, twoPi))
	if diff < eps || math.Abs(diff-twoPi) < eps {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10fπ", diff/math.Pi)
}
