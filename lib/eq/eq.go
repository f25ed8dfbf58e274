/*package eq is a simple package for telling whether two numeric arrays are
equal to one another, exactly or to within a tolerance.*/
package eq

import (
	"math"
)

// Float64s returns true if two []float64 arrays are the same and false
// otherwise.
func Float64s(x, y []float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Float64sEps returns true if the two []float64 arrays are within eps of one
// another and false otherwise.
func Float64sEps(x, y []float64, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i]+eps < y[i] || x[i]-eps > y[i] {
			return false
		}
	}
	return true
}

// Float64Rel returns true if x and y agree to within the relative tolerance
// rel, with an absolute floor for values near zero.
func Float64Rel(x, y, rel float64) bool {
	scale := math.Max(math.Abs(x), math.Abs(y))
	if scale < rel {
		scale = 1
	}
	return math.Abs(x-y) <= rel*scale
}

// Ints returns true if two []int arrays are the same and false otherwise.
func Ints(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
