package common

import "math"

// FloorDiv divides rounding toward negative infinity, so cells left of or
// above the origin map to negative coordinates.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Cell returns the grid cell containing the pixel coordinate v.
func Cell(v float64, size int) int {
	return int(math.Floor(v / float64(size)))
}

// Lerp moves a toward b by the fraction t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
