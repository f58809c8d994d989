package common

import "math"

// RoundHalfUp rounds to the nearest integer with halves going towards +Inf,
// so 19.5 becomes 20 and -0.5 becomes 0.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
