// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StepToward returns the signed speed that moves a coordinate toward a target,
// or 0 once the remaining distance is within tolerance.
func StepToward(diff, speed, tolerance float64) float64 {
	switch {
	case diff > tolerance:
		return speed
	case diff < -tolerance:
		return -speed
	default:
		return 0
	}
}
