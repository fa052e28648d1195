package picker

import "math"

// openFraction reports whether v is finite and strictly inside (0,1).
func openFraction(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v > 0 && v < 1
}

func finiteNonNegative(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= 0
}
