package common

// Abs returns the absolute value of an integer
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to the closed range [lo, hi]
func Clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ChebyshevDistance is the number of 8-connected steps between two points
// on an open grid
func ChebyshevDistance(x1, y1, x2, y2 int) int {
	return max(Abs(x1-x2), Abs(y1-y2))
}
