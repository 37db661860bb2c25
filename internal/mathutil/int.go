package mathutil

// IntAbs returns the absolute value of an int.
func IntAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntSign returns -1, 0, or 1 based on sign.
func IntSign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Manhattan is the 4-neighbour grid distance of an offset.
func Manhattan(dx, dy int) int {
	return IntAbs(dx) + IntAbs(dy)
}

// Chebyshev is the 8-neighbour grid distance of an offset.
func Chebyshev(dx, dy int) int {
	return IntMax(IntAbs(dx), IntAbs(dy))
}
