package mathx

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns the value of x clamped to the range [min, max]. min must not
// be greater than max.
func Clamp[N Number](x, min, max N) N {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
