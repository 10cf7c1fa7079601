package mathx

import (
	"github.com/clinia/layoutx/castx"
)

// Integer arithmetic in three flavours:
//   - Checked returns ok=false instead of a result when the operation overflows.
//   - Saturating returns the nearest bound of T instead of overflowing.
//   - Wrapping is plain Go arithmetic, which wraps around on overflow.
//
// Division by zero is never an overflow: the Saturating and Wrapping divisions
// panic like the built-in operator, CheckedDiv reports ok=false.

// CheckedAdd returns a+b, or ok=false if the sum overflows T.
func CheckedAdd[T castx.Integer](a, b T) (T, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// CheckedSub returns a-b, or ok=false if the difference overflows T.
func CheckedSub[T castx.Integer](a, b T) (T, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}

// CheckedMul returns a*b, or ok=false if the product overflows T.
func CheckedMul[T castx.Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if isNegOneTimesMin(a, b) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// CheckedDiv returns a/b, or ok=false if b is zero or the quotient overflows T.
func CheckedDiv[T castx.Integer](a, b T) (T, bool) {
	if b == 0 || isMinOverNegOne(a, b) {
		return 0, false
	}
	return a / b, true
}

func SaturatingAdd[T castx.Integer](a, b T) T {
	if s, ok := CheckedAdd(a, b); ok {
		return s
	}
	if b > 0 {
		return castx.MaxOf[T]()
	}
	return castx.MinOf[T]()
}

func SaturatingSub[T castx.Integer](a, b T) T {
	if d, ok := CheckedSub(a, b); ok {
		return d
	}
	if b > 0 {
		return castx.MinOf[T]()
	}
	return castx.MaxOf[T]()
}

func SaturatingMul[T castx.Integer](a, b T) T {
	if p, ok := CheckedMul(a, b); ok {
		return p
	}
	if (a < 0) != (b < 0) {
		return castx.MinOf[T]()
	}
	return castx.MaxOf[T]()
}

func SaturatingDiv[T castx.Integer](a, b T) T {
	if isMinOverNegOne(a, b) {
		return castx.MaxOf[T]()
	}
	return a / b
}

func WrappingAdd[T castx.Integer](a, b T) T { return a + b }

func WrappingSub[T castx.Integer](a, b T) T { return a - b }

func WrappingMul[T castx.Integer](a, b T) T { return a * b }

func WrappingDiv[T castx.Integer](a, b T) T { return a / b }

// isNegOneTimesMin reports the signed pairing whose product cannot be
// represented: MinOf[T] times -1, in either order.
func isNegOneTimesMin[T castx.Integer](a, b T) bool {
	return isMinOverNegOne(a, b) || isMinOverNegOne(b, a)
}

func isMinOverNegOne[T castx.Integer](a, b T) bool {
	if !castx.IsSigned[T]() {
		return false
	}
	var one T = 1
	return a == castx.MinOf[T]() && b == -one
}
