// Package castx converts between integer widths without wraparound.
//
// A conversion that cannot represent the source value exactly saturates to the
// destination type's minimum or maximum, on the side of the source value's sign.
package castx

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is any built-in integer type, including the platform word sized int,
// uint and uintptr.
type Integer interface {
	constraints.Integer
}

// Signed is any built-in signed integer type.
type Signed interface {
	constraints.Signed
}

// Cast converts v to the integer type To, saturating to MinOf[To] or MaxOf[To]
// when v is not representable in To. It never panics and casting a type to
// itself is the identity.
//
//	castx.Cast[int8](300)       // 127
//	castx.Cast[uint16](-1)      // 0
//	castx.Cast[int32](uint8(9)) // 9
func Cast[To, From Integer](v From) To {
	to := To(v)
	// The round trip catches truncation, the sign check catches a same-width
	// reinterpretation such as int8(-1) <-> uint8(255).
	if From(to) == v && (to < 0) == (v < 0) {
		return to
	}
	if v < 0 {
		return MinOf[To]()
	}
	return MaxOf[To]()
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	var zero T
	return ^zero < 0
}

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MinOf returns the smallest value representable by T.
func MinOf[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	return T(1) << (BitSize[T]() - 1)
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Integer]() T {
	if !IsSigned[T]() {
		var zero T
		return ^zero
	}
	return ^MinOf[T]()
}
