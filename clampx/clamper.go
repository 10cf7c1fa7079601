// Package clampx bounds layout dimensions to half of their type's range.
//
// A Clamper[T] restricts values to [MinOf[T]/2, MaxOf[T]/2]. The outer half of
// the range is left as headroom, so that moving the largest size to the
// furthest position still yields coordinates representable in T.
//
// For int8 the clamped range is -64..63, for int16 it is -16_384..16_383.
package clampx

import (
	"github.com/clinia/layoutx/castx"
	"github.com/clinia/layoutx/mathx"
)

// Clamper clamps values of the signed integer type T to its half range.
// The zero value is ready to use.
type Clamper[T castx.Signed] struct{}

type (
	Clamper8  = Clamper[int8]
	Clamper16 = Clamper[int16]
	Clamper32 = Clamper[int32]
	Clamper64 = Clamper[int64]
)

// Min returns the smallest clamped value, MinOf[T]/2.
func (Clamper[T]) Min() T {
	return castx.MinOf[T]() / 2
}

// Max returns the largest clamped value, MaxOf[T]/2.
func (Clamper[T]) Max() T {
	return castx.MaxOf[T]() / 2
}

// Clamp clamps d to [Min, Max].
func (c Clamper[T]) Clamp(d T) T {
	return mathx.Clamp(d, c.Min(), c.Max())
}

// ClampNonNegative clamps d to [0, Max].
func (c Clamper[T]) ClampNonNegative(d T) T {
	return mathx.Clamp(d, 0, c.Max())
}

// ClampPositive clamps d to [1, Max]. It never returns zero.
func (c Clamper[T]) ClampPositive(d T) T {
	return mathx.Clamp(d, 1, c.Max())
}

// Clamp clamps d to the half range of T.
func Clamp[T castx.Signed](d T) T {
	return Clamper[T]{}.Clamp(d)
}

// ClampNonNegative clamps d to [0, Clamper[T].Max].
func ClampNonNegative[T castx.Signed](d T) T {
	return Clamper[T]{}.ClampNonNegative(d)
}

// ClampPositive clamps d to [1, Clamper[T].Max].
func ClampPositive[T castx.Signed](d T) T {
	return Clamper[T]{}.ClampPositive(d)
}

// ClampFrom converts the foreign integer d into the half range of T,
// saturating first and clamping after.
//
//	clampx.ClampFrom[int32](uint32(math.MaxUint32)) // Clamper32{}.Max()
func ClampFrom[T castx.Signed, W castx.Integer](d W) T {
	return Clamp(castx.Cast[T](d))
}

// ClampNonNegativeFrom converts d into [0, Clamper[T].Max].
func ClampNonNegativeFrom[T castx.Signed, W castx.Integer](d W) T {
	return ClampNonNegative(castx.Cast[T](d))
}

// ClampPositiveFrom converts d into [1, Clamper[T].Max].
func ClampPositiveFrom[T castx.Signed, W castx.Integer](d W) T {
	return ClampPositive(castx.Cast[T](d))
}

// ClampTo clamps d to the half range of T and converts the result to W,
// saturating where W is narrower than the half range.
//
//	clampx.ClampTo[int16](int32(math.MaxInt32)) // math.MaxInt16
//	clampx.ClampTo[uint16](int32(-5))           // 0
func ClampTo[W castx.Integer, T castx.Signed](d T) W {
	return castx.Cast[W](Clamp(d))
}

// ClampNonNegativeTo clamps d to [0, Clamper[T].Max] and converts it to W.
func ClampNonNegativeTo[W castx.Integer, T castx.Signed](d T) W {
	return castx.Cast[W](ClampNonNegative(d))
}

// ClampPositiveTo clamps d to [1, Clamper[T].Max] and converts it to W.
// The result is never zero.
func ClampPositiveTo[W castx.Integer, T castx.Signed](d T) W {
	return castx.Cast[W](ClampPositive(d))
}
