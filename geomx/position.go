// Package geomx holds small layout values built on the half range clamp of
// package clampx: a Position, a Size and a Zone combining both.
//
// Every constructor, setter and arithmetic result is clamped, so positions
// stay within [Clamper[T].Min, Clamper[T].Max] and sizes within
// [1, Clamper[T].Max]. Adding any size to any position is then representable
// in T.
package geomx

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/clinia/layoutx/castx"
	"github.com/clinia/layoutx/clampx"
	"github.com/clinia/layoutx/mathx"
	"github.com/clinia/layoutx/slogx"
)

// Position is a 2D position with coordinates clamped to the half range of T.
type Position[T castx.Signed] struct {
	x T
	y T
}

type (
	Position8  = Position[int8]
	Position16 = Position[int16]
	Position32 = Position[int32]
	Position64 = Position[int64]
)

// NewPosition returns the position (x, y), each coordinate clamped.
func NewPosition[T castx.Signed](x, y T) Position[T] {
	return Position[T]{x: clampx.Clamp(x), y: clampx.Clamp(y)}
}

// PositionFrom converts foreign coordinates into a Position[T].
//
//	geomx.PositionFrom[int16](uint32(10), uint32(math.MaxUint32)) // x:10 y:16383
func PositionFrom[T castx.Signed, W castx.Integer](x, y W) Position[T] {
	return Position[T]{x: clampx.ClampFrom[T](x), y: clampx.ClampFrom[T](y)}
}

// PositionTo converts p into foreign coordinates, saturating where W is
// narrower than T.
func PositionTo[W castx.Integer, T castx.Signed](p Position[T]) (W, W) {
	return clampx.ClampTo[W](p.x), clampx.ClampTo[W](p.y)
}

func (p Position[T]) X() T {
	return p.x
}

func (p Position[T]) Y() T {
	return p.y
}

func (p *Position[T]) SetX(x T) {
	p.x = clampx.Clamp(x)
}

func (p *Position[T]) SetY(y T) {
	p.y = clampx.Clamp(y)
}

// Swap exchanges x and y in place.
func (p *Position[T]) Swap() {
	p.x, p.y = p.y, p.x
}

// Swapped returns a copy of p with x and y exchanged.
func (p Position[T]) Swapped() Position[T] {
	return Position[T]{x: p.y, y: p.x}
}

func (p Position[T]) Tuple() (T, T) {
	return p.x, p.y
}

// SaturatingAdd adds o to p per coordinate.
func (p Position[T]) SaturatingAdd(o Position[T]) Position[T] {
	return p.apply(o, mathx.SaturatingAdd[T])
}

func (p Position[T]) SaturatingSub(o Position[T]) Position[T] {
	return p.apply(o, mathx.SaturatingSub[T])
}

func (p Position[T]) SaturatingMul(o Position[T]) Position[T] {
	return p.apply(o, mathx.SaturatingMul[T])
}

// SaturatingDiv divides p by o per coordinate. It panics if a coordinate of o
// is zero.
func (p Position[T]) SaturatingDiv(o Position[T]) Position[T] {
	return p.apply(o, mathx.SaturatingDiv[T])
}

// WrappingAdd adds o to p per coordinate, wrapping on overflow before
// clamping. Within the half range a single addition never wraps.
func (p Position[T]) WrappingAdd(o Position[T]) Position[T] {
	return p.apply(o, mathx.WrappingAdd[T])
}

func (p Position[T]) WrappingSub(o Position[T]) Position[T] {
	return p.apply(o, mathx.WrappingSub[T])
}

func (p Position[T]) WrappingMul(o Position[T]) Position[T] {
	return p.apply(o, mathx.WrappingMul[T])
}

func (p Position[T]) WrappingDiv(o Position[T]) Position[T] {
	return p.apply(o, mathx.WrappingDiv[T])
}

// CheckedAdd adds o to p per coordinate. It returns false when a coordinate
// overflows T.
func (p Position[T]) CheckedAdd(o Position[T]) (Position[T], bool) {
	return p.applyChecked(o, mathx.CheckedAdd[T])
}

func (p Position[T]) CheckedSub(o Position[T]) (Position[T], bool) {
	return p.applyChecked(o, mathx.CheckedSub[T])
}

func (p Position[T]) CheckedMul(o Position[T]) (Position[T], bool) {
	return p.applyChecked(o, mathx.CheckedMul[T])
}

// CheckedDiv divides p by o per coordinate. It returns false when a
// coordinate of o is zero.
func (p Position[T]) CheckedDiv(o Position[T]) (Position[T], bool) {
	return p.applyChecked(o, mathx.CheckedDiv[T])
}

func (p Position[T]) SaturatingAddValue(v T) Position[T] {
	return p.SaturatingAdd(Position[T]{x: v, y: v})
}

func (p Position[T]) SaturatingSubValue(v T) Position[T] {
	return p.SaturatingSub(Position[T]{x: v, y: v})
}

func (p Position[T]) SaturatingMulValue(v T) Position[T] {
	return p.SaturatingMul(Position[T]{x: v, y: v})
}

func (p Position[T]) SaturatingDivValue(v T) Position[T] {
	return p.SaturatingDiv(Position[T]{x: v, y: v})
}

func (p Position[T]) WrappingAddValue(v T) Position[T] {
	return p.WrappingAdd(Position[T]{x: v, y: v})
}

func (p Position[T]) WrappingSubValue(v T) Position[T] {
	return p.WrappingSub(Position[T]{x: v, y: v})
}

func (p Position[T]) WrappingMulValue(v T) Position[T] {
	return p.WrappingMul(Position[T]{x: v, y: v})
}

func (p Position[T]) WrappingDivValue(v T) Position[T] {
	return p.WrappingDiv(Position[T]{x: v, y: v})
}

func (p Position[T]) CheckedAddValue(v T) (Position[T], bool) {
	return p.CheckedAdd(Position[T]{x: v, y: v})
}

func (p Position[T]) CheckedSubValue(v T) (Position[T], bool) {
	return p.CheckedSub(Position[T]{x: v, y: v})
}

func (p Position[T]) CheckedMulValue(v T) (Position[T], bool) {
	return p.CheckedMul(Position[T]{x: v, y: v})
}

func (p Position[T]) CheckedDivValue(v T) (Position[T], bool) {
	return p.CheckedDiv(Position[T]{x: v, y: v})
}

func (p Position[T]) apply(o Position[T], op func(a, b T) T) Position[T] {
	return NewPosition(op(p.x, o.x), op(p.y, o.y))
}

func (p Position[T]) applyChecked(o Position[T], op func(a, b T) (T, bool)) (Position[T], bool) {
	x, ok := op(p.x, o.x)
	if !ok {
		return Position[T]{}, false
	}
	y, ok := op(p.y, o.y)
	if !ok {
		return Position[T]{}, false
	}
	return NewPosition(x, y), true
}

func (p Position[T]) String() string {
	return fmt.Sprintf("x:%d y:%d", p.x, p.y)
}

func (p Position[T]) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("x", int64(p.x)),
		attribute.Int64("y", int64(p.y)),
	}
}

func (p Position[T]) LogValue() slog.Value {
	return slogx.GroupValue(p)
}
