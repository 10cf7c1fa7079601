package geomx

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/clinia/layoutx/castx"
	"github.com/clinia/layoutx/clampx"
	"github.com/clinia/layoutx/slogx"
)

// Size is a 2D extent. NewSize, SizeFrom and the setters clamp both dimensions
// to [1, Clamper[T].Max]. The zero value is 0×0 and is the only Size holding a
// zero dimension.
type Size[T castx.Signed] struct {
	w T
	h T
}

type (
	Size8  = Size[int8]
	Size16 = Size[int16]
	Size32 = Size[int32]
	Size64 = Size[int64]
)

// NewSize returns a w×h size, each dimension clamped to at least 1.
func NewSize[T castx.Signed](w, h T) Size[T] {
	return Size[T]{w: clampx.ClampPositive(w), h: clampx.ClampPositive(h)}
}

// SizeFrom converts foreign dimensions into a Size[T].
//
//	geomx.SizeFrom[int16](uint16(80), uint16(0)) // w:80 h:1
func SizeFrom[T castx.Signed, W castx.Integer](w, h W) Size[T] {
	return Size[T]{w: clampx.ClampPositiveFrom[T](w), h: clampx.ClampPositiveFrom[T](h)}
}

// SizeTo converts s into foreign dimensions. Neither result is ever zero, even
// for the zero Size, which converts to 1×1.
func SizeTo[W castx.Integer, T castx.Signed](s Size[T]) (W, W) {
	return clampx.ClampPositiveTo[W](s.w), clampx.ClampPositiveTo[W](s.h)
}

func (s Size[T]) W() T {
	return s.w
}

func (s Size[T]) H() T {
	return s.h
}

func (s *Size[T]) SetW(w T) {
	s.w = clampx.ClampPositive(w)
}

func (s *Size[T]) SetH(h T) {
	s.h = clampx.ClampPositive(h)
}

func (s Size[T]) Tuple() (T, T) {
	return s.w, s.h
}

func (s Size[T]) String() string {
	return fmt.Sprintf("w:%d h:%d", s.w, s.h)
}

func (s Size[T]) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("w", int64(s.w)),
		attribute.Int64("h", int64(s.h)),
	}
}

func (s Size[T]) LogValue() slog.Value {
	return slogx.GroupValue(s)
}
