package geomx

import (
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/clinia/layoutx/castx"
	"github.com/clinia/layoutx/slogx"
)

// Zone is an axis aligned rectangle: a Position and a Size.
type Zone[T castx.Signed] struct {
	P Position[T]
	S Size[T]
}

type (
	Zone8  = Zone[int8]
	Zone16 = Zone[int16]
	Zone32 = Zone[int32]
	Zone64 = Zone[int64]
)

func NewZone[T castx.Signed](p Position[T], s Size[T]) Zone[T] {
	return Zone[T]{P: p, S: s}
}

// NewZoneRaw builds a zone from its components, clamped as in NewPosition and
// NewSize.
func NewZoneRaw[T castx.Signed](x, y, w, h T) Zone[T] {
	return Zone[T]{P: NewPosition(x, y), S: NewSize(w, h)}
}

// ZoneFrom converts foreign (x, y, w, h) components into a Zone[T].
func ZoneFrom[T castx.Signed, W castx.Integer](x, y, w, h W) Zone[T] {
	return Zone[T]{P: PositionFrom[T](x, y), S: SizeFrom[T](w, h)}
}

// ZoneTo converts z into foreign (x, y, w, h) components.
func ZoneTo[W castx.Integer, T castx.Signed](z Zone[T]) (x, y, w, h W) {
	x, y = PositionTo[W](z.P)
	w, h = SizeTo[W](z.S)
	return x, y, w, h
}

func (z Zone[T]) Position() Position[T] {
	return z.P
}

func (z *Zone[T]) SetPosition(p Position[T]) {
	z.P = p
}

func (z Zone[T]) Size() Size[T] {
	return z.S
}

func (z *Zone[T]) SetSize(s Size[T]) {
	z.S = s
}

func (z Zone[T]) X() T {
	return z.P.X()
}

func (z *Zone[T]) SetX(x T) {
	z.P.SetX(x)
}

func (z Zone[T]) Y() T {
	return z.P.Y()
}

func (z *Zone[T]) SetY(y T) {
	z.P.SetY(y)
}

func (z Zone[T]) W() T {
	return z.S.W()
}

func (z *Zone[T]) SetW(w T) {
	z.S.SetW(w)
}

func (z Zone[T]) H() T {
	return z.S.H()
}

func (z *Zone[T]) SetH(h T) {
	z.S.SetH(h)
}

// Tuple returns the (x, y, w, h) components.
func (z Zone[T]) Tuple() (x, y, w, h T) {
	return z.P.x, z.P.y, z.S.w, z.S.h
}

func (z Zone[T]) String() string {
	return z.P.String() + " " + z.S.String()
}

func (z Zone[T]) Attributes() []attribute.KeyValue {
	return append(z.P.Attributes(), z.S.Attributes()...)
}

func (z Zone[T]) LogValue() slog.Value {
	return slogx.GroupValue(z)
}
