package slogx

import (
	"log/slog"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

// Attributer is implemented by values that describe themselves as
// OpenTelemetry attributes.
type Attributer interface {
	Attributes() []attribute.KeyValue
}

// Attrs converts OpenTelemetry attributes into slog attributes.
func Attrs(kvs ...attribute.KeyValue) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(kvs))
	for _, kv := range kvs {
		switch kv.Value.Type() {
		case attribute.BOOL:
			attrs = append(attrs, slog.Bool(string(kv.Key), kv.Value.AsBool()))
		case attribute.INT64:
			attrs = append(attrs, slog.Int64(string(kv.Key), kv.Value.AsInt64()))
		case attribute.FLOAT64:
			attrs = append(attrs, slog.Float64(string(kv.Key), kv.Value.AsFloat64()))
		case attribute.STRING:
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.AsString()))
		default:
			attrs = append(attrs, slog.Any(string(kv.Key), kv.Value.AsInterface()))
		}
	}
	return attrs
}

// GroupValue is the slog.LogValuer body shared by every Attributer.
func GroupValue(a Attributer) slog.Value {
	return slog.GroupValue(Attrs(a.Attributes()...)...)
}

// ErrorAttr logs err under the "error" key. When err, or an error it wraps,
// is an Attributer, its attributes are grouped next to the message.
func ErrorAttr(err error) slog.Attr {
	var a Attributer
	if err == nil || !errors.As(err, &a) {
		return slog.Any("error", err)
	}

	attrs := append([]slog.Attr{slog.String("message", err.Error())}, Attrs(a.Attributes()...)...)
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}
