package gridx

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/clinia/layoutx/errorx"
	"github.com/clinia/layoutx/slogx"
)

type ErrorType string

const (
	ErrorTypeIndicesOutOfBounds      = ErrorType("INDICES_OUT_OF_BOUNDS")
	ErrorTypeIndexOutOfBounds        = ErrorType("INDEX_OUT_OF_BOUNDS")
	ErrorTypeChunkIndicesOutOfBounds = ErrorType("CHUNK_INDICES_OUT_OF_BOUNDS")
	ErrorTypeDimensionMismatch       = ErrorType("DIMENSION_MISMATCH")
	ErrorTypeNotEnoughElements       = ErrorType("NOT_ENOUGH_ELEMENTS")
)

func (e ErrorType) String() string {
	return string(e)
}

// GridError is returned by every fallible grid operation. Only the positional
// fields relevant to its Type are set; it is comparable, so tests can assert it
// with plain equality.
//
// Its Cause is an errorx.CliniaError: OUT_OF_RANGE for the bounds errors and
// INVALID_ARGUMENT for the construction errors.
type GridError struct {
	Type     ErrorType `json:"type"`
	Row      int       `json:"row,omitempty"`
	Col      int       `json:"col,omitempty"`
	Index    int       `json:"index,omitempty"`
	ChunkLen int       `json:"chunk_len,omitempty"`
}

var (
	_ error            = GridError{}
	_ slog.LogValuer   = GridError{}
	_ slogx.Attributer = GridError{}
)

// IndicesOutOfBounds reports a (row, col) pair outside the grid.
func IndicesOutOfBounds(row, col int) GridError {
	return GridError{Type: ErrorTypeIndicesOutOfBounds, Row: row, Col: col}
}

// IndexOutOfBounds reports a flat index outside the grid.
func IndexOutOfBounds(index int) GridError {
	return GridError{Type: ErrorTypeIndexOutOfBounds, Index: index}
}

// ChunkIndicesOutOfBounds reports a chunk address that is not a whole chunk of
// the grid.
func ChunkIndicesOutOfBounds(row, col, chunkLen int) GridError {
	return GridError{Type: ErrorTypeChunkIndicesOutOfBounds, Row: row, Col: col, ChunkLen: chunkLen}
}

// DimensionMismatch reports elements that cannot fill the requested shape,
// including a shape whose cell count overflows int.
func DimensionMismatch() GridError {
	return GridError{Type: ErrorTypeDimensionMismatch}
}

// NotEnoughElements reports a sequence that ran out before the grid was full.
func NotEnoughElements() GridError {
	return GridError{Type: ErrorTypeNotEnoughElements}
}

func (e GridError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.message())
}

func (e GridError) message() string {
	switch e.Type {
	case ErrorTypeIndicesOutOfBounds:
		return fmt.Sprintf("indices (%d, %d) are out of bounds", e.Row, e.Col)
	case ErrorTypeIndexOutOfBounds:
		return fmt.Sprintf("index %d is out of bounds", e.Index)
	case ErrorTypeChunkIndicesOutOfBounds:
		return fmt.Sprintf("chunk indices (%d, %d) are out of bounds for a chunk length of %d", e.Row, e.Col, e.ChunkLen)
	case ErrorTypeDimensionMismatch:
		return "the dimensions do not match the elements provided"
	case ErrorTypeNotEnoughElements:
		return "there are not enough elements to fill the grid"
	default:
		return "unknown grid error"
	}
}

// Cause implements the github.com/pkg/errors causer interface.
func (e GridError) Cause() error {
	switch e.Type {
	case ErrorTypeIndicesOutOfBounds, ErrorTypeIndexOutOfBounds, ErrorTypeChunkIndicesOutOfBounds:
		return errorx.OutOfRangeErrorf("%s", e.message())
	default:
		return errorx.InvalidArgumentErrorf("%s", e.message())
	}
}

// Unwrap returns Cause, so errors.Is and errors.As reach the errorx error.
func (e GridError) Unwrap() error {
	return e.Cause()
}

// Attributes returns the type and the positional fields set for it.
func (e GridError) Attributes() []attribute.KeyValue {
	kvs := []attribute.KeyValue{attribute.String("type", e.Type.String())}
	switch e.Type {
	case ErrorTypeIndicesOutOfBounds:
		kvs = append(kvs, attribute.Int("row", e.Row), attribute.Int("col", e.Col))
	case ErrorTypeIndexOutOfBounds:
		kvs = append(kvs, attribute.Int("index", e.Index))
	case ErrorTypeChunkIndicesOutOfBounds:
		kvs = append(kvs, attribute.Int("row", e.Row), attribute.Int("col", e.Col), attribute.Int("chunk_len", e.ChunkLen))
	}
	return kvs
}

// LogValue logs e as a group of its Attributes.
func (e GridError) LogValue() slog.Value {
	return slogx.GroupValue(e)
}

// IsGridError reports whether err, or any error it wraps, is a GridError.
func IsGridError(err error) (*GridError, bool) {
	var gE GridError
	if !errors.As(err, &gE) {
		return nil, false
	}
	return &gE, true
}

// IsIndicesOutOfBoundsError reports whether err wraps an IndicesOutOfBounds
// GridError.
func IsIndicesOutOfBoundsError(err error) bool {
	return isType(err, ErrorTypeIndicesOutOfBounds)
}

// IsIndexOutOfBoundsError reports whether err wraps an IndexOutOfBounds
// GridError.
func IsIndexOutOfBoundsError(err error) bool {
	return isType(err, ErrorTypeIndexOutOfBounds)
}

// IsChunkIndicesOutOfBoundsError reports whether err wraps a
// ChunkIndicesOutOfBounds GridError.
func IsChunkIndicesOutOfBoundsError(err error) bool {
	return isType(err, ErrorTypeChunkIndicesOutOfBounds)
}

// IsDimensionMismatchError reports whether err wraps a DimensionMismatch
// GridError.
func IsDimensionMismatchError(err error) bool {
	return isType(err, ErrorTypeDimensionMismatch)
}

// IsNotEnoughElementsError reports whether err wraps a NotEnoughElements
// GridError.
func IsNotEnoughElementsError(err error) bool {
	return isType(err, ErrorTypeNotEnoughElements)
}

func isType(err error, t ErrorType) bool {
	gE, ok := IsGridError(err)
	if !ok {
		return false
	}
	return gE.Type == t
}
