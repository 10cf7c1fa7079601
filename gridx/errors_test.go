package gridx

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinia/layoutx/errorx"
	"github.com/clinia/layoutx/slogx"
)

func TestGridError(t *testing.T) {
	t.Parallel()

	t.Run("should format messages", func(t *testing.T) {
		assert.EqualError(t, IndicesOutOfBounds(10, 10), "[INDICES_OUT_OF_BOUNDS] indices (10, 10) are out of bounds")
		assert.EqualError(t, IndexOutOfBounds(7), "[INDEX_OUT_OF_BOUNDS] index 7 is out of bounds")
		assert.EqualError(t, ChunkIndicesOutOfBounds(1, 2, 3), "[CHUNK_INDICES_OUT_OF_BOUNDS] chunk indices (1, 2) are out of bounds for a chunk length of 3")
		assert.EqualError(t, DimensionMismatch(), "[DIMENSION_MISMATCH] the dimensions do not match the elements provided")
		assert.EqualError(t, NotEnoughElements(), "[NOT_ENOUGH_ELEMENTS] there are not enough elements to fill the grid")
	})

	t.Run("should report out of bounds on a 2x3 grid", func(t *testing.T) {
		g := New(0, 2, 3)
		_, err := g.Get(10, 10)

		gE, ok := IsGridError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorTypeIndicesOutOfBounds, gE.Type)
		assert.Equal(t, 10, gE.Row)
		assert.Equal(t, 10, gE.Col)
	})

	t.Run("should classify wrapped errors", func(t *testing.T) {
		err := errors.WithStack(IndexOutOfBounds(3))

		assert.True(t, IsIndexOutOfBoundsError(err))
		assert.False(t, IsIndicesOutOfBoundsError(err))
		assert.False(t, IsChunkIndicesOutOfBoundsError(err))

		err = errors.Wrap(DimensionMismatch(), "loading level")
		assert.True(t, IsDimensionMismatchError(err))
		assert.False(t, IsNotEnoughElementsError(err))
	})

	t.Run("should not classify other errors", func(t *testing.T) {
		_, ok := IsGridError(errors.New("boom"))
		assert.False(t, ok)
		assert.False(t, IsIndexOutOfBoundsError(nil))
		assert.False(t, IsDimensionMismatchError(errorx.InvalidArgumentErrorf("boom")))
	})

	t.Run("should expose an errorx cause", func(t *testing.T) {
		for _, err := range []error{
			IndicesOutOfBounds(1, 1),
			IndexOutOfBounds(1),
			errors.WithStack(ChunkIndicesOutOfBounds(1, 1, 1)),
		} {
			assert.True(t, errorx.IsOutOfRange(err), err.Error())
			assert.False(t, errorx.IsInvalidArgumentError(err), err.Error())
		}
		for _, err := range []error{
			DimensionMismatch(),
			errors.WithStack(NotEnoughElements()),
		} {
			assert.True(t, errorx.IsInvalidArgumentError(err), err.Error())
			assert.False(t, errorx.IsOutOfRange(err), err.Error())
		}

		cE, ok := errorx.IsCliniaError(IndexOutOfBounds(4))
		require.True(t, ok)
		assert.Equal(t, "index 4 is out of bounds", cE.Message)
	})

	t.Run("should log its attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		logger.Error("chunk lookup failed", slogx.ErrorAttr(errors.WithStack(ChunkIndicesOutOfBounds(1, 2, 3))))

		var out map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
		assert.Equal(t, map[string]any{
			"message":   "[CHUNK_INDICES_OUT_OF_BOUNDS] chunk indices (1, 2) are out of bounds for a chunk length of 3",
			"type":      "CHUNK_INDICES_OUT_OF_BOUNDS",
			"row":       float64(1),
			"col":       float64(2),
			"chunk_len": float64(3),
		}, out["error"])
	})
}

func TestGridLogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("grid", "grid", New("", 2, 3))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, map[string]any{
		"rows": float64(2),
		"cols": float64(3),
		"type": "string",
	}, out["grid"])
}
