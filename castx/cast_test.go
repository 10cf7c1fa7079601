package castx

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int8(math.MinInt8), MinOf[int8]())
	assert.Equal(t, int8(math.MaxInt8), MaxOf[int8]())
	assert.Equal(t, uint8(0), MinOf[uint8]())
	assert.Equal(t, uint8(math.MaxUint8), MaxOf[uint8]())
	assert.Equal(t, int16(math.MinInt16), MinOf[int16]())
	assert.Equal(t, int16(math.MaxInt16), MaxOf[int16]())
	assert.Equal(t, uint16(math.MaxUint16), MaxOf[uint16]())
	assert.Equal(t, int32(math.MinInt32), MinOf[int32]())
	assert.Equal(t, int32(math.MaxInt32), MaxOf[int32]())
	assert.Equal(t, uint32(math.MaxUint32), MaxOf[uint32]())
	assert.Equal(t, int64(math.MinInt64), MinOf[int64]())
	assert.Equal(t, int64(math.MaxInt64), MaxOf[int64]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())
	assert.Equal(t, math.MinInt, MinOf[int]())
	assert.Equal(t, math.MaxInt, MaxOf[int]())
	assert.Equal(t, uint(math.MaxUint), MaxOf[uint]())

	assert.True(t, IsSigned[int8]())
	assert.True(t, IsSigned[int]())
	assert.False(t, IsSigned[uint8]())
	assert.False(t, IsSigned[uintptr]())

	assert.Equal(t, 8, BitSize[uint8]())
	assert.Equal(t, 16, BitSize[int16]())
	assert.Equal(t, 32, BitSize[uint32]())
	assert.Equal(t, 64, BitSize[int64]())
}

func TestCast(t *testing.T) {
	t.Parallel()

	t.Run("should return the value when it is representable", func(t *testing.T) {
		assert.Equal(t, int8(9), Cast[int8](uint64(9)))
		assert.Equal(t, uint16(65535), Cast[uint16](int32(65535)))
		assert.Equal(t, int64(-5), Cast[int64](int8(-5)))
		assert.Equal(t, int8(0), Cast[int8](int64(0)))
	})

	t.Run("should saturate to the maximum on overflow", func(t *testing.T) {
		assert.Equal(t, int8(math.MaxInt8), Cast[int8](300))
		assert.Equal(t, int8(math.MaxInt8), Cast[int8](uint8(200)))
		assert.Equal(t, int16(math.MaxInt16), Cast[int16](int32(math.MaxInt32)))
		assert.Equal(t, int64(math.MaxInt64), Cast[int64](uint64(math.MaxUint64)))
		assert.Equal(t, uint32(math.MaxUint32), Cast[uint32](int64(1)<<32))
	})

	t.Run("should saturate to the minimum on underflow", func(t *testing.T) {
		assert.Equal(t, uint16(0), Cast[uint16](-1))
		assert.Equal(t, uint8(0), Cast[uint8](int8(-1)))
		assert.Equal(t, uint64(0), Cast[uint64](int64(math.MinInt64)))
		assert.Equal(t, int8(math.MinInt8), Cast[int8](int16(-200)))
		assert.Equal(t, int8(math.MinInt8), Cast[int8](int16(math.MinInt16)))
		assert.Equal(t, int32(math.MinInt32), Cast[int32](-(int64(1) << 32)))
	})

	t.Run("should be the identity for the same type", func(t *testing.T) {
		assert.Equal(t, int8(math.MinInt8), Cast[int8](int8(math.MinInt8)))
		assert.Equal(t, uint64(math.MaxUint64), Cast[uint64](uint64(math.MaxUint64)))
		assert.Equal(t, -1, Cast[int](-1))
	})
}

// TestCastMatrix checks every pairing of the supported widths against an
// arbitrary precision oracle.
func TestCastMatrix(t *testing.T) {
	t.Parallel()

	checkFrom[int8](t)
	checkFrom[uint8](t)
	checkFrom[int16](t)
	checkFrom[uint16](t)
	checkFrom[int32](t)
	checkFrom[uint32](t)
	checkFrom[int64](t)
	checkFrom[uint64](t)
	checkFrom[int](t)
	checkFrom[uint](t)
}

func checkFrom[From Integer](t *testing.T) {
	t.Helper()

	checkPair[int8, From](t)
	checkPair[uint8, From](t)
	checkPair[int16, From](t)
	checkPair[uint16, From](t)
	checkPair[int32, From](t)
	checkPair[uint32, From](t)
	checkPair[int64, From](t)
	checkPair[uint64, From](t)
	checkPair[int, From](t)
	checkPair[uint, From](t)
}

func checkPair[To, From Integer](t *testing.T) {
	t.Helper()

	var to To
	var from From
	name := fmt.Sprintf("%T->%T", from, to)

	for _, v := range samples[From]() {
		got := Cast[To](v)
		want, exact := oracle[To](v)
		require.Equal(t, want, got, "%s(%v)", name, v)

		if exact {
			require.Equal(t, v, Cast[From](got), "%s round trip of %v", name, v)
		}
	}
}

// samples returns boundary and near-boundary values of T for every width,
// wrapped into T with a plain conversion.
func samples[T Integer]() []T {
	signed := []int64{
		math.MinInt64, math.MinInt64 + 1,
		math.MinInt32 - 1, math.MinInt32, math.MinInt32 + 1,
		math.MinInt16 - 1, math.MinInt16, math.MinInt16 + 1,
		-200, math.MinInt8 - 1, math.MinInt8, math.MinInt8 + 1,
		-2, -1, 0, 1, 2,
		math.MaxInt8 - 1, math.MaxInt8, math.MaxInt8 + 1, 200,
		math.MaxUint8, math.MaxUint8 + 1,
		math.MaxInt16 - 1, math.MaxInt16, math.MaxInt16 + 1,
		math.MaxUint16, math.MaxUint16 + 1,
		math.MaxInt32 - 1, math.MaxInt32, math.MaxInt32 + 1,
		math.MaxUint32, math.MaxUint32 + 1,
		math.MaxInt64 - 1, math.MaxInt64,
	}
	unsigned := []uint64{
		math.MaxInt64 + 1, math.MaxUint64 - 1, math.MaxUint64,
	}

	out := make([]T, 0, len(signed)+len(unsigned)+2)
	for _, v := range signed {
		out = append(out, T(v))
	}
	for _, v := range unsigned {
		out = append(out, T(v))
	}
	return append(out, MinOf[T](), MaxOf[T]())
}

// oracle computes the expected saturated value of v in To with math/big, and
// whether v is exactly representable.
func oracle[To, From Integer](v From) (To, bool) {
	b := toBig(v)
	switch {
	case b.Cmp(toBig(MinOf[To]())) < 0:
		return MinOf[To](), false
	case b.Cmp(toBig(MaxOf[To]())) > 0:
		return MaxOf[To](), false
	default:
		return To(v), true
	}
}

func toBig[T Integer](v T) *big.Int {
	if IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}
