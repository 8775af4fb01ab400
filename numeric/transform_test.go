package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoldInt8_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		value    int8
		expected uint8
	}{
		{name: "minimum", value: math.MinInt8, expected: 0x00},
		{name: "minus one", value: -1, expected: 0x7f},
		{name: "zero", value: 0, expected: 0x80},
		{name: "one", value: 1, expected: 0x81},
		{name: "positive", value: 123, expected: 0xfb},
		{name: "maximum", value: math.MaxInt8, expected: 0xff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folded := FoldInt8(tt.value)
			require.Equal(t, tt.expected, folded)
			require.Equal(t, tt.value, UnfoldInt8(folded))
		})
	}
}

func TestFoldInt_WideWidths(t *testing.T) {
	require.Equal(t, uint16(0xb039), FoldInt16(12345))
	require.Equal(t, uint32(0xc99602d2), FoldInt32(1234567890))
	require.Equal(t, uint64(0x8000011f71fb04cb), FoldInt64(1234567890123))

	require.Equal(t, int16(12345), UnfoldInt16(0xb039))
	require.Equal(t, int32(1234567890), UnfoldInt32(0xc99602d2))
	require.Equal(t, int64(1234567890123), UnfoldInt64(0x8000011f71fb04cb))
}

func TestFoldInt8_Exhaustive(t *testing.T) {
	// The fold must be a strictly monotonic bijection over the full range.
	prev := FoldInt8(math.MinInt8)
	require.Equal(t, int8(math.MinInt8), UnfoldInt8(prev))

	for v := int(math.MinInt8) + 1; v <= math.MaxInt8; v++ {
		folded := FoldInt8(int8(v))
		require.Greater(t, folded, prev, "fold(%d) must exceed fold(%d)", v, v-1)
		require.Equal(t, int8(v), UnfoldInt8(folded))
		prev = folded
	}
}

func TestFoldInt64_Ordering(t *testing.T) {
	values := []int64{
		math.MinInt64,
		math.MinInt64 + 1,
		-1234567890123,
		-65536,
		-2,
		-1,
		0,
		1,
		2,
		65535,
		1234567890123,
		math.MaxInt64 - 1,
		math.MaxInt64,
	}

	for i := 1; i < len(values); i++ {
		require.Less(t, FoldInt64(values[i-1]), FoldInt64(values[i]),
			"fold(%d) must be below fold(%d)", values[i-1], values[i])
	}

	for _, v := range values {
		require.Equal(t, v, UnfoldInt64(FoldInt64(v)))
	}
}

func TestFoldInt128_SignBit(t *testing.T) {
	tests := []struct {
		name     string
		value    Int128
		expected Uint128
	}{
		{
			name:     "zero",
			value:    Int128{},
			expected: Uint128{Hi: 1 << 63},
		},
		{
			name:     "minus one",
			value:    Int128{Hi: -1, Lo: math.MaxUint64},
			expected: Uint128{Hi: math.MaxUint64 >> 1, Lo: math.MaxUint64},
		},
		{
			name:     "large positive",
			value:    Int128{Hi: 0x000000018ee90ff6, Lo: 0xc373e0ee4e3f0ad2},
			expected: Uint128{Hi: 0x800000018ee90ff6, Lo: 0xc373e0ee4e3f0ad2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folded := FoldInt128(tt.value)
			require.Equal(t, tt.expected, folded)
			require.Equal(t, tt.value, UnfoldInt128(folded))
		})
	}
}

func TestFoldInt128_Ordering(t *testing.T) {
	values := []Int128{
		{Hi: math.MinInt64, Lo: 0},
		{Hi: -2, Lo: 5},
		{Hi: -1, Lo: 0},
		{Hi: -1, Lo: math.MaxUint64},
		{Hi: 0, Lo: 0},
		{Hi: 0, Lo: 1},
		{Hi: 0, Lo: math.MaxUint64},
		{Hi: 1, Lo: 0},
		{Hi: math.MaxInt64, Lo: math.MaxUint64},
	}

	for i := 1; i < len(values); i++ {
		require.Equal(t, -1, values[i-1].Cmp(values[i]), "test data must be ascending")
		require.Equal(t, -1, FoldInt128(values[i-1]).Cmp(FoldInt128(values[i])))
	}
}

func TestFoldFloat32_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		value    float32
		expected uint32
	}{
		{name: "positive", value: 1234.56, expected: 0xc49a51ec},
		{name: "zero", value: 0, expected: 0x80000000},
		{name: "one", value: 1, expected: 0xbf800000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folded := FoldFloat32(tt.value)
			require.Equal(t, tt.expected, folded)
			require.Equal(t, tt.value, UnfoldFloat32(folded))
		})
	}
}

func TestFoldFloat64_KnownValues(t *testing.T) {
	folded := FoldFloat64(1234.5678)
	require.Equal(t, uint64(0xc0934a456d5cfaad), folded)
	require.Equal(t, 1234.5678, UnfoldFloat64(folded))
}

func TestFoldFloat64_Ordering(t *testing.T) {
	values := []float64{
		math.Inf(-1),
		-math.MaxFloat64,
		-1234.5678,
		-1.0,
		-math.SmallestNonzeroFloat64,
		math.Copysign(0, -1),
		0,
		math.SmallestNonzeroFloat64,
		0.123,
		1.0,
		1234.5678,
		math.MaxFloat64,
		math.Inf(1),
	}

	for i := 1; i < len(values); i++ {
		require.Less(t, FoldFloat64(values[i-1]), FoldFloat64(values[i]),
			"fold(%v) must be below fold(%v)", values[i-1], values[i])
	}
}

func TestFoldFloat32_NegativeBelowPositive(t *testing.T) {
	require.Less(t, FoldFloat32(-123.456), FoldFloat32(0.123))
}

func TestFoldFloat_NaNRoundTrip(t *testing.T) {
	// NaN payloads survive the fold even though their order is unspecified.
	nan64 := math.NaN()
	bits := math.Float64bits(nan64)
	require.Equal(t, bits, math.Float64bits(UnfoldFloat64(FoldFloat64(nan64))))

	negNaN := math.Float64frombits(bits | (1 << 63))
	require.Equal(t, math.Float64bits(negNaN),
		math.Float64bits(UnfoldFloat64(FoldFloat64(negNaN))))
}

func BenchmarkFoldInt64(b *testing.B) {
	var sink uint64
	v := int64(-1234567890123)
	for b.Loop() {
		sink = FoldInt64(v)
		v++
	}
	_ = sink
}

func BenchmarkFoldFloat64(b *testing.B) {
	var sink uint64
	v := -1234.5678
	for b.Loop() {
		sink = FoldFloat64(v)
		v += 0.5
	}
	_ = sink
}
