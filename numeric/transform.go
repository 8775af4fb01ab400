// Package numeric implements the order-preserving bit transforms behind the
// printable key format, along with 128-bit integer types.
//
// Every transform maps a value to an unsigned integer whose big-endian byte
// order matches the natural order of the original values:
//
//   - Unsigned integers pass through unchanged.
//   - Signed integers have their sign bit flipped, shifting the negative
//     range below the positive range.
//   - Floats are sign-folded: positive values get the sign bit set, negative
//     values have all bits inverted, so -Inf < ... < -0.0 < +0.0 < ... < +Inf
//     holds bytewise.
//
// All transforms are total and self-inverse pairs; Fold followed by Unfold
// returns the original value for every input, including NaN payloads. The
// relative order of NaN encodings is unspecified.
package numeric

import "math"

// FoldInt8 maps a signed value to its order-preserving unsigned form.
func FoldInt8(v int8) uint8 {
	return uint8(v) ^ (1 << 7)
}

// UnfoldInt8 reverses FoldInt8.
func UnfoldInt8(u uint8) int8 {
	return int8(u ^ (1 << 7))
}

// FoldInt16 maps a signed value to its order-preserving unsigned form.
func FoldInt16(v int16) uint16 {
	return uint16(v) ^ (1 << 15)
}

// UnfoldInt16 reverses FoldInt16.
func UnfoldInt16(u uint16) int16 {
	return int16(u ^ (1 << 15))
}

// FoldInt32 maps a signed value to its order-preserving unsigned form.
func FoldInt32(v int32) uint32 {
	return uint32(v) ^ (1 << 31)
}

// UnfoldInt32 reverses FoldInt32.
func UnfoldInt32(u uint32) int32 {
	return int32(u ^ (1 << 31))
}

// FoldInt64 maps a signed value to its order-preserving unsigned form.
func FoldInt64(v int64) uint64 {
	return uint64(v) ^ (1 << 63)
}

// UnfoldInt64 reverses FoldInt64.
func UnfoldInt64(u uint64) int64 {
	return int64(u ^ (1 << 63))
}

// FoldInt128 maps a signed 128-bit value to its order-preserving unsigned
// form. Only the sign bit in the high word flips; the low word is unchanged.
func FoldInt128(v Int128) Uint128 {
	return Uint128{Hi: uint64(v.Hi) ^ (1 << 63), Lo: v.Lo}
}

// UnfoldInt128 reverses FoldInt128.
func UnfoldInt128(u Uint128) Int128 {
	return Int128{Hi: int64(u.Hi ^ (1 << 63)), Lo: u.Lo}
}

// FoldFloat32 maps a float to an unsigned integer whose numeric order
// matches the float's natural order.
//
// Positive values (sign bit clear) get the sign bit set; negative values
// have every bit inverted, which reverses the descending bit order of
// negative IEEE 754 values.
func FoldFloat32(f float32) uint32 {
	v := int32(math.Float32bits(f))
	t := (v >> 31) | math.MinInt32

	return uint32(v ^ t)
}

// UnfoldFloat32 reverses FoldFloat32.
func UnfoldFloat32(u uint32) float32 {
	v := int32(u)
	t := ((v ^ math.MinInt32) >> 31) | math.MinInt32

	return math.Float32frombits(uint32(v ^ t))
}

// FoldFloat64 maps a float to an unsigned integer whose numeric order
// matches the float's natural order. See FoldFloat32 for the construction.
func FoldFloat64(f float64) uint64 {
	v := int64(math.Float64bits(f))
	t := (v >> 63) | math.MinInt64

	return uint64(v ^ t)
}

// UnfoldFloat64 reverses FoldFloat64.
func UnfoldFloat64(u uint64) float64 {
	v := int64(u)
	t := ((v ^ math.MinInt64) >> 63) | math.MinInt64

	return math.Float64frombits(uint64(v ^ t))
}
