package numeric

import (
	"encoding/binary"
	"fmt"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit words.
//
// The zero value is zero. Values compare and encode in the obvious
// big-endian order: Hi is the most significant word.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128From64 widens a 64-bit value to 128 bits.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint128FromBytes interprets b as a big-endian 128-bit value.
func Uint128FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// Bytes returns the big-endian byte representation.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:16], u.Lo)

	return b
}

// Cmp returns -1 if u < v, 0 if u == v, and 1 if u > v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// String returns the value as 32 lowercase hex digits.
func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

// Int128 is a signed 128-bit integer in two's complement, stored as two
// 64-bit words. Hi carries the sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Int128From64 sign-extends a 64-bit value to 128 bits.
func Int128From64(v int64) Int128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}

	return Int128{Hi: hi, Lo: uint64(v)}
}

// Cmp returns -1 if i < v, 0 if i == v, and 1 if i > v.
func (i Int128) Cmp(v Int128) int {
	switch {
	case i.Hi < v.Hi:
		return -1
	case i.Hi > v.Hi:
		return 1
	case i.Lo < v.Lo:
		return -1
	case i.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// Neg returns -i. Negating the minimum value wraps, as it does for the
// built-in signed types.
func (i Int128) Neg() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}

	return Int128{Hi: hi, Lo: lo}
}

// Sign returns -1 if i is negative, 0 if zero, and 1 if positive.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

// String returns the two's complement representation as 32 lowercase hex
// digits.
func (i Int128) String() string {
	return fmt.Sprintf("%016x%016x", uint64(i.Hi), i.Lo)
}

