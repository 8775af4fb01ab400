// Package hexenc converts binary data to and from lowercase hexadecimal
// text.
//
// Encoding always emits the digits 0-9a-f. Decoding is strict: uppercase
// digits are rejected, so every byte sequence has exactly one accepted text
// form. This keeps the printable key format bijective, where accepting a
// second spelling of the same value would break the one-to-one mapping
// between keys and values.
package hexenc

import (
	"errors"
	"fmt"
)

const hextable = "0123456789abcdef"

// ErrOddLength is returned by Decode when the input length is not even.
var ErrOddLength = errors.New("odd length hex input")

// InvalidByteError is returned by Decode for input bytes outside 0-9a-f.
type InvalidByteError byte

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("invalid hex byte %#02x", byte(e))
}

// reverse maps ASCII bytes to their hex digit value, with 0xff marking
// bytes outside the accepted 0-9a-f alphabet.
var reverse = func() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = 0xff
	}
	for i := 0; i < len(hextable); i++ {
		table[hextable[i]] = byte(i)
	}

	return table
}()

// EncodedLen returns the text length of n encoded bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the binary length of n text bytes.
func DecodedLen(n int) int { return n / 2 }

// Append appends the lowercase hex encoding of src to dst and returns the
// extended slice.
func Append(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, hextable[b>>4], hextable[b&0x0f])
	}

	return dst
}

// Decode decodes src into dst and returns the number of bytes written.
//
// It fails with ErrOddLength if src has odd length and with an
// InvalidByteError on the first byte outside 0-9a-f. dst must have room for
// DecodedLen(len(src)) bytes; Decode panics otherwise.
func Decode(dst, src []byte) (int, error) {
	if len(src)%2 != 0 {
		return 0, ErrOddLength
	}

	n := DecodedLen(len(src))
	if len(dst) < n {
		panic("Decode: destination buffer too small")
	}

	for i := 0; i < n; i++ {
		hi := reverse[src[i*2]]
		if hi == 0xff {
			return 0, InvalidByteError(src[i*2])
		}

		lo := reverse[src[i*2+1]]
		if lo == 0xff {
			return 0, InvalidByteError(src[i*2+1])
		}

		dst[i] = hi<<4 | lo
	}

	return n, nil
}
