// Package sortkey encodes typed Go values as printable, delimiter-joined
// keys whose byte-lexicographic order matches the natural order of the
// values, for use as keys in sorted key-value stores.
//
// Numbers are written as fixed-width lowercase hex after an
// order-preserving bit transform: signed integers have their sign bit
// flipped, floats are sign-folded, so -5 sorts before 3 and -0.5 before
// 0.25, byte for byte. Strings, chars and enum variant names are raw UTF-8,
// byte slices are hex, booleans are the literals "true"/"false". Struct
// fields flatten in declaration order with a ":" between components:
//
//	type AccountKey struct {
//	    Name string
//	    ID   uint32
//	}
//
//	key, _ := sortkey.Marshal(AccountKey{Name: "account", ID: 1234})
//	// key == []byte("account:000004d2")
//
//	var back AccountKey
//	_ = sortkey.Unmarshal(key, &back)
//
// The format is not self-describing: no type tags or length prefixes are
// written, and Unmarshal reconstructs a value only because the caller
// supplies the exact shape that was encoded. Optional values (pointers),
// maps, variable-length collections other than []byte, and platform-width
// integers are rejected rather than encoded.
//
// Supported kinds beyond the basics: sortkey.Char for single characters,
// sortkey.Uint128/Int128 for 128-bit integers, the Enum interface for
// unit-variant enums, and encoding.TextMarshaler/TextUnmarshaler for
// custom component text.
//
// This package wraps the codec package for the common cases; use codec
// directly for per-component encoding, pre-compiled shapes or custom
// delimiters, and the keyset package to store sorted runs of encoded keys
// as compressed, checksummed blocks.
package sortkey

import (
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/sortkey/codec"
	"github.com/arloliu/sortkey/internal/pool"
	"github.com/arloliu/sortkey/keyset"
	"github.com/arloliu/sortkey/numeric"
	"github.com/arloliu/sortkey/shape"
)

type (
	// Char holds a single Unicode scalar value, encoded as raw UTF-8 rather
	// than as a fixed-width number.
	Char = shape.Char

	// Uint128 is an unsigned 128-bit integer, encoded as 32 hex digits.
	Uint128 = numeric.Uint128

	// Int128 is a signed 128-bit integer, encoded sign-folded as 32 hex
	// digits.
	Int128 = numeric.Int128

	// Enum marks an integer-backed type as a set of named unit variants.
	Enum = shape.Enum
)

// Marshal encodes v and returns the key bytes.
func Marshal(v any) ([]byte, error) {
	buf := pool.GetKeyBuffer()
	defer pool.PutKeyBuffer(buf)

	enc, err := codec.NewEncoder(buf)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	if err := enc.EncodeValue(v); err != nil {
		return nil, err
	}

	key := make([]byte, buf.Len())
	copy(key, buf.Bytes())

	return key, nil
}

// MarshalWrite encodes v directly to w. Writes are streaming: bytes already
// written are not retracted if a later field fails.
func MarshalWrite(w io.Writer, v any) error {
	enc, err := codec.NewEncoder(w)
	if err != nil {
		return err
	}
	defer enc.Close()

	return enc.EncodeValue(v)
}

// Unmarshal decodes data into v, which must be a non-nil pointer. It fails
// with a syntax error if components remain after v is filled.
func Unmarshal(data []byte, v any) error {
	dec := codec.NewSliceDecoder(data)
	if err := dec.DecodeValue(v); err != nil {
		return err
	}

	return dec.End()
}

// UnmarshalRead decodes one document from r into v, draining r completely.
// It fails with a syntax error if the drained input holds components beyond
// v's shape.
func UnmarshalRead(r io.Reader, v any) error {
	dec := codec.NewStreamDecoder(r)
	if err := dec.DecodeValue(v); err != nil {
		return err
	}

	return dec.End()
}

// Fingerprint returns the xxHash64 of an encoded key, for compact key
// identity in indexes and caches.
func Fingerprint(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Bucket routes an encoded key to one of n shards by fingerprint. It
// panics if n is not positive.
func Bucket(key []byte, n int) int {
	if n <= 0 {
		panic("sortkey: bucket count must be positive")
	}

	return int(Fingerprint(key) % uint64(n)) //nolint: gosec
}

// PrefixRange returns the smallest key range [start, end) covering every
// key that begins with prefix, for store iterators. A nil end means
// unbounded above.
func PrefixRange(prefix []byte) (start, end []byte) {
	return keyset.PrefixRange(prefix)
}
