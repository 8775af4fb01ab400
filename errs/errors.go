// Package errs defines the sentinel errors shared across sortkey packages.
//
// Errors are wrapped at the point of failure with fmt.Errorf("%w: ...", ...)
// so callers can match them with errors.Is while still receiving contextual
// detail such as the offending component text.
package errs

import "errors"

// Encoding and decoding errors.
var (
	// ErrUnsupportedType indicates a value or target type outside the closed
	// kind vocabulary: pointers, maps, variable-length collections other than
	// []byte, interfaces, channels, funcs, complex numbers, and the
	// platform-width int, uint and uintptr types.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrTextDecode indicates the decoder input is not valid UTF-8.
	ErrTextDecode = errors.New("input is not valid UTF-8 text")

	// ErrData indicates a component or value does not conform to the
	// requested kind, for example non-hex digits where a number is expected
	// or an unknown enum variant name.
	ErrData = errors.New("malformed component data")

	// ErrSyntax indicates a component arity mismatch: the input ran out of
	// components before the target shape was filled, or components remained
	// after the final trailing check.
	ErrSyntax = errors.New("component syntax error")

	// ErrDelimiterCollision indicates a string, char, variant name or custom
	// text value contains the configured delimiter and therefore cannot be
	// encoded unambiguously.
	ErrDelimiterCollision = errors.New("value contains the delimiter")

	// ErrDelimiterLocked indicates an attempt to change the delimiter after
	// the reader has already split its input.
	ErrDelimiterLocked = errors.New("delimiter locked after materialization")

	// ErrInvalidDelimiter indicates an empty delimiter was supplied.
	ErrInvalidDelimiter = errors.New("invalid delimiter")

	// ErrInvalidShape indicates a malformed shape, such as an enum type with
	// no variants or a non-integer enum base type.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrInvalidTarget indicates the encode sink or decode target is not
	// usable, for example a nil writer or a non-pointer unmarshal target.
	ErrInvalidTarget = errors.New("invalid target")
)

// Key set block errors.
var (
	// ErrInvalidHeaderSize indicates the block header is not exactly
	// keyset.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid block header size")

	// ErrInvalidMagicNumber indicates the block does not start with the
	// key set magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates the block header carries an unknown
	// version or compression type.
	ErrInvalidHeaderFlags = errors.New("invalid block header flags")

	// ErrChecksumMismatch indicates the stored payload checksum does not
	// match the payload bytes.
	ErrChecksumMismatch = errors.New("block checksum mismatch")

	// ErrInvalidBlockPayload indicates the block payload framing is
	// corrupted or disagrees with the header key count.
	ErrInvalidBlockPayload = errors.New("invalid block payload")

	// ErrKeyOutOfOrder indicates an appended key is smaller than the
	// previous key. Keys must be added in ascending byte order.
	ErrKeyOutOfOrder = errors.New("key out of order")

	// ErrDuplicateKey indicates an appended key equals the previous key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrWriterFinished indicates the writer was used after Finish.
	ErrWriterFinished = errors.New("writer already finished")
)
