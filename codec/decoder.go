package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/arloliu/sortkey/component"
	"github.com/arloliu/sortkey/errs"
	"github.com/arloliu/sortkey/hexenc"
	"github.com/arloliu/sortkey/numeric"
)

// Decoder consumes the components of one encoded document in the order and
// arity dictated by the requested target shape. The format carries no type
// tags, so every read must match what was encoded; nothing in the bytes can
// detect a shape mismatch for the caller.
//
// After extracting the top-level value, call End to verify no components
// remain. A decoder serves one document and is not safe for concurrent use.
type Decoder struct {
	r   component.Reader
	buf [16]byte // fixed-width hex scratch, widest numeric is 128 bits
}

// NewDecoder creates a decoder consuming components from r.
func NewDecoder(r component.Reader) *Decoder {
	return &Decoder{r: r}
}

// NewSliceDecoder creates a decoder over an in-memory document. String and
// byte components reference data where possible, so data must outlive the
// decoded value.
func NewSliceDecoder(data []byte) *Decoder {
	return NewDecoder(component.NewSliceReader(data))
}

// NewStreamDecoder creates a decoder that drains r fully on first use.
func NewStreamDecoder(r io.Reader) *Decoder {
	return NewDecoder(component.NewStreamReader(r))
}

// SetDelimiter replaces the delimiter before any component has been read.
// It fails with errs.ErrDelimiterLocked afterwards.
func (d *Decoder) SetDelimiter(delimiter string) error {
	return d.r.SetDelimiter(delimiter)
}

// Delimiter returns the delimiter in effect.
func (d *Decoder) Delimiter() string {
	return d.r.Delimiter()
}

// End verifies the document has been fully consumed. It fails with
// errs.ErrSyntax if any component remains, which signals a shape narrower
// than the encoded document.
func (d *Decoder) End() error {
	c, ok, err := d.r.Next()
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("%w: trailing component %q", errs.ErrSyntax, c.Text())
	}

	return nil
}

// next pops one component, converting exhaustion into a syntax error.
func (d *Decoder) next() (component.Component, error) {
	c, ok, err := d.r.Next()
	if err != nil {
		return c, err
	}
	if !ok {
		return c, fmt.Errorf("%w: no component remains", errs.ErrSyntax)
	}

	return c, nil
}

// nextHex pops one component and hex-decodes it into the scratch buffer,
// enforcing the fixed width of 2*width hex digits.
func (d *Decoder) nextHex(width int) ([]byte, error) {
	c, err := d.next()
	if err != nil {
		return nil, err
	}

	text := c.Bytes()
	if len(text) != hexenc.EncodedLen(width) {
		return nil, fmt.Errorf("%w: component %q is not %d hex digits", errs.ErrData, c.Text(), hexenc.EncodedLen(width))
	}

	if _, err := hexenc.Decode(d.buf[:width], text); err != nil {
		return nil, fmt.Errorf("%w: component %q: %s", errs.ErrData, c.Text(), err)
	}

	return d.buf[:width], nil
}

// DecodeBool reads the literal "true" or "false".
func (d *Decoder) DecodeBool() (bool, error) {
	c, err := d.next()
	if err != nil {
		return false, err
	}

	switch c.Text() {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: component %q is not a boolean", errs.ErrData, c.Text())
	}
}

// DecodeUint8 reads 2 hex digits.
func (d *Decoder) DecodeUint8() (uint8, error) {
	b, err := d.nextHex(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// DecodeUint16 reads 4 hex digits, big-endian.
func (d *Decoder) DecodeUint16() (uint16, error) {
	b, err := d.nextHex(2)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

// DecodeUint32 reads 8 hex digits, big-endian.
func (d *Decoder) DecodeUint32() (uint32, error) {
	b, err := d.nextHex(4)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

// DecodeUint64 reads 16 hex digits, big-endian.
func (d *Decoder) DecodeUint64() (uint64, error) {
	b, err := d.nextHex(8)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(b), nil
}

// DecodeUint128 reads 32 hex digits, big-endian.
func (d *Decoder) DecodeUint128() (numeric.Uint128, error) {
	b, err := d.nextHex(16)
	if err != nil {
		return numeric.Uint128{}, err
	}

	return numeric.Uint128FromBytes([16]byte(b)), nil
}

// DecodeInt8 reads 2 hex digits and reverses the sign fold.
func (d *Decoder) DecodeInt8() (int8, error) {
	u, err := d.DecodeUint8()
	if err != nil {
		return 0, err
	}

	return numeric.UnfoldInt8(u), nil
}

// DecodeInt16 reads 4 hex digits and reverses the sign fold.
func (d *Decoder) DecodeInt16() (int16, error) {
	u, err := d.DecodeUint16()
	if err != nil {
		return 0, err
	}

	return numeric.UnfoldInt16(u), nil
}

// DecodeInt32 reads 8 hex digits and reverses the sign fold.
func (d *Decoder) DecodeInt32() (int32, error) {
	u, err := d.DecodeUint32()
	if err != nil {
		return 0, err
	}

	return numeric.UnfoldInt32(u), nil
}

// DecodeInt64 reads 16 hex digits and reverses the sign fold.
func (d *Decoder) DecodeInt64() (int64, error) {
	u, err := d.DecodeUint64()
	if err != nil {
		return 0, err
	}

	return numeric.UnfoldInt64(u), nil
}

// DecodeInt128 reads 32 hex digits and reverses the sign fold.
func (d *Decoder) DecodeInt128() (numeric.Int128, error) {
	u, err := d.DecodeUint128()
	if err != nil {
		return numeric.Int128{}, err
	}

	return numeric.UnfoldInt128(u), nil
}

// DecodeFloat32 reads 8 hex digits and reverses the sign fold.
func (d *Decoder) DecodeFloat32() (float32, error) {
	u, err := d.DecodeUint32()
	if err != nil {
		return 0, err
	}

	return numeric.UnfoldFloat32(u), nil
}

// DecodeFloat64 reads 16 hex digits and reverses the sign fold.
func (d *Decoder) DecodeFloat64() (float64, error) {
	u, err := d.DecodeUint64()
	if err != nil {
		return 0, err
	}

	return numeric.UnfoldFloat64(u), nil
}

// DecodeChar reads one component that must be exactly one Unicode scalar
// value.
func (d *Decoder) DecodeChar() (rune, error) {
	c, err := d.next()
	if err != nil {
		return 0, err
	}

	b := c.Bytes()
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("%w: component %q is not a valid rune", errs.ErrData, c.Text())
	}
	if size != len(b) {
		return 0, fmt.Errorf("%w: component %q is not exactly one character", errs.ErrData, c.Text())
	}

	return r, nil
}

// DecodeString reads one component as a string. The returned string is a
// copy and always safe to retain.
func (d *Decoder) DecodeString() (string, error) {
	c, err := d.next()
	if err != nil {
		return "", err
	}

	return c.Text(), nil
}

// DecodeStringBytes reads one component as raw bytes. For an in-memory
// source the returned slice is a zero-copy view into the original input
// and must not be modified.
func (d *Decoder) DecodeStringBytes() ([]byte, error) {
	c, err := d.next()
	if err != nil {
		return nil, err
	}

	return c.Bytes(), nil
}

// DecodeBytes reads one hex component into a freshly allocated buffer.
// Byte blobs are never zero-copy: hex decoding always produces new bytes.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	c, err := d.next()
	if err != nil {
		return nil, err
	}

	text := c.Bytes()
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("%w: component %q has odd hex length", errs.ErrData, c.Text())
	}

	buf := make([]byte, hexenc.DecodedLen(len(text)))
	if _, err := hexenc.Decode(buf, text); err != nil {
		return nil, fmt.Errorf("%w: component %q: %s", errs.ErrData, c.Text(), err)
	}

	return buf, nil
}

// DecodeUnit consumes no components but forces the reader to materialize,
// so a later End on an all-unit document sees a fully scanned queue rather
// than an unscanned input.
func (d *Decoder) DecodeUnit() error {
	return d.r.Materialize()
}

// DecodeUnitVariant reads one component and matches it against the given
// variant names, returning the matched index.
func (d *Decoder) DecodeUnitVariant(variants ...string) (int, error) {
	c, err := d.next()
	if err != nil {
		return 0, err
	}

	name := c.Text()
	for i, v := range variants {
		if v == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: component %q matches no variant", errs.ErrData, name)
}
