package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/sortkey/component"
	"github.com/arloliu/sortkey/errs"
	"github.com/arloliu/sortkey/hexenc"
	"github.com/arloliu/sortkey/internal/options"
	"github.com/arloliu/sortkey/internal/pool"
	"github.com/arloliu/sortkey/numeric"
)

// Encoder writes one encoded document to an io.Writer, component by
// component. Writes are streaming: once a component reaches the sink it is
// not retracted if a later component fails, so callers needing atomicity
// must buffer externally.
//
// Call Close when done to release the internal scratch buffer back to its
// pool. The encoder must not be used after Close.
type Encoder struct {
	w       io.Writer
	delim   string
	scratch *pool.ByteBuffer
	wrote   bool
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*Encoder]

// WithDelimiter sets the component delimiter. The delimiter is fixed for
// the encoder's lifetime; the default is ":".
func WithDelimiter(delimiter string) EncoderOption {
	return options.New(func(e *Encoder) error {
		if delimiter == "" {
			return errs.ErrInvalidDelimiter
		}
		e.delim = delimiter

		return nil
	})
}

// NewEncoder creates an encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil writer", errs.ErrInvalidTarget)
	}

	enc := &Encoder{
		w:       w,
		delim:   component.DefaultDelimiter,
		scratch: pool.GetKeyBuffer(),
	}

	if err := options.Apply(enc, opts...); err != nil {
		enc.Close()
		return nil, err
	}

	return enc, nil
}

// Delimiter returns the delimiter in effect.
func (e *Encoder) Delimiter() string {
	return e.delim
}

// Close releases the encoder's scratch buffer. Safe to call more than once.
func (e *Encoder) Close() {
	if e.scratch != nil {
		pool.PutKeyBuffer(e.scratch)
		e.scratch = nil
	}
}

// begin writes the delimiter before every component except the first.
func (e *Encoder) begin() error {
	if !e.wrote {
		e.wrote = true
		return nil
	}

	if _, err := io.WriteString(e.w, e.delim); err != nil {
		return fmt.Errorf("write delimiter: %w", err)
	}

	return nil
}

// writeHex emits raw as one fixed-width lowercase hex component.
func (e *Encoder) writeHex(raw []byte) error {
	if err := e.begin(); err != nil {
		return err
	}

	e.scratch.Reset()
	e.scratch.B = hexenc.Append(e.scratch.B, raw)
	if _, err := e.w.Write(e.scratch.B); err != nil {
		return fmt.Errorf("write component: %w", err)
	}

	return nil
}

// writeText emits text as one raw component. The caller has already ruled
// out delimiter collisions.
func (e *Encoder) writeText(text string) error {
	if err := e.begin(); err != nil {
		return err
	}

	if _, err := io.WriteString(e.w, text); err != nil {
		return fmt.Errorf("write component: %w", err)
	}

	return nil
}

// checkDelimiter rejects raw text that would corrupt the component split.
func (e *Encoder) checkDelimiter(text string) error {
	if strings.Contains(text, e.delim) {
		return fmt.Errorf("%w: %q contains delimiter %q", errs.ErrDelimiterCollision, text, e.delim)
	}

	return nil
}

// EncodeBool writes the literal "true" or "false".
func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.writeText("true")
	}

	return e.writeText("false")
}

// EncodeUint8 writes v as 2 hex digits.
func (e *Encoder) EncodeUint8(v uint8) error {
	return e.writeHex([]byte{v})
}

// EncodeUint16 writes v as 4 hex digits, big-endian.
func (e *Encoder) EncodeUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)

	return e.writeHex(b[:])
}

// EncodeUint32 writes v as 8 hex digits, big-endian.
func (e *Encoder) EncodeUint32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)

	return e.writeHex(b[:])
}

// EncodeUint64 writes v as 16 hex digits, big-endian.
func (e *Encoder) EncodeUint64(v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)

	return e.writeHex(b[:])
}

// EncodeUint128 writes v as 32 hex digits, big-endian.
func (e *Encoder) EncodeUint128(v numeric.Uint128) error {
	b := v.Bytes()

	return e.writeHex(b[:])
}

// EncodeInt8 writes the sign-folded value as 2 hex digits, so negative
// values sort before non-negative ones.
func (e *Encoder) EncodeInt8(v int8) error {
	return e.EncodeUint8(numeric.FoldInt8(v))
}

// EncodeInt16 writes the sign-folded value as 4 hex digits.
func (e *Encoder) EncodeInt16(v int16) error {
	return e.EncodeUint16(numeric.FoldInt16(v))
}

// EncodeInt32 writes the sign-folded value as 8 hex digits.
func (e *Encoder) EncodeInt32(v int32) error {
	return e.EncodeUint32(numeric.FoldInt32(v))
}

// EncodeInt64 writes the sign-folded value as 16 hex digits.
func (e *Encoder) EncodeInt64(v int64) error {
	return e.EncodeUint64(numeric.FoldInt64(v))
}

// EncodeInt128 writes the sign-folded value as 32 hex digits.
func (e *Encoder) EncodeInt128(v numeric.Int128) error {
	return e.EncodeUint128(numeric.FoldInt128(v))
}

// EncodeFloat32 writes the sign-folded IEEE 754 bits as 8 hex digits. All
// finite values order correctly; the relative order of NaN encodings is
// unspecified.
func (e *Encoder) EncodeFloat32(v float32) error {
	return e.EncodeUint32(numeric.FoldFloat32(v))
}

// EncodeFloat64 writes the sign-folded IEEE 754 bits as 16 hex digits.
func (e *Encoder) EncodeFloat64(v float64) error {
	return e.EncodeUint64(numeric.FoldFloat64(v))
}

// EncodeChar writes one Unicode scalar value as its raw UTF-8 bytes.
func (e *Encoder) EncodeChar(v rune) error {
	if !utf8.ValidRune(v) {
		return fmt.Errorf("%w: invalid rune %#x", errs.ErrData, v)
	}

	text := string(v)
	if err := e.checkDelimiter(text); err != nil {
		return err
	}

	return e.writeText(text)
}

// EncodeString writes v as its raw UTF-8 bytes. It fails with
// errs.ErrDelimiterCollision if v contains the delimiter, because the
// format has no escape sequences.
func (e *Encoder) EncodeString(v string) error {
	if err := e.checkDelimiter(v); err != nil {
		return err
	}

	return e.writeText(v)
}

// EncodeBytes writes v hex-encoded as one component.
func (e *Encoder) EncodeBytes(v []byte) error {
	return e.writeHex(v)
}

// EncodeUnit writes nothing: unit values contribute zero components and no
// delimiter.
func (e *Encoder) EncodeUnit() error {
	return nil
}

// EncodeUnitVariant writes the bare variant name. The enclosing type name
// is never encoded.
func (e *Encoder) EncodeUnitVariant(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty variant name", errs.ErrInvalidShape)
	}
	if err := e.checkDelimiter(name); err != nil {
		return err
	}

	return e.writeText(name)
}
