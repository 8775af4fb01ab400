package codec

import (
	"encoding"
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/arloliu/sortkey/errs"
	"github.com/arloliu/sortkey/numeric"
	"github.com/arloliu/sortkey/shape"
)

// EncodeValue compiles the shape of v's dynamic type and writes v as one
// encoded document. It fails with errs.ErrUnsupportedType if v, or anything
// nested inside it, falls outside the supported kind vocabulary.
func (e *Encoder) EncodeValue(v any) error {
	s, err := shape.Of(v)
	if err != nil {
		return err
	}

	return e.encodeShaped(s, reflect.ValueOf(v))
}

// EncodeShaped writes v against a pre-compiled shape, skipping the
// per-call shape lookup. v's type must be the type s was compiled from.
func (e *Encoder) EncodeShaped(s *shape.Shape, v any) error {
	if s == nil {
		return fmt.Errorf("%w: nil shape", errs.ErrInvalidShape)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != s.GoType() {
		return fmt.Errorf("%w: value type does not match shape %s", errs.ErrInvalidTarget, s)
	}

	return e.encodeShaped(s, rv)
}

func (e *Encoder) encodeShaped(s *shape.Shape, v reflect.Value) error {
	switch s.Kind() {
	case shape.KindBool:
		return e.EncodeBool(v.Bool())
	case shape.KindUint8:
		return e.EncodeUint8(uint8(v.Uint()))
	case shape.KindUint16:
		return e.EncodeUint16(uint16(v.Uint()))
	case shape.KindUint32:
		return e.EncodeUint32(uint32(v.Uint()))
	case shape.KindUint64:
		return e.EncodeUint64(v.Uint())
	case shape.KindUint128:
		return e.EncodeUint128(v.Interface().(numeric.Uint128))
	case shape.KindInt8:
		return e.EncodeInt8(int8(v.Int()))
	case shape.KindInt16:
		return e.EncodeInt16(int16(v.Int()))
	case shape.KindInt32:
		return e.EncodeInt32(int32(v.Int()))
	case shape.KindInt64:
		return e.EncodeInt64(v.Int())
	case shape.KindInt128:
		return e.EncodeInt128(v.Interface().(numeric.Int128))
	case shape.KindFloat32:
		return e.EncodeFloat32(float32(v.Float()))
	case shape.KindFloat64:
		return e.EncodeFloat64(v.Float())
	case shape.KindChar:
		return e.EncodeChar(rune(v.Int()))
	case shape.KindString:
		return e.EncodeString(v.String())
	case shape.KindBytes:
		return e.EncodeBytes(v.Bytes())
	case shape.KindUnit:
		return e.EncodeUnit()
	case shape.KindEnum:
		return e.encodeEnum(s, v)
	case shape.KindText:
		return e.encodeText(v)
	case shape.KindTuple:
		return e.encodeTuple(s, v)
	default:
		return fmt.Errorf("%w: shape kind %s", errs.ErrUnsupportedType, s.Kind())
	}
}

func (e *Encoder) encodeEnum(s *shape.Shape, v reflect.Value) error {
	var idx int64
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		idx = v.Int()
	default:
		idx = int64(v.Uint()) //nolint: gosec
	}

	variants := s.Variants()
	if idx < 0 || idx >= int64(len(variants)) {
		return fmt.Errorf("%w: enum value %d outside variants of %s", errs.ErrData, idx, s.GoType())
	}

	return e.EncodeUnitVariant(variants[idx])
}

func (e *Encoder) encodeText(v reflect.Value) error {
	m, err := textMarshaler(v)
	if err != nil {
		return err
	}

	text, err := m.MarshalText()
	if err != nil {
		return fmt.Errorf("marshal text for %s: %w", v.Type(), err)
	}
	if !utf8.Valid(text) {
		return fmt.Errorf("%w: %s marshaled invalid UTF-8", errs.ErrData, v.Type())
	}
	if err := e.checkDelimiter(string(text)); err != nil {
		return err
	}

	return e.writeText(string(text))
}

func (e *Encoder) encodeTuple(s *shape.Shape, v reflect.Value) error {
	if fields := s.Fields(); fields != nil {
		for _, f := range fields {
			if err := e.encodeShaped(f.Shape, v.Field(f.Index)); err != nil {
				return err
			}
		}

		return nil
	}

	for i := 0; i < s.Len(); i++ {
		if err := e.encodeShaped(s.Elem(), v.Index(i)); err != nil {
			return err
		}
	}

	return nil
}

// textMarshaler resolves the encoding.TextMarshaler for v, taking the
// address when the method set requires a pointer receiver.
func textMarshaler(v reflect.Value) (encoding.TextMarshaler, error) {
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		return m, nil
	}

	var pv reflect.Value
	if v.CanAddr() {
		pv = v.Addr()
	} else {
		pv = reflect.New(v.Type())
		pv.Elem().Set(v)
	}

	if m, ok := pv.Interface().(encoding.TextMarshaler); ok {
		return m, nil
	}

	return nil, fmt.Errorf("%w: %s does not implement encoding.TextMarshaler", errs.ErrUnsupportedType, v.Type())
}
