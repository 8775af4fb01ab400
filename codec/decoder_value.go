package codec

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/arloliu/sortkey/errs"
	"github.com/arloliu/sortkey/shape"
)

// DecodeValue compiles the shape of target's element type and fills it from
// the document. target must be a non-nil pointer. DecodeValue does not call
// End; the caller runs the trailing check after the top-level decode.
func (d *Decoder) DecodeValue(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode target must be a non-nil pointer", errs.ErrInvalidTarget)
	}

	s, err := shape.TypeOf(rv.Type().Elem())
	if err != nil {
		return err
	}

	return d.decodeShaped(s, rv.Elem())
}

// DecodeShaped fills target against a pre-compiled shape, skipping the
// per-call shape lookup. target must be a non-nil pointer to the type s was
// compiled from.
func (d *Decoder) DecodeShaped(s *shape.Shape, target any) error {
	if s == nil {
		return fmt.Errorf("%w: nil shape", errs.ErrInvalidShape)
	}

	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: decode target must be a non-nil pointer", errs.ErrInvalidTarget)
	}
	if rv.Type().Elem() != s.GoType() {
		return fmt.Errorf("%w: target type does not match shape %s", errs.ErrInvalidTarget, s)
	}

	return d.decodeShaped(s, rv.Elem())
}

func (d *Decoder) decodeShaped(s *shape.Shape, v reflect.Value) error {
	switch s.Kind() {
	case shape.KindBool:
		b, err := d.DecodeBool()
		if err != nil {
			return err
		}
		v.SetBool(b)
	case shape.KindUint8, shape.KindUint16, shape.KindUint32, shape.KindUint64:
		u, err := d.decodeUint(s.Kind())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case shape.KindUint128:
		u, err := d.DecodeUint128()
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(u))
	case shape.KindInt8, shape.KindInt16, shape.KindInt32, shape.KindInt64:
		i, err := d.decodeInt(s.Kind())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case shape.KindInt128:
		i, err := d.DecodeInt128()
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(i))
	case shape.KindFloat32:
		f, err := d.DecodeFloat32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
	case shape.KindFloat64:
		f, err := d.DecodeFloat64()
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case shape.KindChar:
		r, err := d.DecodeChar()
		if err != nil {
			return err
		}
		v.SetInt(int64(r))
	case shape.KindString:
		str, err := d.DecodeString()
		if err != nil {
			return err
		}
		v.SetString(str)
	case shape.KindBytes:
		b, err := d.DecodeBytes()
		if err != nil {
			return err
		}
		v.SetBytes(b)
	case shape.KindUnit:
		return d.DecodeUnit()
	case shape.KindEnum:
		idx, err := d.DecodeUnitVariant(s.Variants()...)
		if err != nil {
			return err
		}
		return setEnumIndex(v, idx)
	case shape.KindText:
		return d.decodeText(v)
	case shape.KindTuple:
		return d.decodeTuple(s, v)
	default:
		return fmt.Errorf("%w: shape kind %s", errs.ErrUnsupportedType, s.Kind())
	}

	return nil
}

func (d *Decoder) decodeUint(k shape.Kind) (uint64, error) {
	switch k {
	case shape.KindUint8:
		u, err := d.DecodeUint8()
		return uint64(u), err
	case shape.KindUint16:
		u, err := d.DecodeUint16()
		return uint64(u), err
	case shape.KindUint32:
		u, err := d.DecodeUint32()
		return uint64(u), err
	default:
		return d.DecodeUint64()
	}
}

func (d *Decoder) decodeInt(k shape.Kind) (int64, error) {
	switch k {
	case shape.KindInt8:
		i, err := d.DecodeInt8()
		return int64(i), err
	case shape.KindInt16:
		i, err := d.DecodeInt16()
		return int64(i), err
	case shape.KindInt32:
		i, err := d.DecodeInt32()
		return int64(i), err
	default:
		return d.DecodeInt64()
	}
}

func (d *Decoder) decodeText(v reflect.Value) error {
	c, err := d.next()
	if err != nil {
		return err
	}

	if !v.CanAddr() {
		return fmt.Errorf("%w: text target is not addressable", errs.ErrInvalidTarget)
	}

	u, ok := v.Addr().Interface().(encoding.TextUnmarshaler)
	if !ok {
		return fmt.Errorf("%w: %s does not implement encoding.TextUnmarshaler", errs.ErrUnsupportedType, v.Type())
	}

	if err := u.UnmarshalText(c.Bytes()); err != nil {
		return fmt.Errorf("unmarshal text for %s: %w", v.Type(), err)
	}

	return nil
}

func (d *Decoder) decodeTuple(s *shape.Shape, v reflect.Value) error {
	if fields := s.Fields(); fields != nil {
		for _, f := range fields {
			if err := d.decodeShaped(f.Shape, v.Field(f.Index)); err != nil {
				return err
			}
		}

		return nil
	}

	for i := 0; i < s.Len(); i++ {
		if err := d.decodeShaped(s.Elem(), v.Index(i)); err != nil {
			return err
		}
	}

	return nil
}

func setEnumIndex(v reflect.Value, idx int) error {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(idx))
	default:
		v.SetUint(uint64(idx))
	}

	return nil
}
