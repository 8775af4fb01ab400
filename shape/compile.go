package shape

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/arloliu/sortkey/errs"
	"github.com/arloliu/sortkey/numeric"
)

var (
	charType    = reflect.TypeFor[Char]()
	uint128Type = reflect.TypeFor[numeric.Uint128]()
	int128Type  = reflect.TypeFor[numeric.Int128]()
	enumType    = reflect.TypeFor[Enum]()

	textMarshalerType   = reflect.TypeFor[encoding.TextMarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// cache holds successfully compiled shapes keyed by reflect.Type.
// Failed compilations are not cached; they are rare and cheap to repeat.
var cache sync.Map

// Of compiles the shape of v's dynamic type.
func Of(v any) (*Shape, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", errs.ErrUnsupportedType)
	}

	return TypeOf(reflect.TypeOf(v))
}

// TypeOf compiles the shape of t.
//
// The special types are matched before structural dispatch, in this order:
// shape.Char, numeric.Uint128, numeric.Int128, the Enum interface, and the
// encoding.TextMarshaler/TextUnmarshaler interfaces. A type implementing
// both Enum and the text interfaces compiles as an enum.
func TypeOf(t reflect.Type) (*Shape, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", errs.ErrUnsupportedType)
	}

	if cached, ok := cache.Load(t); ok {
		return cached.(*Shape), nil
	}

	s, err := compile(t, nil)
	if err != nil {
		return nil, err
	}

	cache.Store(t, s)

	return s, nil
}

func compile(t reflect.Type, path []string) (*Shape, error) {
	switch t {
	case charType:
		return &Shape{kind: KindChar, goType: t}, nil
	case uint128Type:
		return &Shape{kind: KindUint128, goType: t}, nil
	case int128Type:
		return &Shape{kind: KindInt128, goType: t}, nil
	}

	if t.Implements(enumType) {
		return compileEnum(t, path)
	}

	if isTextType(t) {
		return &Shape{kind: KindText, goType: t}, nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return &Shape{kind: KindBool, goType: t}, nil
	case reflect.Uint8:
		return &Shape{kind: KindUint8, goType: t}, nil
	case reflect.Uint16:
		return &Shape{kind: KindUint16, goType: t}, nil
	case reflect.Uint32:
		return &Shape{kind: KindUint32, goType: t}, nil
	case reflect.Uint64:
		return &Shape{kind: KindUint64, goType: t}, nil
	case reflect.Int8:
		return &Shape{kind: KindInt8, goType: t}, nil
	case reflect.Int16:
		return &Shape{kind: KindInt16, goType: t}, nil
	case reflect.Int32:
		// Plain rune lands here and encodes as a fixed-width number.
		// Use shape.Char for the raw UTF-8 form.
		return &Shape{kind: KindInt32, goType: t}, nil
	case reflect.Int64:
		return &Shape{kind: KindInt64, goType: t}, nil
	case reflect.Float32:
		return &Shape{kind: KindFloat32, goType: t}, nil
	case reflect.Float64:
		return &Shape{kind: KindFloat64, goType: t}, nil
	case reflect.String:
		return &Shape{kind: KindString, goType: t}, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return &Shape{kind: KindBytes, goType: t}, nil
		}

		return nil, unsupported(t, path, "variable-length collections cannot preserve order without length prefixes")
	case reflect.Array:
		return compileArray(t, path)
	case reflect.Struct:
		return compileStruct(t, path)
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return nil, unsupported(t, path, "platform-width integers have no fixed encoded width")
	case reflect.Pointer:
		return nil, unsupported(t, path, "optional values are not representable")
	case reflect.Map:
		return nil, unsupported(t, path, "maps are not representable")
	case reflect.Interface:
		return nil, unsupported(t, path, "dynamic values are not representable")
	default:
		return nil, unsupported(t, path, "kind "+t.Kind().String())
	}
}

func compileStruct(t reflect.Type, path []string) (*Shape, error) {
	fields := make([]Field, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("sortkey") == "-" {
			continue
		}

		fieldPath := append(append([]string{}, path...), f.Name)
		fs, err := compile(f.Type, fieldPath)
		if err != nil {
			return nil, err
		}

		fields = append(fields, Field{Name: f.Name, Index: i, Shape: fs})
	}

	if len(fields) == 0 {
		return &Shape{kind: KindUnit, goType: t}, nil
	}

	return &Shape{kind: KindTuple, goType: t, fields: fields}, nil
}

func compileArray(t reflect.Type, path []string) (*Shape, error) {
	elem, err := compile(t.Elem(), append(path, "[]"))
	if err != nil {
		return nil, err
	}

	return &Shape{kind: KindTuple, goType: t, elem: elem, length: t.Len()}, nil
}

func compileEnum(t reflect.Type, path []string) (*Shape, error) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return nil, fmt.Errorf("%w: enum type %s must have an integer base, got %s",
			errs.ErrInvalidShape, t, t.Kind())
	}

	variants := reflect.Zero(t).Interface().(Enum).Variants()
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: enum type %s has no variants", errs.ErrInvalidShape, t)
	}

	seen := make(map[string]struct{}, len(variants))
	for _, name := range variants {
		if name == "" {
			return nil, fmt.Errorf("%w: enum type %s has an empty variant name", errs.ErrInvalidShape, t)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: enum type %s repeats variant %q", errs.ErrInvalidShape, t, name)
		}
		seen[name] = struct{}{}
	}

	_ = path

	return &Shape{kind: KindEnum, goType: t, variants: variants}, nil
}

// isTextType reports whether t participates in the encoding.TextMarshaler
// or encoding.TextUnmarshaler contracts on either receiver form.
func isTextType(t reflect.Type) bool {
	if t.Implements(textMarshalerType) || t.Implements(textUnmarshalerType) {
		return true
	}

	pt := reflect.PointerTo(t)

	return pt.Implements(textMarshalerType) || pt.Implements(textUnmarshalerType)
}

func unsupported(t reflect.Type, path []string, why string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: %s (%s)", errs.ErrUnsupportedType, t, why)
	}

	return fmt.Errorf("%w: %s at %s (%s)", errs.ErrUnsupportedType, t, strings.Join(path, "."), why)
}
