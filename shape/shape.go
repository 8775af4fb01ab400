// Package shape compiles Go types into the closed descriptor vocabulary of
// the printable key format.
//
// A Shape describes how a value maps onto encoded components: scalars and
// blobs become single components, structs and arrays flatten into ordered
// component sequences, zero-field structs contribute nothing. The compiler
// rejects everything outside the vocabulary, in particular pointers,
// maps, variable-length collections other than []byte, and the
// platform-width int, uint and uintptr types whose encoded width would vary
// across builds.
//
// Compiled shapes are cached per reflect.Type, so repeated lookups of the
// same type are cheap.
package shape

import (
	"reflect"
	"strings"
)

// Char holds a single Unicode scalar value. It encodes as the raw UTF-8
// bytes of the rune, unlike a plain rune (int32), which encodes as a
// fixed-width number.
type Char rune

// Enum marks an integer-backed type as a set of named unit variants.
//
// The value is an index into the slice returned by Variants, and the
// encoded form is the bare variant name. Variants must be implemented on
// the value receiver, return at least one name, and never change order
// between encode and decode.
type Enum interface {
	Variants() []string
}

// Shape is the compiled descriptor of one Go type. Shapes are immutable
// once built and safe for concurrent use.
type Shape struct {
	kind     Kind
	goType   reflect.Type
	fields   []Field  // struct-backed tuples
	elem     *Shape   // array-backed tuples
	length   int      // array-backed tuples
	variants []string // enums
}

// Field is one encodable struct field inside a struct-backed tuple.
// Index is the field's position in the Go struct, which differs from the
// tuple position when unexported or tagged-out fields are skipped.
type Field struct {
	Name  string
	Index int
	Shape *Shape
}

// Kind returns the shape's kind.
func (s *Shape) Kind() Kind { return s.kind }

// GoType returns the Go type the shape was compiled from.
func (s *Shape) GoType() reflect.Type { return s.goType }

// Fields returns the struct fields of a struct-backed tuple, or nil. The
// returned slice is shared and must not be modified.
func (s *Shape) Fields() []Field { return s.fields }

// Elem returns the element shape of an array-backed tuple, or nil.
func (s *Shape) Elem() *Shape { return s.elem }

// Len returns the arity of a tuple shape and 0 for every other kind.
func (s *Shape) Len() int {
	if s.kind != KindTuple {
		return 0
	}
	if s.fields != nil {
		return len(s.fields)
	}

	return s.length
}

// Variants returns the ordered variant names of an enum shape, or nil. The
// returned slice is shared and must not be modified.
func (s *Shape) Variants() []string { return s.variants }

// Components returns the number of encoded components the shape flattens
// into: 1 for scalars, blobs, enums and text, 0 for unit, and the sum of
// the element counts for tuples.
func (s *Shape) Components() int {
	switch s.kind {
	case KindUnit:
		return 0
	case KindTuple:
		n := 0
		if s.fields != nil {
			for _, f := range s.fields {
				n += f.Shape.Components()
			}

			return n
		}
		if s.elem != nil {
			return s.length * s.elem.Components()
		}

		return 0
	default:
		return 1
	}
}

// String renders the shape for diagnostics, for example
// "tuple(string, uint32)" or "enum(Hello|World)".
func (s *Shape) String() string {
	switch s.kind {
	case KindTuple:
		var b strings.Builder
		b.WriteString("tuple(")
		if s.fields != nil {
			for i, f := range s.fields {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(f.Shape.String())
			}
		} else if s.elem != nil {
			for i := 0; i < s.length; i++ {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(s.elem.String())
			}
		}
		b.WriteString(")")

		return b.String()
	case KindEnum:
		return "enum(" + strings.Join(s.variants, "|") + ")"
	default:
		return s.kind.String()
	}
}
