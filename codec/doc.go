// Package codec implements the encoder and decoder for the order-preserving
// printable key format.
//
// The format joins text components with a configurable delimiter (default
// ":"). Numeric components are fixed-width lowercase hex after an
// order-preserving bit transform, so byte-lexicographic comparison of two
// encoded documents of the same shape matches the natural ordering of the
// original values. Strings, chars and unit-variant names are written as raw
// UTF-8, byte blobs as hex, booleans as the literals "true" and "false".
// Unit values contribute nothing. Composite values flatten field by field;
// no type tags, length prefixes or escape sequences are ever written, which
// is why decoding requires the caller to supply the exact target shape.
//
// An Encoder or Decoder instance serves one document and is not safe for
// concurrent use; independent instances are.
package codec
