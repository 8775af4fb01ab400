package shape

// Kind identifies one entry in the closed vocabulary of encodable value
// kinds. Every supported Go type compiles to exactly one Kind.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
	KindFloat32
	KindFloat64
	KindChar
	KindString
	KindBytes
	KindUnit
	KindEnum
	KindTuple
	KindText
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindUint128: "uint128",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindInt128:  "int128",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindChar:    "char",
	KindString:  "string",
	KindBytes:   "bytes",
	KindUnit:    "unit",
	KindEnum:    "enum",
	KindTuple:   "tuple",
	KindText:    "text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// IsNumeric reports whether the kind encodes as fixed-width hex digits.
func (k Kind) IsNumeric() bool {
	return k >= KindUint8 && k <= KindFloat64
}
