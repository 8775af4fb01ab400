package compress

import (
	"fmt"
)

// Type identifies the compression algorithm applied to a key set block
// payload. The value is stored in the block header, so constants must never
// be renumbered.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores the payload uncompressed.
	TypeZstd Type = 0x2 // TypeZstd uses Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 uses S2 (Snappy-compatible) compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 uses LZ4 block compression.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether t is a known compression type.
func (t Type) IsValid() bool {
	return t >= TypeNone && t <= TypeLZ4
}

// Compressor compresses one key set payload.
//
// Payloads are varint-framed runs of encoded keys, typically a few KB to a
// few hundred KB. Hex-heavy key text is repetitive, so even the fast codecs
// compress it well.
type Compressor interface {
	// Compress compresses data and returns the result. The returned slice
	// is owned by the caller; the input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor for the same algorithm.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload. It
	// fails if the data is corrupted or was compressed with a different
	// algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Implementations in this package are
// stateless values, safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given compression type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
