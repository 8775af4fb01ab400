package keyset

import (
	"encoding/binary"

	"github.com/arloliu/sortkey/compress"
	"github.com/arloliu/sortkey/errs"
)

const (
	// MagicNumber marks the start of every key set block.
	MagicNumber uint32 = 0x6B736574 // "kset"

	// Version is the current block format version.
	Version uint8 = 1

	// HeaderSize is the fixed byte length of the block header.
	HeaderSize = 32
)

// Header is the fixed-size header of a key set block. All multi-byte fields
// are big-endian, matching the byte order of the key format itself.
//
// Layout:
//
//	offset 0-3   magic number (0x6B736574)
//	offset 4     format version
//	offset 5     compression type
//	offset 6-7   reserved, must be zero
//	offset 8-11  key count
//	offset 12-15 uncompressed payload size in bytes
//	offset 16-23 xxHash64 checksum of the uncompressed payload
//	offset 24-31 reserved, must be zero
type Header struct {
	Version     uint8
	Compression compress.Type
	KeyCount    uint32
	RawSize     uint32
	Checksum    uint64
}

// Parse decodes and validates a header from data.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if binary.BigEndian.Uint32(data[0:4]) != MagicNumber {
		return errs.ErrInvalidMagicNumber
	}

	h.Version = data[4]
	h.Compression = compress.Type(data[5])
	h.KeyCount = binary.BigEndian.Uint32(data[8:12])
	h.RawSize = binary.BigEndian.Uint32(data[12:16])
	h.Checksum = binary.BigEndian.Uint64(data[16:24])

	if h.Version != Version || !h.Compression.IsValid() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the header into a fresh HeaderSize slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(b[0:4], MagicNumber)
	b[4] = h.Version
	b[5] = byte(h.Compression)
	binary.BigEndian.PutUint32(b[8:12], h.KeyCount)
	binary.BigEndian.PutUint32(b[12:16], h.RawSize)
	binary.BigEndian.PutUint64(b[16:24], h.Checksum)

	return b
}
