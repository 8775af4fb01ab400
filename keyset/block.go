package keyset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/sortkey/compress"
	"github.com/arloliu/sortkey/errs"
)

// Block is a parsed key set block. Keys are views into the block's
// decompressed payload, ordered ascending, and must not be modified.
//
// A Block is immutable after Parse and safe for concurrent reads.
type Block struct {
	header  Header
	payload []byte
	keys    [][]byte
}

// Parse validates data as a key set block: header fields, payload checksum
// and varint framing all have to check out. The input slice is not retained
// when the block is compressed; for uncompressed blocks the keys alias data.
func Parse(data []byte) (*Block, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	b := &Block{}
	if err := b.header.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(b.header.Compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidBlockPayload, err)
	}

	if len(payload) != int(b.header.RawSize) {
		return nil, fmt.Errorf("%w: payload size %d, header says %d",
			errs.ErrInvalidBlockPayload, len(payload), b.header.RawSize)
	}
	if xxhash.Sum64(payload) != b.header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	b.payload = payload
	if err := b.index(); err != nil {
		return nil, err
	}

	return b, nil
}

// index walks the varint framing once and records a view per key.
func (b *Block) index() error {
	b.keys = make([][]byte, 0, b.header.KeyCount)

	rest := b.payload
	for len(rest) > 0 {
		size, n := binary.Uvarint(rest)
		if n <= 0 || uint64(len(rest)-n) < size {
			return fmt.Errorf("%w: truncated key frame", errs.ErrInvalidBlockPayload)
		}
		b.keys = append(b.keys, rest[n:n+int(size)])
		rest = rest[n+int(size):]
	}

	if len(b.keys) != int(b.header.KeyCount) {
		return fmt.Errorf("%w: %d keys framed, header says %d",
			errs.ErrInvalidBlockPayload, len(b.keys), b.header.KeyCount)
	}

	return nil
}

// Header returns a copy of the block header.
func (b *Block) Header() Header {
	return b.header
}

// Len returns the number of keys in the block.
func (b *Block) Len() int {
	return len(b.keys)
}

// Key returns the i-th key in ascending order. It panics if i is out of
// range, matching slice indexing.
func (b *Block) Key(i int) []byte {
	return b.keys[i]
}

// All iterates every key in ascending order.
func (b *Block) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, key := range b.keys {
			if !yield(key) {
				return
			}
		}
	}
}

// Range iterates the keys in [start, end) in ascending order. A nil end
// means no upper bound.
func (b *Block) Range(start, end []byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		i := sort.Search(len(b.keys), func(i int) bool {
			return bytes.Compare(b.keys[i], start) >= 0
		})
		for ; i < len(b.keys); i++ {
			if end != nil && bytes.Compare(b.keys[i], end) >= 0 {
				return
			}
			if !yield(b.keys[i]) {
				return
			}
		}
	}
}

// Prefix iterates the keys beginning with prefix, in ascending order.
func (b *Block) Prefix(prefix []byte) iter.Seq[[]byte] {
	start, end := PrefixRange(prefix)
	return b.Range(start, end)
}

// Contains reports whether key is present, by binary search.
func (b *Block) Contains(key []byte) bool {
	i := sort.Search(len(b.keys), func(i int) bool {
		return bytes.Compare(b.keys[i], key) >= 0
	})

	return i < len(b.keys) && bytes.Equal(b.keys[i], key)
}
