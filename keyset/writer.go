package keyset

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/sortkey/compress"
	"github.com/arloliu/sortkey/errs"
	"github.com/arloliu/sortkey/internal/options"
	"github.com/arloliu/sortkey/internal/pool"
)

// Writer accumulates encoded keys in strictly ascending byte order and
// seals them into one block. A Writer serves one block and is not safe for
// concurrent use.
type Writer struct {
	payload     *pool.ByteBuffer
	last        []byte
	count       int
	compression compress.Type
	finished    bool
}

// WriterOption configures a Writer at construction time.
type WriterOption = options.Option[*Writer]

// WithCompression selects the payload compression codec. The default is
// no compression.
func WithCompression(t compress.Type) WriterOption {
	return options.New(func(w *Writer) error {
		if !t.IsValid() {
			return fmt.Errorf("%w: compression type %d", errs.ErrInvalidHeaderFlags, t)
		}
		w.compression = t

		return nil
	})
}

// NewWriter creates an empty block writer.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		payload:     pool.GetBlockBuffer(),
		compression: compress.TypeNone,
	}

	if err := options.Apply(w, opts...); err != nil {
		pool.PutBlockBuffer(w.payload)
		return nil, err
	}

	return w, nil
}

// Len returns the number of keys added so far.
func (w *Writer) Len() int {
	return w.count
}

// Compression returns the codec the block will be sealed with.
func (w *Writer) Compression() compress.Type {
	return w.compression
}

// Add appends one encoded key. Keys must arrive in strictly ascending byte
// order: Add fails with errs.ErrKeyOutOfOrder if key sorts below the
// previous key and with errs.ErrDuplicateKey if it equals it. Empty keys
// are valid; an empty key can only be the first.
func (w *Writer) Add(key []byte) error {
	if w.finished {
		return errs.ErrWriterFinished
	}

	if w.count > 0 {
		switch bytes.Compare(key, w.last) {
		case -1:
			return fmt.Errorf("%w: %q after %q", errs.ErrKeyOutOfOrder, key, w.last)
		case 0:
			return fmt.Errorf("%w: %q", errs.ErrDuplicateKey, key)
		}
	}

	w.payload.B = binary.AppendUvarint(w.payload.B, uint64(len(key)))
	w.payload.B = append(w.payload.B, key...)
	w.last = append(w.last[:0], key...)
	w.count++

	return nil
}

// Finish compresses the payload and returns the sealed block. The writer
// releases its buffers and cannot be reused.
func (w *Writer) Finish() ([]byte, error) {
	if w.finished {
		return nil, errs.ErrWriterFinished
	}
	w.finished = true
	defer func() {
		pool.PutBlockBuffer(w.payload)
		w.payload = nil
	}()

	raw := w.payload.Bytes()

	codec, err := compress.GetCodec(w.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress block payload: %w", err)
	}

	header := Header{
		Version:     Version,
		Compression: w.compression,
		KeyCount:    uint32(w.count), //nolint: gosec
		RawSize:     uint32(len(raw)), //nolint: gosec
		Checksum:    xxhash.Sum64(raw),
	}

	block := make([]byte, 0, HeaderSize+len(compressed))
	block = append(block, header.Bytes()...)
	block = append(block, compressed...)

	return block, nil
}
