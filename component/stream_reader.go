package component

import (
	"fmt"
	"io"

	"github.com/arloliu/sortkey/errs"
)

// StreamReader reads components from an io.Reader.
//
// The first Materialize drains the stream completely into one buffer owned
// by the reader; components are views into that buffer and remain valid for
// the reader's lifetime. Blocking behavior is the stream's own; the reader
// imposes no timeout.
type StreamReader struct {
	input      io.Reader
	delimiter  string
	buf        []byte
	components []Component
	next       int
	split      bool
}

var _ Reader = (*StreamReader)(nil)

// NewStreamReader creates a reader that drains input on first use, with the
// default delimiter.
func NewStreamReader(input io.Reader) *StreamReader {
	return &StreamReader{
		input:     input,
		delimiter: DefaultDelimiter,
	}
}

// Delimiter returns the delimiter currently in effect.
func (r *StreamReader) Delimiter() string {
	return r.delimiter
}

// SetDelimiter replaces the delimiter. The delimiter is locked once the
// stream has been drained and split.
func (r *StreamReader) SetDelimiter(delimiter string) error {
	if r.split {
		return errs.ErrDelimiterLocked
	}
	if delimiter == "" {
		return errs.ErrInvalidDelimiter
	}

	r.delimiter = delimiter

	return nil
}

// Materialize drains the stream and splits it into the component queue.
// Idempotent; the stream is read at most once.
func (r *StreamReader) Materialize() error {
	if r.split {
		return nil
	}

	buf, err := io.ReadAll(r.input)
	if err != nil {
		return fmt.Errorf("read input stream: %w", err)
	}

	if err := validate(buf); err != nil {
		return err
	}

	r.buf = buf
	r.components = split(r.buf, []byte(r.delimiter), false)
	r.split = true

	return nil
}

// Next pops the next component, materializing first if needed.
func (r *StreamReader) Next() (Component, bool, error) {
	if err := r.Materialize(); err != nil {
		return Component{}, false, err
	}

	if r.next >= len(r.components) {
		return Component{}, false, nil
	}

	c := r.components[r.next]
	r.next++

	return c, true, nil
}
