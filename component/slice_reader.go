package component

import (
	"github.com/arloliu/sortkey/errs"
)

// SliceReader reads components from an in-memory buffer.
//
// Components are borrowed views into the caller's buffer, so the buffer must
// outlive every component taken from the reader and must not be modified
// while the reader is in use.
type SliceReader struct {
	input      []byte
	delimiter  string
	components []Component
	next       int
	split      bool
}

var _ Reader = (*SliceReader)(nil)

// NewSliceReader creates a reader over data using the default delimiter.
func NewSliceReader(data []byte) *SliceReader {
	return &SliceReader{
		input:     data,
		delimiter: DefaultDelimiter,
	}
}

// Delimiter returns the delimiter currently in effect.
func (r *SliceReader) Delimiter() string {
	return r.delimiter
}

// SetDelimiter replaces the delimiter. The delimiter is locked once the
// input has been split.
func (r *SliceReader) SetDelimiter(delimiter string) error {
	if r.split {
		return errs.ErrDelimiterLocked
	}
	if delimiter == "" {
		return errs.ErrInvalidDelimiter
	}

	r.delimiter = delimiter

	return nil
}

// Materialize splits the buffer into the component queue. Idempotent.
func (r *SliceReader) Materialize() error {
	if r.split {
		return nil
	}

	if err := validate(r.input); err != nil {
		return err
	}

	r.components = split(r.input, []byte(r.delimiter), true)
	r.split = true

	return nil
}

// Next pops the next component, materializing first if needed.
func (r *SliceReader) Next() (Component, bool, error) {
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
