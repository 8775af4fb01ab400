// Package component splits an encoded document into its delimiter-separated
// text tokens.
//
// A Reader follows a two-phase protocol: Materialize performs the one split
// over the full input (idempotent after the first call), and Next pops
// components front to back. The split keeps interior empty tokens, but a
// wholly empty input yields zero components so that unit-shaped documents
// keep their zero arity.
//
// Two adapters exist: SliceReader splits directly over the caller's buffer
// and hands out borrowed views into it, while StreamReader drains an
// io.Reader into one owned buffer first. Either way the decoder sees the
// same component sequence.
package component

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/sortkey/errs"
)

// DefaultDelimiter separates components unless the reader is reconfigured.
const DefaultDelimiter = ":"

// Component is one delimiter-separated text token of an encoded document.
//
// The token bytes are a view into the reader's input buffer; they stay valid
// for as long as that buffer does and must not be modified.
type Component struct {
	text     []byte
	borrowed bool
}

// Text returns the token as a string. The returned string is a copy and is
// always safe to retain.
func (c Component) Text() string {
	return string(c.text)
}

// Bytes returns the token bytes without copying. Borrowed components alias
// the caller's original input.
func (c Component) Bytes() []byte {
	return c.text
}

// Borrowed reports whether the token aliases the caller's input buffer
// rather than a buffer owned by the reader.
func (c Component) Borrowed() bool {
	return c.borrowed
}

// Len returns the token length in bytes.
func (c Component) Len() int {
	return len(c.text)
}

// Reader yields the components of one encoded document, front to back.
//
// Implementations are single-use and not safe for concurrent access.
type Reader interface {
	// Delimiter returns the delimiter currently in effect.
	Delimiter() string

	// SetDelimiter replaces the delimiter. It fails with
	// errs.ErrDelimiterLocked once the input has been materialized and with
	// errs.ErrInvalidDelimiter for an empty delimiter.
	SetDelimiter(delimiter string) error

	// Materialize splits the input into the component queue. The first call
	// does all the work; later calls are no-ops. It fails with
	// errs.ErrTextDecode if the input is not valid UTF-8.
	Materialize() error

	// Next materializes if needed and pops the next component. The boolean
	// is false once the queue is drained.
	Next() (Component, bool, error)
}

// split cuts text at each non-overlapping occurrence of delimiter, keeping
// interior empty tokens. Empty input produces zero components, not one
// empty component.
func split(text, delimiter []byte, borrowed bool) []Component {
	if len(text) == 0 {
		return nil
	}

	parts := bytes.Split(text, delimiter)
	components := make([]Component, len(parts))
	for i, part := range parts {
		components[i] = Component{text: part, borrowed: borrowed}
	}

	return components
}

func validate(text []byte) error {
	if !utf8.Valid(text) {
		return fmt.Errorf("%w: input is not valid UTF-8", errs.ErrTextDecode)
	}

	return nil
}
