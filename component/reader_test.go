package component

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sortkey/errs"
)

func drain(t *testing.T, r Reader) []string {
	t.Helper()

	var out []string
	for {
		c, ok, err := r.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		out = append(out, c.Text())
	}

	return out
}

func TestSliceReader_Split(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single component", input: "abc", want: []string{"abc"}},
		{name: "two components", input: "abc:05", want: []string{"abc", "05"}},
		{name: "interior empty", input: "a::b", want: []string{"a", "", "b"}},
		{name: "leading empty", input: ":a", want: []string{"", "a"}},
		{name: "trailing empty", input: "a:", want: []string{"a", ""}},
		{name: "only delimiter", input: ":", want: []string{"", ""}},
		{name: "empty input yields no components", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewSliceReader([]byte(tt.input))
			require.Equal(t, tt.want, drain(t, r))

			// Drained readers stay drained.
			_, ok, err := r.Next()
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestSliceReader_BorrowedComponents(t *testing.T) {
	input := []byte("hello:world")
	r := NewSliceReader(input)

	c, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, c.Borrowed())
	require.Equal(t, 5, c.Len())

	// The component aliases the caller's buffer.
	require.Equal(t, &input[0], &c.Bytes()[0])
}

func TestSliceReader_MultiByteDelimiter(t *testing.T) {
	r := NewSliceReader([]byte("a::b::c"))
	require.NoError(t, r.SetDelimiter("::"))
	require.Equal(t, []string{"a", "b", "c"}, drain(t, r))
}

func TestSliceReader_SetDelimiter(t *testing.T) {
	r := NewSliceReader([]byte("a/b"))
	require.Equal(t, ":", r.Delimiter())

	require.ErrorIs(t, r.SetDelimiter(""), errs.ErrInvalidDelimiter)

	require.NoError(t, r.SetDelimiter("/"))
	require.Equal(t, "/", r.Delimiter())

	require.NoError(t, r.Materialize())
	require.ErrorIs(t, r.SetDelimiter(":"), errs.ErrDelimiterLocked)
}

func TestSliceReader_MaterializeIdempotent(t *testing.T) {
	r := NewSliceReader([]byte("a:b"))
	require.NoError(t, r.Materialize())
	require.NoError(t, r.Materialize())
	require.Equal(t, []string{"a", "b"}, drain(t, r))
}

func TestSliceReader_InvalidUTF8(t *testing.T) {
	r := NewSliceReader([]byte{0xff, 0xfe, ':', 'a'})
	_, _, err := r.Next()
	require.ErrorIs(t, err, errs.ErrTextDecode)
}

func TestStreamReader_Split(t *testing.T) {
	r := NewStreamReader(strings.NewReader("account:000004d2"))
	require.Equal(t, []string{"account", "000004d2"}, drain(t, r))
}

func TestStreamReader_OwnedComponents(t *testing.T) {
	r := NewStreamReader(strings.NewReader("hello:world"))

	c, ok, err := r.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, c.Borrowed())
	require.Equal(t, "hello", c.Text())
}

func TestStreamReader_EmptyInput(t *testing.T) {
	r := NewStreamReader(strings.NewReader(""))
	_, ok, err := r.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStreamReader_ReadError(t *testing.T) {
	readErr := errors.New("boom")
	r := NewStreamReader(&failingReader{err: readErr})

	_, _, err := r.Next()
	require.ErrorIs(t, err, readErr)
}

func TestStreamReader_SetDelimiterLocked(t *testing.T) {
	r := NewStreamReader(strings.NewReader("a/b"))
	require.NoError(t, r.SetDelimiter("/"))
	require.NoError(t, r.Materialize())
	require.ErrorIs(t, r.SetDelimiter(":"), errs.ErrDelimiterLocked)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
