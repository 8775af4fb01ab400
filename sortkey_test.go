package sortkey

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sortkey/errs"
)

type accountKey struct {
	Name string
	ID   uint32
}

func TestMarshal(t *testing.T) {
	key, err := Marshal(accountKey{Name: "account", ID: 1234})
	require.NoError(t, err)
	require.Equal(t, []byte("account:000004d2"), key)
}

func TestMarshal_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int8", int8(123), "fb"},
		{"float32", float32(1234.56), "c49a51ec"},
		{"string", "account", "account"},
		{"bytes", []byte{0xca, 0xfe}, "cafe"},
		{"unit", struct{}{}, ""},
		{"char", Char('q'), "q"},
		{"uint128", Uint128{Hi: 0xaabbccdd11223344, Lo: 0xeeffabcd55667788}, "aabbccdd11223344eeffabcd55667788"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := Marshal(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(key))
		})
	}
}

func TestMarshal_Unsupported(t *testing.T) {
	_, err := Marshal(map[string]int32{})
	require.ErrorIs(t, err, errs.ErrUnsupportedType)

	_, err = Marshal((*int32)(nil))
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}

func TestMarshalWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarshalWrite(&buf, accountKey{Name: "account", ID: 1234}))
	require.Equal(t, "account:000004d2", buf.String())
}

func TestUnmarshal(t *testing.T) {
	var got accountKey
	require.NoError(t, Unmarshal([]byte("account:000004d2"), &got))
	require.Equal(t, accountKey{Name: "account", ID: 1234}, got)
}

func TestUnmarshal_TrailingInput(t *testing.T) {
	var got accountKey
	err := Unmarshal([]byte("account:000004d2:extra"), &got)
	require.ErrorIs(t, err, errs.ErrSyntax)
}

func TestUnmarshal_UnitShape(t *testing.T) {
	var unit struct{}
	require.NoError(t, Unmarshal([]byte(""), &unit))

	err := Unmarshal([]byte("anything"), &unit)
	require.ErrorIs(t, err, errs.ErrSyntax)
}

func TestUnmarshalRead(t *testing.T) {
	var got accountKey
	require.NoError(t, UnmarshalRead(strings.NewReader("account:000004d2"), &got))
	require.Equal(t, accountKey{Name: "account", ID: 1234}, got)
}

func TestRoundTrip(t *testing.T) {
	type compound struct {
		Region  string
		Account Int128
		Char    Char
		Active  bool
	}

	want := compound{Region: "eu-west", Account: Int128{Hi: -1, Lo: 42}, Char: 'x', Active: true}
	key, err := Marshal(want)
	require.NoError(t, err)

	var got compound
	require.NoError(t, Unmarshal(key, &got))
	require.Equal(t, want, got)
}

func TestFingerprint(t *testing.T) {
	key := []byte("account:000004d2")
	require.Equal(t, Fingerprint(key), Fingerprint(key), "fingerprints are deterministic")
	require.NotEqual(t, Fingerprint(key), Fingerprint([]byte("account:000004d3")))
}

func TestBucket(t *testing.T) {
	key := []byte("account:000004d2")

	b := Bucket(key, 16)
	require.GreaterOrEqual(t, b, 0)
	require.Less(t, b, 16)
	require.Equal(t, b, Bucket(key, 16))

	require.Panics(t, func() { Bucket(key, 0) })
}

func TestPrefixRange_CoversExactlyPrefixedKeys(t *testing.T) {
	prefixed := [][]byte{
		[]byte("user:"),
		[]byte("user:00000001"),
		[]byte("user:ffffffff"),
	}
	outside := [][]byte{
		[]byte("user"),
		[]byte("uses"),
		[]byte("account:00000001"),
		[]byte("zone:00000001"),
	}

	start, end := PrefixRange([]byte("user:"))
	for _, key := range prefixed {
		require.True(t, bytes.Compare(key, start) >= 0 && bytes.Compare(key, end) < 0,
			"%q should fall inside the prefix range", key)
	}
	for _, key := range outside {
		inside := bytes.Compare(key, start) >= 0 && bytes.Compare(key, end) < 0
		require.False(t, inside, "%q should fall outside the prefix range", key)
	}
}

func ExampleMarshal() {
	type AccountKey struct {
		Name string
		ID   uint32
	}

	key, _ := Marshal(AccountKey{Name: "account", ID: 1234})
	fmt.Println(string(key))
	// Output: account:000004d2
}

func ExampleUnmarshal() {
	type AccountKey struct {
		Name string
		ID   uint32
	}

	var key AccountKey
	_ = Unmarshal([]byte("account:000004d2"), &key)
	fmt.Printf("%s %d\n", key.Name, key.ID)
	// Output: account 1234
}

func ExamplePrefixRange() {
	start, end := PrefixRange([]byte("user:"))
	fmt.Printf("%s %s\n", start, end)
	// Output: user: user;
}
