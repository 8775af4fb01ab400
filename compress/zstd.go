package compress

// ZstdCodec provides Zstandard compression for key set block payloads.
//
// Zstd trades compression speed for ratio, which suits blocks that are
// written once and scanned many times, such as index runs persisted to a
// sorted key-value store.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
