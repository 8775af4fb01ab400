// Package compress provides the block compression codecs used by key set
// blocks.
//
// Four algorithms are supported behind the Codec interface: Zstd for the
// best ratio, S2 and LZ4 for speed, and NoOp for uncompressed blocks. Zstd
// has two implementations selected at build time: the pure-Go
// klauspost/compress encoder by default, and valyala/gozstd when building
// with the gozstd tag.
package compress
