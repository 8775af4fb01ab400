// Package keyset stores sorted runs of encoded keys as compact, checksummed
// blocks.
//
// A Writer accumulates keys in strictly ascending byte order, frames each
// with a varint length prefix, compresses the run with one of the compress
// package codecs, and seals it behind a fixed 32-byte header carrying a
// magic number, version, compression type, key count and an xxHash64
// checksum of the uncompressed payload. Parse verifies the header and
// checksum, decompresses, and exposes the keys through indexed access,
// iterators and range scans.
//
// Because the key codec preserves value order byte-for-byte, binary search
// over a block and prefix-range scans over it answer typed range queries
// without decoding a single key.
package keyset
